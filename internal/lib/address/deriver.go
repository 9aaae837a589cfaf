package address

import (
	"errors"
	"filippo.io/edwards25519"
	"fmt"
	"github.com/zeebo/blake3"
)

// MaxSeedLen bounds each seed fed into a derivation.
const MaxSeedLen = 32

var (
	ErrSeedTooLong  = errors.New("derivation seed too long")
	ErrOnCurve      = errors.New("derived address lies on the ed25519 curve")
	ErrNoViableBump = errors.New("no viable bump for derived address")
	ErrMismatch     = errors.New("address does not match its derivation")
)

// derivationKey is the BLAKE3 keyed-mode domain key for derived addresses:
// the ASCII domain name zero-padded to 32 bytes.
var derivationKey = [32]byte{
	'e', 's', 'c', 'r', 'o', 'w', '.', 'd', 'e', 'r', 'i', 'v', 'e', 'd', '.',
	'a', 'd', 'd', 'r', 'e', 's', 's', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Deriver maps seeds to custody addresses under one program identifier.
// It is a value type; the program identifier is fixed at construction.
type Deriver struct {
	program Address
}

func NewDeriver(program Address) Deriver {
	return Deriver{program: program}
}

func (d Deriver) Program() Address {
	return d.program
}

// Find searches bumps from 255 down to 0 and returns the first candidate
// that is not a valid curve point, together with its bump.
func (d Deriver) Find(seeds ...[]byte) (Address, uint8, error) {
	if err := checkSeeds(seeds); err != nil {
		return Zero, 0, err
	}
	for bump := 255; bump >= 0; bump-- {
		candidate := d.hash(uint8(bump), seeds)
		if !onCurve(candidate) {
			return candidate, uint8(bump), nil
		}
	}
	return Zero, 0, ErrNoViableBump
}

// Create recomputes the address for a known bump.
func (d Deriver) Create(bump uint8, seeds ...[]byte) (Address, error) {
	if err := checkSeeds(seeds); err != nil {
		return Zero, err
	}
	candidate := d.hash(bump, seeds)
	if onCurve(candidate) {
		return Zero, ErrOnCurve
	}
	return candidate, nil
}

// Derive is Find for the (label, parent) form used by event sub-accounts.
func (d Deriver) Derive(label string, parent Address) (Address, uint8, error) {
	return d.Find([]byte(label), parent.Bytes())
}

// Verify checks that want is the address for (label, parent, bump).
func (d Deriver) Verify(label string, parent Address, bump uint8, want Address) error {
	got, err := d.Create(bump, []byte(label), parent.Bytes())
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMismatch, label, err)
	}
	if got != want {
		return fmt.Errorf("%w: %s: expected %s, got %s", ErrMismatch, label, got, want)
	}
	return nil
}

func (d Deriver) hash(bump uint8, seeds [][]byte) Address {
	h, err := blake3.NewKeyed(derivationKey[:])
	if err != nil {
		panic("address: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	for _, seed := range seeds {
		// Length prefix keeps ("ab","c") and ("a","bc") apart.
		_, _ = h.Write([]byte{byte(len(seed))})
		_, _ = h.Write(seed)
	}
	_, _ = h.Write([]byte{bump})
	_, _ = h.Write(d.program[:])

	var out Address
	copy(out[:], h.Sum(nil))
	return out
}

func checkSeeds(seeds [][]byte) error {
	for _, seed := range seeds {
		if len(seed) > MaxSeedLen {
			return fmt.Errorf("%w: %d bytes", ErrSeedTooLong, len(seed))
		}
	}
	return nil
}

func onCurve(a Address) bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return err == nil
}
