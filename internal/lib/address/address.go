// Package address defines ledger identities and the deterministic
// derivation of custody sub-account addresses.
package address

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/mr-tron/base58"
)

// Size is the byte length of every identity on the ledger.
const Size = 32

var ErrInvalid = errors.New("invalid address")

// Address identifies an account. External parties are ed25519 public keys;
// sub-accounts are derived with a Deriver and never lie on the curve.
type Address [Size]byte

// Zero is the unset address.
var Zero Address

// Parse decodes a base58 address.
func Parse(s string) (Address, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q: %v", ErrInvalid, s, err)
	}
	return FromBytes(raw)
}

// MustParse is Parse for constants and tests.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromBytes copies a 32-byte slice into an Address.
func FromBytes(raw []byte) (Address, error) {
	var a Address
	if len(raw) != Size {
		return Zero, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalid, Size, len(raw))
	}
	copy(a[:], raw)
	return a, nil
}

func (a Address) String() string {
	return base58.Encode(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) IsZero() bool {
	return a == Zero
}

func (a Address) Compare(b Address) int {
	return bytes.Compare(a[:], b[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
