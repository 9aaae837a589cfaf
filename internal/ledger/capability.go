package ledger

import (
	"errors"
	"eventEscrow/internal/lib/address"
	"fmt"
)

var ErrMissingSignature = errors.New("missing required signature")

// Capability authorizes debits on behalf of one address. The zero value
// authorizes nothing.
type Capability struct {
	addr  address.Address
	valid bool
}

func (c Capability) Address() address.Address {
	return c.addr
}

func (c Capability) authorizes(owner address.Address) bool {
	return c.valid && c.addr == owner
}

// Signers is the set of identities that co-signed the current request.
// Only identities whose signatures were verified may be added.
type Signers struct {
	set map[address.Address]struct{}
}

func NewSigners(verified ...address.Address) Signers {
	set := make(map[address.Address]struct{}, len(verified))
	for _, a := range verified {
		set[a] = struct{}{}
	}
	return Signers{set: set}
}

func (s Signers) Has(a address.Address) bool {
	_, ok := s.set[a]
	return ok
}

// Capability returns a signing capability for a co-signer.
func (s Signers) Capability(a address.Address) (Capability, error) {
	if !s.Has(a) {
		return Capability{}, fmt.Errorf("%w: %s", ErrMissingSignature, a)
	}
	return Capability{addr: a, valid: true}, nil
}

// DerivedCapability proves authority over a derived address by recomputing
// it from its label, parent and stored bump.
func DerivedCapability(d address.Deriver, label string, parent address.Address, bump uint8) (Capability, error) {
	a, err := d.Create(bump, []byte(label), parent.Bytes())
	if err != nil {
		return Capability{}, fmt.Errorf("derive %s signer: %w", label, err)
	}
	return Capability{addr: a, valid: true}, nil
}
