// Package ledger is the host the escrow engine runs on: atomic account
// storage, signing capabilities and the fungible-asset primitives.
package ledger

import (
	"context"
	"errors"
	"eventEscrow/internal/lib/address"
)

type Kind string

const (
	KindEvent   Kind = "event"
	KindMint    Kind = "mint"
	KindHolding Kind = "holding"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
	ErrKindMismatch    = errors.New("account has unexpected kind")
)

// Account is one addressable record. Data is CBOR encoded.
type Account struct {
	Address address.Address
	Kind    Kind
	Data    []byte
}

// Tx is the view of the ledger inside one atomic unit of work.
type Tx interface {
	Load(ctx context.Context, addr address.Address) (Account, error)
	Create(ctx context.Context, account Account) error
	Save(ctx context.Context, account Account) error
	List(ctx context.Context, kind Kind) ([]Account, error)
}

// Ledger runs fn atomically: when fn returns an error none of its writes
// become visible. Conflicting units are serialized by the implementation.
type Ledger interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
