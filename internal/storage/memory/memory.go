// Package memory is an in-process ledger. Units of work are serialized by
// a single mutex and staged in an overlay that is merged only on success.
package memory

import (
	"bytes"
	"context"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"fmt"
	"slices"
	"sync"
)

type Storage struct {
	mu       sync.Mutex
	accounts map[address.Address]ledger.Account
}

var _ ledger.Ledger = (*Storage)(nil)

func New() *Storage {
	return &Storage{accounts: make(map[address.Address]ledger.Account)}
}

func (s *Storage) WithTx(ctx context.Context, fn func(ctx context.Context, tx ledger.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	t := &tx{base: s.accounts, pending: make(map[address.Address]ledger.Account)}
	if err := fn(ctx, t); err != nil {
		return err
	}

	for addr, account := range t.pending {
		s.accounts[addr] = account
	}

	return nil
}

func (s *Storage) Close() error {
	return nil
}

type tx struct {
	base    map[address.Address]ledger.Account
	pending map[address.Address]ledger.Account
}

func (t *tx) lookup(addr address.Address) (ledger.Account, bool) {
	if account, ok := t.pending[addr]; ok {
		return account, true
	}
	account, ok := t.base[addr]
	return account, ok
}

func (t *tx) Load(_ context.Context, addr address.Address) (ledger.Account, error) {
	account, ok := t.lookup(addr)
	if !ok {
		return ledger.Account{}, fmt.Errorf("%w: %s", ledger.ErrAccountNotFound, addr)
	}
	return clone(account), nil
}

func (t *tx) Create(_ context.Context, account ledger.Account) error {
	if _, ok := t.lookup(account.Address); ok {
		return fmt.Errorf("%w: %s", ledger.ErrAccountExists, account.Address)
	}
	t.pending[account.Address] = clone(account)
	return nil
}

func (t *tx) Save(_ context.Context, account ledger.Account) error {
	existing, ok := t.lookup(account.Address)
	if !ok {
		return fmt.Errorf("%w: %s", ledger.ErrAccountNotFound, account.Address)
	}
	if existing.Kind != account.Kind {
		return fmt.Errorf("%w: %s", ledger.ErrKindMismatch, account.Address)
	}
	t.pending[account.Address] = clone(account)
	return nil
}

func (t *tx) List(_ context.Context, kind ledger.Kind) ([]ledger.Account, error) {
	var out []ledger.Account
	for addr, account := range t.base {
		if _, staged := t.pending[addr]; staged || account.Kind != kind {
			continue
		}
		out = append(out, clone(account))
	}
	for _, account := range t.pending {
		if account.Kind == kind {
			out = append(out, clone(account))
		}
	}

	slices.SortFunc(out, func(a, b ledger.Account) int {
		return a.Address.Compare(b.Address)
	})

	return out, nil
}

func clone(account ledger.Account) ledger.Account {
	account.Data = bytes.Clone(account.Data)
	return account
}
