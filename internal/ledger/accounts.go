package ledger

import (
	"context"
	"eventEscrow/internal/lib/address"
	"eventEscrow/internal/lib/codec"
	"eventEscrow/internal/models"
	"fmt"
)

func load[T any](ctx context.Context, tx Tx, addr address.Address, kind Kind) (T, error) {
	var v T

	account, err := tx.Load(ctx, addr)
	if err != nil {
		return v, err
	}
	if account.Kind != kind {
		return v, fmt.Errorf("%w: %s is %q, want %q", ErrKindMismatch, addr, account.Kind, kind)
	}
	if err := codec.Unmarshal(account.Data, &v); err != nil {
		return v, fmt.Errorf("decode %s account %s: %w", kind, addr, err)
	}

	return v, nil
}

func encode(addr address.Address, kind Kind, v any) (Account, error) {
	data, err := codec.Marshal(v)
	if err != nil {
		return Account{}, fmt.Errorf("encode %s account %s: %w", kind, addr, err)
	}
	return Account{Address: addr, Kind: kind, Data: data}, nil
}

func create(ctx context.Context, tx Tx, addr address.Address, kind Kind, v any) error {
	account, err := encode(addr, kind, v)
	if err != nil {
		return err
	}
	return tx.Create(ctx, account)
}

func save(ctx context.Context, tx Tx, addr address.Address, kind Kind, v any) error {
	account, err := encode(addr, kind, v)
	if err != nil {
		return err
	}
	return tx.Save(ctx, account)
}

func LoadEvent(ctx context.Context, tx Tx, addr address.Address) (models.EventRecord, error) {
	return load[models.EventRecord](ctx, tx, addr, KindEvent)
}

func CreateEvent(ctx context.Context, tx Tx, addr address.Address, rec models.EventRecord) error {
	return create(ctx, tx, addr, KindEvent, rec)
}

func SaveEvent(ctx context.Context, tx Tx, addr address.Address, rec models.EventRecord) error {
	return save(ctx, tx, addr, KindEvent, rec)
}

func LoadMint(ctx context.Context, tx Tx, addr address.Address) (models.Mint, error) {
	return load[models.Mint](ctx, tx, addr, KindMint)
}

func LoadHolding(ctx context.Context, tx Tx, addr address.Address) (models.Holding, error) {
	return load[models.Holding](ctx, tx, addr, KindHolding)
}
