package ledger

import (
	"context"
	"errors"
	"eventEscrow/internal/lib/address"
	"eventEscrow/internal/models"
	"fmt"
	"math"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOwnerMismatch     = errors.New("holding owner did not authorize the debit")
	ErrAssetMismatch     = errors.New("holding asset mismatch")
	ErrMintAuthority     = errors.New("mint authority did not authorize issuance")
	ErrBalanceOverflow   = errors.New("balance overflow")
)

const holdingSeed = "holding"
const assetSeed = "asset"

// HoldingAddress is the canonical holding of asset for owner.
func HoldingAddress(d address.Deriver, owner, asset address.Address) (address.Address, error) {
	a, _, err := d.Find(owner.Bytes(), []byte(holdingSeed), asset.Bytes())
	return a, err
}

// AssetAddress is the mint address of a host-level asset.
func AssetAddress(d address.Deriver, authority address.Address, symbol string) (address.Address, error) {
	a, _, err := d.Find([]byte(assetSeed), authority.Bytes(), []byte(symbol))
	return a, err
}

func InitializeMint(ctx context.Context, tx Tx, addr address.Address, decimals uint8, authority address.Address) error {
	return create(ctx, tx, addr, KindMint, models.Mint{Authority: authority, Decimals: decimals})
}

// InitializeHolding creates an empty holding of an existing asset.
func InitializeHolding(ctx context.Context, tx Tx, addr, asset, owner address.Address) error {
	if _, err := LoadMint(ctx, tx, asset); err != nil {
		return fmt.Errorf("asset %s: %w", asset, err)
	}
	return create(ctx, tx, addr, KindHolding, models.Holding{Asset: asset, Owner: owner})
}

// EnsureHolding returns the canonical holding of asset for owner, creating
// it when it does not exist yet.
func EnsureHolding(ctx context.Context, tx Tx, d address.Deriver, owner, asset address.Address) (address.Address, error) {
	addr, err := HoldingAddress(d, owner, asset)
	if err != nil {
		return address.Zero, err
	}

	h, err := LoadHolding(ctx, tx, addr)
	switch {
	case errors.Is(err, ErrAccountNotFound):
		if err := InitializeHolding(ctx, tx, addr, asset, owner); err != nil {
			return address.Zero, err
		}
		return addr, nil
	case err != nil:
		return address.Zero, err
	}

	if h.Asset != asset || h.Owner != owner {
		return address.Zero, fmt.Errorf("%w: %s", ErrAssetMismatch, addr)
	}

	return addr, nil
}

// Transfer moves amount of one asset between holdings. The capability must
// belong to the owner of the source holding.
func Transfer(ctx context.Context, tx Tx, from, to address.Address, amount uint64, auth Capability) error {
	src, err := LoadHolding(ctx, tx, from)
	if err != nil {
		return fmt.Errorf("source %s: %w", from, err)
	}
	dst, err := LoadHolding(ctx, tx, to)
	if err != nil {
		return fmt.Errorf("destination %s: %w", to, err)
	}

	if !auth.authorizes(src.Owner) {
		return fmt.Errorf("%w: %s", ErrOwnerMismatch, from)
	}
	if src.Asset != dst.Asset {
		return fmt.Errorf("%w: %s -> %s", ErrAssetMismatch, src.Asset, dst.Asset)
	}
	if src.Balance < amount {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, src.Balance, amount)
	}
	if from == to {
		return nil
	}
	if dst.Balance > math.MaxUint64-amount {
		return fmt.Errorf("%w: %s", ErrBalanceOverflow, to)
	}

	src.Balance -= amount
	dst.Balance += amount

	if err := save(ctx, tx, from, KindHolding, src); err != nil {
		return err
	}
	return save(ctx, tx, to, KindHolding, dst)
}

// MintTo issues amount new units of mint into a holding.
func MintTo(ctx context.Context, tx Tx, mint, to address.Address, amount uint64, auth Capability) error {
	m, err := LoadMint(ctx, tx, mint)
	if err != nil {
		return fmt.Errorf("mint %s: %w", mint, err)
	}
	dst, err := LoadHolding(ctx, tx, to)
	if err != nil {
		return fmt.Errorf("destination %s: %w", to, err)
	}

	if !auth.authorizes(m.Authority) {
		return fmt.Errorf("%w: %s", ErrMintAuthority, mint)
	}
	if dst.Asset != mint {
		return fmt.Errorf("%w: %s holds %s", ErrAssetMismatch, to, dst.Asset)
	}
	if m.Supply > math.MaxUint64-amount || dst.Balance > math.MaxUint64-amount {
		return fmt.Errorf("%w: %s", ErrBalanceOverflow, mint)
	}

	m.Supply += amount
	dst.Balance += amount

	if err := save(ctx, tx, mint, KindMint, m); err != nil {
		return err
	}
	return save(ctx, tx, to, KindHolding, dst)
}

func Balance(ctx context.Context, tx Tx, holding address.Address) (uint64, error) {
	h, err := LoadHolding(ctx, tx, holding)
	if err != nil {
		return 0, err
	}
	return h.Balance, nil
}
