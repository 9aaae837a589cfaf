// Package assets exposes the host's fungible-asset primitives so a
// standalone deployment can issue the assets events trade in and fund
// participants. It is not part of the escrow core.
package assets

import (
	"context"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"eventEscrow/internal/lib/logger/sl"
	"eventEscrow/internal/models"
	"fmt"
	"log/slog"
)

type Service struct {
	log     *slog.Logger
	ledger  ledger.Ledger
	deriver address.Deriver
}

func New(log *slog.Logger, l ledger.Ledger, d address.Deriver) *Service {
	return &Service{log: log, ledger: l, deriver: d}
}

// CreateAsset registers a mint whose issuance authority is the signer.
func (s *Service) CreateAsset(ctx context.Context, signers ledger.Signers, authority address.Address, symbol string, decimals uint8) (address.Address, error) {
	const op = "assets.CreateAsset"

	log := s.log.With(slog.String("op", op), slog.String("symbol", symbol))

	var asset address.Address
	err := s.ledger.WithTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		if _, err := signers.Capability(authority); err != nil {
			return err
		}

		var err error
		asset, err = ledger.AssetAddress(s.deriver, authority, symbol)
		if err != nil {
			return err
		}

		return ledger.InitializeMint(ctx, tx, asset, decimals, authority)
	})
	if err != nil {
		log.Info("asset not created", sl.Err(err))
		return address.Zero, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("asset created", slog.String("asset", asset.String()))

	return asset, nil
}

// Mint issues amount units of asset into owner's canonical holding.
func (s *Service) Mint(ctx context.Context, signers ledger.Signers, asset, authority, owner address.Address, amount uint64) (address.Address, error) {
	const op = "assets.Mint"

	log := s.log.With(slog.String("op", op), slog.String("asset", asset.String()))

	var holding address.Address
	err := s.ledger.WithTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		auth, err := signers.Capability(authority)
		if err != nil {
			return err
		}

		holding, err = ledger.EnsureHolding(ctx, tx, s.deriver, owner, asset)
		if err != nil {
			return err
		}

		return ledger.MintTo(ctx, tx, asset, holding, amount, auth)
	})
	if err != nil {
		log.Info("mint rejected", sl.Err(err))
		return address.Zero, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("minted", slog.String("owner", owner.String()), slog.Uint64("amount", amount))

	return holding, nil
}

// Holding returns owner's canonical holding of asset.
func (s *Service) Holding(ctx context.Context, owner, asset address.Address) (address.Address, models.Holding, error) {
	const op = "assets.Holding"

	addr, err := ledger.HoldingAddress(s.deriver, owner, asset)
	if err != nil {
		return address.Zero, models.Holding{}, fmt.Errorf("%s: %w", op, err)
	}

	var h models.Holding
	err = s.ledger.WithTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		h, err = ledger.LoadHolding(ctx, tx, addr)
		return err
	})
	if err != nil {
		return address.Zero, models.Holding{}, fmt.Errorf("%s: %w", op, err)
	}

	return addr, h, nil
}
