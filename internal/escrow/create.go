package escrow

import (
	"context"
	"errors"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"eventEscrow/internal/models"
	"fmt"
	"unicode/utf8"
)

type CreateEventInput struct {
	Organizer     address.Address
	Name          string
	TicketPrice   uint64
	AcceptedAsset address.Address
}

// CreateEvent registers an event owned by the organizer together with its
// ticket mint and both vaults. An organizer owns at most one event.
func (e *Engine) CreateEvent(ctx context.Context, signers ledger.Signers, in CreateEventInput) (Receipt, error) {
	return e.execute(ctx, OpCreateEvent, func(ctx context.Context, tx ledger.Tx, r *Receipt) error {
		if len(in.Name) > models.MaxEventNameLen {
			return fmt.Errorf("%w: %d bytes, limit %d", ErrNameTooLong, len(in.Name), models.MaxEventNameLen)
		}
		if !utf8.ValidString(in.Name) {
			return ErrInvalidName
		}
		if _, err := signer(signers, in.Organizer); err != nil {
			return err
		}
		if _, err := ledger.LoadMint(ctx, tx, in.AcceptedAsset); err != nil {
			if errors.Is(err, ledger.ErrAccountNotFound) || errors.Is(err, ledger.ErrKindMismatch) {
				return fmt.Errorf("%w: %s", ErrAssetNotFound, in.AcceptedAsset)
			}
			return err
		}

		accounts, err := DeriveAccounts(e.deriver, in.Organizer)
		if err != nil {
			return err
		}

		rec := models.EventRecord{
			Name:              in.Name,
			TicketPrice:       in.TicketPrice,
			Active:            true,
			Authority:         in.Organizer,
			AcceptedAsset:     in.AcceptedAsset,
			EventBump:         accounts.EventBump,
			TicketMintBump:    accounts.TicketMintBump,
			TreasuryVaultBump: accounts.TreasuryVaultBump,
			GainVaultBump:     accounts.GainVaultBump,
		}

		if err := ledger.CreateEvent(ctx, tx, accounts.Event, rec); err != nil {
			if errors.Is(err, ledger.ErrAccountExists) {
				return fmt.Errorf("%w: %s", ErrEventExists, accounts.Event)
			}
			return err
		}
		if err := ledger.InitializeMint(ctx, tx, accounts.TicketMint, 0, accounts.Event); err != nil {
			return err
		}
		if err := ledger.InitializeHolding(ctx, tx, accounts.TreasuryVault, in.AcceptedAsset, accounts.Event); err != nil {
			return err
		}
		if err := ledger.InitializeHolding(ctx, tx, accounts.GainVault, in.AcceptedAsset, accounts.Event); err != nil {
			return err
		}

		r.Event = accounts.Event
		r.Actor = in.Organizer
		return nil
	})
}
