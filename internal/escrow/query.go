package escrow

import (
	"context"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"eventEscrow/internal/models"
	"fmt"
)

// Event returns one event with its vault balances and issued tickets.
func (e *Engine) Event(ctx context.Context, event address.Address) (models.EventView, error) {
	var view models.EventView

	err := e.ledger.WithTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		rec, accounts, err := e.loadEvent(ctx, tx, event)
		if err != nil {
			return err
		}
		view, err = e.view(ctx, tx, rec, accounts)
		return err
	})
	if err != nil {
		return models.EventView{}, fmt.Errorf("escrow.Event: %w", named(err))
	}

	return view, nil
}

// Events lists every event ordered by address.
func (e *Engine) Events(ctx context.Context) ([]models.EventView, error) {
	var views []models.EventView

	err := e.ledger.WithTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		views = nil

		accounts, err := tx.List(ctx, ledger.KindEvent)
		if err != nil {
			return err
		}
		for _, account := range accounts {
			rec, sub, err := e.loadEvent(ctx, tx, account.Address)
			if err != nil {
				return err
			}
			view, err := e.view(ctx, tx, rec, sub)
			if err != nil {
				return err
			}
			views = append(views, view)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("escrow.Events: %w", named(err))
	}

	return views, nil
}

func (e *Engine) view(ctx context.Context, tx ledger.Tx, rec models.EventRecord, accounts Accounts) (models.EventView, error) {
	treasury, err := e.loadVault(ctx, tx, accounts.TreasuryVault, accounts, rec)
	if err != nil {
		return models.EventView{}, err
	}
	gain, err := e.loadVault(ctx, tx, accounts.GainVault, accounts, rec)
	if err != nil {
		return models.EventView{}, err
	}
	mint, err := ledger.LoadMint(ctx, tx, accounts.TicketMint)
	if err != nil {
		return models.EventView{}, fmt.Errorf("%w: ticket mint: %v", ErrAddressMismatch, err)
	}

	return models.EventView{
		Address:       accounts.Event,
		TicketMint:    accounts.TicketMint,
		TreasuryVault: accounts.TreasuryVault,
		GainVault:     accounts.GainVault,
		Record:        rec,
		TreasuryFunds: treasury.Balance,
		GainFunds:     gain.Balance,
		TicketsIssued: mint.Supply,
	}, nil
}
