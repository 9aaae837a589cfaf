package escrow

import (
	"context"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"eventEscrow/internal/models"
	"fmt"
)

type WithdrawEarningsInput struct {
	Event     address.Address
	Authority address.Address
	Amount    uint64
	// TreasuryVault is optional; when set it must be the event's treasury.
	TreasuryVault address.Address
}

type WithdrawFundsInput struct {
	Event     address.Address
	Authority address.Address
	// GainVault is optional; when set it must be the event's gain vault.
	GainVault address.Address
}

// WithdrawEarnings pays Amount of ticket proceeds from the treasury vault to
// the authority's holding of the accepted asset.
func (e *Engine) WithdrawEarnings(ctx context.Context, signers ledger.Signers, in WithdrawEarningsInput) (Receipt, error) {
	return e.execute(ctx, OpWithdrawEarnings, func(ctx context.Context, tx ledger.Tx, r *Receipt) error {
		rec, accounts, err := e.loadEvent(ctx, tx, in.Event)
		if err != nil {
			return err
		}
		if err := expectAddress(LabelTreasuryVault, in.TreasuryVault, accounts.TreasuryVault); err != nil {
			return err
		}
		if err := requireAuthority(rec, signers, in.Authority); err != nil {
			return err
		}
		if in.Amount == 0 {
			return ErrZeroAmount
		}

		vault, err := e.loadVault(ctx, tx, accounts.TreasuryVault, accounts, rec)
		if err != nil {
			return err
		}
		if vault.Balance < in.Amount {
			return fmt.Errorf("%w: treasury holds %d, requested %d", ErrInsufficientBalance, vault.Balance, in.Amount)
		}

		if err := e.payOut(ctx, tx, rec, accounts.TreasuryVault, in.Amount); err != nil {
			return err
		}

		r.Event = accounts.Event
		r.Actor = in.Authority
		r.Amount = in.Amount
		return nil
	})
}

// WithdrawFunds sweeps the whole gain vault (sponsor contributions) to the
// authority. Sweeping an empty vault succeeds and moves nothing.
func (e *Engine) WithdrawFunds(ctx context.Context, signers ledger.Signers, in WithdrawFundsInput) (Receipt, error) {
	return e.execute(ctx, OpWithdrawFunds, func(ctx context.Context, tx ledger.Tx, r *Receipt) error {
		rec, accounts, err := e.loadEvent(ctx, tx, in.Event)
		if err != nil {
			return err
		}
		if err := expectAddress(LabelGainVault, in.GainVault, accounts.GainVault); err != nil {
			return err
		}
		if err := requireAuthority(rec, signers, in.Authority); err != nil {
			return err
		}

		vault, err := e.loadVault(ctx, tx, accounts.GainVault, accounts, rec)
		if err != nil {
			return err
		}
		if vault.Balance > 0 {
			if err := e.payOut(ctx, tx, rec, accounts.GainVault, vault.Balance); err != nil {
				return err
			}
		}

		r.Event = accounts.Event
		r.Actor = in.Authority
		r.Amount = vault.Balance
		return nil
	})
}

// payOut debits a vault into the authority's canonical holding, signing as
// the event.
func (e *Engine) payOut(ctx context.Context, tx ledger.Tx, rec models.EventRecord, vault address.Address, amount uint64) error {
	dst, err := ledger.EnsureHolding(ctx, tx, e.deriver, rec.Authority, rec.AcceptedAsset)
	if err != nil {
		return err
	}
	auth, err := e.eventSigner(rec)
	if err != nil {
		return err
	}
	return ledger.Transfer(ctx, tx, vault, dst, amount, auth)
}
