package escrow

import (
	"context"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
)

type CloseEventInput struct {
	Event     address.Address
	Authority address.Address
}

// CloseEvent deactivates the event. The transition is one way; closing a
// closed event fails with ErrAlreadyClosed.
func (e *Engine) CloseEvent(ctx context.Context, signers ledger.Signers, in CloseEventInput) (Receipt, error) {
	return e.execute(ctx, OpCloseEvent, func(ctx context.Context, tx ledger.Tx, r *Receipt) error {
		rec, accounts, err := e.loadEvent(ctx, tx, in.Event)
		if err != nil {
			return err
		}
		if err := requireAuthority(rec, signers, in.Authority); err != nil {
			return err
		}
		if !rec.Active {
			return ErrAlreadyClosed
		}

		if e.policy.CloseRequiresEmptyVaults {
			for _, vault := range []address.Address{accounts.TreasuryVault, accounts.GainVault} {
				h, err := e.loadVault(ctx, tx, vault, accounts, rec)
				if err != nil {
					return err
				}
				if h.Balance > 0 {
					return ErrVaultsNotEmpty
				}
			}
		}

		rec.Active = false
		if err := ledger.SaveEvent(ctx, tx, accounts.Event, rec); err != nil {
			return err
		}

		r.Event = accounts.Event
		r.Actor = in.Authority
		return nil
	})
}
