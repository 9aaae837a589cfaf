package escrow

import (
	"context"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"fmt"
	"math"
)

type SponsorInput struct {
	Event    address.Address
	Sponsor  address.Address
	Quantity uint64
	// GainVault is optional; when set it must be the event's gain vault.
	GainVault address.Address
}

// Sponsor moves a contribution from the sponsor into the gain vault and
// advances the sponsor counter according to the policy. No tickets are
// issued.
func (e *Engine) Sponsor(ctx context.Context, signers ledger.Signers, in SponsorInput) (Receipt, error) {
	return e.execute(ctx, OpSponsor, func(ctx context.Context, tx ledger.Tx, r *Receipt) error {
		rec, accounts, err := e.loadEvent(ctx, tx, in.Event)
		if err != nil {
			return err
		}
		if err := expectAddress(LabelGainVault, in.GainVault, accounts.GainVault); err != nil {
			return err
		}

		auth, err := signer(signers, in.Sponsor)
		if err != nil {
			return err
		}
		if !rec.Active && !e.policy.SponsorWhileInactive {
			return ErrEventInactive
		}
		if in.Quantity == 0 {
			return ErrZeroQuantity
		}

		increment := e.policy.sponsorIncrement(in.Quantity)
		if rec.Sponsors > math.MaxUint64-increment {
			return fmt.Errorf("%w: sponsors counter", ErrOverflow)
		}

		if _, err := e.loadVault(ctx, tx, accounts.GainVault, accounts, rec); err != nil {
			return err
		}
		source, err := e.payerHolding(ctx, tx, in.Sponsor, rec.AcceptedAsset)
		if err != nil {
			return err
		}
		if err := ledger.Transfer(ctx, tx, source, accounts.GainVault, in.Quantity, auth); err != nil {
			return err
		}

		rec.Sponsors += increment
		if err := ledger.SaveEvent(ctx, tx, accounts.Event, rec); err != nil {
			return err
		}

		r.Event = accounts.Event
		r.Actor = in.Sponsor
		r.Amount = in.Quantity
		return nil
	})
}
