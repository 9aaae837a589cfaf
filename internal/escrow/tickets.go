package escrow

import (
	"context"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"fmt"
	"math/bits"
)

type BuyTicketsInput struct {
	Event    address.Address
	Buyer    address.Address
	Quantity uint64
	// Optional; when set they must match the event's sub-accounts.
	TreasuryVault address.Address
	TicketMint    address.Address
}

// BuyTickets charges quantity × ticket price into the treasury vault and
// issues quantity ticket units to the buyer's ticket holding.
func (e *Engine) BuyTickets(ctx context.Context, signers ledger.Signers, in BuyTicketsInput) (Receipt, error) {
	return e.execute(ctx, OpBuyTickets, func(ctx context.Context, tx ledger.Tx, r *Receipt) error {
		rec, accounts, err := e.loadEvent(ctx, tx, in.Event)
		if err != nil {
			return err
		}
		if err := expectAddress(LabelTreasuryVault, in.TreasuryVault, accounts.TreasuryVault); err != nil {
			return err
		}
		if err := expectAddress(LabelTicketMint, in.TicketMint, accounts.TicketMint); err != nil {
			return err
		}

		auth, err := signer(signers, in.Buyer)
		if err != nil {
			return err
		}
		if !rec.Active {
			return ErrEventInactive
		}
		if in.Quantity == 0 {
			return ErrZeroQuantity
		}

		hi, cost := bits.Mul64(in.Quantity, rec.TicketPrice)
		if hi != 0 {
			return fmt.Errorf("%w: %d × %d", ErrOverflow, in.Quantity, rec.TicketPrice)
		}

		if _, err := e.loadVault(ctx, tx, accounts.TreasuryVault, accounts, rec); err != nil {
			return err
		}
		// Free tickets need no holding of the accepted asset.
		if cost > 0 {
			source, err := e.payerHolding(ctx, tx, in.Buyer, rec.AcceptedAsset)
			if err != nil {
				return err
			}
			if err := ledger.Transfer(ctx, tx, source, accounts.TreasuryVault, cost, auth); err != nil {
				return err
			}
		}

		tickets, err := ledger.EnsureHolding(ctx, tx, e.deriver, in.Buyer, accounts.TicketMint)
		if err != nil {
			return err
		}
		eventAuth, err := e.eventSigner(rec)
		if err != nil {
			return err
		}
		if err := ledger.MintTo(ctx, tx, accounts.TicketMint, tickets, in.Quantity, eventAuth); err != nil {
			return err
		}

		r.Event = accounts.Event
		r.Actor = in.Buyer
		r.Amount = cost
		r.Quantity = in.Quantity
		return nil
	})
}
