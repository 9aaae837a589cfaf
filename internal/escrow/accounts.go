package escrow

import (
	"context"
	"errors"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"eventEscrow/internal/models"
	"fmt"
)

const (
	LabelEvent         = "event"
	LabelTicketMint    = "ticket_mint"
	LabelTreasuryVault = "treasury_vault"
	LabelGainVault     = "gain_vault"
)

// Accounts are the canonical addresses of an event and its sub-accounts.
type Accounts struct {
	Event         address.Address `json:"event"`
	TicketMint    address.Address `json:"ticket_mint"`
	TreasuryVault address.Address `json:"treasury_vault"`
	GainVault     address.Address `json:"gain_vault"`

	EventBump         uint8 `json:"event_bump"`
	TicketMintBump    uint8 `json:"ticket_mint_bump"`
	TreasuryVaultBump uint8 `json:"treasury_vault_bump"`
	GainVaultBump     uint8 `json:"gain_vault_bump"`
}

// DeriveAccounts computes the event owned by organizer and its sub-accounts.
func DeriveAccounts(d address.Deriver, organizer address.Address) (Accounts, error) {
	var (
		a   Accounts
		err error
	)

	if a.Event, a.EventBump, err = d.Derive(LabelEvent, organizer); err != nil {
		return Accounts{}, err
	}
	if a.TicketMint, a.TicketMintBump, err = d.Derive(LabelTicketMint, a.Event); err != nil {
		return Accounts{}, err
	}
	if a.TreasuryVault, a.TreasuryVaultBump, err = d.Derive(LabelTreasuryVault, a.Event); err != nil {
		return Accounts{}, err
	}
	if a.GainVault, a.GainVaultBump, err = d.Derive(LabelGainVault, a.Event); err != nil {
		return Accounts{}, err
	}

	return a, nil
}

// verifyAccounts recomputes every sub-account from the bumps stored in rec
// and checks the event address itself.
func verifyAccounts(d address.Deriver, event address.Address, rec models.EventRecord) (Accounts, error) {
	if err := d.Verify(LabelEvent, rec.Authority, rec.EventBump, event); err != nil {
		return Accounts{}, fmt.Errorf("%w: %v", ErrAddressMismatch, err)
	}

	a := Accounts{
		Event:             event,
		EventBump:         rec.EventBump,
		TicketMintBump:    rec.TicketMintBump,
		TreasuryVaultBump: rec.TreasuryVaultBump,
		GainVaultBump:     rec.GainVaultBump,
	}

	subs := []struct {
		label string
		bump  uint8
		out   *address.Address
	}{
		{LabelTicketMint, rec.TicketMintBump, &a.TicketMint},
		{LabelTreasuryVault, rec.TreasuryVaultBump, &a.TreasuryVault},
		{LabelGainVault, rec.GainVaultBump, &a.GainVault},
	}
	for _, sub := range subs {
		addr, err := d.Create(sub.bump, []byte(sub.label), event.Bytes())
		if err != nil {
			return Accounts{}, fmt.Errorf("%w: %s: %v", ErrAddressMismatch, sub.label, err)
		}
		*sub.out = addr
	}

	return a, nil
}

// expectAddress accepts an unset caller-supplied address or the canonical one.
func expectAddress(label string, supplied, canonical address.Address) error {
	if supplied.IsZero() || supplied == canonical {
		return nil
	}
	return fmt.Errorf("%w: %s: expected %s, got %s", ErrAddressMismatch, label, canonical, supplied)
}

func (e *Engine) loadEvent(ctx context.Context, tx ledger.Tx, event address.Address) (models.EventRecord, Accounts, error) {
	rec, err := ledger.LoadEvent(ctx, tx, event)
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return models.EventRecord{}, Accounts{}, fmt.Errorf("%w: %s", ErrEventNotFound, event)
	case errors.Is(err, ledger.ErrKindMismatch):
		return models.EventRecord{}, Accounts{}, fmt.Errorf("%w: %v", ErrAddressMismatch, err)
	case err != nil:
		return models.EventRecord{}, Accounts{}, err
	}

	accounts, err := verifyAccounts(e.deriver, event, rec)
	if err != nil {
		return models.EventRecord{}, Accounts{}, err
	}

	return rec, accounts, nil
}

// loadVault checks that a vault exists, is custodied by the event and holds
// the accepted asset.
func (e *Engine) loadVault(ctx context.Context, tx ledger.Tx, vault address.Address, accounts Accounts, rec models.EventRecord) (models.Holding, error) {
	h, err := ledger.LoadHolding(ctx, tx, vault)
	if err != nil {
		return models.Holding{}, fmt.Errorf("%w: vault %s: %v", ErrAddressMismatch, vault, err)
	}
	if h.Owner != accounts.Event || h.Asset != rec.AcceptedAsset {
		return models.Holding{}, fmt.Errorf("%w: vault %s is not custodied by event %s", ErrAddressMismatch, vault, accounts.Event)
	}
	return h, nil
}

// payerHolding is owner's canonical holding of asset. A payer without one
// has nothing to spend.
func (e *Engine) payerHolding(ctx context.Context, tx ledger.Tx, owner, asset address.Address) (address.Address, error) {
	addr, err := ledger.HoldingAddress(e.deriver, owner, asset)
	if err != nil {
		return address.Zero, err
	}
	if _, err := ledger.LoadHolding(ctx, tx, addr); err != nil {
		if errors.Is(err, ledger.ErrAccountNotFound) {
			return address.Zero, fmt.Errorf("%w: %s has no holding of %s", ErrInsufficientBalance, owner, asset)
		}
		return address.Zero, err
	}
	return addr, nil
}

func signer(signers ledger.Signers, who address.Address) (ledger.Capability, error) {
	auth, err := signers.Capability(who)
	if err != nil {
		return ledger.Capability{}, fmt.Errorf("%w: %s", ErrMissingSignature, who)
	}
	return auth, nil
}

func requireAuthority(rec models.EventRecord, signers ledger.Signers, caller address.Address) error {
	if caller != rec.Authority {
		return fmt.Errorf("%w: %s", ErrUnauthorized, caller)
	}
	if !signers.Has(caller) {
		return fmt.Errorf("%w: %s", ErrMissingSignature, caller)
	}
	return nil
}

// eventSigner is the event's own signing capability over its vaults and
// ticket mint.
func (e *Engine) eventSigner(rec models.EventRecord) (ledger.Capability, error) {
	auth, err := ledger.DerivedCapability(e.deriver, LabelEvent, rec.Authority, rec.EventBump)
	if err != nil {
		return ledger.Capability{}, fmt.Errorf("%w: %v", ErrAddressMismatch, err)
	}
	return auth, nil
}
