package models

import "eventEscrow/internal/lib/address"

// MaxEventNameLen is the byte limit on EventRecord.Name.
const MaxEventNameLen = 40

// EventRecord is the persisted state of one ticketed event.
type EventRecord struct {
	Name          string          `cbor:"name" json:"name"`
	TicketPrice   uint64          `cbor:"ticket_price" json:"ticket_price"`
	Active        bool            `cbor:"active" json:"active"`
	Sponsors      uint64          `cbor:"sponsors" json:"sponsors"`
	Authority     address.Address `cbor:"authority" json:"authority"`
	AcceptedAsset address.Address `cbor:"accepted_asset" json:"accepted_asset"`

	EventBump         uint8 `cbor:"event_bump" json:"event_bump"`
	TicketMintBump    uint8 `cbor:"ticket_mint_bump" json:"ticket_mint_bump"`
	TreasuryVaultBump uint8 `cbor:"treasury_vault_bump" json:"treasury_vault_bump"`
	GainVaultBump     uint8 `cbor:"gain_vault_bump" json:"gain_vault_bump"`
}

// EventView is an event with the live state of its sub-accounts.
type EventView struct {
	Address       address.Address `json:"address"`
	TicketMint    address.Address `json:"ticket_mint"`
	TreasuryVault address.Address `json:"treasury_vault"`
	GainVault     address.Address `json:"gain_vault"`
	Record        EventRecord     `json:"record"`
	TreasuryFunds uint64          `json:"treasury_balance"`
	GainFunds     uint64          `json:"gain_balance"`
	TicketsIssued uint64          `json:"tickets_issued"`
}
