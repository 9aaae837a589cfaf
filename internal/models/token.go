package models

import "eventEscrow/internal/lib/address"

// Mint is an issuance counter for one fungible asset.
type Mint struct {
	Authority address.Address `cbor:"authority" json:"authority"`
	Decimals  uint8           `cbor:"decimals" json:"decimals"`
	Supply    uint64          `cbor:"supply" json:"supply"`
}

// Holding is a balance of one asset whose debits Owner authorizes.
type Holding struct {
	Asset   address.Address `cbor:"asset" json:"asset"`
	Owner   address.Address `cbor:"owner" json:"owner"`
	Balance uint64          `cbor:"balance" json:"balance"`
}
