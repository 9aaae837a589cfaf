package escrow

import "fmt"

// SponsorCounting selects how Sponsor advances EventRecord.Sponsors.
type SponsorCounting string

const (
	// SponsorPerCall counts one per successful Sponsor call.
	SponsorPerCall SponsorCounting = "per_call"
	// SponsorPerQuantity adds the contributed quantity.
	SponsorPerQuantity SponsorCounting = "per_quantity"
)

func ParseSponsorCounting(s string) (SponsorCounting, error) {
	switch SponsorCounting(s) {
	case SponsorPerCall, SponsorPerQuantity:
		return SponsorCounting(s), nil
	case "":
		return SponsorPerCall, nil
	}
	return "", fmt.Errorf("unknown sponsor counting %q", s)
}

// Policy holds the product decisions the engine enforces.
type Policy struct {
	SponsorCounting SponsorCounting
	// SponsorWhileInactive accepts contributions after CloseEvent.
	SponsorWhileInactive bool
	// CloseRequiresEmptyVaults rejects CloseEvent while either vault holds funds.
	CloseRequiresEmptyVaults bool
}

func DefaultPolicy() Policy {
	return Policy{SponsorCounting: SponsorPerCall}
}

func (p Policy) sponsorIncrement(quantity uint64) uint64 {
	if p.SponsorCounting == SponsorPerQuantity {
		return quantity
	}
	return 1
}
