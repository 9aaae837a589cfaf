package escrow

import (
	"errors"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"fmt"
)

// Category groups failures by what the caller has to fix.
type Category string

const (
	CategoryValidation       Category = "validation"
	CategoryAuthorization    Category = "authorization"
	CategoryState            Category = "state"
	CategoryAddressIntegrity Category = "address_integrity"
	CategoryArithmetic       Category = "arithmetic"
	CategoryInternal         Category = "internal"
)

// Error is a named failure. Values are compared by identity, so wrap them
// with %w and test with errors.Is.
type Error struct {
	Code     string
	Category Category
	Message  string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(code string, category Category, msg string) *Error {
	return &Error{Code: code, Category: category, Message: msg}
}

var (
	ErrNameTooLong         = newError("name_too_long", CategoryValidation, "event name too long")
	ErrInvalidName         = newError("invalid_name", CategoryValidation, "event name is not valid UTF-8")
	ErrZeroQuantity        = newError("zero_quantity", CategoryValidation, "quantity must be greater than zero")
	ErrZeroAmount          = newError("zero_amount", CategoryValidation, "amount must be greater than zero")
	ErrInsufficientBalance = newError("insufficient_balance", CategoryValidation, "amount exceeds available balance")
	ErrAssetMismatch       = newError("asset_mismatch", CategoryValidation, "holding is not denominated in the event asset")

	ErrMissingSignature = newError("missing_signature", CategoryAuthorization, "required co-signer did not sign")
	ErrUnauthorized     = newError("unauthorized", CategoryAuthorization, "caller is not the event authority")

	ErrEventNotFound   = newError("event_not_found", CategoryState, "event not found")
	ErrAssetNotFound   = newError("asset_not_found", CategoryState, "asset not found")
	ErrAccountNotFound = newError("account_not_found", CategoryState, "account not found")
	ErrAccountExists   = newError("account_exists", CategoryState, "account already exists")
	ErrEventExists     = newError("event_exists", CategoryState, "event already exists")
	ErrEventInactive   = newError("event_inactive", CategoryState, "inactive event")
	ErrAlreadyClosed   = newError("event_already_closed", CategoryState, "event already closed")
	ErrVaultsNotEmpty  = newError("vaults_not_empty", CategoryState, "event vaults still hold funds")

	ErrAddressMismatch = newError("address_mismatch", CategoryAddressIntegrity, "sub-account does not match its derived address")

	ErrOverflow = newError("arithmetic_overflow", CategoryArithmetic, "arithmetic overflow")

	ErrInternal = newError("internal", CategoryInternal, "internal error")
)

var hostErrors = []struct {
	err    error
	mapped *Error
}{
	{ledger.ErrInsufficientFunds, ErrInsufficientBalance},
	{ledger.ErrMissingSignature, ErrMissingSignature},
	{ledger.ErrOwnerMismatch, ErrMissingSignature},
	{ledger.ErrMintAuthority, ErrMissingSignature},
	{ledger.ErrAssetMismatch, ErrAssetMismatch},
	{ledger.ErrBalanceOverflow, ErrOverflow},
	{ledger.ErrKindMismatch, ErrAddressMismatch},
	{ledger.ErrAccountExists, ErrAccountExists},
	{ledger.ErrAccountNotFound, ErrAccountNotFound},
	{address.ErrMismatch, ErrAddressMismatch},
	{address.ErrOnCurve, ErrAddressMismatch},
}

// Classify returns the named failure behind err. Host errors that escaped
// the engine unwrapped are mapped onto the same taxonomy; anything else is
// ErrInternal.
func Classify(err error) *Error {
	var named *Error
	if errors.As(err, &named) {
		return named
	}
	for _, h := range hostErrors {
		if errors.Is(err, h.err) {
			return h.mapped
		}
	}
	return ErrInternal
}

// named attaches the named failure to a host error so callers can match
// either one with errors.Is.
func named(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	mapped := Classify(err)
	if mapped == ErrInternal {
		return err
	}
	return fmt.Errorf("%w: %w", mapped, err)
}
