// Package failure renders engine errors as API responses.
package failure

import (
	"errors"
	"eventEscrow/internal/escrow"
	"eventEscrow/internal/lib/api/response"
	"eventEscrow/internal/lib/signing"
	"github.com/go-chi/render"
	"net/http"
)

// Status maps a named failure onto an HTTP status.
func Status(e *escrow.Error) int {
	switch e {
	case escrow.ErrEventNotFound, escrow.ErrAssetNotFound, escrow.ErrAccountNotFound:
		return http.StatusNotFound
	}

	switch e.Category {
	case escrow.CategoryValidation, escrow.CategoryArithmetic:
		return http.StatusBadRequest
	case escrow.CategoryAuthorization:
		return http.StatusForbidden
	case escrow.CategoryState:
		return http.StatusConflict
	case escrow.CategoryAddressIntegrity:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func Render(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, signing.ErrBadSignature) {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.CodedError("bad_signature", "signature verification failed"))
		return
	}

	e := escrow.Classify(err)

	render.Status(r, Status(e))
	render.JSON(w, r, response.CodedError(e.Code, e.Message))
}
