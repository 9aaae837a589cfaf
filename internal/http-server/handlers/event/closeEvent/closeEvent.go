package closeEvent

import (
	"context"
	"errors"
	"eventEscrow/internal/escrow"
	"eventEscrow/internal/http-server/handlers/failure"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"eventEscrow/internal/lib/api/response"
	"eventEscrow/internal/lib/api/signed"
	"eventEscrow/internal/lib/logger/sl"
	"eventEscrow/internal/lib/signing"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type CloseRequest struct {
	Authority  address.Address   `json:"authority" validate:"required"`
	Signatures signed.Signatures `json:"signatures" validate:"required"`
}

type CloseResponse struct {
	response.Response
	Receipt escrow.Receipt `json:"receipt"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCloser
type EventCloser interface {
	CloseEvent(ctx context.Context, signers ledger.Signers, in escrow.CloseEventInput) (escrow.Receipt, error)
}

// Fields are the signed parameters of close_event.
func Fields(event address.Address, req CloseRequest) signing.Fields {
	return signing.Fields{
		"event":     event.String(),
		"authority": req.Authority.String(),
	}
}

func New(log *slog.Logger, program address.Address, closer EventCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.closeEvent.New"

		log := log.With(slog.String("op", op))

		event, err := address.Parse(chi.URLParam(r, "address"))
		if err != nil {
			log.Error("invalid event address", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event address"))
			return
		}

		log = log.With(slog.String("event", event.String()))

		var req CloseRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		signers, err := signed.Verify(program, string(escrow.OpCloseEvent), Fields(event, req), req.Signatures)
		if err != nil {
			log.Error("signature rejected", sl.Err(err))
			failure.Render(w, r, err)
			return
		}

		receipt, err := closer.CloseEvent(r.Context(), signers, escrow.CloseEventInput{
			Event:     event,
			Authority: req.Authority,
		})
		if err != nil {
			log.Error("failed to close event", sl.Err(err))
			failure.Render(w, r, err)
			return
		}

		log.Info("event closed")

		responseOK(w, r, receipt)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, receipt escrow.Receipt) {
	render.JSON(w, r, CloseResponse{
		Response: response.OK(),
		Receipt:  receipt,
	})
}
