package sponsorEvent

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
	"strconv"
)

type SponsorRequest struct {
	Sponsor    address.Address   `json:"sponsor" validate:"required"`
	Quantity   uint64            `json:"quantity"`
	GainVault  *address.Address  `json:"gain_vault,omitempty"`
	Signatures signed.Signatures `json:"signatures" validate:"required"`
}

type SponsorResponse struct {
	response.Response
	Receipt escrow.Receipt `json:"receipt"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSponsor
type EventSponsor interface {
	Sponsor(ctx context.Context, signers ledger.Signers, in escrow.SponsorInput) (escrow.Receipt, error)
}

// Fields are the signed parameters of sponsor_event.
func Fields(event address.Address, req SponsorRequest) signing.Fields {
	fields := signing.Fields{
		"event":    event.String(),
		"sponsor":  req.Sponsor.String(),
		"quantity": strconv.FormatUint(req.Quantity, 10),
	}
	if req.GainVault != nil {
		fields["gain_vault"] = req.GainVault.String()
	}
	return fields
}

func New(log *slog.Logger, program address.Address, sponsor EventSponsor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.sponsorEvent.New"

		log := log.With(slog.String("op", op))

		event, err := address.Parse(chi.URLParam(r, "address"))
		if err != nil {
			log.Error("invalid event address", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event address"))
			return
		}

		log = log.With(slog.String("event", event.String()))

		var req SponsorRequest

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

		signers, err := signed.Verify(program, string(escrow.OpSponsor), Fields(event, req), req.Signatures)
		if err != nil {
			log.Error("signature rejected", sl.Err(err))
			failure.Render(w, r, err)
			return
		}

		in := escrow.SponsorInput{Event: event, Sponsor: req.Sponsor, Quantity: req.Quantity}
		if req.GainVault != nil {
			in.GainVault = *req.GainVault
		}

		receipt, err := sponsor.Sponsor(r.Context(), signers, in)
		if err != nil {
			log.Error("failed to sponsor event", sl.Err(err))
			failure.Render(w, r, err)
			return
		}

		log.Info("event sponsored", slog.String("sponsor", req.Sponsor.String()), slog.Uint64("quantity", req.Quantity))

		responseOK(w, r, receipt)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, receipt escrow.Receipt) {
	render.JSON(w, r, SponsorResponse{
		Response: response.OK(),
		Receipt:  receipt,
	})
}
