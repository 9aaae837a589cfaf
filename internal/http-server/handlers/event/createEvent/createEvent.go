package createEvent

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
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"strconv"
)

type EventRequest struct {
	Organizer     address.Address   `json:"organizer" validate:"required"`
	Name          string            `json:"name"`
	TicketPrice   uint64            `json:"ticket_price"`
	AcceptedAsset address.Address   `json:"accepted_asset" validate:"required"`
	Signatures    signed.Signatures `json:"signatures" validate:"required"`
}

type EventResponse struct {
	response.Response
	Receipt escrow.Receipt `json:"receipt"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, signers ledger.Signers, in escrow.CreateEventInput) (escrow.Receipt, error)
}

// Fields are the signed parameters of create_event.
func Fields(req EventRequest) signing.Fields {
	return signing.Fields{
		"organizer":      req.Organizer.String(),
		"name":           req.Name,
		"ticket_price":   strconv.FormatUint(req.TicketPrice, 10),
		"accepted_asset": req.AcceptedAsset.String(),
	}
}

func New(log *slog.Logger, program address.Address, event EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.String("organizer", req.Organizer.String()))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		signers, err := signed.Verify(program, string(escrow.OpCreateEvent), Fields(req), req.Signatures)
		if err != nil {
			log.Error("signature rejected", sl.Err(err))
			failure.Render(w, r, err)

			return
		}

		receipt, err := event.CreateEvent(r.Context(), signers, escrow.CreateEventInput{
			Organizer:     req.Organizer,
			Name:          req.Name,
			TicketPrice:   req.TicketPrice,
			AcceptedAsset: req.AcceptedAsset,
		})
		if err != nil {
			log.Error("failed to create event", sl.Err(err))
			failure.Render(w, r, err)

			return
		}

		log.Info("event created", slog.String("event", receipt.Event.String()))

		responseOK(w, r, receipt)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, receipt escrow.Receipt) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Receipt:  receipt,
	})
}
