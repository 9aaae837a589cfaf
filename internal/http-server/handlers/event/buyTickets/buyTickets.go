package buyTickets

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

type TicketsRequest struct {
	Buyer         address.Address   `json:"buyer" validate:"required"`
	Quantity      uint64            `json:"quantity"`
	TreasuryVault *address.Address  `json:"treasury_vault,omitempty"`
	TicketMint    *address.Address  `json:"ticket_mint,omitempty"`
	Signatures    signed.Signatures `json:"signatures" validate:"required"`
}

type TicketsResponse struct {
	response.Response
	Receipt escrow.Receipt `json:"receipt"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketSeller
type TicketSeller interface {
	BuyTickets(ctx context.Context, signers ledger.Signers, in escrow.BuyTicketsInput) (escrow.Receipt, error)
}

// Fields are the signed parameters of buy_tickets.
func Fields(event address.Address, req TicketsRequest) signing.Fields {
	fields := signing.Fields{
		"event":    event.String(),
		"buyer":    req.Buyer.String(),
		"quantity": strconv.FormatUint(req.Quantity, 10),
	}
	if req.TreasuryVault != nil {
		fields["treasury_vault"] = req.TreasuryVault.String()
	}
	if req.TicketMint != nil {
		fields["ticket_mint"] = req.TicketMint.String()
	}
	return fields
}

func New(log *slog.Logger, program address.Address, seller TicketSeller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.buyTickets.New"

		log := log.With(slog.String("op", op))

		event, err := address.Parse(chi.URLParam(r, "address"))
		if err != nil {
			log.Error("invalid event address", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event address"))
			return
		}

		log = log.With(slog.String("event", event.String()))

		var req TicketsRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("buyer", req.Buyer.String()), slog.Uint64("quantity", req.Quantity))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		signers, err := signed.Verify(program, string(escrow.OpBuyTickets), Fields(event, req), req.Signatures)
		if err != nil {
			log.Error("signature rejected", sl.Err(err))
			failure.Render(w, r, err)
			return
		}

		in := escrow.BuyTicketsInput{Event: event, Buyer: req.Buyer, Quantity: req.Quantity}
		if req.TreasuryVault != nil {
			in.TreasuryVault = *req.TreasuryVault
		}
		if req.TicketMint != nil {
			in.TicketMint = *req.TicketMint
		}

		receipt, err := seller.BuyTickets(r.Context(), signers, in)
		if err != nil {
			log.Error("failed to buy tickets", sl.Err(err))
			failure.Render(w, r, err)
			return
		}

		log.Info("tickets bought", slog.String("receipt", receipt.ID), slog.Uint64("amount", receipt.Amount))

		responseOK(w, r, receipt)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, receipt escrow.Receipt) {
	render.JSON(w, r, TicketsResponse{
		Response: response.OK(),
		Receipt:  receipt,
	})
}
