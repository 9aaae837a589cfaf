package withdrawEarnings

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

type WithdrawRequest struct {
	Authority     address.Address   `json:"authority" validate:"required"`
	Amount        uint64            `json:"amount"`
	TreasuryVault *address.Address  `json:"treasury_vault,omitempty"`
	Signatures    signed.Signatures `json:"signatures" validate:"required"`
}

type WithdrawResponse struct {
	response.Response
	Receipt escrow.Receipt `json:"receipt"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EarningsWithdrawer
type EarningsWithdrawer interface {
	WithdrawEarnings(ctx context.Context, signers ledger.Signers, in escrow.WithdrawEarningsInput) (escrow.Receipt, error)
}

// Fields are the signed parameters of withdraw_earnings.
func Fields(event address.Address, req WithdrawRequest) signing.Fields {
	fields := signing.Fields{
		"event":     event.String(),
		"authority": req.Authority.String(),
		"amount":    strconv.FormatUint(req.Amount, 10),
	}
	if req.TreasuryVault != nil {
		fields["treasury_vault"] = req.TreasuryVault.String()
	}
	return fields
}

func New(log *slog.Logger, program address.Address, withdrawer EarningsWithdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.withdrawEarnings.New"

		log := log.With(slog.String("op", op))

		event, err := address.Parse(chi.URLParam(r, "address"))
		if err != nil {
			log.Error("invalid event address", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event address"))
			return
		}

		log = log.With(slog.String("event", event.String()))

		var req WithdrawRequest

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

		signers, err := signed.Verify(program, string(escrow.OpWithdrawEarnings), Fields(event, req), req.Signatures)
		if err != nil {
			log.Error("signature rejected", sl.Err(err))
			failure.Render(w, r, err)
			return
		}

		in := escrow.WithdrawEarningsInput{Event: event, Authority: req.Authority, Amount: req.Amount}
		if req.TreasuryVault != nil {
			in.TreasuryVault = *req.TreasuryVault
		}

		receipt, err := withdrawer.WithdrawEarnings(r.Context(), signers, in)
		if err != nil {
			log.Error("failed to withdraw earnings", sl.Err(err))
			failure.Render(w, r, err)
			return
		}

		log.Info("earnings withdrawn", slog.Uint64("amount", receipt.Amount))

		responseOK(w, r, receipt)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, receipt escrow.Receipt) {
	render.JSON(w, r, WithdrawResponse{
		Response: response.OK(),
		Receipt:  receipt,
	})
}
