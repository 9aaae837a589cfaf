package mintAsset

import (
	"context"
	"errors"
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

const Operation = "mint_asset"

type MintRequest struct {
	Authority  address.Address   `json:"authority" validate:"required"`
	Owner      address.Address   `json:"owner" validate:"required"`
	Amount     uint64            `json:"amount" validate:"gt=0"`
	Signatures signed.Signatures `json:"signatures" validate:"required"`
}

type MintResponse struct {
	response.Response
	Holding address.Address `json:"holding"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AssetMinter
type AssetMinter interface {
	Mint(ctx context.Context, signers ledger.Signers, asset, authority, owner address.Address, amount uint64) (address.Address, error)
}

func Fields(asset address.Address, req MintRequest) signing.Fields {
	return signing.Fields{
		"asset":     asset.String(),
		"authority": req.Authority.String(),
		"owner":     req.Owner.String(),
		"amount":    strconv.FormatUint(req.Amount, 10),
	}
}

func New(log *slog.Logger, program address.Address, minter AssetMinter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.asset.mintAsset.New"

		log := log.With(slog.String("op", op))

		asset, err := address.Parse(chi.URLParam(r, "address"))
		if err != nil {
			log.Error("invalid asset address", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid asset address"))
			return
		}

		var req MintRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		signers, err := signed.Verify(program, Operation, Fields(asset, req), req.Signatures)
		if err != nil {
			log.Error("signature rejected", sl.Err(err))
			failure.Render(w, r, err)
			return
		}

		holding, err := minter.Mint(r.Context(), signers, asset, req.Authority, req.Owner, req.Amount)
		if err != nil {
			log.Error("failed to mint", sl.Err(err))
			failure.Render(w, r, err)
			return
		}

		log.Info("minted", slog.String("asset", asset.String()), slog.Uint64("amount", req.Amount))

		render.JSON(w, r, MintResponse{
			Response: response.OK(),
			Holding:  holding,
		})
	}
}
