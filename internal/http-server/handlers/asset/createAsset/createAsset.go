package createAsset

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
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"strconv"
)

// Operation is the signed operation name of asset creation.
const Operation = "create_asset"

type AssetRequest struct {
	Authority  address.Address   `json:"authority" validate:"required"`
	Symbol     string            `json:"symbol" validate:"required,max=32"`
	Decimals   uint8             `json:"decimals"`
	Signatures signed.Signatures `json:"signatures" validate:"required"`
}

type AssetResponse struct {
	response.Response
	Asset address.Address `json:"asset"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AssetCreator
type AssetCreator interface {
	CreateAsset(ctx context.Context, signers ledger.Signers, authority address.Address, symbol string, decimals uint8) (address.Address, error)
}

func Fields(req AssetRequest) signing.Fields {
	return signing.Fields{
		"authority": req.Authority.String(),
		"symbol":    req.Symbol,
		"decimals":  strconv.FormatUint(uint64(req.Decimals), 10),
	}
}

func New(log *slog.Logger, program address.Address, creator AssetCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.asset.createAsset.New"

		log := log.With(slog.String("op", op))

		var req AssetRequest

		err := render.DecodeJSON(r.Body, &req)
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

		signers, err := signed.Verify(program, Operation, Fields(req), req.Signatures)
		if err != nil {
			log.Error("signature rejected", sl.Err(err))
			failure.Render(w, r, err)
			return
		}

		asset, err := creator.CreateAsset(r.Context(), signers, req.Authority, req.Symbol, req.Decimals)
		if err != nil {
			log.Error("failed to create asset", sl.Err(err))
			failure.Render(w, r, err)
			return
		}

		log.Info("asset created", slog.String("asset", asset.String()), slog.String("symbol", req.Symbol))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, AssetResponse{
			Response: response.OK(),
			Asset:    asset,
		})
	}
}
