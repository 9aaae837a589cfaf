package getHolding

import (
	"context"
	"eventEscrow/internal/http-server/handlers/failure"
	"eventEscrow/internal/lib/address"
	"eventEscrow/internal/lib/api/response"
	"eventEscrow/internal/lib/logger/sl"
	"eventEscrow/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type HoldingResponse struct {
	response.Response
	Address address.Address `json:"address"`
	Holding models.Holding  `json:"holding"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HoldingGetter
type HoldingGetter interface {
	Holding(ctx context.Context, owner, asset address.Address) (address.Address, models.Holding, error)
}

func New(log *slog.Logger, getter HoldingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.asset.getHolding.New"

		log := log.With(slog.String("op", op))

		owner, err := address.Parse(chi.URLParam(r, "owner"))
		if err != nil {
			log.Error("invalid owner address", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid owner address"))
			return
		}

		asset, err := address.Parse(chi.URLParam(r, "asset"))
		if err != nil {
			log.Error("invalid asset address", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid asset address"))
			return
		}

		addr, holding, err := getter.Holding(r.Context(), owner, asset)
		if err != nil {
			log.Error("failed to get holding", sl.Err(err))
			failure.Render(w, r, err)
			return
		}

		render.JSON(w, r, HoldingResponse{
			Response: response.OK(),
			Address:  addr,
			Holding:  holding,
		})
	}
}
