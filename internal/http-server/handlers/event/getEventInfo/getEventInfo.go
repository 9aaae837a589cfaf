package getEventInfo

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

type EventInfoResponse struct {
	response.Response
	Event models.EventView `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	Event(ctx context.Context, event address.Address) (models.EventView, error)
}

func New(log *slog.Logger, info EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log := log.With(slog.String("op", op))

		raw := chi.URLParam(r, "address")
		if raw == "" {
			log.Error("event address is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event address is required"))
			return
		}

		event, err := address.Parse(raw)
		if err != nil {
			log.Error("invalid event address", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event address"))
			return
		}

		log = log.With(slog.String("event", event.String()))

		view, err := info.Event(r.Context(), event)
		if err != nil {
			log.Error("failed to get event information", sl.Err(err))
			failure.Render(w, r, err)
			return
		}

		log.Info("event info successfully received")

		responseOK(w, r, view)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, view models.EventView) {
	render.JSON(w, r, EventInfoResponse{
		Response: response.OK(),
		Event:    view,
	})
}
