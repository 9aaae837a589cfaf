package getAllEvents

import (
	"context"
	"eventEscrow/internal/http-server/handlers/failure"
	"eventEscrow/internal/lib/api/response"
	"eventEscrow/internal/lib/logger/sl"
	"eventEscrow/internal/models"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type EventsResponse struct {
	response.Response
	Events []models.EventView `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	Events(ctx context.Context) ([]models.EventView, error)
}

func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(slog.String("op", op))

		events, err := eventsGetter.Events(r.Context())
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			failure.Render(w, r, err)
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		responseOK(w, r, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.EventView) {
	if events == nil {
		events = []models.EventView{}
	}

	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
