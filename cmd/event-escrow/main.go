package main

import (
	"context"
	"errors"
	"eventEscrow/internal/assets"
	"eventEscrow/internal/config"
	"eventEscrow/internal/escrow"
	"eventEscrow/internal/events"
	"eventEscrow/internal/http-server/handlers/asset/createAsset"
	"eventEscrow/internal/http-server/handlers/asset/getHolding"
	"eventEscrow/internal/http-server/handlers/asset/mintAsset"
	"eventEscrow/internal/http-server/handlers/event/buyTickets"
	"eventEscrow/internal/http-server/handlers/event/closeEvent"
	"eventEscrow/internal/http-server/handlers/event/createEvent"
	"eventEscrow/internal/http-server/handlers/event/getAllEvents"
	"eventEscrow/internal/http-server/handlers/event/getEventInfo"
	"eventEscrow/internal/http-server/handlers/event/sponsorEvent"
	"eventEscrow/internal/http-server/handlers/event/withdrawEarnings"
	"eventEscrow/internal/http-server/handlers/event/withdrawFunds"
	"eventEscrow/internal/http-server/middleware/mwlogger"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"eventEscrow/internal/lib/logger/handlers/slogpretty"
	"eventEscrow/internal/lib/logger/sl"
	"eventEscrow/internal/storage/memory"
	"eventEscrow/internal/storage/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type storage interface {
	ledger.Ledger
	Close() error
}

func main() {
	// A missing .env is fine; the config file and environment still apply.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event escrow", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage))
	log.Debug("Debug messages are enabled")

	program, err := address.Parse(cfg.ProgramID)
	if err != nil {
		log.Error("invalid program id", sl.Err(err))
		os.Exit(1)
	}

	policy, err := setupPolicy(cfg.Escrow)
	if err != nil {
		log.Error("invalid escrow policy", sl.Err(err))
		os.Exit(1)
	}

	store, err := setupStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	publisher, err := setupPublisher(cfg.NATS)
	if err != nil {
		log.Error("failed to connect to NATS", sl.Err(err))
		os.Exit(1)
	}

	deriver := address.NewDeriver(program)
	engine := escrow.New(log, store, deriver, policy, escrow.WithPublisher(publisher))
	assetService := assets.New(log, store, deriver)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/events", createEvent.New(log, program, engine))
	router.Get("/events", getAllEvents.New(log, engine))
	router.Get("/events/{address}", getEventInfo.New(log, engine))
	router.Post("/events/{address}/sponsor", sponsorEvent.New(log, program, engine))
	router.Post("/events/{address}/tickets", buyTickets.New(log, program, engine))
	router.Post("/events/{address}/withdraw-earnings", withdrawEarnings.New(log, program, engine))
	router.Post("/events/{address}/withdraw-funds", withdrawFunds.New(log, program, engine))
	router.Post("/events/{address}/close", closeEvent.New(log, program, engine))

	router.Post("/assets", createAsset.New(log, program, assetService))
	router.Post("/assets/{address}/mint", mintAsset.New(log, program, assetService))
	router.Get("/holdings/{owner}/{asset}", getHolding.New(log, assetService))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = publisher.Close(); err != nil {
		log.Error("failed to close publisher", sl.Err(err))
	}

	if err = store.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupStorage(cfg *config.Config) (storage, error) {
	if cfg.Storage == config.StoragePostgres {
		return postgres.InitDB(&cfg.Database)
	}
	return memory.New(), nil
}

func setupPublisher(cfg config.NATS) (events.Publisher, error) {
	if cfg.URL == "" {
		return &events.NoopPublisher{}, nil
	}
	return events.NewNATSPublisher(cfg.URL)
}

func setupPolicy(cfg config.Escrow) (escrow.Policy, error) {
	counting, err := escrow.ParseSponsorCounting(cfg.SponsorCounting)
	if err != nil {
		return escrow.Policy{}, err
	}

	return escrow.Policy{
		SponsorCounting:          counting,
		SponsorWhileInactive:     cfg.SponsorWhileInactive,
		CloseRequiresEmptyVaults: cfg.CloseRequiresEmptyVaults,
	}, nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
