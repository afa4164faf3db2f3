package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/goblog/internal/config"
	db "github.com/sidereusnuntius/goblog/internal/db/impl"
	"github.com/sidereusnuntius/goblog/internal/events"
	"github.com/sidereusnuntius/goblog/internal/initialization"
	"github.com/sidereusnuntius/goblog/internal/queue"
	service "github.com/sidereusnuntius/goblog/internal/service/impl"
	"github.com/sidereusnuntius/goblog/internal/state"
	"github.com/sidereusnuntius/goblog/internal/web"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	config, err := config.ReadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := initialization.OpenDB(config.DbUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to open database")
	}
	defer d.Close()
	log.Info().Msg("database connection established")

	if err = initialization.SetupDB(d, "sqlite3"); err != nil {
		log.Fatal().Err(err).Msg("unable to migrate database")
	}

	store, err := initialization.OpenStorage(ctx, &config)
	if err != nil {
		log.Fatal().Err(err).Str("storage", config.Storage).Msg("unable to open asset store")
	}

	q, err := initialization.InitQueue(&config)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to connect with backlite database")
	}

	publisher := events.New(config.KafkaBrokers, config.KafkaTopic)
	defer publisher.Close()

	state := state.State{
		DB:      db.New(d),
		Config:  config,
		Storage: store,
		Queue:   queue.New(ctx, store, q),
		Events:  publisher,
	}

	sessions := db.NewSessionStore(d, 5*time.Minute)
	defer sessions.StopCleanup()

	handler := web.New(&config, service.New(&state), initialization.NewSessionManager(&config, sessions))
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(web.RequestLogger(log.Logger))
	router.Use(middleware.Recoverer)
	handler.Mount(router)

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdown); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	log.Info().Str("addr", config.Addr).Str("url", config.Url.String()).Msg("started server")
	if err = s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server stopped")
}
