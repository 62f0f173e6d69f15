package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ergg/internal/config"
	"ergg/internal/constants"
	fxmodules "ergg/internal/fx"
	"ergg/internal/middleware"
	"ergg/internal/server"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	statsServer *server.StatsServer,
	cfg *config.Config,
	log zerolog.Logger,
) {
	// LOG_LEVEL may only have arrived through .env
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && level != zerolog.NoLevel {
		log = log.Level(level)
	}

	mux := http.NewServeMux()
	statsServer.Routes(mux)
	server.StaticRoutes(mux, cfg.ImageDir)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID", "ETag"},
		AllowCredentials: false,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           c.Handler(middleware.RequestID(log)(middleware.Recover(mux))),
		ReadHeaderTimeout: constants.ReadHeaderTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			log.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
