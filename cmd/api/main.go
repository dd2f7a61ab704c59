package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Yash-Yashwant/CosplayAI/internal/character"
	"github.com/Yash-Yashwant/CosplayAI/internal/generation"
	"github.com/Yash-Yashwant/CosplayAI/internal/http/handlers"
	"github.com/Yash-Yashwant/CosplayAI/internal/http/httpapi"
	"github.com/Yash-Yashwant/CosplayAI/internal/imagen"
	"github.com/Yash-Yashwant/CosplayAI/internal/infra"
	"github.com/Yash-Yashwant/CosplayAI/internal/photo"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	// Credentials are optional: without them the service still runs and
	// serves placeholder results.
	var tokens imagen.TokenProvider
	if cfg.ProjectID == "" {
		logger.Warn().Msg("GOOGLE_CLOUD_PROJECT_ID not set, running without upstream generation")
	} else {
		tokens, err = imagen.NewTokenProvider(ctx, cfg.CredentialsPath)
		if err != nil {
			logger.Warn().Err(err).Msg("could not resolve Google Cloud credentials, running without upstream generation")
		}
	}

	client := imagen.NewClient(imagen.Options{
		ProjectID: cfg.ProjectID,
		Location:  cfg.Location,
		Model:     cfg.Model,
		Tokens:    tokens,
	})
	if tokens != nil {
		if client.ValidateConnection(ctx) {
			logger.Info().Str("model", cfg.Model).Msg("imagen endpoint reachable")
		} else {
			logger.Warn().Str("model", cfg.Model).Msg("imagen endpoint validation failed")
		}
	}

	app := handlers.NewApp(
		logger,
		cfg,
		character.NewLibrary(),
		photo.NewAnalyzer(),
		client,
		generation.NewMemoryStore(cfg.RecordRetention),
	)

	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
