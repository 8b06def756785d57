package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"studio/internal/http/handlers"
	"studio/internal/http/httpapi"
	"studio/internal/infra"
	"studio/internal/infra/credentials"
	"studio/internal/infra/geoip"
	"studio/internal/middleware"
	"studio/internal/providers/copywriter"
	"studio/internal/providers/genai"
	"studio/internal/providers/image"
	"studio/internal/providers/video"
	"studio/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	sqlRunner := infra.NewSQLRunner(dbpool, logger)
	credStore := credentials.NewStore(sqlRunner)

	// One shared client for every generation path. Keys come from the
	// integrations table first so rotation works without a restart; the
	// environment key is the bootstrap fallback.
	client := genai.NewClient(genai.Options{
		Credentials: func(ctx context.Context) (string, error) {
			key, err := credStore.GeminiAPIKey(ctx)
			if err != nil {
				return "", err
			}
			if key == "" {
				key = strings.TrimSpace(cfg.GeminiAPIKey)
			}
			return key, nil
		},
		BaseURL: cfg.GeminiBaseURL,
		Logger:  &logger,
	})

	store, err := storage.NewFileStore(cfg.StoragePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}

	var lookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		lookup = resolver.CountryCode
	}

	app := &handlers.App{
		Config:      cfg,
		Logger:      &logger,
		SQL:         sqlRunner,
		Credentials: credStore,
		Images:      image.NewGeminiGenerator(client),
		Videos:      video.NewGeminiGenerator(client),
		Copy:        copywriter.NewGeminiWriter(client),
		Store:       store,
	}

	router := httpapi.NewRouter(app, lookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("API listening")
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
