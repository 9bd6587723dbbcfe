package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"prodgen/internal/catalog"
	"prodgen/internal/content"
	"prodgen/internal/http/handlers"
	httpapi "prodgen/internal/http/httpapi"
	"prodgen/internal/infra"
	"prodgen/internal/providers/openai"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	store, err := catalog.Load(cfg.DataPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DataPath).Msg("failed to load product catalog")
	}
	logger.Info().Int("products", store.Len()).Str("path", cfg.DataPath).Msg("catalog loaded")

	// Without an API key the catalog endpoints still serve; only the
	// generation endpoints report unavailable.
	var gen handlers.Generator
	if cfg.OpenAIAPIKey != "" {
		client, err := openai.NewClient(openai.Options{
			APIKey:      cfg.OpenAIAPIKey,
			Model:       cfg.ModelName,
			BaseURL:     cfg.OpenAIBaseURL,
			MaxTokens:   cfg.MaxTokens,
			Temperature: &cfg.Temperature,
			Timeout:     cfg.GenerationTimeout,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to configure generation client")
		}
		gen = content.NewAssembler(client, client, logger)
	} else {
		logger.Warn().Msg("OPENAI_API_KEY not set, starting in catalog-only mode")
	}

	app := handlers.NewApp(logger, store, gen)
	router := httpapi.NewRouter(app, logger, cfg.CORSAllowedOrigins)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil {
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
