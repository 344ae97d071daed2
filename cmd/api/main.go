package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/binodji2005/nistha-free-ai-image-generator/internal/donate"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/generator"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/http/handlers"
	httpapi "github.com/binodji2005/nistha-free-ai-image-generator/internal/http/httpapi"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/infra"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/infra/geoip"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/providers/pollinations"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/storage"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	resolver, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.GeoIPDBPath).Msg("geoip disabled")
	}
	var lookup func(ip string) (string, error)
	if resolver != nil {
		defer resolver.Close()
		lookup = resolver.CountryCode
	}

	client := pollinations.NewClient(pollinations.Options{
		BaseURL: cfg.ImageServiceBaseURL,
		Timeout: cfg.ImageServiceTimeout,
		Logger:  &logger,
	})
	images := storage.NewBlobs()
	gen := generator.New(client, images,
		generator.WithBaseURL(client.BaseURL()),
		generator.WithLogger(logger),
		generator.WithStyle(cfg.DefaultStyle),
		generator.WithAspectRatio(cfg.DefaultAspectRatio),
	)

	app := handlers.NewApp(cfg, &logger, gen, images, donate.NewPanel())
	router := httpapi.NewRouter(app, httpapi.Options{
		RateLimitPerMin: cfg.RateLimitPerMin,
		CORSOrigins:     cfg.CORSAllowedOrigins,
		DefaultLocale:   cfg.DefaultLocale,
		CountryLookup:   lookup,
	})

	server := infra.NewHTTPServer(cfg, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("addr", server.Addr()).
		Str("image_service", client.BaseURL()).
		Msg("API listening")
	if err := server.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("http server failed")
		return
	}
	logger.Info().Msg("server stopped")
}
