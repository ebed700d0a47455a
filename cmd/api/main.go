package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hszk-dev/reelwatch/internal/api/handler"
	"github.com/hszk-dev/reelwatch/internal/api/middleware"
	"github.com/hszk-dev/reelwatch/internal/config"
	"github.com/hszk-dev/reelwatch/internal/domain/model"
	"github.com/hszk-dev/reelwatch/internal/infrastructure/cache"
	"github.com/hszk-dev/reelwatch/internal/infrastructure/letterboxd"
	"github.com/hszk-dev/reelwatch/internal/infrastructure/motn"
	"github.com/hszk-dev/reelwatch/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// The pooled cache client is created once here, shared by reference
	// into every retriever, and closed on shutdown.
	redisClient, err := cache.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer redisClient.Close()

	movieCache := cache.NewRedisMovieCache(redisClient)
	listCache := cache.NewRedisWatchlistCache(redisClient)
	posterCache := cache.NewRedisPosterCache(redisClient)
	optionsCache := cache.NewRedisOptionsCache(redisClient)

	site := letterboxd.NewClient(letterboxd.Config{
		BaseURL:       cfg.Letterboxd.BaseURL,
		PosterBaseURL: cfg.Letterboxd.PosterBaseURL,
		Timeout:       cfg.Letterboxd.Timeout,
	})
	search := motn.NewClient(motn.Config{
		BaseURL: cfg.Availability.BaseURL,
		APIKey:  cfg.Availability.APIKey,
		Timeout: cfg.Availability.Timeout,
	})

	watchlistSvc := usecase.NewWatchlistService(site, movieCache, listCache,
		usecase.SequentialPageFetcher{},
		usecase.WatchlistServiceConfig{WatchlistTTL: cfg.Cache.WatchlistTTL},
	)
	posterSvc := usecase.NewPosterService(site, posterCache,
		usecase.PosterServiceConfig{PosterTTL: cfg.Cache.PosterTTL},
	)
	availabilitySvc := usecase.NewAvailabilityService(search, movieCache, optionsCache,
		usecase.AvailabilityServiceConfig{StreamingTTL: cfg.Cache.StreamingTTL},
	)

	r := setupRouter(logger, watchlistSvc, posterSvc, availabilitySvc,
		model.CountryCode(cfg.Availability.DefaultCountry))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func setupRouter(
	logger *slog.Logger,
	watchlistSvc usecase.WatchlistService,
	posterSvc usecase.PosterService,
	availabilitySvc usecase.AvailabilityService,
	defaultCountry model.CountryCode,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	wh := handler.NewWatchlistHandler(watchlistSvc)
	ph := handler.NewPosterHandler(posterSvc)
	ah := handler.NewAvailabilityHandler(availabilitySvc, defaultCountry)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/watchlist", wh.Get)
		r.Get("/posters/{slugID}", ph.Get)
		r.Get("/availability/{movieID}", ah.Get)
	})

	return r
}
