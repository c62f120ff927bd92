package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fyyur/internal/cache"
	"fyyur/internal/database"
	"fyyur/internal/handler"
	"fyyur/internal/repository"
	"fyyur/internal/service"
	"fyyur/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the web server on APP_PORT.

Flash messages are kept in Redis unless FLASH_BACKEND=memory. With
DB_AUTO_MIGRATE=true the schema is migrated before the server starts.`,
	RunE: runServe,
}

func newServices(pool *pgxpool.Pool) handler.Services {
	venueRepo := repository.NewVenueRepository(pool)
	artistRepo := repository.NewArtistRepository(pool)
	showRepo := repository.NewShowRepository(pool)

	return handler.Services{
		Venues:  service.NewVenueService(venueRepo, showRepo),
		Artists: service.NewArtistService(artistRepo, showRepo),
		Shows:   service.NewShowService(showRepo, venueRepo, artistRepo),
	}
}

func newFlashStore() (cache.FlashStore, func(), error) {
	switch cfg.App.FlashBackend {
	case "memory":
		return cache.NewMemoryFlashStore(cfg.App.FlashTTL), func() {}, nil
	case "redis":
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return cache.NewRedisFlashStore(rdb, cfg.App.FlashTTL), func() { _ = rdb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown flash backend %q", cfg.App.FlashBackend)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("cli")
	gin.SetMode(cfg.App.Mode)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := database.Migrate(ctx, pool)
		if err != nil {
			return err
		}
		log.Info("migrations applied", zap.Strings("applied", applied))
	}

	flashes, closeFlashes, err := newFlashStore()
	if err != nil {
		return fmt.Errorf("init flash store: %w", err)
	}
	defer closeFlashes()

	router, err := handler.NewRouter(cfg.App, newServices(pool), flashes)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("flash_backend", cfg.App.FlashBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
