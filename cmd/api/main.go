// Command api runs the gostore HTTP server and its database
// migrations.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wicaksn/gostore/internal/config"
	"github.com/wicaksn/gostore/internal/database"
	"github.com/wicaksn/gostore/internal/handler"
	"github.com/wicaksn/gostore/internal/lib/email"
	"github.com/wicaksn/gostore/internal/lib/utils"
	"github.com/wicaksn/gostore/internal/logger"
	"github.com/wicaksn/gostore/internal/middleware"
	"github.com/wicaksn/gostore/internal/repository"
	"github.com/wicaksn/gostore/internal/router"
	"github.com/wicaksn/gostore/internal/server"
	"github.com/wicaksn/gostore/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	root := &cobra.Command{
		Use:          "gostore",
		Short:        "E-commerce store API server",
		SilenceUsage: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate()
			},
		},
		&cobra.Command{
			Use:   "config",
			Short: "Print the resolved configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfig()
			},
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	srv.Job.InitHandlers(email.NewClient(cfg, log), services.Reports)
	if err := srv.Job.Start(); err != nil {
		return fmt.Errorf("failed to start job server: %w", err)
	}

	middlewares := middleware.NewMiddlewares(srv)
	handlers := handler.NewHandlers(srv, services)

	e := router.New(srv, handlers, middlewares)
	srv.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}

	loggerService.Shutdown(10 * time.Second)

	log.Info().Msg("server stopped")
	return nil
}

func runMigrate() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer loggerService.Shutdown(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := database.Migrate(ctx, log, cfg); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Info().Msg("migrations applied")
	return nil
}

// runConfig prints the resolved configuration for debugging env setup.
// Secrets stay in the struct, so keep the output out of logs.
func runConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	utils.PrintJSON(cfg)
	return nil
}
