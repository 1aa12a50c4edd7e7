package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/workhub/workhub-api/internal/cache"
	dbpkg "github.com/workhub/workhub-api/internal/db"
	"github.com/workhub/workhub-api/internal/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, logger, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer dbpkg.Close(db)

		if err := seedAdmin(ctx, cfg, logger, db); err != nil {
			return err
		}

		businessCache, closeCache := cache.FromConfig(ctx, cfg, logger)
		defer closeCache()

		if cfg.IsProd {
			gin.SetMode(gin.ReleaseMode)
		}

		r := gin.New()
		r.Use(gin.Recovery())

		routes.RegisterRoutes(r, routes.Deps{
			DB:     db,
			Config: cfg,
			Log:    logger,
			Cache:  businessCache,
		})

		srv := &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.WithField("addr", cfg.Addr()).Info("server running")
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
