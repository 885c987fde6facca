package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nflcentral/scores-api/internal/config"
	"github.com/nflcentral/scores-api/internal/dataset"
	"github.com/nflcentral/scores-api/internal/handlers"
	"github.com/nflcentral/scores-api/internal/logic"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Load-time errors are fatal: nothing can run without the table.
	store := dataset.NewStore(cfg.DataFile, logger)
	table, err := store.Open()
	if err != nil {
		sugar.Fatalw("Failed to load dataset", "path", cfg.DataFile, "error", err)
	}

	h := handlers.New(handlers.Config{
		Store:       store,
		Logger:      logger,
		KPI:         logic.NewKPIService(table),
		HeadToHead:  logic.NewHeadToHeadService(table),
		Aggregation: logic.NewAggregationService(table),
		Summary:     logic.NewSummaryService(table),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h.Routes(cfg.AllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("Server listening", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
