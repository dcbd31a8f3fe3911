package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "phonefmt/internal/http"
	"phonefmt/internal/http/router"
	"phonefmt/internal/phone"
	"phonefmt/platform/config"
	"phonefmt/platform/events"
	"phonefmt/platform/logger"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	eventBus := events.NewInMemoryBus(log)
	eventBus.Subscribe(phone.TemplatesReplaced{}.EventName(), events.HandlerFunc(func(ctx context.Context, e events.Event) error {
		replaced, ok := e.(phone.TemplatesReplaced)
		if !ok {
			return nil
		}
		log.WithContext(ctx).Info("phone templates replaced",
			"replaced_by", replaced.ReplacedBy,
			"countries", replaced.Countries,
			"templates", replaced.Templates,
		)
		return nil
	}))

	phoneModule, err := phone.NewModule(cfg, eventBus, log)
	if err != nil {
		log.Error("failed to initialize phone module", "error", err)
		panic("failed to initialize phone module: " + err.Error())
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:  cfg,
		Logger:  log,
		Health:  phoneModule.Service(),
		Modules: []apphttp.Module{phoneModule},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	eventBus.Wait()
	if err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
