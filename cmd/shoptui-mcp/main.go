package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/qyinm/shoptui/catalog"
	"github.com/qyinm/shoptui/logging"
	"github.com/qyinm/shoptui/mcpsrv"
	"github.com/qyinm/shoptui/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := mcpsrv.LoadConfig()
	logger, err := logging.New(logging.Options{Path: "stderr", Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	layout, err := types.ParseLayoutMode(cfg.Layout)
	if err != nil {
		return err
	}

	session := mcpsrv.NewSession(cat, layout, logger.Named("session"))
	server := mcpsrv.NewServer(session, "dev", &mcpsrv.ServerOptions{
		EnableSearch: cfg.EnableSearch,
		EnableAdmin:  cfg.EnableAdmin,
		APIKey:       cfg.APIKey,
	})

	httpServer := &http.Server{
		Addr:              ":" + strings.TrimSpace(cfg.Port),
		Handler:           mcpsrv.NewMux(server, cfg, logger.Named("http")),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("shoptui-mcp listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
			return err
		}
		return nil
	})
	return g.Wait()
}
