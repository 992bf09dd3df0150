package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/shoptui/catalog"
	"github.com/qyinm/shoptui/logging"
	"github.com/qyinm/shoptui/mcpsrv"
	"github.com/qyinm/shoptui/types"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := mcpsrv.LoadConfig()
	// stdout carries the protocol
	logger, err := logging.New(logging.Options{Path: "stderr", Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal(err.Error())
	}
	layout, err := types.ParseLayoutMode(cfg.Layout)
	if err != nil {
		logger.Fatal(err.Error())
	}

	session := mcpsrv.NewSession(cat, layout, logger.Named("session"))
	server := mcpsrv.NewServer(session, "dev", &mcpsrv.ServerOptions{
		EnableSearch: cfg.EnableSearch,
		EnableAdmin:  cfg.EnableAdmin,
		Stdio:        true,
		StdioAdmin:   cfg.StdioAdmin,
	})

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		logger.Fatal("stdio mcp server failed", zap.Error(err))
	}
}
