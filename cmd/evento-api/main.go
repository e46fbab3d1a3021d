package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/evento-live/evento-gateway/internal/adapter"
	"github.com/evento-live/evento-gateway/internal/admin"
	"github.com/evento-live/evento-gateway/internal/api/middleware"
	"github.com/evento-live/evento-gateway/internal/api/rest"
	"github.com/evento-live/evento-gateway/internal/api/server"
	"github.com/evento-live/evento-gateway/internal/catalog"
	"github.com/evento-live/evento-gateway/internal/config"
	"github.com/evento-live/evento-gateway/internal/domain"
	"github.com/evento-live/evento-gateway/internal/gateway"
	"github.com/evento-live/evento-gateway/internal/logger"
	"github.com/evento-live/evento-gateway/internal/pricing"
	"github.com/evento-live/evento-gateway/internal/purchase"
	"github.com/evento-live/evento-gateway/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "evento-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Evento gateway API")

	// Connect to the Ethereum node
	dialer := adapter.NewEthBackendDialer()
	backend, err := dialer.Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Ethereum node",
			zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}
	defer backend.Close()
	logger.InfoCtx(ctx, "Connected to Ethereum node", zap.String("rpc_url", cfg.Ethereum.RPCURL))

	// Wire the wallet session over the keystore-backed signer
	provider := wallet.NewKeystoreProvider(wallet.KeystoreConfig{
		Path:       cfg.Wallet.KeystorePath,
		Passphrase: cfg.Wallet.Passphrase,
	}, backend)
	defer provider.Close()

	session := wallet.NewSession(provider)
	defer session.Close()

	// Wire the contract gateway
	gw, err := gateway.New(gateway.Config{
		ContractAddress:        cfg.Contract.Address,
		ReceiptPollMaxInterval: cfg.Contract.ReceiptPollMaxInterval,
	}, backend, session)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create contract gateway", zap.Error(err))
	}
	defer gw.Close()

	// Wire the catalog cache; a chain identity change drops the snapshot
	cache := catalog.NewCache(gw, adapter.NewClock())
	events, cancelSub := session.Subscribe()
	defer cancelSub()
	go func() {
		for ev := range events {
			if ev.Kind == wallet.SessionChainChanged {
				cache.Invalidate()
			}
		}
	}()

	// Seed the discount code registry from configuration
	seeds := make([]domain.DiscountCode, 0, len(cfg.DiscountCodes))
	for _, seed := range cfg.DiscountCodes {
		seeds = append(seeds, domain.DiscountCode{Code: seed.Code, Percentage: seed.Percentage})
	}
	registry, err := pricing.NewRegistry(seeds...)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to seed discount code registry", zap.Error(err))
	}

	orchestrator := purchase.NewOrchestrator(session, gw, cache, registry)
	surface := admin.NewSurface(gw, registry)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	handler := rest.NewHandler(session, cache, orchestrator, surface)
	srv := server.New(serverConfig, handler)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
