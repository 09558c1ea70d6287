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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"xrplScope/internal/cache"
	"xrplScope/internal/config"
	"xrplScope/internal/pipeline"
	"xrplScope/internal/resolver"
	"xrplScope/internal/server"
	"xrplScope/internal/storage"
	"xrplScope/internal/xrpl"
)

func main() {
	root := &cobra.Command{
		Use:          "adapter",
		Short:        "XRPL swap-event adapter",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the query surface",
		RunE:  runServe,
	}

	serveCmd.Flags().String("node", "", "rippled WebSocket URL")
	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
	serveCmd.Flags().Float64("rate-rps", 10, "per-client requests per second (0 disables)")
	serveCmd.Flags().Int("rate-burst", 20, "per-client burst size")
	serveCmd.Flags().Duration("cache-ttl", 5*time.Second, "response cache TTL")
	serveCmd.Flags().Duration("call-timeout", 30*time.Second, "node call timeout")
	serveCmd.Flags().Int("dial-retries", 3, "node dial retry attempts")
	serveCmd.Flags().Duration("dial-backoff", 500*time.Millisecond, "initial node dial backoff")
	serveCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(serveCmd)

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a ledger range and export swap events",
		RunE:  runScan,
	}

	scanCmd.Flags().String("node", "", "rippled WebSocket URL")
	scanCmd.Flags().Uint32("from", 0, "start ledger (inclusive)")
	scanCmd.Flags().Uint32("to", 0, "end ledger (inclusive)")
	scanCmd.Flags().String("out", "./data/events.jsonl", "output JSONL path")
	scanCmd.Flags().Duration("call-timeout", 30*time.Second, "node call timeout")
	scanCmd.Flags().Int("dial-retries", 3, "node dial retry attempts")
	scanCmd.Flags().Duration("dial-backoff", 500*time.Millisecond, "initial node dial backoff")
	scanCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(scanCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.NodeURL == "" {
		return fmt.Errorf("node url is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := dialNode(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	scanner := pipeline.NewScanner(client, logger)
	srv := server.NewServer(cfg.Listen, server.Deps{
		Head:      client,
		Events:    scanner,
		Assets:    resolver.NewAssetResolver(client, logger),
		Pairs:     resolver.NewPairResolver(client, logger),
		Cache:     cache.NewTTL(),
		CacheTTL:  cfg.CacheTTL,
		RateRPS:   cfg.RateRPS,
		RateBurst: cfg.RateBurst,
		Logger:    logger,
	})

	logger.Info("adapter start",
		zap.String("node", cfg.NodeURL),
		zap.String("listen", cfg.Listen),
		zap.Float64("rate_rps", cfg.RateRPS),
		zap.Duration("cache_ttl", cfg.CacheTTL),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runScan(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.NodeURL == "" {
		return fmt.Errorf("node url is required")
	}

	from, _ := cmd.Flags().GetUint32("from")
	to, _ := cmd.Flags().GetUint32("to")
	ledgerRange, err := pipeline.NewLedgerRange(from, to)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := dialNode(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	logger.Info("scan start",
		zap.String("node", cfg.NodeURL),
		zap.Uint32("from", from),
		zap.Uint32("to", to),
		zap.String("out", cfg.Out),
	)

	scanner := pipeline.NewScanner(client, logger)
	result, err := scanner.Scan(ctx, ledgerRange)
	if err != nil {
		return err
	}

	sink := storage.NewJsonlStorage(cfg.Out)
	if err := sink.PutEventBatch(result.Events); err != nil {
		return fmt.Errorf("store events: %w", err)
	}

	logger.Info("scan done",
		zap.Int("events", len(result.Events)),
		zap.Int("skipped", result.Skipped),
	)
	return nil
}

func dialNode(ctx context.Context, cfg config.Config, logger *zap.Logger) (*xrpl.Client, error) {
	client, err := xrpl.Dial(ctx, cfg.NodeURL,
		xrpl.WithLogger(logger),
		xrpl.WithCallTimeout(cfg.CallTimeout),
		xrpl.WithDialRetries(cfg.DialRetries),
		xrpl.WithDialBackoff(cfg.DialBackoff),
	)
	if err != nil {
		return nil, fmt.Errorf("connect node: %w", err)
	}
	return client, nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
