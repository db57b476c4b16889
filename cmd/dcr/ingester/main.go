package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-decred/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/decred"
	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/service/ingester"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"DCR_INGESTER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Network       string        `long:"network" env:"DCR_INGESTER_NETWORK" description:"network name (mainnet, testnet, simnet)" default:"mainnet"`
	RPCURL        string        `long:"rpc-url" env:"DCR_INGESTER_RPC_URL" description:"dcrd RPC URL" default:"https://127.0.0.1:9109"`
	RPCUser       string        `long:"rpc-user" env:"DCR_INGESTER_RPC_USER" description:"dcrd RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"DCR_INGESTER_RPC_PASSWORD" description:"dcrd RPC password"`
	RPCCert       string        `long:"rpc-cert" env:"DCR_INGESTER_RPC_CERT" description:"path to the dcrd RPC TLS certificate"`
	Workers       int           `long:"workers" env:"DCR_INGESTER_WORKERS" description:"concurrent block fetches" default:"20"`
	HeightLimit   uint64        `long:"height-limit" env:"DCR_INGESTER_HEIGHT_LIMIT" description:"missing heights sampled per iteration" default:"5000"`
	BatchSize     int           `long:"batch-size" env:"DCR_INGESTER_BATCH_SIZE" description:"blocks per ClickHouse write" default:"1000"`
	FlushInterval time.Duration `long:"flush-interval" env:"DCR_INGESTER_FLUSH_INTERVAL" description:"max time a block waits before being written" default:"30s"`
	WriteRPS      int           `long:"write-rps" env:"DCR_INGESTER_WRITE_RPS" description:"max ClickHouse write batches per second" default:"20"`
	MetricsAddr   string        `long:"metrics-addr" env:"DCR_INGESTER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	Debug         bool          `long:"debug" env:"DCR_INGESTER_DEBUG" description:"use the development logger"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("dcr ingester failed", zap.Error(err))
	}
	logger.Info("dcr ingester stopped")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network, err := model.ParseNetwork(cfg.Network)
	if err != nil {
		return err
	}
	coin := model.DCR

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword, cfg.RPCCert)
	if err != nil {
		return fmt.Errorf("init dcrd rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()

	scriptDecoder, err := decred.NewScriptDecoder(network)
	if err != nil {
		return fmt.Errorf("init script decoder: %w", err)
	}
	source := decred.NewSource(
		decred.NewRPCClient(rpcClient, metrics.NewRPCClient(coin, network)),
		decred.NewConverter(scriptDecoder, network),
		metrics.NewDecoder(coin, network),
		network,
	)

	svc, err := ingester.NewService(
		repo,
		source,
		metrics.NewIngester(coin, network),
		coin,
		network,
		ingester.Config{
			WorkerCount:   cfg.Workers,
			HeightLimit:   cfg.HeightLimit,
			BatchSize:     cfg.BatchSize,
			FlushInterval: cfg.FlushInterval,
			WriteRPS:      cfg.WriteRPS,
		},
		logger.Named("ingester"),
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password, certPath string) (*rpcclient.Client, error) {
	connCfg, err := newConnConfig(rawURL, user, password, certPath)
	if err != nil {
		return nil, err
	}
	return rpcclient.New(connCfg, nil)
}

func newConnConfig(rawURL, user, password, certPath string) (*rpcclient.ConnConfig, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
	}

	switch parsed.Scheme {
	case "http":
		cfg.DisableTLS = true
	case "https":
		if certPath != "" {
			cert, err := os.ReadFile(certPath)
			if err != nil {
				return nil, fmt.Errorf("read rpc cert: %w", err)
			}
			cfg.Certificates = cert
		}
	default:
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http or https", parsed.Scheme)
	}
	return cfg, nil
}
