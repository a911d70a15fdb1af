package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/moneytracker-go/internal/config"
	"github.com/yndnr/moneytracker-go/internal/core/service"
	"github.com/yndnr/moneytracker-go/internal/datasource"
	"github.com/yndnr/moneytracker-go/internal/gateway"
	"github.com/yndnr/moneytracker-go/internal/infra/buildinfo"
	"github.com/yndnr/moneytracker-go/internal/infra/shutdown"
	"github.com/yndnr/moneytracker-go/internal/infra/tlsroots"
	"github.com/yndnr/moneytracker-go/internal/storage"
	"github.com/yndnr/moneytracker-go/internal/telemetry/logger"
	"github.com/yndnr/moneytracker-go/internal/telemetry/metric"
)

const shutdownTimeout = 5 * time.Second

// Env is everything a command needs, built once per invocation.
type Env struct {
	Config   *config.ClientConfig
	Sources  datasource.Config
	Logger   logger.Logger
	Metrics  *metric.Registry
	Store    storage.Store
	Client   *gateway.Client
	Services *service.Services

	cleanup *shutdown.Handler
}

// envFrom returns the invocation's Env, building it on first use.
func envFrom(c *cli.Context) (*Env, error) {
	if env, ok := c.App.Metadata[envKey].(*Env); ok {
		return env, nil
	}
	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}

	env, err := newEnv(c.Context, c, ParseGlobalFlags(c))
	if err != nil {
		return nil, err
	}
	c.App.Metadata[envKey] = env
	c.Context = logger.WithLogger(c.Context, env.Logger)
	return env, nil
}

func newEnv(ctx context.Context, c *cli.Context, flags *GlobalFlags) (*Env, error) {
	cfg, err := config.Load(flags.ConfigPath, flags.ConfigOverrides())
	if err != nil {
		return nil, err
	}
	if flags.Verbose {
		cfg.Log.Level = "debug"
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	metrics := metric.NewRegistry()
	cleanup := shutdown.NewHandler(shutdownTimeout)

	if flags.Metrics {
		cleanup.OnShutdown(func(context.Context) error {
			return metrics.WriteText(c.App.ErrWriter)
		})
	}

	store, err := openStore(cfg, flags.Ephemeral, log, metrics)
	if err != nil {
		return nil, err
	}
	cleanup.OnShutdown(func(context.Context) error {
		return store.Close()
	})

	sources := datasource.Resolve(cfg.API.Mode, cfg.API.BaseURL, datasource.Overrides{
		Wallets:      cfg.Sources.Wallets,
		Transactions: cfg.Sources.Transactions,
	})

	tlsConfig, err := tlsroots.Load(cfg.HTTP.CAFile)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("http.ca_file: %w", err), cleanup.Run())
	}

	clientOpts := []gateway.Option{
		gateway.WithTLSConfig(tlsConfig),
		gateway.WithTimeout(cfg.HTTP.Timeout),
		gateway.WithMetrics(metrics),
		gateway.WithLogger(log.Component("gateway").Slog()),
		gateway.WithUserAgent(buildinfo.UserAgent()),
	}
	if cfg.HTTP.MaxRequestsPerSecond > 0 {
		clientOpts = append(clientOpts, gateway.WithRateLimit(cfg.HTTP.MaxRequestsPerSecond, cfg.HTTP.Burst))
	}
	client := gateway.New(sources.BaseURL(), clientOpts...)

	services := service.NewServices(ctx, sources, client, store,
		service.WithLogger(log.Component("session").Slog()),
		service.WithMetrics(metrics),
		service.WithMockDelay(cfg.Auth.MockDelay),
	)

	log.Debug("client ready",
		"mode", sources.Mode(),
		"base_url", sources.BaseURL(),
		"auth", sources.Source(datasource.DomainAuth),
		"ephemeral", flags.Ephemeral)

	return &Env{
		Config:   cfg,
		Sources:  sources,
		Logger:   log,
		Metrics:  metrics,
		Store:    store,
		Client:   client,
		Services: services,
		cleanup:  cleanup,
	}, nil
}

func openStore(cfg *config.ClientConfig, ephemeral bool, log logger.Logger, metrics *metric.Registry) (storage.Store, error) {
	opts := []storage.Option{
		storage.WithLogger(log.Component("token_store").Slog()),
		storage.WithMetrics(metrics),
	}
	if ephemeral {
		return storage.NewMemoryTokenStore(opts...), nil
	}

	if cfg.Storage.EncryptionKey != "" {
		sealer, err := storage.NewSealer(cfg.Storage.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("storage.encryption_key: %w", err)
		}
		opts = append(opts, storage.WithSealer(sealer))
	}

	store, err := storage.NewBadgerTokenStore(storage.BadgerConfig{Dir: cfg.Storage.Dir}, opts...)
	if err != nil {
		return nil, fmt.Errorf("open token store: %w", err)
	}
	return store, nil
}

// Close releases the token store and flushes metrics output.
func (e *Env) Close() error {
	return e.cleanup.Run()
}
