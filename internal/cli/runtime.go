package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jsamuelsen/randquote/internal/adapters/clients"
	"github.com/jsamuelsen/randquote/internal/adapters/clients/acl"
	"github.com/jsamuelsen/randquote/internal/app"
	"github.com/jsamuelsen/randquote/internal/platform/config"
	"github.com/jsamuelsen/randquote/internal/platform/logging"
	"github.com/jsamuelsen/randquote/internal/platform/telemetry"
	"github.com/jsamuelsen/randquote/internal/ports"
)

// provider is a quote backend that can also be probed by doctor.
type provider interface {
	ports.QuoteProvider
	ports.HealthChecker
}

// runtime holds everything a command needs after startup.
type runtime struct {
	cfg        *config.Config
	logger     *slog.Logger
	telemetry  *telemetry.Provider
	providers  []provider
	dispatcher *app.Dispatcher
}

// newRuntime loads configuration and wires the adapters.
func newRuntime(ctx context.Context, opts config.LoadOptions, build BuildInfo, stderr io.Writer) (*runtime, error) {
	if opts.Overrides == nil {
		opts.Overrides = map[string]any{}
	}

	opts.Overrides["app.version"] = build.Version

	cfg, err := config.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, stderr)

	tel, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	providers, err := newProviders(cfg)
	if err != nil {
		_ = tel.Shutdown(ctx)
		return nil, err
	}

	quoteProviders := make([]ports.QuoteProvider, 0, len(providers))
	for _, p := range providers {
		quoteProviders = append(quoteProviders, p)
	}

	dispatcher, err := app.NewDispatcher(app.DispatcherConfig{
		Providers: quoteProviders,
		Default:   config.DefaultProvider,
		Logger:    logger,
	})
	if err != nil {
		_ = tel.Shutdown(ctx)
		return nil, fmt.Errorf("creating dispatcher: %w", err)
	}

	logger.Debug("runtime ready",
		slog.String("provider", cfg.Quote.Provider),
		slog.Bool("telemetry", tel.Enabled()),
	)

	return &runtime{
		cfg:        cfg,
		logger:     logger,
		telemetry:  tel,
		providers:  providers,
		dispatcher: dispatcher,
	}, nil
}

// newProviders creates one HTTP client and adapter per provider.
// They log through the context logger so request IDs are attached.
func newProviders(cfg *config.Config) ([]provider, error) {
	userAgent := cfg.Client.UserAgent
	if userAgent == "" {
		userAgent = config.AppName + "/" + cfg.App.Version
	}

	newClient := func(name, baseURL string) (*clients.Client, error) {
		c, err := clients.New(&clients.Config{
			BaseURL:     baseURL,
			ServiceName: name,
			Timeout:     cfg.Client.Timeout,
			UserAgent:   userAgent,
		})
		if err != nil {
			return nil, fmt.Errorf("creating %s client: %w", name, err)
		}

		return c, nil
	}

	forismaticClient, err := newClient(acl.ForismaticName, cfg.Providers.Forismatic.BaseURL)
	if err != nil {
		return nil, err
	}

	hapesireClient, err := newClient(acl.HapesireName, cfg.Providers.Hapesire.BaseURL)
	if err != nil {
		return nil, err
	}

	return []provider{
		acl.NewForismaticClient(forismaticClient, nil),
		acl.NewHapesireClient(hapesireClient, nil),
	}, nil
}

// withRequest attaches a fresh request ID to the context and its logger.
func (r *runtime) withRequest(ctx context.Context) context.Context {
	id := clients.NewRequestID()

	ctx = logging.WithContext(ctx, r.logger)
	ctx = logging.WithRequestID(ctx, id)

	return clients.ContextWithRequestID(ctx, id)
}

// close flushes telemetry.
func (r *runtime) close(ctx context.Context) {
	if err := r.telemetry.Shutdown(ctx); err != nil {
		r.logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}
