// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/jsamuelsen/randquote/internal/domain"
	"github.com/jsamuelsen/randquote/internal/ports"
)

// Dispatcher selects a quote provider by name and delegates the fetch to it.
// The provider table is built once and never modified, so a Dispatcher is
// safe to share.
type Dispatcher struct {
	providers   map[string]ports.QuoteProvider
	defaultName string
	logger      *slog.Logger
}

// DispatcherConfig contains the dependencies of a Dispatcher.
type DispatcherConfig struct {
	// Providers are the registered backends. Names must be unique
	// ignoring case.
	Providers []ports.QuoteProvider

	// Default names the provider used for empty or unknown names.
	Default string

	// Logger defaults to slog.Default() if nil.
	Logger *slog.Logger
}

// NewDispatcher builds the provider table.
func NewDispatcher(cfg DispatcherConfig) (*Dispatcher, error) {
	if len(cfg.Providers) == 0 {
		return nil, errors.New("at least one provider is required")
	}

	table := make(map[string]ports.QuoteProvider, len(cfg.Providers))

	for _, p := range cfg.Providers {
		if p == nil {
			return nil, errors.New("provider must not be nil")
		}

		name := normalizeName(p.Name())
		if name == "" {
			return nil, errors.New("provider name must not be empty")
		}

		if _, exists := table[name]; exists {
			return nil, fmt.Errorf("duplicate provider %q", name)
		}

		table[name] = p
	}

	defaultName := normalizeName(cfg.Default)
	if _, ok := table[defaultName]; !ok {
		return nil, fmt.Errorf("default provider %q is not registered", cfg.Default)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		providers:   table,
		defaultName: defaultName,
		logger:      logger,
	}, nil
}

// Dispatch fetches one quote from the provider selected by name.
// Provider errors are returned unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, providerName string, lang domain.Language) (*domain.Quote, error) {
	name := d.ResolveName(providerName)

	d.logger.DebugContext(ctx, "fetching quote",
		slog.String("provider", name),
		slog.String("requested", providerName),
		slog.String("language", lang.String()),
	)

	quote, err := d.providers[name].FetchQuote(ctx, lang)
	if err != nil {
		d.logger.DebugContext(ctx, "failed to fetch quote",
			slog.String("provider", name),
			slog.Any("error", err),
		)

		return nil, err
	}

	d.logger.DebugContext(ctx, "fetched quote",
		slog.String("provider", name),
		slog.Bool("has_author", quote.HasAuthor()),
	)

	return quote, nil
}

// Resolve returns the provider that Dispatch would use for name.
func (d *Dispatcher) Resolve(name string) ports.QuoteProvider {
	return d.providers[d.ResolveName(name)]
}

// ResolveName maps a requested name to a registered one. Matching ignores
// case and surrounding whitespace; anything unknown maps to the default.
func (d *Dispatcher) ResolveName(name string) string {
	key := normalizeName(name)
	if _, ok := d.providers[key]; ok {
		return key
	}

	return d.defaultName
}

// DefaultName returns the fallback provider name.
func (d *Dispatcher) DefaultName() string {
	return d.defaultName
}

// Providers lists registered provider names in sorted order.
func (d *Dispatcher) Providers() []string {
	names := make([]string, 0, len(d.providers))
	for name := range d.providers {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
