package adapter

import (
	"context"
	"fmt"
	"sync"

	"github.com/kbukum/pkgbridge/config"
	"github.com/kbukum/pkgbridge/errors"
	"github.com/kbukum/pkgbridge/logger"
	"github.com/kbukum/pkgbridge/observability"
	"github.com/kbukum/pkgbridge/provider"
)

// Host owns the set of loaded providers for one process, combining a
// factory registry with per-provider facades. Loading a provider creates
// it from its factory, initializes it, and wraps it in a Facade; callers
// interact with providers only through those facades.
type Host struct {
	mu       sync.RWMutex
	registry *provider.Registry
	facades  map[string]*Facade
	cfg      config.HostConfig
	log      *logger.Logger
	metrics  *observability.Metrics
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithHostLogger sets the host's logger.
func WithHostLogger(l *logger.Logger) HostOption {
	return func(h *Host) { h.log = l }
}

// WithHostMetrics sets the metrics recorder passed to every facade.
func WithHostMetrics(m *observability.Metrics) HostOption {
	return func(h *Host) { h.metrics = m }
}

// NewHost creates a Host for the given configuration.
func NewHost(cfg config.HostConfig, opts ...HostOption) *Host {
	h := &Host{
		registry: provider.NewRegistry(),
		facades:  make(map[string]*Facade),
		cfg:      cfg,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.log == nil {
		h.log = logger.Get("host")
	}
	return h
}

// Register adds a provider factory under the given name.
func (h *Host) Register(name string, factory provider.Factory) {
	h.registry.RegisterFactory(name, factory)
	h.log.Info("provider factory registered", map[string]interface{}{
		logger.FieldProvider: name,
	})
}

// Load creates a provider from its registered factory, runs its
// initialization hook if it declares one, and returns its facade.
// Providers disabled in configuration fail to load.
func (h *Host) Load(ctx context.Context, name string) (*Facade, error) {
	h.mu.RLock()
	if f, ok := h.facades[name]; ok {
		h.mu.RUnlock()
		return f, nil
	}
	h.mu.RUnlock()

	pcfg, configured := h.cfg.Providers[name]
	if configured && !pcfg.Enabled {
		return nil, errors.ProviderNotFound(name).WithDetail("reason", "disabled in configuration")
	}

	instance, err := h.registry.Create(name, pcfg.Settings)
	if err != nil {
		return nil, err
	}

	if init, ok := instance.(provider.Initializable); ok {
		if err := init.Init(ctx); err != nil {
			return nil, fmt.Errorf("initialize provider %q: %w", name, err)
		}
	}

	f := NewFacade(instance,
		WithLogger(h.log.WithFields(map[string]interface{}{logger.FieldProvider: name})),
		WithMetrics(h.metrics),
	)

	h.mu.Lock()
	h.facades[name] = f
	h.mu.Unlock()
	h.registry.Set(name, instance)

	h.log.Info("provider loaded", map[string]interface{}{
		logger.FieldProvider: name,
	})
	return f, nil
}

// Provider returns the facade of a loaded provider.
func (h *Host) Provider(name string) (*Facade, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	f, ok := h.facades[name]
	return f, ok
}

// Available returns the names of all registered provider factories.
func (h *Host) Available() []string {
	return h.registry.List()
}

// Loaded returns the names of all loaded providers.
func (h *Host) Loaded() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.facades))
	for name := range h.facades {
		names = append(names, name)
	}
	return names
}

// Shutdown closes every loaded provider that declares a close hook and
// forgets all facades. The first close error is returned; remaining
// providers are still closed.
func (h *Host) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	facades := h.facades
	h.facades = make(map[string]*Facade)
	h.mu.Unlock()

	var firstErr error
	for name, f := range facades {
		closer, ok := f.p.(provider.Closeable)
		if !ok {
			continue
		}
		if err := closer.Close(ctx); err != nil {
			h.log.WithError(err).Warn("provider close failed", map[string]interface{}{
				logger.FieldProvider: name,
			})
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
