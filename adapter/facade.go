package adapter

import (
	"context"
	"time"

	"github.com/kbukum/pkgbridge/errors"
	"github.com/kbukum/pkgbridge/logger"
	"github.com/kbukum/pkgbridge/observability"
	"github.com/kbukum/pkgbridge/provider"
	"github.com/kbukum/pkgbridge/request"
	"github.com/kbukum/pkgbridge/stream"
	"github.com/kbukum/pkgbridge/validation"
)

// Facade is the single entry point for one loaded provider. Each public
// package-management verb maps to exactly one provider call, returned to
// the caller as a pull-based result stream. The facade is stateless across
// calls except for the cached provider name.
type Facade struct {
	p       provider.Provider
	name    string
	log     *logger.Logger
	metrics *observability.Metrics
}

// Option configures a Facade.
type Option func(*Facade)

// WithLogger sets the logger used for invocation logging.
func WithLogger(l *logger.Logger) Option {
	return func(f *Facade) { f.log = l }
}

// WithMetrics sets the metrics recorder for provider invocations.
func WithMetrics(m *observability.Metrics) Option {
	return func(f *Facade) { f.metrics = m }
}

// NewFacade wraps a provider instance. The provider name is queried once
// and cached for the facade's lifetime.
func NewFacade(p provider.Provider, opts ...Option) *Facade {
	f := &Facade{
		p:    p,
		name: p.Name(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.log == nil {
		f.log = logger.Get("adapter").WithFields(map[string]interface{}{
			logger.FieldProvider: f.name,
		})
	}
	return f
}

// Name returns the cached provider name.
func (f *Facade) Name() string { return f.name }

// ResolvePackageSources lists the sources the provider knows about.
func (f *Facade) ResolvePackageSources(ctx context.Context, req request.Context) (*stream.Stream[Source], error) {
	req = f.defaultRequest(req)
	return f.sourceStream(ctx, "resolve_package_sources", func(ctx context.Context, sink provider.SourceSink) error {
		return f.p.ResolvePackageSources(ctx, req, sink)
	}), nil
}

// AddPackageSource registers a new source with the provider.
func (f *Facade) AddPackageSource(ctx context.Context, req request.Context, name, location string, trusted bool) (*stream.Stream[Source], error) {
	req = f.defaultRequest(req)
	v := validation.New()
	v.Required("name", name)
	v.RequiredURI("location", location)
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return f.sourceStream(ctx, "add_package_source", func(ctx context.Context, sink provider.SourceSink) error {
		return f.p.AddPackageSource(ctx, req, name, location, trusted, sink)
	}), nil
}

// RemovePackageSource unregisters a source from the provider.
func (f *Facade) RemovePackageSource(ctx context.Context, req request.Context, name string) (*stream.Stream[Source], error) {
	req = f.defaultRequest(req)
	if err := validation.Required("name", name); err != nil {
		return nil, err
	}
	return f.sourceStream(ctx, "remove_package_source", func(ctx context.Context, sink provider.SourceSink) error {
		return f.p.RemovePackageSource(ctx, req, name, sink)
	}), nil
}

// GetInstalledPackages lists packages the provider reports as installed,
// optionally filtered by name. The filter passes through unmodified; the
// provider owns matching semantics.
func (f *Facade) GetInstalledPackages(ctx context.Context, req request.Context, name string) (*stream.Stream[Package], error) {
	req = f.defaultRequest(req)
	return f.packageStream(ctx, "get_installed_packages", StatusInstalled, func(ctx context.Context, sink provider.PackageSink) error {
		return f.p.GetInstalledPackages(ctx, req, name, sink)
	}), nil
}

// GetPackageDependencies resolves the dependencies of a previously
// discovered package by its opaque reference.
func (f *Facade) GetPackageDependencies(ctx context.Context, req request.Context, ref provider.Reference) (*stream.Stream[Package], error) {
	req = f.defaultRequest(req)
	if ref.IsZero() {
		return nil, errors.MissingArgument("package reference")
	}
	return f.packageStream(ctx, "get_package_dependencies", StatusDependency, func(ctx context.Context, sink provider.PackageSink) error {
		return f.p.GetPackageDependencies(ctx, req, ref, sink)
	}), nil
}

// UninstallPackage removes an installed package by its opaque reference.
func (f *Facade) UninstallPackage(ctx context.Context, req request.Context, ref provider.Reference) (*stream.Stream[Package], error) {
	req = f.defaultRequest(req)
	if ref.IsZero() {
		return nil, errors.MissingArgument("package reference")
	}
	return f.packageStream(ctx, "uninstall_package", StatusUninstalled, func(ctx context.Context, sink provider.PackageSink) error {
		return f.p.UninstallPackage(ctx, req, ref, sink)
	}), nil
}

// DownloadPackage fetches a package payload to a local location without
// installing it.
func (f *Facade) DownloadPackage(ctx context.Context, req request.Context, ref provider.Reference, location string) (*stream.Stream[Package], error) {
	req = f.defaultRequest(req)
	if ref.IsZero() {
		return nil, errors.MissingArgument("package reference")
	}
	if err := validation.Required("location", location); err != nil {
		return nil, err
	}
	return f.packageStream(ctx, "download_package", StatusAvailable, func(ctx context.Context, sink provider.PackageSink) error {
		return f.p.DownloadPackage(ctx, req, ref, location, sink)
	}), nil
}

// defaultRequest substitutes a non-interactive context when the caller
// supplies none. Install does not use this path: a missing context there
// is an argument error.
func (f *Facade) defaultRequest(req request.Context) request.Context {
	if req == nil {
		return request.Default()
	}
	return req
}

// packageStream runs one provider call on its own goroutine and exposes
// its emissions as a pull-based stream, tagging each item with status.
// Provider errors pass through the stream untranslated.
func (f *Facade) packageStream(ctx context.Context, op string, status Status, call func(context.Context, provider.PackageSink) error) *stream.Stream[Package] {
	return stream.Produce(ctx, func(ctx context.Context, emit func(Package) bool) error {
		ctx, done, count := f.observe(ctx, op)
		err := call(ctx, provider.PackageSinkFunc(func(pkg provider.SoftwareIdentity) bool {
			count()
			return emit(Package{SoftwareIdentity: pkg, Status: status})
		}))
		done(err)
		return err
	})
}

// sourceStream is packageStream for source-yielding operations.
func (f *Facade) sourceStream(ctx context.Context, op string, call func(context.Context, provider.SourceSink) error) *stream.Stream[Source] {
	return stream.Produce(ctx, func(ctx context.Context, emit func(Source) bool) error {
		ctx, done, count := f.observe(ctx, op)
		err := call(ctx, provider.SourceSinkFunc(func(src provider.PackageSource) bool {
			count()
			status := StatusAvailable
			if src.Registered {
				status = StatusInstalled
			}
			return emit(Source{PackageSource: src, Status: status})
		}))
		done(err)
		return err
	})
}

// observe opens a traced, metered invocation scope. The returned context
// carries the invocation span and must be the one handed to the provider,
// so provider-side spans nest under it. The done callback finalizes the
// span and records duration and outcome; count increments the
// emitted-item tally.
func (f *Facade) observe(ctx context.Context, op string) (spanCtx context.Context, done func(error), count func()) {
	start := time.Now()
	items := int64(0)

	spanCtx, span := observability.StartSpan(ctx, "provider."+op)
	observability.SetSpanAttribute(spanCtx, observability.AttrProviderName, f.name)
	observability.SetSpanAttribute(spanCtx, observability.AttrOperationName, op)

	if f.metrics != nil {
		f.metrics.RecordInvocationStart(ctx)
	}

	count = func() { items++ }
	done = func(err error) {
		duration := time.Since(start)
		status := "ok"
		if err != nil {
			status = "error"
			if ctx.Err() != nil {
				status = "cancelled"
			}
			observability.SetSpanError(spanCtx, err)
			f.log.WithError(err).Warn("provider call failed", logger.Fields(
				logger.FieldOperation, op,
			))
		} else {
			f.log.Debug("provider call completed", logger.Fields(
				logger.FieldOperation, op,
				logger.FieldDuration, duration.String(),
			))
		}
		observability.SetSpanAttribute(spanCtx, observability.AttrItemCount, items)
		observability.SetSpanAttribute(spanCtx, observability.AttrStatus, status)
		span.End()

		if f.metrics != nil {
			f.metrics.RecordInvocation(ctx, f.name, op, status, duration)
			if items > 0 {
				f.metrics.RecordItems(ctx, f.name, op, items)
			}
			if status == "error" {
				f.metrics.RecordError(ctx, op, f.name)
			}
		}
	}
	return spanCtx, done, count
}
