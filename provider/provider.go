package provider

import (
	"context"
	"net/url"

	"github.com/kbukum/pkgbridge/request"
)

// Provider is the capability set a loaded package-provider plugin exposes
// to the host. All operations are synchronous and sink-style: results are
// emitted through the per-call sink, and the call returns once the
// provider has finished (or the sink reported abandonment).
type Provider interface {
	// Name returns the provider's unique name.
	Name() string

	// ResolvePackageSources emits every source the provider knows about.
	ResolvePackageSources(ctx context.Context, req request.Context, sink SourceSink) error
	// AddPackageSource registers a source and emits its final description.
	AddPackageSource(ctx context.Context, req request.Context, name, location string, trusted bool, sink SourceSink) error
	// RemovePackageSource unregisters a source and emits what was removed.
	RemovePackageSource(ctx context.Context, req request.Context, name string, sink SourceSink) error

	// StartFind allocates a session id scoping a batched find. Exactly one
	// CompleteFind must eventually close it unless the session is abandoned.
	StartFind(ctx context.Context, req request.Context) (SessionID, error)
	// CompleteFind closes a find session; the provider may emit an
	// aggregated or deduplicated result tail.
	CompleteFind(ctx context.Context, req request.Context, id SessionID, sink PackageSink) error
	// FindPackage searches for packages matching one name and optional
	// version bounds.
	FindPackage(ctx context.Context, req request.Context, name string, version VersionRange, id SessionID, sink PackageSink) error
	// FindPackageByURI searches by package URI.
	FindPackageByURI(ctx context.Context, req request.Context, uri *url.URL, id SessionID, sink PackageSink) error
	// FindPackageByFile searches by local package file.
	FindPackageByFile(ctx context.Context, req request.Context, file string, id SessionID, sink PackageSink) error

	// GetInstalledPackages emits installed packages, optionally filtered by name.
	GetInstalledPackages(ctx context.Context, req request.Context, name string, sink PackageSink) error
	// GetPackageDependencies emits the direct dependencies of a package.
	GetPackageDependencies(ctx context.Context, req request.Context, ref Reference, sink PackageSink) error

	// InstallPackage installs a previously discovered package.
	InstallPackage(ctx context.Context, req request.Context, ref Reference, sink PackageSink) error
	// UninstallPackage removes an installed package.
	UninstallPackage(ctx context.Context, req request.Context, ref Reference, sink PackageSink) error
	// DownloadPackage fetches a package file to the destination path.
	DownloadPackage(ctx context.Context, req request.Context, ref Reference, destination string, sink PackageSink) error

	// ExecuteElevatedAction runs a provider-defined privileged action to
	// completion. No partial results are surfaced.
	ExecuteElevatedAction(ctx context.Context, req request.Context, payload string) error

	// IsSupportedScheme reports whether FindPackageByURI understands the scheme.
	IsSupportedScheme(scheme string) bool
	// IsSupportedFileExtension reports whether FindPackageByFile understands
	// the file extension (lowercased, without the leading dot).
	IsSupportedFileExtension(ext string) bool
}

// Factory creates a provider instance from configuration.
type Factory func(cfg map[string]any) (Provider, error)
