package adapter

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/kbukum/pkgbridge/errors"
	"github.com/kbukum/pkgbridge/provider"
	"github.com/kbukum/pkgbridge/request"
	"github.com/kbukum/pkgbridge/stream"
)

// FindPackage searches the provider for packages matching name within the
// optional version bounds. Both filters pass through unmodified; the
// provider is the sole authority on matching semantics. A zero session id
// means the call is not part of a batch session.
func (f *Facade) FindPackage(ctx context.Context, req request.Context, name string, version provider.VersionRange, session provider.SessionID) (*stream.Stream[Package], error) {
	req = f.defaultRequest(req)
	return f.packageStream(ctx, "find_package", StatusAvailable, func(ctx context.Context, sink provider.PackageSink) error {
		return f.p.FindPackage(ctx, req, name, version, session, sink)
	}), nil
}

// FindPackageByURI searches the provider for a package identified by uri.
// If the provider does not declare support for the URI scheme, the call
// short-circuits to an empty completed stream without invoking the
// provider at all.
func (f *Facade) FindPackageByURI(ctx context.Context, req request.Context, uri *url.URL, session provider.SessionID) (*stream.Stream[Package], error) {
	req = f.defaultRequest(req)
	if uri == nil {
		return nil, errors.MissingArgument("uri")
	}
	if !f.p.IsSupportedScheme(uri.Scheme) {
		return stream.Empty[Package](), nil
	}
	return f.packageStream(ctx, "find_package_by_uri", StatusAvailable, func(ctx context.Context, sink provider.PackageSink) error {
		return f.p.FindPackageByURI(ctx, req, uri, session, sink)
	}), nil
}

// FindPackageByFile searches the provider for a package identified by a
// local file path. Unsupported file extensions short-circuit to an empty
// completed stream, matched case-insensitively.
func (f *Facade) FindPackageByFile(ctx context.Context, req request.Context, path string, session provider.SessionID) (*stream.Stream[Package], error) {
	req = f.defaultRequest(req)
	if strings.TrimSpace(path) == "" {
		return nil, errors.MissingArgument("path")
	}
	if !f.p.IsSupportedFileExtension(fileExtension(path)) {
		return stream.Empty[Package](), nil
	}
	return f.packageStream(ctx, "find_package_by_file", StatusAvailable, func(ctx context.Context, sink provider.PackageSink) error {
		return f.p.FindPackageByFile(ctx, req, path, session, sink)
	}), nil
}

// StartFind opens a provider find session and yields exactly one session
// id through the stream. Callers driving the session protocol manually
// pair it with CompleteFind; FindPackages and friends manage the session
// internally.
func (f *Facade) StartFind(ctx context.Context, req request.Context) *stream.Stream[provider.SessionID] {
	req = f.defaultRequest(req)
	return stream.Future(ctx, func(ctx context.Context) (provider.SessionID, error) {
		ctx, done, count := f.observe(ctx, "start_find")
		session, err := f.p.StartFind(ctx, req)
		if err == nil {
			count()
		}
		done(err)
		return session, err
	})
}

// CompleteFind closes a previously started find session, streaming any
// aggregated results the provider held back until completion.
func (f *Facade) CompleteFind(ctx context.Context, req request.Context, session provider.SessionID) (*stream.Stream[Package], error) {
	req = f.defaultRequest(req)
	if session == provider.NoSession {
		return nil, errors.SessionViolation("complete called without an open session")
	}
	return f.packageStream(ctx, "complete_find", StatusAvailable, func(ctx context.Context, sink provider.PackageSink) error {
		return f.p.CompleteFind(ctx, req, session, sink)
	}), nil
}

// fileExtension normalizes a path's extension for the provider's support
// predicate: lowercased, without the leading dot.
func fileExtension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
