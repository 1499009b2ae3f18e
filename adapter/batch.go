package adapter

import (
	"context"
	"net/url"

	"github.com/kbukum/pkgbridge/errors"
	"github.com/kbukum/pkgbridge/provider"
	"github.com/kbukum/pkgbridge/request"
	"github.com/kbukum/pkgbridge/stream"
)

// FindPackages searches for every name in names as one logical stream.
// Multi-element inputs run inside a single provider find session; results
// keep per-term order with no cross-term interleaving.
func (f *Facade) FindPackages(ctx context.Context, req request.Context, names []string, version provider.VersionRange) (*stream.Stream[Package], error) {
	req = f.defaultRequest(req)
	return batchFind(f, ctx, req, names, "find_packages",
		func(name string) (*stream.Stream[Package], error) {
			return f.FindPackage(ctx, req, name, version, provider.NoSession)
		},
		func(ctx context.Context, name string, session provider.SessionID, sink provider.PackageSink) error {
			return f.p.FindPackage(ctx, req, name, version, session, sink)
		})
}

// FindPackagesByURIs searches for every URI in uris as one logical stream.
// A nil element fails the whole call up front, exactly as it fails the
// single-item operation. URIs with unsupported schemes are skipped without
// a provider call, the same way the single-item operation short-circuits
// them.
func (f *Facade) FindPackagesByURIs(ctx context.Context, req request.Context, uris []*url.URL) (*stream.Stream[Package], error) {
	req = f.defaultRequest(req)
	for _, uri := range uris {
		if uri == nil {
			return nil, errors.MissingArgument("uri")
		}
	}
	return batchFind(f, ctx, req, uris, "find_packages_by_uris",
		func(uri *url.URL) (*stream.Stream[Package], error) {
			return f.FindPackageByURI(ctx, req, uri, provider.NoSession)
		},
		func(ctx context.Context, uri *url.URL, session provider.SessionID, sink provider.PackageSink) error {
			if !f.p.IsSupportedScheme(uri.Scheme) {
				return nil
			}
			return f.p.FindPackageByURI(ctx, req, uri, session, sink)
		})
}

// FindPackagesByFiles searches for every file path in paths as one
// logical stream, skipping unsupported extensions.
func (f *Facade) FindPackagesByFiles(ctx context.Context, req request.Context, paths []string) (*stream.Stream[Package], error) {
	req = f.defaultRequest(req)
	return batchFind(f, ctx, req, paths, "find_packages_by_files",
		func(path string) (*stream.Stream[Package], error) {
			return f.FindPackageByFile(ctx, req, path, provider.NoSession)
		},
		func(ctx context.Context, path string, session provider.SessionID, sink provider.PackageSink) error {
			if !f.p.IsSupportedFileExtension(fileExtension(path)) {
				return nil
			}
			return f.p.FindPackageByFile(ctx, req, path, session, sink)
		})
}

// batchFind implements the session protocol shared by the multi-term find
// operations. Empty inputs yield an empty completed stream without any
// provider call; single-element inputs delegate to the single-item
// operation unchanged, skipping session allocation. Larger inputs open
// one session, step through the terms sequentially with the same session
// id, and complete the session, all inside one producer goroutine so the
// caller sees a single ordered stream.
//
// Cancellation mid-stream stops further per-term calls and suppresses the
// completing call: an abandoned session is never finalized. A per-term
// provider error likewise abandons the session and terminates the stream
// with that error, untranslated.
func batchFind[K any](
	f *Facade,
	ctx context.Context,
	req request.Context,
	keys []K,
	op string,
	single func(K) (*stream.Stream[Package], error),
	step func(ctx context.Context, key K, session provider.SessionID, sink provider.PackageSink) error,
) (*stream.Stream[Package], error) {
	switch len(keys) {
	case 0:
		return stream.Empty[Package](), nil
	case 1:
		return single(keys[0])
	}

	return stream.Produce(ctx, func(ctx context.Context, emit func(Package) bool) error {
		ctx, done, count := f.observe(ctx, op)

		session, err := f.p.StartFind(ctx, req)
		if err != nil {
			done(err)
			return err
		}

		abandoned := false
		sink := provider.PackageSinkFunc(func(pkg provider.SoftwareIdentity) bool {
			count()
			if !emit(Package{SoftwareIdentity: pkg, Status: StatusAvailable}) {
				abandoned = true
				return false
			}
			return true
		})

		for _, key := range keys {
			if abandoned || ctx.Err() != nil {
				done(ctx.Err())
				return nil
			}
			if err := step(ctx, key, session, sink); err != nil {
				done(err)
				return err
			}
		}

		if abandoned || ctx.Err() != nil {
			done(ctx.Err())
			return nil
		}

		err = f.p.CompleteFind(ctx, req, session, sink)
		done(err)
		return err
	}), nil
}
