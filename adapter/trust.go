package adapter

import (
	"context"

	"github.com/kbukum/pkgbridge/errors"
	"github.com/kbukum/pkgbridge/provider"
	"github.com/kbukum/pkgbridge/request"
	"github.com/kbukum/pkgbridge/stream"
)

// InstallPackage installs a previously discovered package. Install is
// mutation-sensitive, so a missing request context is an argument error
// rather than being defaulted away.
//
// When the provider did not mark the package as coming from a trusted
// source, the request context is asked synchronously whether to continue.
// A decline, and equally a trust-prompt failure, resolves to a warning
// plus an empty completed stream: nothing installed, no error surfaced,
// and the provider's install call never happens. Trusted packages skip
// the prompt entirely.
func (f *Facade) InstallPackage(ctx context.Context, req request.Context, pkg provider.SoftwareIdentity) (*stream.Stream[Package], error) {
	if req == nil {
		return nil, errors.MissingContext("install package")
	}
	if pkg.Reference.IsZero() {
		return nil, errors.MissingArgument("package reference")
	}

	if !pkg.FromTrustedSource {
		proceed, err := req.ShouldContinueWithUntrustedPackageSource(pkg.Name, pkg.Source)
		if err != nil || !proceed {
			req.Warning("skipping install of '%s': source '%s' is not trusted", pkg.Name, pkg.Source)
			return stream.Empty[Package](), nil
		}
	}

	return f.packageStream(ctx, "install_package", StatusInstalled, func(ctx context.Context, sink provider.PackageSink) error {
		return f.p.InstallPackage(ctx, req, pkg.Reference, sink)
	}), nil
}
