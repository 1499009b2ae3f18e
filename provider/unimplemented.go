package provider

import (
	"context"
	"fmt"
	"net/url"

	"github.com/kbukum/pkgbridge/request"
)

// Unimplemented provides failing stubs for every Provider operation.
// Embed it in provider implementations (and test fakes) so they only
// implement the capabilities they actually support.
type Unimplemented struct{}

func (Unimplemented) Name() string { return "unimplemented" }

func (Unimplemented) ResolvePackageSources(context.Context, request.Context, SourceSink) error {
	return errNotImplemented("ResolvePackageSources")
}

func (Unimplemented) AddPackageSource(_ context.Context, _ request.Context, _, _ string, _ bool, _ SourceSink) error {
	return errNotImplemented("AddPackageSource")
}

func (Unimplemented) RemovePackageSource(_ context.Context, _ request.Context, _ string, _ SourceSink) error {
	return errNotImplemented("RemovePackageSource")
}

func (Unimplemented) StartFind(context.Context, request.Context) (SessionID, error) {
	return NoSession, errNotImplemented("StartFind")
}

func (Unimplemented) CompleteFind(_ context.Context, _ request.Context, _ SessionID, _ PackageSink) error {
	return errNotImplemented("CompleteFind")
}

func (Unimplemented) FindPackage(_ context.Context, _ request.Context, _ string, _ VersionRange, _ SessionID, _ PackageSink) error {
	return errNotImplemented("FindPackage")
}

func (Unimplemented) FindPackageByURI(_ context.Context, _ request.Context, _ *url.URL, _ SessionID, _ PackageSink) error {
	return errNotImplemented("FindPackageByURI")
}

func (Unimplemented) FindPackageByFile(_ context.Context, _ request.Context, _ string, _ SessionID, _ PackageSink) error {
	return errNotImplemented("FindPackageByFile")
}

func (Unimplemented) GetInstalledPackages(_ context.Context, _ request.Context, _ string, _ PackageSink) error {
	return errNotImplemented("GetInstalledPackages")
}

func (Unimplemented) GetPackageDependencies(_ context.Context, _ request.Context, _ Reference, _ PackageSink) error {
	return errNotImplemented("GetPackageDependencies")
}

func (Unimplemented) InstallPackage(_ context.Context, _ request.Context, _ Reference, _ PackageSink) error {
	return errNotImplemented("InstallPackage")
}

func (Unimplemented) UninstallPackage(_ context.Context, _ request.Context, _ Reference, _ PackageSink) error {
	return errNotImplemented("UninstallPackage")
}

func (Unimplemented) DownloadPackage(_ context.Context, _ request.Context, _ Reference, _ string, _ PackageSink) error {
	return errNotImplemented("DownloadPackage")
}

func (Unimplemented) ExecuteElevatedAction(_ context.Context, _ request.Context, _ string) error {
	return errNotImplemented("ExecuteElevatedAction")
}

func (Unimplemented) IsSupportedScheme(string) bool        { return false }
func (Unimplemented) IsSupportedFileExtension(string) bool { return false }

func errNotImplemented(op string) error {
	return fmt.Errorf("%s is not implemented by this provider", op)
}
