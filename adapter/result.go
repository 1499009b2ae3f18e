package adapter

import "github.com/kbukum/pkgbridge/provider"

// Status describes how a result item relates to the operation that
// produced it. It is assigned by the adapter, never by the provider.
type Status int

const (
	// StatusAvailable marks items discovered by find/download operations.
	StatusAvailable Status = iota
	// StatusInstalled marks items reported by install and installed-package queries.
	StatusInstalled
	// StatusUninstalled marks items reported by uninstall.
	StatusUninstalled
	// StatusDependency marks items reported by dependency resolution.
	StatusDependency
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusInstalled:
		return "installed"
	case StatusUninstalled:
		return "uninstalled"
	case StatusDependency:
		return "dependency"
	default:
		return "unknown"
	}
}

// Package is a provider-reported software identity tagged with the
// status appropriate to the operation that produced it.
type Package struct {
	provider.SoftwareIdentity
	Status Status
}

// Source is a provider-reported package source tagged with a status.
type Source struct {
	provider.PackageSource
	Status Status
}
