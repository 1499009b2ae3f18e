package provider

// SessionID is a provider-allocated handle scoping a find session. The
// host never interprets its value beyond passing it back to the provider
// that issued it. NoSession marks single-term calls made outside any
// session.
type SessionID int

// NoSession is the session id used for calls made outside a find session.
const NoSession SessionID = 0

// Reference is the opaque fast-reference token a provider attaches to the
// packages it emits so the host can re-identify them in later calls.
// Its only legal origin is a provider-emitted result; the host never
// fabricates one.
type Reference struct {
	value string
}

// NewReference wraps a provider-internal key. Intended for provider
// implementations when emitting results.
func NewReference(value string) Reference {
	return Reference{value: value}
}

// Value returns the provider-internal key.
func (r Reference) Value() string { return r.value }

// IsZero reports whether the reference was never set by a provider.
func (r Reference) IsZero() bool { return r.value == "" }

// String implements fmt.Stringer for log output.
func (r Reference) String() string { return r.value }

// SoftwareIdentity describes one package as discovered or acted on by a
// provider. The adapter assigns installation status; providers only
// describe the package itself.
type SoftwareIdentity struct {
	// Reference re-identifies this package to the provider that emitted it.
	Reference Reference
	// Name is the canonical package name.
	Name string
	// Version is the package version in the provider's own scheme.
	Version string
	// Source identifies the package source this identity came from.
	Source string
	// Summary is a short human-readable description.
	Summary string
	// FromTrustedSource is the provider's assertion that the package came
	// from a trusted source. The install trust gate relies on it.
	FromTrustedSource bool
}

// PackageSource describes a registered or discovered package source.
type PackageSource struct {
	// Name is the source's registered name.
	Name string
	// Location is the source URI or path.
	Location string
	// Trusted marks sources installs may proceed from without prompting.
	Trusted bool
	// Registered marks sources persisted in the provider's configuration.
	Registered bool
	// Validated marks sources the provider has verified as reachable.
	Validated bool
}

// VersionRange carries optional version bounds for find operations. The
// provider is the sole authority on matching semantics; the host passes
// the bounds through unmodified.
type VersionRange struct {
	// Required pins an exact version. When set, bounds are ignored.
	Required string
	// Minimum is the inclusive lower bound.
	Minimum string
	// Maximum is the inclusive upper bound.
	Maximum string
}

// IsZero reports whether no version constraint was supplied.
func (v VersionRange) IsZero() bool {
	return v.Required == "" && v.Minimum == "" && v.Maximum == ""
}
