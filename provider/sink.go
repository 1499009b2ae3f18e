package provider

// PackageSink receives software identities as a provider produces them.
// Yield returns false when the consumer has abandoned the call; the
// provider must stop emitting and return promptly.
type PackageSink interface {
	Yield(pkg SoftwareIdentity) bool
}

// SourceSink receives package sources as a provider produces them.
type SourceSink interface {
	Yield(source PackageSource) bool
}

// PackageSinkFunc adapts a function to the PackageSink interface.
type PackageSinkFunc func(pkg SoftwareIdentity) bool

// Yield calls the function.
func (f PackageSinkFunc) Yield(pkg SoftwareIdentity) bool { return f(pkg) }

// SourceSinkFunc adapts a function to the SourceSink interface.
type SourceSinkFunc func(source PackageSource) bool

// Yield calls the function.
func (f SourceSinkFunc) Yield(source PackageSource) bool { return f(source) }
