// Package provider defines the contract between the pkgbridge host and
// loaded package-provider plugins.
//
// A provider is a capability-typed object: each operation receives a live
// request context and a per-call sink, emits zero or more results by
// calling back into the sink, and returns when it is done. Providers
// never return collections; the adapter package turns sink emission into
// pull-based result streams.
//
// Multi-term searches use the find-session protocol: StartFind allocates
// a provider-owned session id, any number of single-term calls carry that
// id, and CompleteFind closes the session so the provider can emit an
// aggregated or deduplicated tail. Session ids are opaque to the host.
package provider
