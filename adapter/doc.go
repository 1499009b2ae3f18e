// Package adapter bridges host-side package-management verbs onto
// pluggable provider implementations.
//
// Each loaded provider is wrapped in a Facade whose operations validate
// their inputs synchronously, invoke exactly one provider call on a
// worker goroutine, and hand results back as a pull-based stream of
// status-tagged items. Multi-term find operations run the provider's
// session protocol (start find, per-term queries, complete find) inside a
// single ordered stream. Installs from untrusted sources pass through a
// trust gate that consults the request context before any provider work
// happens.
//
//	host := adapter.NewHost(cfg)
//	host.Register("nuget", nuget.New)
//	facade, err := host.Load(ctx, "nuget")
//	results, err := facade.FindPackages(ctx, req, []string{"zlib", "openssl"}, provider.VersionRange{})
//	for {
//	    pkg, ok, err := results.Next(ctx)
//	    ...
//	}
package adapter
