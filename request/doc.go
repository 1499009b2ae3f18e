// Package request defines the per-operation capability object callers hand
// to the adapter, and through it to provider plugins.
//
// A request context carries message output with format substitution and
// the untrusted-source confirmation predicate used by the install trust
// gate. It is borrowed for the duration of one logical operation and is
// never stored by the adapter.
package request
