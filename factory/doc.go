// Package factory builds role-bound agent instances from registry metadata,
// resolving declared dependencies against an optional container and caching
// singleton instances in a caller-owned cache.
//
// Creation calls are fail-fast with role-qualified errors; the validation
// entry points are fail-soft audits that report every problem without
// throwing, intended for diagnostics and CI checks.
package factory
