// Package registry holds per-role construction metadata for agents and the
// explicit singleton cache used to share one agent instance per role.
//
// The cache is deliberately not ambient process state: callers construct a
// SingletonCache with a defined lifecycle (typically one per factory, one per
// test) and pass it by reference, so test isolation is a Reset call away.
package registry
