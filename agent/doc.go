// Package agent defines the capability-polymorphic agent contract and its
// profile-driven implementation.
//
// Instead of a class hierarchy with one subclass per specialist, every role
// is described by a Profile: a data record carrying the role's ordered
// classification rules, handoff triggers, interest vocabulary and tool
// bindings. A single generic implementation (built with New) interprets the
// profile, so adding a specialist means declaring a record, not writing
// dispatch code.
//
// All three keyword consumers (Analyze, ShouldHandoff, CanHandle) read from
// the same Profile record to keep the keyword source authoritative. The
// handoff trigger table is still a distinct ordered list from the
// classification rules, since handoff sensitivity intentionally differs from
// diagnostic classification.
package agent
