// Package workflow drives a ticket through a sequence of agent invocations,
// accumulating insights into a WorkflowState until an agent keeps the ticket
// or the hop budget runs out.
//
// Steps for a single ticket run strictly sequentially; distinct tickets may
// be routed concurrently against the same shared singleton agents. The hop
// budget defaults to the number of registered roles, which guarantees
// termination even when handoff trigger tables form a cycle.
package workflow
