package agent

import (
	"context"

	"github.com/hupe1980/ticketmesh/core"
	"github.com/hupe1980/ticketmesh/tool"
)

// Agent is the contract every specialist in the routing pool implements.
//
// Agents are invoked strictly sequentially for a single ticket, but a
// singleton agent is shared across concurrently processed tickets, so
// implementations must keep any per-ticket state (memory log, counters)
// safe for concurrent access keyed by ticket id.
//
// Analyze and Execute accept a context for cancellation; both take effect at
// the next suspension point (tool call, I/O), never mid-computation.
type Agent interface {
	// Role returns the fixed specialist identity of this agent.
	Role() core.AgentRole

	// Capabilities lists the named skill areas this agent advertises.
	Capabilities() []string

	// Tools lists the tools this agent may dispatch to during Execute.
	Tools() []tool.Tool

	// MaxConcurrentTasks is the advertised parallel task ceiling.
	MaxConcurrentTasks() int

	// Analyze classifies the ticket against the agent's ordered rule table
	// and produces an immutable analysis. It must not fail for unmatched
	// content; unknown tickets fall back to a generic action set. Confidence
	// is always within [0,1].
	Analyze(ctx context.Context, ticket *core.Ticket) (*core.AgentAnalysis, error)

	// Execute maps the task text to a declared tool and runs it. Tool
	// failures are converted into a failed-status result, never propagated
	// as an error; a task matching no tool completes generically.
	Execute(ctx context.Context, task string, params map[string]any) (*core.ExecutionResult, error)

	// ShouldHandoff inspects the workflow context and returns the first
	// matching handoff target plus the textual trigger category. The third
	// return value is false when the agent wants to keep the ticket.
	ShouldHandoff(wf *core.WorkflowContext) (core.AgentRole, string, bool)

	// CanHandle is a broad vocabulary membership test used for entry-agent
	// selection.
	CanHandle(ticket *core.Ticket) bool

	// StoreMemory appends an entry to the agent's per-ticket memory log.
	// Entries are never overwritten.
	StoreMemory(ticketID string, kind core.MemoryKind, content any, meta map[string]any)

	// Memory returns a snapshot of the memory log for a ticket in append
	// order.
	Memory(ticketID string) []core.MemoryEntry
}
