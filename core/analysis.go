package core

// Complexity is the coarse effort tier an agent assigns to a ticket.
type Complexity string

const (
	// ComplexityLow indicates a quick, well-understood fix.
	ComplexityLow Complexity = "low"
	// ComplexityMedium indicates a bounded investigation plus fix.
	ComplexityMedium Complexity = "medium"
	// ComplexityHigh indicates open-ended or cross-cutting work.
	ComplexityHigh Complexity = "high"
)

// AgentAnalysis is the outcome of a single agent's Analyze pass over a
// ticket. It is produced once per invocation, treated as immutable after
// creation and appended to the workflow's insight list.
type AgentAnalysis struct {
	// Role identifies the agent that produced the analysis.
	Role AgentRole `json:"role"`

	// Analysis is the human-readable diagnosis text.
	Analysis string `json:"analysis"`

	// Confidence is the agent's self-assessed certainty in [0,1].
	Confidence float64 `json:"confidence"`

	// RecommendedActions lists the suggested next steps in priority order.
	// By convention agents emit a triplet: root cause hypothesis, fix
	// approach and a time estimate.
	RecommendedActions []string `json:"recommended_actions"`

	// NextAgent optionally names a role the agent believes is better suited.
	NextAgent *AgentRole `json:"next_agent,omitempty"`

	// Priority optionally restates or escalates the ticket priority.
	Priority TicketPriority `json:"priority,omitempty"`

	// EstimatedTime is a free-form effort estimate such as "3-6 hours".
	EstimatedTime string `json:"estimated_time,omitempty"`

	// Complexity is the coarse effort tier.
	Complexity Complexity `json:"complexity,omitempty"`
}

// ExecutionStatus reports how a task execution concluded.
type ExecutionStatus string

const (
	// ExecutionCompleted means the task (or fallback path) finished normally.
	ExecutionCompleted ExecutionStatus = "completed"
	// ExecutionFailed means a dispatched tool returned an error; the failure
	// is captured in the result rather than propagated.
	ExecutionFailed ExecutionStatus = "failed"
)

// ExecutionResult is the structured outcome of Agent.Execute. Tool failures
// are folded into the result (Status failed + Error) so a running workflow is
// never torn down by a single misbehaving tool.
type ExecutionResult struct {
	Status ExecutionStatus `json:"status"`
	Tool   string          `json:"tool,omitempty"`
	Output any             `json:"output,omitempty"`
	Error  string          `json:"error,omitempty"`
}
