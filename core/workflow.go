package core

// WorkflowContext is the shared accumulation area inside a WorkflowState.
// Agents read it (for handoff decisions) but only the orchestrator writes it.
type WorkflowContext struct {
	// Ticket is the request being routed.
	Ticket *Ticket `json:"ticket"`

	// Insights collects every AgentAnalysis in invocation order. Append-only.
	Insights []AgentAnalysis `json:"insights"`

	// Recommendations merges the recommended actions of all insights in
	// arrival order.
	Recommendations []string `json:"recommendations"`

	// Confidence is the running confidence scalar; policy is
	// most-recent-wins (the latest analysis overwrites it).
	Confidence float64 `json:"confidence"`
}

// WorkflowState is the per-ticket routing record. It is owned and mutated
// exclusively by the orchestrator for the lifetime of one ticket's
// processing; agents never touch it directly.
type WorkflowState struct {
	TicketID string `json:"ticket_id"`

	// CurrentAgent is the role presently handling the ticket.
	CurrentAgent AgentRole `json:"current_agent"`

	// PreviousAgents records every role that handed the ticket off, in true
	// visitation order. Append-only; its length equals the handoff count.
	PreviousAgents []AgentRole `json:"previous_agents"`

	Context WorkflowContext `json:"context"`

	// IsComplete marks the terminal state.
	IsComplete bool `json:"is_complete"`

	// HandoffReason is the textual trigger category of the most recent
	// handoff, empty if no handoff occurred.
	HandoffReason string `json:"handoff_reason,omitempty"`
}

// NewWorkflowState initializes an active workflow for a ticket with the
// given entry agent.
func NewWorkflowState(ticket *Ticket, entry AgentRole) *WorkflowState {
	return &WorkflowState{
		TicketID:     ticket.ID,
		CurrentAgent: entry,
		Context:      WorkflowContext{Ticket: ticket},
	}
}

// AgentsInvolved returns previous agents plus the current agent in
// visitation order.
func (w *WorkflowState) AgentsInvolved() []AgentRole {
	involved := make([]AgentRole, 0, len(w.PreviousAgents)+1)
	involved = append(involved, w.PreviousAgents...)
	return append(involved, w.CurrentAgent)
}

// MultiAgentResponse is the write-once terminal summary of a completed
// workflow, handed to the presentation collaborator.
type MultiAgentResponse struct {
	TicketID             string          `json:"ticket_id"`
	Workflow             *WorkflowState  `json:"workflow"`
	FinalRecommendations []string        `json:"final_recommendations"`
	Confidence           float64         `json:"confidence"`
	ProcessingTimeMs     int64           `json:"processing_time_ms"`
	AgentsInvolved       []AgentRole     `json:"agents_involved"`
	HandoffCount         int             `json:"handoff_count"`
	AgentAnalyses        []AgentAnalysis `json:"agent_analyses"`
}
