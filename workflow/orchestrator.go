package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/ticketmesh/agent"
	"github.com/hupe1980/ticketmesh/core"
	"github.com/hupe1980/ticketmesh/factory"
	"github.com/hupe1980/ticketmesh/logging"
)

var (
	// ErrWorkflowAborted marks a workflow torn down by an unexpected agent
	// step error. The workflow is reported incomplete; it is never silently
	// retried.
	ErrWorkflowAborted = errors.New("workflow aborted")

	// ErrNoAgentsRegistered is returned when routing is attempted against an
	// empty agent pool.
	ErrNoAgentsRegistered = errors.New("no agents registered")
)

// Options configures an Orchestrator.
type Options struct {
	// HopBudget caps the number of handoffs per workflow. Zero means "number
	// of registered roles at routing time", the conservative bound that
	// guarantees termination under cyclic handoff rules.
	HopBudget int

	// DefaultRole is the entry agent used when no role is pinned and no
	// registered agent accepts the ticket.
	DefaultRole core.AgentRole

	// Creation is passed through to the factory when an agent is first
	// built during routing.
	Creation *factory.CreationOptions

	// Logger receives structured diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Orchestrator routes tickets through the agent pool. Safe for concurrent
// use; each Route call owns its WorkflowState exclusively.
type Orchestrator struct {
	factory     *factory.Factory
	hopBudget   int
	defaultRole core.AgentRole
	creation    *factory.CreationOptions
	logger      logging.Logger

	runsMu sync.Mutex
	runs   map[string]context.CancelFunc
}

// New constructs an Orchestrator over the given factory.
func New(f *factory.Factory, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		DefaultRole: core.RoleProjectManager,
		Logger:      logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Orchestrator{
		factory:     f,
		hopBudget:   opts.HopBudget,
		defaultRole: opts.DefaultRole,
		creation:    opts.Creation,
		logger:      opts.Logger,
		runs:        make(map[string]context.CancelFunc),
	}
}

// RouteOptions are per-call routing options.
type RouteOptions struct {
	// PinnedRole forces the entry agent instead of CanHandle selection.
	PinnedRole *core.AgentRole
}

// WithPinnedRole pins the workflow's entry agent to a specific role.
func WithPinnedRole(role core.AgentRole) func(o *RouteOptions) {
	return func(o *RouteOptions) { o.PinnedRole = &role }
}

// Route processes one ticket to completion and returns the terminal
// summary.
//
// The loop per step: analyze with the current agent, append the analysis to
// the workflow insights, merge its recommended actions, then ask the agent
// whether to hand off. A handoff is taken when the suggested role differs
// from the current one, is registered, and the hop budget is not exhausted;
// otherwise the workflow completes. The final confidence is the last
// analysis's confidence (most-recent-wins), not an average, so a
// high-confidence terminal diagnosis is not diluted by earlier guesses.
//
// An unexpected error or panic inside an agent step aborts the workflow: the
// state stays incomplete and the error is surfaced wrapped in
// ErrWorkflowAborted.
func (o *Orchestrator) Route(ctx context.Context, ticket *core.Ticket, optFns ...func(o *RouteOptions)) (*core.MultiAgentResponse, error) {
	var routeOpts RouteOptions
	for _, fn := range optFns {
		fn(&routeOpts)
	}

	start := time.Now()

	roles := o.factory.AvailableRoles()
	if len(roles) == 0 {
		return nil, ErrNoAgentsRegistered
	}

	hopBudget := o.hopBudget
	if hopBudget <= 0 {
		hopBudget = len(roles)
	}

	entry, err := o.selectEntry(ctx, ticket, routeOpts.PinnedRole, roles)
	if err != nil {
		return nil, err
	}

	state := core.NewWorkflowState(ticket, entry)

	o.logger.Info("workflow.start",
		"ticket_id", ticket.ID,
		"entry_agent", entry,
		"hop_budget", hopBudget,
	)

	for !state.IsComplete {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: ticket %s: %v", ErrWorkflowAborted, ticket.ID, err)
		}

		current, err := o.factory.CreateAgent(state.CurrentAgent, o.creation)
		if err != nil {
			return nil, fmt.Errorf("%w: ticket %s: %v", ErrWorkflowAborted, ticket.ID, err)
		}

		analysis, target, reason, handoff, err := o.step(ctx, current, state)
		if err != nil {
			o.logger.Error("workflow.abort", "ticket_id", ticket.ID, "agent", state.CurrentAgent, "error", err.Error())
			return nil, fmt.Errorf("%w: ticket %s: agent %s: %v", ErrWorkflowAborted, ticket.ID, state.CurrentAgent, err)
		}

		state.Context.Insights = append(state.Context.Insights, *analysis)
		state.Context.Recommendations = append(state.Context.Recommendations, analysis.RecommendedActions...)
		state.Context.Confidence = analysis.Confidence

		switch {
		case handoff && target != state.CurrentAgent &&
			len(state.PreviousAgents) < hopBudget &&
			o.factory.CanCreateAgent(target):

			o.logger.Info("workflow.handoff",
				"ticket_id", ticket.ID,
				"from", state.CurrentAgent,
				"to", target,
				"reason", reason,
			)
			state.PreviousAgents = append(state.PreviousAgents, state.CurrentAgent)
			state.CurrentAgent = target
			state.HandoffReason = reason

		default:
			state.IsComplete = true
		}
	}

	response := &core.MultiAgentResponse{
		TicketID:             ticket.ID,
		Workflow:             state,
		FinalRecommendations: state.Context.Recommendations,
		Confidence:           state.Context.Confidence,
		ProcessingTimeMs:     time.Since(start).Milliseconds(),
		AgentsInvolved:       state.AgentsInvolved(),
		HandoffCount:         len(state.PreviousAgents),
		AgentAnalyses:        state.Context.Insights,
	}

	o.logger.Info("workflow.complete",
		"ticket_id", ticket.ID,
		"agents", len(response.AgentsInvolved),
		"handoffs", response.HandoffCount,
		"confidence", response.Confidence,
		"duration_ms", response.ProcessingTimeMs,
	)

	return response, nil
}

// step runs one analyze + handoff-decision cycle. Agents are contracted not
// to fail on unmatched content, but a panicking agent must not take the
// process down, so the panic is converted into a step error here.
func (o *Orchestrator) step(ctx context.Context, a agent.Agent, state *core.WorkflowState) (analysis *core.AgentAnalysis, target core.AgentRole, reason string, handoff bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("agent step panicked: %v", r)
		}
	}()

	analysis, err = a.Analyze(ctx, state.Context.Ticket)
	if err != nil {
		return nil, "", "", false, err
	}

	target, reason, handoff = a.ShouldHandoff(&state.Context)
	return analysis, target, reason, handoff, nil
}

// selectEntry picks the workflow's entry role: the pinned role when given,
// otherwise the first registered role (in registration order) whose agent
// accepts the ticket, otherwise the configured default role.
func (o *Orchestrator) selectEntry(ctx context.Context, ticket *core.Ticket, pinned *core.AgentRole, roles []core.AgentRole) (core.AgentRole, error) {
	if pinned != nil {
		if !o.factory.CanCreateAgent(*pinned) {
			return "", fmt.Errorf("pinned role %s: %w", *pinned, factory.ErrRegistrationNotFound)
		}
		return *pinned, nil
	}

	for _, role := range roles {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		a, err := o.factory.CreateAgent(role, o.creation)
		if err != nil {
			return "", fmt.Errorf("entry selection: role %s: %w", role, err)
		}
		if a.CanHandle(ticket) {
			return role, nil
		}
	}

	if o.factory.CanCreateAgent(o.defaultRole) {
		return o.defaultRole, nil
	}
	return roles[0], nil
}
