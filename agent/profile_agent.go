package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/ticketmesh/core"
	"github.com/hupe1980/ticketmesh/logging"
	"github.com/hupe1980/ticketmesh/tool"
)

// Options configures a profile agent instance.
type Options struct {
	// Capabilities overrides the profile's capability set when non-empty.
	Capabilities []string

	// Tools overrides the profile's tool bindings when non-empty.
	Tools []ToolBinding

	// MaxConcurrentTasks overrides the profile default when positive.
	MaxConcurrentTasks int

	// Dependencies carries resolved collaborator objects (API clients,
	// stores) keyed by dependency name.
	Dependencies map[string]any

	// Logger receives structured diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// profileAgent is the single generic Agent implementation. All role-specific
// behavior comes from the Profile record it interprets.
type profileAgent struct {
	profile       Profile
	capabilities  []string
	tools         []ToolBinding
	maxConcurrent int
	deps          map[string]any
	logger        logging.Logger
	vocabulary    []string
	memory        *memoryLog
}

// New builds an agent bound to the given profile. Unset options fall back to
// the profile's own defaults.
func New(profile Profile, optFns ...func(o *Options)) Agent {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	capabilities := profile.Capabilities
	if len(opts.Capabilities) > 0 {
		capabilities = opts.Capabilities
	}

	tools := profile.Tools
	if len(opts.Tools) > 0 {
		tools = opts.Tools
	}

	maxConcurrent := opts.MaxConcurrentTasks
	if maxConcurrent <= 0 {
		maxConcurrent = profile.MaxConcurrentTasks
	}
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentTasks
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	return &profileAgent{
		profile:       profile,
		capabilities:  capabilities,
		tools:         tools,
		maxConcurrent: maxConcurrent,
		deps:          opts.Dependencies,
		logger:        logger,
		vocabulary:    profile.fullVocabulary(),
		memory:        newMemoryLog(),
	}
}

func (a *profileAgent) Role() core.AgentRole { return a.profile.Role }

func (a *profileAgent) Capabilities() []string { return a.capabilities }

func (a *profileAgent) Tools() []tool.Tool {
	tools := make([]tool.Tool, 0, len(a.tools))
	for _, binding := range a.tools {
		tools = append(tools, binding.Tool)
	}
	return tools
}

func (a *profileAgent) MaxConcurrentTasks() int { return a.maxConcurrent }

// Dependency returns a resolved collaborator by key.
func (a *profileAgent) Dependency(key string) (any, bool) {
	v, ok := a.deps[key]
	return v, ok
}

// Analyze classifies the ticket against the profile's ordered rule table.
// The first matching rule wins; unmatched tickets get the profile fallback.
// Confidence is proportional to the matched rule's keyword density and is
// always clamped to [0,1].
func (a *profileAgent) Analyze(ctx context.Context, ticket *core.Ticket) (*core.AgentAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := ticketText(ticket)

	rule, hits, matched := a.profile.matchRule(text)
	confidence := fallbackConfidence
	if matched {
		confidence = ruleConfidence(hits, len(rule.Keywords))
	} else {
		rule = &a.profile.Fallback
	}

	priority := rule.Priority
	if priority == "" {
		priority = ticket.Priority
	}

	analysis := &core.AgentAnalysis{
		Role:               a.profile.Role,
		Analysis:           rule.Analysis,
		Confidence:         confidence,
		RecommendedActions: append([]string(nil), rule.Actions...),
		NextAgent:          rule.NextAgent,
		Priority:           priority,
		EstimatedTime:      rule.EstimatedTime,
		Complexity:         rule.Complexity,
	}

	a.logger.Debug("agent.analyze",
		"role", a.profile.Role,
		"ticket_id", ticket.ID,
		"rule", rule.Name,
		"matched", matched,
		"confidence", confidence,
	)

	a.memory.append(ticket.ID, core.MemoryAnalysis, analysis, map[string]any{"rule": rule.Name})

	return analysis, nil
}

// Execute maps the task text to the first tool binding with a matching
// substring and runs that tool. Tool failures become a failed-status result;
// a task matching no binding completes generically. The outcome is always
// recorded in the memory log.
func (a *profileAgent) Execute(ctx context.Context, task string, params map[string]any) (*core.ExecutionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ticketID, _ := params["ticket_id"].(string)
	lowered := strings.ToLower(task)

	var result *core.ExecutionResult

	if binding, ok := a.matchTool(lowered); ok {
		inv := tool.NewInvocation(ticketID, a.profile.Role.String(), a.logger)
		output, err := binding.Tool.Call(ctx, inv, params)
		if err != nil {
			result = &core.ExecutionResult{
				Status: core.ExecutionFailed,
				Tool:   binding.Tool.Name(),
				Error:  err.Error(),
			}
		} else {
			result = &core.ExecutionResult{
				Status: core.ExecutionCompleted,
				Tool:   binding.Tool.Name(),
				Output: output,
			}
		}
	} else {
		result = &core.ExecutionResult{
			Status: core.ExecutionCompleted,
			Output: fmt.Sprintf("task acknowledged by %s: %s", a.profile.Role, task),
		}
	}

	a.memory.append(ticketID, core.MemoryExecution, result, map[string]any{"task": task})

	return result, nil
}

func (a *profileAgent) matchTool(task string) (*ToolBinding, bool) {
	for i := range a.tools {
		binding := &a.tools[i]
		for _, match := range binding.Match {
			if match != "" && strings.Contains(task, strings.ToLower(match)) {
				return binding, true
			}
		}
	}
	return nil, false
}

// ShouldHandoff re-derives the lowercase ticket text from the workflow
// context and evaluates the profile's handoff trigger table in order.
func (a *profileAgent) ShouldHandoff(wf *core.WorkflowContext) (core.AgentRole, string, bool) {
	if wf == nil || wf.Ticket == nil {
		return "", "", false
	}

	trigger, ok := a.profile.matchHandoff(ticketText(wf.Ticket))
	if !ok {
		return "", "", false
	}
	return trigger.Target, trigger.Reason, true
}

// CanHandle is a broad membership test against the profile's full interest
// vocabulary.
func (a *profileAgent) CanHandle(ticket *core.Ticket) bool {
	text := ticketText(ticket)
	for _, term := range a.vocabulary {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func (a *profileAgent) StoreMemory(ticketID string, kind core.MemoryKind, content any, meta map[string]any) {
	a.memory.append(ticketID, kind, content, meta)
}

func (a *profileAgent) Memory(ticketID string) []core.MemoryEntry {
	return a.memory.snapshot(ticketID)
}

const fallbackConfidence = 0.3

// ruleConfidence scales confidence with keyword match density: a rule with
// every keyword present approaches 0.95, a single hit on a large table stays
// near the 0.5 floor.
func ruleConfidence(hits, total int) float64 {
	if total <= 0 {
		return fallbackConfidence
	}
	c := 0.5 + 0.45*(float64(hits)/float64(total))
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
