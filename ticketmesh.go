// Package ticketmesh provides a high-level façade over the agent registry,
// factory and workflow orchestrator for routing support tickets through a
// pool of specialist agents. Most applications interact with this package by:
//  1. Creating a TicketMesh via New() (stock specialist profiles are
//     registered by default)
//  2. Optionally registering custom profiles or a dependency container
//  3. Routing tickets synchronously (Route) or asynchronously (RouteAsync)
//
// All defaults are safe for local development and testing; production
// deployments typically supply a structured logger and a real dependency
// container.
package ticketmesh

import (
	"context"
	"strings"

	"github.com/hupe1980/ticketmesh/agent"
	"github.com/hupe1980/ticketmesh/core"
	"github.com/hupe1980/ticketmesh/factory"
	"github.com/hupe1980/ticketmesh/logging"
	"github.com/hupe1980/ticketmesh/registry"
	"github.com/hupe1980/ticketmesh/workflow"
)

// Options configures the TicketMesh instance.
type Options struct {
	// Profiles are the specialist profiles registered at construction.
	// Defaults to agent.DefaultProfiles(). Order matters for entry-agent
	// selection.
	Profiles []agent.Profile

	// Singleton controls whether the stock profiles are registered as
	// singleton agents (shared across tickets). Defaults to true.
	Singleton bool

	// Container resolves dependency keys declared by custom registrations.
	Container factory.Container

	// HopBudget caps handoffs per workflow; zero means "registered role
	// count".
	HopBudget int

	// DefaultRole is the entry agent when no registered agent accepts a
	// ticket. Defaults to the project manager.
	DefaultRole core.AgentRole

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// TicketMesh is the high-level façade aggregating registry, factory and
// orchestrator.
type TicketMesh struct {
	registry     *registry.Registry
	factory      *factory.Factory
	orchestrator *workflow.Orchestrator
	logger       logging.Logger
	singleton    bool
}

// New creates a TicketMesh with the stock specialist pool. Pass option
// functions to override profiles, logging or the dependency container.
func New(optFns ...func(o *Options)) *TicketMesh {
	opts := Options{
		Profiles:    agent.DefaultProfiles(),
		Singleton:   true,
		DefaultRole: core.RoleProjectManager,
		Logger:      logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	reg := registry.New()
	f := factory.New(reg, func(o *factory.Options) {
		o.Container = opts.Container
		o.Logger = opts.Logger
	})
	orch := workflow.New(f, func(o *workflow.Options) {
		o.HopBudget = opts.HopBudget
		o.DefaultRole = opts.DefaultRole
		o.Logger = opts.Logger
	})

	m := &TicketMesh{
		registry:     reg,
		factory:      f,
		orchestrator: orch,
		logger:       opts.Logger,
		singleton:    opts.Singleton,
	}

	for _, profile := range opts.Profiles {
		m.RegisterProfile(profile, nil, opts.Singleton)
	}

	return m
}

// RegisterProfile registers (or overwrites) a specialist profile. The
// dependencies slice declares container keys resolved at creation time and
// handed to the agent as collaborator objects.
func (m *TicketMesh) RegisterProfile(profile agent.Profile, dependencies []string, singleton bool) {
	logger := m.logger
	m.registry.Register(profile.Role, func(cfg registry.Config) (agent.Agent, error) {
		return agent.New(profile, func(o *agent.Options) {
			o.Capabilities = cfg.Capabilities
			o.Tools = bindTools(cfg)
			o.MaxConcurrentTasks = cfg.MaxConcurrentTasks
			o.Dependencies = mergeDependencies(cfg.Resolved, cfg.Extra)
			o.Logger = logger
		}), nil
	}, dependencies, singleton)
}

// bindTools wraps caller-supplied tools into dispatch bindings matched by
// the tool's name (underscores also matched as spaces).
func bindTools(cfg registry.Config) []agent.ToolBinding {
	bindings := make([]agent.ToolBinding, 0, len(cfg.Tools))
	for _, t := range cfg.Tools {
		bindings = append(bindings, agent.ToolBinding{
			Tool:  t,
			Match: []string{t.Name(), strings.ReplaceAll(t.Name(), "_", " ")},
		})
	}
	return bindings
}

func mergeDependencies(resolved, extra map[string]any) map[string]any {
	if resolved == nil && extra == nil {
		return nil
	}
	merged := make(map[string]any, len(resolved)+len(extra))
	for k, v := range resolved {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// Route processes one ticket to completion.
func (m *TicketMesh) Route(ctx context.Context, ticket *core.Ticket, optFns ...func(o *workflow.RouteOptions)) (*core.MultiAgentResponse, error) {
	return m.orchestrator.Route(ctx, ticket, optFns...)
}

// RouteAsync starts a background routing run; see workflow.RouteAsync.
func (m *TicketMesh) RouteAsync(ctx context.Context, ticket *core.Ticket, optFns ...func(o *workflow.RouteOptions)) (string, <-chan *core.MultiAgentResponse, <-chan error) {
	return m.orchestrator.RouteAsync(ctx, ticket, optFns...)
}

// Cancel aborts a running async route by run id.
func (m *TicketMesh) Cancel(runID string) bool {
	return m.orchestrator.Cancel(runID)
}

// Factory exposes the underlying agent factory.
func (m *TicketMesh) Factory() *factory.Factory { return m.factory }

// Registry exposes the underlying agent registry.
func (m *TicketMesh) Registry() *registry.Registry { return m.registry }

// Reset clears the singleton agent cache. Intended for test isolation; the
// next creation of each role builds a fresh instance.
func (m *TicketMesh) Reset() {
	m.factory.Cache().Reset()
}
