package factory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/ticketmesh/agent"
	"github.com/hupe1980/ticketmesh/core"
	"github.com/hupe1980/ticketmesh/logging"
	"github.com/hupe1980/ticketmesh/registry"
	"github.com/hupe1980/ticketmesh/tool"
)

var (
	// ErrRegistrationNotFound is returned when a role has no registration.
	ErrRegistrationNotFound = errors.New("agent registration not found")

	// ErrDependencyNotFound is returned when a declared dependency key is
	// absent from the configured container, or no container is configured
	// while dependencies are declared.
	ErrDependencyNotFound = errors.New("agent dependency not found")

	// ErrInvalidConstructor is returned when a registration carries a nil
	// constructor.
	ErrInvalidConstructor = errors.New("agent constructor is not invocable")
)

// Container is the dependency lookup seam implemented by an external DI
// collaborator.
type Container interface {
	Get(key string) (any, bool)
	Has(key string) bool
}

// MapContainer is a trivial Container backed by a map, sufficient for tests
// and small deployments.
type MapContainer map[string]any

// Get returns the value for a key.
func (m MapContainer) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// Has reports whether the key exists.
func (m MapContainer) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// CreationOptions are the transient per-call inputs to agent creation. They
// do not outlive the call.
//
// Note: when a singleton-flagged role already has a cached instance, the
// options are intentionally ignored and the cached instance is returned
// unchanged. Singletons are configured by their first creation.
type CreationOptions struct {
	Capabilities       []string
	Tools              []tool.Tool
	MaxConcurrentTasks int
	Dependencies       map[string]any
}

// ValidationReport is the fail-soft outcome of ValidateRegistrations.
type ValidationReport struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Options configures a Factory.
type Options struct {
	// Container resolves declared dependency keys. Optional; creation of
	// roles that declare dependencies fails without one.
	Container Container

	// Cache holds singleton instances. Defaults to a fresh cache owned by
	// the factory; pass a shared one to control its lifecycle externally.
	Cache *registry.SingletonCache

	// Logger receives structured diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Factory builds or retrieves agent instances for registered roles. Safe for
// concurrent use.
type Factory struct {
	registry *registry.Registry
	cache    *registry.SingletonCache
	logger   logging.Logger

	mu        sync.RWMutex
	container Container
}

// New constructs a Factory over the given registry.
func New(reg *registry.Registry, optFns ...func(o *Options)) *Factory {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Cache == nil {
		opts.Cache = registry.NewSingletonCache()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Factory{
		registry:  reg,
		cache:     opts.Cache,
		logger:    opts.Logger,
		container: opts.Container,
	}
}

// SetContainer replaces the dependency container used for subsequent
// creations.
func (f *Factory) SetContainer(c Container) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.container = c
}

// Cache exposes the factory's singleton cache so callers can reset it
// between tests.
func (f *Factory) Cache() *registry.SingletonCache { return f.cache }

// CanCreateAgent reports whether a role can be created, i.e. is registered.
func (f *Factory) CanCreateAgent(role core.AgentRole) bool {
	return f.registry.IsRegistered(role)
}

// AvailableRoles lists every creatable role in registration order.
func (f *Factory) AvailableRoles() []core.AgentRole {
	return f.registry.Roles()
}

// CreateAgent builds or retrieves the agent for a role.
//
// For singleton registrations the cache is consulted first; a hit returns
// the cached instance unchanged and the provided options are ignored (see
// CreationOptions). Otherwise the declared dependencies are resolved, the
// constructor runs with an explicit Config, and the instance is cached when
// the registration is singleton-flagged.
func (f *Factory) CreateAgent(role core.AgentRole, opts *CreationOptions) (agent.Agent, error) {
	reg, ok := f.registry.Registration(role)
	if !ok {
		return nil, fmt.Errorf("role %s: %w", role, ErrRegistrationNotFound)
	}

	if !reg.Singleton {
		return f.build(reg, opts)
	}

	return f.cache.GetOrCreate(role, reg.Revision(), func() (agent.Agent, error) {
		return f.build(reg, opts)
	})
}

// CreateAgents builds agents for the requested roles in input order. The
// batch is fail-fast: the first failure is wrapped with the failing role and
// returned immediately, and no partial map is handed back.
func (f *Factory) CreateAgents(roles []core.AgentRole, opts *CreationOptions) (map[core.AgentRole]agent.Agent, error) {
	agents := make(map[core.AgentRole]agent.Agent, len(roles))
	for _, role := range roles {
		a, err := f.CreateAgent(role, opts)
		if err != nil {
			return nil, fmt.Errorf("create agents: role %s failed: %w", role, err)
		}
		agents[role] = a
	}
	return agents, nil
}

// CreateAllAgents builds every registered role.
func (f *Factory) CreateAllAgents(opts *CreationOptions) (map[core.AgentRole]agent.Agent, error) {
	return f.CreateAgents(f.registry.Roles(), opts)
}

// ValidateRegistrations audits every registration without throwing. It
// aggregates dependency declaration problems from the registry, registrations
// whose constructor is not invocable, and declared dependencies the
// configured container cannot satisfy.
func (f *Factory) ValidateRegistrations() ValidationReport {
	report := ValidationReport{Valid: true}

	report.Errors = append(report.Errors, f.registry.ValidateDependencies()...)

	f.mu.RLock()
	container := f.container
	f.mu.RUnlock()

	for _, role := range f.registry.Roles() {
		reg, ok := f.registry.Registration(role)
		if !ok {
			continue
		}
		if reg.Constructor == nil {
			report.Errors = append(report.Errors, fmt.Sprintf("role %s: constructor is not invocable", role))
		}
		for _, key := range reg.Dependencies {
			if container == nil {
				report.Errors = append(report.Errors, fmt.Sprintf("role %s: dependency %q declared but no container configured", role, key))
				continue
			}
			if !container.Has(key) {
				report.Errors = append(report.Errors, fmt.Sprintf("role %s: dependency %q missing from container", role, key))
			}
		}
	}

	report.Valid = len(report.Errors) == 0
	return report
}

func (f *Factory) build(reg *registry.Registration, opts *CreationOptions) (agent.Agent, error) {
	if reg.Constructor == nil {
		return nil, fmt.Errorf("role %s: %w", reg.Role, ErrInvalidConstructor)
	}

	resolved, err := f.resolveDependencies(reg)
	if err != nil {
		return nil, err
	}

	cfg := registry.Config{
		Role:     reg.Role,
		Resolved: resolved,
	}
	if opts != nil {
		cfg.Capabilities = opts.Capabilities
		cfg.Tools = opts.Tools
		if opts.MaxConcurrentTasks > 0 {
			cfg.MaxConcurrentTasks = opts.MaxConcurrentTasks
		}
		cfg.Extra = opts.Dependencies
	}

	instance, err := reg.Constructor(cfg)
	if err != nil {
		return nil, fmt.Errorf("role %s: agent creation failed: %w", reg.Role, err)
	}

	f.logger.Debug("factory.created", "role", reg.Role, "singleton", reg.Singleton)

	return instance, nil
}

func (f *Factory) resolveDependencies(reg *registry.Registration) (map[string]any, error) {
	if len(reg.Dependencies) == 0 {
		return nil, nil
	}

	f.mu.RLock()
	container := f.container
	f.mu.RUnlock()

	if container == nil {
		return nil, fmt.Errorf("role %s: dependencies declared but no container configured: %w", reg.Role, ErrDependencyNotFound)
	}

	resolved := make(map[string]any, len(reg.Dependencies))
	for _, key := range reg.Dependencies {
		value, ok := container.Get(key)
		if !ok {
			return nil, fmt.Errorf("role %s: dependency %q: %w", reg.Role, key, ErrDependencyNotFound)
		}
		resolved[key] = value
	}
	return resolved, nil
}
