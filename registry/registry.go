package registry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hupe1980/ticketmesh/agent"
	"github.com/hupe1980/ticketmesh/core"
	"github.com/hupe1980/ticketmesh/tool"
)

// Config is the validated, explicit argument set handed to an agent
// constructor. It replaces positional argument assembly: a constructor
// receives one struct and picks what it needs.
type Config struct {
	// Role the constructed agent is bound to.
	Role core.AgentRole

	// Capabilities requested for this instance; empty means the
	// constructor's own defaults apply.
	Capabilities []string

	// Tools requested for this instance; empty means the constructor's own
	// defaults apply.
	Tools []tool.Tool

	// MaxConcurrentTasks for the instance; zero means the constructor's own
	// defaults apply.
	MaxConcurrentTasks int

	// Resolved holds the dependencies declared at registration time,
	// resolved against the factory's dependency container. Nil when the
	// registration declares no dependencies.
	Resolved map[string]any

	// Extra carries caller-supplied ad hoc dependencies from the creation
	// options, untouched.
	Extra map[string]any
}

// Constructor builds an agent instance from a Config.
type Constructor func(cfg Config) (agent.Agent, error)

// Registration is the construction metadata for one role. One registration
// exists per role; re-registering a role overwrites the previous entry
// (last-write-wins) and bumps the revision so stale singleton cache entries
// are never served.
type Registration struct {
	Role         core.AgentRole
	Constructor  Constructor
	Dependencies []string
	Singleton    bool

	// revision distinguishes successive registrations of the same role.
	revision uint64
}

// Revision returns the registration's revision counter.
func (r *Registration) Revision() uint64 { return r.revision }

// Registry maps roles to their construction metadata. Safe for concurrent
// use.
type Registry struct {
	mu            sync.RWMutex
	registrations map[core.AgentRole]*Registration
	order         []core.AgentRole
	revision      uint64
}

// New constructs an empty Registry.
func New() *Registry {
	return &Registry{registrations: make(map[core.AgentRole]*Registration)}
}

// Register records construction metadata for a role. Duplicate registration
// for the same role is last-write-wins: the new metadata replaces the old,
// the role keeps its original position in registration order, and the
// revision bump invalidates any cached singleton built from the previous
// registration.
func (r *Registry) Register(role core.AgentRole, ctor Constructor, dependencies []string, singleton bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.registrations[role]; !exists {
		r.order = append(r.order, role)
	}
	r.revision++
	r.registrations[role] = &Registration{
		Role:         role,
		Constructor:  ctor,
		Dependencies: append([]string(nil), dependencies...),
		Singleton:    singleton,
		revision:     r.revision,
	}
}

// Registration returns the metadata for a role. The second return value is
// false for an unregistered role; callers must check it.
func (r *Registry) Registration(role core.AgentRole) (*Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.registrations[role]
	return reg, ok
}

// IsRegistered reports whether the role has a registration.
func (r *Registry) IsRegistered(role core.AgentRole) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.registrations[role]
	return ok
}

// Roles returns every registered role in registration order.
func (r *Registry) Roles() []core.AgentRole {
	r.mu.RLock()
	defer r.mu.RUnlock()
	roles := make([]core.AgentRole, len(r.order))
	copy(roles, r.order)
	return roles
}

// ValidateDependencies audits every registration's declared dependency keys
// without failing. It reports structurally malformed keys (empty or
// whitespace) and circular references between registrations whose dependency
// keys name other registered roles. The returned slice is empty when all
// declarations are sound.
func (r *Registry) ValidateDependencies() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var problems []string

	for _, role := range r.order {
		reg := r.registrations[role]
		for _, key := range reg.Dependencies {
			if strings.TrimSpace(key) == "" {
				problems = append(problems, fmt.Sprintf("role %s declares a malformed dependency key %q", role, key))
			}
		}
	}

	for _, role := range r.order {
		if cycle := r.findCycleLocked(role, role, map[core.AgentRole]bool{}); cycle {
			problems = append(problems, fmt.Sprintf("role %s participates in a circular dependency chain", role))
		}
	}

	return problems
}

// findCycleLocked walks role-valued dependency keys looking for a path back
// to origin. Caller holds at least the read lock.
func (r *Registry) findCycleLocked(origin, current core.AgentRole, seen map[core.AgentRole]bool) bool {
	if seen[current] {
		return false
	}
	seen[current] = true

	reg, ok := r.registrations[current]
	if !ok {
		return false
	}
	for _, key := range reg.Dependencies {
		next := core.AgentRole(key)
		if _, isRole := r.registrations[next]; !isRole {
			continue
		}
		if next == origin {
			return true
		}
		if r.findCycleLocked(origin, next, seen) {
			return true
		}
	}
	return false
}
