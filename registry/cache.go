package registry

import (
	"sync"

	"github.com/hupe1980/ticketmesh/agent"
	"github.com/hupe1980/ticketmesh/core"
)

type cachedInstance struct {
	instance agent.Agent
	revision uint64
}

// SingletonCache holds at most one agent instance per role. It is owned by
// whoever constructed it (typically a factory or a test) and has an explicit
// lifecycle: create, use, Reset.
//
// Construction is atomic per role: when two workflows concurrently request
// the first instance of a role, GetOrCreate runs exactly one build under that
// role's lock and both callers observe the same instance.
type SingletonCache struct {
	mu        sync.Mutex
	locks     map[core.AgentRole]*sync.Mutex
	instances map[core.AgentRole]cachedInstance
}

// NewSingletonCache constructs an empty cache.
func NewSingletonCache() *SingletonCache {
	return &SingletonCache{
		locks:     make(map[core.AgentRole]*sync.Mutex),
		instances: make(map[core.AgentRole]cachedInstance),
	}
}

// Get returns the cached instance for a role when one exists at the given
// registration revision. A cached instance built from an older registration
// is treated as a miss.
func (c *SingletonCache) Get(role core.AgentRole, revision uint64) (agent.Agent, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cached, ok := c.instances[role]
	if !ok || cached.revision != revision {
		return nil, false
	}
	return cached.instance, true
}

// GetOrCreate returns the cached instance for a role or, holding the role's
// lock, builds one via build and caches it. The check-and-set under the
// per-role lock guarantees at most one construction per role per cache
// lifetime, regardless of caller concurrency.
func (c *SingletonCache) GetOrCreate(role core.AgentRole, revision uint64, build func() (agent.Agent, error)) (agent.Agent, error) {
	lock := c.roleLock(role)
	lock.Lock()
	defer lock.Unlock()

	if instance, ok := c.Get(role, revision); ok {
		return instance, nil
	}

	instance, err := build()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.instances[role] = cachedInstance{instance: instance, revision: revision}
	c.mu.Unlock()

	return instance, nil
}

// Invalidate removes the cached instance for one role.
func (c *SingletonCache) Invalidate(role core.AgentRole) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.instances, role)
}

// Reset clears every cached instance. Intended for test isolation.
func (c *SingletonCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instances = make(map[core.AgentRole]cachedInstance)
}

// Len returns the number of cached instances.
func (c *SingletonCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.instances)
}

func (c *SingletonCache) roleLock(role core.AgentRole) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.locks[role]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[role] = lock
	}
	return lock
}
