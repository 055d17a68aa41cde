package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/ticketmesh/agent"
	"github.com/hupe1980/ticketmesh/core"
)

func stubConstructor(profile agent.Profile) Constructor {
	return func(cfg Config) (agent.Agent, error) {
		return agent.New(profile), nil
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := New()
	reg.Register(core.RoleSoftwareEngineer, stubConstructor(agent.SoftwareEngineerProfile()), nil, true)

	assert.True(t, reg.IsRegistered(core.RoleSoftwareEngineer))
	assert.False(t, reg.IsRegistered(core.RoleDevOps))

	registration, ok := reg.Registration(core.RoleSoftwareEngineer)
	require.True(t, ok)
	assert.Equal(t, core.RoleSoftwareEngineer, registration.Role)
	assert.True(t, registration.Singleton)

	_, ok = reg.Registration(core.RoleDevOps)
	assert.False(t, ok, "unregistered role must return ok=false, not an error")
}

func TestRegistry_RolesPreserveRegistrationOrder(t *testing.T) {
	reg := New()
	reg.Register(core.RoleQATester, stubConstructor(agent.QATesterProfile()), nil, false)
	reg.Register(core.RoleDevOps, stubConstructor(agent.DevOpsProfile()), nil, false)
	reg.Register(core.RoleProjectManager, stubConstructor(agent.ProjectManagerProfile()), nil, false)

	assert.Equal(t, []core.AgentRole{core.RoleQATester, core.RoleDevOps, core.RoleProjectManager}, reg.Roles())
}

func TestRegistry_DuplicateRegisterIsLastWriteWins(t *testing.T) {
	reg := New()
	reg.Register(core.RoleDevOps, stubConstructor(agent.DevOpsProfile()), nil, true)
	first, ok := reg.Registration(core.RoleDevOps)
	require.True(t, ok)

	reg.Register(core.RoleDevOps, stubConstructor(agent.DevOpsProfile()), []string{"pager"}, false)
	second, ok := reg.Registration(core.RoleDevOps)
	require.True(t, ok)

	assert.Equal(t, []string{"pager"}, second.Dependencies)
	assert.False(t, second.Singleton)
	assert.Greater(t, second.Revision(), first.Revision(), "overwrite must bump the revision")
	assert.Len(t, reg.Roles(), 1, "overwrite must not duplicate the role in registration order")
}

func TestRegistry_ValidateDependencies_MalformedKeys(t *testing.T) {
	reg := New()
	reg.Register(core.RoleDevOps, stubConstructor(agent.DevOpsProfile()), []string{"", "  ", "pager"}, false)

	problems := reg.ValidateDependencies()
	assert.Len(t, problems, 2)
	for _, p := range problems {
		assert.Contains(t, p, "malformed dependency key")
	}
}

func TestRegistry_ValidateDependencies_CircularRoleKeys(t *testing.T) {
	reg := New()
	// devops depends on qa_tester which depends back on devops.
	reg.Register(core.RoleDevOps, stubConstructor(agent.DevOpsProfile()), []string{core.RoleQATester.String()}, false)
	reg.Register(core.RoleQATester, stubConstructor(agent.QATesterProfile()), []string{core.RoleDevOps.String()}, false)

	problems := reg.ValidateDependencies()
	require.NotEmpty(t, problems)
	assert.Contains(t, problems[0], "circular")
}

func TestRegistry_ValidateDependencies_CleanRegistryReportsNothing(t *testing.T) {
	reg := New()
	reg.Register(core.RoleDevOps, stubConstructor(agent.DevOpsProfile()), []string{"pager", "metrics"}, false)

	assert.Empty(t, reg.ValidateDependencies())
}

func TestRegistry_ConcurrentRegisterAndLookup(t *testing.T) {
	reg := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.Register(core.RoleDevOps, stubConstructor(agent.DevOpsProfile()), nil, true)
		}()
		go func() {
			defer wg.Done()
			reg.IsRegistered(core.RoleDevOps)
			reg.Roles()
		}()
	}
	wg.Wait()

	assert.True(t, reg.IsRegistered(core.RoleDevOps))
}
