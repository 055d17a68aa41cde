package ticketmesh

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/ticketmesh/agent"
	"github.com/hupe1980/ticketmesh/core"
	"github.com/hupe1980/ticketmesh/workflow"
)

func TestTicketMesh_WordPressTicketRoutedToSpecialist(t *testing.T) {
	mesh := New()

	ticket := &core.Ticket{
		ID:          core.NewID(),
		Subject:     "WordPress plugin broken after update",
		Description: "The contact form plugin stopped working after the last update",
		Priority:    core.PriorityHigh,
	}

	response, err := mesh.Route(context.Background(), ticket)
	require.NoError(t, err)

	// The project manager picks the ticket up first (stock registration
	// order) and hands it to the WordPress developer.
	assert.Equal(t, []core.AgentRole{core.RoleProjectManager, core.RoleWordPressDeveloper}, response.AgentsInvolved)
	assert.Equal(t, 1, response.HandoffCount)
	assert.Equal(t, "wordpress_expertise", response.Workflow.HandoffReason)
	assert.True(t, response.Workflow.IsComplete)
	assert.NotEmpty(t, response.FinalRecommendations)
}

func TestTicketMesh_CrashTicketHandedToEngineer(t *testing.T) {
	mesh := New()

	ticket := &core.Ticket{
		ID:          core.NewID(),
		Subject:     "Application crashes on startup",
		Description: "Users report an unhandled exception immediately after login",
	}

	response, err := mesh.Route(context.Background(), ticket)
	require.NoError(t, err)

	assert.Equal(t, []core.AgentRole{core.RoleProjectManager, core.RoleSoftwareEngineer}, response.AgentsInvolved)
	assert.Equal(t, "technical_defect", response.Workflow.HandoffReason)

	final := response.AgentAnalyses[len(response.AgentAnalyses)-1]
	assert.Equal(t, core.RoleSoftwareEngineer, final.Role)
	assert.Equal(t, core.ComplexityMedium, final.Complexity)
	assert.Equal(t, "3-6 hours", final.EstimatedTime)
}

func TestTicketMesh_BillingTicketStaysWithProjectManager(t *testing.T) {
	mesh := New()

	ticket := &core.Ticket{
		ID:          core.NewID(),
		Subject:     "Invoice question",
		Description: "The last invoice shows the wrong billing amount",
	}

	response, err := mesh.Route(context.Background(), ticket)
	require.NoError(t, err)

	assert.Equal(t, []core.AgentRole{core.RoleProjectManager}, response.AgentsInvolved)
	assert.Equal(t, 0, response.HandoffCount)
}

func TestTicketMesh_PinnedRoleSkipsEntrySelection(t *testing.T) {
	mesh := New()

	ticket := &core.Ticket{
		ID:          core.NewID(),
		Subject:     "Invoice question",
		Description: "The last invoice shows the wrong billing amount",
	}

	response, err := mesh.Route(context.Background(), ticket, workflow.WithPinnedRole(core.RoleQATester))
	require.NoError(t, err)
	assert.Equal(t, core.RoleQATester, response.AgentsInvolved[0])
}

func TestTicketMesh_StockPoolRegistersAllRoles(t *testing.T) {
	mesh := New()

	for _, role := range core.Roles() {
		assert.True(t, mesh.Registry().IsRegistered(role), "role %s missing", role)
	}
}

func TestTicketMesh_SingletonAgentsSharedAcrossTickets(t *testing.T) {
	mesh := New()

	first, err := mesh.Factory().CreateAgent(core.RoleSoftwareEngineer, nil)
	require.NoError(t, err)
	second, err := mesh.Factory().CreateAgent(core.RoleSoftwareEngineer, nil)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestTicketMesh_ResetYieldsFreshInstances(t *testing.T) {
	mesh := New()

	before, err := mesh.Factory().CreateAgent(core.RoleSoftwareEngineer, nil)
	require.NoError(t, err)

	mesh.Reset()

	after, err := mesh.Factory().CreateAgent(core.RoleSoftwareEngineer, nil)
	require.NoError(t, err)
	assert.NotSame(t, before, after)
}

func TestTicketMesh_RegisterProfileOverwritesStockRole(t *testing.T) {
	mesh := New()

	custom := agent.Profile{
		Role:        core.RoleDevOps,
		Description: "Security-focused operations",
		Fallback: agent.ClassificationRule{
			Name:          "security_review",
			Analysis:      "Security review required before any change ships.",
			Actions:       []string{"Run the audit checklist"},
			Complexity:    core.ComplexityHigh,
			EstimatedTime: "1-2 days",
		},
	}
	mesh.RegisterProfile(custom, nil, true)

	ticket := &core.Ticket{
		ID:          core.NewID(),
		Subject:     "Quarterly review",
		Description: "Routine check",
	}

	response, err := mesh.Route(context.Background(), ticket, workflow.WithPinnedRole(core.RoleDevOps))
	require.NoError(t, err)

	require.Len(t, response.AgentAnalyses, 1)
	assert.Equal(t, "Security review required before any change ships.", response.AgentAnalyses[0].Analysis)
	assert.Equal(t, "1-2 days", response.AgentAnalyses[0].EstimatedTime)
}

func TestTicketMesh_CustomProfilePool(t *testing.T) {
	solo := agent.Profile{
		Role: core.RoleQATester,
		Fallback: agent.ClassificationRule{
			Name:     "default",
			Analysis: "Everything is a test problem.",
			Actions:  []string{"Write a regression test"},
		},
	}
	mesh := New(func(o *Options) {
		o.Profiles = []agent.Profile{solo}
	})

	assert.Equal(t, []core.AgentRole{core.RoleQATester}, mesh.Factory().AvailableRoles())
	assert.False(t, mesh.Registry().IsRegistered(core.RoleProjectManager))
}

func TestTicketMesh_RouteAsync(t *testing.T) {
	mesh := New()

	ticket := &core.Ticket{
		ID:          core.NewID(),
		Subject:     "WordPress theme misaligned",
		Description: "The homepage theme layout broke on mobile",
	}

	runID, results, errs := mesh.RouteAsync(context.Background(), ticket)
	require.NotEmpty(t, runID)

	select {
	case response := <-results:
		require.NotNil(t, response)
		assert.True(t, response.Workflow.IsComplete)
	case err := <-errs:
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("async route did not finish")
	}

	assert.False(t, mesh.Cancel(runID), "finished run should no longer be cancellable")
}
