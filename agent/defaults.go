package agent

import "github.com/hupe1980/ticketmesh/core"

// DefaultProfiles returns the stock specialist profiles in their intended
// registration order. The order matters: entry-agent selection walks
// registered roles in this order when no role is pinned.
func DefaultProfiles() []Profile {
	return []Profile{
		ProjectManagerProfile(),
		SoftwareEngineerProfile(),
		WordPressDeveloperProfile(),
		BusinessAnalystProfile(),
		QATesterProfile(),
		DevOpsProfile(),
	}
}

func roleRef(r core.AgentRole) *core.AgentRole { return &r }
