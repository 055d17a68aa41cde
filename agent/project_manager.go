package agent

import "github.com/hupe1980/ticketmesh/core"

// ProjectManagerProfile describes the coordination specialist. It is the
// stock default role: its handoff table is broad so tickets landing here are
// quickly routed to the right specialist.
func ProjectManagerProfile() Profile {
	return Profile{
		Role:        core.RoleProjectManager,
		Description: "Coordinates scope, scheduling, billing and client communication",
		Capabilities: []string{
			"prioritization",
			"client_communication",
			"scope_management",
		},
		Rules: []ClassificationRule{
			{
				Name:     "scheduling",
				Keywords: []string{"deadline", "timeline", "schedule", "delay"},
				Analysis: "Scheduling concern; timeline and commitments need realignment.",
				Actions: []string{
					"Review current milestones against the requested date",
					"Re-plan the affected deliverables and notify the client",
					"Estimated effort: 1-2 hours",
				},
				Complexity:    core.ComplexityLow,
				EstimatedTime: "1-2 hours",
			},
			{
				Name:     "scope_change",
				Keywords: []string{"scope", "feature request", "change request"},
				Analysis: "Scope change request; impact assessment required before commitment.",
				Actions: []string{
					"Assess effort and dependency impact of the request",
					"Prepare a change order with an updated estimate",
					"Estimated effort: 2-4 hours",
				},
				Complexity:    core.ComplexityMedium,
				EstimatedTime: "2-4 hours",
			},
			{
				Name:     "billing",
				Keywords: []string{"invoice", "billing", "budget", "payment"},
				Analysis: "Billing or budget question; no technical work required.",
				Actions: []string{
					"Check the invoicing history for the account",
					"Respond with a corrected invoice or budget breakdown",
					"Estimated effort: 1-2 hours",
				},
				Complexity:    core.ComplexityLow,
				EstimatedTime: "1-2 hours",
			},
		},
		Fallback: ClassificationRule{
			Name:     "triage",
			Analysis: "General coordination; ticket needs triage to a specialist.",
			Actions: []string{
				"Clarify the request with the reporter",
				"Route the ticket to the appropriate specialist",
				"Estimated effort: 1 hour",
			},
			Complexity:    core.ComplexityLow,
			EstimatedTime: "1 hour",
		},
		HandoffTriggers: []HandoffTrigger{
			{
				Keywords: []string{"crash", "exception", "bug", "error"},
				Target:   core.RoleSoftwareEngineer,
				Reason:   "technical_defect",
			},
			{
				Keywords: []string{"wordpress", "plugin", "theme"},
				Target:   core.RoleWordPressDeveloper,
				Reason:   "wordpress_expertise",
			},
			{
				Keywords: []string{"outage", "downtime", "server", "ssl"},
				Target:   core.RoleDevOps,
				Reason:   "infrastructure",
			},
			{
				Keywords: []string{"report", "analytics", "dashboard", "data export"},
				Target:   core.RoleBusinessAnalyst,
				Reason:   "reporting",
			},
		},
		Vocabulary: []string{"project", "client", "meeting", "estimate", "quote"},
	}
}
