package agent

import "github.com/hupe1980/ticketmesh/core"

// DevOpsProfile describes the infrastructure and availability specialist.
func DevOpsProfile() Profile {
	return Profile{
		Role:        core.RoleDevOps,
		Description: "Handles infrastructure, deployments, certificates and availability incidents",
		Capabilities: []string{
			"incident_response",
			"deployment_automation",
			"monitoring",
		},
		Rules: []ClassificationRule{
			{
				Name:     "outage",
				Keywords: []string{"down", "outage", "unavailable", "502", "503"},
				Analysis: "Availability incident; service restoration takes precedence over root cause.",
				Actions: []string{
					"Check host health, load balancer status and recent deploys",
					"Restore service, then run a post-incident review",
					"Estimated effort: 1-4 hours",
				},
				Complexity:    core.ComplexityHigh,
				EstimatedTime: "1-4 hours",
				Priority:      core.PriorityUrgent,
			},
			{
				Name:     "deployment",
				Keywords: []string{"deploy", "release", "pipeline", "ci"},
				Analysis: "Deployment pipeline issue; the failing stage needs isolation.",
				Actions: []string{
					"Inspect the failing pipeline stage logs",
					"Fix the stage configuration or roll back the release",
					"Estimated effort: 2-4 hours",
				},
				Complexity:    core.ComplexityMedium,
				EstimatedTime: "2-4 hours",
			},
			{
				Name:     "certificates",
				Keywords: []string{"ssl", "certificate", "https", "tls"},
				Analysis: "Certificate issue; renewal or chain configuration is at fault.",
				Actions: []string{
					"Check certificate expiry and the served chain",
					"Renew or re-issue and reload the terminating proxy",
					"Estimated effort: 1-2 hours",
				},
				Complexity:    core.ComplexityLow,
				EstimatedTime: "1-2 hours",
			},
			{
				Name:     "capacity",
				Keywords: []string{"disk", "memory", "cpu", "server load"},
				Analysis: "Capacity problem; resource usage needs trending and headroom.",
				Actions: []string{
					"Graph resource usage over the incident window",
					"Resize the host or tune the offending workload",
					"Estimated effort: 2-5 hours",
				},
				Complexity:    core.ComplexityMedium,
				EstimatedTime: "2-5 hours",
			},
		},
		Fallback: ClassificationRule{
			Name:     "general_infrastructure",
			Analysis: "General infrastructure review required.",
			Actions: []string{
				"Collect logs and metrics for the affected system",
				"Schedule maintenance for the suspect component",
				"Estimated effort: 2-4 hours",
			},
			Complexity:    core.ComplexityMedium,
			EstimatedTime: "2-4 hours",
		},
		HandoffTriggers: []HandoffTrigger{
			{
				Keywords: []string{"application bug", "code change", "exception in app"},
				Target:   core.RoleSoftwareEngineer,
				Reason:   "technical_defect",
			},
			{
				Keywords: []string{"wordpress admin", "plugin settings"},
				Target:   core.RoleWordPressDeveloper,
				Reason:   "wordpress_expertise",
			},
		},
		Vocabulary: []string{"infrastructure", "nginx", "dns", "backup", "monitoring"},
	}
}
