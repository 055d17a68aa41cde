package agent

import "github.com/hupe1980/ticketmesh/core"

// SoftwareEngineerProfile describes the application-code specialist. Crash
// and defect classification comes first in the rule table so a WordPress
// site that also throws exceptions is still diagnosed as a code defect
// before a platform handoff is suggested.
func SoftwareEngineerProfile() Profile {
	return Profile{
		Role:        core.RoleSoftwareEngineer,
		Description: "Diagnoses application defects, performance regressions and database issues",
		Capabilities: []string{
			"debugging",
			"code_review",
			"performance_tuning",
			"database_optimization",
		},
		Rules: []ClassificationRule{
			{
				Name:     "application_defect",
				Keywords: []string{"crash", "exception", "error", "bug"},
				Analysis: "Application defect detected; stack traces and recent changes need review.",
				Actions: []string{
					"Review stack traces and error logs for the failing code path",
					"Reproduce the defect locally and patch the offending change",
					"Estimated effort: 3-6 hours",
				},
				Complexity:    core.ComplexityMedium,
				EstimatedTime: "3-6 hours",
			},
			{
				Name:     "performance",
				Keywords: []string{"slow", "performance", "timeout", "latency"},
				Analysis: "Performance regression; profiling is required before any fix.",
				Actions: []string{
					"Profile the slow path and identify the dominant cost",
					"Apply caching or query tuning to the hot spot",
					"Estimated effort: 4-8 hours",
				},
				Complexity:    core.ComplexityMedium,
				EstimatedTime: "4-8 hours",
			},
			{
				Name:     "database",
				Keywords: []string{"database", "sql", "query", "migration"},
				Analysis: "Database-layer issue; schema and query plans need inspection.",
				Actions: []string{
					"Inspect slow query logs and execution plans",
					"Add missing indexes or rewrite the offending queries",
					"Estimated effort: 6-12 hours",
				},
				Complexity:    core.ComplexityHigh,
				EstimatedTime: "6-12 hours",
			},
			{
				Name:     "wordpress_platform",
				Keywords: []string{"wordpress", "woocommerce", "plugin", "theme"},
				Analysis: "WordPress platform issue; better handled by the WordPress specialist.",
				Actions: []string{
					"Identify the plugin or theme introducing the fault",
					"Hand over to the WordPress specialist for platform-level debugging",
					"Estimated effort: 2-4 hours",
				},
				Complexity:    core.ComplexityMedium,
				EstimatedTime: "2-4 hours",
				NextAgent:     roleRef(core.RoleWordPressDeveloper),
			},
			{
				Name:     "infrastructure",
				Keywords: []string{"deploy", "docker", "kubernetes", "pipeline"},
				Analysis: "Deployment or infrastructure concern outside the application code.",
				Actions: []string{
					"Capture the failing deploy output",
					"Hand over to DevOps for pipeline and environment checks",
					"Estimated effort: 2-4 hours",
				},
				Complexity:    core.ComplexityMedium,
				EstimatedTime: "2-4 hours",
				NextAgent:     roleRef(core.RoleDevOps),
			},
		},
		Fallback: ClassificationRule{
			Name:     "general_engineering",
			Analysis: "General software engineering review required.",
			Actions: []string{
				"Reproduce the reported behavior and narrow the affected component",
				"Schedule a code review of the suspect area",
				"Estimated effort: 2-4 hours",
			},
			Complexity:    core.ComplexityMedium,
			EstimatedTime: "2-4 hours",
		},
		HandoffTriggers: []HandoffTrigger{
			{
				Keywords: []string{"wordpress", "woocommerce", "elementor", "plugin", "theme"},
				Target:   core.RoleWordPressDeveloper,
				Reason:   "wordpress_expertise",
			},
			{
				Keywords: []string{"deployment", "infrastructure", "outage", "ssl"},
				Target:   core.RoleDevOps,
				Reason:   "infrastructure",
			},
			{
				Keywords: []string{"requirement", "stakeholder", "reporting"},
				Target:   core.RoleBusinessAnalyst,
				Reason:   "business_requirements",
			},
			{
				Keywords: []string{"test plan", "regression suite", "coverage"},
				Target:   core.RoleQATester,
				Reason:   "quality_assurance",
			},
		},
		Vocabulary: []string{"code", "api", "backend", "frontend", "stack trace", "refactor"},
		Tools: []ToolBinding{
			{Tool: analyzeLogsTool(), Match: []string{"log", "logs"}},
			{Tool: inspectCodeTool(), Match: []string{"code", "snippet"}},
		},
	}
}
