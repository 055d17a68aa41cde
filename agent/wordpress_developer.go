package agent

import "github.com/hupe1980/ticketmesh/core"

// WordPressDeveloperProfile describes the WordPress platform specialist.
func WordPressDeveloperProfile() Profile {
	return Profile{
		Role:        core.RoleWordPressDeveloper,
		Description: "Handles WordPress core, plugin, theme and WooCommerce issues",
		Capabilities: []string{
			"plugin_debugging",
			"theme_customization",
			"woocommerce",
			"wordpress_maintenance",
		},
		Rules: []ClassificationRule{
			{
				Name:     "plugin_fault",
				Keywords: []string{"plugin", "woocommerce", "elementor"},
				Analysis: "Plugin-level fault; conflict testing and version rollback are the usual fixes.",
				Actions: []string{
					"Deactivate plugins one by one to isolate the conflict",
					"Roll back or patch the faulty plugin version",
					"Estimated effort: 2-4 hours",
				},
				Complexity:    core.ComplexityMedium,
				EstimatedTime: "2-4 hours",
			},
			{
				Name:     "theme_styling",
				Keywords: []string{"theme", "css", "layout", "styling"},
				Analysis: "Theme or styling defect, most likely template or stylesheet regression.",
				Actions: []string{
					"Diff the active theme against its last known good version",
					"Fix the template or stylesheet regression in a child theme",
					"Estimated effort: 1-3 hours",
				},
				Complexity:    core.ComplexityLow,
				EstimatedTime: "1-3 hours",
			},
			{
				Name:     "core_update",
				Keywords: []string{"update", "upgrade", "white screen", "wp-admin"},
				Analysis: "Core or update-related breakage; site may need a staged rollback.",
				Actions: []string{
					"Check the update log and PHP error log for fatal errors",
					"Restore from the pre-update snapshot and retry on staging",
					"Estimated effort: 2-5 hours",
				},
				Complexity:    core.ComplexityMedium,
				EstimatedTime: "2-5 hours",
			},
			{
				Name:     "site_performance",
				Keywords: []string{"slow", "cache", "optimization"},
				Analysis: "Site performance issue; caching and asset delivery need review.",
				Actions: []string{
					"Audit page weight, caching layers and database queries",
					"Enable object caching and prune heavyweight plugins",
					"Estimated effort: 3-6 hours",
				},
				Complexity:    core.ComplexityMedium,
				EstimatedTime: "3-6 hours",
			},
		},
		Fallback: ClassificationRule{
			Name:     "general_wordpress",
			Analysis: "General WordPress maintenance review required.",
			Actions: []string{
				"Reproduce the issue on a staging copy of the site",
				"Review recent content, plugin and theme changes",
				"Estimated effort: 1-3 hours",
			},
			Complexity:    core.ComplexityLow,
			EstimatedTime: "1-3 hours",
		},
		HandoffTriggers: []HandoffTrigger{
			{
				Keywords: []string{"hosting", "dns", "ssl", "server down"},
				Target:   core.RoleDevOps,
				Reason:   "hosting_infrastructure",
			},
			{
				Keywords: []string{"custom api", "custom integration", "external service"},
				Target:   core.RoleSoftwareEngineer,
				Reason:   "custom_development",
			},
		},
		Vocabulary: []string{"wordpress", "gutenberg", "shortcode", "permalink"},
	}
}
