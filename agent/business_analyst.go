package agent

import "github.com/hupe1980/ticketmesh/core"

// BusinessAnalystProfile describes the requirements and reporting specialist.
func BusinessAnalystProfile() Profile {
	return Profile{
		Role:        core.RoleBusinessAnalyst,
		Description: "Handles requirements, reporting and data questions",
		Capabilities: []string{
			"requirements_analysis",
			"reporting",
			"data_analysis",
		},
		Rules: []ClassificationRule{
			{
				Name:     "requirements",
				Keywords: []string{"requirement", "user story", "specification"},
				Analysis: "Requirements work; acceptance criteria need elaboration.",
				Actions: []string{
					"Interview the stakeholder and capture acceptance criteria",
					"Write the user stories and circulate for sign-off",
					"Estimated effort: 3-6 hours",
				},
				Complexity:    core.ComplexityMedium,
				EstimatedTime: "3-6 hours",
			},
			{
				Name:     "reporting",
				Keywords: []string{"report", "dashboard", "analytics", "metrics"},
				Analysis: "Reporting request; data sources and visualization need definition.",
				Actions: []string{
					"Identify the data sources behind the requested figures",
					"Build or amend the report and validate against known totals",
					"Estimated effort: 2-5 hours",
				},
				Complexity:    core.ComplexityMedium,
				EstimatedTime: "2-5 hours",
			},
			{
				Name:     "data_handling",
				Keywords: []string{"export", "import", "csv", "spreadsheet"},
				Analysis: "Data handling request; a one-off extract or load is needed.",
				Actions: []string{
					"Confirm the exact fields and format required",
					"Run the extract or load and spot-check the output",
					"Estimated effort: 1-3 hours",
				},
				Complexity:    core.ComplexityLow,
				EstimatedTime: "1-3 hours",
			},
		},
		Fallback: ClassificationRule{
			Name:     "general_analysis",
			Analysis: "General analysis review required.",
			Actions: []string{
				"Clarify the business question with the requester",
				"Scope the analysis and agree on deliverables",
				"Estimated effort: 2-4 hours",
			},
			Complexity:    core.ComplexityMedium,
			EstimatedTime: "2-4 hours",
		},
		HandoffTriggers: []HandoffTrigger{
			{
				Keywords: []string{"sql error", "query timeout", "database error"},
				Target:   core.RoleSoftwareEngineer,
				Reason:   "technical_defect",
			},
			{
				Keywords: []string{"verify", "validation run", "test the report"},
				Target:   core.RoleQATester,
				Reason:   "verification",
			},
		},
		Vocabulary: []string{"kpi", "stakeholder", "process", "workflow"},
	}
}
