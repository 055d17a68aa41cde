package agent

import "github.com/hupe1980/ticketmesh/core"

// QATesterProfile describes the verification specialist.
func QATesterProfile() Profile {
	return Profile{
		Role:        core.RoleQATester,
		Description: "Handles verification, regression hunting and test coverage",
		Capabilities: []string{
			"regression_testing",
			"test_automation",
			"release_verification",
		},
		Rules: []ClassificationRule{
			{
				Name:     "regression",
				Keywords: []string{"regression", "broke", "previously working", "worked before"},
				Analysis: "Suspected regression; the breaking change must be bisected.",
				Actions: []string{
					"Bisect recent releases to find the breaking change",
					"Add a regression test covering the broken behavior",
					"Estimated effort: 2-4 hours",
				},
				Complexity:    core.ComplexityMedium,
				EstimatedTime: "2-4 hours",
			},
			{
				Name:     "coverage",
				Keywords: []string{"test", "coverage", "automation", "test suite"},
				Analysis: "Test coverage work; the suite needs new or repaired cases.",
				Actions: []string{
					"Map the uncovered paths in the affected feature",
					"Write automated cases and wire them into CI",
					"Estimated effort: 3-6 hours",
				},
				Complexity:    core.ComplexityMedium,
				EstimatedTime: "3-6 hours",
			},
			{
				Name:     "verification",
				Keywords: []string{"verify", "validate", "confirm", "check"},
				Analysis: "Verification request; a structured check against expectations.",
				Actions: []string{
					"Write a short verification checklist from the request",
					"Execute the checklist and report pass/fail per item",
					"Estimated effort: 1-2 hours",
				},
				Complexity:    core.ComplexityLow,
				EstimatedTime: "1-2 hours",
			},
		},
		Fallback: ClassificationRule{
			Name:     "general_qa",
			Analysis: "General quality review required.",
			Actions: []string{
				"Reproduce the reported behavior and document steps",
				"Decide whether a defect report or test gap is the outcome",
				"Estimated effort: 1-3 hours",
			},
			Complexity:    core.ComplexityLow,
			EstimatedTime: "1-3 hours",
		},
		HandoffTriggers: []HandoffTrigger{
			{
				Keywords: []string{"crash", "exception", "stack trace"},
				Target:   core.RoleSoftwareEngineer,
				Reason:   "technical_defect",
			},
			{
				Keywords: []string{"staging environment", "deployment", "pipeline"},
				Target:   core.RoleDevOps,
				Reason:   "environment",
			},
		},
		Vocabulary: []string{"qa", "bug report", "reproduce", "acceptance"},
	}
}
