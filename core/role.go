package core

import "fmt"

// AgentRole is the fixed identity of a specialist agent. Roles form a closed
// enumeration and are used as map keys throughout the registry, factory and
// workflow layers.
type AgentRole string

const (
	// RoleProjectManager coordinates scope, priorities and client communication.
	RoleProjectManager AgentRole = "project_manager"
	// RoleSoftwareEngineer handles application code defects and performance work.
	RoleSoftwareEngineer AgentRole = "software_engineer"
	// RoleWordPressDeveloper handles WordPress core, plugin and theme issues.
	RoleWordPressDeveloper AgentRole = "wordpress_developer"
	// RoleBusinessAnalyst handles requirements, reporting and data questions.
	RoleBusinessAnalyst AgentRole = "business_analyst"
	// RoleQATester handles verification, regression and test coverage work.
	RoleQATester AgentRole = "qa_tester"
	// RoleDevOps handles infrastructure, deployment and availability incidents.
	RoleDevOps AgentRole = "devops"
)

// Roles lists every built-in role in declaration order.
func Roles() []AgentRole {
	return []AgentRole{
		RoleProjectManager,
		RoleSoftwareEngineer,
		RoleWordPressDeveloper,
		RoleBusinessAnalyst,
		RoleQATester,
		RoleDevOps,
	}
}

// Valid reports whether the role is one of the built-in identities.
func (r AgentRole) Valid() bool {
	for _, known := range Roles() {
		if r == known {
			return true
		}
	}
	return false
}

// String returns the wire representation of the role.
func (r AgentRole) String() string { return string(r) }

// ParseRole converts a string into an AgentRole, rejecting unknown identities.
func ParseRole(s string) (AgentRole, error) {
	r := AgentRole(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown agent role %q", s)
	}
	return r, nil
}
