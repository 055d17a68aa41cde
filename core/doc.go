// Package core contains the shared domain model for ticketmesh: agent roles,
// tickets, analyses, workflow state and the terminal multi-agent response.
// Types here are plain data carriers with no behavior beyond small helpers;
// orchestration logic lives in the workflow package and agent behavior in the
// agent package.
package core
