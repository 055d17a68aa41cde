// Package tool implements the function calling subsystem that lets agents
// delegate work to structured capabilities (ticket-tracker mutation, static
// analysis, log inspection) with schema validated arguments and consistent
// error handling. A tool's Call is the routing core's only sanctioned
// extension point toward external systems.
package tool

import (
	"context"
	"fmt"

	"github.com/hupe1980/ticketmesh/logging"
)

// Tool defines the interface for extending agent capabilities with external
// functions.
//
// Tools are declared by an agent profile and invoked only through that
// agent's Execute dispatch. Implementations should:
//   - Provide clear, descriptive names (snake_case recommended)
//   - Define a JSON-schema-like parameter map
//   - Be safe for concurrent use; singleton agents share tool instances
//     across tickets
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description of what this tool does.
	Description() string

	// Parameters returns a JSON schema describing the expected input format.
	Parameters() map[string]any

	// Call executes the tool. The context carries cancellation from the
	// workflow; inv identifies the invoking agent and ticket.
	Call(ctx context.Context, inv *Invocation, args map[string]any) (any, error)
}

// Invocation identifies who is calling a tool and on whose behalf. The
// Logger is never nil.
type Invocation struct {
	TicketID string
	Agent    string
	Logger   logging.Logger
}

// NewInvocation builds an Invocation, substituting a NoOpLogger when logger
// is nil.
func NewInvocation(ticketID, agent string, logger logging.Logger) *Invocation {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Invocation{TicketID: ticketID, Agent: agent, Logger: logger}
}

// ToolError represents errors that occur during tool execution.
type ToolError struct {
	Tool    string `json:"tool"`              // Name of the tool that failed
	Message string `json:"message"`           // Error message
	Code    string `json:"code"`              // Error code for categorization
	Details any    `json:"details,omitempty"` // Additional error details
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewToolError creates a new ToolError with the specified details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{Tool: tool, Message: message, Code: code}
}
