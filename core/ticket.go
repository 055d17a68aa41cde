package core

import (
	"time"

	"github.com/google/uuid"
)

// TicketPriority mirrors the priority field supplied by the ticketing
// collaborator.
type TicketPriority string

const (
	// PriorityLow marks tickets that can wait for a regular cycle.
	PriorityLow TicketPriority = "low"
	// PriorityNormal is the default priority for incoming tickets.
	PriorityNormal TicketPriority = "normal"
	// PriorityHigh marks tickets needing prompt attention.
	PriorityHigh TicketPriority = "high"
	// PriorityUrgent marks production-impacting tickets.
	PriorityUrgent TicketPriority = "urgent"
)

// Ticket is the incoming support request as delivered by the ticketing
// collaborator. The routing core only reads ID, Subject, Description and
// Priority; the remaining fields are carried through untouched for
// downstream presentation.
type Ticket struct {
	ID          string         `json:"id"`
	Subject     string         `json:"subject"`
	Description string         `json:"description"`
	Priority    TicketPriority `json:"priority,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Requester   string         `json:"requester,omitempty"`
	CreatedAt   time.Time      `json:"created_at,omitempty"`
	UpdatedAt   time.Time      `json:"updated_at,omitempty"`
}

// NewID generates a unique identifier for workflow runs and memory entries.
func NewID() string { return uuid.NewString() }
