package agent

import (
	"strings"

	"github.com/hupe1980/ticketmesh/core"
	"github.com/hupe1980/ticketmesh/tool"
)

// ClassificationRule is one ordered entry in a profile's diagnostic table.
// Rules are evaluated in declaration order and the first rule with any
// keyword present in the ticket text wins.
type ClassificationRule struct {
	// Name is the trigger category, surfaced in memory entries and logs.
	Name string

	// Keywords match the lowercased ticket text by substring; any hit
	// selects the rule.
	Keywords []string

	// Analysis is the diagnosis text emitted when the rule matches.
	Analysis string

	// Actions is the fixed action triplet: root cause hypothesis, fix
	// approach, time estimate.
	Actions []string

	Complexity    core.Complexity
	EstimatedTime string

	// NextAgent optionally embeds a handoff suggestion in the analysis.
	NextAgent *core.AgentRole

	// Priority optionally escalates the ticket priority.
	Priority core.TicketPriority
}

// HandoffTrigger is one ordered entry in a profile's handoff table. The
// table is intentionally independent from the classification rules: its
// ordering and keyword sensitivity encode when this specialist gives a
// ticket away, not how it diagnoses one.
type HandoffTrigger struct {
	// Keywords match the lowercased ticket text by substring.
	Keywords []string

	// Target is the role to hand the ticket to.
	Target core.AgentRole

	// Reason is the textual trigger category recorded as the workflow's
	// handoff reason.
	Reason string
}

// ToolBinding pairs a tool with the task-text substrings that select it
// during Execute dispatch.
type ToolBinding struct {
	Tool  tool.Tool
	Match []string
}

// Profile is the complete data record describing one specialist role. It is
// the single authoritative keyword source for Analyze, ShouldHandoff and
// CanHandle.
type Profile struct {
	Role         core.AgentRole
	Description  string
	Capabilities []string

	// Rules is the ordered classification table; first match wins.
	Rules []ClassificationRule

	// Fallback is applied when no rule matches. Required: Analyze never
	// fails on unmatched content.
	Fallback ClassificationRule

	// HandoffTriggers is the ordered handoff table; first match wins.
	HandoffTriggers []HandoffTrigger

	// Vocabulary holds extra interest terms beyond the rule keywords, used
	// only by CanHandle.
	Vocabulary []string

	// Tools are the profile's default tool bindings.
	Tools []ToolBinding

	// MaxConcurrentTasks is the profile default; zero means the package
	// default of 5.
	MaxConcurrentTasks int
}

// DefaultMaxConcurrentTasks is applied when neither the profile nor the
// creation options specify a task ceiling.
const DefaultMaxConcurrentTasks = 5

// fullVocabulary returns the union of every rule keyword, handoff keyword
// and extra vocabulary term. Order follows declaration; duplicates are
// dropped.
func (p *Profile) fullVocabulary() []string {
	seen := make(map[string]bool)
	var vocab []string
	add := func(terms []string) {
		for _, term := range terms {
			term = strings.ToLower(term)
			if term == "" || seen[term] {
				continue
			}
			seen[term] = true
			vocab = append(vocab, term)
		}
	}

	for _, rule := range p.Rules {
		add(rule.Keywords)
	}
	for _, trigger := range p.HandoffTriggers {
		add(trigger.Keywords)
	}
	add(p.Vocabulary)

	return vocab
}

// matchRule returns the first rule with a keyword hit plus the number of its
// keywords present in the text. The boolean is false when no rule matches.
func (p *Profile) matchRule(text string) (*ClassificationRule, int, bool) {
	for i := range p.Rules {
		rule := &p.Rules[i]
		hits := keywordHits(text, rule.Keywords)
		if hits > 0 {
			return rule, hits, true
		}
	}
	return nil, 0, false
}

// matchHandoff returns the first handoff trigger with a keyword hit.
func (p *Profile) matchHandoff(text string) (*HandoffTrigger, bool) {
	for i := range p.HandoffTriggers {
		trigger := &p.HandoffTriggers[i]
		if keywordHits(text, trigger.Keywords) > 0 {
			return trigger, true
		}
	}
	return nil, false
}

func keywordHits(text string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
			hits++
		}
	}
	return hits
}

// ticketText normalizes a ticket's subject and description into the
// lowercase haystack every keyword table matches against.
func ticketText(ticket *core.Ticket) string {
	return strings.ToLower(ticket.Subject + " " + ticket.Description)
}
