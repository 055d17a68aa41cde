package agent

import (
	"context"
	"strings"

	"github.com/hupe1980/ticketmesh/tool"
)

// analyzeLogsTool summarizes a batch of log lines: total count plus how many
// carry error or warning markers. It is the stock diagnostic tool of the
// software engineering profile.
func analyzeLogsTool() tool.Tool {
	return tool.NewFunctionTool(
		"analyze_logs",
		"Summarize log lines and count error and warning entries",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"lines": map[string]any{"type": "array"},
			},
			"required": []string{"lines"},
		},
		func(ctx context.Context, inv *tool.Invocation, args map[string]any) (any, error) {
			lines := stringSlice(args["lines"])

			var errors, warnings int
			for _, line := range lines {
				lowered := strings.ToLower(line)
				switch {
				case strings.Contains(lowered, "error") || strings.Contains(lowered, "fatal") || strings.Contains(lowered, "panic"):
					errors++
				case strings.Contains(lowered, "warn"):
					warnings++
				}
			}

			return map[string]any{
				"total":    len(lines),
				"errors":   errors,
				"warnings": warnings,
			}, nil
		},
	)
}

// inspectCodeTool reports basic shape metrics for a code snippet so an
// analysis can reference concrete numbers instead of impressions.
func inspectCodeTool() tool.Tool {
	return tool.NewFunctionTool(
		"inspect_code",
		"Report line count and open follow-up markers for a code snippet",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"snippet": map[string]any{"type": "string"},
			},
			"required": []string{"snippet"},
		},
		func(ctx context.Context, inv *tool.Invocation, args map[string]any) (any, error) {
			snippet, _ := args["snippet"].(string)
			lines := strings.Split(snippet, "\n")

			todos := 0
			for _, line := range lines {
				if strings.Contains(line, "TODO") || strings.Contains(line, "FIXME") {
					todos++
				}
			}

			return map[string]any{
				"lines":    len(lines),
				"todos":    todos,
				"is_empty": strings.TrimSpace(snippet) == "",
			}, nil
		},
	)
}

// stringSlice tolerates both []string and JSON-decoded []any inputs.
func stringSlice(v any) []string {
	switch values := v.(type) {
	case []string:
		return values
	case []any:
		out := make([]string, 0, len(values))
		for _, item := range values {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
