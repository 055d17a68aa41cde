package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/ticketmesh/core"
	"github.com/hupe1980/ticketmesh/tool"
)

// Interface compliance (compile-time assertion)
var _ Agent = (*profileAgent)(nil)

func crashTicket() *core.Ticket {
	return &core.Ticket{
		ID:          "T-100",
		Subject:     "App crashes with exception on login",
		Description: "Users report an error and crash",
	}
}

func wordpressTicket() *core.Ticket {
	return &core.Ticket{
		ID:          "T-200",
		Subject:     "wordpress plugin broken",
		Description: "Checkout page fails since the last plugin update",
	}
}

func TestSoftwareEngineer_Analyze_CrashScenario(t *testing.T) {
	a := New(SoftwareEngineerProfile())

	analysis, err := a.Analyze(context.Background(), crashTicket())
	require.NoError(t, err)

	assert.Equal(t, core.RoleSoftwareEngineer, analysis.Role)
	assert.Equal(t, core.ComplexityMedium, analysis.Complexity)
	assert.Equal(t, "3-6 hours", analysis.EstimatedTime)
	assert.Nil(t, analysis.NextAgent)
	assert.Len(t, analysis.RecommendedActions, 3)
	assert.True(t, a.CanHandle(crashTicket()))
}

func TestSoftwareEngineer_Analyze_WordPressScenario(t *testing.T) {
	a := New(SoftwareEngineerProfile())

	analysis, err := a.Analyze(context.Background(), wordpressTicket())
	require.NoError(t, err)

	require.NotNil(t, analysis.NextAgent)
	assert.Equal(t, core.RoleWordPressDeveloper, *analysis.NextAgent)

	// The handoff trigger table is independent from the classification
	// rules but must agree on this ticket.
	target, reason, handoff := a.ShouldHandoff(&core.WorkflowContext{Ticket: wordpressTicket()})
	require.True(t, handoff)
	assert.Equal(t, core.RoleWordPressDeveloper, target)
	assert.Equal(t, "wordpress_expertise", reason)
}

func TestAnalyze_ConfidenceAlwaysInUnitInterval(t *testing.T) {
	tickets := []*core.Ticket{
		crashTicket(),
		wordpressTicket(),
		{ID: "T-1", Subject: "crash exception error bug", Description: "crash exception error bug"},
		{ID: "T-2", Subject: "hello", Description: "nothing relevant at all"},
		{ID: "T-3", Subject: "", Description: ""},
		{ID: "T-4", Subject: "slow database query timeout", Description: "migration pending"},
	}

	for _, profile := range DefaultProfiles() {
		a := New(profile)
		for _, ticket := range tickets {
			analysis, err := a.Analyze(context.Background(), ticket)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, analysis.Confidence, 0.0, "role %s ticket %s", profile.Role, ticket.ID)
			assert.LessOrEqual(t, analysis.Confidence, 1.0, "role %s ticket %s", profile.Role, ticket.ID)
		}
	}
}

func TestAnalyze_FirstMatchingRuleWins(t *testing.T) {
	a := New(SoftwareEngineerProfile())

	// Contains both defect and wordpress keywords; the defect rule is
	// declared first and must win.
	ticket := &core.Ticket{
		ID:          "T-300",
		Subject:     "wordpress site throws exception",
		Description: "stack trace attached",
	}

	analysis, err := a.Analyze(context.Background(), ticket)
	require.NoError(t, err)
	assert.Equal(t, "3-6 hours", analysis.EstimatedTime)
	assert.Nil(t, analysis.NextAgent)
}

func TestAnalyze_FallbackForUnmatchedContent(t *testing.T) {
	a := New(SoftwareEngineerProfile())

	analysis, err := a.Analyze(context.Background(), &core.Ticket{
		ID:          "T-400",
		Subject:     "question about something unrelated",
		Description: "no technical vocabulary here",
	})
	require.NoError(t, err)
	assert.Equal(t, "General software engineering review required.", analysis.Analysis)
	assert.InDelta(t, fallbackConfidence, analysis.Confidence, 1e-9)
	assert.Len(t, analysis.RecommendedActions, 3)
}

func TestAnalyze_AppendsMemoryEntry(t *testing.T) {
	a := New(SoftwareEngineerProfile())
	ticket := crashTicket()

	_, err := a.Analyze(context.Background(), ticket)
	require.NoError(t, err)
	_, err = a.Analyze(context.Background(), ticket)
	require.NoError(t, err)

	entries := a.Memory(ticket.ID)
	require.Len(t, entries, 2, "memory is append-only; repeated analyses accumulate")
	assert.Equal(t, core.MemoryAnalysis, entries[0].Kind)
	assert.Equal(t, ticket.ID, entries[0].TicketID)
}

func TestAnalyze_RespectsCancelledContext(t *testing.T) {
	a := New(SoftwareEngineerProfile())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Analyze(ctx, crashTicket())
	assert.ErrorIs(t, err, context.Canceled)
}

func newStaticTool(name string, output any, err error) tool.Tool {
	return tool.NewFunctionTool(name, "static test tool",
		map[string]any{"type": "object", "properties": map[string]any{}},
		func(ctx context.Context, inv *tool.Invocation, args map[string]any) (any, error) {
			return output, err
		},
	)
}

func TestExecute_DispatchesFirstMatchingTool(t *testing.T) {
	logTool := newStaticTool("inspect_logs", "12 errors found", nil)
	scanTool := newStaticTool("run_scan", "clean", nil)

	profile := SoftwareEngineerProfile()
	profile.Tools = []ToolBinding{
		{Tool: logTool, Match: []string{"logs", "log file"}},
		{Tool: scanTool, Match: []string{"scan"}},
	}
	a := New(profile)

	result, err := a.Execute(context.Background(), "please inspect the logs and scan", map[string]any{"ticket_id": "T-500"})
	require.NoError(t, err)

	assert.Equal(t, core.ExecutionCompleted, result.Status)
	assert.Equal(t, "inspect_logs", result.Tool, "first matching binding wins")
	assert.Equal(t, "12 errors found", result.Output)
}

func TestExecute_ToolFailureBecomesFailedResult(t *testing.T) {
	failing := newStaticTool("inspect_logs", nil, errors.New("log store unreachable"))

	profile := SoftwareEngineerProfile()
	profile.Tools = []ToolBinding{{Tool: failing, Match: []string{"logs"}}}
	a := New(profile)

	result, err := a.Execute(context.Background(), "check the logs", map[string]any{"ticket_id": "T-501"})
	require.NoError(t, err, "tool failures must not propagate as errors")

	assert.Equal(t, core.ExecutionFailed, result.Status)
	assert.Equal(t, "inspect_logs", result.Tool)
	assert.Contains(t, result.Error, "log store unreachable")
}

func TestExecute_NoMatchingToolCompletesGenerically(t *testing.T) {
	a := New(SoftwareEngineerProfile())

	result, err := a.Execute(context.Background(), "do something unusual", map[string]any{"ticket_id": "T-502"})
	require.NoError(t, err)

	assert.Equal(t, core.ExecutionCompleted, result.Status)
	assert.Empty(t, result.Tool)
	assert.Contains(t, fmt.Sprint(result.Output), "task acknowledged")
}

func TestExecute_StockLogAnalysisTool(t *testing.T) {
	a := New(SoftwareEngineerProfile())

	result, err := a.Execute(context.Background(), "analyze the application logs", map[string]any{
		"ticket_id": "T-510",
		"lines": []string{
			"INFO service started",
			"ERROR connection refused",
			"WARN retrying in 5s",
			"panic: nil pointer dereference",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, core.ExecutionCompleted, result.Status)
	assert.Equal(t, "analyze_logs", result.Tool)

	summary, ok := result.Output.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 4, summary["total"])
	assert.Equal(t, 2, summary["errors"])
	assert.Equal(t, 1, summary["warnings"])
}

func TestExecute_StockCodeInspectionToolRequiresSnippet(t *testing.T) {
	a := New(SoftwareEngineerProfile())

	result, err := a.Execute(context.Background(), "inspect this code", map[string]any{"ticket_id": "T-511"})
	require.NoError(t, err)

	// Missing required parameter fails the tool call, not the execution.
	assert.Equal(t, core.ExecutionFailed, result.Status)
	assert.Equal(t, "inspect_code", result.Tool)
	assert.Contains(t, result.Error, "snippet")
}

func TestExecute_AlwaysRecordsMemory(t *testing.T) {
	a := New(SoftwareEngineerProfile())

	_, err := a.Execute(context.Background(), "anything", map[string]any{"ticket_id": "T-503"})
	require.NoError(t, err)

	entries := a.Memory("T-503")
	require.Len(t, entries, 1)
	assert.Equal(t, core.MemoryExecution, entries[0].Kind)
}

func TestStoreMemory_ConcurrentAppendsPerTicket(t *testing.T) {
	a := New(SoftwareEngineerProfile())

	const writers = 16
	const perWriter = 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			ticketID := fmt.Sprintf("T-%d", w%4)
			for i := 0; i < perWriter; i++ {
				a.StoreMemory(ticketID, core.MemoryExecution, i, nil)
			}
		}(w)
	}
	wg.Wait()

	total := 0
	for i := 0; i < 4; i++ {
		total += len(a.Memory(fmt.Sprintf("T-%d", i)))
	}
	assert.Equal(t, writers*perWriter, total, "no appends may be lost")
}

func TestCanHandle_VocabularyMembership(t *testing.T) {
	a := New(ProjectManagerProfile())

	assert.True(t, a.CanHandle(&core.Ticket{Subject: "Invoice question", Description: "about last month's billing"}))
	assert.False(t, a.CanHandle(&core.Ticket{Subject: "hello", Description: "nothing relevant"}))
}

func TestShouldHandoff_NilContextIsSafe(t *testing.T) {
	a := New(SoftwareEngineerProfile())

	_, _, handoff := a.ShouldHandoff(nil)
	assert.False(t, handoff)
	_, _, handoff = a.ShouldHandoff(&core.WorkflowContext{})
	assert.False(t, handoff)
}

func TestNew_AppliesProfileAndOptionDefaults(t *testing.T) {
	a := New(DevOpsProfile())
	assert.Equal(t, DefaultMaxConcurrentTasks, a.MaxConcurrentTasks())
	assert.Equal(t, core.RoleDevOps, a.Role())
	assert.NotEmpty(t, a.Capabilities())

	b := New(DevOpsProfile(), func(o *Options) {
		o.Capabilities = []string{"only_this"}
		o.MaxConcurrentTasks = 2
	})
	assert.Equal(t, []string{"only_this"}, b.Capabilities())
	assert.Equal(t, 2, b.MaxConcurrentTasks())
}
