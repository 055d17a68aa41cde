package workflow

import (
	"context"

	"github.com/hupe1980/ticketmesh/core"
)

// RouteAsync starts a routing run in the background and returns immediately
// with the run id plus result and error channels. Exactly one of the two
// channels receives a value; both are closed when the run finishes. The run
// can be stopped early with Cancel(runID) or by cancelling ctx.
func (o *Orchestrator) RouteAsync(ctx context.Context, ticket *core.Ticket, optFns ...func(o *RouteOptions)) (string, <-chan *core.MultiAgentResponse, <-chan error) {
	runID := core.NewID()
	results := make(chan *core.MultiAgentResponse, 1)
	errs := make(chan error, 1)

	runCtx, cancel := context.WithCancel(ctx)

	o.runsMu.Lock()
	o.runs[runID] = cancel
	o.runsMu.Unlock()

	go func() {
		defer close(results)
		defer close(errs)
		defer func() {
			o.runsMu.Lock()
			delete(o.runs, runID)
			o.runsMu.Unlock()
			cancel()
		}()

		response, err := o.Route(runCtx, ticket, optFns...)
		if err != nil {
			errs <- err
			return
		}
		results <- response
	}()

	return runID, results, errs
}

// Cancel aborts a running async route. It reports whether the run id was
// known and still active.
func (o *Orchestrator) Cancel(runID string) bool {
	o.runsMu.Lock()
	cancel, ok := o.runs[runID]
	if ok {
		delete(o.runs, runID)
	}
	o.runsMu.Unlock()

	if ok {
		cancel()
	}
	return ok
}

// ActiveRuns returns the number of in-flight async routes.
func (o *Orchestrator) ActiveRuns() int {
	o.runsMu.Lock()
	defer o.runsMu.Unlock()
	return len(o.runs)
}
