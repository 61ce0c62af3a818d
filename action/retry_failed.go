package action

import (
	"context"

	"github.com/pterm/pterm"

	"github.com/teranos/paw/display"
	"github.com/teranos/paw/retry"
)

// ExecutionsLabel is the question of the execution checklist.
const ExecutionsLabel = "Select the executions to retry:"

// RetryFailedExecutions restarts chosen failed executions with their original input.
type RetryFailedExecutions struct {
	Base
	deps Deps
}

// NewRetryFailedExecutions creates the retry action.
func NewRetryFailedExecutions(deps Deps) *RetryFailedExecutions {
	return &RetryFailedExecutions{deps: deps}
}

func (a *RetryFailedExecutions) Name() string { return "Retry Failed Executions" }

func (a *RetryFailedExecutions) String() string { return a.Name() }

// Execute asks for a machine and window, offers every failed execution in
// the window pre-checked, and replays the chosen ones in checklist order.
// Nothing to offer or nothing chosen is a successful no-op.
func (a *RetryFailedExecutions) Execute(ctx context.Context) error {
	catalog, err := discover(ctx, a.deps)
	if err != nil {
		return err
	}

	info := pterm.Info.WithWriter(a.deps.out())
	if catalog.IsEmpty() {
		info.Printfln("No failed executions of %s in %s", catalog.Machine.Name, catalog.Window)
		return nil
	}

	all := make([]int, catalog.Len())
	for i := range all {
		all[i] = i
	}
	selected, err := a.deps.Prompter.MultiSelect(ExecutionsLabel, catalog.Labels(), all)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		info.Println("No executions selected")
		return nil
	}

	retrier := retry.New(a.deps.Client, a.deps.Emitter, retry.WithDryRun(a.deps.DryRun))
	report, err := retrier.Run(ctx, catalog, selected)
	display.PrintReport(a.deps.out(), report)
	return err
}
