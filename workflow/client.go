package workflow

import "context"

// Client is the remote workflow service as seen by the rest of paw.
//
// Every method is a blocking remote call; failures are transport errors
// (errors.Is(err, errors.ErrTransport)) with the original cause preserved.
// Implementations hold no state beyond their connection and are reused
// sequentially for a whole run.
type Client interface {
	// ListMachines returns the registered state machines. Empty is not an error.
	ListMachines(ctx context.Context) ([]Machine, error)

	// ListFailedExecutions drains the paginated FAILED listing of one machine,
	// keeping only executions inside window, in service order. A failed page
	// fetch discards everything and returns the error.
	ListFailedExecutions(ctx context.Context, machineARN string, window DateWindow) ([]ExecutionSummary, error)

	// DescribeExecution fetches one execution including its payloads.
	DescribeExecution(ctx context.Context, executionARN string) (ExecutionDetail, error)

	// StartExecution starts a new run of machineARN with input.
	StartExecution(ctx context.Context, machineARN string, input string) (StartedExecution, error)
}
