package action

import (
	"context"

	"github.com/teranos/paw/errors"
	"github.com/teranos/paw/logger"
	"github.com/teranos/paw/prompt"
	"github.com/teranos/paw/workflow"
)

// MachineLabel is the question of the machine menu.
const MachineLabel = "Select the Machine:"

// discover asks for a machine and a date window and collects the failed
// executions of that machine inside the window.
func discover(ctx context.Context, deps Deps) (*workflow.Catalog, error) {
	machines, err := deps.Client.ListMachines(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list state machines")
	}
	if len(machines) == 0 {
		return nil, errors.WithHint(
			errors.NewNotFoundError("no state machines"),
			"check the AWS region and account paw is pointed at",
		)
	}

	index, err := deps.Prompter.Select(MachineLabel, workflow.MachineNames(machines))
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(machines) {
		return nil, errors.NewInvalidRequestError("machine index %d out of range [0, %d)", index, len(machines))
	}
	machine := machines[index]

	window, err := prompt.Window(deps.Prompter, deps.Warn)
	if err != nil {
		return nil, err
	}

	executions, err := deps.Client.ListFailedExecutions(ctx, machine.ARN, window)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list failed executions of %s", machine.Name)
	}

	logger.Logger.Named("action").Infow("Discovered failed executions",
		logger.FieldMachineName, machine.Name,
		logger.FieldCount, len(executions),
		logger.FieldWindowStart, window.Start,
		logger.FieldWindowEnd, window.End,
	)
	return workflow.NewCatalog(machine, window, executions), nil
}
