package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/paw/display"
	"github.com/teranos/paw/errors"
	"github.com/teranos/paw/workflow"
)

func newFailedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "failed <machine-name-or-arn>",
		Short: "List failed executions of a machine",
		Long: `List FAILED executions of a state machine whose start time falls inside
[--start, --end]. Both bounds are inclusive and optional; a missing bound
imposes no constraint.

Dates use the format "1989-09-30 22:10:32 -03:00".

Examples:
  paw failed PawMachine
  paw failed PawMachine --start "1989-09-30 22:10:32 -03:00" --end "1989-09-30 23:15:00 -03:00"
  paw failed arn:aws:states:sa-east-1:123456789012:stateMachine:PawMachine --json`,
		Args: cobra.ExactArgs(1),
		RunE: runFailed,
	}
	cmd.Flags().String("start", "", "Earliest start time (inclusive)")
	cmd.Flags().String("end", "", "Latest start time (inclusive)")
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	return cmd
}

func runFailed(cmd *cobra.Command, args []string) error {
	start, err := workflow.ParseTimestamp(stringFlag(cmd, "start"))
	if err != nil {
		return errors.Wrap(err, "--start")
	}
	end, err := workflow.ParseTimestamp(stringFlag(cmd, "end"))
	if err != nil {
		return errors.Wrap(err, "--end")
	}
	window := workflow.DateWindow{Start: start, End: end}

	_, client, err := connect(cmd)
	if err != nil {
		return err
	}

	machines, err := client.ListMachines(cmd.Context())
	if err != nil {
		return errors.Wrap(err, "failed to list state machines")
	}
	machine, err := workflow.FindMachine(machines, args[0])
	if err != nil {
		return errors.WithHint(err, "run 'paw machines' to see the available names")
	}

	executions, err := client.ListFailedExecutions(cmd.Context(), machine.ARN, window)
	if err != nil {
		return errors.Wrapf(err, "failed to list failed executions of %s", machine.Name)
	}
	catalog := workflow.NewCatalog(machine, window, executions)

	if display.ShouldOutputJSON(cmd) {
		return display.WriteJSON(cmd.OutOrStdout(), catalog)
	}
	return display.PrintCatalog(cmd.OutOrStdout(), catalog)
}
