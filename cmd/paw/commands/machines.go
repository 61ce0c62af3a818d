package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/paw/display"
	"github.com/teranos/paw/errors"
)

func newMachinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "machines",
		Short: "List state machines",
		Long:  "List the state machines visible to the configured AWS account and region.",
		Args:  cobra.NoArgs,
		RunE:  runMachines,
	}
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	return cmd
}

func runMachines(cmd *cobra.Command, args []string) error {
	_, client, err := connect(cmd)
	if err != nil {
		return err
	}

	machines, err := client.ListMachines(cmd.Context())
	if err != nil {
		return errors.Wrap(err, "failed to list state machines")
	}

	if display.ShouldOutputJSON(cmd) {
		return display.WriteJSON(cmd.OutOrStdout(), machines)
	}

	if len(machines) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No state machines found")
		return nil
	}
	table, err := display.MachinesTable(machines)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)
	return nil
}
