package commands

import (
	"context"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/paw/action"
	"github.com/teranos/paw/display"
	"github.com/teranos/paw/errors"
	"github.com/teranos/paw/logger"
	"github.com/teranos/paw/prompt"
	"github.com/teranos/paw/retry"
)

// Terminal collaborators. Tests replace them with scripted ones.
var (
	newPrompter = func() prompt.Prompter { return prompt.NewTerminal() }
	newEmitter  = func() retry.ProgressEmitter { return display.NewProgressBar() }
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive action menu",
		Long: `Open the interactive action menu.

Retry Failed Executions walks through:
  1. Select the Machine
  2. Start and end date (empty = no bound, format 1989-09-30 22:10:32 -03:00)
  3. Select the executions to retry (all pre-checked)

Each chosen execution is described and restarted with its original input,
one at a time. The first failure stops the batch; executions already
restarted are not rolled back.`,
		Args: cobra.NoArgs,
		RunE: runInteractive,
	}
}

// NewRegistry returns the actions of the interactive menu, in menu order.
func NewRegistry(deps action.Deps) *action.Registry {
	return action.NewRegistry(
		action.NewRetryFailedExecutions(deps),
		action.NewListFailedExecutions(deps),
	)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, client, err := connect(cmd)
	if err != nil {
		return err
	}

	p := newPrompter()
	deps := action.Deps{
		Client:   client,
		Prompter: p,
		Emitter:  newEmitter(),
		DryRun:   cfg.Retry.DryRun,
		Out:      cmd.OutOrStdout(),
	}
	return runAction(cmd.Context(), NewRegistry(deps), p, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// runAction asks for an action, runs it and reports the result the way the
// menu always has: "Success" or "Error on processing action: <err>".
func runAction(ctx context.Context, registry *action.Registry, p prompt.Prompter, out, errOut io.Writer) error {
	chosen, err := registry.Choose(p)
	if err != nil {
		return err
	}

	log := logger.ComponentLogger("run")
	log.Infow("Running action", logger.FieldAction, chosen.Name())

	if err := chosen.Execute(ctx); err != nil {
		log.Errorw("Action failed", logger.FieldAction, chosen.Name(), logger.FieldError, err)
		pterm.Error.WithWriter(errOut).Printfln("Error on processing action: %v", err)
		for _, hint := range errors.GetAllHints(err) {
			pterm.Info.WithWriter(errOut).Println(hint)
		}
		return errors.Mark(err, ErrReported)
	}

	pterm.Success.WithWriter(out).Println("Success")
	return nil
}
