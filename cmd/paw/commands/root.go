package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/paw/config"
	"github.com/teranos/paw/errors"
	"github.com/teranos/paw/logger"
)

// NewRootCmd builds the paw command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "paw",
		Short: "Retry failed AWS Step Functions executions",
		Long: `paw - find FAILED Step Functions executions in a date range and re-run them
with their original input.

Without a subcommand paw opens the interactive action menu.

Available commands:
  run       - Interactive action menu (default)
  machines  - List state machines
  failed    - List failed executions of a machine in a date range
  config    - Show and manage paw configuration
  version   - Show build information

Examples:
  paw                                        # Pick an action interactively
  paw --dry-run                              # Walk the retry flow without starting anything
  paw machines --json                        # State machines as JSON
  paw failed PawMachine --start "1989-09-30 22:10:32 -03:00"
  paw -vv --profile prod --region sa-east-1  # Debug logs against another account`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: initLogging,
		RunE:              runInteractive,
	}

	flags := root.PersistentFlags()
	flags.CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	flags.String("config", "", "Read configuration from this file only (default: /etc/paw, ~/.paw, ./paw.toml cascade)")
	flags.String("profile", "", "AWS shared config profile")
	flags.String("region", "", "AWS region")
	flags.Bool("dry-run", false, "Describe and validate executions but never start them")

	root.AddCommand(newRunCmd())
	root.AddCommand(newMachinesCmd())
	root.AddCommand(newFailedCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// initLogging initializes the global logger from -v and the log config.
// A broken config still gets a logger; the command reports the config error.
func initLogging(cmd *cobra.Command, args []string) error {
	verbosity, _ := cmd.Flags().GetCount("verbose")

	jsonLogs := false
	if cfg, err := LoadConfig(cmd); err == nil {
		jsonLogs = cfg.Log.JSON
		logger.SetTheme(cfg.LogTheme())
	}
	if os.Getenv("PAW_LOG_JSON") != "" {
		jsonLogs = true
	}

	if err := logger.Initialize(jsonLogs, verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	logger.Logger.Debugw("Logger initialized",
		"verbosity", logger.LevelName(verbosity),
		"config_paths", config.SearchPaths(),
	)
	for _, skipped := range config.SkippedFiles() {
		logger.Logger.Warnw("Ignoring unreadable config file, using the remaining sources",
			"path", skipped.Path,
			logger.FieldError, skipped.Err,
		)
	}
	return nil
}
