// Package commands holds the cobra commands of the paw binary.
package commands

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/paw/config"
	"github.com/teranos/paw/errors"
	"github.com/teranos/paw/workflow"
	"github.com/teranos/paw/workflow/sfn"
)

// ErrReported marks errors a command already printed; main only sets the exit code.
var ErrReported = errors.New("error already reported")

// newClient builds the workflow client. Tests replace it with a fake.
var newClient = func(ctx context.Context, cfg *config.Config) (workflow.Client, error) {
	return sfn.New(ctx, cfg)
}

// LoadConfig loads the configuration (--config file or the default cascade)
// and applies the global flag overrides on a copy.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		loaded *config.Config
		err    error
	)
	if path := stringFlag(cmd, "config"); path != "" {
		loaded, err = config.LoadFromFile(path)
	} else {
		loaded, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	cfg := *loaded
	if flagChanged(cmd, "profile") {
		cfg.AWS.Profile = stringFlag(cmd, "profile")
	}
	if flagChanged(cmd, "region") {
		cfg.AWS.Region = stringFlag(cmd, "region")
	}
	if flagChanged(cmd, "dry-run") {
		cfg.Retry.DryRun, _ = cmd.Flags().GetBool("dry-run")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.WithHint(err, "run 'paw config where' to see which file sets it")
	}
	return &cfg, nil
}

// connect loads the configuration and builds a workflow client from it.
func connect(cmd *cobra.Command) (*config.Config, workflow.Client, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	client, err := newClient(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, client, nil
}

// PrintError prints err with its hints.
func PrintError(err error) {
	pterm.Error.Println(err)
	for _, hint := range errors.GetAllHints(err) {
		pterm.Info.Println(hint)
	}
}

func stringFlag(cmd *cobra.Command, name string) string {
	if cmd.Flags().Lookup(name) == nil {
		return ""
	}
	value, _ := cmd.Flags().GetString(name)
	return value
}

func flagChanged(cmd *cobra.Command, name string) bool {
	return cmd.Flags().Lookup(name) != nil && cmd.Flags().Changed(name)
}
