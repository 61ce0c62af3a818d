package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/paw/config"
	"github.com/teranos/paw/errors"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and manage paw configuration",
		Long: `Display and manage paw configuration.

Configuration sources (in order of precedence):
1. Command line flags (--profile, --region, --dry-run)
2. Environment variables (PAW_* prefix, plus AWS_PROFILE / AWS_REGION)
3. Project config (./paw.toml, searched up the directory tree)
4. User config (~/.paw/config.toml)
5. System config (/etc/paw/config.toml)
6. Default values

Examples:
  paw config show                  # Show current configuration
  paw config show --format json    # Show configuration in JSON format
  paw config get sfn.page_size     # Get specific config value
  paw config validate              # Validate current configuration
  paw config init                  # Write defaults to ~/.paw/config.toml`,
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective paw configuration from all sources",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
	show.Flags().String("format", "toml", "Output format: toml, json, yaml")

	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a specific configuration value using dot notation (e.g., aws.region, sfn.page_size)",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigGet,
	}

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigValidate,
	}

	where := &cobra.Command{
		Use:   "where",
		Short: "Show where configuration is loaded from",
		Long: `Show the configuration cascade and which files were found.

Lists every configuration file in order of precedence, showing
which exist and which are missing.`,
		Args: cobra.NoArgs,
		RunE: runConfigWhere,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	initCmd.Flags().String("path", "", "File to write (default ~/.paw/config.toml)")
	initCmd.Flags().Bool("force", false, "Overwrite an existing file (a .back1 copy is kept)")

	cmd.AddCommand(show, get, validate, where, initCmd)
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(out, string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# paw configuration\n%s", string(data))

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(out, "# paw configuration\n%s", string(data))

	default:
		return errors.NewInvalidRequestError("unsupported format: %s (supported: toml, json, yaml)", format)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v := config.GetViper()
	if !v.IsSet(key) {
		return errors.NewNotFoundError("configuration key %q", key)
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.Get(key))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if _, err := LoadConfig(cmd); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
	return nil
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
	fmt.Fprintln(out, "  2. [SYSTEM]   /etc/paw/config.toml")
	fmt.Fprintln(out, "  3. [USER]     ~/.paw/config.toml")
	fmt.Fprintln(out, "  4. [PROJECT]  ./paw.toml (searches up directories)")
	fmt.Fprintln(out, "  5. [ENV]      PAW_* and AWS_* environment variables")
	fmt.Fprintln(out, "  6. [FLAGS]    --profile, --region, --dry-run")
	fmt.Fprintln(out)

	if path := stringFlag(cmd, "config"); path != "" {
		fmt.Fprintf(out, "--config given, only %s is read\n", path)
		return nil
	}

	// loads the cascade so unreadable files can be flagged
	if _, err := config.Load(); err != nil {
		return err
	}
	invalid := make(map[string]bool)
	for _, skipped := range config.SkippedFiles() {
		invalid[skipped.Path] = true
	}

	fmt.Fprintln(out, "Files:")
	paths := []string{"/etc/paw/config.toml", config.UserConfigPath()}
	for _, p := range config.SearchPaths() {
		if p != paths[0] && p != paths[1] {
			paths = append(paths, p)
		}
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		status := "missing"
		if _, err := os.Stat(p); err == nil {
			status = "found"
		}
		if invalid[p] {
			status = "invalid"
		}
		fmt.Fprintf(out, "  %-8s %s\n", status, p)
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := stringFlag(cmd, "path")
	if path == "" {
		path = config.UserConfigPath()
	}
	if path == "" {
		return errors.New("cannot determine home directory; pass --path")
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return errors.WithHint(
			errors.Newf("%s already exists", path),
			"pass --force to overwrite it (the old file is kept as .back1)",
		)
	}

	if err := config.Save(config.Defaults(), path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
	return nil
}
