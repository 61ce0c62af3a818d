package config

import "fmt"

// Config represents the paw configuration
type Config struct {
	AWS   AWSConfig   `mapstructure:"aws" toml:"aws" json:"aws" yaml:"aws"`
	SFN   SFNConfig   `mapstructure:"sfn" toml:"sfn" json:"sfn" yaml:"sfn"`
	Log   LogConfig   `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
	Retry RetryConfig `mapstructure:"retry" toml:"retry" json:"retry" yaml:"retry"`
}

// AWSConfig configures credentials and endpoint resolution for the SDK
type AWSConfig struct {
	Profile     string `mapstructure:"profile" toml:"profile" json:"profile" yaml:"profile"`                // Shared config profile (empty = SDK default chain)
	Region      string `mapstructure:"region" toml:"region" json:"region" yaml:"region"`                    // Region override (empty = AWS_REGION / profile)
	Endpoint    string `mapstructure:"endpoint" toml:"endpoint" json:"endpoint" yaml:"endpoint"`            // Base endpoint override, e.g. a local Step Functions emulator
	MaxAttempts int    `mapstructure:"max_attempts" toml:"max_attempts" json:"max_attempts" yaml:"max_attempts"` // SDK retryer attempts (0 = SDK default)
}

// SFNConfig configures how the Step Functions API is called
type SFNConfig struct {
	PageSize           int     `mapstructure:"page_size" toml:"page_size" json:"page_size" yaml:"page_size"`                                         // ListStateMachines/ListExecutions page size, 1..1000
	StartRatePerSecond float64 `mapstructure:"start_rate_per_second" toml:"start_rate_per_second" json:"start_rate_per_second" yaml:"start_rate_per_second"` // StartExecution calls per second (0 = unlimited)
}

// LogConfig configures log output
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json" json:"json" yaml:"json"`    // JSON logs instead of console lines
	Theme string `mapstructure:"theme" toml:"theme" json:"theme" yaml:"theme"` // everforest, gruvbox, plain
}

// RetryConfig configures the retry orchestrator
type RetryConfig struct {
	DryRun bool `mapstructure:"dry_run" toml:"dry_run" json:"dry_run" yaml:"dry_run"` // Describe and validate only, never start executions
}

// Paging limits imposed by the Step Functions ListExecutions API
const (
	MaxPageSize     = 1000
	DefaultPageSize = MaxPageSize
)

// File system constants
const (
	DefaultDirPermissions  = 0750
	DefaultFilePermissions = 0644
)

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{AWS: {Profile: %q, Region: %q}, SFN: {PageSize: %d}, Retry: {DryRun: %t}}",
		c.AWS.Profile, c.AWS.Region, c.SFN.PageSize, c.Retry.DryRun)
}
