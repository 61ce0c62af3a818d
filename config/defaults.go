package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("aws.profile", "")
	v.SetDefault("aws.region", "")
	v.SetDefault("aws.endpoint", "")
	v.SetDefault("aws.max_attempts", 0)

	v.SetDefault("sfn.page_size", DefaultPageSize)
	v.SetDefault("sfn.start_rate_per_second", 0.0)

	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", "everforest")

	v.SetDefault("retry.dry_run", false)
}

// BindSensitiveEnvVars binds the standard AWS variables so paw honours the
// same environment as the aws CLI, below the PAW_* names.
func BindSensitiveEnvVars(v *viper.Viper) {
	_ = v.BindEnv("aws.profile", "PAW_AWS_PROFILE", "AWS_PROFILE")
	_ = v.BindEnv("aws.region", "PAW_AWS_REGION", "AWS_REGION", "AWS_DEFAULT_REGION")
	_ = v.BindEnv("aws.endpoint", "PAW_AWS_ENDPOINT", "AWS_ENDPOINT_URL_SFN")
}

// PageSize returns the configured page size clamped to 1..MaxPageSize
func (c *Config) PageSize() int32 {
	switch {
	case c.SFN.PageSize <= 0:
		return DefaultPageSize
	case c.SFN.PageSize > MaxPageSize:
		return MaxPageSize
	default:
		return int32(c.SFN.PageSize)
	}
}

// LogTheme returns the log theme (default: everforest)
func (c *Config) LogTheme() string {
	if c.Log.Theme == "" {
		return "everforest"
	}
	return c.Log.Theme
}
