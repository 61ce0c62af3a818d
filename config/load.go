package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/paw/errors"
)

// ProjectConfigName is searched for from the working directory upwards
const ProjectConfigName = "paw.toml"

var globalConfig *Config
var viperInstance *viper.Viper

// SkippedFile is a config file that exists but could not be merged.
type SkippedFile struct {
	Path string
	Err  error
}

var skippedFiles []SkippedFile

// SkippedFiles returns the files the last cascade load could not read.
func SkippedFiles() []SkippedFile {
	return skippedFiles
}

// Load reads the paw configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}

	globalConfig = cfg
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path.
// Environment variables still override the file.
func LoadFromFile(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config from %s", configPath)
	}

	viperInstance = v
	globalConfig = cfg
	return cfg, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
	skippedFiles = nil
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return initViper().Get(key)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("PAW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	BindSensitiveEnvVars(v)
	SetDefaults(v)
	return v
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := newViper()
	skippedFiles = mergeConfigFiles(v, SearchPaths())

	viperInstance = v
	return v
}

// SearchPaths returns the config files consulted, lowest precedence first.
// The project file is only included when one is found.
func SearchPaths() []string {
	paths := []string{"/etc/paw/config.toml"}
	if user := UserConfigPath(); user != "" {
		paths = append(paths, user)
	}
	if project := findProjectConfig(); project != "" {
		paths = append(paths, project)
	}
	return paths
}

// UserConfigPath returns ~/.paw/config.toml, or "" without a home directory
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".paw", "config.toml")
}

// findProjectConfig searches for paw.toml by walking up the directory tree
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, ProjectConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges configuration files in precedence order.
// Missing files are ignored; files that exist but fail to parse or merge
// are returned so the caller can warn about them.
func mergeConfigFiles(v *viper.Viper, paths []string) []SkippedFile {
	var skipped []SkippedFile
	for _, configPath := range paths {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}

		tempViper := viper.New()
		tempViper.SetConfigFile(configPath)
		tempViper.SetConfigType("toml")
		if err := tempViper.ReadInConfig(); err != nil {
			skipped = append(skipped, SkippedFile{Path: configPath, Err: errors.Wrap(err, "failed to parse")})
			continue
		}

		if err := v.MergeConfigMap(tempViper.AllSettings()); err != nil {
			skipped = append(skipped, SkippedFile{Path: configPath, Err: errors.Wrap(err, "failed to merge")})
		}
	}
	return skipped
}
