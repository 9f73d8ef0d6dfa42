package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ProjectName  = "shortcutai"
	DefaultAppID = "com.shortcutai.app"
	envPrefix    = "SHORTCUTAI"
)

// Config holds the host settings of the binary. These are not the persisted
// app documents; they decide where those documents live and how results are
// printed.
type Config struct {
	// ConfigDir overrides the per-user config directory when set.
	ConfigDir string `mapstructure:"config_dir" yaml:"config_dir"`
	// AppID names the directory under the platform config root.
	AppID    string `mapstructure:"app_id" yaml:"app_id"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// Output is json or yaml.
	Output string `mapstructure:"output" yaml:"output"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		ConfigDir: "",
		AppID:     DefaultAppID,
		LogLevel:  "info",
		Output:    "json",
	}
}

// flag name -> config key
var flagKeys = map[string]string{
	"config-dir": "config_dir",
	"app-id":     "app_id",
	"log-level":  "log_level",
	"output":     "output",
}

// BindFlags registers the host flags on cmd.
func BindFlags(cmd *cobra.Command) {
	defaults := DefaultConfig()

	cmd.PersistentFlags().String("config-dir", defaults.ConfigDir, "Directory holding settings.json, input_field.json and selection.json")
	cmd.PersistentFlags().String("app-id", defaults.AppID, "Application id used to locate the per-user config directory")
	cmd.PersistentFlags().String("log-level", defaults.LogLevel, "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringP("output", "o", defaults.Output, "Output format (json, yaml)")
}

// SetViperDefaults sets default values in viper configuration
func SetViperDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("config_dir", defaults.ConfigDir)
	v.SetDefault("app_id", defaults.AppID)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("output", defaults.Output)
}

// SetViperEnvSettings configures viper environment variable settings
func SetViperEnvSettings(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}
