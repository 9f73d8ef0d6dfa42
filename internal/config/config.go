package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hamidzr/shortcutai/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const configFileName = ProjectName + ".yaml"

// getConfigPaths returns the directories searched for shortcutai.yaml in
// priority order. ~/.config is preferred over the macOS application support
// dir.
func getConfigPaths() []string {
	var paths []string
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", ProjectName))
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, ProjectName))
	}
	paths = append(paths, ".")
	return paths
}

// getPreferredConfigDir returns the directory InitConfigFile writes to.
func getPreferredConfigDir() (string, error) {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", ProjectName), nil
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(userConfigDir, ProjectName), nil
	}
	return "", fmt.Errorf("unable to determine config directory")
}

// InitConfig resolves the host config with this priority:
// 1. CLI flags (highest priority)
// 2. Environment variables (SHORTCUTAI_*)
// 3. Config file
// 4. Defaults
func InitConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	v.SetConfigName(ProjectName)
	v.SetConfigType("yaml")
	for _, path := range getConfigPaths() {
		v.AddConfigPath(path)
	}

	SetViperEnvSettings(v)
	SetViperDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// no config file, defaults + env vars + flags
	} else {
		if err := validateConfigFileKeys(v.ConfigFileUsed()); err != nil {
			return nil, err
		}
		logrus.WithField("path", v.ConfigFileUsed()).Debug("using config file")
	}
	// RegisterAlias only moves values already read, so it runs after
	// ReadInConfig.
	registerConfigKeyAliases(v)

	for flagName, key := range flagKeys {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			// not merged into Flags() until cobra parses the command line
			flag = cmd.PersistentFlags().Lookup(flagName)
		}
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("error binding flag %s: %w", flagName, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the values that have a closed set of options.
func (c *Config) Validate() error {
	switch c.Output {
	case "json", "yaml":
	default:
		return fmt.Errorf("invalid output format %q (want json or yaml)", c.Output)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.ConfigDir == "" && c.AppID == "" {
		return fmt.Errorf("app_id is required when config_dir is not set")
	}
	return nil
}

// DirProvider returns where the app documents are stored.
func (c *Config) DirProvider() store.DirProvider {
	if c.ConfigDir != "" {
		return store.StaticDir(c.ConfigDir)
	}
	return store.UserConfigDir(c.AppID)
}

// InitConfigFile writes a default shortcutai.yaml and returns its path. An
// existing file is never overwritten.
func InitConfigFile() (string, error) {
	configDir, err := getPreferredConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}

	configPath := filepath.Join(configDir, configFileName)
	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists at %s", configPath)
	}

	yamlData, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	header := `# shortcutai host configuration
# Generated automatically - customize as needed
#
# config_dir: leave empty to use the platform config directory for app_id
# output: json or yaml
#

`
	if err := os.WriteFile(configPath, []byte(header+string(yamlData)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}
	return configPath, nil
}
