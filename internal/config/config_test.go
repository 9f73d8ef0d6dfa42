package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hamidzr/shortcutai/store"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and XDG_CONFIG_HOME at a temp dir and returns the
// directory searched for shortcutai.yaml.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, ".config"))
	for _, env := range []string{"SHORTCUTAI_CONFIG_DIR", "SHORTCUTAI_APP_ID", "SHORTCUTAI_LOG_LEVEL", "SHORTCUTAI_OUTPUT"} {
		t.Setenv(env, "")
		require.NoError(t, os.Unsetenv(env))
	}
	return filepath.Join(tmpDir, ".config", ProjectName)
}

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644))
}

func newCmd() *cobra.Command {
	cmd := &cobra.Command{Use: ProjectName}
	BindFlags(cmd)
	return cmd
}

func TestConfigDefaults(t *testing.T) {
	defaults := DefaultConfig()

	assert.Equal(t, "", defaults.ConfigDir)
	assert.Equal(t, "com.shortcutai.app", defaults.AppID)
	assert.Equal(t, "info", defaults.LogLevel)
	assert.Equal(t, "json", defaults.Output)
}

func TestInitConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := InitConfig(newCmd())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestInitConfigFromFile(t *testing.T) {
	dir := isolate(t)
	writeConfigFile(t, dir, `
config_dir: /tmp/shortcutai-test
log_level: debug
output: yaml
`)

	cfg, err := InitConfig(newCmd())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/shortcutai-test", cfg.ConfigDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, DefaultAppID, cfg.AppID)
}

func TestInitConfigAcceptsCamelCase(t *testing.T) {
	dir := isolate(t)
	writeConfigFile(t, dir, `
configDir: /tmp/camel
appId: com.example.camel
logLevel: warn
`)

	cfg, err := InitConfig(newCmd())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/camel", cfg.ConfigDir)
	assert.Equal(t, "com.example.camel", cfg.AppID)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestInitConfigRejectsMixedNamingStyles(t *testing.T) {
	dir := isolate(t)
	writeConfigFile(t, dir, `
log_level: debug
logLevel: warn
`)

	cfg, err := InitConfig(newCmd())
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "log_level")
	assert.Contains(t, err.Error(), "logLevel")
}

func TestInitConfigRejectsUnknownKey(t *testing.T) {
	dir := isolate(t)
	writeConfigFile(t, dir, "theme: dark\n")

	_, err := InitConfig(newCmd())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid key "theme"`)
}

func TestInitConfigInvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeConfigFile(t, dir, "output: [json\n")

	_, err := InitConfig(newCmd())
	assert.Error(t, err)
}

func TestInitConfigPriority(t *testing.T) {
	dir := isolate(t)
	writeConfigFile(t, dir, "output: yaml\nlog_level: debug\nconfig_dir: /from/file\n")
	t.Setenv("SHORTCUTAI_LOG_LEVEL", "error")
	t.Setenv("SHORTCUTAI_CONFIG_DIR", "/from/env")

	cmd := newCmd()
	require.NoError(t, cmd.PersistentFlags().Set("config-dir", "/from/flag"))

	cfg, err := InitConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.ConfigDir, "flag beats env and file")
	assert.Equal(t, "error", cfg.LogLevel, "env beats file")
	assert.Equal(t, "yaml", cfg.Output, "file beats default")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "yaml output", mutate: func(c *Config) { c.Output = "yaml" }},
		{name: "bad output", mutate: func(c *Config) { c.Output = "toml" }, wantErr: "invalid output format"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "invalid log level"},
		{name: "no location", mutate: func(c *Config) { c.AppID = "" }, wantErr: "app_id is required"},
		{name: "dir without app id", mutate: func(c *Config) { c.AppID = ""; c.ConfigDir = "/x" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestDirProvider(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, store.UserConfigDir(DefaultAppID), cfg.DirProvider())

	cfg.ConfigDir = "/explicit"
	assert.Equal(t, store.StaticDir("/explicit"), cfg.DirProvider())
}

func TestInitConfigFile(t *testing.T) {
	dir := isolate(t)

	path, err := InitConfigFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, configFileName), path)
	assert.FileExists(t, path)
	require.NoError(t, validateConfigFileKeys(path))

	cfg, err := InitConfig(newCmd())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = InitConfigFile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitConfigCamelCaseKeyUnderFlag(t *testing.T) {
	dir := isolate(t)
	writeConfigFile(t, dir, "configDir: /from/file\noutput: yaml\n")

	cmd := newCmd()
	require.NoError(t, cmd.PersistentFlags().Set("config-dir", "/from/flag"))

	cfg, err := InitConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.ConfigDir)
	assert.Equal(t, "yaml", cfg.Output)

	cfg, err = InitConfig(newCmd())
	require.NoError(t, err)
	assert.Equal(t, "/from/file", cfg.ConfigDir)
}
