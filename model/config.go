package model

import "encoding/json"

// Persisted document names under the per-user config directory.
const (
	SettingsFile   = "settings.json"
	InputFieldFile = "input_field.json"
	SelectionFile  = "selection.json"
)

// SettingsConfig holds the application wide settings.
type SettingsConfig struct {
	AutoStart bool   `json:"autoStart" yaml:"autoStart"`
	APIKey    string `json:"apiKey" yaml:"apiKey"`
}

// DefaultSettingsConfig returns the settings used on first run.
func DefaultSettingsConfig() SettingsConfig {
	return SettingsConfig{
		AutoStart: false,
		APIKey:    "",
	}
}

// SetDefaults resets s to DefaultSettingsConfig.
func (s *SettingsConfig) SetDefaults() {
	*s = DefaultSettingsConfig()
}

// UnmarshalJSON decodes over DefaultSettingsConfig so absent keys keep
// their defaults.
func (s *SettingsConfig) UnmarshalJSON(data []byte) error {
	type plain SettingsConfig
	p := plain(DefaultSettingsConfig())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = SettingsConfig(p)
	return nil
}

// Profile is a named prompt. Profiles are embedded in the input field and
// selection configs; ids are not checked for uniqueness here.
type Profile struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Prompt string `json:"prompt" yaml:"prompt"`
}

// InputFieldGeneral is the general section of InputFieldConfig.
type InputFieldGeneral struct {
	Hotkey string `json:"hotkey" yaml:"hotkey"`
}

// InputFieldConfig is the persisted config of the input field feature.
type InputFieldConfig struct {
	Profiles []Profile         `json:"profiles" yaml:"profiles"`
	General  InputFieldGeneral `json:"general" yaml:"general"`
}

// DefaultInputFieldConfig returns the input field config used on first run.
func DefaultInputFieldConfig() InputFieldConfig {
	return InputFieldConfig{
		Profiles: []Profile{},
		General:  InputFieldGeneral{},
	}
}

// SetDefaults resets c to DefaultInputFieldConfig.
func (c *InputFieldConfig) SetDefaults() {
	*c = DefaultInputFieldConfig()
}

// MarshalJSON encodes nil profiles as an empty list.
func (c InputFieldConfig) MarshalJSON() ([]byte, error) {
	type plain InputFieldConfig
	p := plain(c)
	if p.Profiles == nil {
		p.Profiles = []Profile{}
	}
	return json.Marshal(p)
}

// UnmarshalJSON decodes over DefaultInputFieldConfig. A null or absent
// profiles list becomes empty.
func (c *InputFieldConfig) UnmarshalJSON(data []byte) error {
	type plain InputFieldConfig
	p := plain(DefaultInputFieldConfig())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Profiles == nil {
		p.Profiles = []Profile{}
	}
	*c = InputFieldConfig(p)
	return nil
}

// SelectionGeneral is the general section of SelectionConfig.
// Enabled defaults to true, not to its zero value.
type SelectionGeneral struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// DefaultSelectionGeneral returns the general section with the feature on.
func DefaultSelectionGeneral() SelectionGeneral {
	return SelectionGeneral{Enabled: true}
}

// UnmarshalJSON keeps Enabled true unless the document sets it.
func (g *SelectionGeneral) UnmarshalJSON(data []byte) error {
	type plain SelectionGeneral
	p := plain(DefaultSelectionGeneral())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*g = SelectionGeneral(p)
	return nil
}

// SelectionConfig is the persisted config of the selection feature.
type SelectionConfig struct {
	Profiles []Profile        `json:"profiles" yaml:"profiles"`
	General  SelectionGeneral `json:"general" yaml:"general"`
}

// DefaultSelectionConfig returns the selection config used on first run.
func DefaultSelectionConfig() SelectionConfig {
	return SelectionConfig{
		Profiles: []Profile{},
		General:  DefaultSelectionGeneral(),
	}
}

// SetDefaults resets c to DefaultSelectionConfig.
func (c *SelectionConfig) SetDefaults() {
	*c = DefaultSelectionConfig()
}

// MarshalJSON encodes nil profiles as an empty list.
func (c SelectionConfig) MarshalJSON() ([]byte, error) {
	type plain SelectionConfig
	p := plain(c)
	if p.Profiles == nil {
		p.Profiles = []Profile{}
	}
	return json.Marshal(p)
}

// UnmarshalJSON decodes over DefaultSelectionConfig. A null or absent
// profiles list becomes empty.
func (c *SelectionConfig) UnmarshalJSON(data []byte) error {
	type plain SelectionConfig
	p := plain(DefaultSelectionConfig())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Profiles == nil {
		p.Profiles = []Profile{}
	}
	*c = SelectionConfig(p)
	return nil
}
