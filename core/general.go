package core

import (
	"strings"
	"unicode/utf8"

	"github.com/hamidzr/shortcutai/model"
	"github.com/pkg/errors"
)

// APIKeyPrefix starts every OpenAI key.
const APIKeyPrefix = "sk-"

var (
	ErrInvalidAPIKey = errors.Errorf("invalid API key format: OpenAI keys start with %q", APIKeyPrefix)
	ErrInvalidHotkey = errors.New("invalid hotkey")
)

// NormalizeAPIKey trims key. An empty key clears it; anything else must
// carry APIKeyPrefix.
func NormalizeAPIKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key != "" && !strings.HasPrefix(key, APIKeyPrefix) {
		return "", ErrInvalidAPIKey
	}
	return key, nil
}

// hotkey modifiers in the order they are written
var hotkeyModifiers = []string{"Ctrl", "Alt", "Shift", "Meta"}

var modifierNames = map[string]string{
	"ctrl":    "Ctrl",
	"control": "Ctrl",
	"alt":     "Alt",
	"option":  "Alt",
	"shift":   "Shift",
	"meta":    "Meta",
	"cmd":     "Meta",
	"command": "Meta",
	"super":   "Meta",
}

// NormalizeHotkey rewrites a combination such as "shift+ctrl+k" into the
// stored form "Ctrl+Shift+K": modifiers first in a fixed order, then exactly
// one key. Single characters are upper-cased and "space" becomes "Space".
// An empty combination clears the hotkey.
func NormalizeHotkey(combo string) (string, error) {
	combo = strings.TrimSpace(combo)
	if combo == "" {
		return "", nil
	}

	seen := make(map[string]bool, len(hotkeyModifiers))
	var key string
	for _, part := range strings.Split(combo, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			return "", errors.Wrapf(ErrInvalidHotkey, "%q has an empty key", combo)
		}
		if mod, ok := modifierNames[strings.ToLower(part)]; ok {
			seen[mod] = true
			continue
		}
		if key != "" {
			return "", errors.Wrapf(ErrInvalidHotkey, "%q has more than one key", combo)
		}
		key = part
	}
	if key == "" {
		return "", errors.Wrapf(ErrInvalidHotkey, "%q has only modifiers", combo)
	}

	switch {
	case strings.EqualFold(key, "space"):
		key = "Space"
	case utf8.RuneCountInString(key) == 1:
		key = strings.ToUpper(key)
	}

	parts := make([]string, 0, len(hotkeyModifiers)+1)
	for _, mod := range hotkeyModifiers {
		if seen[mod] {
			parts = append(parts, mod)
		}
	}
	return strings.Join(append(parts, key), "+"), nil
}

// SetAPIKey stores key after NormalizeAPIKey. Nothing is written when the
// key is rejected.
func (a *App) SetAPIKey(key string) (model.SettingsConfig, error) {
	key, err := NormalizeAPIKey(key)
	if err != nil {
		return model.SettingsConfig{}, err
	}
	cfg, err := a.GetConfig()
	if err != nil {
		return cfg, err
	}
	cfg.APIKey = key
	return cfg, a.SaveConfig(cfg)
}

func (a *App) SetAutoStart(on bool) (model.SettingsConfig, error) {
	cfg, err := a.GetConfig()
	if err != nil {
		return cfg, err
	}
	cfg.AutoStart = on
	return cfg, a.SaveConfig(cfg)
}

// SetHotkey stores the input field hotkey after NormalizeHotkey.
func (a *App) SetHotkey(combo string) (model.InputFieldConfig, error) {
	hotkey, err := NormalizeHotkey(combo)
	if err != nil {
		return model.InputFieldConfig{}, err
	}
	cfg, err := a.GetInputFieldConfig()
	if err != nil {
		return cfg, err
	}
	cfg.General.Hotkey = hotkey
	return cfg, a.SaveInputFieldConfig(cfg)
}

func (a *App) SetSelectionEnabled(on bool) (model.SelectionConfig, error) {
	cfg, err := a.GetSelectionConfig()
	if err != nil {
		return cfg, err
	}
	cfg.General.Enabled = on
	return cfg, a.SaveSelectionConfig(cfg)
}
