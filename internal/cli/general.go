package cli

import (
	"strconv"
	"strings"

	"github.com/hamidzr/shortcutai/core"
	"github.com/hamidzr/shortcutai/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// parseSwitch accepts on/off besides the strconv.ParseBool spellings.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	on, err := strconv.ParseBool(s)
	if err != nil {
		return false, model.Usagef("invalid switch %q (want on or off)", s)
	}
	return on, nil
}

func settingsEditCmds(rt *runtime) []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "set-api-key <key>",
			Short: `Store the OpenAI API key (trimmed, must start with "sk-"; empty clears it)`,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := rt.app.SetAPIKey(args[0])
				if err != nil {
					return editError(err)
				}
				return rt.print(cmd, cfg)
			},
		},
		{
			Use:   "auto-start <on|off>",
			Short: "Open the app on login or not",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				on, err := parseSwitch(args[0])
				if err != nil {
					return err
				}
				cfg, err := rt.app.SetAutoStart(on)
				if err != nil {
					return exitError(err)
				}
				return rt.print(cmd, cfg)
			},
		},
	}
}

func hotkeyCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "hotkey <combo>",
		Short: `Set the global hotkey, e.g. "ctrl+shift+k" (empty clears it)`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rt.app.SetHotkey(args[0])
			if err != nil {
				return editError(err)
			}
			return rt.print(cmd, cfg)
		},
	}
}

func selectionSwitchCmds(rt *runtime) []*cobra.Command {
	switchCmd := func(use, short string, on bool) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := rt.app.SetSelectionEnabled(on)
				if err != nil {
					return exitError(err)
				}
				return rt.print(cmd, cfg)
			},
		}
	}
	return []*cobra.Command{
		switchCmd("enable", "Turn the selection feature on", true),
		switchCmd("disable", "Turn the selection feature off", false),
	}
}

// editError reports rejected input as a usage error and store failures by
// their kind.
func editError(err error) error {
	if errors.Is(err, core.ErrInvalidAPIKey) || errors.Is(err, core.ErrInvalidHotkey) {
		return model.NewExitError(model.UsageError, err)
	}
	return exitError(err)
}
