package cli

import (
	"fmt"
	"strings"

	"github.com/hamidzr/shortcutai/core"
	"github.com/hamidzr/shortcutai/internal/config"
	"github.com/hamidzr/shortcutai/internal/logger"
	"github.com/hamidzr/shortcutai/model"
	"github.com/hamidzr/shortcutai/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runtime is filled in by the root command before any subcommand runs.
type runtime struct {
	cfg      *config.Config
	app      *core.App
	registry *core.Registry
}

func (rt *runtime) init(cmd *cobra.Command) error {
	cfg, err := config.InitConfig(cmd)
	if err != nil {
		return model.NewExitError(model.UsageError, fmt.Errorf("failed to initialize config: %w", err))
	}
	if err := logger.SetupLogger(cfg.LogLevel); err != nil {
		return model.NewExitError(model.UsageError, err)
	}
	rt.cfg = cfg
	rt.app = core.NewApp(store.NewFileStore(cfg.DirProvider()))
	rt.registry = core.NewRegistry(rt.app)
	logrus.WithField("command", cmd.CommandPath()).Trace("runtime ready")
	return nil
}

// InitCLI builds the shortcutai command tree.
func InitCLI() *cobra.Command {
	rt := &runtime{}

	RootCmd := &cobra.Command{
		Use:           config.ProjectName,
		Short:         "shortcutai stores the settings and profiles of the shortcutai desktop app",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return model.Usagef("unknown argument(s): %s", strings.Join(args, " "))
			}
			return cmd.Help()
		},
	}

	config.BindFlags(RootCmd)

	settingsCmd := documentCmd(rt, "settings", "Read or replace settings.json", (*core.App).GetConfig, (*core.App).SaveConfig)
	settingsCmd.AddCommand(settingsEditCmds(rt)...)
	inputFieldCmd := profileDocumentCmd(rt, core.InputFieldProfiles, "Read or replace input_field.json", (*core.App).GetInputFieldConfig, (*core.App).SaveInputFieldConfig)
	inputFieldCmd.AddCommand(hotkeyCmd(rt))
	selectionCmd := profileDocumentCmd(rt, core.SelectionProfiles, "Read or replace selection.json", (*core.App).GetSelectionConfig, (*core.App).SaveSelectionConfig)
	selectionCmd.AddCommand(selectionSwitchCmds(rt)...)

	RootCmd.AddCommand(
		greetCmd(rt),
		settingsCmd,
		inputFieldCmd,
		selectionCmd,
		invokeCmd(rt),
		commandsCmd(rt),
		exportCmd(rt),
		pathCmd(rt),
		initConfigCmd(),
	)

	return RootCmd
}

// exitError attaches the exit code matching a store failure.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case store.IsParseError(err):
		return model.NewExitError(model.ParseFailure, err)
	case store.IsIOError(err):
		return model.NewExitError(model.IOFailure, err)
	default:
		return err
	}
}

func greetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "greet <name>",
		Short: "Print the demo greeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), rt.app.Greet(args[0]))
			return err
		},
	}
}

func commandsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the commands accepted by invoke",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range rt.registry.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func exportCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print every stored document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := rt.app.Export()
			if err != nil {
				return exitError(err)
			}
			return rt.print(cmd, out)
		},
	}
}

func pathCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "path [file]",
		Short: "Print the config directory, or the path of a file in it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := rt.app.Store().Resolver()
			var (
				path string
				err  error
			)
			if len(args) == 1 {
				path, err = resolver.Resolve(args[0])
			} else {
				path, err = resolver.Directory()
			}
			if err != nil {
				return exitError(err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}

func initConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Write a default shortcutai.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := config.InitConfigFile()
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Config file created at: %s\n", configPath)
			return err
		},
	}
}
