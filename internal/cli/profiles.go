package cli

import (
	"fmt"
	"strconv"

	"github.com/hamidzr/shortcutai/core"
	"github.com/hamidzr/shortcutai/model"
	"github.com/spf13/cobra"
)

// profileDocumentCmd is documentCmd plus a profile subcommand for documents
// that carry profiles.
func profileDocumentCmd[T any](rt *runtime, target core.ProfileTarget, short string, get func(*core.App) (T, error), save func(*core.App, T) error) *cobra.Command {
	cmd := documentCmd(rt, string(target), short, get, save)
	cmd.AddCommand(profileCmd(rt, target))
	return cmd
}

func profileCmd(rt *runtime, target core.ProfileTarget) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: fmt.Sprintf("Edit the %s profiles", target),
	}

	edit := func(fn func([]model.Profile) ([]model.Profile, error)) ([]model.Profile, error) {
		profiles, err := rt.app.EditProfiles(target, fn)
		return profiles, exitError(err)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List profiles",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				profiles, err := rt.app.Profiles(target)
				if err != nil {
					return exitError(err)
				}
				return rt.print(cmd, profiles)
			},
		},
		&cobra.Command{
			Use:   "add",
			Short: fmt.Sprintf("Add a profile (at most %d)", core.MaxProfiles),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				var added model.Profile
				_, err := edit(func(ps []model.Profile) ([]model.Profile, error) {
					out, p, err := core.AddProfile(ps)
					added = p
					return out, err
				})
				if err != nil {
					return err
				}
				return rt.print(cmd, added)
			},
		},
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Remove a profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := edit(func(ps []model.Profile) ([]model.Profile, error) {
					return core.RemoveProfile(ps, args[0])
				})
				return err
			},
		},
		&cobra.Command{
			Use:   "set <id> <name|prompt> <value>",
			Short: "Change the name or prompt of a profile",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := edit(func(ps []model.Profile) ([]model.Profile, error) {
					return core.UpdateProfile(ps, args[0], core.ProfileField(args[1]), args[2])
				})
				return err
			},
		},
		&cobra.Command{
			Use:   "find <query>",
			Short: "Fuzzy find profiles by name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				profiles, err := rt.app.Profiles(target)
				if err != nil {
					return exitError(err)
				}
				return rt.print(cmd, core.FindProfiles(profiles, args[0]))
			},
		},
		&cobra.Command{
			Use:   "pick <n>",
			Short: "Print the n-th profile, counting from 1",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return model.Usagef("invalid position %q", args[0])
				}
				profiles, err := rt.app.Profiles(target)
				if err != nil {
					return exitError(err)
				}
				p, err := core.ProfileAt(profiles, n)
				if err != nil {
					return err
				}
				return rt.print(cmd, p)
			},
		},
	)
	return cmd
}
