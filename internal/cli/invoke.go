package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func invokeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "invoke <command> [json-args|-]",
		Short: "Run a bridge command the way the UI does and print its JSON result",
		Long: `Run a bridge command the way the UI does. Arguments are a JSON object,
for example '{"name": "World"}' for greet or '{"config": {...}}' for the save
commands. Pass '-' to read the arguments from stdin.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw json.RawMessage
			if len(args) == 2 {
				if args[1] == "-" {
					data, err := readInput(cmd, "-")
					if err != nil {
						return err
					}
					raw = data
				} else {
					raw = json.RawMessage(args[1])
				}
			}
			out, err := rt.registry.Invoke(args[0], raw)
			if err != nil {
				return exitError(err)
			}
			return rt.print(cmd, out)
		},
	}
}
