package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/hamidzr/shortcutai/core"
	"github.com/hamidzr/shortcutai/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// documentCmd builds the get/save pair for one stored document.
func documentCmd[T any](rt *runtime, use, short string, get func(*core.App) (T, error), save func(*core.App, T) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the stored document, or its defaults when none is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := get(rt.app)
			if err != nil {
				return exitError(err)
			}
			return rt.print(cmd, v)
		},
	})

	var file string
	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Replace the stored document with JSON read from --file or stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			var v T
			if err := json.Unmarshal(data, &v); err != nil {
				return model.NewExitError(model.ParseFailure, errors.Wrap(err, "invalid document"))
			}
			return exitError(save(rt.app, v))
		},
	}
	saveCmd.Flags().StringVarP(&file, "file", "f", "", "Read the document from this file ('-' for stdin)")
	cmd.AddCommand(saveCmd)

	return cmd
}

// readInput returns the contents of path, or of stdin when path is empty or
// "-". An interactive terminal on stdin is refused unless path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, model.NewExitError(model.IOFailure, errors.Wrapf(err, "read %s", path))
		}
		return data, nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && path == "" && term.IsTerminal(int(f.Fd())) {
		return nil, model.Usagef("no input: pass --file or pipe a JSON document on stdin")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, model.NewExitError(model.IOFailure, errors.Wrap(err, "read stdin"))
	}
	return data, nil
}

// print writes v to stdout in the configured output format.
func (rt *runtime) print(cmd *cobra.Command, v any) error {
	w := cmd.OutOrStdout()
	if rt.cfg.Output == "yaml" {
		if raw, ok := v.(json.RawMessage); ok {
			var decoded any
			if err := json.Unmarshal(raw, &decoded); err != nil {
				return err
			}
			v = decoded
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
