/*
Copyright 2025 Supabase, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/multigres/prototext/go/textformat"
)

// tokensOptions holds flag values for the tokens subcommand.
type tokensOptions struct {
	limit int
	keys  bool
}

// RegisterFlags registers the tokens flags on the given flag set.
func (o *tokensOptions) RegisterFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.limit, "limit", 0, "stop after this many tokens (0 means no limit)")
	fs.BoolVar(&o.keys, "keys", false, "scan the first token in key mode (field-name position)")
}

// GetRootCommand creates and returns the root command for prototext with all
// subcommands. Files are read through the given filesystem so tests can run
// against an in-memory one.
func GetRootCommand(fs afero.Fs) *cobra.Command {
	root := &cobra.Command{
		Use:   "prototext",
		Short: "Inspect protobuf text-format input at the lexical level",
		Long: `prototext dumps and checks the token stream of protobuf text-format input.

It operates purely at the lexical level: tokens are printed with their raw
matched text, with no numeric conversion and no escape processing.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true
		},
	}

	addTokensCommand(root, fs)
	addCheckCommand(root, fs)

	return root
}

// addTokensCommand wires the "tokens" subcommand, which prints one token per
// line as TYPE<TAB>text.
func addTokensCommand(root *cobra.Command, fs afero.Fs) {
	opts := &tokensOptions{}
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a text-format input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(fs, cmd, args)
			if err != nil {
				return err
			}
			sc := textformat.NewScanner(input)
			out := cmd.OutOrStdout()
			for n := 0; opts.limit == 0 || n < opts.limit; n++ {
				var tok textformat.Token
				var err error
				if opts.keys && n == 0 {
					tok, err = sc.NextKey()
				} else {
					tok, err = sc.Next()
				}
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\n", tok.Type, tok.Text)
			}
			return nil
		},
	}
	opts.RegisterFlags(cmd.Flags())
	root.AddCommand(cmd)
}

// addCheckCommand wires the "check" subcommand, which scans the whole input
// and reports the first syntax error.
func addCheckCommand(root *cobra.Command, fs afero.Fs) {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Scan a text-format input and report the first syntax error",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(fs, cmd, args)
			if err != nil {
				return err
			}
			sc := textformat.NewScanner(input)
			count := 0
			for {
				_, err := sc.Next()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return err
				}
				count++
			}
			if !sc.Complete() {
				return fmt.Errorf("trailing input after last token")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d tokens\n", count)
			return nil
		},
	}
	root.AddCommand(cmd)
}

// readInput loads the input text from the named file, or from stdin when no
// argument (or "-") is given.
func readInput(fs afero.Fs, cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := afero.ReadFile(fs, args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}
