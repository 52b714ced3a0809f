package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/parsely/jsonish"
	"github.com/spf13/cobra"
)

func newJSONCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Parse a JSON document and pretty-print it",
		Long: `Parse a JSON document with the jsonish combinator grammar.

If a file is provided it is read in full; otherwise the document is
read from stdin. On success the decoded value is re-encoded with
indentation, which normalizes whitespace and key order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error

			if len(args) == 0 {
				data, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			value, err := jsonish.Parse(string(data))
			if err != nil {
				if printParseError(cmd.ErrOrStderr(), err) {
					cmd.SilenceUsage = true
					cmd.SilenceErrors = true
				}
				return err
			}

			out, err := json.MarshalIndent(value, "", "  ")
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	return cmd
}
