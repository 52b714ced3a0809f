package main

import (
	"fmt"

	"github.com/dhamidi/parsely/hexcolor"
	"github.com/spf13/cobra"
)

func newColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color <value>",
		Short: "Parse a #RRGGBB color literal into its channels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := hexcolor.FromString(args[0])
			if err != nil {
				if printParseError(cmd.ErrOrStderr(), err) {
					cmd.SilenceUsage = true
					cmd.SilenceErrors = true
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "r=%d g=%d b=%d\n", c.R, c.G, c.B)
			return nil
		},
	}

	return cmd
}
