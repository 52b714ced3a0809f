package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "parsely",
		Short: "Worked examples for the parsely combinator toolkit",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newColorCmd())
	rootCmd.AddCommand(newAdventCmd())
	rootCmd.AddCommand(newJSONCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
