package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mansrc/mankit/kit"
)

// funcsCmd lists the registered kit functions.
var funcsCmd = &cobra.Command{
	Use:   "funcs",
	Short: "Show the functions mankit provides.",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, f := range kit.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s%s\n", f.Name, f.Short)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(funcsCmd)
}
