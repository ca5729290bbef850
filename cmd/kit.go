package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mansrc/mankit/core/host"
	"github.com/mansrc/mankit/kit"
)

// Each kit function is exposed as a subcommand. Flag parsing is left to
// the function itself so its getopt surface matches the shell and test
// surfaces exactly.
func init() {
	for _, f := range kit.All() {
		f := f
		rootCmd.AddCommand(&cobra.Command{
			Use:                f.Use,
			Short:              f.Short,
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				cmd.SilenceUsage = true

				status := f.Proc(host.NewLocal(append([]string{f.Name}, args...)))
				if status != 0 {
					os.Exit(status)
				}
				return nil
			},
		})
	}
}
