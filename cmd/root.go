package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mansrc/mankit/core/config"
)

var cfgDir string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mankit",
	Short: "Spelunk man-pages, kernel, and glibc sources.",
	Long: `mankit is a toolkit of convenience functions for searching Linux
man-pages sources, kernel sources, and glibc sources, and for rendering
man pages to PDF.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "",
		"directory containing "+config.ConfigurationName)
	cobra.OnInitialize(func() {
		if cfgDir != "" {
			os.Setenv(config.EnvConfigDir, cfgDir)
		}
	})
}
