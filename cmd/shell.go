package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/abiosoft/readline"
	shlex "github.com/anmitsu/go-shlex"
	"github.com/spf13/cobra"

	"github.com/mansrc/mankit/core/host"
	"github.com/mansrc/mankit/kit"
)

// shellCmd runs the kit functions interactively, so a browsing session
// doesn't pay process startup per call.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session with the mankit functions as builtins.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		rl, err := readline.NewEx(&readline.Config{
			Prompt: "mankit> ",
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		for {
			line, err := rl.Readline()
			switch {
			case err == io.EOF:
				return nil // Input closed, quit.

			case err == readline.ErrInterrupt:
				continue

			case err != nil:
				log.Printf("readline: %v", err)
				continue

			case len(line) == 0:
				continue
			}

			tokens, err := shlex.Split(line, true)
			if err != nil {
				fmt.Fprintln(rl, "mankit: syntax error: unexpected end of line")
				continue
			}
			if len(tokens) == 0 {
				continue
			}

			switch tokens[0] {
			case "exit", "quit":
				return nil
			case "help":
				for _, f := range kit.All() {
					fmt.Fprintf(rl, "%-24s%s\n", f.Name, f.Short)
				}
				continue
			}

			f, ok := kit.Lookup(tokens[0])
			if !ok {
				fmt.Fprintf(rl, "mankit: %s: function not found\n", tokens[0])
				continue
			}

			f.Proc(host.NewLocal(tokens))
		}
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
