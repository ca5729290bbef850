package kit

import (
	"fmt"

	"github.com/mansrc/mankit/core/host"
	"github.com/mansrc/mankit/core/synopsis"
)

// ManLsvar lists the variables declared in the SYNOPSIS of the given
// man pages, one name per line.
func ManLsvar(h host.Host) int {
	cmd := &SimpleCommand{
		Use:     "man_lsvar <page|dir>...",
		Short:   "List the variables declared in man page SYNOPSIS sections.",
		MinArgs: 1,
	}

	return cmd.RunE(h, func(args []string) error {
		text, err := renderedSynopsis(h, args)
		if err != nil {
			return err
		}

		for _, name := range synopsis.Variables(text) {
			fmt.Fprintln(h.Stdout(), name)
		}
		return nil
	})
}

var _ host.ProcessFunc = ManLsvar

func init() {
	mustAddFunc(Func{
		Name:  "man_lsvar",
		Use:   "man_lsvar <page|dir>...",
		Short: "List the variables declared in man page SYNOPSIS sections.",
		Proc:  ManLsvar,
	})
}
