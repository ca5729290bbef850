package kit

import (
	"fmt"

	"github.com/mansrc/mankit/core/config"
	"github.com/mansrc/mankit/core/host"
	"github.com/mansrc/mankit/core/troff"
)

// ManSection prints the title header plus the named sections of every
// man page under a path, rendered to flat text in page order.
func ManSection(h host.Host) int {
	cmd := &SimpleCommand{
		Use:     "man_section <dir> <section>...",
		Short:   "Print the given sections of the man pages under a path.",
		MinArgs: 2,
	}

	return cmd.Run(h, func(args []string) int {
		cfg := config.ForHost(h)
		argv, err := cfg.RendererArgv()
		if err != nil {
			fmt.Fprintf(h.Stderr(), "man_section: %v\n", err)
			return 1
		}

		r := &troff.ExecRenderer{Host: h, Argv: argv}
		if err := troff.ExtractRendered(h.FS(), r, args[0], args[1:], h.Stdout()); err != nil {
			fmt.Fprintf(h.Stderr(), "man_section: %v\n", err)
			return 1
		}
		return 0
	})
}

var _ host.ProcessFunc = ManSection

func init() {
	mustAddFunc(Func{
		Name:  "man_section",
		Use:   "man_section <dir> <section>...",
		Short: "Print the given sections of the man pages under a path.",
		Proc:  ManSection,
	})
}
