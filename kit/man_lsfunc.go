package kit

import (
	"bytes"
	"fmt"

	"github.com/mansrc/mankit/core/config"
	"github.com/mansrc/mankit/core/host"
	"github.com/mansrc/mankit/core/synopsis"
	"github.com/mansrc/mankit/core/troff"
)

// ManLsfunc lists the functions declared in the SYNOPSIS of the given
// man pages, one name per line.
func ManLsfunc(h host.Host) int {
	cmd := &SimpleCommand{
		Use:     "man_lsfunc <page|dir>...",
		Short:   "List the functions declared in man page SYNOPSIS sections.",
		MinArgs: 1,
	}

	return cmd.RunE(h, func(args []string) error {
		text, err := renderedSynopsis(h, args)
		if err != nil {
			return err
		}

		for _, name := range synopsis.Functions(text) {
			fmt.Fprintln(h.Stdout(), name)
		}
		return nil
	})
}

// renderedSynopsis concatenates the rendered SYNOPSIS sections of every
// argument and strips C comments from the result.
func renderedSynopsis(h host.Host, args []string) (string, error) {
	cfg := config.ForHost(h)
	argv, err := cfg.RendererArgv()
	if err != nil {
		return "", err
	}
	r := &troff.ExecRenderer{Host: h, Argv: argv}

	var buf bytes.Buffer
	for _, arg := range args {
		if err := troff.ExtractRendered(h.FS(), r, arg, []string{"SYNOPSIS"}, &buf); err != nil {
			return "", err
		}
	}

	return synopsis.StripComments(buf.String()), nil
}

var _ host.ProcessFunc = ManLsfunc

func init() {
	mustAddFunc(Func{
		Name:  "man_lsfunc",
		Use:   "man_lsfunc <page|dir>...",
		Short: "List the functions declared in man page SYNOPSIS sections.",
		Proc:  ManLsfunc,
	})
}
