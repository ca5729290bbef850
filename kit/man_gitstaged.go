package kit

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mansrc/mankit/core/config"
	"github.com/mansrc/mankit/core/host"
)

// ManGitStaged lists the files staged in the man-pages tree,
// comma-separated, for pasting into a commit message.
func ManGitStaged(h host.Host) int {
	cmd := &SimpleCommand{
		Use:   "man_gitstaged",
		Short: "List the staged man-pages files, comma-separated.",
	}

	return cmd.RunE(h, func(args []string) error {
		cfg := config.ForHost(h)

		var out bytes.Buffer
		err := h.Exec(&host.Cmd{
			Path:   "git",
			Args:   []string{"diff", "--staged", "--name-only"},
			Dir:    cfg.ManDir,
			Stdout: &out,
			Stderr: h.Stderr(),
		})
		if err != nil {
			return err
		}

		var files []string
		for _, line := range strings.Split(out.String(), "\n") {
			if line != "" {
				files = append(files, line)
			}
		}
		if len(files) > 0 {
			fmt.Fprintln(h.Stdout(), strings.Join(files, ", "))
		}
		return nil
	})
}

var _ host.ProcessFunc = ManGitStaged

func init() {
	mustAddFunc(Func{
		Name:  "man_gitstaged",
		Use:   "man_gitstaged",
		Short: "List the staged man-pages files, comma-separated.",
		Proc:  ManGitStaged,
	})
}
