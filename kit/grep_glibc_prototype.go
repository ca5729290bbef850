package kit

import (
	"fmt"
	"regexp"

	"github.com/mansrc/mankit/core/config"
	"github.com/mansrc/mankit/core/host"
	"github.com/mansrc/mankit/core/mgrep"
)

// GrepGlibcPrototype finds a function's prototype in the glibc headers,
// printed with file and line.
func GrepGlibcPrototype(h host.Host) int {
	cmd := &SimpleCommand{
		Use:     "grep_glibc_prototype <func>",
		Short:   "Find a function's prototype in the glibc headers.",
		MinArgs: 1,
		MaxArgs: 1,
	}

	return cmd.RunE(h, func(args []string) error {
		root := config.ForHost(h).GlibcDir
		if root == "" {
			wd, err := h.Getwd()
			if err != nil {
				return err
			}
			root = wd
		}

		// Prototypes in glibc end in attribute macros like __THROW, so
		// allow trailing words and parens before the semicolon.
		m, err := mgrep.New(fmt.Sprintf(
			`(?ms)^[\w ]+ \**%s ?\([\w\s(,)\[\]*]*?\)[\w ()]*; *$`,
			regexp.QuoteMeta(args[0])))
		if err != nil {
			return err
		}

		matches, err := m.SearchTree(h.FS(), root, isHeaderFile)
		if err != nil {
			return err
		}
		return mgrep.WriteMn(h.Stdout(), matches)
	})
}

var _ host.ProcessFunc = GrepGlibcPrototype

func init() {
	mustAddFunc(Func{
		Name:  "grep_glibc_prototype",
		Use:   "grep_glibc_prototype <func>",
		Short: "Find a function's prototype in the glibc headers.",
		Proc:  GrepGlibcPrototype,
	})
}
