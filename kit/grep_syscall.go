package kit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mansrc/mankit/core/config"
	"github.com/mansrc/mankit/core/host"
	"github.com/mansrc/mankit/core/mgrep"
)

func isSourceFile(path string) bool {
	return strings.HasSuffix(path, ".c") ||
		strings.HasSuffix(path, ".h") ||
		strings.HasSuffix(path, ".S")
}

func isHeaderFile(path string) bool {
	return strings.HasSuffix(path, ".h")
}

// kernelRoot picks the tree grep_syscall and grep_syscall_def search.
func kernelRoot(h host.Host) (string, error) {
	if dir := config.ForHost(h).KernelDir; dir != "" {
		return dir, nil
	}
	return h.Getwd()
}

// GrepSyscall reports where a system call is declared in a kernel tree:
// its SYSCALL_DEFINE site and its sys_ prototype mentions.
func GrepSyscall(h host.Host) int {
	cmd := &SimpleCommand{
		Use:     "grep_syscall <name>",
		Short:   "Find a system call's definition site and sys_ prototypes in a kernel tree.",
		MinArgs: 1,
		MaxArgs: 1,
	}

	var cp ColorPrinter
	cp.Init(cmd.Flags(), h)

	return cmd.RunE(h, func(args []string) error {
		name := args[0]
		root, err := kernelRoot(h)
		if err != nil {
			return err
		}

		patterns := []string{
			fmt.Sprintf(`(?m)^SYSCALL_DEFINE\d\(%s\b.*$`, regexp.QuoteMeta(name)),
			fmt.Sprintf(`(?m)^.*\bsys_%s\s*\(.*$`, regexp.QuoteMeta(name)),
		}

		for _, pattern := range patterns {
			m, err := mgrep.New(pattern)
			if err != nil {
				return err
			}
			matches, err := m.SearchTree(h.FS(), root, isSourceFile)
			if err != nil {
				return err
			}
			for _, match := range matches {
				text := match.Text
				if cp.ShouldColor() {
					text = strings.ReplaceAll(text, name, ColorBoldRed.Sprint(name))
				}
				fmt.Fprintf(h.Stdout(), "%s:%d:%s\n", match.Path, match.Line, text)
			}
		}
		return nil
	})
}

// GrepSyscallDef prints the full SYSCALL_DEFINE body of a system call.
func GrepSyscallDef(h host.Host) int {
	cmd := &SimpleCommand{
		Use:     "grep_syscall_def <name>",
		Short:   "Print a system call's full SYSCALL_DEFINE body from a kernel tree.",
		MinArgs: 1,
		MaxArgs: 1,
	}

	return cmd.RunE(h, func(args []string) error {
		root, err := kernelRoot(h)
		if err != nil {
			return err
		}

		m, err := mgrep.New(fmt.Sprintf(
			`(?ms)^SYSCALL_DEFINE\d\(%s\b.*?^\}`, regexp.QuoteMeta(args[0])))
		if err != nil {
			return err
		}
		matches, err := m.SearchTree(h.FS(), root, isSourceFile)
		if err != nil {
			return err
		}
		return mgrep.WriteMn(h.Stdout(), matches)
	})
}

var (
	_ host.ProcessFunc = GrepSyscall
	_ host.ProcessFunc = GrepSyscallDef
)

func init() {
	mustAddFunc(Func{
		Name:  "grep_syscall",
		Use:   "grep_syscall <name>",
		Short: "Find a system call's definition site and sys_ prototypes in a kernel tree.",
		Proc:  GrepSyscall,
	})
	mustAddFunc(Func{
		Name:  "grep_syscall_def",
		Use:   "grep_syscall_def <name>",
		Short: "Print a system call's full SYSCALL_DEFINE body from a kernel tree.",
		Proc:  GrepSyscallDef,
	})
}
