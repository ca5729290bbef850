// Package kit holds the mankit functions themselves. Each function is a
// callable unit with argv-style arguments and an exit status, invokable
// from the CLI, from the interactive shell, and from tests without ever
// becoming a separate process.
package kit

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	getopt "github.com/pborman/getopt/v2"

	"github.com/mansrc/mankit/core/host"
)

// ExUsage is EX_USAGE from sysexits.h: the command was used incorrectly.
const ExUsage = 64

// Func is one registered kit function.
type Func struct {
	// Name the function is invoked as, e.g. "man_lsfunc".
	Name string
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description.
	Short string

	Proc host.ProcessFunc
}

var allFuncs = make(map[string]Func)

func mustAddFunc(f Func) {
	if f.Proc == nil {
		panic(fmt.Sprintf("nil proc for function %q", f.Name))
	}
	if _, ok := allFuncs[f.Name]; ok {
		panic(fmt.Sprintf("duplicate function %q", f.Name))
	}
	allFuncs[f.Name] = f
}

// All returns the registered functions sorted by name.
func All() []Func {
	var out []Func
	for _, f := range allFuncs {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Lookup finds a registered function by name.
func Lookup(name string) (Func, bool) {
	f, ok := allFuncs[name]
	return f, ok
}

// SimpleCommand handles flag parsing, help, and the argument-count
// contract shared by every kit function.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string

	// MinArgs and MaxArgs bound the positional argument count after
	// flag parsing. MaxArgs of 0 means unbounded.
	MinArgs int
	MaxArgs int

	// ShowHelp sets whether help is displayed or not. If this is
	// non-nil when Run() is called, the default help flag isn't added.
	ShowHelp *bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}
	return s.flags
}

func (s *SimpleCommand) name() string {
	return strings.Fields(s.Use)[0]
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s\n", s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Usage reports the usage line on the error stream and returns the fixed
// usage status. Nothing is written to stdout.
func (s *SimpleCommand) Usage(h host.Host) int {
	fmt.Fprintf(h.Stderr(), "Usage: %s\n", s.Use)
	return ExUsage
}

// Run parses flags, enforces the argument-count contract, and calls the
// callback with the positional arguments.
func (s *SimpleCommand) Run(h host.Host, callback func(args []string) int) int {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	if err := opts.Getopt(h.Args(), nil); err != nil {
		fmt.Fprintf(h.Stderr(), "%s: %v\n", s.name(), err)
		return s.Usage(h)
	}

	if *s.ShowHelp {
		s.PrintHelp(h.Stdout())
		return 0
	}

	args := opts.Args()
	if len(args) < s.MinArgs || (s.MaxArgs > 0 && len(args) > s.MaxArgs) {
		return s.Usage(h)
	}

	return callback(args)
}

// RunE is Run for callbacks that fail with an error; the error lands on
// the error stream with exit status 1.
func (s *SimpleCommand) RunE(h host.Host, callback func(args []string) error) int {
	return s.Run(h, func(args []string) int {
		if err := callback(args); err != nil {
			fmt.Fprintf(h.Stderr(), "%s: %v\n", s.name(), err)
			return 1
		}
		return 0
	})
}

const (
	colorAlways = "always"
	colorAuto   = "auto"
	colorNever  = "never"
)

var ColorBoldRed = color.New(color.FgRed, color.Bold)

// ColorPrinter colorizes output according to a --color flag and whether
// stdout is a terminal.
type ColorPrinter struct {
	value *string
	h     host.Host
}

// Init sets up the flag and host used to determine the color output.
func (c *ColorPrinter) Init(flags *getopt.Set, h host.Host) {
	c.h = h
	c.value = flags.EnumLong(
		"color",
		rune(0), // No short flag.
		[]string{colorAlways, colorAuto, colorNever},
		colorAuto,
		"colorize the output (always|auto|never)")
}

func (c *ColorPrinter) ShouldColor() bool {
	switch *c.value {
	case colorNever:
		return false
	case colorAlways:
		return true
	}
	if f, ok := c.h.Stdout().(*os.File); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

func (c *ColorPrinter) Sprintf(col *color.Color, format string, a ...interface{}) string {
	if c.ShouldColor() {
		return col.Sprintf(format, a...)
	}
	return fmt.Sprintf(format, a...)
}
