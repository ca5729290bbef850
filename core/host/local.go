package host

import (
	"io"
	"os"
	"os/exec"

	"github.com/spf13/afero"
)

// Local is the Host backed by the real operating system.
type Local struct {
	argv []string
	io   *IOAdapter
	fs   afero.Fs
}

var _ Host = (*Local)(nil)

// NewLocal builds a Host for the current process with the given argv.
func NewLocal(argv []string) *Local {
	return &Local{
		argv: argv,
		io:   NewIOAdapter(os.Stdin, os.Stdout, os.Stderr),
		fs:   afero.NewOsFs(),
	}
}

func (l *Local) Args() []string { return l.argv }

func (l *Local) Stdin() io.ReadCloser   { return l.io.Stdin() }
func (l *Local) Stdout() io.WriteCloser { return l.io.Stdout() }
func (l *Local) Stderr() io.WriteCloser { return l.io.Stderr() }

func (l *Local) FS() afero.Fs { return l.fs }

func (l *Local) Getwd() (string, error)   { return os.Getwd() }
func (l *Local) Getenv(key string) string { return os.Getenv(key) }

func (l *Local) Exec(c *Cmd) error {
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	return cmd.Run()
}
