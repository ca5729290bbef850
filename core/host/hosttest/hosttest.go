// Package hosttest runs kit functions against a deterministic in-memory
// host, in the style of exec.Cmd.
package hosttest

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/mansrc/mankit/core/host"
)

// FakeHost implements host.Host over an afero memory filesystem and
// scripted external commands.
type FakeHost struct {
	Argv []string
	IO   *host.IOAdapter
	Fs   afero.Fs
	Dir  string
	Env  map[string]string

	// ExecHandler services host.Exec calls. When nil every external
	// command fails, which is the right default for tests that should
	// never shell out.
	ExecHandler func(c *host.Cmd) error
}

var _ host.Host = (*FakeHost)(nil)

func (f *FakeHost) Args() []string          { return f.Argv }
func (f *FakeHost) Stdin() io.ReadCloser    { return f.IO.Stdin() }
func (f *FakeHost) Stdout() io.WriteCloser  { return f.IO.Stdout() }
func (f *FakeHost) Stderr() io.WriteCloser  { return f.IO.Stderr() }
func (f *FakeHost) FS() afero.Fs            { return f.Fs }
func (f *FakeHost) Getwd() (string, error)  { return f.Dir, nil }
func (f *FakeHost) Getenv(key string) string { return f.Env[key] }

func (f *FakeHost) Exec(c *host.Cmd) error {
	if f.ExecHandler == nil {
		return fmt.Errorf("exec %q: command not found", c.Path)
	}
	return f.ExecHandler(c)
}

// Cmd is similar to exec.Cmd for kit functions.
type Cmd struct {
	// Process function under test.
	Process host.ProcessFunc
	// Process arguments, the first argument should be the function name.
	Argv []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Env gives environment variables visible through Getenv.
	Env map[string]string

	// ExecHandler scripts external tool invocations, see FakeHost.
	ExecHandler func(c *host.Cmd) error

	// Setup runs against the host before the process starts, typically
	// to seed the filesystem.
	Setup func(h host.Host) error

	ExitStatus int

	// FS is the filesystem the process will see.
	FS afero.Fs
}

func Command(process host.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
		FS:      afero.NewMemMapFs(),
	}
}

// CombinedOutput runs the function and returns its combined stdout and
// stderr.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Output runs the function and returns its stdout alone.
func (c *Cmd) Output() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf

	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Run starts the function and waits for it to complete.
func (c *Cmd) Run() error {
	if c.FS == nil {
		c.FS = afero.NewMemMapFs()
	}

	h := &FakeHost{
		Argv:        c.Argv,
		IO:          host.NewIOAdapter(c.Stdin, c.Stdout, c.Stderr),
		Fs:          c.FS,
		Dir:         "/",
		Env:         c.Env,
		ExecHandler: c.ExecHandler,
	}

	if c.Setup != nil {
		if err := c.Setup(h); err != nil {
			return err
		}
	}

	c.ExitStatus = c.Process(h)
	return nil
}

// Passthrough is an ExecHandler that copies stdin to stdout, standing in
// for filters like the plain-text man renderer.
func Passthrough(c *host.Cmd) error {
	if c.Stdin == nil || c.Stdout == nil {
		return nil
	}
	_, err := io.Copy(c.Stdout, c.Stdin)
	return err
}
