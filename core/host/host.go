// Package host is the seam between the kit functions and the ambient
// operating system. Everything a function touches -- argv, the standard
// streams, the filesystem, environment variables, and external tools --
// goes through the Host interface so the text pipelines can run
// unmodified against a real machine or an in-memory fake.
package host

import (
	"io"

	"github.com/spf13/afero"
)

// ProcessFunc is the entry point of a kit function. The first element
// of Args is the function name, mirroring a process's argv. The return
// value is the exit status.
type ProcessFunc func(h Host) int

// Cmd describes one invocation of an external tool, e.g. the man-page
// renderer or git. It deliberately carries only what the kit functions
// need; anything fancier belongs in the caller.
type Cmd struct {
	// Path is the program to run, resolved against the host's PATH.
	Path string
	// Args holds the program's arguments, not including the name.
	Args []string
	// Dir is the working directory, empty meaning the host's.
	Dir string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Host provides the ambient OS facilities to a kit function.
type Host interface {
	// Args returns the function's argv, name first.
	Args() []string

	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser

	// FS is the filesystem documents and sources are read from.
	FS() afero.Fs

	Getwd() (string, error)
	Getenv(key string) string

	// Exec runs an external tool to completion. A missing program or a
	// non-zero exit both surface as errors.
	Exec(cmd *Cmd) error
}
