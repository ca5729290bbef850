package troff

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/mansrc/mankit/core/host"
)

// Renderer turns troff man-page source into flat text.
type Renderer interface {
	Render(src []byte) ([]byte, error)
}

// ExecRenderer renders by piping the source through an external
// formatter, typically `man --no-hyphenation -P cat -l -`.
type ExecRenderer struct {
	Host host.Host
	Argv []string
}

var errEmptyRenderer = errors.New("troff: empty renderer command")

func (r *ExecRenderer) Render(src []byte) ([]byte, error) {
	if len(r.Argv) == 0 {
		return nil, errEmptyRenderer
	}

	var out bytes.Buffer
	err := r.Host.Exec(&host.Cmd{
		Path:   r.Argv[0],
		Args:   r.Argv[1:],
		Stdin:  bytes.NewReader(src),
		Stdout: &out,
		Stderr: io.Discard,
	})
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// ExtractRendered walks the pages under root, extracts the header plus
// the requested sections from each, renders them, and writes the results
// to w in page order. A page that fails to render is skipped so a batch
// over many documents tolerates individually malformed ones.
func ExtractRendered(fsys afero.Fs, r Renderer, root string, sections []string, w io.Writer) error {
	pages, err := Pages(fsys, root)
	if err != nil {
		return err
	}

	for _, page := range pages {
		doc, err := ReadDocument(fsys, page)
		if err != nil {
			continue
		}

		lines := doc.Extract(sections)
		if len(lines) == 0 {
			continue
		}

		rendered, err := r.Render([]byte(strings.Join(lines, "\n") + "\n"))
		if err != nil {
			continue
		}
		if _, err := w.Write(rendered); err != nil {
			return err
		}
	}
	return nil
}
