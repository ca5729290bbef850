// Package troff slices man-page sources into their named sections.
//
// It understands just enough of the man macro package to find the title
// header (.TH) and section headings (.SH); everything between markers is
// opaque text that gets handed to an external renderer.
package troff

import (
	"os"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Document is one man-page source file, split into lines.
type Document struct {
	Path  string
	Lines []string
}

// ReadDocument loads a man-page source from the filesystem.
func ReadDocument(fsys afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return &Document{
		Path:  path,
		Lines: strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"),
	}, nil
}

// isRedirectStub reports whether the file's newline count is exactly 1.
// In the man-pages tree those are .so redirects to another page, not
// content, and they are excluded wherever pages are enumerated, even
// when one is named directly.
func isRedirectStub(fsys afero.Fs, path string) (bool, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return false, err
	}
	return strings.Count(string(data), "\n") == 1, nil
}

// Pages enumerates the man-page sources under root in lexicographic
// order. A root that is a regular file stands for itself. One-line
// redirect stubs never appear, directory walk or not.
func Pages(fsys afero.Fs, root string) ([]string, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, err
	}
	if info.Mode().IsRegular() {
		stub, err := isRedirectStub(fsys, root)
		if err != nil {
			return nil, err
		}
		if stub {
			return nil, nil
		}
		return []string{root}, nil
	}

	var pages []string
	err = afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil || !info.Mode().IsRegular() {
			return nil
		}
		if stub, err := isRedirectStub(fsys, path); err != nil || stub {
			return nil
		}
		pages = append(pages, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(pages)
	return pages, nil
}

// isSectionHeading reports whether the line is a .SH macro.
func isSectionHeading(line string) bool {
	return line == ".SH" || strings.HasPrefix(line, ".SH ")
}

// sectionName returns the heading's name with any quoting removed.
func sectionName(line string) string {
	return strings.Trim(strings.TrimPrefix(line, ".SH"), ` "`)
}

// Header returns the lines from the title marker (.TH) up to, but not
// including, the first section heading.
func (d *Document) Header() []string {
	var out []string
	inHeader := false
	for _, line := range d.Lines {
		switch {
		case !inHeader:
			if line == ".TH" || strings.HasPrefix(line, ".TH ") {
				inHeader = true
				out = append(out, line)
			}
		case isSectionHeading(line):
			return out
		default:
			out = append(out, line)
		}
	}
	return out
}

// Section returns the heading line for name plus every following line up
// to, but not including, the next section heading. The first matching
// heading wins; a missing section yields nil.
func (d *Document) Section(name string) []string {
	var out []string
	inSection := false
	for _, line := range d.Lines {
		if inSection {
			if isSectionHeading(line) {
				return out
			}
			out = append(out, line)
			continue
		}
		if isSectionHeading(line) && sectionName(line) == name {
			inSection = true
			out = append(out, line)
		}
	}
	return out
}

// Extract returns the document's header followed by the requested
// sections' content, in the order the names were given. Absent sections
// contribute nothing.
func (d *Document) Extract(sections []string) []string {
	out := d.Header()
	for _, name := range sections {
		out = append(out, d.Section(name)...)
	}
	return out
}
