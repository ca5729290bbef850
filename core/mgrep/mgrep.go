// Package mgrep is a multiline pattern matcher with line-number-prefixed
// output, the moral equivalent of `pcregrep -Mn`. Patterns are Go
// regular expressions; callers opt in to multiline and
// dot-matches-newline behavior with the usual (?ms) flags.
package mgrep

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Match is one (possibly multiline) pattern hit.
type Match struct {
	// Path of the file the match came from, empty for string input.
	Path string
	// Line is the 1-based line number of the first matched line.
	Line int
	// Text is the full matched text. It may span several lines and
	// never includes a trailing newline unless the pattern captured one.
	Text string
}

// Lines splits the matched text into its lines.
func (m Match) Lines() []string {
	return strings.Split(strings.TrimSuffix(m.Text, "\n"), "\n")
}

// NumberedLines renders the match the way pcregrep -Mn does: the first
// line carries the line number prefix, continuation lines are raw.
func (m Match) NumberedLines() []string {
	lines := m.Lines()
	out := make([]string, 0, len(lines))
	for i, l := range lines {
		if i == 0 {
			out = append(out, fmt.Sprintf("%d:%s", m.Line, l))
		} else {
			out = append(out, l)
		}
	}
	return out
}

// Matcher wraps a compiled pattern.
type Matcher struct {
	re *regexp.Regexp
}

func New(pattern string) (*Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Matcher{re: re}, nil
}

// MustNew is New for patterns known at compile time.
func MustNew(pattern string) *Matcher {
	return &Matcher{re: regexp.MustCompile(pattern)}
}

// SearchString finds all matches in text with their line numbers.
func (m *Matcher) SearchString(text string) []Match {
	var out []Match
	for _, loc := range m.re.FindAllStringIndex(text, -1) {
		out = append(out, Match{
			Line: 1 + strings.Count(text[:loc[0]], "\n"),
			Text: text[loc[0]:loc[1]],
		})
	}
	return out
}

// SearchFile finds all matches in one file.
func (m *Matcher) SearchFile(fsys afero.Fs, path string) ([]Match, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	matches := m.SearchString(string(data))
	for i := range matches {
		matches[i].Path = path
	}
	return matches, nil
}

// SearchTree finds all matches under root, visiting regular files in
// lexicographic path order. The accept callback filters candidate paths;
// nil accepts everything. Unreadable files are skipped silently, the way
// a recursive grep keeps going.
func (m *Matcher) SearchTree(fsys afero.Fs, root string, accept func(path string) bool) ([]Match, error) {
	var paths []string
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil || !info.Mode().IsRegular() {
			return nil
		}
		if accept == nil || accept(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var out []Match
	for _, p := range paths {
		matches, err := m.SearchFile(fsys, p)
		if err != nil {
			continue
		}
		out = append(out, matches...)
	}
	return out, nil
}

// WriteMn writes matches in pcregrep -Mn form. When a match has a path
// it prefixes the first line, giving the familiar path:line:text shape.
func WriteMn(w io.Writer, matches []Match) error {
	for _, m := range matches {
		for i, l := range m.NumberedLines() {
			if i == 0 && m.Path != "" {
				if _, err := fmt.Fprintf(w, "%s:%s\n", m.Path, l); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintln(w, l); err != nil {
				return err
			}
		}
	}
	return nil
}
