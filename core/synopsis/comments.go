// Package synopsis pulls function and variable names out of rendered
// man-page SYNOPSIS text. The matching is regular-expression shaped, not
// a C parser: it recognizes declaration-looking lines and nothing more.
package synopsis

import (
	"regexp"
	"strings"
)

var (
	containedComment = regexp.MustCompile(`/\*.*\*/`)
	lineComment      = regexp.MustCompile(`//.*$`)
)

// StripComments removes C-style comments from text, best effort.
//
// Block comments contained on one line are cut out. A block comment
// spanning lines is removed whole-line from its opening marker's line
// through its closing marker's line, code sharing a marker line
// included. Line comments are cut to end of line.
//
// Two comments on one line, or a block and a line comment interacting on
// the same line, are not handled; such lines degrade to wrong-but-stable
// output rather than an error. Don't fix this here: the extractors
// depend on the same behavior the sed pipeline it replaces had.
func StripComments(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	inComment := false
	for _, line := range lines {
		line = containedComment.ReplaceAllString(line, "")

		hasOpen := strings.Contains(line, "/*")
		hasClose := strings.Contains(line, "*/")

		if inComment {
			switch {
			case hasClose:
				inComment = false
			case hasOpen:
				// A second opener while already inside a comment is one
				// of the documented blind spots; keep the line verbatim.
				out = append(out, line)
			}
			continue
		}
		if hasOpen {
			inComment = true
			continue
		}

		out = append(out, lineComment.ReplaceAllString(line, ""))
	}

	return strings.Join(out, "\n")
}
