package synopsis

import (
	"regexp"
	"strings"

	"github.com/mansrc/mankit/core/mgrep"
)

// FuncDeclPattern recognizes a C function declaration as rendered in a
// SYNOPSIS: leading indent, a type expression, an identifier, and a
// parenthesized parameter list closed by `);`. It deliberately spans
// lines, since rendered declarations wrap.
const FuncDeclPattern = `(?ms)^ +[\w ]+ \**\w+\([\w\s(,)\[\]*]*?(?:\.\.\.)?\); *$`

// VarDeclPattern recognizes the two extern variable shapes: a function
// pointer `extern T (*name)(params);` and a plain `extern T name;`.
const VarDeclPattern = `(?ms)^ +extern [\w ]+(?:\**\(\*\w+\)\([\w\s(,)\[\]*]*?\)|\**\w+); *$`

var (
	funcDecl = mgrep.MustNew(FuncDeclPattern)
	varDecl  = mgrep.MustNew(VarDeclPattern)

	// syscall(2)-style wrappers document the real entry point in their
	// first argument: syscall(SYS_openat2, ...) declares openat2.
	syscallWrapper = regexp.MustCompile(`syscall\(SYS_(\w+),`)

	numberPrefix = regexp.MustCompile(`^[0-9]`)
	funcIdent    = regexp.MustCompile(`^[^(]* \**(\w+)\(`)
	ptrIdent     = regexp.MustCompile(`\(\*(\w+)\)`)
	varIdent     = regexp.MustCompile(`(\w+); *$`)
)

// Functions extracts the declared function names from comment-stripped
// SYNOPSIS text, in order of appearance with adjacent duplicates
// collapsed.
func Functions(text string) []string {
	var names []string
	for _, m := range funcDecl.SearchString(text) {
		for _, line := range m.NumberedLines() {
			// Only the first line of each match carries the number
			// prefix; continuation lines are dropped, not errors.
			if !numberPrefix.MatchString(line) {
				continue
			}
			line = syscallWrapper.ReplaceAllString(line, "$1(")
			if sm := funcIdent.FindStringSubmatch(line); sm != nil {
				names = append(names, sm[1])
			}
		}
	}
	return CollapseAdjacent(names)
}

// Variables extracts the declared variable names from comment-stripped
// SYNOPSIS text: extern declarations that are not function declarations
// and not typedefs. Same ordering and collapse policy as Functions.
func Variables(text string) []string {
	text = dropFunctionDecls(text)

	var names []string
	for _, m := range varDecl.SearchString(text) {
		for _, line := range m.NumberedLines() {
			if !numberPrefix.MatchString(line) {
				continue
			}
			if strings.Contains(line, "typedef") {
				continue
			}
			if sm := ptrIdent.FindStringSubmatch(line); sm != nil {
				names = append(names, sm[1])
				continue
			}
			if sm := varIdent.FindStringSubmatch(line); sm != nil {
				names = append(names, sm[1])
			}
		}
	}
	return CollapseAdjacent(names)
}

// dropFunctionDecls removes every line covered by a function-declaration
// match, the way `pcregrep -Mv` filters its input.
func dropFunctionDecls(text string) string {
	drop := make(map[int]bool)
	for _, m := range funcDecl.SearchString(text) {
		for i := range m.Lines() {
			drop[m.Line+i] = true
		}
	}
	if len(drop) == 0 {
		return text
	}

	var out []string
	for i, line := range strings.Split(text, "\n") {
		if !drop[i+1] {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// CollapseAdjacent drops consecutive duplicate names, uniq style: the
// same name may still appear again later, non-adjacently.
func CollapseAdjacent(names []string) []string {
	var out []string
	for _, n := range names {
		if len(out) > 0 && out[len(out)-1] == n {
			continue
		}
		out = append(out, n)
	}
	return out
}
