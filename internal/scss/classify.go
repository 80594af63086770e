package scss

import "strings"

// Kind is the structural role of a single source line.
type Kind int

const (
	// KindIgnored covers blank lines, comments, and anything unrecognized.
	KindIgnored Kind = iota
	// KindVariable is a line starting with "$".
	KindVariable
	// KindOpener is a line ending with "{".
	KindOpener
	// KindCloser is a line consisting only of "}".
	KindCloser
	// KindDeclaration is any other line containing ":".
	KindDeclaration
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindOpener:
		return "opener"
	case KindCloser:
		return "closer"
	case KindDeclaration:
		return "declaration"
	default:
		return "ignored"
	}
}

// The predicates below expect a line that has already been trimmed. Both
// the compiler and the linter go through them so that what compiles and
// what lints clean cannot drift apart.

func isComment(line string) bool {
	return strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*")
}

func isVariable(line string) bool {
	return strings.HasPrefix(line, "$")
}

func isOpener(line string) bool {
	return strings.HasSuffix(line, "{")
}

func isCloser(line string) bool {
	return line == "}"
}

func isDeclaration(line string) bool {
	return strings.Contains(line, ":")
}

// Classify trims line and assigns it a Kind using the compiler's precedence:
// comment, variable, opener, closer, declaration.
func Classify(line string) Kind {
	line = strings.TrimSpace(line)
	switch {
	case line == "" || isComment(line):
		return KindIgnored
	case isVariable(line):
		return KindVariable
	case isOpener(line):
		return KindOpener
	case isCloser(line):
		return KindCloser
	case isDeclaration(line):
		return KindDeclaration
	default:
		return KindIgnored
	}
}

// splitLines splits source on "\n" the same way for every pass.
func splitLines(source string) []string {
	return strings.Split(source, "\n")
}
