package lsp

import (
	"strings"
	"unicode/utf16"

	"github.com/saltyorg/scss-lite/internal/scss"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "scss-lite"

// Diagnostics lints text and converts the results to LSP diagnostics. Each
// range spans the trimmed text of the offending line.
func Diagnostics(text string) []protocol.Diagnostic {
	lines := strings.Split(text, "\n")
	lintDiags := scss.Lint(text)

	diagnostics := make([]protocol.Diagnostic, 0, len(lintDiags))
	for _, d := range lintDiags {
		line := ""
		if d.Line-1 < len(lines) {
			line = lines[d.Line-1]
		}
		start, end := trimmedSpan(line)

		severity := protocol.DiagnosticSeverityError
		source := diagnosticSource
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(d.Line - 1), Character: start},
				End:   protocol.Position{Line: protocol.UInteger(d.Line - 1), Character: end},
			},
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}

	return diagnostics
}

// trimmedSpan returns the UTF-16 offsets of line with surrounding
// whitespace excluded.
func trimmedSpan(line string) (protocol.UInteger, protocol.UInteger) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0, 0
	}
	lead := line[:strings.Index(line, trimmed)]
	start := utf16Len(lead)
	return start, start + utf16Len(trimmed)
}

func utf16Len(s string) protocol.UInteger {
	return protocol.UInteger(len(utf16.Encode([]rune(s))))
}
