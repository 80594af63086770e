package workspace

import (
	"fmt"
	"regexp"
	"strings"
)

// ManagedSection represents a region of a file owned by scss-lite.
type ManagedSection struct {
	Name       string // Section name (e.g., "SCSS-LITE THEME")
	Content    string // Content between markers
	StartLine  int    // Line number of start marker
	EndLine    int    // Line number of end marker
	StartIndex int    // Byte index of start marker
	EndIndex   int    // Byte index just past the end marker
}

func beginMarker(name string) string {
	return fmt.Sprintf("/* BEGIN %s */", name)
}

func endMarker(name string) string {
	return fmt.Sprintf("/* END %s */", name)
}

// FindManagedSection finds a managed section in the given content.
// Returns nil if the section is not found.
func FindManagedSection(content, sectionName string) *ManagedSection {
	begin := beginMarker(sectionName)
	end := endMarker(sectionName)

	startIdx := strings.Index(content, begin)
	if startIdx == -1 {
		return nil
	}

	endIdx := strings.Index(content[startIdx:], end)
	if endIdx == -1 {
		return nil
	}
	endIdx += startIdx + len(end)

	contentStart := startIdx + len(begin)
	contentEnd := endIdx - len(end)

	return &ManagedSection{
		Name:       sectionName,
		Content:    content[contentStart:contentEnd],
		StartLine:  strings.Count(content[:startIdx], "\n") + 1,
		EndLine:    strings.Count(content[:endIdx], "\n") + 1,
		StartIndex: startIdx,
		EndIndex:   endIdx,
	}
}

// UpdateManagedSection replaces the content of a managed section and
// returns the updated full content.
func UpdateManagedSection(content, sectionName, newContent string) (string, error) {
	section := FindManagedSection(content, sectionName)
	if section == nil {
		return "", fmt.Errorf("managed section %q not found", sectionName)
	}

	var builder strings.Builder
	builder.WriteString(content[:section.StartIndex])
	builder.WriteString(CreateManagedSection(sectionName, newContent))
	builder.WriteString(content[section.EndIndex:])

	return builder.String(), nil
}

// HasManagedSection checks if a managed section exists in the content.
func HasManagedSection(content, sectionName string) bool {
	return FindManagedSection(content, sectionName) != nil
}

// CreateManagedSection wraps content in section markers, ready to be inserted.
func CreateManagedSection(sectionName, content string) string {
	var builder strings.Builder
	builder.WriteString(beginMarker(sectionName))
	builder.WriteString("\n")
	builder.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		builder.WriteString("\n")
	}
	builder.WriteString(endMarker(sectionName))
	return builder.String()
}

var (
	beginRe = regexp.MustCompile(`/\* BEGIN (.+?) \*/`)
	endRe   = regexp.MustCompile(`/\* END (.+?) \*/`)
)

// ValidateManagedSections checks that every BEGIN marker has a matching END
// marker after it, and the other way around.
func ValidateManagedSections(content string) []string {
	var errors []string

	begins := beginRe.FindAllStringSubmatchIndex(content, -1)
	ends := endRe.FindAllStringSubmatchIndex(content, -1)

	beginAt := make(map[string]int)
	var order []string
	for _, m := range begins {
		name := content[m[2]:m[3]]
		if _, dup := beginAt[name]; dup {
			errors = append(errors, fmt.Sprintf("duplicate BEGIN marker for %q", name))
			continue
		}
		beginAt[name] = m[0]
		order = append(order, name)
	}

	closed := make(map[string]bool)
	early := make(map[string]bool)
	for _, m := range ends {
		name := content[m[2]:m[3]]
		start, ok := beginAt[name]
		switch {
		case !ok:
			errors = append(errors, fmt.Sprintf("missing BEGIN marker for %q", name))
		case m[0] < start:
			early[name] = true
		default:
			closed[name] = true
		}
	}

	for _, name := range order {
		switch {
		case closed[name]:
		case early[name]:
			errors = append(errors, fmt.Sprintf("END marker for %q comes before BEGIN", name))
		default:
			errors = append(errors, fmt.Sprintf("missing END marker for %q", name))
		}
	}

	return errors
}
