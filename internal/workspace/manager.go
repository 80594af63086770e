package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Sheet represents a stylesheet source file.
type Sheet struct {
	Path    string
	Content string
}

// Manager handles stylesheet file operations.
type Manager struct {
	root string
}

// NewManager creates a manager for the workspace rooted at root.
func NewManager(root string) *Manager {
	return &Manager{root: root}
}

// Root returns the workspace root directory.
func (m *Manager) Root() string {
	return m.root
}

// LoadSheet reads a stylesheet from disk.
func (m *Manager) LoadSheet(path string) (*Sheet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return &Sheet{Path: path, Content: string(content)}, nil
}

// SaveSheet writes the sheet back to disk.
func (m *Manager) SaveSheet(sheet *Sheet) error {
	return os.WriteFile(sheet.Path, []byte(sheet.Content), 0644)
}

// WriteOutput writes content to path, creating parent directories.
// Returns true if the file content actually changed.
func (m *Manager) WriteOutput(path, content string) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil && string(existing) == content {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("writing output: %w", err)
	}
	return true, nil
}

// ListSources returns the files under the root matching any include pattern
// and no exclude pattern. Paths are joined onto the root, sorted, and unique.
func (m *Manager) ListSources(include, exclude []string) ([]string, error) {
	fsys := os.DirFS(m.root)
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}

		for _, rel := range matches {
			if seen[rel] {
				continue
			}
			excluded, err := matchAny(exclude, rel)
			if err != nil {
				return nil, err
			}
			if excluded {
				continue
			}
			seen[rel] = true
			files = append(files, rel)
		}
	}

	sort.Strings(files)
	for i, rel := range files {
		files[i] = filepath.Join(m.root, filepath.FromSlash(rel))
	}
	return files, nil
}

// matchAny reports whether rel matches one of patterns.
func matchAny(patterns []string, rel string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))
		if err != nil {
			return false, fmt.Errorf("matching %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// OutputPath returns where the compiled form of source is written. With an
// empty outDir the .css file sits next to the source; otherwise the
// source's path relative to the root is mirrored under outDir.
func (m *Manager) OutputPath(source, outDir string) string {
	name := ExtractSheetName(source) + ".css"
	if outDir == "" {
		return filepath.Join(filepath.Dir(source), name)
	}

	rel, err := filepath.Rel(m.root, filepath.Dir(source))
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Join(outDir, name)
	}
	return filepath.Join(outDir, rel, name)
}

// RelPath returns path relative to the root for display, or path itself
// when it lies outside.
func (m *Manager) RelPath(path string) string {
	rel, err := filepath.Rel(m.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

// ExtractSheetName extracts the stylesheet name (file name without extension).
func ExtractSheetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
