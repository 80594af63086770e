package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for scss-lite.
type Config struct {
	Root    string         `yaml:"root"`
	Sources []SourceConfig `yaml:"sources"`
	Banner  string         `yaml:"banner"`
	Report  ReportConfig   `yaml:"report"`
	Inject  []InjectConfig `yaml:"inject"`

	// dir is the directory holding the config file; relative roots resolve against it.
	dir string
}

// SourceConfig selects stylesheets to lint and compile.
type SourceConfig struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
	OutDir  string   `yaml:"out_dir"` // Relative to root; empty writes next to the source
}

// ReportConfig controls how diagnostics are printed.
type ReportConfig struct {
	Format string `yaml:"format"`
}

// InjectConfig copies compiled output into a managed section of another file.
type InjectConfig struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Marker string `yaml:"marker"`
}

// Default returns a configuration that compiles every .scss file under the
// current directory in place. Used when no config file exists.
func Default() *Config {
	return &Config{
		Root: ".",
		Sources: []SourceConfig{
			{Include: []string{"**/*.scss"}},
		},
		dir: ".",
	}
}

// Load reads and parses a config file from the given path.
// Files ending in .json or .jsonc may contain comments and trailing commas.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	cfg := Config{Root: "."}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.dir = filepath.Dir(path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads path, falling back to Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the configuration for required fields and consistency.
func (c *Config) Validate() error {
	if err := validateDirectory(c.RootDir(), "root"); err != nil {
		return err
	}

	if len(c.Sources) == 0 {
		return fmt.Errorf("at least one entry in sources is required")
	}

	for i, src := range c.Sources {
		if len(src.Include) == 0 {
			return fmt.Errorf("sources[%d].include is required", i)
		}
		for _, pattern := range src.Include {
			if !doublestar.ValidatePattern(pattern) {
				return fmt.Errorf("sources[%d].include: invalid pattern %q", i, pattern)
			}
		}
		for _, pattern := range src.Exclude {
			if !doublestar.ValidatePattern(pattern) {
				return fmt.Errorf("sources[%d].exclude: invalid pattern %q", i, pattern)
			}
		}
	}

	for i, inj := range c.Inject {
		if inj.Source == "" {
			return fmt.Errorf("inject[%d].source is required", i)
		}
		if inj.Target == "" {
			return fmt.Errorf("inject[%d].target is required", i)
		}
		if inj.Marker == "" {
			return fmt.Errorf("inject[%d].marker is required", i)
		}
	}

	return nil
}

// validateDirectory checks that a path exists and is a directory.
func validateDirectory(path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s does not exist: %s", name, path)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory: %s", name, path)
	}
	return nil
}

// RootDir returns the workspace root, resolved against the config file's directory.
func (c *Config) RootDir() string {
	root := c.Root
	if root == "" {
		root = "."
	}
	if filepath.IsAbs(root) || c.dir == "" {
		return root
	}
	return filepath.Join(c.dir, root)
}

// RootPath joins rel onto the workspace root.
func (c *Config) RootPath(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.RootDir(), rel)
}

// OutputDir returns the output directory for a source entry, or "" to
// write compiled files next to their sources.
func (c *Config) OutputDir(src SourceConfig) string {
	if src.OutDir == "" {
		return ""
	}
	return c.RootPath(src.OutDir)
}
