package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/saltyorg/scss-lite/internal/config"
	"github.com/saltyorg/scss-lite/internal/log"
	"github.com/saltyorg/scss-lite/internal/runtime"
	"github.com/saltyorg/scss-lite/internal/scss"
	"github.com/saltyorg/scss-lite/internal/template"
	"github.com/saltyorg/scss-lite/internal/workspace"
)

const stdinName = "<stdin>"

// sourceFile is a stylesheet selected by the config, with the directory
// its compiled output goes to.
type sourceFile struct {
	Path   string
	OutDir string
}

// loadWorkspaceConfig loads the config file, or the defaults when none exists.
func loadWorkspaceConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(GetConfigPath())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	log.Debug("Workspace root: %s", cfg.RootDir())
	return cfg, nil
}

// newEngine loads the banner and report templates from cfg, falling back
// to the built-in ones.
func newEngine(cfg *config.Config) (*template.Engine, error) {
	engine := template.New()
	if err := engine.LoadOrDefault("banner", cfg.Banner, template.DefaultBanner); err != nil {
		return nil, fmt.Errorf("loading banner template: %w", err)
	}
	if err := engine.LoadOrDefault("report", cfg.Report.Format, template.DefaultReportFormat); err != nil {
		return nil, fmt.Errorf("loading report template: %w", err)
	}
	return engine, nil
}

// listConfiguredSources returns every stylesheet selected by cfg. A file
// matched by more than one source entry belongs to the first.
func listConfiguredSources(cfg *config.Config, manager *workspace.Manager) ([]sourceFile, error) {
	seen := make(map[string]bool)
	var files []sourceFile

	for i, src := range cfg.Sources {
		paths, err := manager.ListSources(src.Include, src.Exclude)
		if err != nil {
			return nil, fmt.Errorf("listing sources[%d]: %w", i, err)
		}
		for _, path := range paths {
			if seen[path] {
				continue
			}
			seen[path] = true
			files = append(files, sourceFile{Path: path, OutDir: cfg.OutputDir(src)})
		}
	}

	log.Debug("Found %d stylesheet(s)", len(files))
	return files, nil
}

// readSource reads path, or standard input when path is "-".
func readSource(stdin io.Reader, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", displayName(path), err)
	}
	return string(data), nil
}

func displayName(path string) string {
	if path == "-" {
		return stdinName
	}
	return path
}

// printDiagnostics writes one report line per diagnostic.
func printDiagnostics(w io.Writer, engine *template.Engine, path string, diags []scss.Diagnostic) error {
	for _, d := range diags {
		line, err := engine.Render("report", template.DiagnosticData{
			Path:    path,
			Line:    d.Line,
			Message: d.Message,
		})
		if err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

// renderBanner renders the banner for the compiled form of source.
func renderBanner(engine *template.Engine, source, output string) (string, error) {
	name := workspace.ExtractSheetName(output)
	banner, err := engine.Render("banner", template.BannerData{
		Name:    name,
		Title:   template.Humanize(name),
		Source:  filepath.ToSlash(source),
		Version: runtime.Version,
	})
	if err != nil {
		return "", fmt.Errorf("rendering banner: %w", err)
	}
	return banner, nil
}

// withBanner prefixes css with banner and ends the file with a newline.
func withBanner(banner, css string) string {
	switch {
	case banner == "":
		return css + "\n"
	case css == "":
		return banner + "\n"
	default:
		return banner + "\n" + css + "\n"
	}
}
