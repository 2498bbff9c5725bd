package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"docwright/common"
	"docwright/label"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Document.Format != common.OutputFmtXhtml {
		t.Errorf("Default format = %s, want xhtml", cfg.Document.Format)
	}
	if cfg.Document.XHTML.HeadingOffset != 2 {
		t.Errorf("Default heading offset = %d, want 2", cfg.Document.XHTML.HeadingOffset)
	}
	if cfg.Document.Text.Width != 72 {
		t.Errorf("Default text width = %d, want 72", cfg.Document.Text.Width)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Default console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if !strings.HasSuffix(cfg.Logging.FileLogger.Destination, "docwright.log") {
		t.Errorf("File log destination was not expanded: %q", cfg.Logging.FileLogger.Destination)
	}
}

func TestLoadConfiguration_TemplatesNotExpanded(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	got := cfg.Document.References.Labels()
	want := label.Config{
		Placeholder: "???",
		Templates: map[label.Kind]string{
			label.KindSection:   "Section {{ .Number }}",
			label.KindTable:     "Table {{ .Number }}",
			label.KindFigure:    "Figure {{ .Number }}",
			label.KindSubfigure: "Figure {{ .Number }}",
			label.KindEquation:  "({{ .Number }})",
			label.KindCode:      "Listing {{ .Number }}",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
	}
	if _, err := label.NewManager(got); err != nil {
		t.Errorf("default reference templates do not parse: %v", err)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	log := filepath.Join(t.TempDir(), "logs", "test.log")
	path := writeConfig(t, `version: 1
document:
  format: latex
  output_name_template: "{{ .Title | lower }}"
  file_name_transliterate: true
  strict_references: true
  references:
    table_template: "Tab. {{ .Number }}"
  latex:
    class: report
  text:
    width: -1
logging:
  console:
    level: debug
  file:
    level: normal
    destination: `+log+`
    mode: append
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Document.Format != common.OutputFmtLatex {
		t.Errorf("Format = %s, want latex", cfg.Document.Format)
	}
	if cfg.Document.OutputNameTemplate != "{{ .Title | lower }}" {
		t.Errorf("OutputNameTemplate = %q", cfg.Document.OutputNameTemplate)
	}
	if !cfg.Document.FileNameTransliterate || !cfg.Document.StrictReferences {
		t.Error("Expected transliteration and strict references to be enabled")
	}
	if got := cfg.Document.References.Table; got != "Tab. {{ .Number }}" {
		t.Errorf("Table template = %q", got)
	}
	// values absent from the file keep defaults
	if got := cfg.Document.References.Section; got != "Section {{ .Number }}" {
		t.Errorf("Section template = %q", got)
	}
	if cfg.Document.LaTeX.Class != "report" {
		t.Errorf("Class = %q, want report", cfg.Document.LaTeX.Class)
	}
	if cfg.Document.Text.Width != -1 {
		t.Errorf("Width = %d, want -1", cfg.Document.Text.Width)
	}
	// sanitizer makes sure log directory exists
	if _, err := os.Stat(filepath.Dir(log)); err != nil {
		t.Errorf("log directory was not created: %v", err)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\ndocument:\n  strict_references: true\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"bad version", "version: 2\n"},
		{"bad format", "version: 1\ndocument:\n  format: pdf\n"},
		{"heading offset", "version: 1\ndocument:\n  xhtml:\n    heading_offset: 7\n"},
		{"empty template", "version: 1\ndocument:\n  references:\n    code_template: \"\"\n"},
		{"width", "version: 1\ndocument:\n  text:\n    width: -5\n"},
		{"log level", "version: 1\nlogging:\n  console:\n    level: verbose\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestPrepareAndDump(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "Section {{ .Number }}") {
		t.Errorf("Prepared configuration lost reference template:\n%s", data)
	}

	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	out, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	// dumped configuration must load back to the same values
	back, err := LoadConfiguration(writeConfig(t, string(out)))
	if err != nil {
		t.Fatalf("LoadConfiguration(dumped) error = %v", err)
	}
	if diff := cmp.Diff(cfg, back); diff != "" {
		t.Errorf("Dump round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"report", "report"},
		{"a" + string(os.PathSeparator) + "b", "ab"},
		{"..hidden", "hidden"},
		{"", badFileName},
		{"...", badFileName},
		{"nul\x00byte", "nulbyte"},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
