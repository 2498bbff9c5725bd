package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docwright/config"
	"docwright/state"
)

func TestApp_DumpConfig(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "default.yaml")

	ctx := state.ContextWithEnv(context.Background())
	if err := newApp().Run(ctx, []string{"docwright", "dumpconfig", "--default", out}); err != nil {
		t.Fatalf("dumpconfig: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Listing {{ .Number }}") {
		t.Errorf("default configuration is incomplete:\n%s", data)
	}

	// dumped default configuration is a valid configuration file
	if _, err := config.LoadConfiguration(out); err != nil {
		t.Errorf("dumped configuration does not load: %v", err)
	}
}

func TestApp_Build(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "note.yaml")
	if err := os.WriteFile(src, []byte("title: Note\nbody:\n  - paragraph: Just text.\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(cfg, []byte("version: 1\ndocument:\n  format: text\nlogging:\n  console:\n    level: none\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx := state.ContextWithEnv(context.Background())
	if err := newApp().Run(ctx, []string{"docwright", "--config", cfg, "build", src, filepath.Join(dir, "out")}); err != nil {
		t.Fatalf("build: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "out", "note.txt"))
	if err != nil {
		t.Fatalf("missing output: %v", err)
	}
	if !strings.Contains(string(data), "Just text.") {
		t.Errorf("unexpected output:\n%s", data)
	}
}
