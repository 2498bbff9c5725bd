package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport_Archive(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	if r.Name() != conf.Destination {
		t.Errorf("Name() = %q, want %q", r.Name(), conf.Destination)
	}

	src := filepath.Join(dir, "book.yaml")
	if err := os.WriteFile(src, []byte("title: original"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out")
	if err := os.MkdirAll(filepath.Join(out, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(out, "sub", "book.txt"), []byte("rendered"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := r.StoreCopy("source", src); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}
	// copy is taken at the time of the call
	if err := os.WriteFile(src, []byte("title: changed"), 0644); err != nil {
		t.Fatal(err)
	}
	r.Store("output", out)
	r.StoreData("config/cfg.yaml", []byte("version: 1"))
	r.Store("missing", filepath.Join(dir, "absent.log"))

	temps := slices.Clone(r.temps)
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	files := readArchive(t, conf.Destination)
	if got := files["source"]; got != "title: original" {
		t.Errorf("source = %q", got)
	}
	if got := files["output/sub/book.txt"]; got != "rendered" {
		t.Errorf("output/sub/book.txt = %q", got)
	}
	if got := files["config/cfg.yaml"]; got != "version: 1" {
		t.Errorf("config/cfg.yaml = %q", got)
	}
	if _, ok := files["missing"]; ok {
		t.Error("absent file must be skipped")
	}
	manifest := files["MANIFEST"]
	for _, name := range []string{"config/cfg.yaml", "missing", "output", "source"} {
		if !strings.Contains(manifest, "\t"+name+"\t") {
			t.Errorf("MANIFEST has no %s:\n%s", name, manifest)
		}
	}

	for _, tmp := range temps {
		if _, err := os.Stat(tmp); !os.IsNotExist(err) {
			t.Errorf("temporary copy %s was not removed", tmp)
		}
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("stored directory must not be removed: %v", err)
	}
}

func TestReport_StoreCopyVersionsNames(t *testing.T) {
	dir := t.TempDir()
	r, err := (&ReporterConfig{Destination: filepath.Join(dir, "r.zip")}).Prepare()
	if err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(src, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}
	for range 2 {
		if err := r.StoreCopy("a", src); err != nil {
			t.Fatalf("StoreCopy() error: %v", err)
		}
	}
	if len(r.entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(r.entries))
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestReport_Nil(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy() on nil report: %v", err)
	}
	if r.Name() != "" {
		t.Error("nil report has a name")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() on nil report: %v", err)
	}
}

func TestReport_StorePanicsOnOverwrite(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("a", "one")
	r.Store("a", "one")

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	r.Store("a", "two")
}
