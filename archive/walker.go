// Package archive builds Walk abstraction on top of "archive/zip".
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"path"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// Entry is a file in archive visited by Walk.
type Entry struct {
	Archive string
	File    *zip.File
	// Name is path inside archive, decoded when archive does not mark it as
	// UTF-8 and code page was forced.
	Name string
}

// WalkFunc is called for each matching file in archive. If an error is
// returned, processing stops.
type WalkFunc func(e *Entry) error

type walker struct {
	cp   encoding.Encoding
	exts []string
	log  *zap.Logger
}

type Option func(*walker)

// WithCodePage decodes non UTF-8 entry names using enc.
func WithCodePage(enc encoding.Encoding) Option {
	return func(w *walker) {
		w.cp = enc
	}
}

// WithExtensions limits walk to files with one of the extensions (case
// insensitive, leading dot included).
func WithExtensions(exts ...string) Option {
	return func(w *walker) {
		for _, ext := range exts {
			w.exts = append(w.exts, strings.ToLower(ext))
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(w *walker) {
		w.log = log
	}
}

// Walk calls walkFn for every file in archive whose name starts with prefix.
// Entries with absolute paths or ".." components fail the walk to prevent
// Zip Slip. Context is checked before every entry.
func Walk(ctx context.Context, archive, prefix string, walkFn WalkFunc, opts ...Option) error {
	w := &walker{log: zap.NewNop()}
	for _, opt := range opts {
		opt(w)
	}

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := w.name(f)
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(name, prefix) || !w.accepts(name) {
			continue
		}
		if err := walkFn(&Entry{Archive: archive, File: f, Name: name}); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) name(f *zip.File) string {
	name := f.Name
	if w.cp == nil || !f.NonUTF8 {
		return name
	}
	decoded, err := w.cp.NewDecoder().String(name)
	if err != nil {
		cs, _ := ianaindex.IANA.Name(w.cp)
		w.log.Warn("Unable to convert archive name from specified encoding",
			zap.String("charset", cs), zap.String("path", name), zap.Error(err))
		return name
	}
	return decoded
}

func (w *walker) accepts(name string) bool {
	if len(w.exts) == 0 {
		return true
	}
	return slices.Contains(w.exts, strings.ToLower(path.Ext(name)))
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	return !slices.Contains(strings.Split(strings.ReplaceAll(name, `\`, "/"), "/"), "..")
}
