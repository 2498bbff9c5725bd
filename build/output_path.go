package build

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"docwright/common"
	"docwright/config"
	"docwright/manuscript"
	"docwright/state"
)

// buildOutputPath returns output file path for manuscript. src is the source
// path relative to the processed root (file name only for single files).
// Unless NoDirs is requested relative source directories are kept under dst.
// Output name template may introduce subdirectories of its own, every
// segment is cleaned and optionally transliterated.
func buildOutputPath(m *manuscript.Manuscript, src, dst string, format common.OutputFmt, env *state.LocalEnv) string {
	outDir := dst
	if !env.NoDirs {
		outDir = filepath.Join(dst, filepath.Dir(src))
	}

	if tmpl := env.Cfg.Document.OutputNameTemplate; len(tmpl) > 0 {
		name, err := expandTemplate(m, config.OutputNameTemplateFieldName, tmpl, src, format)
		if err != nil {
			env.Log.Warn("Unable to prepare output file name, using default", zap.Error(err))
		} else if segments := splitPath(filepath.FromSlash(name)); len(segments) > 0 {
			parts := make([]string, 0, len(segments)+1)
			parts = append(parts, outDir)
			for _, s := range segments {
				parts = append(parts, cleanSegment(s, env))
			}
			return filepath.Join(parts...) + format.Ext()
		}
	}
	return filepath.Join(outDir, cleanSegment(strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)), env)+format.Ext())
}

// splitPath breaks path into non empty segments dropping anything which
// would move output outside of destination.
func splitPath(path string) []string {
	var segments []string
	for s := range strings.SplitSeq(path, string(filepath.Separator)) {
		switch s {
		case "", ".", "..":
			continue
		}
		segments = append(segments, s)
	}
	return segments
}

func cleanSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Document.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
