package build

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"docwright/common"
	"docwright/doc"
	"docwright/manuscript"
	"docwright/render/latex"
	"docwright/render/text"
	"docwright/render/xhtml"
	"docwright/state"
)

func newRenderer(format common.OutputFmt, env *state.LocalEnv, log *zap.Logger) (doc.Renderer, error) {
	cfg := &env.Cfg.Document
	switch format {
	case common.OutputFmtXhtml:
		return xhtml.New(xhtml.Options{HeadingOffset: cfg.XHTML.HeadingOffset, Stylesheet: env.Stylesheet}, log), nil
	case common.OutputFmtLatex:
		return latex.New(latex.Options{Class: cfg.LaTeX.Class}, log), nil
	case common.OutputFmtText:
		return text.New(text.Options{Width: cfg.Text.Width, SentencePerLine: cfg.Text.SentencePerLine}, log), nil
	default:
		return nil, fmt.Errorf("%w: unsupported output format %s", doc.ErrInvalidArgument, format)
	}
}

// generate replays manuscript into a new document writing result to w.
func generate(ctx context.Context, m *manuscript.Manuscript, w io.Writer, format common.OutputFmt, strict bool, env *state.LocalEnv, log *zap.Logger) error {
	r, err := newRenderer(format, env, log)
	if err != nil {
		return err
	}
	d, err := doc.New(doc.Options{
		Renderer:   r,
		Writer:     w,
		Log:        log,
		Labels:     env.Cfg.Document.References.Labels(),
		Stylesheet: env.Stylesheet,
		Strict:     strict,
	})
	if err != nil {
		return fmt.Errorf("unable to start document: %w", err)
	}
	return m.Replay(ctx, d, log)
}
