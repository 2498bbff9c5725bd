package doc

import (
	"strings"

	"docwright/label"
)

// Figure is a captioned graphics reference, it is used for subfigures of
// the series as well.
type Figure struct {
	*node
}

// Caption is mandatory.
func (f *Figure) Caption(text string) error {
	return f.caption(text)
}

// FigureSeries groups subfigures which are lettered inside the series.
type FigureSeries struct {
	*node
}

// SubFigure opens next subfigure, all subfigures must precede the caption.
func (fs *FigureSeries) SubFigure(lbl *label.Label, path string) (*Figure, error) {
	path, err := cleanPath(path)
	if err != nil {
		return nil, err
	}
	n, err := fs.spawn(child{
		event: EventSubfigure,
		kind:  KindSubfigure,
		label: lbl,
		fill:  func(e *Element) { e.Path = path },
	})
	if err != nil {
		return nil, err
	}
	return &Figure{n}, nil
}

// Caption closes list of subfigures, it is mandatory.
func (fs *FigureSeries) Caption(text string) error {
	return fs.caption(text)
}

func (n *node) caption(text string) error {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return invalidArg("empty %s caption", n.kind)
	}
	return n.field(EventCaption, Field{Name: FieldNameCaption, Value: text})
}

// Code is a listing of verbatim lines.
type Code struct {
	*node
}

// Caption is optional, it must precede the first line.
func (c *Code) Caption(text string) error {
	return c.caption(text)
}

// Line adds verbatim line, empty lines are allowed. At least one line is
// required.
func (c *Code) Line(text string) error {
	if strings.ContainsAny(text, "\r\n") {
		return invalidArg("code line contains line break")
	}
	return c.field(EventLine, Field{Name: FieldNameLine, Value: text})
}
