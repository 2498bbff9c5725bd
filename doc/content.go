package doc

import (
	"path/filepath"
	"strings"

	"docwright/grid"
	"docwright/label"
	"docwright/style"
)

// content implements calls shared by all block containers.
type content struct {
	*node
}

// Body is the main document container.
type Body struct {
	content
}

// Section is numbered structural container, it is the numbering scope of
// its children. Title and Body are mandatory and in that order, content
// calls are allowed only after Body.
type Section struct {
	content
}

// Title sets section heading.
func (s *Section) Title(text string) error {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return invalidArg("empty section title")
	}
	return s.field(EventTitle, Field{Name: FieldNameTitle, Value: text})
}

// Body starts section content.
func (s *Section) Body() error {
	return s.fire(EventBody, nil)
}

// DefineStyle creates named style in the section scope from CSS
// declarations ("font-weight: bold; color: red").
func (s *Section) DefineStyle(name, decls string) (*style.Style, error) {
	return s.defineStyle(name, decls)
}

func (n *node) defineStyle(name, decls string) (*style.Style, error) {
	props, err := n.s.css.ParseDeclarations(decls)
	if err != nil {
		return nil, invalidArg("style %q: %v", name, err)
	}
	var st *style.Style
	err = n.fire(EventDefineStyle, func() (err error) {
		st, err = n.styles.Create(name, props)
		if err != nil {
			return invalidArg("%v", err)
		}
		return nil
	})
	return st, err
}

// Section opens nested section.
func (c content) Section(lbl *label.Label) (*Section, error) {
	n, err := c.spawn(child{event: EventSection, kind: KindSection, label: lbl})
	if err != nil {
		return nil, err
	}
	return &Section{content{n}}, nil
}

// Paragraph opens paragraph, at least one run is required.
func (c content) Paragraph() (*Paragraph, error) {
	n, err := c.spawn(child{event: EventParagraph, kind: KindParagraph})
	if err != nil {
		return nil, err
	}
	return &Paragraph{inline{n}}, nil
}

// Figure opens figure for the graphics at path. Path is cleaned but never
// accessed.
func (c content) Figure(lbl *label.Label, path string) (*Figure, error) {
	path, err := cleanPath(path)
	if err != nil {
		return nil, err
	}
	n, err := c.spawn(child{
		event: EventFigure,
		kind:  KindFigure,
		label: lbl,
		fill:  func(e *Element) { e.Path = path },
	})
	if err != nil {
		return nil, err
	}
	return &Figure{n}, nil
}

// FigureSeries opens group of subfigures with common caption. Series shares
// numbering with figures.
func (c content) FigureSeries(lbl *label.Label) (*FigureSeries, error) {
	n, err := c.spawn(child{event: EventFigureSeries, kind: KindFigureSeries, label: lbl})
	if err != nil {
		return nil, err
	}
	return &FigureSeries{n}, nil
}

// Table opens table with fixed column definitions.
func (c content) Table(lbl *label.Label, defs []grid.ColumnDef) (*Table, error) {
	g, err := grid.NewTable(defs)
	if err != nil {
		return nil, invalidArg("%v", err)
	}
	n, err := c.spawn(child{
		event: EventTable,
		kind:  KindTable,
		label: lbl,
		fill:  func(e *Element) { e.Columns = g.Defs() },
	})
	if err != nil {
		return nil, err
	}
	return &Table{node: n, grid: g}, nil
}

// Code opens code listing in the given language, language may be empty.
func (c content) Code(lbl *label.Label, lang string) (*Code, error) {
	lang = strings.TrimSpace(lang)
	n, err := c.spawn(child{
		event: EventCode,
		kind:  KindCode,
		label: lbl,
		fill:  func(e *Element) { e.Language = lang },
	})
	if err != nil {
		return nil, err
	}
	return &Code{n}, nil
}

// Equation opens display equation, it holds exactly one expression.
func (c content) Equation(lbl *label.Label) (*Equation, error) {
	n, err := c.spawn(child{
		event: EventEquation,
		kind:  KindEquation,
		label: lbl,
		init:  initEquation,
	})
	if err != nil {
		return nil, err
	}
	return &Equation{mathArgs{n}}, nil
}

// List opens list, at least one item is required.
func (c content) List(ordered bool) (*List, error) {
	return openList(c.node, ordered)
}

func cleanPath(path string) (string, error) {
	if len(strings.TrimSpace(path)) == 0 {
		return "", invalidArg("empty figure path")
	}
	return filepath.ToSlash(filepath.Clean(path)), nil
}
