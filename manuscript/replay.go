package manuscript

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"docwright/doc"
	"docwright/grid"
	"docwright/label"
)

var (
	ErrDuplicateLabel = errors.New("label defined more than once")
	ErrUnknownLabel   = errors.New("reference to undefined label")
)

// container is implemented by document body and sections.
type container interface {
	Section(lbl *label.Label) (*doc.Section, error)
	Paragraph() (*doc.Paragraph, error)
	Figure(lbl *label.Label, path string) (*doc.Figure, error)
	FigureSeries(lbl *label.Label) (*doc.FigureSeries, error)
	Table(lbl *label.Label, defs []grid.ColumnDef) (*doc.Table, error)
	Code(lbl *label.Label, lang string) (*doc.Code, error)
	Equation(lbl *label.Label) (*doc.Equation, error)
	List(ordered bool) (*doc.List, error)
}

// runs is implemented by paragraphs, list items and table cells.
type runs interface {
	Text(text string) error
	Emph(text string) error
	Strong(text string) error
	Mono(text string) error
	Styled(name, text string) error
	Link(url, text string) error
	Ref(lbl *label.Label) error
	Cite(key string) error
}

// operands is implemented by equations and math operators.
type operands interface {
	Number(text string) error
	Variable(name string) error
	Symbol(name string) error
	Sum() (*doc.Math, error)
	Difference() (*doc.Math, error)
	Product() (*doc.Math, error)
	Fraction() (*doc.Math, error)
	Power() (*doc.Math, error)
	Sqrt() (*doc.Math, error)
	Root() (*doc.Math, error)
	Group() (*doc.Math, error)
	Negate() (*doc.Math, error)
	Subscript() (*doc.Math, error)
	Compare(rel string) (*doc.Math, error)
	Apply(fn string) (*doc.Math, error)
}

type replayer struct {
	ctx    context.Context
	log    *zap.Logger
	d      *doc.Document
	kinds  map[string]label.Kind
	labels map[string]*label.Label
}

// Replay builds document from manuscript and closes it. Context is checked
// between blocks, on cancellation document is left unfinished and must be
// abandoned.
func (m *Manuscript) Replay(ctx context.Context, d *doc.Document, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	kinds, err := m.definitions()
	if err != nil {
		return err
	}
	rp := &replayer{
		ctx:    ctx,
		log:    log,
		d:      d,
		kinds:  kinds,
		labels: make(map[string]*label.Label, len(kinds)),
	}
	if err := rp.document(m); err != nil {
		return err
	}
	return d.Close()
}

// definitions collects label names with kinds of their targets.
func (m *Manuscript) definitions() (map[string]label.Kind, error) {
	kinds := make(map[string]label.Kind)
	define := func(name string, kind label.Kind) error {
		if name == "" {
			return nil
		}
		if _, ok := kinds[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, name)
		}
		kinds[name] = kind
		return nil
	}

	var walk func(blocks []Block) error
	walk = func(blocks []Block) error {
		for _, b := range blocks {
			var err error
			switch {
			case b.Section != nil:
				if err = define(b.Section.Label, label.KindSection); err == nil {
					err = walk(b.Section.Body)
				}
			case b.Figure != nil:
				err = define(b.Figure.Label, label.KindFigure)
			case b.Figures != nil:
				err = define(b.Figures.Label, label.KindFigure)
				for _, f := range b.Figures.Figures {
					err = errors.Join(err, define(f.Label, label.KindSubfigure))
				}
			case b.Table != nil:
				err = define(b.Table.Label, label.KindTable)
			case b.Code != nil:
				err = define(b.Code.Label, label.KindCode)
			case b.Equation != nil:
				err = define(b.Equation.Label, label.KindEquation)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(m.Body); err != nil {
		return nil, err
	}
	return kinds, nil
}

// label returns handle for the name, created on first mention. Empty name
// asks document to number element without named label.
func (rp *replayer) label(name string) (*label.Label, error) {
	if name == "" {
		return label.Auto, nil
	}
	if l, ok := rp.labels[name]; ok {
		return l, nil
	}
	kind, ok := rp.kinds[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, name)
	}
	l, err := rp.d.Labels().CreateLabel(kind)
	if err != nil {
		return nil, err
	}
	rp.labels[name] = l
	rp.log.Debug("Label created", zap.String("name", name), zap.Stringer("label", l))
	return l, nil
}

func (rp *replayer) document(m *Manuscript) error {
	h, err := rp.d.Header()
	if err != nil {
		return err
	}
	if err := h.Title(m.Title); err != nil {
		return err
	}
	if m.Subtitle != "" {
		if err := h.Subtitle(m.Subtitle); err != nil {
			return err
		}
	}
	for _, a := range m.Authors {
		if err := h.Author(a); err != nil {
			return err
		}
	}
	if m.Date != "" {
		if err := h.Date(m.Date); err != nil {
			return err
		}
	}
	if m.Abstract != "" {
		if err := h.Abstract(m.Abstract); err != nil {
			return err
		}
	}
	if m.Language != "" {
		if err := h.Language(m.Language); err != nil {
			return err
		}
	}
	if err := h.Close(); err != nil {
		return err
	}

	b, err := rp.d.Body()
	if err != nil {
		return err
	}
	if err := rp.blocks(b, m.Body); err != nil {
		return err
	}
	if err := b.Close(); err != nil {
		return err
	}

	if m.Footer == nil {
		return nil
	}
	return rp.footer(m.Footer)
}

func (rp *replayer) footer(ft *Footer) error {
	f, err := rp.d.Footer()
	if err != nil {
		return err
	}
	for _, n := range ft.Notes {
		if err := f.Note(n); err != nil {
			return err
		}
	}
	if len(ft.Bibliography) > 0 {
		bib, err := f.Bibliography()
		if err != nil {
			return err
		}
		for _, e := range ft.Bibliography {
			if err := bib.Entry(e.Key, e.Text); err != nil {
				return err
			}
		}
		if err := bib.Close(); err != nil {
			return err
		}
	}
	return f.Close()
}

func (rp *replayer) blocks(c container, blocks []Block) error {
	for i := range blocks {
		if err := rp.ctx.Err(); err != nil {
			return err
		}
		if err := rp.block(c, &blocks[i]); err != nil {
			return err
		}
	}
	return nil
}

func (rp *replayer) block(c container, b *Block) error {
	switch {
	case b.Section != nil:
		return rp.section(c, b.Section)
	case b.Paragraph != nil:
		p, err := c.Paragraph()
		if err != nil {
			return err
		}
		return rp.closeAfter(p, rp.runs(p, b.Paragraph))
	case b.Figure != nil:
		return rp.figure(c, b.Figure)
	case b.Figures != nil:
		return rp.series(c, b.Figures)
	case b.Table != nil:
		return rp.table(c, b.Table)
	case b.Code != nil:
		return rp.code(c, b.Code)
	case b.Equation != nil:
		return rp.equation(c, b.Equation)
	case b.List != nil:
		l, err := c.List(b.List.Ordered)
		if err != nil {
			return err
		}
		return rp.list(l, b.List)
	}
	return nil
}

type closer interface {
	Close() error
}

// closeAfter closes node when its content was replayed successfully.
func (rp *replayer) closeAfter(n closer, err error) error {
	if err != nil {
		return err
	}
	return n.Close()
}

func (rp *replayer) section(c container, sec *Section) error {
	lbl, err := rp.label(sec.Label)
	if err != nil {
		return err
	}
	s, err := c.Section(lbl)
	if err != nil {
		return err
	}
	if err := s.Title(sec.Title); err != nil {
		return err
	}
	for _, def := range sec.Styles {
		if _, err := s.DefineStyle(def.Name, def.Declarations); err != nil {
			return err
		}
	}
	if err := s.Body(); err != nil {
		return err
	}
	return rp.closeAfter(s, rp.blocks(s, sec.Body))
}

func (rp *replayer) runs(w runs, in Inline) error {
	for _, r := range in {
		var err error
		switch r.Kind {
		case doc.RunKindText:
			err = w.Text(r.Text)
		case doc.RunKindEmph:
			err = w.Emph(r.Text)
		case doc.RunKindStrong:
			err = w.Strong(r.Text)
		case doc.RunKindMono:
			err = w.Mono(r.Text)
		case doc.RunKindStyled:
			err = w.Styled(r.Style, r.Text)
		case doc.RunKindLink:
			err = w.Link(r.URL, r.Text)
		case doc.RunKindRef:
			var l *label.Label
			if l, err = rp.label(r.Target); err == nil {
				err = w.Ref(l)
			}
		case doc.RunKindCite:
			err = w.Cite(r.Target)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (rp *replayer) figure(c container, fig *Figure) error {
	lbl, err := rp.label(fig.Label)
	if err != nil {
		return err
	}
	f, err := c.Figure(lbl, fig.Path)
	if err != nil {
		return err
	}
	return rp.closeAfter(f, f.Caption(fig.Caption))
}

func (rp *replayer) series(c container, ser *Series) error {
	lbl, err := rp.label(ser.Label)
	if err != nil {
		return err
	}
	fs, err := c.FigureSeries(lbl)
	if err != nil {
		return err
	}
	for _, fig := range ser.Figures {
		lbl, err := rp.label(fig.Label)
		if err != nil {
			return err
		}
		f, err := fs.SubFigure(lbl, fig.Path)
		if err != nil {
			return err
		}
		if err := rp.closeAfter(f, f.Caption(fig.Caption)); err != nil {
			return err
		}
	}
	return rp.closeAfter(fs, fs.Caption(ser.Caption))
}

func (rp *replayer) table(c container, tbl *Table) error {
	lbl, err := rp.label(tbl.Label)
	if err != nil {
		return err
	}
	defs := make([]grid.ColumnDef, len(tbl.Columns))
	for i, col := range tbl.Columns {
		defs[i] = grid.ColumnDef(col)
	}
	t, err := c.Table(lbl, defs)
	if err != nil {
		return err
	}
	if tbl.Caption != "" {
		if err := t.Caption(tbl.Caption); err != nil {
			return err
		}
	}
	for _, def := range tbl.Styles {
		if _, err := t.DefineStyle(def.Name, def.Declarations); err != nil {
			return err
		}
	}

	parts := []struct {
		open func() (*doc.TableSection, error)
		rows [][]Cell
	}{
		{t.Header, tbl.Header},
		{t.Body, tbl.Body},
		{t.Footer, tbl.Footer},
	}
	for _, p := range parts {
		ts, err := p.open()
		if err != nil {
			return err
		}
		if err := rp.closeAfter(ts, rp.rows(ts, p.rows)); err != nil {
			return err
		}
	}
	return t.Close()
}

func (rp *replayer) rows(ts *doc.TableSection, rows [][]Cell) error {
	for _, row := range rows {
		if err := ts.Row(); err != nil {
			return err
		}
		for i := range row {
			if err := rp.cell(ts, &row[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (rp *replayer) cell(ts *doc.TableSection, c *Cell) error {
	rows, cols := c.spans()

	var (
		cell *doc.Cell
		err  error
	)
	if c.Column != "" {
		def, _ := parseColumn(c.Column) // validated when decoded
		cell, err = ts.CellWith(rows, cols, def)
	} else {
		cell, err = ts.Cell(rows, cols)
	}
	if err != nil {
		return err
	}
	return rp.closeAfter(cell, rp.runs(cell, c.Runs))
}

func (rp *replayer) code(c container, code *Code) error {
	lbl, err := rp.label(code.Label)
	if err != nil {
		return err
	}
	cd, err := c.Code(lbl, code.Language)
	if err != nil {
		return err
	}
	if code.Caption != "" {
		if err := cd.Caption(code.Caption); err != nil {
			return err
		}
	}
	for _, line := range code.lines() {
		if err := cd.Line(line); err != nil {
			return err
		}
	}
	return cd.Close()
}

func (rp *replayer) equation(c container, eq *Equation) error {
	lbl, err := rp.label(eq.Label)
	if err != nil {
		return err
	}
	e, err := c.Equation(lbl)
	if err != nil {
		return err
	}
	return rp.closeAfter(e, rp.expr(e, &eq.Math))
}

func (rp *replayer) expr(o operands, e *Expr) error {
	var (
		m   *doc.Math
		err error
	)
	switch e.Op {
	case doc.MathOpNumber:
		return o.Number(e.Arg)
	case doc.MathOpVariable:
		return o.Variable(e.Arg)
	case doc.MathOpSymbol:
		return o.Symbol(e.Arg)
	case doc.MathOpSum:
		m, err = o.Sum()
	case doc.MathOpDifference:
		m, err = o.Difference()
	case doc.MathOpProduct:
		m, err = o.Product()
	case doc.MathOpFraction:
		m, err = o.Fraction()
	case doc.MathOpPower:
		m, err = o.Power()
	case doc.MathOpSqrt:
		m, err = o.Sqrt()
	case doc.MathOpRoot:
		m, err = o.Root()
	case doc.MathOpGroup:
		m, err = o.Group()
	case doc.MathOpNegate:
		m, err = o.Negate()
	case doc.MathOpSubscript:
		m, err = o.Subscript()
	case doc.MathOpCompare:
		m, err = o.Compare(e.Arg)
	case doc.MathOpApply:
		m, err = o.Apply(e.Arg)
	default:
		return fmt.Errorf("unexpected math operator %s", e.Op)
	}
	if err != nil {
		return err
	}
	for i := range e.Args {
		if err := rp.expr(m, &e.Args[i]); err != nil {
			return err
		}
	}
	return m.Close()
}

func (rp *replayer) list(l *doc.List, lst *List) error {
	for _, it := range lst.Items {
		item, err := l.Item()
		if err != nil {
			return err
		}
		if err := rp.runs(item, it.Runs); err != nil {
			return err
		}
		if it.List != nil {
			nested, err := item.List(it.List.Ordered)
			if err != nil {
				return err
			}
			if err := rp.list(nested, it.List); err != nil {
				return err
			}
		}
		if err := item.Close(); err != nil {
			return err
		}
	}
	return l.Close()
}
