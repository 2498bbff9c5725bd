package doc

import (
	"docwright/grid"
	"docwright/style"
)

// Table has fixed columns and mandatory header, body and footer parts in
// that order. Any part may have no rows.
type Table struct {
	*node
	grid *grid.Table
}

// Caption is optional and allowed only before the header.
func (t *Table) Caption(text string) error {
	return t.caption(text)
}

// Columns returns column definitions.
func (t *Table) Columns() []grid.ColumnDef {
	return t.grid.Defs()
}

// DefineStyle creates named style in the table scope.
func (t *Table) DefineStyle(name, decls string) (*style.Style, error) {
	return t.defineStyle(name, decls)
}

func (t *Table) part(ev Event, part grid.Part) (*TableSection, error) {
	g := t.grid.NewSection(part)
	n, err := t.spawn(child{
		event: ev,
		kind:  KindTableSection,
		fill: func(e *Element) {
			e.Part = part
			e.Columns = t.grid.Defs()
		},
		init: func(c *node) {
			c.onClose = g.Close
		},
	})
	if err != nil {
		return nil, err
	}
	return &TableSection{node: n, grid: g}, nil
}

func (t *Table) Header() (*TableSection, error) {
	return t.part(EventHeader, grid.PartHeader)
}

func (t *Table) Body() (*TableSection, error) {
	return t.part(EventBody, grid.PartBody)
}

func (t *Table) Footer() (*TableSection, error) {
	return t.part(EventFooter, grid.PartFooter)
}

// TableSection is a table part. Cells are placed by the layout grid: every
// cell takes the first free column of the current row.
type TableSection struct {
	*node
	grid *grid.Section
}

// Row starts next row, previous one must be fully covered.
func (ts *TableSection) Row() error {
	return ts.fire(EventRow, func() error {
		local, err := ts.grid.CheckRow()
		if err != nil {
			return err
		}
		if err := ts.s.emit(func(r Renderer) error {
			return r.Field(ts.elem, Field{Name: FieldNameRow, Number: local})
		}); err != nil {
			return err
		}
		_, _, err = ts.grid.Row()
		return err
	})
}

// Cell opens cell spanning requested rows and columns. Cells spanning more
// than one row or column must use CellWith.
func (ts *TableSection) Cell(rowSpan, colSpan int) (*Cell, error) {
	return ts.cell(rowSpan, colSpan, nil)
}

// CellWith opens cell with its own presentation definition.
func (ts *TableSection) CellWith(rowSpan, colSpan int, def grid.ColumnDef) (*Cell, error) {
	return ts.cell(rowSpan, colSpan, &def)
}

func (ts *TableSection) cell(rowSpan, colSpan int, def *grid.ColumnDef) (*Cell, error) {
	var p grid.Placement
	n, err := ts.spawn(child{
		event: EventCell,
		kind:  KindCell,
		guard: func() (err error) {
			p, err = ts.grid.Plan(rowSpan, colSpan, def)
			return err
		},
		accept: func() { ts.grid.Commit(p) },
		fill:   func(e *Element) { e.Placement = &p },
	})
	if err != nil {
		return nil, err
	}
	return &Cell{inline{n}}, nil
}

// String returns occupancy grid dump, for debugging only.
func (ts *TableSection) String() string {
	return ts.grid.String()
}

// Cell is a table cell holding inline runs, it may be empty.
type Cell struct {
	inline
}

// Placement returns cell position in the grid.
func (c *Cell) Placement() grid.Placement {
	return *c.elem.Placement
}
