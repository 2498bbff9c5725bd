// Package grid converts declarative row and cell span requests into validated
// table occupancy grid.
//
// Each table part (header, body, footer) keeps for every column the last row
// the column is reserved through. New cell takes the first unreserved column
// at or after the row cursor, all columns it spans must be free at the
// current row. When part is closed every column must be reserved exactly
// through its last row.
package grid

import (
	"fmt"
	"slices"
	"sync"

	"docwright/utils/debug"
)

// ColumnDef describes presentation of a table column (or of a multi span
// cell).
type ColumnDef struct {
	Align Align
	Width string
}

// Placement is the result of successful cell allocation.
type Placement struct {
	Row       int // 1 based, inside section
	GlobalRow int // 1 based, inside table
	Column    int // 0 based
	RowSpan   int
	ColSpan   int
	Def       ColumnDef
	Explicit  bool // Def was supplied by caller
}

// Table owns column definitions and allocates table-wide row numbers which
// are unique and monotonic across all parts.
type Table struct {
	mu   sync.Mutex
	defs []ColumnDef
	rows int
}

// NewTable fixes column definitions for the life of the table.
func NewTable(defs []ColumnDef) (*Table, error) {
	if len(defs) == 0 {
		return nil, ErrNoColumns
	}
	for i, d := range defs {
		if !d.Align.IsValid() {
			return nil, fmt.Errorf("column %d: %w", i+1, ErrInvalidAlign)
		}
	}
	return &Table{defs: slices.Clone(defs)}, nil
}

// Columns returns number of columns.
func (t *Table) Columns() int {
	return len(t.defs)
}

// Defs returns copy of column definitions.
func (t *Table) Defs() []ColumnDef {
	return slices.Clone(t.defs)
}

// Rows returns number of rows allocated so far in all parts.
func (t *Table) Rows() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rows
}

func (t *Table) nextRow() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows++
	return t.rows
}

// Section is the occupancy grid of a single table part. It is not safe for
// concurrent use, owner is expected to serialize calls.
type Section struct {
	table     *Table
	part      Part
	blocked   []int
	defIndex  []int
	rows      int
	globalRow int
	cursor    int
	cells     int
}

// NewSection starts grid for requested table part.
func (t *Table) NewSection(part Part) *Section {
	s := &Section{
		table:    t,
		part:     part,
		blocked:  make([]int, len(t.defs)),
		defIndex: make([]int, len(t.defs)),
	}
	for i := range s.defIndex {
		s.defIndex[i] = -1
	}
	return s
}

// Part returns table part of this section.
func (s *Section) Part() Part {
	return s.part
}

// Rows returns number of rows started in this section.
func (s *Section) Rows() int {
	return s.rows
}

// Cells returns number of cells placed in this section.
func (s *Section) Cells() int {
	return s.cells
}

// Blocked returns copy of per column "reserved through row" values.
func (s *Section) Blocked() []int {
	return slices.Clone(s.blocked)
}

// DefIndex returns for every column index of the column whose definition
// covering cell inherited or -1 for columns not yet covered.
func (s *Section) DefIndex() []int {
	return slices.Clone(s.defIndex)
}

// CheckRow reports index the next row would get without starting it.
// Previous row (if any) must be completely covered.
func (s *Section) CheckRow() (local int, err error) {
	if s.rows > 0 {
		var missing []int
		for c, b := range s.blocked {
			if b < s.rows {
				missing = append(missing, c)
			}
		}
		if len(missing) > 0 {
			return 0, &IncompleteRowError{Part: s.part, Row: s.rows, Missing: missing}
		}
	}
	return s.rows + 1, nil
}

// Row starts next row and returns its section and table indexes.
func (s *Section) Row() (local, global int, err error) {
	if _, err := s.CheckRow(); err != nil {
		return 0, 0, err
	}
	s.rows++
	s.globalRow = s.table.nextRow()
	s.cursor = 0
	return s.rows, s.globalRow, nil
}

// Cell places cell of requested span in the current row. Cells spanning more
// than a single row or column must provide explicit definition, single
// cells inherit definition of the column they occupy.
func (s *Section) Cell(rowSpan, colSpan int, def *ColumnDef) (Placement, error) {
	p, err := s.Plan(rowSpan, colSpan, def)
	if err != nil {
		return Placement{}, err
	}
	s.Commit(p)
	return p, nil
}

// Plan finds placement for the cell without changing the grid. Result is
// applied by Commit.
func (s *Section) Plan(rowSpan, colSpan int, def *ColumnDef) (Placement, error) {
	if rowSpan < 1 || colSpan < 1 {
		return Placement{}, fmt.Errorf("cell %dx%d: %w", rowSpan, colSpan, ErrInvalidSpan)
	}
	if s.rows == 0 {
		return Placement{}, ErrNoRow
	}
	if (rowSpan > 1 || colSpan > 1) && def == nil {
		return Placement{}, &MultiSpanRequiresDefinitionError{Part: s.part, Row: s.rows, RowSpan: rowSpan, ColSpan: colSpan}
	}
	if def != nil && !def.Align.IsValid() {
		return Placement{}, fmt.Errorf("cell definition: %w", ErrInvalidAlign)
	}

	n := len(s.blocked)
	start := s.cursor
	for start < n && s.blocked[start] >= s.rows {
		start++
	}
	if start >= n || start+colSpan > n {
		return Placement{}, &ColumnOverrunError{Part: s.part, Row: s.rows, Column: start, ColSpan: colSpan, Columns: n}
	}
	for c := start; c < start+colSpan; c++ {
		if s.blocked[c] >= s.rows {
			return Placement{}, &SpanConflictError{Part: s.part, Row: s.rows, Column: c, BlockedThrough: s.blocked[c]}
		}
	}

	p := Placement{
		Row:       s.rows,
		GlobalRow: s.globalRow,
		Column:    start,
		RowSpan:   rowSpan,
		ColSpan:   colSpan,
		Def:       s.table.defs[start],
	}
	if def != nil {
		p.Def, p.Explicit = *def, true
	}
	return p, nil
}

// Commit reserves columns for placement returned by Plan. Grid must not
// change between the two calls.
func (s *Section) Commit(p Placement) {
	for c := p.Column; c < p.Column+p.ColSpan; c++ {
		s.blocked[c] = p.Row + p.RowSpan - 1
		s.defIndex[c] = p.Column
	}
	s.cursor = p.Column + p.ColSpan
	s.cells++
}

// Close verifies that every column is covered exactly through the last row.
// Section without rows is valid.
func (s *Section) Close() error {
	for c, b := range s.blocked {
		if b != s.rows {
			return &UnterminatedRowSpanError{Part: s.part, Column: c, BlockedThrough: b, Rows: s.rows}
		}
	}
	return nil
}

// String returns grid state for debugging.
func (s *Section) String() string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "Grid %s: rows=%d cells=%d cursor=%d", s.part, s.rows, s.cells, s.cursor)
	tw.Ints(1, "blocked", s.blocked)
	tw.Ints(1, "defs", s.defIndex)
	return tw.String()
}
