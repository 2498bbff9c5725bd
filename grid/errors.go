package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrLayout is the root of all table layout conflicts.
	ErrLayout = errors.New("table layout conflict")

	// ErrNoColumns is returned when table is created without column definitions.
	ErrNoColumns = errors.New("table must define at least one column")

	// ErrInvalidSpan is returned for row or column span less than 1.
	ErrInvalidSpan = errors.New("span must be positive")

	// ErrNoRow is returned when cell is requested before first row.
	ErrNoRow = errors.New("cell requested outside of row")
)

// ColumnOverrunError is returned when cell does not fit into remaining
// columns of the current row.
type ColumnOverrunError struct {
	Part    Part
	Row     int
	Column  int
	ColSpan int
	Columns int
}

func (e *ColumnOverrunError) Error() string {
	return fmt.Sprintf("table %s row %d: cell at column %d spanning %d column(s) overruns %d column(s)",
		e.Part, e.Row, e.Column+1, e.ColSpan, e.Columns)
}

func (e *ColumnOverrunError) Unwrap() error { return ErrLayout }

// SpanConflictError is returned when cell range overlaps a column still
// reserved by row span from one of the previous rows.
type SpanConflictError struct {
	Part           Part
	Row            int
	Column         int
	BlockedThrough int
}

func (e *SpanConflictError) Error() string {
	return fmt.Sprintf("table %s row %d: column %d is occupied through row %d",
		e.Part, e.Row, e.Column+1, e.BlockedThrough)
}

func (e *SpanConflictError) Unwrap() error { return ErrLayout }

// MultiSpanRequiresDefinitionError is returned for cell spanning several
// rows or columns without explicit definition.
type MultiSpanRequiresDefinitionError struct {
	Part    Part
	Row     int
	RowSpan int
	ColSpan int
}

func (e *MultiSpanRequiresDefinitionError) Error() string {
	return fmt.Sprintf("table %s row %d: cell spanning %dx%d requires explicit cell definition",
		e.Part, e.Row, e.RowSpan, e.ColSpan)
}

func (e *MultiSpanRequiresDefinitionError) Unwrap() error { return ErrLayout }

// IncompleteRowError is returned when new row is started while some columns
// of the current row are not covered by any cell.
type IncompleteRowError struct {
	Part    Part
	Row     int
	Missing []int
}

func (e *IncompleteRowError) Error() string {
	return fmt.Sprintf("table %s row %d: %d column(s) left uncovered, first is column %d",
		e.Part, e.Row, len(e.Missing), e.Missing[0]+1)
}

func (e *IncompleteRowError) Unwrap() error { return ErrLayout }

// UnterminatedRowSpanError is returned on section close when some column is
// not covered exactly through the last row.
type UnterminatedRowSpanError struct {
	Part           Part
	Column         int
	BlockedThrough int
	Rows           int
}

func (e *UnterminatedRowSpanError) Error() string {
	if e.BlockedThrough > e.Rows {
		return fmt.Sprintf("table %s: column %d is spanned through row %d, section has only %d row(s)",
			e.Part, e.Column+1, e.BlockedThrough, e.Rows)
	}
	return fmt.Sprintf("table %s: column %d is covered through row %d, section has %d row(s)",
		e.Part, e.Column+1, e.BlockedThrough, e.Rows)
}

func (e *UnterminatedRowSpanError) Unwrap() error { return ErrLayout }
