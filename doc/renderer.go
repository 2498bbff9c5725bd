package doc

import (
	"io"

	"docwright/common"
	"docwright/grid"
	"docwright/label"
	"docwright/style"
)

// Renderer is implemented by output drivers. Document calls it at node
// transitions, calls are serialized so implementation does not need its own
// locking.
//
// Cross references could point forward, implementations must not read
// Label.ReferenceText() before Finish.
type Renderer interface {
	Format() common.OutputFmt
	// Encode escapes raw text for the target format.
	Encode(raw string) string

	Open(e *Element) error
	Field(e *Element, f Field) error
	Text(e *Element, run Run) error
	// Math renders single math operator (or leaf when args is empty) into
	// fragment. Fragments are handed to the parent operator.
	Math(op MathOp, arg string, args []string) string
	Equation(e *Element, fragment string) error
	Close(e *Element) error

	// Finish writes the whole document.
	Finish(w io.Writer) error
}

// Validator may be implemented by renderer to refuse elements target
// format cannot express. It is called before element is opened and before
// its label is resolved.
type Validator interface {
	Validate(e *Element) error
}

// Element is a read-only view of a node given to renderers. It is fixed at
// construction.
type Element struct {
	Kind     Kind
	Serial   int // creation order, unique in document
	Parent   *Element
	LocalID  string
	GlobalID string
	// Depth is section nesting level, 0 outside of sections.
	Depth    int
	Label    *label.Label

	// kind specific
	Path      string           // figure, subfigure
	Language  string           // code
	Ordered   bool             // list
	Columns   []grid.ColumnDef // table
	Part      grid.Part        // table section
	Placement *grid.Placement  // cell
	Op        MathOp           // math
	Arg       string           // math operator argument
}

// Number returns GlobalID without trailing dot, as used in reference text.
func (e *Element) Number() string {
	if n := len(e.GlobalID); n > 0 && e.GlobalID[n-1] == '.' {
		return e.GlobalID[:n-1]
	}
	return e.GlobalID
}

// Field is a simple value attached to an element: title, caption, code line
// and so on.
type Field struct {
	Name   FieldName
	Key    string // bibliography entry key
	Number int    // bibliography entry number, row number
	Value  string
}

// Run is a piece of inline content.
type Run struct {
	Kind   RunKind
	Text   string
	URL    string       // link
	Label  *label.Label // ref
	Key    string       // cite
	Number int          // cite
	Style  *style.Style // styled, emph, strong, mono
}
