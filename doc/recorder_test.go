package doc

import (
	"fmt"
	"io"
	"strings"

	"docwright/common"
)

// recorder is a minimal renderer recording calls as lines of text. Runs
// referencing labels are resolved when document is finished.
type recorder struct {
	lines  []func() string
	reject func(e *Element) error
	// fails Open and Field calls, call is "open" or "field"
	refuse func(call string, e *Element) error
}

func (r *recorder) add(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	r.lines = append(r.lines, func() string { return s })
}

func (r *recorder) Format() common.OutputFmt { return common.OutputFmtText }

func (r *recorder) Encode(raw string) string { return raw }

func (r *recorder) Validate(e *Element) error {
	if r.reject != nil {
		return r.reject(e)
	}
	return nil
}

func (r *recorder) Open(e *Element) error {
	if r.refuse != nil {
		if err := r.refuse("open", e); err != nil {
			return err
		}
	}
	r.add("open %s %s", e.Kind, e.GlobalID)
	return nil
}

func (r *recorder) Field(e *Element, f Field) error {
	if r.refuse != nil {
		if err := r.refuse("field", e); err != nil {
			return err
		}
	}
	if f.Key != "" {
		r.add("%s %s [%d] %s", f.Name, f.Key, f.Number, f.Value)
		return nil
	}
	r.add("%s %s", f.Name, f.Value)
	return nil
}

func (r *recorder) Text(e *Element, run Run) error {
	switch run.Kind {
	case RunKindRef:
		l := run.Label
		r.lines = append(r.lines, func() string { return "ref " + l.ReferenceText() })
	case RunKindCite:
		r.add("cite [%d]", run.Number)
	case RunKindStyled, RunKindEmph, RunKindStrong, RunKindMono:
		r.add("%s %s(%d) %s", run.Kind, run.Style.Name, run.Style.Index, run.Text)
	default:
		r.add("%s %s", run.Kind, run.Text)
	}
	return nil
}

func (r *recorder) Math(op MathOp, arg string, args []string) string {
	if op.IsLeaf() {
		return arg
	}
	if arg != "" {
		return fmt.Sprintf("%s%s(%s)", op, arg, strings.Join(args, ","))
	}
	return fmt.Sprintf("%s(%s)", op, strings.Join(args, ","))
}

func (r *recorder) Equation(e *Element, fragment string) error {
	r.add("equation %s %s", e.GlobalID, fragment)
	return nil
}

func (r *recorder) Close(e *Element) error {
	r.add("close %s", e.Kind)
	return nil
}

func (r *recorder) Finish(w io.Writer) error {
	for _, fn := range r.lines {
		if _, err := io.WriteString(w, fn()+"\n"); err != nil {
			return err
		}
	}
	return nil
}
