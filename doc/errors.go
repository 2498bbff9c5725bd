package doc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidProtocolUse is the root of all call order violations. They
	// are programming errors, document which reported one must be abandoned.
	ErrInvalidProtocolUse = errors.New("invalid protocol use")

	// ErrInvalidArgument is returned when call arguments are rejected. Nothing
	// is changed and call could be retried with corrected arguments.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnresolved is the root of references left dangling when document is
	// closed.
	ErrUnresolved = errors.New("unresolved reference")
)

// InvalidStateError is returned when call is not allowed in the current
// state of the node.
type InvalidStateError struct {
	Kind     Kind
	Event    Event
	Expected []State
	Actual   State
	Open     *Kind // kind of child still open, if that was the reason
}

func (e *InvalidStateError) Error() string {
	if e.Open != nil {
		return fmt.Sprintf("%s: %s is not allowed while %s is open", e.Kind, e.Event, *e.Open)
	}
	names := make([]string, 0, len(e.Expected))
	for _, s := range e.Expected {
		names = append(names, s.String())
	}
	if len(names) == 0 {
		return fmt.Sprintf("%s: %s is never allowed (state %s)", e.Kind, e.Event, e.Actual)
	}
	return fmt.Sprintf("%s: %s requires state %s, actual state is %s",
		e.Kind, e.Event, strings.Join(names, " or "), e.Actual)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidProtocolUse }

// UnsupportedChildError is returned when parent (or output driver) does not
// accept child of requested kind.
type UnsupportedChildError struct {
	Parent Kind
	Child  Kind
	Reason string
}

func (e *UnsupportedChildError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s does not accept %s: %s", e.Parent, e.Child, e.Reason)
	}
	return fmt.Sprintf("%s does not accept %s", e.Parent, e.Child)
}

func (e *UnsupportedChildError) Unwrap() error { return ErrInvalidProtocolUse }

// TooManyArgumentsError is returned by the argument adding call which would
// exceed operator arity.
type TooManyArgumentsError struct {
	Kind Kind
	Op   MathOp
	Max  int
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("%s accepts at most %d argument(s)", mathName(e.Kind, e.Op), e.Max)
}

func (e *TooManyArgumentsError) Unwrap() error { return ErrInvalidProtocolUse }

// TooFewArgumentsError is returned when math node is closed before it has
// enough arguments.
type TooFewArgumentsError struct {
	Kind Kind
	Op   MathOp
	Min  int
	Got  int
}

func (e *TooFewArgumentsError) Error() string {
	return fmt.Sprintf("%s requires at least %d argument(s), has %d", mathName(e.Kind, e.Op), e.Min, e.Got)
}

// mathName names math container in arity errors.
func mathName(k Kind, op MathOp) string {
	if k == KindEquation {
		return k.String()
	}
	return "math " + op.String()
}

func (e *TooFewArgumentsError) Unwrap() error { return ErrInvalidProtocolUse }

// LabelBoundError is returned when label which already names constructed
// element is given to another one.
type LabelBoundError struct {
	Kind Kind
	Mark string
}

func (e *LabelBoundError) Error() string {
	return fmt.Sprintf("%s cannot use label %q, it is already bound to another element", e.Kind, e.Mark)
}

func (e *LabelBoundError) Unwrap() error { return ErrInvalidArgument }

// UnresolvedLabelError reports label which was never bound to an element.
type UnresolvedLabelError struct {
	Mark string
}

func (e *UnresolvedLabelError) Error() string {
	return fmt.Sprintf("label %q has no target", e.Mark)
}

func (e *UnresolvedLabelError) Unwrap() error { return ErrUnresolved }

// UnknownCitationError reports citation key missing from bibliography.
type UnknownCitationError struct {
	Key string
}

func (e *UnknownCitationError) Error() string {
	return fmt.Sprintf("citation %q has no bibliography entry", e.Key)
}

func (e *UnknownCitationError) Unwrap() error { return ErrUnresolved }

func invalidArg(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
