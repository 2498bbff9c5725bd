package label

import (
	"errors"
	"fmt"
)

var (
	// ErrOwnership is the root of all errors caused by mixing labels of
	// different managers (documents).
	ErrOwnership = errors.New("label ownership violation")

	// ErrNilLabel is returned when nil is passed where label or Auto is expected.
	ErrNilLabel = errors.New("nil label")

	// ErrEmptyReferenceText is returned when reference text is set to an
	// empty string.
	ErrEmptyReferenceText = errors.New("empty reference text")

	// ErrAlreadyBound is returned by Bind for label which already has its
	// target element.
	ErrAlreadyBound = errors.New("label is already bound to an element")
)

// ForeignLabelError is returned when label created by another manager (or
// the Auto sentinel) is used where owned label is required.
type ForeignLabelError struct {
	Mark string
}

func (e *ForeignLabelError) Error() string {
	return fmt.Sprintf("label %q is not owned by this document", e.Mark)
}

func (e *ForeignLabelError) Unwrap() error { return ErrOwnership }

// TypeMismatchError is returned when label is resolved against element of
// different kind than it was created for.
type TypeMismatchError struct {
	Mark string
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("label %q was created for %s, cannot be bound to %s", e.Mark, e.Want, e.Got)
}

func (e *TypeMismatchError) Unwrap() error { return ErrOwnership }
