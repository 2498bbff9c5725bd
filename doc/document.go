// Package doc is the document assembly engine.
//
// Document is built by ordered calls: every node is opened by its parent,
// populated and closed. Each node kind has a protocol (state machine) and
// calls out of order are rejected with InvalidStateError without changing
// anything. Output is produced by Renderer, which is notified at every
// transition. Assembly is all or nothing: after protocol error document has
// to be abandoned.
package doc

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"docwright/css"
	"docwright/label"
	"docwright/style"
)

// Options define new document.
type Options struct {
	Renderer Renderer
	// Writer receives rendered document when it is closed.
	Writer io.Writer
	Log    *zap.Logger
	Labels label.Config
	// Stylesheet classes are defined in the document root style scope.
	Stylesheet *css.Stylesheet
	// Strict turns unresolved references into close error.
	Strict bool
}

// Document is the root of the tree.
type Document struct {
	*node
	w io.Writer
}

// New creates and opens document.
func New(opts Options) (*Document, error) {
	if opts.Renderer == nil {
		return nil, fmt.Errorf("%w: renderer is required", ErrInvalidArgument)
	}
	if opts.Writer == nil {
		return nil, fmt.Errorf("%w: writer is required", ErrInvalidArgument)
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	labels, err := label.NewManager(opts.Labels)
	if err != nil {
		return nil, fmt.Errorf("unable to create label manager: %w", err)
	}
	styles := style.NewSet()
	if err := styles.Seed(opts.Stylesheet); err != nil {
		return nil, fmt.Errorf("unable to use stylesheet: %w", err)
	}
	if err := styles.SeedDefaults(); err != nil {
		return nil, err
	}

	s := &session{
		labels:    labels,
		styles:    styles,
		css:       css.NewParser(log),
		renderer:  opts.Renderer,
		log:       log.Named("doc"),
		strict:    opts.Strict,
		citations: make(map[string]int),
		entries:   make(map[string]bool),
	}

	elem := &Element{Kind: KindDocument, Serial: s.nextSerial()}
	d := &Document{node: newNode(s, KindDocument, nil, elem, styles), w: opts.Writer}
	d.onClose = d.verify
	d.finish = d.flush

	if err := s.emit(func(r Renderer) error { return r.Open(elem) }); err != nil {
		return nil, err
	}
	s.log.Debug("Document opened", zap.Stringer("format", opts.Renderer.Format()), zap.Bool("strict", opts.Strict))
	return d, nil
}

// Labels returns label manager of the document. Labels for forward
// references are created here.
func (d *Document) Labels() *label.Manager {
	return d.s.labels
}

// Styles returns root style scope.
func (d *Document) Styles() *style.Set {
	return d.s.styles
}

// Header opens mandatory document header.
func (d *Document) Header() (*Header, error) {
	c, err := d.spawn(child{event: EventHeader, kind: KindHeader})
	if err != nil {
		return nil, err
	}
	return &Header{c}, nil
}

// Body opens mandatory document body, header must be closed by now.
func (d *Document) Body() (*Body, error) {
	c, err := d.spawn(child{event: EventBody, kind: KindBody})
	if err != nil {
		return nil, err
	}
	return &Body{content{c}}, nil
}

// Footer opens optional document footer.
func (d *Document) Footer() (*Footer, error) {
	c, err := d.spawn(child{event: EventFooter, kind: KindFooter})
	if err != nil {
		return nil, err
	}
	return &Footer{c}, nil
}

// verify reports references which never got their targets. They are
// rendered with placeholder text, in strict mode document could not be
// closed with them.
func (d *Document) verify() error {
	var errs error
	for _, l := range d.s.labels.Unresolved() {
		d.s.log.Warn("Unresolved reference", zap.String("label", l.Mark()), zap.Stringer("kind", l.Kind()))
		errs = multierr.Append(errs, &UnresolvedLabelError{Mark: l.Mark()})
	}
	for _, key := range d.s.dangling() {
		d.s.log.Warn("Citation without bibliography entry", zap.String("key", key))
		errs = multierr.Append(errs, &UnknownCitationError{Key: key})
	}
	if d.s.strict {
		return errs
	}
	return nil
}

func (d *Document) flush() error {
	return d.s.emit(func(r Renderer) error {
		if err := r.Close(d.elem); err != nil {
			return err
		}
		if err := r.Finish(d.w); err != nil {
			return fmt.Errorf("unable to write document: %w", err)
		}
		return nil
	})
}

// IsUnresolved reports whether error returned by Close is caused only by
// dangling references.
func IsUnresolved(err error) bool {
	if err == nil {
		return false
	}
	for _, e := range multierr.Errors(err) {
		if !errors.Is(e, ErrUnresolved) {
			return false
		}
	}
	return true
}
