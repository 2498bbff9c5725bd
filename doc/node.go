package doc

import (
	"errors"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"docwright/label"
	"docwright/style"
)

// node is the generic document tree node. Typed wrappers (Section, Table,
// ...) embed it and expose the protocol of their kind.
//
// Lock order is always descendant to ancestor: closing node holds its own
// lock while notifying parent, parent never locks its children.
type node struct {
	mu     sync.Mutex
	s      *session
	kind   Kind
	proto  *protocol
	state  State
	parent *node
	open   *node
	visits map[Event]int
	// numbering of children, node is the scope of its numbered children
	numbers map[label.Kind]int
	elem    *Element
	styles  *style.Set

	// math operators
	minArgs, maxArgs int
	args             []string
	fragment         string

	// completeness check, called under lock before close is committed
	onClose func() error
	// replaces default renderer Close call
	finish func() error
	// called under lock when child is closed
	onChildClosed func(child *node)
}

func newNode(s *session, kind Kind, parent *node, elem *Element, styles *style.Set) *node {
	return &node{
		s:       s,
		kind:    kind,
		proto:   protocols[kind],
		state:   StateAlive,
		parent:  parent,
		visits:  make(map[Event]int),
		numbers: make(map[label.Kind]int),
		elem:    elem,
		styles:  styles,
	}
}

// Kind returns kind of the node.
func (n *node) Kind() Kind {
	return n.kind
}

// State returns current protocol state.
func (n *node) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Element returns renderer view of the node.
func (n *node) Element() *Element {
	return n.elem
}

// check validates event against current state, n.mu must be held.
func (n *node) check(ev Event) (State, error) {
	if n.open != nil && n.state != StateDead {
		open := n.open.kind
		return n.state, &InvalidStateError{Kind: n.kind, Event: ev, Actual: n.state, Open: &open}
	}
	to, ok := n.proto.transition(n.state, ev)
	if !ok {
		return n.state, &InvalidStateError{Kind: n.kind, Event: ev, Expected: n.proto.expected(ev), Actual: n.state}
	}
	return to, nil
}

// commit records event, n.mu must be held.
func (n *node) commit(ev Event, to State) {
	if n.state != to {
		n.s.log.Debug("Transition",
			zap.Stringer("kind", n.kind),
			zap.String("id", n.elem.GlobalID),
			zap.Stringer("event", ev),
			zap.Stringer("from", n.state),
			zap.Stringer("to", to))
	}
	n.state = to
	n.visits[ev]++
}

// fire performs event which does not open a child. apply runs after state
// was validated, if it fails nothing is committed.
func (n *node) fire(ev Event, apply func() error) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	to, err := n.check(ev)
	if err != nil {
		return err
	}
	if apply != nil {
		if err := apply(); err != nil {
			return err
		}
	}
	n.commit(ev, to)
	return nil
}

// field emits simple value attached to this node.
func (n *node) field(ev Event, f Field) error {
	return n.fire(ev, func() error {
		return n.s.emit(func(r Renderer) error { return r.Field(n.elem, f) })
	})
}

// Close validates that everything mandatory was supplied and terminates
// node. On error node is left unchanged.
func (n *node) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	to, err := n.check(EventClose)
	if err != nil {
		return err
	}
	if n.onClose != nil {
		if err := n.onClose(); err != nil {
			return err
		}
	}
	if n.finish != nil {
		err = n.finish()
	} else {
		err = n.s.emit(func(r Renderer) error { return r.Close(n.elem) })
	}
	if err != nil {
		return err
	}
	n.commit(EventClose, to)

	if n.parent != nil {
		n.parent.childClosed(n)
	}
	return nil
}

func (n *node) childClosed(child *node) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.open == child {
		n.open = nil
	}
	if n.onChildClosed != nil {
		n.onChildClosed(child)
	}
}

// child describes node to be opened.
type child struct {
	event Event
	kind  Kind
	// label requested by caller for numbered kinds, label.Auto allowed
	label *label.Label
	// fills kind specific element fields
	fill func(e *Element)
	// runs after state validation, before anything is built, must not
	// change anything
	guard func() error
	// applies what guard prepared, runs only when child was accepted
	accept func()
	// wires typed wrapper into the node
	init func(c *node)
	// do not call renderer Open, math operators are rendered by parent
	silent bool
}

// spawn opens child node. Everything which could be validated is validated
// before parent state changes, parent state, label binding and numbering
// are committed only after renderer accepted the child.
func (n *node) spawn(req child) (*node, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	to, err := n.check(req.event)
	if err != nil {
		return nil, err
	}

	lk, numbered := labelKind(req.kind)
	if numbered {
		if err := n.s.labels.Check(req.label, lk); err != nil {
			return nil, err
		}
		if req.label != label.Auto && req.label.Resolved() {
			return nil, &LabelBoundError{Kind: req.kind, Mark: req.label.Mark()}
		}
	}
	if req.guard != nil {
		if err := req.guard(); err != nil {
			return nil, err
		}
	}

	elem := &Element{
		Kind:     req.kind,
		Parent:   n.elem,
		GlobalID: n.elem.GlobalID,
		Depth:    n.elem.Depth,
	}
	if numbered {
		elem.LocalID = localID(lk, n.numbers[lk]+1)
		elem.GlobalID = n.elem.GlobalID + elem.LocalID
	}
	if req.kind == KindSection {
		elem.Depth++
	}
	if req.fill != nil {
		req.fill(elem)
	}

	if v, ok := n.s.renderer.(Validator); ok {
		if err := n.s.emit(func(Renderer) error { return v.Validate(elem) }); err != nil {
			return nil, err
		}
	}

	var text string
	if numbered {
		if elem.Label, err = n.s.labels.Reserve(req.label, lk); err != nil {
			return nil, err
		}
		if text, err = n.s.labels.ReferenceText(lk, elem.Number(), elem.Label.Mark()); err != nil {
			return nil, err
		}
	}

	styles := n.styles
	if req.kind == KindSection || req.kind == KindTable {
		styles = n.styles.Branch(elem.Label.Mark())
	}
	elem.Serial = n.s.nextSerial()

	c := newNode(n.s, req.kind, n, elem, styles)
	if req.init != nil {
		req.init(c)
	}
	if !req.silent {
		if err := n.s.emit(func(r Renderer) error { return r.Open(elem) }); err != nil {
			return nil, err
		}
	}

	if numbered {
		// label could have been taken by element of another subtree
		// meanwhile
		if err := n.s.labels.Bind(elem.Label, lk, text); err != nil {
			if errors.Is(err, label.ErrAlreadyBound) {
				return nil, &LabelBoundError{Kind: req.kind, Mark: elem.Label.Mark()}
			}
			return nil, err
		}
		n.numbers[lk]++
	}
	if req.accept != nil {
		req.accept()
	}
	n.open = c
	n.commit(req.event, to)

	n.s.log.Debug("Element opened",
		zap.Stringer("kind", req.kind),
		zap.String("id", elem.GlobalID),
		zap.Int("serial", elem.Serial))
	return c, nil
}

// labelKind maps numbered node kinds to their numbering class.
func labelKind(k Kind) (label.Kind, bool) {
	switch k {
	case KindSection:
		return label.KindSection, true
	case KindTable:
		return label.KindTable, true
	case KindFigure, KindFigureSeries:
		return label.KindFigure, true
	case KindSubfigure:
		return label.KindSubfigure, true
	case KindEquation:
		return label.KindEquation, true
	case KindCode:
		return label.KindCode, true
	}
	return 0, false
}

func localID(k label.Kind, n int) string {
	if k == label.KindSubfigure {
		return label.Alpha(n)
	}
	return strconv.Itoa(n) + "."
}
