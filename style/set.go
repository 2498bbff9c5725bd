// Package style implements hierarchical style index allocation.
//
// Set is a chain of scopes. Every scope allocates indexes starting from the
// value its parent had reached when scope was branched, so indexes
// allocated in sibling scopes may coincide but never collide with anything
// visible through the ancestor chain. Scope never mutates its ancestors.
package style

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/maruel/natural"

	"docwright/css"
	"docwright/utils/debug"
)

var (
	ErrDuplicateStyle = errors.New("style already defined in this scope")
	ErrUnknownStyle   = errors.New("unknown style")
	ErrEmptyName      = errors.New("style name is empty")
)

// RootScope is the scope identifier of the set created by NewSet.
const RootScope = "root"

// Defaults are defined in the root scope of every document.
var Defaults = map[string]css.Declarations{
	"emph":   {"font-style": {Raw: "italic", Keyword: "italic"}},
	"strong": {"font-weight": {Raw: "bold", Keyword: "bold"}},
	"mono":   {"font-family": {Raw: "monospace", Keyword: "monospace"}},
}

// Style is a named set of presentation properties.
type Style struct {
	Name  string
	Index int
	Scope string
	Props css.Declarations
}

// Set is a single style scope.
type Set struct {
	mu     sync.Mutex
	parent *Set
	scope  string
	next   int
	byName map[string]*Style
	order  []*Style
}

// NewSet creates root scope.
func NewSet() *Set {
	return &Set{scope: RootScope, byName: make(map[string]*Style)}
}

// Branch creates child scope. Child continues index allocation from where
// this scope currently is.
func (s *Set) Branch(scope string) *Set {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &Set{
		parent: s,
		scope:  scope,
		next:   s.next,
		byName: make(map[string]*Style),
	}
}

// Scope returns scope identifier.
func (s *Set) Scope() string {
	return s.scope
}

// Parent returns enclosing scope, nil for root.
func (s *Set) Parent() *Set {
	return s.parent
}

// Create defines style in this scope. Name may shadow style of an ancestor
// but must be unique in the scope itself.
func (s *Set) Create(name string, props css.Declarations) (*Style, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[name]; ok {
		return nil, fmt.Errorf("style %q in scope %q: %w", name, s.scope, ErrDuplicateStyle)
	}
	st := &Style{
		Name:  name,
		Index: s.next,
		Scope: s.scope,
		Props: maps.Clone(props),
	}
	if st.Props == nil {
		st.Props = make(css.Declarations)
	}
	s.next++
	s.byName[name] = st
	s.order = append(s.order, st)
	return st, nil
}

// Get looks style up in this scope and then in its ancestors.
func (s *Set) Get(name string) (*Style, error) {
	for cur := s; cur != nil; cur = cur.parent {
		cur.mu.Lock()
		st, ok := cur.byName[name]
		cur.mu.Unlock()
		if ok {
			return st, nil
		}
	}
	return nil, fmt.Errorf("style %q: %w", name, ErrUnknownStyle)
}

// Styles returns styles defined in this scope in creation order.
func (s *Set) Styles() []*Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.order)
}

// Next returns index the next created style will receive.
func (s *Set) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// Seed defines every class rule of the stylesheet in this scope. Repeated
// rules for the same class are merged, later declarations win.
func (s *Set) Seed(sheet *css.Stylesheet) error {
	if sheet == nil {
		return nil
	}
	merged := make(map[string]css.Declarations)
	var order []string
	for _, r := range sheet.Rules {
		d, ok := merged[r.Class]
		if !ok {
			d = make(css.Declarations)
			merged[r.Class] = d
			order = append(order, r.Class)
		}
		maps.Copy(d, r.Properties)
	}
	for _, name := range order {
		if _, err := s.Create(name, merged[name]); err != nil {
			return err
		}
	}
	return nil
}

// SeedDefaults defines Defaults in this scope, styles already defined (by
// stylesheet) are kept.
func (s *Set) SeedDefaults() error {
	names := slices.Collect(maps.Keys(Defaults))
	slices.Sort(names)
	for _, name := range names {
		s.mu.Lock()
		_, ok := s.byName[name]
		s.mu.Unlock()
		if ok {
			continue
		}
		if _, err := s.Create(name, Defaults[name]); err != nil {
			return err
		}
	}
	return nil
}

// String returns readable dump of the scope chain, for debugging only.
func (s *Set) String() string {
	tw := debug.NewTreeWriter()

	var chain []*Set
	for cur := s; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	slices.Reverse(chain)

	for depth, cur := range chain {
		styles := cur.Styles()
		tw.Line(depth, "Scope %q next=%d styles=%d", cur.scope, cur.Next(), len(styles))
		names := make([]string, 0, len(styles))
		byName := make(map[string]*Style, len(styles))
		for _, st := range styles {
			names = append(names, st.Name)
			byName[st.Name] = st
		}
		sort.Sort(natural.StringSlice(names))
		for _, name := range names {
			st := byName[name]
			tw.Line(depth+1, "%d %s", st.Index, st.Name)
			if len(st.Props) > 0 {
				tw.TextBlock(depth+2, "props", st.Props.String())
			}
		}
	}
	return tw.String()
}
