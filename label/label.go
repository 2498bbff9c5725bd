// Package label implements cross-reference handles.
//
// Labels are allocated by Manager before or while their target element is
// constructed. Reference text of the label is bound when target resolves it,
// so label obtained earlier may be referenced before its target exists
// (forward reference). Resolution is eager and last write wins.
package label

import (
	"fmt"
	"sync"
)

// Auto asks Manager.Resolve to synthesize fresh label for the target.
var Auto = &Label{mark: "<auto>"}

// Label is a cross-reference handle bound to element kind.
type Label struct {
	mu       sync.Mutex
	kind     Kind
	mark     string
	owner    *Manager
	text     string
	resolved bool
	// guarded by owner
	listed bool
}

// Kind returns kind label was created for, it never changes.
func (l *Label) Kind() Kind {
	return l.kind
}

// Mark returns document-unique rendered identifier, suitable for anchors.
func (l *Label) Mark() string {
	return l.mark
}

// ReferenceText returns current reference text or manager placeholder when
// nothing has been set yet.
func (l *Label) ReferenceText() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.text) > 0 {
		return l.text
	}
	if l.owner != nil {
		return l.owner.placeholder
	}
	return DefaultPlaceholder
}

// Resolved reports whether label has been bound to constructed element.
func (l *Label) Resolved() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.resolved
}

func (l *Label) String() string {
	if l == Auto {
		return l.mark
	}
	return fmt.Sprintf("%s[%s]", l.mark, l.kind)
}

func (l *Label) set(text string, resolved bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.text = text
	if resolved {
		l.resolved = true
	}
}
