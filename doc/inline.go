package doc

import (
	"strings"

	"docwright/label"
	"docwright/style"
)

// inline implements run calls shared by paragraphs, table cells and list
// items.
type inline struct {
	*node
}

// Paragraph is a block of inline runs.
type Paragraph struct {
	inline
}

// Item is a list item, besides runs it may hold nested list.
type Item struct {
	inline
}

// List opens nested list.
func (i *Item) List(ordered bool) (*List, error) {
	return openList(i.node, ordered)
}

// List is ordered or bulleted list of items.
type List struct {
	*node
}

// Item opens next list item.
func (l *List) Item() (*Item, error) {
	n, err := l.spawn(child{event: EventItem, kind: KindItem})
	if err != nil {
		return nil, err
	}
	return &Item{inline{n}}, nil
}

func openList(parent *node, ordered bool) (*List, error) {
	n, err := parent.spawn(child{
		event: EventList,
		kind:  KindList,
		fill:  func(e *Element) { e.Ordered = ordered },
	})
	if err != nil {
		return nil, err
	}
	return &List{n}, nil
}

func (in inline) run(r Run) error {
	return in.fire(EventRun, func() error {
		return in.s.emit(func(rd Renderer) error { return rd.Text(in.elem, r) })
	})
}

func (in inline) styled(kind RunKind, name, text string) error {
	if len(text) == 0 {
		return invalidArg("empty %s text", kind)
	}
	st, err := in.styles.Get(name)
	if err != nil {
		return invalidArg("%v", err)
	}
	return in.run(Run{Kind: kind, Text: text, Style: st})
}

// Text adds plain text.
func (in inline) Text(text string) error {
	if len(text) == 0 {
		return invalidArg("empty text")
	}
	return in.run(Run{Kind: RunKindText, Text: text})
}

// Emph adds emphasized text using "emph" style visible in scope.
func (in inline) Emph(text string) error {
	return in.styled(RunKindEmph, "emph", text)
}

func (in inline) Strong(text string) error {
	return in.styled(RunKindStrong, "strong", text)
}

// Mono adds text in fixed width font.
func (in inline) Mono(text string) error {
	return in.styled(RunKindMono, "mono", text)
}

// Styled adds text with named style. Style must be defined in this or one
// of enclosing scopes.
func (in inline) Styled(name, text string) error {
	return in.styled(RunKindStyled, name, text)
}

// Link adds hyperlink, text defaults to url.
func (in inline) Link(url, text string) error {
	url = strings.TrimSpace(url)
	if len(url) == 0 {
		return invalidArg("empty link target")
	}
	if len(text) == 0 {
		text = url
	}
	return in.run(Run{Kind: RunKindLink, Text: text, URL: url})
}

// Ref adds cross reference. Label may belong to element which does not
// exist yet, its final text is used when document is rendered.
func (in inline) Ref(lbl *label.Label) error {
	if lbl == nil {
		return label.ErrNilLabel
	}
	if !in.s.labels.Owns(lbl) {
		return &label.ForeignLabelError{Mark: lbl.Mark()}
	}
	return in.run(Run{Kind: RunKindRef, Label: lbl})
}

// Cite adds citation of bibliography entry. Citations are numbered in order
// of first use.
func (in inline) Cite(key string) error {
	key = strings.TrimSpace(key)
	if len(key) == 0 {
		return invalidArg("empty citation key")
	}
	return in.fire(EventRun, func() error {
		r := Run{Kind: RunKindCite, Key: key, Number: in.s.citation(key)}
		return in.s.emit(func(rd Renderer) error { return rd.Text(in.elem, r) })
	})
}

// Style returns style visible in the scope of this container.
func (in inline) Style(name string) (*style.Style, error) {
	return in.styles.Get(name)
}
