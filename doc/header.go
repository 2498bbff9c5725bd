package doc

import (
	"strings"

	"golang.org/x/text/language"
)

// Header carries document metadata. Title is mandatory and must come first.
type Header struct {
	*node
}

func (h *Header) meta(ev Event, name FieldName, value string) error {
	value = strings.TrimSpace(value)
	if len(value) == 0 {
		return invalidArg("empty %s", name)
	}
	return h.field(ev, Field{Name: name, Value: value})
}

// Title sets document title.
func (h *Header) Title(text string) error {
	return h.meta(EventTitle, FieldNameTitle, text)
}

func (h *Header) Subtitle(text string) error {
	return h.meta(EventMeta, FieldNameSubtitle, text)
}

// Author could be called several times.
func (h *Header) Author(name string) error {
	return h.meta(EventMeta, FieldNameAuthor, name)
}

// Date is free form text.
func (h *Header) Date(text string) error {
	return h.meta(EventMeta, FieldNameDate, text)
}

func (h *Header) Abstract(text string) error {
	return h.meta(EventMeta, FieldNameAbstract, text)
}

// Language sets document language, tag must be valid BCP 47 tag and is
// passed to renderer in canonical form.
func (h *Header) Language(tag string) error {
	t, err := language.Parse(tag)
	if err != nil {
		return invalidArg("language %q: %v", tag, err)
	}
	return h.meta(EventMeta, FieldNameLanguage, t.String())
}

// Footer holds notes and bibliography.
type Footer struct {
	*node
}

// Note adds free form note.
func (f *Footer) Note(text string) error {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return invalidArg("empty note")
	}
	return f.field(EventNote, Field{Name: FieldNameNote, Value: text})
}

// Bibliography opens bibliography, only one per document.
func (f *Footer) Bibliography() (*Bibliography, error) {
	c, err := f.spawn(child{event: EventBibliography, kind: KindBibliography})
	if err != nil {
		return nil, err
	}
	return &Bibliography{c}, nil
}

// Bibliography lists cited works. Entry numbers continue citation numbering
// so entries which were never cited are numbered after all cited ones.
type Bibliography struct {
	*node
}

// Entry adds bibliography entry, keys must be unique.
func (b *Bibliography) Entry(key, text string) error {
	key = strings.TrimSpace(key)
	if len(key) == 0 {
		return invalidArg("empty bibliography key")
	}
	if len(strings.TrimSpace(text)) == 0 {
		return invalidArg("empty text of bibliography entry %q", key)
	}
	return b.fire(EventEntry, func() error {
		num, ok := b.s.entry(key)
		if !ok {
			return invalidArg("duplicate bibliography entry %q", key)
		}
		return b.s.emit(func(r Renderer) error {
			return r.Field(b.elem, Field{Name: FieldNameEntry, Key: key, Number: num, Value: text})
		})
	})
}
