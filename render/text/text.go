// Package text renders document as plain text.
//
// Output is streamed into sink.Buffer. Blocks holding inline content
// (paragraphs, list items, tables) are written as deferred segments, so
// they are wrapped only when references they contain have final text.
package text

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"docwright/common"
	"docwright/doc"
	"docwright/sink"
)

// DefaultWidth is used when Options.Width is zero.
const DefaultWidth = 72

// underlines of headings by section depth, document title uses '#'.
var underlines = []string{"=", "-", "~", "."}

// Options of the text renderer.
type Options struct {
	// Width to wrap paragraphs at, negative disables wrapping.
	Width int
	// SentencePerLine puts every sentence of a paragraph on its own line
	// instead of wrapping.
	SentencePerLine bool
}

// block is a paragraph or list item being collected.
type block struct {
	text   inlineText
	indent string
	marker string
	// marker is printed once, continuation flushes are indented by its width
	flushed bool
}

// Renderer writes plain text.
type Renderer struct {
	log  *zap.Logger
	opts Options
	out  *sink.Buffer

	lang     language.Tag
	split    *splitter
	splitSet bool

	blocks map[*doc.Element]*block
	items  map[*doc.Element]int // last item number of ordered list
	tables map[*doc.Element]*table
	cells  map[*doc.Element]*inlineText
	code   map[*doc.Element]bool // listing has lines
}

// New creates renderer. Zero options are valid.
func New(opts Options, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Width == 0 {
		opts.Width = DefaultWidth
	}
	return &Renderer{
		log:    log.Named("text"),
		opts:   opts,
		out:    sink.New(),
		lang:   language.English,
		blocks: make(map[*doc.Element]*block),
		items:  make(map[*doc.Element]int),
		tables: make(map[*doc.Element]*table),
		cells:  make(map[*doc.Element]*inlineText),
		code:   make(map[*doc.Element]bool),
	}
}

func (r *Renderer) Format() common.OutputFmt {
	return common.OutputFmtText
}

// Encode returns text as is, plain text has nothing to escape.
func (r *Renderer) Encode(raw string) string {
	return raw
}

func (r *Renderer) write(parts ...string) {
	for _, s := range parts {
		r.out.WriteString(s) //nolint:errcheck
	}
}

func heading(text, underline string) string {
	return text + "\n" + strings.Repeat(underline, max(runewidth.StringWidth(text), 1)) + "\n"
}

// listDepth counts lists element is nested in.
func listDepth(e *doc.Element) int {
	var n int
	for p := e.Parent; p != nil; p = p.Parent {
		if p.Kind == doc.KindList {
			n++
		}
	}
	return n
}

func (r *Renderer) Open(e *doc.Element) error {
	switch e.Kind {
	case doc.KindParagraph:
		r.blocks[e] = &block{}
	case doc.KindItem:
		marker := "* "
		if e.Parent.Ordered {
			r.items[e.Parent]++
			marker = strconv.Itoa(r.items[e.Parent]) + ". "
		}
		r.blocks[e] = &block{indent: strings.Repeat("  ", listDepth(e)-1), marker: marker}
	case doc.KindList:
		if e.Parent.Kind == doc.KindItem {
			r.flush(e.Parent)
		} else {
			r.write("\n")
		}
	case doc.KindTable:
		r.tables[e] = newTable(e.Columns)
	case doc.KindCell:
		t := r.tables[e.Parent.Parent]
		r.cells[e] = t.cell(*e.Placement)
	case doc.KindBibliography:
		r.write("\n", heading("References", "-"))
	}
	return nil
}

func (r *Renderer) Field(e *doc.Element, f doc.Field) error {
	switch f.Name {
	case doc.FieldNameTitle:
		if e.Kind == doc.KindHeader {
			r.write(heading(f.Value, "#"))
			return nil
		}
		underline := underlines[min(e.Depth, len(underlines))-1]
		r.write("\n", heading(e.Number()+" "+f.Value, underline))

	case doc.FieldNameSubtitle, doc.FieldNameDate:
		r.write(f.Value, "\n")
	case doc.FieldNameAuthor:
		r.write("by ", f.Value, "\n")
	case doc.FieldNameAbstract:
		r.write("\n", r.wrap(f.Value, "    ", ""), "\n")
	case doc.FieldNameLanguage:
		tag, err := language.Parse(f.Value)
		if err != nil {
			return fmt.Errorf("text: %w", err)
		}
		r.lang = tag

	case doc.FieldNameNote:
		r.write("\n", r.wrap(f.Value, "", ""), "\n")
	case doc.FieldNameEntry:
		r.write(r.wrap(f.Value, "", "["+strconv.Itoa(f.Number)+"] "), "\n")

	case doc.FieldNameCaption:
		r.caption(e, f.Value)

	case doc.FieldNameRow:
		r.tables[e.Parent].row(e.Part)

	case doc.FieldNameLine:
		if !r.code[e] {
			r.write("\n")
			r.code[e] = true
		}
		r.write("    ", f.Value, "\n")

	default:
		return fmt.Errorf("text: unexpected field %s", f.Name)
	}
	return nil
}

func (r *Renderer) caption(e *doc.Element, text string) {
	switch e.Kind {
	case doc.KindTable:
		r.tables[e].caption = text
	case doc.KindSubfigure:
		r.write("  (", e.LocalID, ") ", text, " <", e.Path, ">\n")
	case doc.KindFigure:
		r.write("\n[")
		r.reference(e)
		r.write(": ", text, "]\n", "  <", e.Path, ">\n")
	case doc.KindFigureSeries:
		r.write("[")
		r.reference(e)
		r.write(": ", text, "]\n")
	case doc.KindCode:
		r.write("\n")
		r.reference(e)
		r.write(": ", text, "\n")
	}
}

func (r *Renderer) reference(e *doc.Element) {
	l := e.Label
	r.out.WriteDeferred(l.ReferenceText)
}

func (r *Renderer) inline(e *doc.Element) *inlineText {
	if b, ok := r.blocks[e]; ok {
		return &b.text
	}
	return r.cells[e]
}

func (r *Renderer) Text(e *doc.Element, run doc.Run) error {
	t := r.inline(e)
	if t == nil {
		return fmt.Errorf("text: inline run for unexpected element %s", e.Kind)
	}

	switch run.Kind {
	case doc.RunKindText, doc.RunKindStyled:
		t.add(run.Text)
	case doc.RunKindEmph:
		t.add("_" + run.Text + "_")
	case doc.RunKindStrong:
		t.add("*" + run.Text + "*")
	case doc.RunKindMono:
		t.add("`" + run.Text + "`")
	case doc.RunKindLink:
		if run.Text == run.URL {
			t.add("<" + run.URL + ">")
		} else {
			t.add(run.Text + " <" + run.URL + ">")
		}
	case doc.RunKindRef:
		t.addRef(run.Label)
	case doc.RunKindCite:
		t.add("[" + strconv.Itoa(run.Number) + "]")
	default:
		return fmt.Errorf("text: unexpected run %s", run.Kind)
	}
	return nil
}

func (r *Renderer) Equation(e *doc.Element, fragment string) error {
	r.write("\n    ", fragment)
	if e.Label != nil {
		r.write("    ")
		r.reference(e)
	}
	r.write("\n")
	return nil
}

func (r *Renderer) Close(e *doc.Element) error {
	switch e.Kind {
	case doc.KindParagraph:
		r.write("\n")
		r.flush(e)
		delete(r.blocks, e)
	case doc.KindItem:
		r.flush(e)
		delete(r.blocks, e)
	case doc.KindList:
		delete(r.items, e)
	case doc.KindCode:
		delete(r.code, e)
	case doc.KindCell:
		delete(r.cells, e)
	case doc.KindTable:
		t := r.tables[e]
		delete(r.tables, e)
		l := e.Label
		r.write("\n")
		r.out.WriteDeferred(func() string {
			return t.render(l.ReferenceText())
		})
	}
	return nil
}

// flush writes collected inline content of the block.
func (r *Renderer) flush(e *doc.Element) {
	b := r.blocks[e]
	if b == nil || b.text.empty() {
		return
	}
	text := b.text
	b.text.reset()

	marker := b.marker
	if b.flushed {
		marker = strings.Repeat(" ", len(marker))
	}
	b.flushed = true

	indent := b.indent
	r.out.WriteDeferred(func() string {
		return r.wrap(text.String(), indent, marker) + "\n"
	})
}

// wrap formats paragraph text. First line starts with marker, the rest are
// indented by marker width.
func (r *Renderer) wrap(text, indent, marker string) string {
	hanging := indent + strings.Repeat(" ", runewidth.StringWidth(marker))

	var lines []string
	if s := r.splitter(); s != nil {
		for sentence := range s.Sentences(text) {
			lines = append(lines, sentence)
		}
	} else if r.opts.Width > 0 {
		limit := max(r.opts.Width-runewidth.StringWidth(hanging), 1)
		lines = strings.Split(ansi.Wordwrap(text, limit, ""), "\n")
	} else {
		lines = []string{text}
	}

	var sb strings.Builder
	for i, line := range lines {
		if i == 0 {
			sb.WriteString(indent + marker)
		} else {
			sb.WriteString("\n" + hanging)
		}
		sb.WriteString(strings.TrimSpace(line))
	}
	return sb.String()
}

// splitter is created on first use, after document language is known.
func (r *Renderer) splitter() *splitter {
	if !r.opts.SentencePerLine {
		return nil
	}
	if !r.splitSet {
		r.split = newSplitter(r.lang, r.log)
		r.splitSet = true
	}
	return r.split
}

// Finish writes the whole document.
func (r *Renderer) Finish(w io.Writer) error {
	if _, err := r.out.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write text: %w", err)
	}
	return nil
}
