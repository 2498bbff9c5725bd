// Package xhtml renders document as a single XHTML 1.1 file with MathML
// equations.
//
// Element tree is assembled in memory while document is built and
// serialized when document is finished, so cross references always get
// their final text.
package xhtml

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"docwright/common"
	"docwright/css"
	"docwright/doc"
	"docwright/grid"
	"docwright/label"
	"docwright/style"
)

const (
	nsXHTML  = "http://www.w3.org/1999/xhtml"
	nsMathML = "http://www.w3.org/1998/Math/MathML"

	maxHeading = 6
)

// Options of the XHTML renderer.
type Options struct {
	// HeadingOffset is added to section depth to get heading level, document
	// title always uses h1.
	HeadingOffset int
	// Stylesheet is embedded into the document head as is.
	Stylesheet *css.Stylesheet
	// ID is used as document identifier, new UUID is generated when empty.
	ID string
}

type pendingRef struct {
	a *etree.Element
	l *label.Label
}

// Renderer builds XHTML element tree.
type Renderer struct {
	log  *zap.Logger
	opts Options

	doc   *etree.Document
	html  *etree.Element
	head  *etree.Element
	nodes map[*doc.Element]*etree.Element
	rows  map[*doc.Element]*etree.Element
	code  map[*doc.Element]*etree.Element

	refs   []pendingRef
	styles []*style.Style
}

// New creates renderer. Zero options are valid.
func New(opts Options, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.HeadingOffset <= 0 {
		opts.HeadingOffset = 1
	}
	return &Renderer{
		log:   log.Named("xhtml"),
		opts:  opts,
		nodes: make(map[*doc.Element]*etree.Element),
		rows:  make(map[*doc.Element]*etree.Element),
		code:  make(map[*doc.Element]*etree.Element),
	}
}

func (r *Renderer) Format() common.OutputFmt {
	return common.OutputFmtXhtml
}

var encoder = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&apos;")

// Encode escapes text for use in XML markup. Element tree escapes text
// itself, this is used for math fragments.
func (r *Renderer) Encode(raw string) string {
	return encoder.Replace(raw)
}

// Validate refuses elements XHTML cannot express.
func (r *Renderer) Validate(e *doc.Element) error {
	switch e.Kind {
	case doc.KindSection:
		if level := e.Depth + r.opts.HeadingOffset; level > maxHeading {
			return &doc.UnsupportedChildError{
				Parent: e.Parent.Kind,
				Child:  e.Kind,
				Reason: fmt.Sprintf("heading level %d exceeds h%d", level, maxHeading),
			}
		}
	case doc.KindFigure, doc.KindSubfigure:
		if !isImage(e.Path) {
			return &doc.UnsupportedChildError{
				Parent: e.Parent.Kind,
				Child:  e.Kind,
				Reason: fmt.Sprintf("%q is not a supported image", e.Path),
			}
		}
	}
	return nil
}

// isImage checks path extension only, file itself is never accessed.
func isImage(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "svg" {
		return true
	}
	if ext == "jpeg" {
		ext = "jpg"
	}
	return filetype.GetType(ext).MIME.Type == "image"
}

func (r *Renderer) parent(e *doc.Element) *etree.Element {
	if e.Parent == nil {
		return nil
	}
	return r.nodes[e.Parent]
}

func (r *Renderer) Open(e *doc.Element) error {
	var el *etree.Element

	switch e.Kind {
	case doc.KindDocument:
		return r.openDocument(e)

	case doc.KindHeader:
		el = r.parent(e).CreateElement("header")
	case doc.KindBody:
		el = r.parent(e).CreateElement("main")
	case doc.KindFooter:
		el = r.parent(e).CreateElement("footer")
	case doc.KindBibliography:
		el = r.parent(e).CreateElement("dl")
		el.CreateAttr("class", "bibliography")

	case doc.KindSection:
		el = r.parent(e).CreateElement("section")
	case doc.KindParagraph:
		el = r.parent(e).CreateElement("p")

	case doc.KindFigure, doc.KindSubfigure:
		el = r.parent(e).CreateElement("figure")
		if e.Kind == doc.KindSubfigure {
			el.CreateAttr("class", "subfigure")
		}
		img := el.CreateElement("img")
		img.CreateAttr("src", e.Path)
		img.CreateAttr("alt", filepath.Base(e.Path))
	case doc.KindFigureSeries:
		el = r.parent(e).CreateElement("figure")
		el.CreateAttr("class", "series")

	case doc.KindTable:
		el = r.parent(e).CreateElement("table")
	case doc.KindTableSection:
		el = r.parent(e).CreateElement(sectionTag(e))
		if e.Part == grid.PartHeader {
			// column definitions go before the first table part
			r.writeColumns(r.parent(e), e)
		}
	case doc.KindCell:
		el = r.openCell(e)

	case doc.KindCode:
		el = r.parent(e).CreateElement("figure")
		el.CreateAttr("class", "listing")
	case doc.KindEquation:
		el = r.parent(e).CreateElement("div")
		el.CreateAttr("class", "equation")

	case doc.KindList:
		tag := "ul"
		if e.Ordered {
			tag = "ol"
		}
		el = r.parent(e).CreateElement(tag)
	case doc.KindItem:
		el = r.parent(e).CreateElement("li")

	default:
		return fmt.Errorf("xhtml: unexpected element %s", e.Kind)
	}

	if e.Label != nil {
		el.CreateAttr("id", e.Label.Mark())
	}
	r.nodes[e] = el
	return nil
}

func (r *Renderer) openDocument(e *doc.Element) error {
	id := r.opts.ID
	if id == "" {
		u, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("unable to generate document UUID: %w", err)
		}
		id = u.String()
	}

	r.doc = etree.NewDocument()
	r.doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	r.doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	r.doc.CreateDirective(`DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.1//EN" "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd"`)

	r.html = r.doc.CreateElement("html")
	r.html.CreateAttr("xmlns", nsXHTML)

	r.head = r.html.CreateElement("head")
	meta := r.head.CreateElement("meta")
	meta.CreateAttr("http-equiv", "Content-Type")
	meta.CreateAttr("content", "application/xhtml+xml; charset=utf-8")
	ident := r.head.CreateElement("meta")
	ident.CreateAttr("name", "identifier")
	ident.CreateAttr("content", "urn:uuid:"+id)

	r.nodes[e] = r.html.CreateElement("body")
	r.log.Debug("Document started", zap.String("id", id))
	return nil
}

func sectionTag(e *doc.Element) string {
	switch e.Part {
	case grid.PartHeader:
		return "thead"
	case grid.PartFooter:
		return "tfoot"
	}
	return "tbody"
}

func (r *Renderer) writeColumns(table *etree.Element, e *doc.Element) {
	group := table.CreateElement("colgroup")
	for _, def := range e.Columns {
		col := group.CreateElement("col")
		decls := "text-align: " + def.Align.String()
		if def.Width != "" {
			decls += "; width: " + def.Width
		}
		col.CreateAttr("style", decls)
	}
}

func (r *Renderer) openCell(e *doc.Element) *etree.Element {
	tr := r.rows[e.Parent]
	tag := "td"
	if e.Parent.Part == grid.PartHeader {
		tag = "th"
	}
	td := tr.CreateElement(tag)

	p := e.Placement
	if p.ColSpan > 1 {
		td.CreateAttr("colspan", strconv.Itoa(p.ColSpan))
	}
	if p.RowSpan > 1 {
		td.CreateAttr("rowspan", strconv.Itoa(p.RowSpan))
	}
	if p.Explicit {
		decls := "text-align: " + p.Def.Align.String()
		if p.Def.Width != "" {
			decls += "; width: " + p.Def.Width
		}
		td.CreateAttr("style", decls)
	}
	return td
}

func (r *Renderer) Field(e *doc.Element, f doc.Field) error {
	el := r.nodes[e]
	if el == nil {
		return fmt.Errorf("xhtml: field %s for unknown element %s", f.Name, e.Kind)
	}

	switch f.Name {
	case doc.FieldNameTitle:
		if e.Kind == doc.KindHeader {
			r.head.CreateElement("title").SetText(f.Value)
			h := el.CreateElement("h1")
			h.CreateAttr("class", "title")
			h.SetText(f.Value)
			return nil
		}
		h := el.CreateElement("h" + strconv.Itoa(e.Depth+r.opts.HeadingOffset))
		if e.LocalID != "" {
			h.CreateElement("span").SetText(e.Number() + " ")
			h.CreateText(f.Value)
		} else {
			h.SetText(f.Value)
		}

	case doc.FieldNameSubtitle, doc.FieldNameAuthor, doc.FieldNameDate, doc.FieldNameNote:
		p := el.CreateElement("p")
		p.CreateAttr("class", f.Name.String())
		p.SetText(f.Value)

	case doc.FieldNameAbstract:
		div := el.CreateElement("div")
		div.CreateAttr("class", "abstract")
		div.CreateElement("p").SetText(f.Value)

	case doc.FieldNameLanguage:
		r.html.CreateAttr("xml:lang", f.Value)
		r.html.CreateAttr("lang", f.Value)

	case doc.FieldNameCaption:
		tag := "figcaption"
		if e.Kind == doc.KindTable {
			tag = "caption"
		}
		c := el.CreateElement(tag)
		if e.LocalID != "" && e.Label != nil {
			c.CreateElement("span").SetText(captionPrefix(e))
		}
		c.CreateText(f.Value)

	case doc.FieldNameEntry:
		dt := el.CreateElement("dt")
		dt.CreateAttr("id", citationAnchor(f.Key))
		dt.SetText("[" + strconv.Itoa(f.Number) + "]")
		el.CreateElement("dd").SetText(f.Value)

	case doc.FieldNameRow:
		r.rows[e] = el.CreateElement("tr")

	case doc.FieldNameLine:
		pre := r.code[e]
		if pre == nil {
			pre = el.CreateElement("pre")
			if e.Language != "" {
				pre.CreateAttr("class", "language-"+e.Language)
			}
			r.code[e] = pre
			pre.SetText(f.Value)
			return nil
		}
		pre.SetText(pre.Text() + "\n" + f.Value)

	default:
		return fmt.Errorf("xhtml: unexpected field %s", f.Name)
	}
	return nil
}

// captionPrefix is "Table 2: " and alike. Label was resolved when element
// was opened so its text is final.
func captionPrefix(e *doc.Element) string {
	return e.Label.ReferenceText() + ": "
}

func citationAnchor(key string) string {
	return "cite-" + slug.Make(key)
}

func (r *Renderer) Text(e *doc.Element, run doc.Run) error {
	el := r.nodes[e]
	if el == nil {
		return fmt.Errorf("xhtml: text for unknown element %s", e.Kind)
	}

	switch run.Kind {
	case doc.RunKindText:
		el.CreateText(run.Text)
	case doc.RunKindEmph:
		r.styled(el.CreateElement("em"), run.Style, false).SetText(run.Text)
	case doc.RunKindStrong:
		r.styled(el.CreateElement("strong"), run.Style, false).SetText(run.Text)
	case doc.RunKindMono:
		r.styled(el.CreateElement("code"), run.Style, false).SetText(run.Text)
	case doc.RunKindStyled:
		r.styled(el.CreateElement("span"), run.Style, true).SetText(run.Text)
	case doc.RunKindLink:
		a := el.CreateElement("a")
		a.CreateAttr("href", run.URL)
		a.SetText(run.Text)
	case doc.RunKindRef:
		a := el.CreateElement("a")
		a.CreateAttr("href", "#"+run.Label.Mark())
		a.CreateAttr("class", "ref")
		// text is set when document is finished
		r.refs = append(r.refs, pendingRef{a: a, l: run.Label})
	case doc.RunKindCite:
		a := el.CreateElement("a")
		a.CreateAttr("href", "#"+citationAnchor(run.Key))
		a.CreateAttr("class", "cite")
		a.SetText("[" + strconv.Itoa(run.Number) + "]")
	default:
		return fmt.Errorf("xhtml: unexpected run %s", run.Kind)
	}
	return nil
}

// styled marks element with class of the style. Root scope styles come
// from the stylesheet embedded as is, semantic elements (em, strong, code)
// need no class for them.
func (r *Renderer) styled(el *etree.Element, st *style.Style, rootClass bool) *etree.Element {
	if st == nil {
		return el
	}
	if st.Scope == style.RootScope {
		if rootClass {
			el.CreateAttr("class", className(st))
		}
		return el
	}
	if !slices.Contains(r.styles, st) {
		r.styles = append(r.styles, st)
	}
	el.CreateAttr("class", className(st))
	return el
}

func className(st *style.Style) string {
	if st.Scope == style.RootScope {
		return st.Name
	}
	return slug.Make(st.Scope + "-" + st.Name)
}

func (r *Renderer) Equation(e *doc.Element, fragment string) error {
	el := r.nodes[e]
	if el == nil {
		return fmt.Errorf("xhtml: equation for unknown element %s", e.Kind)
	}

	m := etree.NewDocument()
	if err := m.ReadFromString(`<math xmlns="` + nsMathML + `" display="block">` + fragment + `</math>`); err != nil {
		return fmt.Errorf("xhtml: bad math fragment: %w", err)
	}
	el.AddChild(m.Root())
	if e.LocalID != "" {
		n := el.CreateElement("span")
		n.CreateAttr("class", "eqno")
		n.SetText(e.Label.ReferenceText())
	}
	return nil
}

func (r *Renderer) Close(e *doc.Element) error {
	delete(r.rows, e)
	delete(r.code, e)
	return nil
}

// Finish fills cross references and writes document.
func (r *Renderer) Finish(w io.Writer) error {
	for _, ref := range r.refs {
		ref.a.SetText(ref.l.ReferenceText())
		if !ref.l.Resolved() {
			ref.a.RemoveAttr("href")
		}
	}
	r.writeStyles()

	if _, err := r.doc.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write xhtml: %w", err)
	}
	return nil
}

func (r *Renderer) writeStyles() {
	var sb strings.Builder
	if r.opts.Stylesheet != nil {
		r.opts.Stylesheet.WriteTo(&sb) //nolint:errcheck
	}
	for _, st := range r.styles {
		css.WriteRule(&sb, "."+className(st), st.Props) //nolint:errcheck
	}
	if sb.Len() == 0 {
		return
	}
	el := r.head.CreateElement("style")
	el.CreateAttr("type", "text/css")
	el.SetText(sb.String())
}
