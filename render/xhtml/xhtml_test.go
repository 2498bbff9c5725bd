package xhtml

import (
	"errors"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap/zaptest"

	"docwright/doc"
	"docwright/grid"
	"docwright/label"
)

func ok(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// flatText concatenates all character data below e, including text of
// nested elements.
func flatText(e *etree.Element) string {
	var sb strings.Builder
	for _, tok := range e.Child {
		switch v := tok.(type) {
		case *etree.CharData:
			sb.WriteString(v.Data)
		case *etree.Element:
			sb.WriteString(flatText(v))
		}
	}
	return sb.String()
}

func render(t *testing.T, opts Options, build func(d *doc.Document, b *doc.Body)) *etree.Document {
	t.Helper()

	log := zaptest.NewLogger(t)
	out := &strings.Builder{}
	d, err := doc.New(doc.Options{Renderer: New(opts, log), Writer: out, Log: log})
	if err != nil {
		t.Fatalf("doc.New: %v", err)
	}
	h, err := d.Header()
	ok(t, err)
	ok(t, h.Title("Sample"))
	ok(t, h.Language("en"))
	ok(t, h.Close())
	b, err := d.Body()
	ok(t, err)
	build(d, b)
	ok(t, b.Close())
	ok(t, d.Close())

	res := etree.NewDocument()
	if err := res.ReadFromString(out.String()); err != nil {
		t.Fatalf("output is not well formed: %v\n%s", err, out.String())
	}
	return res
}

func TestRender_Skeleton(t *testing.T) {
	res := render(t, Options{ID: "0192a2b4-0000-7000-8000-000000000000"}, func(d *doc.Document, b *doc.Body) {
		s, err := b.Section(label.Auto)
		ok(t, err)
		ok(t, s.Title("Intro"))
		ok(t, s.Body())
		p, err := s.Paragraph()
		ok(t, err)
		ok(t, p.Text("a < b & "))
		ok(t, p.Emph("really"))
		ok(t, p.Close())
		ok(t, s.Close())
	})

	html := res.Root()
	if html.Tag != "html" || html.SelectAttrValue("xml:lang", "") != "en" {
		t.Fatalf("unexpected root %s lang=%q", html.Tag, html.SelectAttrValue("xml:lang", ""))
	}
	if got := res.FindElement("//head/title").Text(); got != "Sample" {
		t.Errorf("title = %q", got)
	}
	if el := res.FindElement("//head/meta[@name='identifier']"); el == nil ||
		el.SelectAttrValue("content", "") != "urn:uuid:0192a2b4-0000-7000-8000-000000000000" {
		t.Error("document identifier is missing")
	}
	sec := res.FindElement("//main/section[@id='sa']")
	if sec == nil {
		t.Fatal("section with label anchor is missing")
	}
	if h := sec.FindElement("h2"); h == nil || !strings.HasSuffix(h.FindElement("span").Text(), "1 ") {
		t.Errorf("numbered h2 heading expected")
	}
	p := sec.FindElement("p")
	if p.Text() != "a < b & " || p.FindElement("em").Text() != "really" {
		t.Errorf("paragraph content lost")
	}
}

func TestRender_TableAndReference(t *testing.T) {
	res := render(t, Options{}, func(d *doc.Document, b *doc.Body) {
		lbl, err := d.Labels().CreateLabel(label.KindTable)
		ok(t, err)

		p, err := b.Paragraph()
		ok(t, err)
		ok(t, p.Text("See "))
		ok(t, p.Ref(lbl))
		ok(t, p.Close())

		tbl, err := b.Table(lbl, []grid.ColumnDef{{Align: grid.AlignLeft}, {Align: grid.AlignRight, Width: "4em"}})
		ok(t, err)
		ok(t, tbl.Caption("Numbers"))
		hdr, err := tbl.Header()
		ok(t, err)
		ok(t, hdr.Row())
		for _, text := range []string{"a", "b"} {
			c, err := hdr.Cell(1, 1)
			ok(t, err)
			ok(t, c.Text(text))
			ok(t, c.Close())
		}
		ok(t, hdr.Close())
		body, err := tbl.Body()
		ok(t, err)
		ok(t, body.Row())
		c, err := body.CellWith(1, 2, grid.ColumnDef{Align: grid.AlignCenter})
		ok(t, err)
		ok(t, c.Text("wide"))
		ok(t, c.Close())
		ok(t, body.Close())
		ft, err := tbl.Footer()
		ok(t, err)
		ok(t, ft.Close())
		ok(t, tbl.Close())
	})

	a := res.FindElement("//main/p/a[@class='ref']")
	if a == nil || a.Text() != "Table 1" || a.SelectAttrValue("href", "") != "#ta" {
		t.Fatalf("forward reference not resolved: %v", a)
	}
	table := res.FindElement("//table[@id='ta']")
	if table == nil {
		t.Fatal("table is missing")
	}
	if got := flatText(table.FindElement("caption")); got != "Table 1: Numbers" {
		t.Errorf("caption text = %q", got)
	}
	if n := len(table.FindElements("colgroup/col")); n != 2 {
		t.Errorf("columns = %d", n)
	}
	if n := len(table.FindElements("thead/tr/th")); n != 2 {
		t.Errorf("header cells = %d", n)
	}
	td := table.FindElement("tbody/tr/td")
	if td.SelectAttrValue("colspan", "") != "2" || td.SelectAttrValue("style", "") != "text-align: center" {
		t.Errorf("spanning cell attributes: %v", td.Attr)
	}
	if table.FindElement("tfoot") == nil {
		t.Error("empty footer part must still be present")
	}
}

func TestRender_Equation(t *testing.T) {
	res := render(t, Options{}, func(d *doc.Document, b *doc.Body) {
		eq, err := b.Equation(label.Auto)
		ok(t, err)
		frac, err := eq.Fraction()
		ok(t, err)
		ok(t, frac.Variable("x"))
		ok(t, frac.Symbol("pi"))
		ok(t, frac.Close())
		ok(t, eq.Close())
	})

	div := res.FindElement("//div[@class='equation']")
	if div == nil {
		t.Fatal("equation is missing")
	}
	mfrac := div.FindElement("math/mfrac")
	if mfrac == nil || mfrac.FindElement("mi").Text() != "x" {
		t.Fatalf("fraction is missing")
	}
	if got := div.FindElement("span[@class='eqno']").Text(); got != "(1)" {
		t.Errorf("equation number = %q", got)
	}
}

func TestRender_StylesAndCitations(t *testing.T) {
	res := render(t, Options{}, func(d *doc.Document, b *doc.Body) {
		s, err := b.Section(label.Auto)
		ok(t, err)
		ok(t, s.Title("S"))
		if _, err := s.DefineStyle("warn", "color: red"); err != nil {
			t.Fatalf("DefineStyle: %v", err)
		}
		ok(t, s.Body())
		p, err := s.Paragraph()
		ok(t, err)
		ok(t, p.Styled("warn", "careful"))
		ok(t, p.Cite("Knuth 84"))
		ok(t, p.Close())
		ok(t, s.Close())
	})

	span := res.FindElement("//span[@class='sa-warn']")
	if span == nil || span.Text() != "careful" {
		t.Fatal("styled span is missing")
	}
	if st := res.FindElement("//head/style"); st == nil || !strings.Contains(st.Text(), ".sa-warn {") {
		t.Error("style rule is missing")
	}
	cite := res.FindElement("//a[@class='cite']")
	if cite == nil || cite.SelectAttrValue("href", "") != "#cite-knuth-84" || cite.Text() != "[1]" {
		t.Errorf("citation = %v", cite)
	}
}

func TestValidate(t *testing.T) {
	r := New(Options{HeadingOffset: 4}, nil)
	parent := &doc.Element{Kind: doc.KindSection}

	tests := []struct {
		name string
		e    *doc.Element
		ok   bool
	}{
		{"h6", &doc.Element{Kind: doc.KindSection, Depth: 2, Parent: parent}, true},
		{"h7", &doc.Element{Kind: doc.KindSection, Depth: 3, Parent: parent}, false},
		{"png", &doc.Element{Kind: doc.KindFigure, Path: "a/b.PNG", Parent: parent}, true},
		{"svg", &doc.Element{Kind: doc.KindSubfigure, Path: "b.svg", Parent: parent}, true},
		{"jpeg", &doc.Element{Kind: doc.KindFigure, Path: "b.jpeg", Parent: parent}, true},
		{"pdf", &doc.Element{Kind: doc.KindFigure, Path: "b.pdf", Parent: parent}, false},
		{"no extension", &doc.Element{Kind: doc.KindFigure, Path: "b", Parent: parent}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Validate(tt.e)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			var ue *doc.UnsupportedChildError
			if !tt.ok && !errors.As(err, &ue) {
				t.Errorf("expected UnsupportedChildError, got %v", err)
			}
		})
	}
}
