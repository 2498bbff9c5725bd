package text

import (
	"strings"
	"testing"

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

func render(t *testing.T, opts Options, build func(d *doc.Document, b *doc.Body)) string {
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
	ok(t, h.Author("Ann"))
	ok(t, h.Close())
	b, err := d.Body()
	ok(t, err)
	build(d, b)
	ok(t, b.Close())
	ok(t, d.Close())
	return out.String()
}

func paragraph(t *testing.T, b interface {
	Paragraph() (*doc.Paragraph, error)
}, text string) {
	t.Helper()
	p, err := b.Paragraph()
	ok(t, err)
	ok(t, p.Text(text))
	ok(t, p.Close())
}

func TestRender_SectionAndTable(t *testing.T) {
	out := render(t, Options{}, func(d *doc.Document, b *doc.Body) {
		lbl, err := d.Labels().CreateLabel(label.KindTable)
		ok(t, err)

		s, err := b.Section(label.Auto)
		ok(t, err)
		ok(t, s.Title("Intro"))
		ok(t, s.Body())

		p, err := s.Paragraph()
		ok(t, err)
		ok(t, p.Text("See "))
		ok(t, p.Ref(lbl))
		ok(t, p.Text("."))
		ok(t, p.Close())

		tbl, err := s.Table(lbl, []grid.ColumnDef{{Align: grid.AlignLeft}, {Align: grid.AlignRight}})
		ok(t, err)
		ok(t, tbl.Caption("Data"))
		hdr, err := tbl.Header()
		ok(t, err)
		ok(t, hdr.Row())
		for _, text := range []string{"name", "value"} {
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
		ok(t, c.Text("total"))
		ok(t, c.Close())
		ok(t, body.Row())
		for _, text := range []string{"a", "1"} {
			c, err := body.Cell(1, 1)
			ok(t, err)
			ok(t, c.Text(text))
			ok(t, c.Close())
		}
		ok(t, body.Close())
		ft, err := tbl.Footer()
		ok(t, err)
		ok(t, ft.Close())
		ok(t, tbl.Close())

		ok(t, s.Close())
	})

	want := "Sample\n######\nby Ann\n" +
		"\n1 Intro\n=======\n" +
		"\nSee Table 1.1.\n" +
		"\nTable 1.1: Data\n" +
		"name | value\n" +
		"-----+------\n" +
		"   total\n" +
		"a    |     1\n"
	if out != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestRender_RowSpanLeavesBlank(t *testing.T) {
	out := render(t, Options{}, func(d *doc.Document, b *doc.Body) {
		tbl, err := b.Table(label.Auto, []grid.ColumnDef{{}, {}})
		ok(t, err)
		hdr, err := tbl.Header()
		ok(t, err)
		ok(t, hdr.Close())
		body, err := tbl.Body()
		ok(t, err)
		ok(t, body.Row())
		c, err := body.CellWith(2, 1, grid.ColumnDef{})
		ok(t, err)
		ok(t, c.Text("x"))
		ok(t, c.Close())
		c, err = body.Cell(1, 1)
		ok(t, err)
		ok(t, c.Text("y"))
		ok(t, c.Close())
		ok(t, body.Row())
		c, err = body.Cell(1, 1)
		ok(t, err)
		ok(t, c.Text("z"))
		ok(t, c.Close())
		ok(t, body.Close())
		ft, err := tbl.Footer()
		ok(t, err)
		ok(t, ft.Close())
		ok(t, tbl.Close())
	})

	if !strings.HasSuffix(out, "\nTable 1\nx | y\n  | z\n") {
		t.Errorf("unexpected table:\n%s", out)
	}
}

func TestRender_Lists(t *testing.T) {
	out := render(t, Options{}, func(d *doc.Document, b *doc.Body) {
		l, err := b.List(false)
		ok(t, err)
		it, err := l.Item()
		ok(t, err)
		ok(t, it.Text("one"))
		nested, err := it.List(true)
		ok(t, err)
		for _, text := range []string{"two", "three"} {
			n, err := nested.Item()
			ok(t, err)
			ok(t, n.Text(text))
			ok(t, n.Close())
		}
		ok(t, nested.Close())
		ok(t, it.Close())
		it, err = l.Item()
		ok(t, err)
		ok(t, it.Strong("four"))
		ok(t, it.Close())
		ok(t, l.Close())
	})

	want := "\n* one\n  1. two\n  2. three\n* *four*\n"
	if !strings.HasSuffix(out, want) {
		t.Errorf("unexpected list:\n%s", out)
	}
}

func TestRender_Blocks(t *testing.T) {
	out := render(t, Options{}, func(d *doc.Document, b *doc.Body) {
		eq, err := b.Equation(label.Auto)
		ok(t, err)
		cmp, err := eq.Compare("<=")
		ok(t, err)
		ok(t, cmp.Variable("y"))
		frac, err := cmp.Fraction()
		ok(t, err)
		ok(t, frac.Variable("x"))
		sum, err := frac.Sum()
		ok(t, err)
		ok(t, sum.Number("1"))
		ok(t, sum.Symbol("pi"))
		ok(t, sum.Close())
		ok(t, frac.Close())
		ok(t, cmp.Close())
		ok(t, eq.Close())

		code, err := b.Code(label.Auto, "go")
		ok(t, err)
		ok(t, code.Caption("Main"))
		ok(t, code.Line("package main"))
		ok(t, code.Line(""))
		ok(t, code.Line("func main() {}"))
		ok(t, code.Close())

		fs, err := b.FigureSeries(label.Auto)
		ok(t, err)
		for _, path := range []string{"a.png", "b.png"} {
			f, err := fs.SubFigure(label.Auto, path)
			ok(t, err)
			ok(t, f.Caption("part "+path[:1]))
			ok(t, f.Close())
		}
		ok(t, fs.Caption("Both"))
		ok(t, fs.Close())
	})

	for _, want := range []string{
		"\n    y ≤ x/(1 + π)    (1)\n",
		"\nListing 1: Main\n\n    package main\n    \n    func main() {}\n",
		"  (a) part a <a.png>\n  (b) part b <b.png>\n[Figure 1: Both]\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q\n%s", want, out)
		}
	}
}

func TestRender_Wrap(t *testing.T) {
	out := render(t, Options{Width: 20}, func(d *doc.Document, b *doc.Body) {
		paragraph(t, b, "The quick brown fox jumps over the lazy dog")
	})

	if !strings.HasSuffix(out, "\nThe quick brown fox\njumps over the lazy\ndog\n") {
		t.Errorf("unexpected wrapping:\n%s", out)
	}
}

func TestRender_SentencePerLine(t *testing.T) {
	out := render(t, Options{SentencePerLine: true}, func(d *doc.Document, b *doc.Body) {
		paragraph(t, b, "Hello there. How are you? I am fine.")
	})

	if !strings.HasSuffix(out, "\nHello there.\nHow are you?\nI am fine.\n") {
		t.Errorf("unexpected sentences:\n%s", out)
	}
}

func TestWrapIndent(t *testing.T) {
	r := New(Options{Width: 12}, nil)

	got := r.wrap("alpha beta gamma", "  ", "1. ")
	want := "  1. alpha\n     beta\n     gamma"
	if got != want {
		t.Errorf("wrap = %q, want %q", got, want)
	}
}
