package text

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"docwright/grid"
)

type cell struct {
	p    grid.Placement
	text inlineText
}

type part struct {
	kind grid.Part
	rows [][]*cell
}

// table keeps cells until document is finished, column widths depend on
// text of every cell including references.
type table struct {
	defs    []grid.ColumnDef
	caption string
	parts   []*part
}

func newTable(defs []grid.ColumnDef) *table {
	return &table{defs: defs}
}

func (t *table) row(kind grid.Part) {
	if len(t.parts) == 0 || t.parts[len(t.parts)-1].kind != kind {
		t.parts = append(t.parts, &part{kind: kind})
	}
	p := t.parts[len(t.parts)-1]
	p.rows = append(p.rows, nil)
}

func (t *table) cell(pl grid.Placement) *inlineText {
	p := t.parts[len(t.parts)-1]
	c := &cell{p: pl}
	p.rows[len(p.rows)-1] = append(p.rows[len(p.rows)-1], c)
	return &c.text
}

func (t *table) widths(texts map[*cell]string) []int {
	w := make([]int, len(t.defs))
	for i := range w {
		w[i] = 1
	}
	var spanning []*cell
	for _, p := range t.parts {
		for _, row := range p.rows {
			for _, c := range row {
				if c.p.ColSpan > 1 {
					spanning = append(spanning, c)
					continue
				}
				w[c.p.Column] = max(w[c.p.Column], runewidth.StringWidth(texts[c]))
			}
		}
	}
	// spanning cells widen the last column they cover when needed
	for _, c := range spanning {
		have := spanWidth(w, c.p.Column, c.p.ColSpan)
		if need := runewidth.StringWidth(texts[c]); need > have {
			w[c.p.Column+c.p.ColSpan-1] += need - have
		}
	}
	return w
}

func spanWidth(w []int, col, span int) int {
	total := 3 * (span - 1)
	for _, n := range w[col : col+span] {
		total += n
	}
	return total
}

func align(s string, width int, a grid.Align) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	switch a {
	case grid.AlignRight:
		return strings.Repeat(" ", gap) + s
	case grid.AlignCenter:
		return strings.Repeat(" ", gap/2) + s + strings.Repeat(" ", gap-gap/2)
	}
	return s + strings.Repeat(" ", gap)
}

// render lays table out. Columns covered by cells spanning rows from above
// are left blank.
func (t *table) render(reference string) string {
	texts := make(map[*cell]string)
	for _, p := range t.parts {
		for _, row := range p.rows {
			for _, c := range row {
				texts[c] = strings.Join(strings.Fields(c.text.String()), " ")
			}
		}
	}
	w := t.widths(texts)

	var sb strings.Builder
	if t.caption != "" {
		sb.WriteString(reference + ": " + t.caption + "\n")
	} else {
		sb.WriteString(reference + "\n")
	}
	rule := make([]string, len(w))
	for i, n := range w {
		rule[i] = strings.Repeat("-", n)
	}

	for _, p := range t.parts {
		for _, row := range p.rows {
			starts := make(map[int]*cell, len(row))
			for _, c := range row {
				starts[c.p.Column] = c
			}
			var cols []string
			for col := 0; col < len(w); {
				c, ok := starts[col]
				if !ok {
					cols = append(cols, strings.Repeat(" ", w[col]))
					col++
					continue
				}
				a := t.defs[col].Align
				if c.p.Explicit {
					a = c.p.Def.Align
				}
				cols = append(cols, align(texts[c], spanWidth(w, col, c.p.ColSpan), a))
				col += c.p.ColSpan
			}
			sb.WriteString(strings.TrimRight(strings.Join(cols, " | "), " ") + "\n")
		}
		if p.kind == grid.PartHeader && len(p.rows) > 0 {
			sb.WriteString(strings.Join(rule, "-+-") + "\n")
		}
	}
	return sb.String()
}
