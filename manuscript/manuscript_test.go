package manuscript

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"docwright/doc"
	"docwright/grid"
	"docwright/render/text"
)

const sample = `
title: Example
authors: [A. Author]
language: en
body:
  - paragraph: ["See ", {ref: tab1}, " and ", {cite: knuth}, "."]
  - section:
      label: intro
      title: Intro
      styles:
        warn: "color: red"
        note: "font-style: italic"
      body:
        - paragraph:
            - {styled: {style: warn, text: careful}}
            - " "
            - {link: {url: "https://example.com"}}
        - equation:
            label: eq1
            math:
              compare:
                name: "="
                args: [y, {fraction: [x, {sum: [1, {symbol: pi}]}]}]
  - table:
      label: tab1
      caption: Numbers
      columns: [left, right 4em]
      header: [[a, b]]
      body:
        - [{text: wide, colspan: 2, column: center}]
        - [x, "1"]
  - list:
      items:
        - one
        - text: ["two ", {emph: nested}]
          list: {ordered: true, items: [three]}
footer:
  notes: [A note.]
  bibliography:
    - {key: knuth, text: The Art of Computer Programming}
`

func build(t *testing.T, src string) (string, error) {
	t.Helper()

	m, err := Parse(strings.NewReader(src))
	if err != nil {
		return "", err
	}
	log := zaptest.NewLogger(t)
	out := &strings.Builder{}
	d, err := doc.New(doc.Options{Renderer: text.New(text.Options{}, log), Writer: out, Log: log, Strict: true})
	if err != nil {
		t.Fatalf("doc.New: %v", err)
	}
	err = m.Replay(context.Background(), d, log)
	return out.String(), err
}

func TestParse(t *testing.T) {
	m, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(m.Body) != 4 || m.Footer == nil || len(m.Footer.Bibliography) != 1 {
		t.Fatalf("unexpected structure: %+v", m)
	}

	sec := m.Body[1].Section
	if diff := cmp.Diff(Styles{{"warn", "color: red"}, {"note", "font-style: italic"}}, sec.Styles); diff != "" {
		t.Errorf("styles mismatch (-want +got):\n%s", diff)
	}

	wantMath := Expr{Op: doc.MathOpCompare, Arg: "=", Args: []Expr{
		{Op: doc.MathOpVariable, Arg: "y"},
		{Op: doc.MathOpFraction, Args: []Expr{
			{Op: doc.MathOpVariable, Arg: "x"},
			{Op: doc.MathOpSum, Args: []Expr{
				{Op: doc.MathOpNumber, Arg: "1"},
				{Op: doc.MathOpSymbol, Arg: "pi"},
			}},
		}},
	}}
	if diff := cmp.Diff(wantMath, sec.Body[1].Equation.Math); diff != "" {
		t.Errorf("math mismatch (-want +got):\n%s", diff)
	}

	tbl := m.Body[2].Table
	wantCols := []Column{{Align: grid.AlignLeft}, {Align: grid.AlignRight, Width: "4em"}}
	if diff := cmp.Diff(wantCols, tbl.Columns); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	wide := tbl.Body[0][0]
	if r, c := wide.spans(); r != 1 || c != 2 || wide.Column != "center" {
		t.Errorf("wide cell decoded as %+v", wide)
	}

	item := m.Body[3].List.Items[1]
	if len(item.Runs) != 2 || item.Runs[1].Kind != doc.RunKindEmph || item.List == nil || !item.List.Ordered {
		t.Errorf("list item decoded as %+v", item)
	}
}

func TestReplay(t *testing.T) {
	out, err := build(t, sample)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}

	for _, want := range []string{
		"\nSee Table 1 and [1].\n",
		"\n1 Intro\n=======\n",
		"\ncareful <https://example.com>\n",
		"    y = x/(1 + π)    (1.1)\n",
		"Table 1: Numbers\na | b\n--+--\nwide\nx | 1\n",
		"* one\n* two _nested_\n  1. three\n",
		"\nA note.\n",
		"[1] The Art of Computer Programming\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q\n%s", want, out)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"unknown field", "title: x\nbody: []\nauthor: y\n"},
		{"two keys in block", "title: x\nbody:\n  - {paragraph: a, list: {items: [b]}}\n"},
		{"unknown block", "title: x\nbody:\n  - {chapter: a}\n"},
		{"unknown run", "title: x\nbody:\n  - paragraph: [{blink: a}]\n"},
		{"unknown operator", "title: x\nbody:\n  - equation: {math: {integral: [a, b]}}\n"},
		{"bad column", "title: x\nbody:\n  - table: {columns: [middle]}\n"},
		{"bad cell column", "title: x\nbody:\n  - table: {columns: [left], body: [[{text: a, column: up}]]}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.src)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReplayErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			"undefined label",
			"title: x\nbody:\n  - paragraph: [{ref: nowhere}]\n",
			ErrUnknownLabel,
		},
		{
			"duplicate label",
			"title: x\nbody:\n  - {code: {label: a, lines: x}}\n  - {table: {label: a, columns: [left]}}\n",
			ErrDuplicateLabel,
		},
		{
			"dangling citation in strict mode",
			"title: x\nbody:\n  - paragraph: [{cite: nobody}]\n",
			doc.ErrUnresolved,
		},
		{
			"protocol",
			"title: x\nbody:\n  - paragraph: []\n",
			doc.ErrInvalidProtocolUse,
		},
		{
			"arity",
			"title: x\nbody:\n  - equation: {math: {fraction: [1]}}\n",
			doc.ErrInvalidProtocolUse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := build(t, tt.src)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestReplayCancelled(t *testing.T) {
	m, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	d, err := doc.New(doc.Options{Renderer: text.New(text.Options{}, nil), Writer: &strings.Builder{}})
	if err != nil {
		t.Fatalf("doc.New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := m.Replay(ctx, d, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
