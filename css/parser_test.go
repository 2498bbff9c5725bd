package css_test

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"docwright/css"
)

func TestParser_ClassRules(t *testing.T) {
	p := css.NewParser(zaptest.NewLogger(t))

	sheet := p.Parse([]byte(`
.note { color: gray; font-size: 0.9em }
.warning {
  font-weight: bold;
  text-align: center;
}
`), "test.css")

	if len(sheet.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d: %+v", len(sheet.Rules), sheet.Rules)
	}

	note := sheet.Rules[0]
	if note.Class != "note" {
		t.Errorf("first rule class = %q, want note", note.Class)
	}
	size, ok := note.Properties["font-size"]
	if !ok {
		t.Fatal("font-size is missing")
	}
	if size.Value != 0.9 || size.Unit != "em" || !size.IsNumeric() {
		t.Errorf("font-size parsed as %+v", size)
	}
	if got := note.Properties["color"]; got.Keyword != "gray" || !got.IsKeyword() {
		t.Errorf("color parsed as %+v", got)
	}

	warning := sheet.Rules[1]
	if got := warning.Properties["text-align"].Keyword; got != "center" {
		t.Errorf("text-align = %q, want center", got)
	}
}

func TestParser_SkipsUnsupported(t *testing.T) {
	p := css.NewParser(zaptest.NewLogger(t))

	sheet := p.Parse([]byte(`
p { margin: 0 }
@media print { .hidden { display: none } }
.kept { color: red }
`))

	if len(sheet.Rules) != 1 || sheet.Rules[0].Class != "kept" {
		t.Fatalf("expected only .kept rule, got %+v", sheet.Rules)
	}
	if len(sheet.Warnings) < 2 {
		t.Errorf("expected warnings for element selector and at-rule, got %v", sheet.Warnings)
	}
}

func TestParser_Classes(t *testing.T) {
	p := css.NewParser(nil)

	sheet := p.Parse([]byte(`.item10 { color: red } .item2 { color: blue } .item1 { color: green }`))

	got := strings.Join(sheet.Classes(), ",")
	if got != "item1,item2,item10" {
		t.Errorf("Classes() = %q", got)
	}
}

func TestParser_ParseDeclarations(t *testing.T) {
	p := css.NewParser(zaptest.NewLogger(t))

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single", "color: red", "color: red"},
		{"sorted", "font-weight: bold; color: red", "color: red; font-weight: bold"},
		{"lower case names", "COLOR: red", "color: red"},
		{"dimension", "margin-left: 2em", "margin-left: 2em"},
		{"trailing semicolon", "color: red;", "color: red"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls, err := p.ParseDeclarations(tt.in)
			if err != nil {
				t.Fatalf("ParseDeclarations(%q): %v", tt.in, err)
			}
			if got := decls.String(); got != tt.want {
				t.Errorf("ParseDeclarations(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParser_ParseDeclarationsRejectsRules(t *testing.T) {
	p := css.NewParser(zaptest.NewLogger(t))

	_, err := p.ParseDeclarations(".x { color: red }")
	if !errors.Is(err, css.ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
}

func TestStylesheet_String(t *testing.T) {
	p := css.NewParser(nil)

	sheet := p.Parse([]byte(`.b { font-weight: bold; color: black }`))
	want := ".b {\n  color: black;\n  font-weight: bold;\n}\n"
	if got := sheet.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
