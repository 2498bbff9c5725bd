package label

import (
	"errors"
	"strings"
	"testing"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(Config{})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return m
}

func TestAlpha(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "a"},
		{2, "b"},
		{26, "z"},
		{27, "aa"},
		{28, "ab"},
		{52, "az"},
		{53, "ba"},
		{702, "zz"},
		{703, "aaa"},
	}
	for _, tt := range tests {
		if got := Alpha(tt.n); got != tt.want {
			t.Errorf("Alpha(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestCreateLabel_KindPreserved(t *testing.T) {
	m := newTestManager(t)
	for _, name := range KindNames() {
		kind := MustParseKind(name)
		t.Run(name, func(t *testing.T) {
			l, err := m.CreateLabel(kind)
			if err != nil {
				t.Fatalf("CreateLabel(%s) error = %v", kind, err)
			}
			if l.Kind() != kind {
				t.Errorf("Kind() = %s, want %s", l.Kind(), kind)
			}
			if l.Resolved() {
				t.Error("fresh label must not be resolved")
			}
		})
	}
}

func TestCreateLabel_InvalidKind(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.CreateLabel(Kind(42)); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("CreateLabel(42) error = %v, want ErrInvalidKind", err)
	}
}

func TestMarksUnique(t *testing.T) {
	m := newTestManager(t)
	seen := make(map[string]bool)
	for i := range 200 {
		kind := Kind(i % len(KindNames()))
		l, err := m.CreateLabel(kind)
		if err != nil {
			t.Fatalf("CreateLabel() error = %v", err)
		}
		if seen[l.Mark()] {
			t.Fatalf("duplicate mark %q", l.Mark())
		}
		seen[l.Mark()] = true
		for _, r := range l.Mark() {
			if r < 'a' || r > 'z' {
				t.Fatalf("mark %q contains non alphabetic rune", l.Mark())
			}
		}
	}
}

func TestMarkFormat(t *testing.T) {
	m := newTestManager(t)
	first, _ := m.CreateLabel(KindTable)
	second, _ := m.CreateLabel(KindTable)
	fig, _ := m.CreateLabel(KindFigure)

	if first.Mark() != "ta" || second.Mark() != "tb" || fig.Mark() != "fa" {
		t.Errorf("marks = %q, %q, %q; want ta, tb, fa", first.Mark(), second.Mark(), fig.Mark())
	}
}

func TestReferenceText_Placeholder(t *testing.T) {
	m := newTestManager(t)
	l, _ := m.CreateLabel(KindTable)
	if got := l.ReferenceText(); got != DefaultPlaceholder {
		t.Errorf("ReferenceText() = %q, want %q", got, DefaultPlaceholder)
	}

	custom, err := NewManager(Config{Placeholder: "[missing]"})
	if err != nil {
		t.Fatal(err)
	}
	l, _ = custom.CreateLabel(KindFigure)
	if got := l.ReferenceText(); got != "[missing]" {
		t.Errorf("ReferenceText() = %q, want %q", got, "[missing]")
	}
}

func TestReferenceText_ConstructorDefault(t *testing.T) {
	m := newTestManager(t)
	l, err := m.CreateLabelWithText(KindCode, "the listing")
	if err != nil {
		t.Fatalf("CreateLabelWithText() error = %v", err)
	}
	if got := l.ReferenceText(); got != "the listing" {
		t.Errorf("ReferenceText() = %q, want %q", got, "the listing")
	}
	if l.Resolved() {
		t.Error("label with default text must not be resolved")
	}
	if _, err := m.CreateLabelWithText(KindCode, ""); !errors.Is(err, ErrEmptyReferenceText) {
		t.Errorf("CreateLabelWithText(\"\") error = %v, want ErrEmptyReferenceText", err)
	}
}

func TestResolve_Auto(t *testing.T) {
	m := newTestManager(t)
	l, err := m.Resolve(Auto, KindSection, "Section 1")
	if err != nil {
		t.Fatalf("Resolve(Auto) error = %v", err)
	}
	if l == Auto {
		t.Fatal("Resolve(Auto) returned sentinel")
	}
	if !m.Owns(l) {
		t.Error("synthesized label not owned by manager")
	}
	if l.Kind() != KindSection || l.ReferenceText() != "Section 1" || !l.Resolved() {
		t.Errorf("unexpected synthesized label %v %q resolved=%t", l, l.ReferenceText(), l.Resolved())
	}
}

func TestResolve_ForwardReferenceLastWriteWins(t *testing.T) {
	m := newTestManager(t)
	l, _ := m.CreateLabel(KindTable)

	got, err := m.Resolve(l, KindTable, "Table 1")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != l {
		t.Error("Resolve() must return the same label")
	}
	if _, err := m.Resolve(l, KindTable, "Table 7"); err != nil {
		t.Fatalf("second Resolve() error = %v", err)
	}
	if l.ReferenceText() != "Table 7" {
		t.Errorf("ReferenceText() = %q, want last written %q", l.ReferenceText(), "Table 7")
	}
}

func TestResolve_Errors(t *testing.T) {
	m := newTestManager(t)
	other := newTestManager(t)
	table, _ := m.CreateLabel(KindTable)
	foreign, _ := other.CreateLabel(KindTable)

	tests := []struct {
		name   string
		label  *Label
		kind   Kind
		text   string
		target error
	}{
		{"nil label", nil, KindTable, "x", ErrNilLabel},
		{"empty text", table, KindTable, "", ErrEmptyReferenceText},
		{"type mismatch", table, KindFigure, "Figure 1", ErrOwnership},
		{"foreign", foreign, KindTable, "Table 1", ErrOwnership},
		{"invalid kind", table, Kind(99), "x", ErrInvalidKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Resolve(tt.label, tt.kind, tt.text)
			if !errors.Is(err, tt.target) {
				t.Errorf("Resolve() error = %v, want %v", err, tt.target)
			}
		})
	}

	var mismatch *TypeMismatchError
	_, err := m.Resolve(table, KindFigure, "Figure 1")
	if !errors.As(err, &mismatch) || mismatch.Want != KindTable || mismatch.Got != KindFigure {
		t.Errorf("Resolve() error = %v, want TypeMismatchError table/figure", err)
	}
	if table.Resolved() || table.ReferenceText() != DefaultPlaceholder {
		t.Error("failed Resolve() must not modify label")
	}
}

func TestSetReferenceText(t *testing.T) {
	m := newTestManager(t)
	other := newTestManager(t)
	l, _ := m.CreateLabel(KindEquation)
	foreign, _ := other.CreateLabel(KindEquation)

	if err := m.SetReferenceText(l, "(3)"); err != nil {
		t.Fatalf("SetReferenceText() error = %v", err)
	}
	if l.ReferenceText() != "(3)" {
		t.Errorf("ReferenceText() = %q", l.ReferenceText())
	}
	if l.Resolved() {
		t.Error("SetReferenceText must not resolve label")
	}

	var foreignErr *ForeignLabelError
	if err := m.SetReferenceText(foreign, "(1)"); !errors.As(err, &foreignErr) {
		t.Errorf("SetReferenceText(foreign) error = %v, want ForeignLabelError", err)
	}
	if err := m.SetReferenceText(Auto, "(1)"); !errors.As(err, &foreignErr) {
		t.Errorf("SetReferenceText(Auto) error = %v, want ForeignLabelError", err)
	}
	if err := m.SetReferenceText(l, ""); !errors.Is(err, ErrEmptyReferenceText) {
		t.Errorf("SetReferenceText(\"\") error = %v", err)
	}
	if err := m.SetReferenceText(nil, "x"); !errors.Is(err, ErrNilLabel) {
		t.Errorf("SetReferenceText(nil) error = %v", err)
	}
}

func TestUnresolved(t *testing.T) {
	m := newTestManager(t)
	a, _ := m.CreateLabel(KindTable)
	b, _ := m.CreateLabel(KindFigure)
	if _, err := m.Resolve(a, KindTable, "Table 1"); err != nil {
		t.Fatal(err)
	}
	got := m.Unresolved()
	if len(got) != 1 || got[0] != b {
		t.Errorf("Unresolved() = %v, want [%v]", got, b)
	}
}

func TestReferenceTextTemplates(t *testing.T) {
	m, err := NewManager(Config{Templates: map[Kind]string{
		KindTable: `Tab. {{ .Number | trimSuffix "." }}`,
	}})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	got, err := m.ReferenceText(KindTable, "2.1.", "ta")
	if err != nil {
		t.Fatalf("ReferenceText() error = %v", err)
	}
	if got != "Tab. 2.1" {
		t.Errorf("ReferenceText() = %q, want %q", got, "Tab. 2.1")
	}
	got, _ = m.ReferenceText(KindFigure, "3", "fa")
	if got != "Figure 3" {
		t.Errorf("default figure template = %q", got)
	}

	if _, err := NewManager(Config{Templates: map[Kind]string{KindTable: "{{ .Number"}}); err == nil {
		t.Error("NewManager() expected template parse error")
	}
}

func TestManagerString(t *testing.T) {
	m := newTestManager(t)
	for range 12 {
		if _, err := m.CreateLabel(KindTable); err != nil {
			t.Fatal(err)
		}
	}
	out := m.String()
	if !strings.HasPrefix(out, "Labels (12)\n") {
		t.Errorf("String() header unexpected:\n%s", out)
	}
	if strings.Index(out, "  tb ") > strings.Index(out, "  tl ") {
		t.Errorf("String() is not sorted:\n%s", out)
	}
}

func TestReserveAndBind(t *testing.T) {
	m := newTestManager(t)

	reserved, err := m.Reserve(Auto, KindTable)
	if err != nil {
		t.Fatalf("Reserve(Auto) error = %v", err)
	}
	if reserved == Auto || reserved.Kind() != KindTable {
		t.Fatalf("Reserve(Auto) = %v", reserved)
	}
	if n := len(m.Labels()); n != 0 {
		t.Errorf("reserved label must not be listed before Bind, got %d labels", n)
	}

	// abandoned reservation is never reported
	if _, err := m.Reserve(Auto, KindTable); err != nil {
		t.Fatal(err)
	}
	if err := m.Bind(reserved, KindTable, "Table 1"); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if got := m.Labels(); len(got) != 1 || got[0] != reserved {
		t.Errorf("Labels() = %v, want [%v]", got, reserved)
	}
	if len(m.Unresolved()) != 0 {
		t.Errorf("Unresolved() = %v", m.Unresolved())
	}

	if err := m.Bind(reserved, KindTable, "Table 2"); !errors.Is(err, ErrAlreadyBound) {
		t.Errorf("second Bind() error = %v, want ErrAlreadyBound", err)
	}
	if got := reserved.ReferenceText(); got != "Table 1" {
		t.Errorf("failed Bind() changed text to %q", got)
	}
	// Resolve keeps last write wins
	if _, err := m.Resolve(reserved, KindTable, "Table 2"); err != nil {
		t.Fatal(err)
	}
	if got := reserved.ReferenceText(); got != "Table 2" {
		t.Errorf("ReferenceText() = %q, want Table 2", got)
	}
}

func TestReserveAndBind_Errors(t *testing.T) {
	m := newTestManager(t)
	other := newTestManager(t)
	foreign, _ := other.CreateLabel(KindTable)
	fig, _ := m.CreateLabel(KindFigure)

	if _, err := m.Reserve(nil, KindTable); !errors.Is(err, ErrNilLabel) {
		t.Errorf("Reserve(nil) error = %v", err)
	}
	if _, err := m.Reserve(foreign, KindTable); !errors.Is(err, ErrOwnership) {
		t.Errorf("Reserve(foreign) error = %v", err)
	}
	var mismatch *TypeMismatchError
	if _, err := m.Reserve(fig, KindTable); !errors.As(err, &mismatch) {
		t.Errorf("Reserve(mismatch) error = %v", err)
	}
	if err := m.Bind(Auto, KindTable, "x"); !errors.Is(err, ErrOwnership) {
		t.Errorf("Bind(Auto) error = %v", err)
	}
	if err := m.Bind(fig, KindFigure, ""); !errors.Is(err, ErrEmptyReferenceText) {
		t.Errorf("Bind(\"\") error = %v", err)
	}
	if fig.Resolved() {
		t.Error("failed Bind() resolved label")
	}
}
