package css

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/maruel/natural"
)

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.2em", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "pt", etc.
	Keyword string  // Keyword if applicable: "bold", "italic", "center", etc.
}

// IsNumeric returns true if the value has a numeric component, including
// explicit zero like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	if v.Raw != "" && v.Keyword == "" {
		first := rune(v.Raw[0])
		if unicode.IsDigit(first) || first == '.' || first == '-' || first == '+' {
			return true
		}
	}
	return false
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// Declarations maps property name to its value.
type Declarations map[string]Value

// String renders declarations in inline form sorted by property name:
// "color: red; font-weight: bold".
func (d Declarations) String() string {
	var sb strings.Builder
	for i, name := range d.names() {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(d[name].Raw)
	}
	return sb.String()
}

func (d Declarations) names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Rule is a class rule: ".name { ... }".
type Rule struct {
	Class      string
	Properties Declarations
}

// Stylesheet keeps class rules in source order.
type Stylesheet struct {
	Rules    []Rule
	Warnings []string
}

// Classes returns class names defined in the stylesheet in natural order.
func (s *Stylesheet) Classes() []string {
	names := make([]string, 0, len(s.Rules))
	for _, r := range s.Rules {
		if !slices.Contains(names, r.Class) {
			names = append(names, r.Class)
		}
	}
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})
	return names
}

// WriteTo writes stylesheet as CSS text.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := range s.Rules {
		n, err := WriteRule(w, "."+s.Rules[i].Class, s.Rules[i].Properties)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// WriteRule writes single rule with properties sorted alphabetically.
func WriteRule(w io.Writer, selector string, props Declarations) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, name := range props.names() {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", name, props[name].Raw)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
