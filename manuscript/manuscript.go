// Package manuscript defines YAML build script of a document and replays it
// onto doc.Document.
//
// Manuscript is the ordered sequence of document calls expressed as data:
// blocks are opened, populated and closed in the order they appear. Labels
// are referenced by name, every name maps to a single label created on its
// first mention, so references may point to elements defined later.
package manuscript

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"docwright/doc"
	"docwright/grid"
)

// ErrSyntax is wrapped by all manuscript decoding errors.
var ErrSyntax = errors.New("manuscript syntax error")

func syntaxError(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, n.Line, fmt.Sprintf(format, args...))
}

// Manuscript is the whole document.
type Manuscript struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle,omitempty"`
	Authors  []string `yaml:"authors,omitempty"`
	Date     string   `yaml:"date,omitempty"`
	Abstract string   `yaml:"abstract,omitempty"`
	Language string   `yaml:"language,omitempty"`
	Body     []Block  `yaml:"body"`
	Footer   *Footer  `yaml:"footer,omitempty"`
}

// Footer holds notes and bibliography.
type Footer struct {
	Notes        []string `yaml:"notes,omitempty"`
	Bibliography []Entry  `yaml:"bibliography,omitempty"`
}

// Entry is a bibliography entry.
type Entry struct {
	Key  string `yaml:"key"`
	Text string `yaml:"text"`
}

// Block is a mapping with exactly one key naming block kind.
type Block struct {
	Section   *Section  `yaml:"section,omitempty"`
	Paragraph Inline    `yaml:"paragraph,omitempty"`
	Figure    *Figure   `yaml:"figure,omitempty"`
	Figures   *Series   `yaml:"figures,omitempty"`
	Table     *Table    `yaml:"table,omitempty"`
	Code      *Code     `yaml:"code,omitempty"`
	Equation  *Equation `yaml:"equation,omitempty"`
	List      *List     `yaml:"list,omitempty"`
}

func (b *Block) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return syntaxError(n, "block must be a mapping with single key")
	}
	type plain Block
	if err := n.Decode((*plain)(b)); err != nil {
		return err
	}
	set := b.Section != nil || b.Paragraph != nil || b.Figure != nil || b.Figures != nil ||
		b.Table != nil || b.Code != nil || b.Equation != nil || b.List != nil
	if !set {
		return syntaxError(n, "unknown or empty block %q", n.Content[0].Value)
	}
	return nil
}

// Section is a titled block container.
type Section struct {
	Label  string  `yaml:"label,omitempty"`
	Title  string  `yaml:"title"`
	Styles Styles  `yaml:"styles,omitempty"`
	Body   []Block `yaml:"body"`
}

// StyleDef is a named set of CSS declarations.
type StyleDef struct {
	Name         string
	Declarations string
}

// Styles keep definition order of the mapping they were decoded from.
type Styles []StyleDef

func (s *Styles) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return syntaxError(n, "styles must be a mapping of name to declarations")
	}
	for i := 0; i < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return syntaxError(v, "declarations of style %q must be a string", k.Value)
		}
		*s = append(*s, StyleDef{Name: k.Value, Declarations: v.Value})
	}
	return nil
}

// Figure is a single graphics file, it is used for series members as well.
type Figure struct {
	Label   string `yaml:"label,omitempty"`
	Path    string `yaml:"path"`
	Caption string `yaml:"caption"`
}

// Series is a group of subfigures.
type Series struct {
	Label   string   `yaml:"label,omitempty"`
	Caption string   `yaml:"caption"`
	Figures []Figure `yaml:"figures"`
}

// Table is decoded with every row as a list of cells.
type Table struct {
	Label   string   `yaml:"label,omitempty"`
	Caption string   `yaml:"caption,omitempty"`
	Columns []Column `yaml:"columns"`
	Styles  Styles   `yaml:"styles,omitempty"`
	Header  [][]Cell `yaml:"header,omitempty"`
	Body    [][]Cell `yaml:"body,omitempty"`
	Footer  [][]Cell `yaml:"footer,omitempty"`
}

// Column is written as "align [width]".
type Column grid.ColumnDef

func (c *Column) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return syntaxError(n, "column must be a string")
	}
	def, err := parseColumn(n.Value)
	if err != nil {
		return syntaxError(n, "%v", err)
	}
	*c = Column(def)
	return nil
}

func parseColumn(s string) (grid.ColumnDef, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return grid.ColumnDef{}, fmt.Errorf("column %q is not \"align [width]\"", s)
	}
	align, err := grid.ParseAlign(fields[0])
	if err != nil {
		return grid.ColumnDef{}, err
	}
	def := grid.ColumnDef{Align: align}
	if len(fields) == 2 {
		def.Width = fields[1]
	}
	return def, nil
}

// Cell is either a string or a mapping with runs and spans.
type Cell struct {
	Runs    Inline `yaml:"text"`
	RowSpan int    `yaml:"rowspan,omitempty"`
	ColSpan int    `yaml:"colspan,omitempty"`
	// Column overrides presentation of the spanned columns.
	Column string `yaml:"column,omitempty"`
}

func (c *Cell) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		c.Runs = Inline{{Kind: doc.RunKindText, Text: n.Value}}
		return nil
	}
	type plain Cell
	if err := n.Decode((*plain)(c)); err != nil {
		return err
	}
	if c.Column != "" {
		if _, err := parseColumn(c.Column); err != nil {
			return syntaxError(n, "%v", err)
		}
	}
	return nil
}

func (c *Cell) spans() (int, int) {
	return max(c.RowSpan, 1), max(c.ColSpan, 1)
}

// Code lines are kept as a single block string.
type Code struct {
	Label    string `yaml:"label,omitempty"`
	Language string `yaml:"language,omitempty"`
	Caption  string `yaml:"caption,omitempty"`
	Lines    string `yaml:"lines"`
}

func (c *Code) lines() []string {
	return strings.Split(strings.TrimSuffix(c.Lines, "\n"), "\n")
}

// Equation holds single math expression.
type Equation struct {
	Label string `yaml:"label,omitempty"`
	Math  Expr   `yaml:"math"`
}

// List items are inline content or mapping with nested list.
type List struct {
	Ordered bool   `yaml:"ordered,omitempty"`
	Items   []Item `yaml:"items"`
}

// Item is a list item.
type Item struct {
	Runs Inline `yaml:"text"`
	List *List  `yaml:"list,omitempty"`
}

func (it *Item) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return n.Decode(&it.Runs)
	}
	type plain Item
	return n.Decode((*plain)(it))
}

// Inline is a list of runs, single string is a single text run.
type Inline []Run

func (in *Inline) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*in = Inline{{Kind: doc.RunKindText, Text: n.Value}}
		return nil
	}
	var runs []Run
	if err := n.Decode(&runs); err != nil {
		return err
	}
	*in = append(Inline{}, runs...)
	return nil
}

// Run is a string or a single key mapping naming run kind.
type Run struct {
	Kind   doc.RunKind
	Text   string
	URL    string // link
	Style  string // styled
	Target string // ref label name or cite key
}

func (r *Run) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*r = Run{Kind: doc.RunKindText, Text: n.Value}
		return nil
	}
	key, v, err := single(n)
	if err != nil {
		return err
	}
	switch key {
	case "emph", "strong", "mono", "ref", "cite":
		if v.Kind != yaml.ScalarNode {
			return syntaxError(v, "%s takes a string", key)
		}
		kind, _ := doc.ParseRunKind(key)
		*r = Run{Kind: kind, Text: v.Value}
		if kind == doc.RunKindRef || kind == doc.RunKindCite {
			*r = Run{Kind: kind, Target: v.Value}
		}
	case "link":
		var l struct {
			URL  string `yaml:"url"`
			Text string `yaml:"text,omitempty"`
		}
		if err := v.Decode(&l); err != nil {
			return err
		}
		*r = Run{Kind: doc.RunKindLink, URL: l.URL, Text: l.Text}
	case "styled":
		var s struct {
			Style string `yaml:"style"`
			Text  string `yaml:"text"`
		}
		if err := v.Decode(&s); err != nil {
			return err
		}
		*r = Run{Kind: doc.RunKindStyled, Style: s.Style, Text: s.Text}
	default:
		return syntaxError(n, "unknown run %q", key)
	}
	return nil
}

// single returns key and value of a mapping with exactly one entry.
func single(n *yaml.Node) (string, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", nil, syntaxError(n, "expected mapping with single key")
	}
	return n.Content[0].Value, n.Content[1], nil
}

// Expr is a math expression. Plain scalars are numbers when they look like
// numbers and variables otherwise.
type Expr struct {
	Op   doc.MathOp
	Arg  string // leaf text, relation or function name
	Args []Expr
}

func (e *Expr) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		e.Op = doc.MathOpVariable
		if _, err := strconv.ParseFloat(strings.ReplaceAll(n.Value, ",", "."), 64); err == nil {
			e.Op = doc.MathOpNumber
		}
		e.Arg = n.Value
		return nil
	}

	key, v, err := single(n)
	if err != nil {
		return err
	}
	op, err := doc.ParseMathOp(key)
	if err != nil {
		return syntaxError(n, "unknown math operator %q", key)
	}
	e.Op = op

	switch op {
	case doc.MathOpNumber, doc.MathOpVariable, doc.MathOpSymbol:
		if v.Kind != yaml.ScalarNode {
			return syntaxError(v, "%s takes a string", key)
		}
		e.Arg = v.Value
	case doc.MathOpCompare, doc.MathOpApply:
		var call struct {
			Name string `yaml:"name"`
			Args []Expr `yaml:"args"`
		}
		if err := v.Decode(&call); err != nil {
			return err
		}
		e.Arg, e.Args = call.Name, call.Args
	default:
		// unary operators take argument itself, others a list
		if v.Kind != yaml.SequenceNode {
			var arg Expr
			if err := v.Decode(&arg); err != nil {
				return err
			}
			e.Args = []Expr{arg}
			return nil
		}
		return v.Decode(&e.Args)
	}
	return nil
}

// Parse decodes manuscript. Unknown fields are errors.
func Parse(r io.Reader) (*Manuscript, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manuscript
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty manuscript", ErrSyntax)
		}
		return nil, fmt.Errorf("unable to decode manuscript: %w", err)
	}
	return &m, nil
}
