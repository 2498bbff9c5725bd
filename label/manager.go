package label

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/maruel/natural"

	"docwright/utils/debug"
)

// DefaultPlaceholder is rendered for labels which were never resolved.
const DefaultPlaceholder = "???"

// DefaultTemplates are used to produce reference text from element number
// when configuration does not specify otherwise.
var DefaultTemplates = map[Kind]string{
	KindSection:   "Section {{ .Number }}",
	KindTable:     "Table {{ .Number }}",
	KindFigure:    "Figure {{ .Number }}",
	KindSubfigure: "Figure {{ .Number }}",
	KindEquation:  "({{ .Number }})",
	KindCode:      "Listing {{ .Number }}",
}

// Config defines manager behavior, zero value is usable.
type Config struct {
	// Placeholder is returned as reference text of labels without text.
	Placeholder string
	// Templates override DefaultTemplates per kind.
	Templates map[Kind]string
}

// Values is made available to reference text templates.
type Values struct {
	Kind   string
	Number string
	Mark   string
}

// Manager allocates and resolves labels of a single document.
type Manager struct {
	mu          sync.Mutex
	placeholder string
	templates   map[Kind]*template.Template
	counters    map[Kind]int
	labels      []*Label
}

// NewManager creates label manager. It fails only if one of the reference
// templates cannot be parsed.
func NewManager(cfg Config) (*Manager, error) {
	m := &Manager{
		placeholder: cfg.Placeholder,
		templates:   make(map[Kind]*template.Template, len(DefaultTemplates)),
		counters:    make(map[Kind]int),
	}
	if len(m.placeholder) == 0 {
		m.placeholder = DefaultPlaceholder
	}

	texts := maps.Clone(DefaultTemplates)
	maps.Copy(texts, cfg.Templates)

	funcMap := sprig.FuncMap()
	for kind, text := range texts {
		if !kind.IsValid() {
			return nil, fmt.Errorf("reference template for %s: %w", kind, ErrInvalidKind)
		}
		tmpl, err := template.New(kind.String()).Funcs(funcMap).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("unable to parse reference template for %s: %w", kind, err)
		}
		m.templates[kind] = tmpl
	}
	return m, nil
}

// Placeholder returns text used for labels without reference text.
func (m *Manager) Placeholder() string {
	return m.placeholder
}

// CreateLabel allocates new label of requested kind without reference text.
func (m *Manager) CreateLabel(kind Kind) (*Label, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unable to create label: %w", ErrInvalidKind)
	}
	return m.allocate(kind, "", true), nil
}

// CreateLabelWithText allocates new label with default reference text, which
// is returned until label is resolved.
func (m *Manager) CreateLabelWithText(kind Kind, text string) (*Label, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unable to create label: %w", ErrInvalidKind)
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("unable to create label: %w", ErrEmptyReferenceText)
	}
	return m.allocate(kind, text, true), nil
}

// allocate creates label with next mark of the kind. Unlisted labels are
// invisible to Labels and Unresolved until registered.
func (m *Manager) allocate(kind Kind, text string, listed bool) *Label {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters[kind]++
	l := &Label{
		kind:   kind,
		mark:   kind.prefix() + Alpha(m.counters[kind]),
		owner:  m,
		text:   text,
		listed: listed,
	}
	if listed {
		m.labels = append(m.labels, l)
	}
	return l
}

func (m *Manager) register(l *Label) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !l.listed {
		l.listed = true
		m.labels = append(m.labels, l)
	}
}

// Resolve binds label to constructed element of requested kind. When l is
// Auto fresh label is synthesized. Existing label must belong to this
// manager and have matching kind, its reference text is overwritten.
func (m *Manager) Resolve(l *Label, kind Kind, text string) (*Label, error) {
	if l == nil {
		return nil, ErrNilLabel
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("unable to resolve label: %w", ErrInvalidKind)
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("unable to resolve label %s: %w", l.mark, ErrEmptyReferenceText)
	}
	if l == Auto {
		l = m.allocate(kind, "", true)
	} else if err := m.check(l, kind); err != nil {
		return nil, err
	}
	l.set(text, true)
	m.register(l)
	return l, nil
}

// Reserve returns label element under construction is going to be bound
// to. For Auto fresh label is allocated, it stays unregistered until Bind,
// so reservation abandoned by failed construction is never reported.
func (m *Manager) Reserve(l *Label, kind Kind) (*Label, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unable to reserve label: %w", ErrInvalidKind)
	}
	if err := m.Check(l, kind); err != nil {
		return nil, err
	}
	if l == Auto {
		return m.allocate(kind, "", false), nil
	}
	return l, nil
}

// Bind resolves label to its constructed element. Unlike Resolve it refuses
// label which already has a target, one label never names two elements.
func (m *Manager) Bind(l *Label, kind Kind, text string) error {
	if l == nil {
		return ErrNilLabel
	}
	if l == Auto {
		return &ForeignLabelError{Mark: l.mark}
	}
	if len(text) == 0 {
		return fmt.Errorf("unable to bind label %s: %w", l.mark, ErrEmptyReferenceText)
	}
	if err := m.check(l, kind); err != nil {
		return err
	}

	l.mu.Lock()
	if l.resolved {
		l.mu.Unlock()
		return fmt.Errorf("unable to bind label %s: %w", l.mark, ErrAlreadyBound)
	}
	l.text, l.resolved = text, true
	l.mu.Unlock()

	m.register(l)
	return nil
}

// Check validates that l could be resolved as kind by this manager without
// changing anything. Auto always passes.
func (m *Manager) Check(l *Label, kind Kind) error {
	if l == nil {
		return ErrNilLabel
	}
	if l == Auto {
		return nil
	}
	return m.check(l, kind)
}

func (m *Manager) check(l *Label, kind Kind) error {
	if l.owner != m {
		return &ForeignLabelError{Mark: l.mark}
	}
	if l.kind != kind {
		return &TypeMismatchError{Mark: l.mark, Want: l.kind, Got: kind}
	}
	return nil
}

// SetReferenceText overwrites reference text without marking label resolved.
func (m *Manager) SetReferenceText(l *Label, text string) error {
	if l == nil {
		return ErrNilLabel
	}
	if len(text) == 0 {
		return fmt.Errorf("unable to set reference text for %s: %w", l.mark, ErrEmptyReferenceText)
	}
	if l == Auto || l.owner != m {
		return &ForeignLabelError{Mark: l.mark}
	}
	l.set(text, false)
	return nil
}

// Owns reports whether label was allocated by this manager.
func (m *Manager) Owns(l *Label) bool {
	return l != nil && l != Auto && l.owner == m
}

// ReferenceText renders reference text for element of given kind and number
// using configured template.
func (m *Manager) ReferenceText(kind Kind, number, mark string) (string, error) {
	tmpl, ok := m.templates[kind]
	if !ok {
		return "", fmt.Errorf("no reference template: %w", ErrInvalidKind)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, Values{Kind: kind.String(), Number: number, Mark: mark}); err != nil {
		return "", fmt.Errorf("unable to expand reference template for %s: %w", kind, err)
	}
	return buf.String(), nil
}

// Labels returns all labels allocated so far in allocation order.
func (m *Manager) Labels() []*Label {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.labels)
}

// Unresolved returns labels which have never been bound to an element.
func (m *Manager) Unresolved() []*Label {
	var out []*Label
	for _, l := range m.Labels() {
		if !l.Resolved() {
			out = append(out, l)
		}
	}
	return out
}

// String returns readable dump of all labels, for debugging only.
func (m *Manager) String() string {
	labels := m.Labels()
	byMark := make(map[string]*Label, len(labels))
	for _, l := range labels {
		byMark[l.mark] = l
	}
	keys := slices.Collect(maps.Keys(byMark))
	sort.Sort(natural.StringSlice(keys))

	tw := debug.NewTreeWriter()
	tw.Line(0, "Labels (%d)", len(labels))
	for _, k := range keys {
		l := byMark[k]
		tw.Line(1, "%s kind=%s resolved=%t", k, l.kind, l.Resolved())
		tw.TextBlock(2, "text", l.ReferenceText())
	}
	return tw.String()
}

// Alpha renders n (1 based) in bijective base-26: a..z, aa..az, ba...
func Alpha(n int) string {
	var buf []byte
	for n > 0 {
		n--
		buf = append(buf, byte('a'+n%26))
		n /= 26
	}
	slices.Reverse(buf)
	return string(buf)
}
