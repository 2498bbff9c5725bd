// Package latex streams document as LaTeX source of the article class.
//
// Output goes to sink.Buffer, pieces which depend on label resolution
// (references, caption and equation numbers, style macros in the preamble)
// are written as deferred segments and get their text when document is
// finished. Element numbers are produced by document, so all headings and
// captions are unnumbered in LaTeX terms and carry explicit numbers.
package latex

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"github.com/h2non/filetype"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"docwright/common"
	"docwright/doc"
	"docwright/grid"
	"docwright/label"
	"docwright/sink"
	"docwright/style"
)

// DefaultClass is used when Options.Class is empty.
const DefaultClass = "article"

var headings = []string{"section", "subsection", "subsubsection", "paragraph", "subparagraph"}

const maxListDepth = 4

var packages = []string{
	`\usepackage[utf8]{inputenc}`,
	`\usepackage[T1]{fontenc}`,
	`\usepackage{amsmath}`,
	`\usepackage{graphicx}`,
	`\usepackage{array}`,
	`\usepackage{multirow}`,
	`\usepackage{caption}`,
	`\usepackage{xcolor}`,
	`\usepackage{hyperref}`,
}

// Options of the LaTeX renderer.
type Options struct {
	Class string
}

type header struct {
	title    string
	subtitle string
	authors  []string
	date     string
	abstract string
	babel    string
}

type row struct {
	cursor  int
	entries int
	open    bool
}

// Renderer writes LaTeX source.
type Renderer struct {
	log  *zap.Logger
	opts Options
	out  *sink.Buffer

	hdr    header
	rows   map[*doc.Element]*row
	cells  map[*doc.Element]string // closing braces of the cell
	code   map[*doc.Element]bool   // verbatim started
	styles []*style.Style
}

// New creates renderer. Zero options are valid.
func New(opts Options, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Class == "" {
		opts.Class = DefaultClass
	}
	return &Renderer{
		log:   log.Named("latex"),
		opts:  opts,
		out:   sink.New(),
		rows:  make(map[*doc.Element]*row),
		cells: make(map[*doc.Element]string),
		code:  make(map[*doc.Element]bool),
	}
}

func (r *Renderer) Format() common.OutputFmt {
	return common.OutputFmtLatex
}

var encoder = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"{", `\{`,
	"}", `\}`,
	"$", `\$`,
	"&", `\&`,
	"#", `\#`,
	"_", `\_`,
	"%", `\%`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// Encode escapes LaTeX special characters.
func (r *Renderer) Encode(raw string) string {
	return encoder.Replace(raw)
}

func (r *Renderer) write(parts ...string) {
	for _, s := range parts {
		r.out.WriteString(s) //nolint:errcheck
	}
}

// reference writes text label will have when document is finished.
func (r *Renderer) reference(l *label.Label) {
	r.out.WriteDeferred(func() string {
		return r.Encode(l.ReferenceText())
	})
}

func unsupported(e *doc.Element, format string, args ...any) error {
	return &doc.UnsupportedChildError{
		Parent: e.Parent.Kind,
		Child:  e.Kind,
		Reason: fmt.Sprintf(format, args...),
	}
}

// Validate refuses elements LaTeX article cannot express.
func (r *Renderer) Validate(e *doc.Element) error {
	switch e.Kind {
	case doc.KindSection:
		if e.Depth > len(headings) {
			return unsupported(e, "section depth %d exceeds %s", e.Depth, headings[len(headings)-1])
		}
	case doc.KindList:
		depth := 1
		for p := e.Parent; p != nil; p = p.Parent {
			if p.Kind == doc.KindList {
				depth++
			}
		}
		if depth > maxListDepth {
			return unsupported(e, "list nesting %d exceeds %d", depth, maxListDepth)
		}
	case doc.KindFigure, doc.KindSubfigure:
		if !isGraphics(e.Path) {
			return unsupported(e, "%q could not be included", e.Path)
		}
	}
	return nil
}

// isGraphics checks path extension against what pdflatex includes.
func isGraphics(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "jpeg" {
		ext = "jpg"
	}
	switch ext {
	case "png", "jpg", "pdf":
		return filetype.IsSupported(ext)
	}
	return false
}

func (r *Renderer) Open(e *doc.Element) error {
	switch e.Kind {
	case doc.KindDocument:
		r.write(`\documentclass{`, r.opts.Class, "}\n")
		for _, p := range packages {
			r.write(p, "\n")
		}
		r.out.WriteDeferred(r.styleMacros)

	case doc.KindHeader, doc.KindBody:
	case doc.KindFooter:
		r.write("\n")
	case doc.KindBibliography:
		r.write(`\begin{thebibliography}{99}`, "\n")

	case doc.KindSection, doc.KindParagraph:
	case doc.KindFigure:
		r.write(`\begin{figure}[htbp]`, "\n", `\centering`, "\n")
		r.graphics(e, `\linewidth`)
	case doc.KindFigureSeries:
		r.write(`\begin{figure}[htbp]`, "\n", `\centering`, "\n")
	case doc.KindSubfigure:
		r.write(`\begin{minipage}[b]{0.45\linewidth}`, "\n", `\centering`, "\n")
		r.graphics(e, `\linewidth`)

	case doc.KindTable:
		r.write(`\begin{table}[htbp]`, "\n", `\centering`, "\n")
	case doc.KindTableSection:
		if e.Part == grid.PartHeader {
			r.write(`\begin{tabular}{`, columnSpec(e.Columns), "}\n", `\hline`, "\n")
		}
	case doc.KindCell:
		r.openCell(e)

	case doc.KindCode:
		r.write(`\begin{flushleft}`, "\n")
		r.anchor(e.Label)
	case doc.KindEquation:

	case doc.KindList:
		if e.Ordered {
			r.write(`\begin{enumerate}`, "\n")
		} else {
			r.write(`\begin{itemize}`, "\n")
		}
	case doc.KindItem:
		r.write(`\item `)

	default:
		return fmt.Errorf("latex: unexpected element %s", e.Kind)
	}
	return nil
}

// anchor makes label a hyperlink target.
func (r *Renderer) anchor(l *label.Label) {
	r.write(`\phantomsection\label{`, l.Mark(), "}\n")
}

func (r *Renderer) graphics(e *doc.Element, width string) {
	r.write(`\includegraphics[width=`, width, `]{`, e.Path, "}\n")
}

func columnSpec(defs []grid.ColumnDef) string {
	var sb strings.Builder
	for _, d := range defs {
		sb.WriteString(columnType(d))
	}
	return sb.String()
}

func columnType(d grid.ColumnDef) string {
	if d.Width == "" {
		switch d.Align {
		case grid.AlignCenter:
			return "c"
		case grid.AlignRight:
			return "r"
		}
		return "l"
	}
	width := d.Width
	if pct, ok := strings.CutSuffix(width, "%"); ok {
		if v, err := strconv.ParseFloat(pct, 64); err == nil {
			width = strconv.FormatFloat(v/100, 'f', 2, 64) + `\linewidth`
		}
	}
	switch d.Align {
	case grid.AlignLeft:
		return `>{\raggedright\arraybackslash}p{` + width + "}"
	case grid.AlignCenter:
		return `>{\centering\arraybackslash}p{` + width + "}"
	case grid.AlignRight:
		return `>{\raggedleft\arraybackslash}p{` + width + "}"
	}
	return "p{" + width + "}"
}

// separator starts next entry of the row. Columns covered by cells spanning
// rows from above get empty entries.
func (r *Renderer) separator(rw *row) {
	if rw.entries > 0 {
		r.write(" & ")
	}
	rw.entries++
}

func (r *Renderer) openCell(e *doc.Element) {
	rw := r.rows[e.Parent]
	p := e.Placement

	for rw.cursor < p.Column {
		r.separator(rw)
		rw.cursor++
	}
	r.separator(rw)
	rw.cursor = p.Column + p.ColSpan

	var closing string
	if p.ColSpan > 1 || p.Explicit {
		r.write(`\multicolumn{`, strconv.Itoa(p.ColSpan), "}{", columnType(p.Def), "}{")
		closing += "}"
	}
	if p.RowSpan > 1 {
		r.write(`\multirow{`, strconv.Itoa(p.RowSpan), "}{*}{")
		closing += "}"
	}
	r.cells[e] = closing
}

// endRow fills columns covered from above and terminates row.
func (r *Renderer) endRow(e *doc.Element) {
	rw := r.rows[e]
	if rw == nil || !rw.open {
		return
	}
	for rw.cursor < len(e.Columns) {
		r.separator(rw)
		rw.cursor++
	}
	r.write(` \\`, "\n")
	rw.open = false
}

func (r *Renderer) Field(e *doc.Element, f doc.Field) error {
	switch f.Name {
	case doc.FieldNameTitle:
		if e.Kind == doc.KindHeader {
			r.hdr.title = f.Value
			return nil
		}
		cmd := headings[e.Depth-1]
		r.write("\n", `\`, cmd, "*{", e.Number(), `\quad `, r.Encode(f.Value), "}\n")
		r.anchor(e.Label)

	case doc.FieldNameSubtitle:
		r.hdr.subtitle = f.Value
	case doc.FieldNameAuthor:
		r.hdr.authors = append(r.hdr.authors, f.Value)
	case doc.FieldNameDate:
		r.hdr.date = f.Value
	case doc.FieldNameAbstract:
		r.hdr.abstract = f.Value
	case doc.FieldNameLanguage:
		r.hdr.babel = babelName(f.Value)
		if r.hdr.babel == "" {
			r.log.Warn("Language has no babel name, hyphenation will use defaults", zap.String("tag", f.Value))
		}

	case doc.FieldNameNote:
		r.write(`\noindent `, r.Encode(f.Value), "\n\n")

	case doc.FieldNameCaption:
		switch e.Kind {
		case doc.KindCode:
			r.write(`\textbf{`)
			r.reference(e.Label)
			r.write(":} ", r.Encode(f.Value), "\n")
		case doc.KindSubfigure:
			r.write(`\caption*{(`, e.LocalID, ") ", r.Encode(f.Value), "}\n")
		default:
			r.write(`\caption*{`)
			r.reference(e.Label)
			r.write(": ", r.Encode(f.Value), "}\n")
		}

	case doc.FieldNameEntry:
		r.write(`\bibitem[`, strconv.Itoa(f.Number), "]{", citationKey(f.Key), "} ", r.Encode(f.Value), "\n")

	case doc.FieldNameRow:
		r.endRow(e)
		rw, ok := r.rows[e]
		if !ok {
			rw = &row{}
			r.rows[e] = rw
		}
		*rw = row{open: true}

	case doc.FieldNameLine:
		if strings.Contains(f.Value, `\end{verbatim}`) {
			return fmt.Errorf("latex: code line terminates verbatim environment: %w", doc.ErrInvalidArgument)
		}
		if !r.code[e] {
			r.write(`\begin{verbatim}`, "\n")
			r.code[e] = true
		}
		r.write(f.Value, "\n")

	default:
		return fmt.Errorf("latex: unexpected field %s", f.Name)
	}
	return nil
}

// babelName returns babel option for the language tag, empty when it has
// no single word English name.
func babelName(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return ""
	}
	base, _ := t.Base()
	name := strings.ToLower(display.English.Languages().Name(base))
	if name == "" || strings.ContainsFunc(name, func(r rune) bool { return r < 'a' || r > 'z' }) {
		return ""
	}
	return name
}

func citationKey(key string) string {
	return slug.Make(key)
}

func (r *Renderer) Text(e *doc.Element, run doc.Run) error {
	text := r.Encode(run.Text)

	switch run.Kind {
	case doc.RunKindText:
		r.write(text)
	case doc.RunKindEmph:
		r.write(`\emph{`, text, "}")
	case doc.RunKindStrong:
		r.write(`\textbf{`, text, "}")
	case doc.RunKindMono:
		r.write(`\texttt{`, text, "}")
	case doc.RunKindStyled:
		r.write(`\`, r.macro(run.Style), "{", text, "}")
	case doc.RunKindLink:
		r.write(`\href{`, escapeURL(run.URL), "}{", text, "}")
	case doc.RunKindRef:
		l := run.Label
		r.out.WriteDeferred(func() string {
			text := r.Encode(l.ReferenceText())
			if !l.Resolved() {
				return text
			}
			return `\hyperref[` + l.Mark() + "]{" + text + "}"
		})
	case doc.RunKindCite:
		r.write(`\cite{`, citationKey(run.Key), "}")
	default:
		return fmt.Errorf("latex: unexpected run %s", run.Kind)
	}
	return nil
}

var urlEncoder = strings.NewReplacer(`\`, `\\`, "#", `\#`, "%", `\%`, "{", `\{`, "}", `\}`)

func escapeURL(url string) string {
	return urlEncoder.Replace(url)
}

func (r *Renderer) Equation(e *doc.Element, fragment string) error {
	r.write(`\begin{equation*}`, "\n", fragment, "\n")
	if e.Label != nil {
		r.write(`\tag*{`)
		r.reference(e.Label)
		r.write("}", `\label{`, e.Label.Mark(), "}\n")
	}
	r.write(`\end{equation*}`, "\n")
	return nil
}

func (r *Renderer) Close(e *doc.Element) error {
	switch e.Kind {
	case doc.KindDocument:
		r.write("\n", `\end{document}`, "\n")
	case doc.KindHeader:
		r.closeHeader()
	case doc.KindBibliography:
		r.write(`\end{thebibliography}`, "\n")

	case doc.KindParagraph:
		r.write("\n\n")
	case doc.KindFigure, doc.KindFigureSeries:
		r.anchor(e.Label)
		r.write(`\end{figure}`, "\n")
	case doc.KindSubfigure:
		r.anchor(e.Label)
		r.write(`\end{minipage}\hfill`, "\n")

	case doc.KindTable:
		r.write(`\end{tabular}`, "\n")
		r.anchor(e.Label)
		r.write(`\end{table}`, "\n")
	case doc.KindTableSection:
		r.endRow(e)
		delete(r.rows, e)
		r.write(`\hline`, "\n")
	case doc.KindCell:
		r.write(r.cells[e])
		delete(r.cells, e)

	case doc.KindCode:
		if r.code[e] {
			r.write(`\end{verbatim}`, "\n")
		}
		delete(r.code, e)
		r.write(`\end{flushleft}`, "\n")

	case doc.KindList:
		if e.Ordered {
			r.write(`\end{enumerate}`, "\n")
		} else {
			r.write(`\end{itemize}`, "\n")
		}
	case doc.KindItem:
		r.write("\n")
	}
	return nil
}

func (r *Renderer) closeHeader() {
	if r.hdr.babel != "" {
		r.write(`\usepackage[`, r.hdr.babel, "]{babel}\n")
	}
	r.write("\n", `\title{`, r.Encode(r.hdr.title))
	if r.hdr.subtitle != "" {
		r.write(`\\`, "\n", `\large `, r.Encode(r.hdr.subtitle))
	}
	r.write("}\n")

	authors := make([]string, 0, len(r.hdr.authors))
	for _, a := range r.hdr.authors {
		authors = append(authors, r.Encode(a))
	}
	r.write(`\author{`, strings.Join(authors, ` \and `), "}\n")
	r.write(`\date{`, r.Encode(r.hdr.date), "}\n")

	r.write("\n", `\begin{document}`, "\n", `\maketitle`, "\n")
	if r.hdr.abstract != "" {
		r.write(`\begin{abstract}`, "\n", r.Encode(r.hdr.abstract), "\n", `\end{abstract}`, "\n")
	}
}

// macro returns name of the command defined in preamble for the style.
func (r *Renderer) macro(st *style.Style) string {
	i := slices.Index(r.styles, st)
	if i < 0 {
		r.styles = append(r.styles, st)
		i = len(r.styles) - 1
	}
	return "dwstyle" + label.Alpha(i+1)
}

// styleMacros is evaluated at flush, when every used style is known.
func (r *Renderer) styleMacros() string {
	var sb strings.Builder
	for i, st := range r.styles {
		fmt.Fprintf(&sb, "\\newcommand{\\dwstyle%s}[1]{%s}\n", label.Alpha(i+1), declarations(st))
	}
	return sb.String()
}

// Finish writes the whole document.
func (r *Renderer) Finish(w io.Writer) error {
	if _, err := r.out.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write latex: %w", err)
	}
	return nil
}
