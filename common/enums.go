// Package common keeps enums shared between configuration, command line and
// output drivers so none of them has to import the others.
package common

// Specification of requested output type.
// ENUM(xhtml, latex, text)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtXhtml:
		return ".xhtml"
	case OutputFmtLatex:
		return ".tex"
	case OutputFmtText:
		return ".txt"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// Streaming reports whether driver writes its output incrementally into the
// text sink rather than assembling element tree first.
func (o OutputFmt) Streaming() bool {
	return o == OutputFmtLatex || o == OutputFmtText
}
