package doc

// Kind of document node.
// ENUM(document, header, body, footer, bibliography, section, paragraph, figure, figure-series, subfigure, table, table-section, cell, code, equation, list, item, math)
type Kind int

// State of node protocol. Every node starts alive and ends dead, states in
// between are kind specific.
// ENUM(alive, header, body, footer, titled, content, captioned, populated, dead)
type State int

// Event is a protocol call recorded against node state machine.
// ENUM(header, body, footer, title, meta, note, bibliography, entry, section, paragraph, figure, figure-series, subfigure, table, code, equation, list, item, run, caption, row, cell, line, argument, define-style, close)
type Event int

// RunKind tells renderer how inline run should be presented.
// ENUM(text, emph, strong, mono, link, ref, cite, styled)
type RunKind int

// FieldName identifies simple value attached to an element.
// ENUM(title, subtitle, author, date, abstract, language, caption, note, entry, row, line)
type FieldName int

// MathOp is an operator or leaf of math expression tree.
// ENUM(number, variable, symbol, sum, difference, product, fraction, power, sqrt, root, compare, group, negate, apply, subscript)
type MathOp int

// Arity returns minimum and maximum number of arguments operator accepts,
// negative maximum means unbounded. Leaves accept none.
func (op MathOp) Arity() (minArgs, maxArgs int) {
	switch op {
	case MathOpSum, MathOpProduct:
		return 2, -1
	case MathOpApply:
		return 1, -1
	case MathOpDifference, MathOpFraction, MathOpPower, MathOpRoot, MathOpCompare, MathOpSubscript:
		return 2, 2
	case MathOpSqrt, MathOpGroup, MathOpNegate:
		return 1, 1
	default:
		return 0, 0
	}
}

// IsLeaf reports whether op produces fragment without arguments.
func (op MathOp) IsLeaf() bool {
	return op == MathOpNumber || op == MathOpVariable || op == MathOpSymbol
}
