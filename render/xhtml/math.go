package xhtml

import (
	"strings"

	"docwright/doc"
)

var symbols = map[string]string{
	"alpha":    "α",
	"beta":     "β",
	"gamma":    "γ",
	"delta":    "δ",
	"epsilon":  "ε",
	"lambda":   "λ",
	"mu":       "μ",
	"pi":       "π",
	"sigma":    "σ",
	"theta":    "θ",
	"omega":    "ω",
	"infinity": "∞",
}

var relations = map[string]string{
	"=":  "=",
	"!=": "≠",
	"<":  "&lt;",
	"<=": "≤",
	">":  "&gt;",
	">=": "≥",
	"~":  "≈",
}

func mo(op string) string {
	return "<mo>" + op + "</mo>"
}

func mrow(parts ...string) string {
	return "<mrow>" + strings.Join(parts, "") + "</mrow>"
}

// Math renders MathML presentation markup.
func (r *Renderer) Math(op doc.MathOp, arg string, args []string) string {
	switch op {
	case doc.MathOpNumber:
		return "<mn>" + r.Encode(arg) + "</mn>"
	case doc.MathOpVariable:
		return "<mi>" + r.Encode(arg) + "</mi>"
	case doc.MathOpSymbol:
		if s, ok := symbols[arg]; ok {
			if arg == "infinity" {
				return mo(s)
			}
			return "<mi>" + s + "</mi>"
		}
		return "<mi>" + r.Encode(arg) + "</mi>"

	case doc.MathOpSum:
		return mrow(strings.Join(args, mo("+")))
	case doc.MathOpDifference:
		return mrow(args[0], mo("−"), args[1])
	case doc.MathOpProduct:
		return mrow(strings.Join(args, mo("⋅")))
	case doc.MathOpFraction:
		return "<mfrac>" + args[0] + args[1] + "</mfrac>"
	case doc.MathOpPower:
		return "<msup>" + args[0] + args[1] + "</msup>"
	case doc.MathOpSubscript:
		return "<msub>" + args[0] + args[1] + "</msub>"
	case doc.MathOpSqrt:
		return "<msqrt>" + args[0] + "</msqrt>"
	case doc.MathOpRoot:
		// degree comes first in arguments, MathML wants radicand first
		return "<mroot>" + args[1] + args[0] + "</mroot>"
	case doc.MathOpCompare:
		return mrow(args[0], mo(relations[arg]), args[1])
	case doc.MathOpGroup:
		return mrow(mo("("), args[0], mo(")"))
	case doc.MathOpNegate:
		return mrow(mo("−"), args[0])
	case doc.MathOpApply:
		return mrow("<mi>"+r.Encode(arg)+"</mi>", mo("&#x2061;"), mo("("), strings.Join(args, mo(",")), mo(")"))
	}
	return ""
}
