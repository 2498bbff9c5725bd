package text

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
	"<":  "<",
	"<=": "≤",
	">":  ">",
	">=": "≥",
	"~":  "≈",
}

// paren wraps compound operand.
func paren(s string) string {
	if strings.ContainsAny(s, " /^") {
		return "(" + s + ")"
	}
	return s
}

// Math renders linear notation.
func (r *Renderer) Math(op doc.MathOp, arg string, args []string) string {
	switch op {
	case doc.MathOpNumber, doc.MathOpVariable:
		return arg
	case doc.MathOpSymbol:
		if s, ok := symbols[arg]; ok {
			return s
		}
		return arg

	case doc.MathOpSum:
		return strings.Join(args, " + ")
	case doc.MathOpDifference:
		return args[0] + " - " + paren(args[1])
	case doc.MathOpProduct:
		factors := make([]string, len(args))
		for i, a := range args {
			factors[i] = paren(a)
		}
		return strings.Join(factors, "·")
	case doc.MathOpFraction:
		return paren(args[0]) + "/" + paren(args[1])
	case doc.MathOpPower:
		return paren(args[0]) + "^" + paren(args[1])
	case doc.MathOpSubscript:
		return paren(args[0]) + "_" + paren(args[1])
	case doc.MathOpSqrt:
		return "√" + "(" + args[0] + ")"
	case doc.MathOpRoot:
		return "root(" + args[0] + ", " + args[1] + ")"
	case doc.MathOpCompare:
		return args[0] + " " + relations[arg] + " " + args[1]
	case doc.MathOpGroup:
		return "(" + args[0] + ")"
	case doc.MathOpNegate:
		return "-" + paren(args[0])
	case doc.MathOpApply:
		return arg + "(" + strings.Join(args, ", ") + ")"
	}
	return ""
}
