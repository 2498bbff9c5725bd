package latex

import (
	"strings"

	"docwright/doc"
)

var symbols = map[string]string{
	"alpha":    `\alpha`,
	"beta":     `\beta`,
	"gamma":    `\gamma`,
	"delta":    `\delta`,
	"epsilon":  `\epsilon`,
	"lambda":   `\lambda`,
	"mu":       `\mu`,
	"pi":       `\pi`,
	"sigma":    `\sigma`,
	"theta":    `\theta`,
	"omega":    `\omega`,
	"infinity": `\infty`,
}

var relations = map[string]string{
	"=":  "=",
	"!=": `\neq`,
	"<":  "<",
	"<=": `\leq`,
	">":  ">",
	">=": `\geq`,
	"~":  `\approx`,
}

// functions with their own commands, others use \operatorname.
var functions = map[string]bool{
	"sin": true, "cos": true, "tan": true, "log": true, "ln": true, "exp": true,
	"min": true, "max": true, "lim": true, "det": true,
}

func braced(s string) string {
	return "{" + s + "}"
}

// Math renders math mode fragment.
func (r *Renderer) Math(op doc.MathOp, arg string, args []string) string {
	switch op {
	case doc.MathOpNumber:
		return arg
	case doc.MathOpVariable:
		if len(arg) == 1 {
			return arg
		}
		return `\mathit{` + r.Encode(arg) + "}"
	case doc.MathOpSymbol:
		if s, ok := symbols[arg]; ok {
			return s
		}
		return `\mathrm{` + r.Encode(arg) + "}"

	case doc.MathOpSum:
		return strings.Join(args, " + ")
	case doc.MathOpDifference:
		return args[0] + " - " + args[1]
	case doc.MathOpProduct:
		return strings.Join(args, ` \cdot `)
	case doc.MathOpFraction:
		return `\frac` + braced(args[0]) + braced(args[1])
	case doc.MathOpPower:
		return braced(args[0]) + "^" + braced(args[1])
	case doc.MathOpSubscript:
		return braced(args[0]) + "_" + braced(args[1])
	case doc.MathOpSqrt:
		return `\sqrt` + braced(args[0])
	case doc.MathOpRoot:
		return `\sqrt[` + args[0] + "]" + braced(args[1])
	case doc.MathOpCompare:
		return args[0] + " " + relations[arg] + " " + args[1]
	case doc.MathOpGroup:
		return `\left(` + args[0] + `\right)`
	case doc.MathOpNegate:
		return "-" + args[0]
	case doc.MathOpApply:
		fn := `\operatorname{` + arg + "}"
		if functions[arg] {
			fn = `\` + arg
		}
		return fn + `\left(` + strings.Join(args, ", ") + `\right)`
	}
	return ""
}
