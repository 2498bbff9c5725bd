package doc

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// mathArgs implements argument adding verbs of math containers. Operators
// open child node which must be closed before next argument, leaves are
// added at once.
type mathArgs struct {
	*node
}

// Equation is the root of math expression, it takes exactly one argument.
type Equation struct {
	mathArgs
}

// Math is an operator node.
type Math struct {
	mathArgs
}

// Op returns operator of the node.
func (m *Math) Op() MathOp {
	return m.elem.Op
}

func initEquation(c *node) {
	c.minArgs, c.maxArgs = 1, 1
	c.onChildClosed = collectFragment(c)
	c.onClose = checkArity(c)
	c.finish = func() error {
		return c.s.emit(func(r Renderer) error {
			if err := r.Equation(c.elem, c.args[0]); err != nil {
				return err
			}
			return r.Close(c.elem)
		})
	}
}

func initOperator(op MathOp, arg string) func(c *node) {
	return func(c *node) {
		c.minArgs, c.maxArgs = op.Arity()
		c.onChildClosed = collectFragment(c)
		c.onClose = checkArity(c)
		c.finish = func() error {
			args := c.args
			return c.s.emit(func(r Renderer) error {
				c.fragment = r.Math(op, arg, args)
				return nil
			})
		}
	}
}

func collectFragment(c *node) func(child *node) {
	return func(child *node) {
		c.args = append(c.args, child.fragment)
	}
}

func checkArity(c *node) func() error {
	return func() error {
		if len(c.args) < c.minArgs {
			return &TooFewArgumentsError{Kind: c.kind, Op: c.elem.Op, Min: c.minArgs, Got: len(c.args)}
		}
		return nil
	}
}

// full must be called with lock held.
func (m mathArgs) full() error {
	if m.maxArgs >= 0 && len(m.args) >= m.maxArgs {
		return &TooManyArgumentsError{Kind: m.kind, Op: m.elem.Op, Max: m.maxArgs}
	}
	return nil
}

func (m mathArgs) operator(op MathOp, arg string) (*Math, error) {
	n, err := m.spawn(child{
		event:  EventArgument,
		kind:   KindMath,
		guard:  m.full,
		fill:   func(e *Element) { e.Op, e.Arg = op, arg },
		init:   initOperator(op, arg),
		silent: true,
	})
	if err != nil {
		return nil, err
	}
	return &Math{mathArgs{n}}, nil
}

func (m mathArgs) leaf(op MathOp, text string) error {
	if len(strings.TrimSpace(text)) == 0 {
		return invalidArg("empty math %s", op)
	}
	return m.fire(EventArgument, func() error {
		if err := m.full(); err != nil {
			return err
		}
		return m.s.emit(func(r Renderer) error {
			m.args = append(m.args, r.Math(op, text, nil))
			return nil
		})
	})
}

// Number adds numeric literal. Both '.' and ',' are accepted as decimal
// separator, exponents and signs are not (use Negate).
func (m mathArgs) Number(text string) error {
	for _, r := range text {
		if !unicode.IsDigit(r) && r != '.' && r != ',' {
			return invalidArg("%q is not a number", text)
		}
	}
	if _, err := strconv.ParseFloat(strings.Replace(text, ",", ".", 1), 64); err != nil {
		return invalidArg("%q is not a number", text)
	}
	return m.leaf(MathOpNumber, text)
}

// Variable adds variable name.
func (m mathArgs) Variable(name string) error {
	return m.leaf(MathOpVariable, name)
}

// Symbol adds named symbol such as "pi" or "infinity", renderers map known
// names to their notation.
func (m mathArgs) Symbol(name string) error {
	return m.leaf(MathOpSymbol, name)
}

func (m mathArgs) Sum() (*Math, error) {
	return m.operator(MathOpSum, "")
}

// Difference takes minuend and subtrahend.
func (m mathArgs) Difference() (*Math, error) {
	return m.operator(MathOpDifference, "")
}

func (m mathArgs) Product() (*Math, error) {
	return m.operator(MathOpProduct, "")
}

// Fraction takes numerator and denominator.
func (m mathArgs) Fraction() (*Math, error) {
	return m.operator(MathOpFraction, "")
}

// Power takes base and exponent.
func (m mathArgs) Power() (*Math, error) {
	return m.operator(MathOpPower, "")
}

func (m mathArgs) Sqrt() (*Math, error) {
	return m.operator(MathOpSqrt, "")
}

// Root takes degree and radicand.
func (m mathArgs) Root() (*Math, error) {
	return m.operator(MathOpRoot, "")
}

// Group encloses its argument in parentheses.
func (m mathArgs) Group() (*Math, error) {
	return m.operator(MathOpGroup, "")
}

func (m mathArgs) Negate() (*Math, error) {
	return m.operator(MathOpNegate, "")
}

// Subscript takes base and index.
func (m mathArgs) Subscript() (*Math, error) {
	return m.operator(MathOpSubscript, "")
}

// Relations accepted by Compare.
var Relations = []string{"=", "!=", "<", "<=", ">", ">=", "~"}

// Compare relates two arguments.
func (m mathArgs) Compare(rel string) (*Math, error) {
	if !slices.Contains(Relations, rel) {
		return nil, invalidArg("unknown relation %q", rel)
	}
	return m.operator(MathOpCompare, rel)
}

// Apply applies named function to its arguments.
func (m mathArgs) Apply(fn string) (*Math, error) {
	if len(fn) == 0 || strings.IndexFunc(fn, func(r rune) bool { return !unicode.IsLetter(r) }) >= 0 {
		return nil, invalidArg("bad function name %q", fn)
	}
	return m.operator(MathOpApply, fn)
}
