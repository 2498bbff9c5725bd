package doc

import (
	"errors"
	"strings"
	"testing"

	"docwright/label"
)

func TestMathArity(t *testing.T) {
	tests := []struct {
		op   MathOp
		open func(m mathArgs) (*Math, error)
	}{
		{MathOpDifference, mathArgs.Difference},
		{MathOpFraction, mathArgs.Fraction},
		{MathOpPower, mathArgs.Power},
		{MathOpRoot, mathArgs.Root},
		{MathOpSubscript, mathArgs.Subscript},
		{MathOpSqrt, mathArgs.Sqrt},
		{MathOpGroup, mathArgs.Group},
		{MathOpNegate, mathArgs.Negate},
		{MathOpSum, mathArgs.Sum},
		{MathOpProduct, mathArgs.Product},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			minArgs, maxArgs := tt.op.Arity()

			d, _, _ := newTestDocument(t, false)
			b := openBody(t, d)
			eq, err := b.Equation(label.Auto)
			ok(t, err)
			m, err := tt.open(eq.mathArgs)
			ok(t, err)

			for range minArgs - 1 {
				ok(t, m.Number("1"))
			}
			var few *TooFewArgumentsError
			if err := m.Close(); !errors.As(err, &few) || few.Got != minArgs-1 {
				t.Fatalf("closing with %d args: %v", minArgs-1, err)
			}
			ok(t, m.Variable("x"))

			if maxArgs > 0 {
				var many *TooManyArgumentsError
				if err := m.Number("2"); !errors.As(err, &many) || many.Max != maxArgs {
					t.Fatalf("argument %d: %v", maxArgs+1, err)
				}
				if _, err := m.Group(); !errors.As(err, &many) {
					t.Fatalf("operator argument %d: %v", maxArgs+1, err)
				}
			} else {
				for range 3 {
					ok(t, m.Number("2"))
				}
			}
			ok(t, m.Close())
			ok(t, eq.Close())
		})
	}
}

func TestEquationFragments(t *testing.T) {
	d, _, out := newTestDocument(t, false)
	b := openBody(t, d)

	eq, err := b.Equation(label.Auto)
	ok(t, err)
	cmp, err := eq.Compare("=")
	ok(t, err)
	ok(t, cmp.Variable("x"))

	sum, err := cmp.Sum()
	ok(t, err)
	// operator must be closed before the next argument of its parent
	wantState(t, cmp.Variable("z"), StateAlive)

	ok(t, sum.Number("1"))
	frac, err := sum.Fraction()
	ok(t, err)
	ok(t, frac.Number("1"))
	f, err := frac.Apply("sin")
	ok(t, err)
	ok(t, f.Variable("y"))
	ok(t, f.Close())
	ok(t, frac.Close())
	ok(t, sum.Close())
	ok(t, cmp.Close())

	if _, err := eq.Sqrt(); !errors.Is(err, ErrInvalidProtocolUse) {
		t.Errorf("equation accepts single expression, got %v", err)
	}
	ok(t, eq.Close())
	finish(t, d, b)

	want := "equation 1. compare=(x,sum(1,fraction(1,applysin(y))))\n"
	if !strings.Contains(out.String(), want) {
		t.Errorf("output does not contain %q:\n%s", want, out.String())
	}
}

func TestMathArguments(t *testing.T) {
	d, _, _ := newTestDocument(t, false)
	b := openBody(t, d)
	eq, err := b.Equation(label.Auto)
	ok(t, err)

	tests := []struct {
		name string
		call func() error
	}{
		{"empty variable", func() error { return eq.Variable(" ") }},
		{"not a number", func() error { return eq.Number("1e5") }},
		{"lone separator", func() error { return eq.Number(".") }},
		{"lone comma", func() error { return eq.Number(",") }},
		{"two separators", func() error { return eq.Number("1.2.3") }},
		{"mixed separators", func() error { return eq.Number("1,2.3") }},
		{"unknown relation", func() error { _, err := eq.Compare("=>"); return err }},
		{"bad function", func() error { _, err := eq.Apply("f(x)"); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected invalid argument, got %v", err)
			}
		})
	}

	var few *TooFewArgumentsError
	err = eq.Close()
	if !errors.As(err, &few) {
		t.Fatalf("empty equation closed: %v", err)
	}
	if few.Kind != KindEquation || !strings.HasPrefix(err.Error(), "equation requires at least 1 argument") {
		t.Errorf("empty equation error = %q", err)
	}
	ok(t, eq.Symbol("pi"))
	ok(t, eq.Close())
}

func TestMathNumbers(t *testing.T) {
	d, _, out := newTestDocument(t, false)
	b := openBody(t, d)

	eq, err := b.Equation(label.Auto)
	ok(t, err)
	sum, err := eq.Sum()
	ok(t, err)
	for _, n := range []string{"0", "42", "3.14", "2,5", ".5"} {
		ok(t, sum.Number(n))
	}
	ok(t, sum.Close())
	ok(t, eq.Close())
	finish(t, d, b)

	if want := "sum(0,42,3.14,2,5,.5)"; !strings.Contains(out.String(), want) {
		t.Errorf("output does not contain %q:\n%s", want, out.String())
	}
}
