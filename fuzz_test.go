//go:build go1.18
// +build go1.18

package expreval

import (
	"errors"
	"testing"
)

func FuzzTokenize(f *testing.F) {
	f.Add("x")
	f.Add("3+4")
	f.Add("max(1.5, -2)!")
	f.Add("1.2.3")
	f.Add("π×2")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := NewTokenizer(NewVars()).Tokenize(s)
		if err != nil {
			var ie InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%q: error without position: %v", s, err)
			}
			return
		}
		for _, tok := range toks {
			if tok.Pos < 0 || tok.Pos >= len(s) {
				t.Fatalf("%q: token %v out of range at %d", s, tok, tok.Pos)
			}
		}
	})
}

func FuzzEval(f *testing.F) {
	f.Add("x = 1")
	f.Add("y")
	f.Add("(1 + 2) * 3 ** -1")
	f.Add("arctan2(1, 0) + sin(pi) - ln(0)")
	f.Add("not true xor 3 < 4.5")
	f.Fuzz(func(t *testing.T, s string) {
		vars := NewVars()
		vars.Set("x", NewInt64(3))
		// Bound the work done by factorials and powers.
		toks, err := NewTokenizer(vars, Prec(64)).Tokenize(s)
		if err != nil {
			return
		}
		for _, tok := range toks {
			if tok.Kind == Factorial || tok.Kind == Power || tok.Kind == Pow {
				return
			}
		}
		EvalExpression(s, vars, Prec(64))
	})
}
