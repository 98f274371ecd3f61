package expreval_test

import (
	"math/big"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soniafriesen/expreval"
)

// arithExpr is an integer expression tree built directly, without parsing.
type arithExpr struct {
	// op is one of + - * /, or 0 for a literal.
	op   byte
	n    int64
	l, r *arithExpr
}

func genArith(rng *rand.Rand, depth int) *arithExpr {
	if depth == 0 || rng.Intn(3) == 0 {
		return &arithExpr{n: rng.Int63n(100)}
	}
	return &arithExpr{
		op: "+-*/"[rng.Intn(4)],
		l:  genArith(rng, depth-1),
		r:  genArith(rng, depth-1),
	}
}

func (e *arithExpr) prec() int {
	switch e.op {
	case 0:
		return 3
	case '+', '-':
		return 1
	default:
		return 2
	}
}

// String renders e with only the parentheses that precedence and left
// associativity require.
func (e *arithExpr) String() string {
	if e.op == 0 {
		return strconv.FormatInt(e.n, 10)
	}
	l, r := e.l.String(), e.r.String()
	if e.l.prec() < e.prec() {
		l = "(" + l + ")"
	}
	if e.r.prec() <= e.prec() {
		r = "(" + r + ")"
	}
	return l + " " + string(e.op) + " " + r
}

// value computes e with truncated division. It reports false if any division
// has a zero divisor.
func (e *arithExpr) value() (*big.Int, bool) {
	if e.op == 0 {
		return big.NewInt(e.n), true
	}
	a, ok := e.l.value()
	if !ok {
		return nil, false
	}
	b, ok := e.r.value()
	if !ok {
		return nil, false
	}
	switch e.op {
	case '+':
		return a.Add(a, b), true
	case '-':
		return a.Sub(a, b), true
	case '*':
		return a.Mul(a, b), true
	}
	if b.Sign() == 0 {
		return nil, false
	}
	return a.Quo(a, b), true
}

func TestEvalIntegerArithmetic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		e := genArith(rng, 5)
		src := e.String()
		want, ok := e.value()
		r, err := expreval.EvalExpression(src, expreval.NewVars())
		if !ok {
			var dz *expreval.DivisionByZeroError
			assert.ErrorAs(t, err, &dz, src)
			continue
		}
		require.NoError(t, err, src)
		require.Equal(t, expreval.IntegerValue, r.Kind(), src)
		assert.Equal(t, want.String(), r.BigInt().String(), src)
	}
}

func TestEvalRedundantParentheses(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		e := genArith(rng, 4)
		want, ok := e.value()
		if !ok {
			continue
		}
		src := "((" + e.String() + "))"
		r, err := expreval.EvalExpression(src, expreval.NewVars())
		require.NoError(t, err, src)
		assert.Equal(t, want.String(), r.BigInt().String(), src)
	}
}
