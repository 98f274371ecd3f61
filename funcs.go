package expreval

import (
	"math/big"
)

// monadic is a function of one Real. It must set z to its result at the
// precision of z and return z. It must not modify x. If x is outside the
// function's domain, it panics with a *DomainError.
type monadic func(z, x *big.Float) *big.Float

// realfuncs are the functions of one argument that compute in the Real domain.
// Integer arguments are promoted.
var realfuncs = map[Kind]monadic{
	Arccos: acos,
	Arcsin: asin,
	Arctan: atan,
	Ceil:   ceil,
	Cos:    cos,
	Exp:    exp,
	Floor:  floor,
	Lb:     lb,
	Ln:     log10,
	Sin:    sin,
	Sqrt:   sqrt,
	Tan:    tan,
}

// call1 applies a function of one argument.
func (m *machine) call1(op Token, x Value) (Value, error) {
	switch op.Kind {
	case Abs:
		switch x.kind {
		case IntegerValue:
			return intval(new(big.Int).Abs(x.i)), nil
		case RealValue:
			return realval(m.newReal().Abs(x.f)), nil
		}
	case Result:
		switch x.kind {
		case IntegerValue:
			return intval(new(big.Int).Lsh(x.i, 1)), nil
		case RealValue:
			return realval(m.newReal().Add(x.f, x.f)), nil
		}
	case Log:
		// Recognized, but never defined.
	default:
		f := realfuncs[op.Kind]
		if f == nil || !x.numeric() {
			break
		}
		r := f(m.newReal(), x.promote(m.ctx.prec))
		return realval(r), nil
	}
	return Value{}, unsupported(op, x)
}

// call2 applies a function of two arguments other than pow, which is handled
// as an arithmetic operator.
func (m *machine) call2(op Token, x, y Value) (Value, error) {
	switch op.Kind {
	case Max, Min:
		c, err := m.cmp(op, x, y)
		if err != nil {
			return Value{}, err
		}
		if x.kind == BooleanValue {
			return Value{}, unsupported(op, x, y)
		}
		r := x
		if (op.Kind == Max && c < 0) || (op.Kind == Min && c > 0) {
			r = y
		}
		if x.kind != y.kind {
			return realval(m.newReal().Set(r.promote(m.ctx.prec))), nil
		}
		return r, nil
	case Arctan2:
		if !x.numeric() || !y.numeric() {
			break
		}
		return realval(atan2(m.newReal(), x.promote(m.ctx.prec), y.promote(m.ctx.prec))), nil
	}
	return Value{}, unsupported(op, x, y)
}

// DomainError is an error returned when a function is called on an argument
// outside its domain, or when a computation has no defined result, such as
// the difference of two infinities. DomainError unwraps to big.ErrNaN. It
// implements InputError.
type DomainError struct {
	// X is the out-of-domain argument, if there is one.
	X *big.Float
	// Func is the text of the operation.
	Func string
	// Msg describes the failure when there is no single argument to blame.
	Msg string
	// Col is the offset of the operation.
	Col int
}

func (err *DomainError) Error() string {
	var r string
	switch {
	case err.X != nil:
		r = err.X.Text('g', 10) + " outside domain"
		if err.Func != "" {
			r += " of " + err.Func
		}
	case err.Msg != "":
		r = err.Msg
		if err.Func != "" {
			r = err.Func + ": " + r
		}
	default:
		r = "undefined result"
		if err.Func != "" {
			r += " of " + err.Func
		}
	}
	return errpos(err.Col, r)
}

func (err *DomainError) Pos() int {
	return err.Col
}

func (err *DomainError) Unwrap() error {
	return big.ErrNaN{}
}

// domain panics with a *DomainError for the argument x of the named function.
func domain(fn string, x *big.Float) {
	panic(&DomainError{X: new(big.Float).Copy(x), Func: fn})
}
