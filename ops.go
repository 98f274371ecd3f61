package expreval

import (
	"math/big"
)

// unsupported creates an error for an operation applied to operands it is not
// defined for.
func unsupported(op Token, args ...Value) error {
	kinds := make([]ValueKind, len(args))
	for i, a := range args {
		kinds[i] = a.Kind()
	}
	return &UnsupportedOperationError{Col: op.Pos, Op: op.Kind, Operands: kinds}
}

// unary applies an operator or function of one operand.
func (m *machine) unary(op Token, x Value) (Value, error) {
	switch op.Kind {
	case Identity:
		if !x.numeric() {
			return Value{}, unsupported(op, x)
		}
		return x, nil
	case Negation:
		switch x.kind {
		case IntegerValue:
			return intval(new(big.Int).Neg(x.i)), nil
		case RealValue:
			return realval(m.newReal().Neg(x.f)), nil
		}
		return Value{}, unsupported(op, x)
	case Not:
		if x.kind != BooleanValue {
			return Value{}, unsupported(op, x)
		}
		return NewBool(!x.b), nil
	case Factorial:
		return m.factorial(op, x)
	}
	if op.Kind.IsFunction() {
		return m.call1(op, x)
	}
	panic("expreval: unknown unary operation " + op.Kind.String())
}

// binary applies an operator or function of two operands. x is the left-hand
// operand.
func (m *machine) binary(op Token, x, y Value) (Value, error) {
	switch op.Kind {
	case Addition, Subtraction, Multiplication, Division, Modulus, Power, Pow:
		return m.arith(op, x, y)
	case Equality, Inequality, Less, LessEqual, Greater, GreaterEqual:
		return m.relation(op, x, y)
	case And, Or, Xor, Nand, Nor, Xnor:
		return logic(op, x, y)
	}
	if op.Kind.IsFunction() {
		return m.call2(op, x, y)
	}
	panic("expreval: unknown binary operation " + op.Kind.String())
}

// newReal allocates a Real at the evaluation precision.
func (m *machine) newReal() *big.Float {
	return new(big.Float).SetPrec(m.ctx.prec)
}

// arith applies a numeric binary operator. If either operand is Real, the
// other is promoted and the result is Real. Otherwise the result is Integer,
// except for negative powers.
func (m *machine) arith(op Token, x, y Value) (Value, error) {
	if !x.numeric() || !y.numeric() {
		return Value{}, unsupported(op, x, y)
	}
	if x.kind == RealValue || y.kind == RealValue {
		if op.Kind == Modulus {
			return Value{}, unsupported(op, x, y)
		}
		return m.arithReal(op, x.promote(m.ctx.prec), y.promote(m.ctx.prec))
	}
	a, b := x.i, y.i
	switch op.Kind {
	case Addition:
		return intval(new(big.Int).Add(a, b)), nil
	case Subtraction:
		return intval(new(big.Int).Sub(a, b)), nil
	case Multiplication:
		return intval(new(big.Int).Mul(a, b)), nil
	case Division:
		if b.Sign() == 0 {
			return Value{}, &DivisionByZeroError{Col: op.Pos, Op: op.Kind}
		}
		// Quo truncates toward zero.
		return intval(new(big.Int).Quo(a, b)), nil
	case Modulus:
		if b.Sign() == 0 {
			return Value{}, &DivisionByZeroError{Col: op.Pos, Op: op.Kind}
		}
		// Rem has the sign of the dividend.
		return intval(new(big.Int).Rem(a, b)), nil
	default:
		return m.intpow(op, a, b)
	}
}

// intpow raises an Integer to an Integer power. Negative exponents produce a
// Real.
func (m *machine) intpow(op Token, a, b *big.Int) (Value, error) {
	switch b.Sign() {
	case 0:
		return NewInt64(1), nil
	case 1:
		return intval(new(big.Int).Exp(a, b, nil)), nil
	}
	if a.Sign() == 0 {
		return Value{}, &DivisionByZeroError{Col: op.Pos, Op: op.Kind}
	}
	p := new(big.Int).Exp(a, new(big.Int).Neg(b), nil)
	d := m.newReal().SetInt(p)
	return realval(m.newReal().Quo(m.newReal().SetInt64(1), d)), nil
}

func (m *machine) arithReal(op Token, a, b *big.Float) (Value, error) {
	z := m.newReal()
	switch op.Kind {
	case Addition:
		z.Add(a, b)
	case Subtraction:
		z.Sub(a, b)
	case Multiplication:
		z.Mul(a, b)
	case Division:
		if b.Sign() == 0 {
			return Value{}, &DivisionByZeroError{Col: op.Pos, Op: op.Kind}
		}
		z.Quo(a, b)
	default:
		return m.realpow(op, a, b)
	}
	return realval(z), nil
}

// realpow raises a Real to a Real power. Integral exponents use repeated
// squaring, so they allow negative bases.
func (m *machine) realpow(op Token, a, b *big.Float) (Value, error) {
	prec := m.ctx.prec
	if b.IsInt() {
		n, _ := b.Int(nil)
		neg := n.Sign() < 0
		if neg && a.Sign() == 0 {
			return Value{}, &DivisionByZeroError{Col: op.Pos, Op: op.Kind}
		}
		n.Abs(n)
		// Extra bits absorb the rounding of each multiplication.
		wp := prec + uint(n.BitLen()) + 64
		acc := new(big.Float).SetPrec(wp).SetInt64(1)
		sq := new(big.Float).SetPrec(wp).Set(a)
		for i := 0; i < n.BitLen(); i++ {
			if n.Bit(i) == 1 {
				acc.Mul(acc, sq)
			}
			sq.Mul(sq, sq)
		}
		if neg {
			acc.Quo(new(big.Float).SetPrec(wp).SetInt64(1), acc)
		}
		return realval(m.newReal().Set(acc)), nil
	}
	switch a.Sign() {
	case -1:
		return Value{}, &DomainError{X: new(big.Float).Copy(a), Func: op.Kind.Symbol(), Col: op.Pos}
	case 0:
		if b.Sign() < 0 {
			return Value{}, &DivisionByZeroError{Col: op.Pos, Op: op.Kind}
		}
		return realval(m.newReal()), nil
	}
	return realval(pow(m.newReal(), a, b)), nil
}

// relation applies a comparison operator. The result is always Boolean.
func (m *machine) relation(op Token, x, y Value) (Value, error) {
	c, err := m.cmp(op, x, y)
	if err != nil {
		return Value{}, err
	}
	var r bool
	switch op.Kind {
	case Equality:
		r = c == 0
	case Inequality:
		r = c != 0
	case Less:
		r = c < 0
	case LessEqual:
		r = c <= 0
	case Greater:
		r = c > 0
	case GreaterEqual:
		r = c >= 0
	}
	return NewBool(r), nil
}

// cmp compares two values of the same kind, promoting Integer to Real when
// the kinds are mixed. Booleans order false before true.
func (m *machine) cmp(op Token, x, y Value) (int, error) {
	switch {
	case x.kind == BooleanValue && y.kind == BooleanValue:
		return btoi(x.b) - btoi(y.b), nil
	case x.kind == IntegerValue && y.kind == IntegerValue:
		return x.i.Cmp(y.i), nil
	case x.numeric() && y.numeric():
		return x.promote(m.ctx.prec).Cmp(y.promote(m.ctx.prec)), nil
	default:
		return 0, unsupported(op, x, y)
	}
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// logic applies a binary logical operator to two Booleans.
func logic(op Token, x, y Value) (Value, error) {
	if x.kind != BooleanValue || y.kind != BooleanValue {
		return Value{}, unsupported(op, x, y)
	}
	a, b := x.b, y.b
	var r bool
	switch op.Kind {
	case And:
		r = a && b
	case Or:
		r = a || b
	case Xor:
		r = a != b
	case Nand:
		r = !(a && b)
	case Nor:
		r = !(a || b)
	case Xnor:
		r = a == b
	}
	return NewBool(r), nil
}

// factorial computes 2·3·…·n. For a Real operand, the counter is a Real
// compared against the operand, so the product stops at the largest integer
// not above it. Operands below 2 give 1.
func (m *machine) factorial(op Token, x Value) (Value, error) {
	switch x.kind {
	case IntegerValue:
		if !x.i.IsInt64() {
			return Value{}, &DomainError{X: x.promote(m.ctx.prec), Func: op.Kind.Symbol(), Col: op.Pos}
		}
		return intval(new(big.Int).MulRange(2, x.i.Int64())), nil
	case RealValue:
		if x.f.IsInf() || x.f.Cmp(maxFactorial) > 0 {
			return Value{}, &DomainError{X: new(big.Float).Copy(x.f), Func: op.Kind.Symbol(), Col: op.Pos}
		}
		r := m.newReal().SetInt64(1)
		one := big.NewFloat(1)
		for i := m.newReal().SetInt64(2); i.Cmp(x.f) <= 0; i.Add(i, one) {
			r.Mul(r, i)
		}
		return realval(r), nil
	}
	return Value{}, unsupported(op, x)
}

// maxFactorial is the largest Real operand accepted by factorial.
var maxFactorial = new(big.Float).SetInt64(1<<63 - 1)
