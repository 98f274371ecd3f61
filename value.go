package expreval

import (
	"math/big"
	"strconv"
	"strings"
)

// DefaultPrec is the default precision, in bits, of Real values. It holds a
// little more than 1000 significant decimal digits.
const DefaultPrec = 3400

// DefaultDigits is the number of decimals used when a Real is rendered with
// String.
const DefaultDigits = 1000

// ValueKind identifies the type of a Value.
type ValueKind int8

const (
	// NoValue is the kind of the zero Value.
	NoValue ValueKind = iota
	// IntegerValue is an arbitrary-precision signed integer.
	IntegerValue
	// RealValue is an arbitrary-precision decimal.
	RealValue
	// BooleanValue is true or false.
	BooleanValue
)

func (k ValueKind) String() string {
	switch k {
	case IntegerValue:
		return "Integer"
	case RealValue:
		return "Real"
	case BooleanValue:
		return "Boolean"
	default:
		return "NoValue"
	}
}

// Value is the typed result of evaluating an expression, and the value bound
// to a variable. Values are immutable; the numbers returned by BigInt and
// BigFloat are copies.
type Value struct {
	kind ValueKind
	i    *big.Int
	f    *big.Float
	b    bool
}

// NewInt creates an Integer value holding a copy of x.
func NewInt(x *big.Int) Value {
	return intval(new(big.Int).Set(x))
}

// NewInt64 creates an Integer value from an int64.
func NewInt64(x int64) Value {
	return intval(big.NewInt(x))
}

// NewReal creates a Real value holding a copy of x.
func NewReal(x *big.Float) Value {
	return realval(new(big.Float).Copy(x))
}

// NewBool creates a Boolean value.
func NewBool(b bool) Value {
	return Value{kind: BooleanValue, b: b}
}

// intval and realval wrap numbers without copying them. Callers must not
// modify x afterward.
func intval(x *big.Int) Value {
	return Value{kind: IntegerValue, i: x}
}

func realval(x *big.Float) Value {
	return Value{kind: RealValue, f: x}
}

// Kind returns the type of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// BigInt returns a copy of an Integer value, or nil if v is not an Integer.
func (v Value) BigInt() *big.Int {
	if v.kind != IntegerValue {
		return nil
	}
	return new(big.Int).Set(v.i)
}

// BigFloat returns a copy of a Real value, or nil if v is not a Real.
func (v Value) BigFloat() *big.Float {
	if v.kind != RealValue {
		return nil
	}
	return new(big.Float).Copy(v.f)
}

// Bool returns the truth of a Boolean value, or false if v is not a Boolean.
func (v Value) Bool() bool {
	return v.kind == BooleanValue && v.b
}

// Equal reports whether v and w have the same kind and value.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case IntegerValue:
		return v.i.Cmp(w.i) == 0
	case RealValue:
		return v.f.Cmp(w.f) == 0
	case BooleanValue:
		return v.b == w.b
	default:
		return true
	}
}

// String renders the value. Integers are plain decimal digits, Reals are
// fixed-point with DefaultDigits decimals, and Booleans are true or false.
func (v Value) String() string {
	return v.Format(DefaultDigits)
}

// Format renders the value like String, but with digits decimals for Reals.
// Integers and Booleans ignore digits.
func (v Value) Format(digits int) string {
	switch v.kind {
	case IntegerValue:
		return v.i.String()
	case RealValue:
		if digits < 0 {
			digits = 0
		}
		s := v.f.Text('f', digits)
		if s[0] == '-' && strings.Trim(s[1:], "0.") == "" {
			// Negative zero, or a negative value that rounds to zero.
			s = s[1:]
		}
		return s
	case BooleanValue:
		return strconv.FormatBool(v.b)
	default:
		return "<no value>"
	}
}

// promote returns v as a Real of precision prec. v must be an Integer or Real.
func (v Value) promote(prec uint) *big.Float {
	switch v.kind {
	case IntegerValue:
		return new(big.Float).SetPrec(prec).SetInt(v.i)
	case RealValue:
		return v.f
	default:
		panic("expreval: promote of " + v.kind.String())
	}
}

func (v Value) numeric() bool {
	return v.kind == IntegerValue || v.kind == RealValue
}
