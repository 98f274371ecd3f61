package expreval

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Elementary functions of Reals that math/big and bigfloat do not provide.
// Each takes its precision from z and computes with guard bits so that the
// result is correct to about the last few bits of z.

const (
	guardBits = 64
	// maxExpBits bounds the binary exponent of arguments to exp. The result
	// of a larger argument is outside the exponent range of big.Float.
	maxExpBits = 33
	// maxReduceExp bounds the binary exponent of arguments to the periodic
	// functions. Reducing larger arguments needs unreasonable precision.
	maxReduceExp = 1 << 16
)

// working returns a new float at the working precision for a result of
// precision prec.
func working(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec + guardBits)
}

// negligible reports whether t is too small to affect a sum whose magnitude
// is at most about 2**4 at working precision wp.
func negligible(t *big.Float, wp uint) bool {
	return t.Sign() == 0 || t.MantExp(nil) < -int(wp)
}

// reduce returns x mod 2π in [-π, π] at working precision wp.
func reduce(fn string, x *big.Float, wp uint) *big.Float {
	if x.IsInf() {
		domain(fn, x)
	}
	e := x.MantExp(nil)
	if e > maxReduceExp {
		domain(fn, x)
	}
	if e > 0 {
		wp += uint(e)
	}
	tau := bigfloat.Pi(new(big.Float).SetPrec(wp))
	half := new(big.Float).Set(tau)
	tau.SetMantExp(tau, 1)
	r := new(big.Float).SetPrec(wp).Set(x)
	if new(big.Float).Abs(r).Cmp(half) <= 0 {
		return r
	}
	q := new(big.Float).SetPrec(wp).Quo(r, tau)
	n, _ := q.Int(nil)
	q.SetInt(n)
	r.Sub(r, q.Mul(q, tau))
	switch {
	case r.Cmp(half) > 0:
		r.Sub(r, tau)
	case r.Cmp(half.Neg(half)) < 0:
		r.Add(r, tau)
	}
	return r
}

// series sums the alternating series t_0 - t_1 + t_2 - ... where t_0 is start
// and t_k = t_{k-1}·r²/((2k+o-1)(2k+o)). With o = 1 and start = r, it is the
// sine series. With o = 0 and start = 1, it is the cosine series.
func series(r, start *big.Float, o int64, wp uint) *big.Float {
	r2 := new(big.Float).SetPrec(wp).Mul(r, r)
	sum := new(big.Float).SetPrec(wp).Set(start)
	t := new(big.Float).SetPrec(wp).Set(start)
	var d big.Float
	d.SetPrec(wp)
	for k := int64(1); ; k++ {
		t.Mul(t, r2)
		t.Quo(t, d.SetInt64((2*k+o-1)*(2*k+o)))
		t.Neg(t)
		if negligible(t, wp) {
			return sum
		}
		sum.Add(sum, t)
	}
}

func sin(z, x *big.Float) *big.Float {
	wp := z.Prec() + guardBits
	r := reduce("sin", x, wp)
	return z.Set(series(r, r, 1, wp))
}

func cos(z, x *big.Float) *big.Float {
	wp := z.Prec() + guardBits
	r := reduce("cos", x, wp)
	one := new(big.Float).SetPrec(wp).SetInt64(1)
	return z.Set(series(r, one, 0, wp))
}

func tan(z, x *big.Float) *big.Float {
	s := sin(working(z.Prec()), x)
	c := cos(working(z.Prec()), x)
	if c.Sign() == 0 {
		domain("tan", x)
	}
	return z.Quo(s, c)
}

// atan computes the arctangent by halving the argument with the identity
// atan(x) = 2·atan(x/(1+sqrt(1+x²))) until the Taylor series converges
// quickly.
func atan(z, x *big.Float) *big.Float {
	prec := z.Prec()
	wp := prec + guardBits
	if x.IsInf() {
		h := halfpi(wp)
		if x.Sign() < 0 {
			h.Neg(h)
		}
		return z.Set(h)
	}
	if x.Sign() == 0 {
		return z.SetInt64(0)
	}
	a := new(big.Float).SetPrec(wp).Abs(x)
	one := new(big.Float).SetPrec(wp).SetInt64(1)
	inv := a.Cmp(one) > 0
	if inv {
		a.Quo(one, a)
	}
	k := 0
	limit := new(big.Float).SetMantExp(one, -8)
	t := new(big.Float).SetPrec(wp)
	for a.Cmp(limit) > 0 {
		t.Mul(a, a)
		t.Add(t, one)
		t.Sqrt(t)
		t.Add(t, one)
		a.Quo(a, t)
		k++
	}
	a2 := new(big.Float).SetPrec(wp).Mul(a, a)
	p := new(big.Float).SetPrec(wp).Set(a)
	sum := new(big.Float).SetPrec(wp).Set(a)
	var d big.Float
	d.SetPrec(wp)
	for n := int64(1); ; n++ {
		p.Mul(p, a2)
		p.Neg(p)
		t.Quo(p, d.SetInt64(2*n+1))
		if negligible(t, wp) {
			break
		}
		sum.Add(sum, t)
	}
	sum.SetMantExp(sum, k)
	if inv {
		sum.Sub(halfpi(wp), sum)
	}
	if x.Sign() < 0 {
		sum.Neg(sum)
	}
	return z.Set(sum)
}

func asin(z, x *big.Float) *big.Float {
	return arcsine("arcsin", z, x)
}

// arcsine computes asin(x) = atan(x/sqrt(1-x²)), reporting domain errors as
// belonging to fn.
func arcsine(fn string, z, x *big.Float) *big.Float {
	wp := z.Prec() + guardBits
	one := new(big.Float).SetPrec(wp).SetInt64(1)
	switch new(big.Float).Abs(x).Cmp(one) {
	case 1:
		domain(fn, x)
	case 0:
		h := halfpi(wp)
		if x.Sign() < 0 {
			h.Neg(h)
		}
		return z.Set(h)
	}
	d := new(big.Float).SetPrec(wp).Mul(x, x)
	d.Sub(one, d)
	d.Sqrt(d)
	d.Quo(x, d)
	return atan(z, d)
}

func acos(z, x *big.Float) *big.Float {
	wp := z.Prec() + guardBits
	s := arcsine("arccos", working(z.Prec()), x)
	return z.Sub(halfpi(wp), s)
}

// atan2 computes the angle of the point (x, y) from the positive x axis, in
// (-π, π]. atan2(0, 0) is 0.
func atan2(z, y, x *big.Float) *big.Float {
	wp := z.Prec() + guardBits
	switch x.Sign() {
	case 0:
		switch y.Sign() {
		case 0:
			return z.SetInt64(0)
		case 1:
			return z.Set(halfpi(wp))
		default:
			h := halfpi(wp)
			return z.Neg(h)
		}
	case 1:
		q := new(big.Float).SetPrec(wp).Quo(y, x)
		return atan(z, q)
	}
	q := new(big.Float).SetPrec(wp).Quo(y, x)
	r := atan(working(z.Prec()), q)
	p := bigfloat.Pi(new(big.Float).SetPrec(wp))
	if y.Sign() < 0 {
		return z.Sub(r, p)
	}
	return z.Add(r, p)
}

// halfpi returns a new float holding π/2 at precision wp.
func halfpi(wp uint) *big.Float {
	p := bigfloat.Pi(new(big.Float).SetPrec(wp))
	return p.SetMantExp(p, -1)
}

func floor(z, x *big.Float) *big.Float {
	if x.IsInf() {
		return z.Set(x)
	}
	i, acc := x.Int(nil)
	if acc == big.Above {
		i.Sub(i, big.NewInt(1))
	}
	return z.SetInt(i)
}

func ceil(z, x *big.Float) *big.Float {
	if x.IsInf() {
		return z.Set(x)
	}
	i, acc := x.Int(nil)
	if acc == big.Below {
		i.Add(i, big.NewInt(1))
	}
	return z.SetInt(i)
}

// logb computes the logarithm of x in the given base.
func logb(fn string, z, x *big.Float, base int64) *big.Float {
	if x.Sign() <= 0 {
		domain(fn, x)
	}
	wp := z.Prec() + guardBits
	n := bigfloat.Log(new(big.Float).SetPrec(wp), x)
	d := new(big.Float).SetPrec(wp).SetInt64(base)
	d = bigfloat.Log(new(big.Float).SetPrec(wp), d)
	return z.Quo(n, d)
}

func lb(z, x *big.Float) *big.Float {
	return logb("lb", z, x, 2)
}

// log10 is the ln function, which is the base-10 logarithm.
func log10(z, x *big.Float) *big.Float {
	return logb("ln", z, x, 10)
}

// exp computes e**x as 2**n · e**r, where x = n·ln 2 + r and |r| < ln 2.
// Results too large for big.Float are +Inf. Results too small are 0.
func exp(z, x *big.Float) *big.Float {
	if x.Sign() == 0 {
		return z.SetInt64(1)
	}
	e := x.MantExp(nil)
	if x.IsInf() || e > maxExpBits {
		return overflow(z, x.Sign())
	}
	wp := z.Prec() + guardBits
	if e > 0 {
		wp += uint(e)
	}
	ln2 := bigfloat.Log(new(big.Float).SetPrec(wp), new(big.Float).SetInt64(2))
	q := new(big.Float).SetPrec(wp).Quo(x, ln2)
	n, _ := q.Int64()
	switch {
	case n > big.MaxExp:
		return overflow(z, 1)
	case n < big.MinExp:
		return overflow(z, -1)
	}
	r := new(big.Float).SetPrec(wp).SetInt64(n)
	r.Sub(x, r.Mul(r, ln2))
	r = bigfloat.Exp(new(big.Float).SetPrec(wp), r)
	// SetMantExp overflows to +Inf and underflows to 0.
	return z.SetMantExp(r, int(n))
}

// pow computes x**y = exp(y·ln x) for x > 0.
func pow(z, x, y *big.Float) *big.Float {
	if x.Cmp(big.NewFloat(1)) == 0 {
		return z.SetInt64(1)
	}
	// With x ≠ 1, |ln x| is at least about 2**-x.Prec(), so an exponent
	// beyond this bound puts y·ln x outside the range of exp.
	e := y.MantExp(nil)
	if e > int(x.Prec())+maxExpBits+2 {
		s := y.Sign()
		if x.MantExp(nil) <= 0 {
			s = -s
		}
		return overflow(z, s)
	}
	wp := z.Prec() + guardBits + maxExpBits
	if e > 0 {
		wp += uint(e)
	}
	l := bigfloat.Log(new(big.Float).SetPrec(wp), x)
	l.Mul(l, y)
	return exp(z, l)
}

// overflow sets z to +Inf if sign is positive or to 0 otherwise.
func overflow(z *big.Float, sign int) *big.Float {
	if sign > 0 {
		return z.SetInf(false)
	}
	return z.SetInt64(0)
}

func sqrt(z, x *big.Float) *big.Float {
	if x.Sign() < 0 {
		domain("sqrt", x)
	}
	return z.Sqrt(x)
}
