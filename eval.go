package expreval

import (
	"errors"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// entry is a slot on the value stack. It holds either a value owned by the
// stack or a reference to a variable, never both.
type entry struct {
	val Value
	v   *Variable
}

// machine evaluates one postfix token list. It is not reused between
// expressions.
type machine struct {
	stack []entry
	ctx   evalctx
}

// Evaluate executes a postfix token list, as produced by Parse, and returns
// its single result. Assignments in the expression change the variables they
// name, including assignments that complete before an error.
func Evaluate(postfix TokenList, opts ...EvalOption) (Value, error) {
	m := machine{
		stack: make([]entry, 0, len(postfix)),
		ctx:   newEvalctx(opts),
	}
	return m.run(postfix)
}

func (m *machine) run(postfix TokenList) (Value, error) {
	if len(postfix) == 0 {
		return Value{}, &InsufficientOperandsError{}
	}
	for _, tok := range postfix {
		if err := m.step(tok); err != nil {
			return Value{}, err
		}
	}
	switch len(m.stack) {
	case 0:
		// Every operation pushes a result, so this is unreachable for a
		// non-empty list.
		panic("expreval: empty stack after evaluation")
	case 1:
		return m.resolve(m.stack[0], -1)
	default:
		return Value{}, &TooManyOperandsError{Count: len(m.stack)}
	}
}

// step applies one postfix token to the stack.
func (m *machine) step(tok Token) error {
	switch k := tok.Kind; {
	case k == Integer, k == Real, k == Boolean:
		m.push(entry{val: tok.Value})
	case k == Var:
		m.push(entry{v: tok.Var})
	case k == Pi:
		m.push(entry{val: realval(pi(m.ctx.prec))})
	case k == E:
		m.push(entry{val: realval(euler(m.ctx.prec))})
	case k.IsOperator(), k.IsFunction():
		n := k.Arity()
		if n > len(m.stack) {
			return &InsufficientOperandsError{Col: tok.Pos, Op: k, Need: n, Have: len(m.stack)}
		}
		args := m.popn(n)
		r, err := m.apply(tok, args)
		if err != nil {
			return err
		}
		m.push(r)
	default:
		return &UnknownTokenError{Col: tok.Pos, Kind: k}
	}
	return nil
}

// push puts an entry on top of the stack.
func (m *machine) push(e entry) {
	m.stack = append(m.stack, e)
}

// popn removes the top n entries from the stack and returns them in the order
// they were pushed, so the last element is the right-hand operand.
func (m *machine) popn(n int) []entry {
	k := len(m.stack) - n
	r := make([]entry, n)
	copy(r, m.stack[k:])
	for i := k; i < len(m.stack); i++ {
		m.stack[i] = entry{}
	}
	m.stack = m.stack[:k]
	return r
}

// resolve gets the value of a stack entry, unwrapping a variable. col is the
// position reported if the variable is unbound.
func (m *machine) resolve(e entry, col int) (Value, error) {
	if e.v == nil {
		return e.val, nil
	}
	val, ok := e.v.Value()
	if !ok {
		return Value{}, &UnboundVariableError{Col: col, Name: e.v.Name()}
	}
	return val, nil
}

// apply executes an operation on its popped operands. Panics from math/big
// for undefined results, e.g. the difference of two infinities, become
// domain errors.
func (m *machine) apply(op Token, args []entry) (r entry, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		e, ok := p.(error)
		if !ok {
			panic(p)
		}
		var de *DomainError
		if errors.As(e, &de) {
			if de.Col == 0 {
				de.Col = op.Pos
			}
			err = de
			return
		}
		var nan big.ErrNaN
		if errors.As(e, &nan) {
			err = &DomainError{Col: op.Pos, Func: op.Kind.Symbol(), Msg: nan.Error()}
			return
		}
		panic(p)
	}()
	if op.Kind == Assignment {
		return m.assign(op, args[0], args[1])
	}
	vals := make([]Value, len(args))
	for i, a := range args {
		vals[i], err = m.resolve(a, op.Pos)
		if err != nil {
			return entry{}, err
		}
	}
	var val Value
	switch len(vals) {
	case 1:
		val, err = m.unary(op, vals[0])
	case 2:
		val, err = m.binary(op, vals[0], vals[1])
	default:
		panic("expreval: operation " + op.Kind.String() + " with arity " + strconv.Itoa(len(vals)))
	}
	if err != nil {
		return entry{}, err
	}
	if val.kind == RealValue && val.f.IsInf() {
		return entry{}, &DomainError{Col: op.Pos, Func: op.Kind.Symbol(), Msg: "result out of range"}
	}
	return entry{val: val}, nil
}

// assign binds the value of rhs to the variable lhs and returns a reference to
// the variable, so that assignments chain.
func (m *machine) assign(op Token, lhs, rhs entry) (entry, error) {
	if lhs.v == nil {
		return entry{}, &InvalidAssignmentError{Col: op.Pos, Target: lhs.val.Kind()}
	}
	val, err := m.resolve(rhs, op.Pos)
	if err != nil {
		return entry{}, err
	}
	lhs.v.bind(val)
	return entry{v: lhs.v}, nil
}

// pi returns a new Real holding π.
func pi(prec uint) *big.Float {
	return bigfloat.Pi(new(big.Float).SetPrec(prec))
}

// euler returns a new Real holding e.
func euler(prec uint) *big.Float {
	var one big.Float
	one.SetPrec(prec).SetInt64(1)
	return bigfloat.Exp(new(big.Float).SetPrec(prec), &one)
}

// EvalExpression tokenizes, parses, and evaluates one expression using the
// variables in vars. Errors are *EvaluationError, wrapping the error of the
// stage that failed.
func EvalExpression(text string, vars *Vars, opts ...EvalOption) (Value, error) {
	return eval(NewTokenizer(vars, opts...), text, opts)
}

func eval(tz *Tokenizer, text string, opts []EvalOption) (Value, error) {
	infix, err := tz.Tokenize(text)
	if err != nil {
		return Value{}, &EvaluationError{Stage: "tokenize", Expr: text, Err: err}
	}
	postfix, err := Parse(infix)
	if err != nil {
		return Value{}, &EvaluationError{Stage: "parse", Expr: text, Err: err}
	}
	r, err := Evaluate(postfix, opts...)
	if err != nil {
		return Value{}, &EvaluationError{Stage: "evaluate", Expr: text, Err: err}
	}
	return r, nil
}
