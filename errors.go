package expreval

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// BadCharacterError indicates a character that does not begin any token. It
// implements InputError.
type BadCharacterError struct {
	// Expr is the expression being tokenized.
	Expr string
	// Offset is the byte offset of the bad character in Expr.
	Offset int
}

func (err *BadCharacterError) Error() string {
	r, _ := utf8.DecodeRuneInString(err.Expr[err.Offset:])
	return errpos(err.Offset, "bad character "+strconv.QuoteRune(r)+" in "+strconv.Quote(err.Expr))
}

func (err *BadCharacterError) Pos() int {
	return err.Offset
}

// NumericOverflowError indicates a numeric literal too large to represent.
// Integers and Reals are unbounded, so the tokenizer does not currently
// produce this error; it exists so that callers can already handle literal
// limits. It implements InputError.
type NumericOverflowError struct {
	// Expr is the expression being tokenized.
	Expr string
	// Offset is the byte offset of the literal in Expr.
	Offset int
}

func (err *NumericOverflowError) Error() string {
	return errpos(err.Offset, "numeric literal overflow in "+strconv.Quote(err.Expr))
}

func (err *NumericOverflowError) Pos() int {
	return err.Offset
}

// MismatchedParenthesisError indicates a close parenthesis with no open
// parenthesis or an open parenthesis that is never closed. It implements
// InputError.
type MismatchedParenthesisError struct {
	// Col is the offset of the offending parenthesis.
	Col int
	// Paren is "(" for an unclosed parenthesis or ")" for an unopened one.
	Paren string
}

func (err *MismatchedParenthesisError) Error() string {
	if err.Paren == "(" {
		return errpos(err.Col, "open parenthesis with no close parenthesis")
	}
	return errpos(err.Col, "close parenthesis with no open parenthesis")
}

func (err *MismatchedParenthesisError) Pos() int {
	return err.Col
}

// SeparatorError indicates an argument separator outside a function argument
// list. It implements InputError.
type SeparatorError struct {
	// Col is the offset of the separator.
	Col int
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "argument separator outside of function call")
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// UnknownTokenError indicates a token that the parser does not understand.
// Tokens produced by a Tokenizer never cause it. It implements InputError.
type UnknownTokenError struct {
	// Col is the offset of the token.
	Col int
	// Kind is the kind of the token.
	Kind Kind
}

func (err *UnknownTokenError) Error() string {
	return errpos(err.Col, "unknown token "+err.Kind.String())
}

func (err *UnknownTokenError) Pos() int {
	return err.Col
}

// InsufficientOperandsError indicates an empty expression or an operation
// with fewer operands available than it requires. It implements InputError.
type InsufficientOperandsError struct {
	// Col is the offset of the operation, or 0 for an empty expression.
	Col int
	// Op is the operation, or 0 for an empty expression.
	Op Kind
	// Need and Have are the operation's arity and the available operands.
	Need, Have int
}

func (err *InsufficientOperandsError) Error() string {
	if err.Op == kindNone {
		return errpos(err.Col, "insufficient operands: empty expression")
	}
	return errpos(err.Col, "insufficient operands for "+opname(err.Op)+": need "+strconv.Itoa(err.Need)+", have "+strconv.Itoa(err.Have))
}

func (err *InsufficientOperandsError) Pos() int {
	return err.Col
}

// TooManyOperandsError indicates operands left over after evaluation.
type TooManyOperandsError struct {
	// Count is the number of values remaining.
	Count int
}

func (err *TooManyOperandsError) Error() string {
	return "too many operands: " + strconv.Itoa(err.Count) + " values remain after evaluation"
}

// DivisionByZeroError indicates a division or modulus by zero, or zero raised
// to a negative power. It implements InputError.
type DivisionByZeroError struct {
	// Col is the offset of the operation.
	Col int
	// Op is the operation.
	Op Kind
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero in "+opname(err.Op))
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// InvalidAssignmentError indicates an assignment to something other than a
// variable. It implements InputError.
type InvalidAssignmentError struct {
	// Col is the offset of the assignment operator.
	Col int
	// Target is the kind of value that was assigned to.
	Target ValueKind
}

func (err *InvalidAssignmentError) Error() string {
	return errpos(err.Col, "cannot assign to "+err.Target.String()+" value")
}

func (err *InvalidAssignmentError) Pos() int {
	return err.Col
}

// UnsupportedOperationError indicates an operation that is not defined for
// the kinds of its operands, e.g. modulus of Reals. It implements InputError.
type UnsupportedOperationError struct {
	// Col is the offset of the operation.
	Col int
	// Op is the operation.
	Op Kind
	// Operands are the kinds of the operands, left to right.
	Operands []ValueKind
}

func (err *UnsupportedOperationError) Error() string {
	var b strings.Builder
	b.WriteString("unsupported operation ")
	b.WriteString(opname(err.Op))
	if len(err.Operands) > 0 {
		b.WriteString(" on ")
		for i, k := range err.Operands {
			if i > 0 {
				b.WriteString(" and ")
			}
			b.WriteString(k.String())
		}
	}
	return errpos(err.Col, b.String())
}

func (err *UnsupportedOperationError) Pos() int {
	return err.Col
}

// UnboundVariableError indicates a read of a variable which has never been
// assigned. It implements InputError.
type UnboundVariableError struct {
	// Col is the offset of the operation that read the variable, or -1 if the
	// variable was the result of the expression.
	Col int
	// Name is the variable name.
	Name string
}

func (err *UnboundVariableError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

func (err *UnboundVariableError) Pos() int {
	return err.Col
}

// EvaluationError wraps an error from one stage of evaluating an expression.
// Use errors.As to recover the stage's error.
type EvaluationError struct {
	// Stage is "tokenize", "parse", or "evaluate".
	Stage string
	// Expr is the expression text.
	Expr string
	// Err is the error from the stage.
	Err error
}

func (err *EvaluationError) Error() string {
	return err.Stage + " " + strconv.Quote(err.Expr) + ": " + err.Err.Error()
}

func (err *EvaluationError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// opname names an operation by the text that produces it.
func opname(k Kind) string {
	if s := k.Symbol(); s != "" {
		return strconv.Quote(s)
	}
	return k.String()
}

// InputError is an error with position information. Every error resulting from
// invalid input at a known position implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset in the expression of the character or
	// token that caused the error.
	Pos() int
}

var (
	_ InputError = (*BadCharacterError)(nil)
	_ InputError = (*NumericOverflowError)(nil)
	_ InputError = (*MismatchedParenthesisError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*UnknownTokenError)(nil)
	_ InputError = (*InsufficientOperandsError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*InvalidAssignmentError)(nil)
	_ InputError = (*UnsupportedOperationError)(nil)
	_ InputError = (*UnboundVariableError)(nil)
	_ InputError = (*DomainError)(nil)
)
