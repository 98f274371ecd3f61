package expreval

import (
	"strconv"
	"strings"
)

// Kind identifies a token: an operand, an operator, a function, or a piece of
// punctuation. The static properties of each kind are in a table keyed on the
// kind, so there is no need to inspect a token beyond its Kind.
type Kind int8

const (
	kindNone Kind = iota

	// Operands. Integer, Real, and Boolean tokens carry a Value. Var tokens
	// carry a *Variable. Pi and E are materialized as fresh Reals each time
	// they are evaluated.
	Integer
	Real
	Boolean
	Var
	Pi
	E

	// Unary operators.
	Identity
	Negation
	Not
	Factorial

	// Binary operators.
	Addition
	Subtraction
	Multiplication
	Division
	Modulus
	Power
	Assignment
	Equality
	Inequality
	Less
	LessEqual
	Greater
	GreaterEqual
	And
	Or
	Xor
	Nand
	Nor
	Xnor

	// Functions of one argument.
	Abs
	Arccos
	Arcsin
	Arctan
	Ceil
	Cos
	Exp
	Floor
	Lb
	Ln
	Log
	Sin
	Sqrt
	Tan
	Result

	// Functions of two arguments.
	Arctan2
	Max
	Min
	Pow

	// Punctuation. These never appear in postfix token lists.
	LeftParenthesis
	RightParenthesis
	ArgumentSeparator

	kindMax
)

type class int8

const (
	classNone class = iota
	classOperand
	classOperator
	classFunction
	classPunct
)

// precedence orders operator categories. Higher is more binding.
type precedence int8

const (
	precNone precedence = iota
	precAssignment
	precOr
	precXor
	precAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precPower
	precUnary
	precPostfix
)

type assoc int8

const (
	assocNone assoc = iota
	assocLeft
	assocRight
)

type kindinfo struct {
	name  string
	sym   string
	class class
	arity int
	prec  precedence
	assoc assoc
}

var kinds = [kindMax]kindinfo{
	kindNone: {name: "None"},

	Integer: {name: "Integer", class: classOperand},
	Real:    {name: "Real", class: classOperand},
	Boolean: {name: "Boolean", class: classOperand},
	Var:     {name: "Var", class: classOperand},
	Pi:      {name: "Pi", sym: "pi", class: classOperand},
	E:       {name: "E", sym: "e", class: classOperand},

	Identity:  {"Identity", "+", classOperator, 1, precUnary, assocNone},
	Negation:  {"Negation", "-", classOperator, 1, precUnary, assocNone},
	Not:       {"Not", "not", classOperator, 1, precUnary, assocNone},
	Factorial: {"Factorial", "!", classOperator, 1, precPostfix, assocNone},

	Addition:       {"Addition", "+", classOperator, 2, precAdditive, assocLeft},
	Subtraction:    {"Subtraction", "-", classOperator, 2, precAdditive, assocLeft},
	Multiplication: {"Multiplication", "*", classOperator, 2, precMultiplicative, assocLeft},
	Division:       {"Division", "/", classOperator, 2, precMultiplicative, assocLeft},
	Modulus:        {"Modulus", "%", classOperator, 2, precMultiplicative, assocLeft},
	Power:          {"Power", "**", classOperator, 2, precPower, assocRight},
	Assignment:     {"Assignment", "=", classOperator, 2, precAssignment, assocRight},
	Equality:       {"Equality", "==", classOperator, 2, precEquality, assocLeft},
	Inequality:     {"Inequality", "!=", classOperator, 2, precEquality, assocLeft},
	Less:           {"Less", "<", classOperator, 2, precRelational, assocLeft},
	LessEqual:      {"LessEqual", "<=", classOperator, 2, precRelational, assocLeft},
	Greater:        {"Greater", ">", classOperator, 2, precRelational, assocLeft},
	GreaterEqual:   {"GreaterEqual", ">=", classOperator, 2, precRelational, assocLeft},
	And:            {"And", "and", classOperator, 2, precAnd, assocLeft},
	Or:             {"Or", "or", classOperator, 2, precOr, assocLeft},
	Xor:            {"Xor", "xor", classOperator, 2, precXor, assocLeft},
	Nand:           {"Nand", "nand", classOperator, 2, precAnd, assocLeft},
	Nor:            {"Nor", "nor", classOperator, 2, precOr, assocLeft},
	Xnor:           {"Xnor", "xnor", classOperator, 2, precXor, assocLeft},

	Abs:    {name: "Abs", sym: "abs", class: classFunction, arity: 1},
	Arccos: {name: "Arccos", sym: "arccos", class: classFunction, arity: 1},
	Arcsin: {name: "Arcsin", sym: "arcsin", class: classFunction, arity: 1},
	Arctan: {name: "Arctan", sym: "arctan", class: classFunction, arity: 1},
	Ceil:   {name: "Ceil", sym: "ceil", class: classFunction, arity: 1},
	Cos:    {name: "Cos", sym: "cos", class: classFunction, arity: 1},
	Exp:    {name: "Exp", sym: "exp", class: classFunction, arity: 1},
	Floor:  {name: "Floor", sym: "floor", class: classFunction, arity: 1},
	Lb:     {name: "Lb", sym: "lb", class: classFunction, arity: 1},
	Ln:     {name: "Ln", sym: "ln", class: classFunction, arity: 1},
	Log:    {name: "Log", sym: "log", class: classFunction, arity: 1},
	Sin:    {name: "Sin", sym: "sin", class: classFunction, arity: 1},
	Sqrt:   {name: "Sqrt", sym: "sqrt", class: classFunction, arity: 1},
	Tan:    {name: "Tan", sym: "tan", class: classFunction, arity: 1},
	Result: {name: "Result", sym: "result", class: classFunction, arity: 1},

	Arctan2: {name: "Arctan2", sym: "arctan2", class: classFunction, arity: 2},
	Max:     {name: "Max", sym: "max", class: classFunction, arity: 2},
	Min:     {name: "Min", sym: "min", class: classFunction, arity: 2},
	Pow:     {name: "Pow", sym: "pow", class: classFunction, arity: 2},

	LeftParenthesis:   {name: "LeftParenthesis", sym: "(", class: classPunct},
	RightParenthesis:  {name: "RightParenthesis", sym: ")", class: classPunct},
	ArgumentSeparator: {name: "ArgumentSeparator", sym: ",", class: classPunct},
}

func (k Kind) info() kindinfo {
	if k <= kindNone || k >= kindMax {
		return kindinfo{name: "Kind(" + strconv.Itoa(int(k)) + ")"}
	}
	return kinds[k]
}

func (k Kind) String() string {
	return k.info().name
}

// Symbol returns the text that produces the kind in an expression, e.g. "**"
// for Power or "sqrt" for Sqrt. Literal kinds have no symbol.
func (k Kind) Symbol() string {
	return k.info().sym
}

// IsOperand reports whether k is a literal, a variable, or a constant.
func (k Kind) IsOperand() bool {
	return k.info().class == classOperand
}

// IsOperator reports whether k is a prefix, postfix, or binary operator.
func (k Kind) IsOperator() bool {
	return k.info().class == classOperator
}

// IsFunction reports whether k is a named function.
func (k Kind) IsFunction() bool {
	return k.info().class == classFunction
}

// IsPostfix reports whether k is a postfix operator.
func (k Kind) IsPostfix() bool {
	return k.info().prec == precPostfix
}

// Arity returns the number of operands an operator or function consumes.
// Operands and punctuation have arity 0.
func (k Kind) Arity() int {
	return k.info().arity
}

// Precedence returns the binding strength of an operator. Higher binds more
// tightly. Non-operators have precedence 0.
func (k Kind) Precedence() int {
	return int(k.info().prec)
}

// LeftAssoc and RightAssoc report the associativity of binary operators.
// Unary operators are neither.
func (k Kind) LeftAssoc() bool {
	return k.info().assoc == assocLeft
}

func (k Kind) RightAssoc() bool {
	return k.info().assoc == assocRight
}

// Token is a lexical unit of an expression.
type Token struct {
	Kind Kind
	// Value is the value of Integer, Real, and Boolean tokens.
	Value Value
	// Var is the variable referenced by a Var token.
	Var *Variable
	// Pos is the byte offset of the token in its expression.
	Pos int
}

func (t Token) String() string {
	switch t.Kind {
	case Integer, Real, Boolean:
		return t.Kind.String() + "(" + t.Value.Format(6) + ")"
	case Var:
		return "Var(" + t.Var.Name() + ")"
	default:
		return t.Kind.String()
	}
}

// TokenList is a sequence of tokens in infix or postfix order.
type TokenList []Token

// Kinds returns the kind of each token in the list.
func (l TokenList) Kinds() []Kind {
	r := make([]Kind, len(l))
	for i, t := range l {
		r[i] = t.Kind
	}
	return r
}

func (l TokenList) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteByte(']')
	return b.String()
}
