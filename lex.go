package expreval

import (
	"errors"
	"io"
	"math/big"
	"strings"
	"unicode"
)

// keywordKinds lists the predefined identifiers. Each is recognized in lower
// case, capitalized, and upper case.
var keywordKinds = []struct {
	name string
	kind Kind
}{
	{"abs", Abs},
	{"and", And},
	{"arccos", Arccos},
	{"arcsin", Arcsin},
	{"arctan", Arctan},
	{"arctan2", Arctan2},
	{"ceil", Ceil},
	{"cos", Cos},
	{"e", E},
	{"exp", Exp},
	{"false", Boolean},
	{"floor", Floor},
	{"lb", Lb},
	{"ln", Ln},
	{"log", Log},
	{"max", Max},
	{"min", Min},
	{"mod", Modulus},
	{"nand", Nand},
	{"nor", Nor},
	{"not", Not},
	{"or", Or},
	{"pi", Pi},
	{"pow", Pow},
	{"result", Result},
	{"sin", Sin},
	{"sqrt", Sqrt},
	{"tan", Tan},
	{"true", Boolean},
	{"xnor", Xnor},
	{"xor", Xor},
}

func newKeywords() map[string]Kind {
	m := make(map[string]Kind, 3*len(keywordKinds))
	for _, kw := range keywordKinds {
		m[kw.name] = kw.kind
		m[strings.ToUpper(kw.name[:1])+kw.name[1:]] = kw.kind
		m[strings.ToUpper(kw.name)] = kw.kind
	}
	return m
}

// Tokenizer converts expression text to infix tokens. Identifiers that are
// not keywords become variables in the tokenizer's Vars. It is not safe to
// use a Tokenizer concurrently.
type Tokenizer struct {
	keywords map[string]Kind
	vars     *Vars
	prec     uint
}

// NewTokenizer creates a tokenizer that resolves identifiers in vars. Only
// the Prec option affects tokenizing; it sets the precision of Real literals.
func NewTokenizer(vars *Vars, opts ...EvalOption) *Tokenizer {
	ctx := newEvalctx(opts)
	return &Tokenizer{
		keywords: newKeywords(),
		vars:     vars,
		prec:     ctx.prec,
	}
}

// Vars returns the variable dictionary the tokenizer adds identifiers to.
func (tz *Tokenizer) Vars() *Vars {
	return tz.vars
}

// Tokenize scans an expression into a list of infix tokens. New identifiers
// are added to the tokenizer's variables even if tokenizing fails later in
// the expression.
func (tz *Tokenizer) Tokenize(expr string) (TokenList, error) {
	scan := lex(expr)
	var toks TokenList
	prev := kindNone
	for {
		tok, err := scan.next(tz, prev)
		if err != nil {
			return nil, err
		}
		if tok.Kind == kindNone {
			return toks, nil
		}
		toks = append(toks, tok)
		prev = tok.Kind
	}
}

type lexer struct {
	expr string
	src  io.RuneScanner
	buf  strings.Builder
	// pos is the byte offset of the next rune to be read.
	pos int
	// last is the size of the last rune read, for unreading.
	last int
}

func lex(expr string) *lexer {
	return &lexer{
		expr: expr,
		src:  strings.NewReader(expr),
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	l.pos += sz
	l.last = sz
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.pos -= l.last
	l.last = 0
}

// follows consumes the next rune if it is r.
func (l *lexer) follows(r rune) bool {
	c, err := l.readRune()
	if err != nil {
		return false
	}
	if c != r {
		l.unreadRune()
		return false
	}
	return true
}

// next scans the next token from the input. prev is the kind of the previous
// token, which decides whether + and - are unary or binary. At the end of the
// input, the result is a token of kind 0 with a nil error.
func (l *lexer) next(tz *Tokenizer, prev Kind) (Token, error) {
	defer l.buf.Reset()
	for {
		tok := Token{Pos: l.pos}
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Token{Pos: l.pos}, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			return l.scanNum(tok, tz.prec)
		case isAlpha(r):
			l.unreadRune()
			l.scanIdent()
			return tz.ident(tok, l.buf.String()), nil
		}
		switch r {
		case '<':
			tok.Kind = Less
			if l.follows('=') {
				tok.Kind = LessEqual
			}
		case '>':
			tok.Kind = Greater
			if l.follows('=') {
				tok.Kind = GreaterEqual
			}
		case '=':
			tok.Kind = Assignment
			if l.follows('=') {
				tok.Kind = Equality
			}
		case '!':
			tok.Kind = Factorial
			if l.follows('=') {
				tok.Kind = Inequality
			}
		case '*':
			tok.Kind = Multiplication
			if l.follows('*') {
				tok.Kind = Power
			}
		case '/':
			tok.Kind = Division
		case '%':
			tok.Kind = Modulus
		case '(':
			tok.Kind = LeftParenthesis
		case ')':
			tok.Kind = RightParenthesis
		case ',':
			tok.Kind = ArgumentSeparator
		case '+':
			tok.Kind = Identity
			if binaryContext(prev) {
				tok.Kind = Addition
			}
		case '-':
			tok.Kind = Negation
			if binaryContext(prev) {
				tok.Kind = Subtraction
			}
		default:
			return Token{}, &BadCharacterError{Expr: l.expr, Offset: tok.Pos}
		}
		return tok, nil
	}
}

// binaryContext reports whether a + or - following a token of kind prev is a
// binary operator. At the start of an expression or after an operator, it is
// unary.
func binaryContext(prev Kind) bool {
	return prev == RightParenthesis || prev.IsOperand() || prev.IsPostfix()
}

// scanNum scans an Integer or Real literal. A run of digits followed by a
// decimal point is a Real, whether or not more digits follow the point.
func (l *lexer) scanNum(tok Token, prec uint) (Token, error) {
	dot := false
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return tok, err
		}
		if r == '.' && !dot {
			dot = true
			l.buf.WriteRune(r)
			continue
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	text := l.buf.String()
	if !dot {
		x, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return tok, &NumericOverflowError{Expr: l.expr, Offset: tok.Pos}
		}
		tok.Kind = Integer
		tok.Value = intval(x)
		return tok, nil
	}
	x, _, err := new(big.Float).SetPrec(prec).Parse(text, 10)
	if err != nil {
		return tok, &NumericOverflowError{Expr: l.expr, Offset: tok.Pos}
	}
	tok.Kind = Real
	tok.Value = realval(x)
	return tok, nil
}

func (l *lexer) scanIdent() {
	for {
		r, err := l.readRune()
		if err != nil {
			// next unreads the rune that decides ident scanning before
			// calling scanIdent, so we have scanned at least one rune.
			return
		}
		switch {
		case isAlpha(r), '0' <= r && r <= '9':
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			return
		}
	}
}

// isAlpha reports whether r can start an identifier. Identifiers are ASCII
// letters followed by ASCII letters and digits.
func isAlpha(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// ident resolves an identifier to a keyword or a variable.
func (tz *Tokenizer) ident(tok Token, name string) Token {
	k, ok := tz.keywords[name]
	if !ok {
		tok.Kind = Var
		tok.Var = tz.vars.Intern(name)
		return tok
	}
	tok.Kind = k
	if k == Boolean {
		tok.Value = NewBool(strings.EqualFold(name, "true"))
	}
	return tok
}
