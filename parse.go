package expreval

import (
	"github.com/edwingeng/deque"
)

// Expr = Operand | Unary Expr | Expr '!' | Expr Binary Expr | Func '(' Args ')' | '(' Expr ')'
// Args = Expr { ',' Expr }
// Unary = '+' | '-' | 'not'
// Binary = '=' | 'or' | 'nor' | 'xor' | 'xnor' | 'and' | 'nand' | '==' | '!=' | '<' | '<=' | '>' | '>='
//        | '+' | '-' | '*' | '/' | '%' | 'mod' | '**'
//
// Operators are listed from least to most binding. '**' and '=' are
// right-associative, all other binary operators are left-associative, and
// unary operators bind more tightly than any binary operator.

// Parse converts a list of infix tokens to postfix order using the
// shunting-yard algorithm. The result contains no punctuation tokens.
func Parse(infix TokenList) (TokenList, error) {
	out := make(TokenList, 0, len(infix))
	ops := deque.NewDeque()
	for _, tok := range infix {
		switch {
		case tok.Kind.IsOperand():
			out = append(out, tok)
		case tok.Kind.IsFunction():
			// Emitted when its closing parenthesis is processed.
			ops.PushBack(tok)
		case tok.Kind == ArgumentSeparator:
			// Flush the completed argument, but leave the parenthesis.
			for {
				if ops.Empty() {
					return nil, &SeparatorError{Col: tok.Pos}
				}
				top := ops.Back().(Token)
				if top.Kind == LeftParenthesis {
					break
				}
				out = append(out, top)
				ops.PopBack()
			}
		case tok.Kind == LeftParenthesis:
			ops.PushBack(tok)
		case tok.Kind == RightParenthesis:
			for {
				if ops.Empty() {
					return nil, &MismatchedParenthesisError{Col: tok.Pos, Paren: ")"}
				}
				top := ops.PopBack().(Token)
				if top.Kind == LeftParenthesis {
					break
				}
				out = append(out, top)
			}
			if !ops.Empty() && ops.Back().(Token).Kind.IsFunction() {
				out = append(out, ops.PopBack().(Token))
			}
		case tok.Kind.IsOperator():
			for !ops.Empty() {
				top := ops.Back().(Token)
				if !yields(tok.Kind, top.Kind) {
					break
				}
				out = append(out, top)
				ops.PopBack()
			}
			ops.PushBack(tok)
		default:
			return nil, &UnknownTokenError{Col: tok.Pos, Kind: tok.Kind}
		}
	}
	for !ops.Empty() {
		top := ops.PopBack().(Token)
		if top.Kind == LeftParenthesis {
			return nil, &MismatchedParenthesisError{Col: top.Pos, Paren: "("}
		}
		out = append(out, top)
	}
	return out, nil
}

// yields reports whether the operator top, on the operator stack, must be
// output before the arriving operator op is pushed. Left-associative
// operators pop operators that bind at least as tightly, right-associative
// operators pop operators that bind more tightly, and unary operators pop
// nothing.
func yields(op, top Kind) bool {
	if !top.IsOperator() {
		return false
	}
	p, q := op.info(), top.info()
	switch p.assoc {
	case assocLeft:
		return p.prec <= q.prec
	case assocRight:
		return p.prec < q.prec
	default:
		return false
	}
}
