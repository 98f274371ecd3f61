// Package expreval evaluates arithmetic, boolean, and assignment expressions
// over arbitrary-precision integers, arbitrary-precision reals, and booleans.
//
// Evaluation happens in three stages. A Tokenizer scans text into a TokenList
// in infix order, resolving identifiers to keywords or to variables. Parse
// reorders the tokens to postfix with the shunting-yard algorithm. Evaluate
// runs the postfix list on a value stack and returns a single Value.
// EvalExpression and Session.Eval compose the three.
//
// "2 + 3 * 4" is 14, "2 ** 3 ** 2" is 512, and "-2 ** 2" is 4, since unary
// operators bind more tightly than any binary operator. Integer arithmetic
// stays Integer unless a Real is involved or an Integer is raised to a
// negative power. "x = y = 5" assigns 5 to both variables; assignment
// evaluates to the variable, so "(x = 5) + 1" is 6.
//
// Variables live in a Vars dictionary shared by the tokenizer and evaluator.
// Each Session owns its own, so independent sessions never see each other's
// variables.
package expreval
