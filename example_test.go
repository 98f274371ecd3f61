package expreval_test

import (
	"fmt"

	"github.com/soniafriesen/expreval"
)

func ExampleEvalExpression() {
	vars := expreval.NewVars()
	for _, src := range []string{"x = 5", "x + 1", "2 ** -1", "not (x > 3)", "7 mod 0"} {
		r, err := expreval.EvalExpression(src, vars)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r.Kind(), r.Format(2))
	}

	// Output:
	// Integer 5
	// Integer 6
	// Real 0.50
	// Boolean false
	// evaluate "7 mod 0": 2: division by zero in "%"
}

func ExampleParse() {
	tz := expreval.NewTokenizer(expreval.NewVars())
	infix, _ := tz.Tokenize("max(1, 2) * -3!")
	fmt.Println(infix)
	postfix, _ := expreval.Parse(infix)
	fmt.Println(postfix)

	// Output:
	// [Max, LeftParenthesis, Integer(1), ArgumentSeparator, Integer(2), RightParenthesis, Multiplication, Negation, Integer(3), Factorial]
	// [Integer(1), Integer(2), Max, Integer(3), Factorial, Negation, Multiplication]
}

func ExampleSession() {
	s, err := expreval.NewSession(expreval.SetVar("r", expreval.NewInt64(2)), expreval.Prec(64))
	if err != nil {
		panic(err)
	}
	area, _ := s.Eval("pi * r ** 2")
	fmt.Println(area.Format(10))
	s.Eval("r = r * 10")
	area, _ = s.Eval("pi * r ** 2")
	fmt.Println(area.Format(10))

	// Output:
	// 12.5663706144
	// 1256.6370614359
}
