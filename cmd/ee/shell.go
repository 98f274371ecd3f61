package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/soniafriesen/expreval"
)

// shell interprets one line of input at a time, either a command or an
// expression.
type shell struct {
	sess   *expreval.Session
	digits int
	out    io.Writer
	errw   io.Writer

	// count numbers the results.
	count int

	red   func(a ...interface{}) string
	green func(a ...interface{}) string
	cyan  func(a ...interface{}) string
}

func newShell(sess *expreval.Session, digits int, out, errw io.Writer) *shell {
	return &shell{
		sess:   sess,
		digits: digits,
		out:    out,
		errw:   errw,
		red:    color.New(color.FgRed).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		cyan:   color.New(color.FgCyan).SprintFunc(),
	}
}

// line handles one input line. It returns true if the user asked to quit.
func (sh *shell) line(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		if len(fields) == 1 {
			return true
		}
	case "help":
		if len(fields) == 1 {
			fmt.Fprint(sh.out, help)
			return false
		}
	case "vars":
		if len(fields) == 1 {
			sh.vars()
			return false
		}
	case "setp":
		if len(fields) == 2 {
			sh.setp(fields[1])
			return false
		}
	case "prec":
		if len(fields) == 2 {
			sh.prec(fields[1])
			return false
		}
	}
	sh.eval(text)
	return false
}

// eval evaluates an expression and prints its result or error. It reports
// whether evaluation succeeded.
func (sh *shell) eval(text string) bool {
	r, err := sh.sess.Eval(text)
	if err != nil {
		fmt.Fprintln(sh.errw, sh.red("error: "+err.Error()))
		return false
	}
	fmt.Fprintf(sh.out, "[%d] = %s\n", sh.count, sh.format(r))
	sh.count++
	return true
}

func (sh *shell) format(r expreval.Value) string {
	s := r.Format(sh.digits)
	switch r.Kind() {
	case expreval.BooleanValue:
		return sh.cyan(s)
	default:
		return sh.green(s)
	}
}

func (sh *shell) vars() {
	vs := sh.sess.Vars()
	for _, name := range vs.Names() {
		val, ok := vs.Lookup(name).Value()
		if !ok {
			continue
		}
		fmt.Fprintf(sh.out, "%s = %s\n", name, sh.format(val))
	}
}

func (sh *shell) setp(arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		fmt.Fprintln(sh.errw, sh.red("error: setp needs a non-negative number of digits, not "+strconv.Quote(arg)))
		return
	}
	sh.digits = n
	fmt.Fprintf(sh.out, "reals print with %d decimals\n", n)
}

func (sh *shell) prec(arg string) {
	p, err := strconv.ParseUint(arg, 10, 0)
	if err != nil || p == 0 {
		fmt.Fprintln(sh.errw, sh.red("error: prec needs a positive number of bits, not "+strconv.Quote(arg)))
		return
	}
	sh.sess.SetPrec(uint(p))
	fmt.Fprintf(sh.out, "reals compute with %d bits\n", sh.sess.Prec())
}

const help = `Enter an expression to evaluate it, or one of these commands:
  help      show this message
  vars      list assigned variables
  setp N    print reals with N decimals
  prec N    compute reals with N bits of precision
  quit      leave (also exit, or end of input)

Operands: integers (42), reals (4.2), true, false, pi, e, and variables.
Operators, from least to most binding:
  =                     assignment, right-associative
  or nor                xor xnor              and nand
  == !=                 < <= > >=
  + -                   * / % mod             ** (right-associative)
  + - not (prefix)      ! (factorial, postfix)
Functions: abs arccos arcsin arctan ceil cos exp floor lb ln sin sqrt tan
  result (doubles its argument), arctan2(y, x) max(a, b) min(a, b) pow(x, y)
`
