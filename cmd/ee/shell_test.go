package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soniafriesen/expreval"
)

func testShell(t *testing.T) (*shell, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	sess, err := expreval.NewSession(expreval.Prec(128))
	require.NoError(t, err)
	var out, errw bytes.Buffer
	return newShell(sess, 3, &out, &errw), &out, &errw
}

func TestShellLines(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		out   string
		err   string
	}{
		{"integer", []string{"1 + 2 * 3"}, "[0] = 7\n", ""},
		{"real", []string{"1.5 * 2"}, "[0] = 3.000\n", ""},
		{"boolean", []string{"3 < 4"}, "[0] = true\n", ""},
		{"assign", []string{"x = 5", "x + 1"}, "[0] = 5\n[1] = 6\n", ""},
		{"vars", []string{"b = 2", "a = true", "vars"}, "[0] = 2\n[1] = true\na = true\nb = 2\n", ""},
		{"setp", []string{"setp 1", "1.25 * 2"}, "reals print with 1 decimals\n[0] = 2.5\n", ""},
		{"setp bad", []string{"setp -1"}, "", "setp needs"},
		{"prec", []string{"1.0 / 3", "prec 8", "1.0 / 3"}, "[0] = 0.333\nreals compute with 8 bits\n[1] = 0.334\n", ""},
		{"prec bad", []string{"prec 0"}, "", "prec needs"},
		{"blank", []string{"   "}, "", ""},
		{"count skips errors", []string{"1 +", "2"}, "[0] = 2\n", "insufficient operands"},
		{"error", []string{"5 / 0"}, "", "division by zero"},
		{"help", []string{"help"}, help, ""},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			sh, out, errw := testShell(t)
			for _, line := range c.lines {
				assert.False(t, sh.line(line))
			}
			assert.Equal(t, c.out, out.String())
			if c.err == "" {
				assert.Empty(t, errw.String())
			} else {
				assert.Contains(t, errw.String(), c.err)
			}
		})
	}
}

func TestShellQuit(t *testing.T) {
	for _, line := range []string{"quit", "exit", "  QUIT  "} {
		sh, _, _ := testShell(t)
		assert.True(t, sh.line(line), line)
	}
}

func TestShellEvalReports(t *testing.T) {
	sh, _, errw := testShell(t)
	assert.True(t, sh.eval("2 ** 10"))
	assert.False(t, sh.eval("(1 + 2"))
	assert.True(t, strings.HasPrefix(errw.String(), "error: "))
}
