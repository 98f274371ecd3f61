package expreval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/soniafriesen/expreval"
)

func TestSessionVars(t *testing.T) {
	s, err := expreval.NewSession()
	require.NoError(t, err)
	_, err = s.Eval("x = 2")
	require.NoError(t, err)
	r, err := s.Eval("x ** 10")
	require.NoError(t, err)
	assert.True(t, ival(1024).Equal(r))
	assert.Equal(t, []string{"x"}, s.Vars().Names())
}

func TestSessionsIndependent(t *testing.T) {
	a, err := expreval.NewSession()
	require.NoError(t, err)
	b, err := expreval.NewSession()
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())

	_, err = a.Eval("x = 1")
	require.NoError(t, err)
	_, err = b.Eval("x")
	var ub *expreval.UnboundVariableError
	assert.ErrorAs(t, err, &ub)
}

func TestSessionOptions(t *testing.T) {
	shared := expreval.NewVars()
	shared.Set("base", ival(10))
	s, err := expreval.NewSession(
		expreval.SetVar("y", ival(3)),
		expreval.SetVars(map[string]expreval.Value{"z": bval(true)}),
		expreval.WithVars(shared),
		expreval.Prec(64),
		nil,
	)
	require.NoError(t, err)
	assert.Same(t, shared, s.Vars())
	assert.Equal(t, uint(64), s.Prec())

	r, err := s.Eval("base * y")
	require.NoError(t, err)
	assert.True(t, ival(30).Equal(r))
	r, err = s.Eval("not z")
	require.NoError(t, err)
	assert.True(t, bval(false).Equal(r))

	r, err = s.Eval("1.0 / 3")
	require.NoError(t, err)
	assert.Equal(t, uint(64), r.BigFloat().Prec())
}

func TestSessionSetPrec(t *testing.T) {
	s, err := expreval.NewSession(expreval.Prec(64))
	require.NoError(t, err)
	s.SetPrec(200)
	assert.Equal(t, uint(200), s.Prec())
	r, err := s.Eval("0.1 + 1")
	require.NoError(t, err)
	assert.Equal(t, uint(200), r.BigFloat().Prec())

	s.SetPrec(0)
	assert.Equal(t, uint(expreval.DefaultPrec), s.Prec())
}

func TestSessionLast(t *testing.T) {
	s, err := expreval.NewSession()
	require.NoError(t, err)
	_, ok := s.Last()
	assert.False(t, ok)

	_, err = s.Eval("6 * 7")
	require.NoError(t, err)
	_, err = s.Eval("1 / 0")
	require.Error(t, err)

	last, ok := s.Last()
	require.True(t, ok)
	assert.True(t, ival(42).Equal(last))
}

func TestSessionLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s, err := expreval.NewSession(expreval.WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = s.Eval("1 + 1")
	require.NoError(t, err)
	_, err = s.Eval("1 +")
	require.Error(t, err)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	ok := entries[0]
	assert.Equal(t, zapcore.DebugLevel, ok.Level)
	assert.Equal(t, "evaluated", ok.Message)
	fields := ok.ContextMap()
	assert.Equal(t, "1 + 1", fields["expr"])
	assert.Equal(t, "Integer", fields["kind"])
	assert.Equal(t, s.ID(), fields["session"])

	bad := entries[1]
	assert.Equal(t, zapcore.InfoLevel, bad.Level)
	assert.Equal(t, "evaluation failed", bad.Message)
	assert.Contains(t, bad.ContextMap()["error"], "insufficient operands")
}
