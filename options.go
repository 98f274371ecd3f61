package expreval

import (
	"go.uber.org/zap"
)

// SessionOption is an option used when creating a Session.
type SessionOption interface {
	sessionOption(*Session)
}

// EvalOption is an option for tokenizing and evaluating expressions. Every
// EvalOption is also a SessionOption.
type EvalOption interface {
	SessionOption
	evalOption(evalctx) evalctx
}

// evalctx holds the settings shared by the tokenizer and the evaluator.
type evalctx struct {
	// prec is the precision in bits of Real literals and results.
	prec uint
}

func newEvalctx(opts []EvalOption) evalctx {
	ctx := evalctx{prec: DefaultPrec}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		ctx = opt.evalOption(ctx)
	}
	return ctx
}

type (
	precopt uint
	varopt  struct {
		name string
		val  Value
	}
	varsopt map[string]Value
	logopt  struct {
		log *zap.Logger
	}
	storeopt struct {
		vars *Vars
	}
)

// Prec sets the precision, in bits, of Real values. Zero means DefaultPrec.
func Prec(prec uint) EvalOption {
	return precopt(prec)
}

func (o precopt) evalOption(ctx evalctx) evalctx {
	if o == 0 {
		o = DefaultPrec
	}
	ctx.prec = uint(o)
	return ctx
}

func (o precopt) sessionOption(s *Session) {
	s.ctx = o.evalOption(s.ctx)
}

// SetVar binds a variable in a new session.
func SetVar(name string, val Value) SessionOption {
	return varopt{name, val}
}

func (o varopt) sessionOption(s *Session) {
	s.vars.Set(o.name, o.val)
}

// SetVars binds any number of variables in a new session.
func SetVars(vars map[string]Value) SessionOption {
	return varsopt(vars)
}

func (o varsopt) sessionOption(s *Session) {
	for k, v := range o {
		s.vars.Set(k, v)
	}
}

// WithLogger sets the logger a session reports evaluations to. By default,
// sessions do not log.
func WithLogger(log *zap.Logger) SessionOption {
	return logopt{log}
}

func (o logopt) sessionOption(s *Session) {
	if o.log != nil {
		s.log = o.log
	}
}

// WithVars makes a session use an existing variable dictionary instead of a
// new one. Options that set variables apply to it.
func WithVars(vars *Vars) SessionOption {
	return storeopt{vars}
}

func (o storeopt) sessionOption(s *Session) {
	if o.vars != nil {
		s.vars = o.vars
	}
}
