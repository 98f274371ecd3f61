package expreval

import (
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// Session evaluates a sequence of expressions that share variables. Each
// session owns its tokenizer and, unless WithVars is given, its variables.
// It is not safe to use a Session concurrently.
type Session struct {
	ctx  evalctx
	vars *Vars
	tz   *Tokenizer
	log  *zap.Logger
	id   uuid.UUID

	last    Value
	hasLast bool
}

// NewSession creates a session. Options that set variables are applied after
// WithVars, regardless of their order.
func NewSession(opts ...SessionOption) (*Session, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	s := &Session{
		ctx:  evalctx{prec: DefaultPrec},
		vars: NewVars(),
		log:  zap.NewNop(),
		id:   id,
	}
	for _, opt := range opts {
		if o, ok := opt.(storeopt); ok {
			o.sessionOption(s)
		}
	}
	for _, opt := range opts {
		switch opt.(type) {
		case nil, storeopt:
			continue
		}
		opt.sessionOption(s)
	}
	s.tz = NewTokenizer(s.vars, precopt(s.ctx.prec))
	s.log = s.log.With(zap.String("session", s.id.String()))
	return s, nil
}

// Eval evaluates one expression. On success, the result becomes the session's
// last result. Errors are *EvaluationError.
func (s *Session) Eval(expr string) (Value, error) {
	start := time.Now()
	r, err := eval(s.tz, expr, []EvalOption{precopt(s.ctx.prec)})
	if err != nil {
		s.log.Info("evaluation failed", zap.String("expr", expr), zap.Error(err))
		return Value{}, err
	}
	s.last, s.hasLast = r, true
	s.log.Debug("evaluated",
		zap.String("expr", expr),
		zap.Stringer("kind", r.Kind()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return r, nil
}

// SetPrec changes the precision of Reals in subsequent expressions. Zero
// means DefaultPrec. Values already computed keep their precision.
func (s *Session) SetPrec(prec uint) {
	s.ctx = precopt(prec).evalOption(s.ctx)
	s.tz.prec = s.ctx.prec
}

// Prec returns the precision in bits of Reals the session produces.
func (s *Session) Prec() uint {
	return s.ctx.prec
}

// Vars returns the session's variables.
func (s *Session) Vars() *Vars {
	return s.vars
}

// Last returns the result of the most recent successful evaluation.
func (s *Session) Last() (Value, bool) {
	return s.last, s.hasLast
}

// ID returns a unique identifier for the session, as used in its logs.
func (s *Session) ID() string {
	return s.id.String()
}
