package logic

import (
	"context"

	"github.com/poiesic/retort/core"
)

// Result is an adapter's answer to an input statement: a response
// candidate and the adapter's confidence in it. The engine compares
// confidences across adapters to pick the reply.
type Result struct {
	Response   *core.Statement
	Confidence float64 // In [0, 1]; 0 is no confidence, 1 is certainty
}

// Adapter is one response strategy of the dialogue engine.
type Adapter interface {
	// CanProcess is a cheap, side-effect-free check for whether the
	// adapter can handle the statement at all, called before the more
	// expensive Process. It must not fail on well-formed input.
	CanProcess(ctx context.Context, statement *core.Statement) bool

	// Process produces a response candidate for the input statement.
	// A nil Result with a nil error means "no confident answer"; the
	// caller should consult other adapters or a fallback. Errors are
	// not retried here.
	Process(ctx context.Context, statement *core.Statement) (*Result, error)

	// Name returns the adapter's type identifier, used purely for
	// logging and debugging.
	Name() string
}

// BaseAdapter holds the shared configuration and provides the default
// contract behavior. Concrete adapters embed it and override Process.
type BaseAdapter struct {
	Config Config
}

// NewBaseAdapter resolves options into an adapter configuration.
func NewBaseAdapter(opts ...Option) (BaseAdapter, error) {
	s, err := newSettings(opts)
	if err != nil {
		return BaseAdapter{}, err
	}
	cfg, err := s.config()
	if err != nil {
		return BaseAdapter{}, err
	}
	return BaseAdapter{Config: cfg}, nil
}

// CanProcess reports true; concrete adapters override it to reject
// statement shapes they cannot handle.
func (a *BaseAdapter) CanProcess(ctx context.Context, statement *core.Statement) bool {
	return true
}

// Process fails with ErrNotImplemented; concrete adapters must
// override it.
func (a *BaseAdapter) Process(ctx context.Context, statement *core.Statement) (*Result, error) {
	return nil, ErrNotImplemented
}

// Name identifies the base contract.
func (a *BaseAdapter) Name() string {
	return "BaseAdapter"
}
