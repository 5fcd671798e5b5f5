package ensemble

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/retort/core"
	"github.com/poiesic/retort/logic"
)

// ErrNoAdapters is returned when an ensemble is constructed without adapters.
var ErrNoAdapters = errors.New("at least one adapter required")

// Ensemble runs a set of logic adapters against an input and returns
// the most confident result. Adapters execute concurrently on a shared
// worker pool; each Process call owns its own state, so no coordination
// beyond result collection is needed.
type Ensemble struct {
	adapters []logic.Adapter
	pool     *ants.Pool
	logger   *slog.Logger
}

// Option configures an Ensemble.
type Option func(*Ensemble) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Ensemble) error {
		if size < 1 {
			size = 1
		}

		if e.pool != nil {
			e.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Ensemble) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// New creates an ensemble over the given adapters. Adapter order
// matters: when confidences tie, the earlier adapter wins.
func New(adapters []logic.Adapter, opts ...Option) (*Ensemble, error) {
	if len(adapters) == 0 {
		return nil, ErrNoAdapters
	}

	poolSize := max(runtime.NumCPU()/2, 1)
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	e := &Ensemble{
		adapters: adapters,
		pool:     pool,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			e.pool.Release()
			return nil, err
		}
	}

	return e, nil
}

// Close releases the worker pool.
func (e *Ensemble) Close() {
	e.pool.Release()
}

// Generate asks every adapter that can process the input for a result
// and returns the one with the highest confidence. A nil result with a
// nil error means no adapter produced an answer. Adapter failures are
// logged and treated as abstentions unless every adapter fails, in
// which case the first failure is returned.
func (e *Ensemble) Generate(ctx context.Context, statement *core.Statement) (*logic.Result, error) {
	results := make([]*logic.Result, len(e.adapters))
	failures := make([]error, len(e.adapters))
	var wg sync.WaitGroup

	for i, adapter := range e.adapters {
		if !adapter.CanProcess(ctx, statement) {
			e.logger.Debug("adapter declined input", "adapter", adapter.Name())
			continue
		}

		wg.Add(1)
		submitErr := e.pool.Submit(func() {
			defer wg.Done()
			result, err := adapter.Process(ctx, statement)
			if err != nil {
				e.logger.Warn("adapter failed", "adapter", adapter.Name(), "err", err)
				failures[i] = err
				return
			}
			results[i] = result
		})
		if submitErr != nil {
			wg.Done()
			failures[i] = submitErr
		}
	}
	wg.Wait()

	var best *logic.Result
	for _, result := range results {
		if result == nil {
			continue
		}
		if best == nil || result.Confidence > best.Confidence {
			best = result
		}
	}
	if best != nil {
		return best, nil
	}

	for _, err := range failures {
		if err != nil {
			return nil, err
		}
	}
	return nil, nil
}
