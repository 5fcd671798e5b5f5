// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package retort

import (
	"context"
	"log/slog"

	"github.com/poiesic/retort/core"
	"github.com/poiesic/retort/ensemble"
	"github.com/poiesic/retort/logic"
	"github.com/poiesic/retort/storage"
	"github.com/poiesic/retort/storage/badger"
	"github.com/poiesic/retort/training"
)

// Engine wires storage, the default best-match adapter and the
// adapter ensemble into a ready-to-use response engine.
type Engine struct {
	backend    *badger.Backend
	statements storage.StatementRepository
	ensemble   *ensemble.Ensemble
	logger     *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	inMemory    bool
	adapterOpts []logic.Option
	poolSize    int
}

// WithInMemory keeps the corpus in memory instead of on disk.
// Useful for tests and demos.
func WithInMemory() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// WithAdapterOptions passes options through to the default BestMatch
// adapter (comparison function, selection method, threshold, excluded
// words, page size).
func WithAdapterOptions(opts ...logic.Option) EngineOption {
	return func(o *engineOptions) {
		o.adapterOpts = append(o.adapterOpts, opts...)
	}
}

// WithPoolSize sets the ensemble worker pool size.
func WithPoolSize(size int) EngineOption {
	return func(o *engineOptions) {
		o.poolSize = size
	}
}

// NewEngine opens (or creates) a corpus at filePath and builds the
// default adapter stack over it.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	statements, err := badger.NewStatementRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	adapter, err := logic.NewBestMatch(statements, options.adapterOpts...)
	if err != nil {
		statements.Close()
		backend.Close()
		return nil, err
	}

	ensembleOpts := []ensemble.Option{}
	if options.poolSize > 0 {
		ensembleOpts = append(ensembleOpts, ensemble.WithPoolSize(options.poolSize))
	}
	adapters, err := ensemble.New([]logic.Adapter{adapter}, ensembleOpts...)
	if err != nil {
		statements.Close()
		backend.Close()
		return nil, err
	}

	return &Engine{
		backend:    backend,
		statements: statements,
		ensemble:   adapters,
		logger:     slog.Default(),
	}, nil
}

// Close releases the engine's resources.
func (e *Engine) Close() error {
	e.ensemble.Close()

	if err := e.statements.Close(); err != nil {
		e.logger.Error("error closing statement repository", "err", err)
		return err
	}
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// StatementRepository exposes the underlying corpus.
func (e *Engine) StatementRepository() storage.StatementRepository {
	return e.statements
}

// Respond produces the engine's best response to the input text, or a
// nil result when no adapter found a confident answer.
func (e *Engine) Respond(ctx context.Context, text string) (*logic.Result, error) {
	return e.ensemble.Generate(ctx, &core.Statement{Text: text})
}

// Learn records text as a known response to a previous statement, so
// future similar inputs can be answered with it. An empty inResponseTo
// records a standalone statement.
func (e *Engine) Learn(ctx context.Context, text, inResponseTo string) error {
	_, err := e.statements.AddStatements(ctx, &core.Statement{
		Text:         text,
		InResponseTo: inResponseTo,
	})
	return err
}

// NewListTrainer creates a trainer feeding this engine's corpus.
func (e *Engine) NewListTrainer(opts ...training.Option) (*training.ListTrainer, error) {
	return training.NewListTrainer(e.statements, opts...)
}

// NewCorpusTrainer creates a corpus-file trainer feeding this engine's corpus.
func (e *Engine) NewCorpusTrainer(opts ...training.Option) (*training.CorpusTrainer, error) {
	return training.NewCorpusTrainer(e.statements, opts...)
}
