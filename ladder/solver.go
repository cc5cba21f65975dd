// SPDX-License-Identifier: MIT
//
// File: solver.go
// Role: Solver lifecycle (New, Build*) and shortest-path queries.
// Concurrency:
//   - Build swaps the graph under the write lock.
//   - Queries take a read-locked snapshot of the graph, then search without
//     holding the lock.

package ladder

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/builder"
	"github.com/katalvlaran/wordladder/core"
)

// Solver builds a word graph from a dictionary and answers ladder queries.
// The zero value is not usable; construct with New.
type Solver struct {
	dict []string
	cfg  solverConfig

	mu       sync.RWMutex
	graph    *core.Graph
	strategy builder.Strategy
}

// New returns a Solver over a private copy of dict. No graph is built yet.
// A nil dict is kept as nil so that Build reports builder.ErrInvalidDictionary.
func New(dict []string, opts ...Option) *Solver {
	var words []string
	if dict != nil {
		words = make([]string, len(dict))
		copy(words, dict)
	}

	return &Solver{dict: words, cfg: newSolverConfig(opts...)}
}

// Build constructs the word graph with strategy s, replacing any previous
// graph. On error the previous graph, if any, stays in place.
func (s *Solver) Build(strategy builder.Strategy) error {
	opts := make([]builder.BuilderOption, 0, len(s.cfg.builderOpts)+1)
	opts = append(opts, builder.WithLogger(s.cfg.logger))
	opts = append(opts, s.cfg.builderOpts...)

	g, err := builder.Build(s.dict, strategy, opts...)
	if err != nil {
		s.cfg.logger.Warn("build failed", "strategy", strategy.String(), "err", err)
		return fmt.Errorf("ladder: build: %w", err)
	}

	s.mu.Lock()
	s.graph = g
	s.strategy = strategy
	s.mu.Unlock()

	s.cfg.logger.Info("graph ready",
		"strategy", strategy.String(),
		"words", g.WordCount(),
		"links", g.LinkCount(),
	)

	return nil
}

// BuildFromSmallDictionary builds with builder.SmallDictionary.
func (s *Solver) BuildFromSmallDictionary() error {
	return s.Build(builder.SmallDictionary)
}

// BuildFromLargeDictionary builds with builder.LargeDictionary.
func (s *Solver) BuildFromLargeDictionary() error {
	return s.Build(builder.LargeDictionary)
}

// Built reports whether a graph is available for queries.
func (s *Solver) Built() bool {
	return s.Graph() != nil
}

// Graph returns the current word graph, or nil before the first Build.
func (s *Solver) Graph() *core.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph
}

// Strategy returns the strategy of the current graph. Before the first Build
// it returns the zero Strategy; check Built.
func (s *Solver) Strategy() builder.Strategy {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.strategy
}

// FindShortestPath returns a shortest ladder from start to end.
// See FindShortestPathContext.
func (s *Solver) FindShortestPath(start, end string) (Path, error) {
	return s.FindShortestPathContext(context.Background(), start, end)
}

// FindShortestPathContext returns a shortest ladder from start to end, both
// inclusive, so its Len is the minimum number of single-letter changes.
//
// Implementation:
//   - Stage 1: Require a built graph, then both words in it (start first).
//   - Stage 2: start == end yields the one-word path.
//   - Stage 3: Run one BFS from start that stops once end is discovered and
//     walk the parent chain back from end.
//
// Errors:
//   - ErrGraphNotBuilt, *WordNotFoundError (matches ErrWordNotFound),
//     ErrNoPath, or a context error from ctx.
//
// Complexity: O(V + E) time and O(V) space per query.
func (s *Solver) FindShortestPathContext(ctx context.Context, start, end string) (Path, error) {
	g := s.Graph()
	if g == nil {
		return nil, ErrGraphNotBuilt
	}
	if !g.HasWord(start) {
		return nil, &WordNotFoundError{Word: start}
	}
	if !g.HasWord(end) {
		return nil, &WordNotFoundError{Word: end}
	}
	if start == end {
		return Path{start}, nil
	}

	res, err := bfs.BFS(g, start, bfs.WithContext(ctx), bfs.WithStopAt(end))
	if err != nil {
		return nil, fmt.Errorf("ladder: search from %q: %w", start, err)
	}
	words, err := res.PathTo(end)
	if errors.Is(err, bfs.ErrNoPath) {
		s.cfg.logger.Debug("no path", "start", start, "end", end, "visited", len(res.Order))
		return nil, fmt.Errorf("%w: %q -> %q", ErrNoPath, start, end)
	}
	if err != nil {
		return nil, fmt.Errorf("ladder: path to %q: %w", end, err)
	}

	p := Path(words)
	s.cfg.logger.Debug("path found", "start", start, "end", end, "length", p.Len())

	return p, nil
}
