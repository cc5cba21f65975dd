// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - Strategy selection is explicit. Build never guesses from dictionary size.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same dictionary and strategy ⇒ identical graphs, including
//     node creation order and per-node link order.
//   - Safety: never panic; return sentinel errors wrapped with method context.

package builder

import (
	"strings"

	"github.com/katalvlaran/wordladder/core"
)

// Strategy selects how a dictionary is turned into a word graph.
type Strategy int

const (
	// SmallDictionary compares every pair of words: O(n²·L).
	SmallDictionary Strategy = iota
	// LargeDictionary groups words into wildcard buckets: O(n·L + Σ|bucket|²).
	LargeDictionary
)

// String returns the CLI name of the strategy ("small", "large").
func (s Strategy) String() string {
	switch s {
	case SmallDictionary:
		return "small"
	case LargeDictionary:
		return "large"
	default:
		return "unknown"
	}
}

// ParseStrategy maps "small" or "large" (any case) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "small":
		return SmallDictionary, nil
	case "large", "big":
		return LargeDictionary, nil
	default:
		return SmallDictionary, builderErrorf(MethodBuild, "%q: %w", name, ErrUnknownStrategy)
	}
}

// Build constructs a word graph from dict using the given strategy.
//
// Errors:
//   - ErrUnknownStrategy if s is neither SmallDictionary nor LargeDictionary.
//   - Any error of the selected strategy (ErrInvalidDictionary, ...).
func Build(dict []string, s Strategy, opts ...BuilderOption) (*core.Graph, error) {
	switch s {
	case SmallDictionary:
		return BuildFromSmallDictionary(dict, opts...)
	case LargeDictionary:
		return BuildFromLargeDictionary(dict, opts...)
	default:
		return nil, builderErrorf(MethodBuild, "strategy %d: %w", int(s), ErrUnknownStrategy)
	}
}

// DiffersByExactlyOneLetter is the edge predicate shared by every strategy.
// See core.DiffersByExactlyOneLetter.
func DiffersByExactlyOneLetter(a, b string) bool {
	return core.DiffersByExactlyOneLetter(a, b)
}
