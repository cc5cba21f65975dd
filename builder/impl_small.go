// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// impl_small.go - quadratic construction for small dictionaries.

package builder

import (
	"github.com/katalvlaran/wordladder/core"
)

// BuildFromSmallDictionary builds a word graph by comparing every word
// against every other word.
//
// Steps:
//  1. Validate the dictionary (nil → ErrInvalidDictionary; empty → empty graph).
//  2. Create one node per distinct word, in dictionary order.
//  3. For each word, scan the distinct words and append every one-letter
//     neighbor to the word's links. Each pair is discovered from both sides,
//     so every edge ends up recorded once per direction.
//
// Complexity: O(n²·L) time, O(n + E) space.
func BuildFromSmallDictionary(dict []string, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateDictionary(MethodSmallDictionary, dict, cfg); err != nil {
		return nil, err
	}

	words := distinctWords(dict)
	g := core.NewGraph()
	for _, w := range words {
		if _, err := g.AddWord(w); err != nil {
			return nil, builderErrorf(MethodSmallDictionary, "AddWord(%q): %w", w, err)
		}
	}

	for _, current := range words {
		for _, candidate := range words {
			if !DiffersByExactlyOneLetter(current, candidate) {
				continue
			}
			if err := g.AddLink(current, candidate); err != nil {
				return nil, builderErrorf(MethodSmallDictionary, "AddLink(%q,%q): %w", current, candidate, err)
			}
		}
	}

	cfg.logger.Debug("graph built",
		"strategy", SmallDictionary.String(),
		"words", g.WordCount(),
		"links", g.LinkCount(),
	)

	return g, nil
}
