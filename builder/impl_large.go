// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// impl_large.go - bucketed construction for large dictionaries.
//
// Every word of length L falls into L buckets, one per position, keyed by the
// word with that position blanked out ("hit" → "*it", "h*t", "hi*"). Two words
// share a bucket exactly when they agree everywhere except that position, so
// members of a bucket are pairwise neighbors and no pairwise scan over the
// whole dictionary is needed.

package builder

import (
	"github.com/katalvlaran/wordladder/core"
)

// bucketKey carries the blanked position next to the pattern. Without it a
// word that itself contains Wildcard could make patterns from different
// positions collide ("x*" at 1 and "*y" at 0 both render as "**").
type bucketKey struct {
	pos     int
	pattern string
}

// bucketIndex groups words by bucketKey and remembers first-seen key order.
type bucketIndex struct {
	members map[bucketKey][]string
	order   []bucketKey
}

// newBucketIndex distributes the distinct words into their L buckets.
// Complexity: O(n·L²) for pattern rendering, O(n·L) buckets.
func newBucketIndex(words []string) *bucketIndex {
	idx := &bucketIndex{members: make(map[bucketKey][]string)}
	for _, w := range words {
		runes := []rune(w)
		for i, r := range runes {
			runes[i] = Wildcard
			key := bucketKey{pos: i, pattern: string(runes)}
			runes[i] = r

			if _, seen := idx.members[key]; !seen {
				idx.order = append(idx.order, key)
			}
			idx.members[key] = append(idx.members[key], w)
		}
	}

	return idx
}

// BuildFromLargeDictionary builds a word graph from wildcard buckets.
//
// Steps:
//  1. Validate the dictionary (nil → ErrInvalidDictionary; empty → empty graph).
//  2. Distribute distinct words into buckets keyed by (position, pattern).
//  3. Walk buckets in first-seen order. Nodes are created lazily; AddWord
//     returns the existing node, so no word gets two nodes.
//     - A bucket of one member only guarantees that member's node exists.
//     - A bucket of k>1 members links every member to every other member,
//     which records each edge twice (once per direction) as separate entries.
//
// Two distinct words of equal length share at most one bucket, so no link is
// ever recorded twice in the same direction.
//
// Complexity: O(n·L + Σ|bucket|²) links, sub-quadratic when letters are diverse.
func BuildFromLargeDictionary(dict []string, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateDictionary(MethodLargeDictionary, dict, cfg); err != nil {
		return nil, err
	}

	idx := newBucketIndex(distinctWords(dict))
	g := core.NewGraph()
	linked := 0
	for _, key := range idx.order {
		members := idx.members[key]
		for _, w := range members {
			if _, err := g.AddWord(w); err != nil {
				return nil, builderErrorf(MethodLargeDictionary, "AddWord(%q): %w", w, err)
			}
		}
		if len(members) < 2 {
			continue
		}
		linked++
		for _, from := range members {
			for _, to := range members {
				if from == to {
					continue
				}
				if err := g.AddLink(from, to); err != nil {
					return nil, builderErrorf(MethodLargeDictionary, "AddLink(%q,%q): %w", from, to, err)
				}
			}
		}
	}

	cfg.logger.Debug("graph built",
		"strategy", LargeDictionary.String(),
		"words", g.WordCount(),
		"links", g.LinkCount(),
		"buckets", len(idx.order),
		"linked_buckets", linked,
	)

	return g, nil
}
