// File: methods_adjacent.go
// Role: Link APIs (AddLink, Links, LinkCount, AdjacencyList).
// Determinism:
//   - Links() preserves insertion order, duplicates included.
//   - AdjacencyList() returns independent slices (no shared backing).
// Concurrency:
//   - AddLink holds the write lock; queries hold the read lock.

package core

import "fmt"

// AddLink records a single-direction link from → to.
//
// An undirected edge is represented by two calls, one per direction; builders
// decide how they cover both directions. Re-adding an existing link appends a
// duplicate entry, which traversal tolerates.
//
// Implementation:
//   - Stage 1: Validate non-empty words and reject self-links.
//   - Stage 2: Enforce the graph invariant: from and to differ by exactly one letter.
//   - Stage 3: Under write lock, verify both nodes exist and append to from's links.
//
// Errors:
//   - ErrEmptyWord:    if from or to is empty.
//   - ErrSelfLink:     if from == to.
//   - ErrNotAdjacent:  if the words do not differ by exactly one letter.
//   - ErrWordNotFound: if either endpoint has no node (wrapped with the word).
//
// Complexity:
//   - Time O(L) amortized, where L is the word length.
func (g *Graph) AddLink(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyWord
	}
	if from == to {
		return ErrSelfLink
	}
	if !DiffersByExactlyOneLetter(from, to) {
		return fmt.Errorf("%w: %q -> %q", ErrNotAdjacent, from, to)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrWordNotFound, from)
	}
	if _, ok = g.nodes[to]; !ok {
		return fmt.Errorf("%w: %q", ErrWordNotFound, to)
	}
	n.links = append(n.links, to)
	g.linkCount++

	return nil
}

// Links returns a copy of the neighbor words of word, in insertion order.
//
// Errors:
//   - ErrEmptyWord:    if word is empty.
//   - ErrWordNotFound: if word has no node.
//
// Complexity: O(d) where d is the node's link count.
func (g *Graph) Links(word string) ([]string, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[word]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWordNotFound, word)
	}
	out := make([]string, len(n.links))
	copy(out, n.links)

	return out, nil
}

// LinkCount returns the total number of recorded link entries.
// An undirected edge recorded in both directions counts twice.
// Complexity: O(1).
func (g *Graph) LinkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.linkCount
}

// AdjacencyList returns word → neighbor words for every node.
// Every slice is an independent copy; nodes without links map to an empty slice.
// Complexity: O(V+E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.nodes))
	for word, n := range g.nodes {
		links := make([]string, len(n.links))
		copy(links, n.links)
		out[word] = links
	}

	return out
}
