// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics over a built graph.

package core

// Stats produces a deterministic, read-only snapshot of graph sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Walk nodes in creation order, counting isolated words and
//     tracking the first word with the largest degree.
//
// Determinism:
//   - Ties on MaxDegree resolve to the earliest created word.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Words: len(g.nodes),
		Links: g.linkCount,
	}
	for _, word := range g.order {
		d := len(g.nodes[word].links)
		if d == 0 {
			stats.Isolated++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
			stats.MaxDegreeWord = word
		}
	}

	return &stats
}
