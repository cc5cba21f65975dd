// File: methods_vertices.go
// Role: Word (vertex) lifecycle & queries.
//
// Determinism:
//   - Words() returns words in creation order.
//
// Concurrency:
//   - Node catalog protected by g.mu.
package core

// AddWord inserts a node for word if missing and returns it (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty word (ErrEmptyWord).
//   - Stage 2: Under write lock, look the word up; if present return the existing node.
//   - Stage 3: Otherwise allocate a node with no links and append the word to the creation order.
//
// Behavior highlights:
//   - Idempotent: adding an existing word returns the node already stored,
//     so lazily-building code can call AddWord without a prior HasWord.
//
// Errors:
//   - ErrEmptyWord: if word == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddWord(word string) (*WordNode, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if n, exists := g.nodes[word]; exists {
		return n, nil
	}

	n := &WordNode{word: word}
	g.nodes[word] = n
	g.order = append(g.order, word)

	return n, nil
}

// HasWord reports whether the word has a node (empty word ⇒ false).
// Complexity: O(1).
func (g *Graph) HasWord(word string) bool {
	if word == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[word]

	return ok
}

// Node returns the node for word and whether it exists.
// Complexity: O(1).
func (g *Graph) Node(word string) (*WordNode, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[word]

	return n, ok
}

// Words returns all words in creation order.
// The returned slice is a copy; callers may modify it freely.
// Complexity: O(V).
func (g *Graph) Words() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// WordCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) WordCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
