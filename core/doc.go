// Package core provides a thread-safe in-memory word graph with a minimal,
// composable API surface.
//
// The Graph G = (V,E) stores one WordNode per distinct word. An edge between
// two words exists only when they have equal length and differ at exactly one
// position; AddLink enforces this with DiffersByExactlyOneLetter, so every
// stored link satisfies the word-ladder invariant no matter which builder
// produced it.
//
// Representation:
//
//   - nodes: map[word]*WordNode for constant-time lookup by word.
//   - order: creation order of words, used for deterministic enumeration.
//   - WordNode.links: ordered neighbor words. An undirected edge is recorded as
//     one entry per direction; duplicates are tolerated.
//
// Why use core.Graph?
//
//   - Word lookup is O(1); there is no scanning of node lists.
//   - The graph holds no traversal state. Searches keep their own visited and
//     parent bookkeeping, so a built graph can serve any number of repeated or
//     concurrent queries without a reset step.
//   - Deterministic iteration: Words() follows creation order.
//
// Core Methods:
//
//	// Word lifecycle
//	AddWord(word string) (*WordNode, error)   // O(1), idempotent
//	HasWord(word string) bool                 // O(1)
//	Node(word string) (*WordNode, bool)       // O(1)
//
//	// Links
//	AddLink(from, to string) error            // O(L), single direction
//	Links(word string) ([]string, error)      // O(d), copy
//	AdjacencyList() map[string][]string       // O(V+E)
//
//	// Counts
//	WordCount() int                           // O(1)
//	LinkCount() int                           // O(1)
//	Stats() *GraphStats                       // O(V)
//
// Errors:
//
//	ErrEmptyWord     – zero-length word
//	ErrWordNotFound  – missing node
//	ErrSelfLink      – link from a word to itself
//	ErrNotAdjacent   – words not one letter apart
package core
