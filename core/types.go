// Package core defines the central Graph and WordNode types of a word graph,
// and provides thread-safe primitives for building and querying it.
//
// All core APIs take the graph's sync.RWMutex internally, so a built graph can
// be read from many goroutines while builders serialize their mutations.
//
// This file declares WordNode, Graph, GraphStats, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyWord     - word is the empty string.
//	ErrWordNotFound  - requested word has no node in the graph.
//	ErrSelfLink      - link from a word to itself.
//	ErrNotAdjacent   - link between words that do not differ by exactly one letter.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyWord indicates that the provided word is empty.
	ErrEmptyWord = errors.New("core: word is empty")

	// ErrWordNotFound indicates an operation referenced a word absent from the graph.
	ErrWordNotFound = errors.New("core: word not found")

	// ErrSelfLink indicates a link from a word to itself was attempted.
	ErrSelfLink = errors.New("core: self-link not allowed")

	// ErrNotAdjacent indicates a link between two words that do not differ
	// by exactly one letter at the same position.
	ErrNotAdjacent = errors.New("core: words do not differ by exactly one letter")
)

// WordNode represents one dictionary word as a graph vertex.
//
// The word is immutable and unique within its Graph. Links holds neighbor
// words (not node pointers), one entry per recorded direction; duplicates
// are tolerated and never collapsed.
//
// Traversal markers (visited, parent) are deliberately absent: they belong
// to a single search and live in that search's state (see package bfs).
type WordNode struct {
	word  string
	links []string
}

// Word returns the word this node represents.
func (n *WordNode) Word() string { return n.word }

// Links returns a copy of the node's neighbor words in insertion order.
func (n *WordNode) Links() []string {
	out := make([]string, len(n.links))
	copy(out, n.links)

	return out
}

// Degree returns the number of recorded link entries (duplicates included).
func (n *WordNode) Degree() int { return len(n.links) }

// IsNil reports whether the receiver should be treated as nil.
func (n *WordNode) IsNil() bool { return n == nil }

// Graph is an unordered collection of WordNode keyed by word.
//
// nodes gives O(1) word→node lookup; order remembers insertion order so that
// enumeration (Words, AdjacencyList, Stats) is deterministic.
// linkCount tracks the total number of recorded link entries.
type Graph struct {
	mu sync.RWMutex // guards nodes, order and every node's links

	nodes     map[string]*WordNode // word → node
	order     []string             // words in creation order
	linkCount int                  // total directed link entries
}

// GraphStats is a read-only snapshot of graph sizes.
type GraphStats struct {
	// Words is the number of nodes.
	Words int
	// Links is the number of recorded link entries (one per direction).
	Links int
	// Isolated is the number of nodes without any link.
	Isolated int
	// MaxDegree is the largest link count of a single node.
	MaxDegree int
	// MaxDegreeWord is the first word (in creation order) reaching MaxDegree.
	MaxDegreeWord string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*WordNode),
	}
}
