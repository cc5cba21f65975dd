// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores words in increasing distance from a start word,
// with optional hooks, depth limiting, neighbor filtering and early stop.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// errStop ends the main loop once the StopAt word has been discovered.
var errStop = errors.New("bfs: stop")

// queueItem pairs a word with its BFS depth and its parent word.
type queueItem struct {
	word   string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state. The graph itself is never written:
// visited markers and parents exist only for the lifetime of one walker.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// a context error on cancellation, or any user-supplied hook error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start word
	if !g.HasWord(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	// Prepare walker
	n := g.WordCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start word (no parent)
	if w.enqueue(start, 0, "") {
		return w.res, nil
	}
	// Main loop
	if err := w.loop(); err != nil && !errors.Is(err, errStop) {
		return w.res, err
	}

	return w.res, nil
}

// enqueue marks word visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue. Marking at enqueue time keeps a word from being
// queued twice through several incoming links. Reports whether word is the
// StopAt target.
func (w *walker) enqueue(word string, d int, parent string) bool {
	w.visited[word] = true
	w.res.Depth[word] = d
	if parent != "" {
		w.res.Parent[word] = parent
	}
	w.opts.OnEnqueue(word, d)
	w.queue = append(w.queue, queueItem{word: word, depth: d, parent: parent})

	return w.opts.StopAt != "" && word == w.opts.StopAt
}

// loop processes the queue until empty, error, stop, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.word, item.depth)
	return item
}

// visit records the word in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.word)
	if err := w.opts.OnVisit(item.word, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.word, err)
	}
	return nil
}

// enqueueNeighbors resolves the links of item.word at traversal time, applies
// filtering and MaxDepth, and enqueues each unseen neighbor. Duplicate link
// entries are harmless: the second one finds the word already visited.
func (w *walker) enqueueNeighbors(item queueItem) error {
	links, err := w.graph.Links(item.word)
	if err != nil {
		return fmt.Errorf("%w: failed to get links of %q: %v", ErrNeighbors, item.word, err)
	}
	for _, nbr := range links {
		if !w.opts.FilterNeighbor(item.word, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			if !w.graph.HasWord(nbr) {
				return fmt.Errorf("%w: link %q→%q points outside the graph", ErrNeighbors, item.word, nbr)
			}
			if w.enqueue(nbr, nextDepth, item.word) {
				return errStop
			}
		}
	}
	return nil
}
