// Package bfs provides breadth-first search over a core.Graph of words,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore words in non-decreasing distance (link count) from a start word.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from word → distance (links) from start
//   - Parent: map from word → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a word is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual links via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Stops early once a target word is discovered (WithStopAt).
//
// State
//
//	The walker owns its queue, visited set and parent map. Nothing is written
//	to the graph, so the same graph may be searched repeatedly or from many
//	goroutines at once. Neighbors are resolved with Graph.Links when a word is
//	dequeued, never captured up front.
//
// Determinism
//
//	Graph.Links returns neighbors in insertion order and BFS enqueues them in
//	that order, so the visit sequence and the returned paths are reproducible
//	for a graph built the same way.
//
// Complexity (V = words, E = links)
//
//   - Time:   O(V + E)   (each word and link seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//		res, err := bfs.BFS(g, "hit", bfs.WithStopAt("cog"))
//		if err != nil {
//	      // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//	      // a context error, or a wrapped hook error
//		}
//		path, err := res.PathTo("cog") // ErrNoPath when unreachable
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip links for which fn(curr,neighbor)==false.
//   - WithStopAt(word):            end the search once word is discovered.
//   - WithOnEnqueue(fn):           hook before a word is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a word.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start word does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if Graph.Links fails for any word.
//   - ErrNoPath               from PathTo when the destination was not reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
