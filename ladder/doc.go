// Package ladder answers word-ladder queries over a dictionary.
//
// A Solver owns a dictionary, builds a word graph from it with an explicitly
// chosen builder.Strategy, and answers FindShortestPath queries with a
// breadth-first search. The graph is built once and reused: every query keeps
// its own traversal state, so one Solver serves repeated and concurrent
// queries without a reset step.
//
//	s := ladder.New(words)
//	if err := s.BuildFromSmallDictionary(); err != nil { ... }
//	p, err := s.FindShortestPath("hit", "cog")
//	// p.String() == "hit -> hot -> dot -> dog -> cog", p.Len() == 4
//
// Errors, in the order they are checked:
//
//   - ErrGraphNotBuilt   no Build call succeeded yet
//   - ErrWordNotFound    start or end is not in the graph (*WordNotFoundError)
//   - ErrNoPath          both words exist but no ladder connects them
package ladder
