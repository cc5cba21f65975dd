// Package wordladder finds shortest word ladders: sequences of dictionary
// words from a start word to an end word where each step changes exactly one
// letter.
//
// 🚀 How it fits together
//
//	dictionary/ - load word lists from text files and named YAML sets
//	builder/    - turn a dictionary into a word graph (small or large strategy)
//	core/       - thread-safe word graph: O(1) word lookup, ordered links
//	bfs/        - breadth-first search with per-query state and hooks
//	ladder/     - Solver: build once, answer FindShortestPath queries
//	cmd/wordladder - CLI: `path START END`, `graph --format stats|mermaid`
//
// ✨ Strategies
//
//   - SmallDictionary compares every pair of words: O(n²·L).
//   - LargeDictionary groups words into wildcard buckets ("h*t" at position 1)
//     and links bucket members: O(n·L + Σ|bucket|²).
//
// Both produce graphs with the same edges; only the link order may differ.
//
// Quick start:
//
//	s := ladder.New([]string{"hot", "dot", "dog", "lot", "log", "cog", "hit"})
//	if err := s.BuildFromSmallDictionary(); err != nil { ... }
//	p, err := s.FindShortestPath("hit", "cog")
//	fmt.Println(p, p.Len()) // hit -> hot -> dot -> dog -> cog 4
package wordladder
