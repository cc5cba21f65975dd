// Package builder turns a dictionary (an ordered sequence of words) into a
// core.Graph whose edges connect words that differ by exactly one letter at
// the same position.
//
// Two strategies are offered and the caller picks one explicitly:
//
//   - SmallDictionary / BuildFromSmallDictionary:
//     compares every word with every other word. O(n²·L) time.
//     Each pair is found from both sides, so every edge is recorded once
//     per direction.
//   - LargeDictionary / BuildFromLargeDictionary:
//     puts each word into L wildcard buckets ("h*t") and links members of
//     the same bucket to each other. O(n·L + Σ|bucket|²) time. The bucket
//     loop records both directions of each edge explicitly.
//
// Both strategies produce the same reachability and the same link multiset
// per word; only the order of a word's links may differ.
//
// Guarantees:
//
//   - One node per distinct dictionary word; duplicates collapse.
//   - No self-links; every link satisfies DiffersByExactlyOneLetter.
//   - nil dictionary → ErrInvalidDictionary; empty dictionary → empty graph.
//   - Deterministic output for equal input.
//
// Options:
//
//   - WithLogger(l):        debug record with word/link/bucket counts per build.
//   - WithUniformLength():  reject dictionaries of mixed word lengths.
package builder
