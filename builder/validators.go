// Package builder provides validation helpers to enforce the dictionary
// contract shared by both strategies.
package builder

import (
	"unicode/utf8"

	"github.com/katalvlaran/wordladder/core"
)

// validateDictionary checks the dictionary against the build contract.
//
//   - dict == nil           → ErrInvalidDictionary ("dictionary is absent").
//   - any empty word        → ErrInvalidDictionary wrapping core.ErrEmptyWord.
//   - cfg.uniformLength and
//     mixed rune lengths    → ErrInvalidDictionary naming the first offender.
//
// An empty, non-nil dictionary is valid and yields an empty graph.
// Complexity: O(n·L) time, O(1) space.
func validateDictionary(method string, dict []string, cfg builderConfig) error {
	if dict == nil {
		return builderErrorf(method, "dictionary is absent: %w", ErrInvalidDictionary)
	}

	want := -1
	for i, w := range dict {
		if w == "" {
			return builderErrorf(method, "word at index %d: %w: %w", i, core.ErrEmptyWord, ErrInvalidDictionary)
		}
		if !cfg.uniformLength {
			continue
		}
		n := utf8.RuneCountInString(w)
		if want < 0 {
			want = n
		} else if n != want {
			return builderErrorf(method, "word %q has length %d, want %d: %w", w, n, want, ErrInvalidDictionary)
		}
	}

	return nil
}

// distinctWords returns dict without repeated words, preserving first occurrence order.
// Complexity: O(n) time and space.
func distinctWords(dict []string) []string {
	seen := make(map[string]struct{}, len(dict))
	out := make([]string, 0, len(dict))
	for _, w := range dict {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}

	return out
}
