package dictionary

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Validate checks that every word is non-empty, made of lowercase letters,
// and as long as the first word. The first offending word is named in the
// returned error.
func Validate(words []string) error {
	want := -1
	for i, w := range words {
		if w == "" {
			return fmt.Errorf("%w at index %d", ErrEmptyWord, i)
		}
		for _, r := range w {
			if !unicode.IsLetter(r) || !unicode.IsLower(r) {
				return fmt.Errorf("%w: %q", ErrNotLowercase, w)
			}
		}
		n := utf8.RuneCountInString(w)
		if want < 0 {
			want = n
		} else if n != want {
			return fmt.Errorf("%w: %q has %d letters, want %d", ErrMixedLength, w, n, want)
		}
	}

	return nil
}
