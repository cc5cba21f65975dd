package dictionary

import "errors"

var (
	// ErrSetNotFound is returned when a named set is absent from a set file.
	ErrSetNotFound = errors.New("dictionary: set not found")

	// ErrAmbiguousSet is returned by LoadFile for set files that do not hold
	// exactly one set.
	ErrAmbiguousSet = errors.New("dictionary: set file must contain exactly one set")

	// ErrEmptyWord reports a zero-length word.
	ErrEmptyWord = errors.New("dictionary: empty word")

	// ErrMixedLength reports a word whose length differs from the first word.
	ErrMixedLength = errors.New("dictionary: words of different lengths")

	// ErrNotLowercase reports a word with a rune that is not a lowercase letter.
	ErrNotLowercase = errors.New("dictionary: word is not lowercase letters")
)
