// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.
//   • Builders MUST NOT panic.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidDictionary indicates graph construction was invoked without a
// usable word sequence: the dictionary is absent (nil), contains an empty
// word, or breaks WithUniformLength.
// Usage: if errors.Is(err, ErrInvalidDictionary) { /* fix the input */ }.
var ErrInvalidDictionary = errors.New("builder: invalid dictionary")

// ErrUnknownStrategy indicates Build or ParseStrategy received a strategy
// other than SmallDictionary or LargeDictionary.
var ErrUnknownStrategy = errors.New("builder: unknown strategy")

// builderErrorf prefixes a formatted message with the method context.
// It returns an error of the form "<Method>: <formatted message>"; a %w verb
// in format keeps the wrapped sentinel reachable through errors.Is.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
