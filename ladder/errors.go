// SPDX-License-Identifier: MIT

package ladder

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNotBuilt is returned by queries issued before any successful Build.
	ErrGraphNotBuilt = errors.New("ladder: you must build the graph using either BuildFromSmallDictionary or BuildFromLargeDictionary")

	// ErrWordNotFound matches every *WordNotFoundError.
	ErrWordNotFound = errors.New("ladder: word not in dictionary")

	// ErrNoPath is returned when start and end lie in different components.
	ErrNoPath = errors.New("ladder: no transformation path")
)

// WordNotFoundError names the query word that is missing from the graph.
type WordNotFoundError struct {
	Word string
}

func (e *WordNotFoundError) Error() string {
	return fmt.Sprintf("ladder: word %q not in dictionary", e.Word)
}

// Is makes errors.Is(err, ErrWordNotFound) hold.
func (e *WordNotFoundError) Is(target error) bool {
	return target == ErrWordNotFound
}
