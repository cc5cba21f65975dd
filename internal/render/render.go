// Package render turns ladders and word graphs into text for the CLI.
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wordladder/core"
)

// Path joins words with " -> ".
func Path(words []string) string {
	return strings.Join(words, " -> ")
}

// Stats renders graph counters one per line.
func Stats(s *core.GraphStats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "words:      %d\n", s.Words)
	fmt.Fprintf(&sb, "links:      %d\n", s.Links)
	fmt.Fprintf(&sb, "edges:      %d\n", s.Links/2)
	fmt.Fprintf(&sb, "isolated:   %d\n", s.Isolated)
	if s.MaxDegreeWord != "" {
		fmt.Fprintf(&sb, "max degree: %d (%s)\n", s.MaxDegree, s.MaxDegreeWord)
	} else {
		fmt.Fprintf(&sb, "max degree: %d\n", s.MaxDegree)
	}

	return sb.String()
}

// Components renders the component count and the size of the largest one.
func Components(comps [][]string) string {
	largest := 0
	for _, c := range comps {
		if len(c) > largest {
			largest = len(c)
		}
	}

	return fmt.Sprintf("components: %d (largest %d)\n", len(comps), largest)
}
