package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/core"
)

// ladderWords is the classic hit→cog dictionary.
var ladderWords = []string{"hit", "hot", "dot", "dog", "cog", "lot", "log"}

// linkAll builds a graph from words, linking every ordered pair that differs
// by exactly one letter. Links follow the order of words.
func linkAll(tb testing.TB, words ...string) *core.Graph {
	tb.Helper()
	g := core.NewGraph()
	for _, w := range words {
		_, err := g.AddWord(w)
		require.NoError(tb, err)
	}
	for _, a := range words {
		for _, b := range words {
			if core.DiffersByExactlyOneLetter(a, b) {
				require.NoError(tb, g.AddLink(a, b))
			}
		}
	}

	return g
}

// threeLetterWords returns every word over the first n letters of the alphabet
// with length three.
func threeLetterWords(n int) []string {
	out := make([]string, 0, n*n*n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			for c := 0; c < n; c++ {
				out = append(out, string([]byte{byte('a' + a), byte('a' + b), byte('a' + c)}))
			}
		}
	}

	return out
}
