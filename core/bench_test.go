// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/wordladder/core"
)

// BenchmarkDiffersByExactlyOneLetter measures the edge predicate on ASCII words.
func BenchmarkDiffersByExactlyOneLetter(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = core.DiffersByExactlyOneLetter("abaci", "abaca")
	}
}

// BenchmarkAddLink measures link insertion on a star of 100 leaves.
func BenchmarkAddLink(b *testing.B) {
	leaves := starWords("aaaa")
	g := core.NewGraph()
	_, _ = g.AddWord("aaaa")
	for _, w := range leaves {
		_, _ = g.AddWord(w)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddLink("aaaa", leaves[i%len(leaves)])
	}
}

// BenchmarkLinks measures neighbor retrieval on a hub word.
func BenchmarkLinks(b *testing.B) {
	g := core.NewGraph()
	_, _ = g.AddWord("aaaa")
	for _, w := range starWords("aaaa") {
		_, _ = g.AddWord(w)
		_ = g.AddLink("aaaa", w)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Links("aaaa")
	}
}
