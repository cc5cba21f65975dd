package bfs_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/core"
)

// ExampleBFS finds the shortest ladder from "hit" to "cog".
func ExampleBFS() {
	words := []string{"hit", "hot", "dot", "dog", "cog", "lot", "log"}
	g := core.NewGraph()
	for _, w := range words {
		_, _ = g.AddWord(w)
	}
	for _, a := range words {
		for _, b := range words {
			if core.DiffersByExactlyOneLetter(a, b) {
				_ = g.AddLink(a, b)
			}
		}
	}

	res, err := bfs.BFS(g, "hit", bfs.WithStopAt("cog"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("cog")
	fmt.Println(path, res.Depth["cog"])
	// Output:
	// [hit hot dot dog cog] 4
}

// ExampleBFSResult_PathTo shows the no-path signal for an unreachable word.
func ExampleBFSResult_PathTo() {
	g := core.NewGraph()
	_, _ = g.AddWord("abaci")
	_, _ = g.AddWord("abbot")

	res, _ := bfs.BFS(g, "abaci")
	_, err := res.PathTo("abbot")
	fmt.Println(errors.Is(err, bfs.ErrNoPath))
	// Output:
	// true
}
