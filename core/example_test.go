package core_test

import (
	"fmt"

	"github.com/katalvlaran/wordladder/core"
)

// ExampleGraph demonstrates basic creation, linking, and queries.
func ExampleGraph() {
	// 1) Create an empty word graph and register words.
	g := core.NewGraph()
	for _, w := range []string{"cold", "cord", "card", "warm"} {
		_, _ = g.AddWord(w)
	}

	// 2) Record both directions of the cold–cord and cord–card edges.
	_ = g.AddLink("cold", "cord")
	_ = g.AddLink("cord", "cold")
	_ = g.AddLink("cord", "card")
	_ = g.AddLink("card", "cord")

	// 3) Links that break the one-letter rule are rejected.
	err := g.AddLink("cold", "warm")
	fmt.Println("cold→warm rejected:", err != nil)

	links, _ := g.Links("cord")
	fmt.Println("cord links:", links)
	fmt.Println("words:", g.WordCount(), "links:", g.LinkCount())

	// Output:
	// cold→warm rejected: true
	// cord links: [cold card]
	// words: 4 links: 4
}
