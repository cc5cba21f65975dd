package ladder_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/ladder"
)

func ExampleSolver_FindShortestPath() {
	s := ladder.New([]string{"hot", "dot", "dog", "lot", "log", "cog", "hit"})
	if err := s.BuildFromSmallDictionary(); err != nil {
		fmt.Println(err)
		return
	}

	p, err := s.FindShortestPath("hit", "cog")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s (length=%d)\n", p, p.Len())

	_, err = s.FindShortestPath("lol", "dog")
	fmt.Println(err)
	// Output:
	// hit -> hot -> dot -> dog -> cog (length=4)
	// ladder: word "lol" not in dictionary
}

func ExampleSolver_FindShortestPath_noPath() {
	s := ladder.New([]string{"abaci", "abbot"})
	_ = s.BuildFromLargeDictionary()

	p, err := s.FindShortestPath("abaci", "abbot")
	fmt.Println(p == nil, errors.Is(err, ladder.ErrNoPath), ladder.PathLength(p))
	// Output:
	// true true 0
}
