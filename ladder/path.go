package ladder

import "strings"

// PathSeparator joins the words of a rendered Path.
const PathSeparator = " -> "

// Path is a word ladder from start to end, both inclusive.
type Path []string

// Len returns the number of transformations (links) in the path.
func (p Path) Len() int {
	return PathLength(p)
}

// String renders the path as "hit -> hot -> dot".
func (p Path) String() string {
	return strings.Join(p, PathSeparator)
}

// PathLength returns len(path)-1, or 0 for an empty or nil path.
func PathLength(path []string) int {
	if len(path) == 0 {
		return 0
	}

	return len(path) - 1
}
