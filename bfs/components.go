package bfs

import "github.com/katalvlaran/wordladder/core"

// ConnectedComponents partitions the words of g into groups that are
// mutually reachable. Components are ordered by their first word in creation
// order, and each component lists its words in BFS order from that word.
// Two words in different components have no ladder between them.
//
// Time:   O(V + E).
// Memory: O(V) for the seen set and output.
func ConnectedComponents(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	words := g.Words()
	seen := make(map[string]bool, len(words))
	var comps [][]string

	for _, w0 := range words {
		if seen[w0] {
			continue
		}
		// BFS to collect component
		queue := []string{w0}
		seen[w0] = true
		for qi := 0; qi < len(queue); qi++ {
			links, err := g.Links(queue[qi])
			if err != nil {
				return nil, err
			}
			for _, nbr := range links {
				if !seen[nbr] {
					seen[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps, nil
}
