package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wordladder/core"
)

// Mermaid produces a Mermaid flowchart (graph LR) of g.
//
// Node IDs are w<N> in creation order and carry the word as a quoted label,
// so words never need sanitizing. Each linked pair appears once, however many
// link entries record it. When highlight is a ladder, its words get the
// "ladder" class and the links between consecutive words are drawn thick.
func Mermaid(g *core.Graph, highlight []string) string {
	words := g.Words()
	ids := make(map[string]string, len(words))
	for i, w := range words {
		ids[w] = fmt.Sprintf("w%d", i)
	}

	onPath := make(map[[2]string]bool, len(highlight))
	for i := 1; i < len(highlight); i++ {
		onPath[pairKey(highlight[i-1], highlight[i])] = true
	}

	var sb strings.Builder
	sb.WriteString("graph LR\n")
	for _, w := range words {
		label := strings.ReplaceAll(w, "\"", "'")
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", ids[w], label))
	}

	seen := make(map[[2]string]bool)
	for _, w := range words {
		links, err := g.Links(w)
		if err != nil {
			continue
		}
		for _, nbr := range links {
			key := pairKey(w, nbr)
			if seen[key] {
				continue
			}
			seen[key] = true
			arrow := "---"
			if onPath[key] {
				arrow = "==="
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", ids[w], arrow, ids[nbr]))
		}
	}

	if len(highlight) > 0 {
		sb.WriteString("\n    classDef ladder fill:#ffeb3b,stroke:#fbc02d,stroke-width:2px,color:#000;\n")
		classed := make(map[string]bool, len(highlight))
		for _, w := range highlight {
			id, ok := ids[w]
			if !ok || classed[id] {
				continue
			}
			classed[id] = true
			sb.WriteString(fmt.Sprintf("    class %s ladder;\n", id))
		}
	}

	return sb.String()
}

// pairKey orders an undirected pair.
func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}
