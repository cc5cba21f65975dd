package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/builder"
	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/internal/render"
)

func TestPath(t *testing.T) {
	assert.Equal(t, "hit -> hot -> dot", render.Path([]string{"hit", "hot", "dot"}))
	assert.Equal(t, "hit", render.Path([]string{"hit"}))
	assert.Equal(t, "", render.Path(nil))
}

func TestStats(t *testing.T) {
	g, err := builder.BuildFromSmallDictionary([]string{"hit", "hot", "dot", "zzz"})
	require.NoError(t, err)

	out := render.Stats(g.Stats())
	assert.Contains(t, out, "words:      4\n")
	assert.Contains(t, out, "links:      4\n")
	assert.Contains(t, out, "edges:      2\n")
	assert.Contains(t, out, "isolated:   1\n")
	assert.Contains(t, out, "max degree: 2 (hot)\n")

	assert.Contains(t, render.Stats(core.NewGraph().Stats()), "max degree: 0\n")
}

func TestMermaid(t *testing.T) {
	// every edge is stored as two link entries; the diagram shows it once
	g, err := builder.BuildFromLargeDictionary([]string{"hit", "hot", "dot", "dog"})
	require.NoError(t, err)

	out := render.Mermaid(g, []string{"hit", "hot", "dot"})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, "graph LR", lines[0])

	tests := []struct {
		name     string
		contains []string
	}{
		{"nodes", []string{`w0["hit"]`, `w1["hot"]`, `w2["dot"]`, `w3["dog"]`}},
		{"ladder edges", []string{"w0 === w1", "w1 === w2"}},
		{"plain edge", []string{"w2 --- w3"}},
		{"styles", []string{"classDef ladder", "class w0 ladder;", "class w2 ladder;"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}

	edges := 0
	for _, l := range lines {
		if strings.Contains(l, "---") || strings.Contains(l, "===") {
			edges++
		}
	}
	assert.Equal(t, 3, edges, "one line per linked pair")
	assert.NotContains(t, out, "class w3 ladder;")
}

func TestMermaid_NoHighlight(t *testing.T) {
	g, err := builder.BuildFromSmallDictionary([]string{"cat"})
	require.NoError(t, err)

	assert.Equal(t, "graph LR\n    w0[\"cat\"]\n", render.Mermaid(g, nil))
}

func TestComponents(t *testing.T) {
	assert.Equal(t, "components: 0 (largest 0)\n", render.Components(nil))
	assert.Equal(t, "components: 2 (largest 3)\n",
		render.Components([][]string{{"hit", "hot", "dot"}, {"abaci"}}))
}
