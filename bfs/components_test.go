package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/core"
)

func TestConnectedComponents(t *testing.T) {
	_, err := bfs.ConnectedComponents(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	comps, err := bfs.ConnectedComponents(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)

	g := linkAll(t, "abaci", "hit", "hot", "abbot", "dot", "abbas", "abbes")
	comps, err = bfs.ConnectedComponents(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"abaci"},
		{"hit", "hot", "dot"},
		{"abbot"},
		{"abbas", "abbes"},
	}, comps)
}
