package dictionary_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/dictionary"
)

var smallWords = []string{"hot", "dot", "dog", "lot", "log", "cog", "hit"}

func TestLoad(t *testing.T) {
	words, err := dictionary.Load(strings.NewReader("# header\n hit \n\nhot\r\n#dot\ncog\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"hit", "hot", "cog"}, words)

	words, err = dictionary.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.NotNil(t, words)
	assert.Empty(t, words)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestLoad_ReadError(t *testing.T) {
	_, err := dictionary.Load(failingReader{})
	require.ErrorContains(t, err, "disk on fire")
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		file string
		want []string
	}{
		{"small.txt", smallWords},
		{"single.json", smallWords},
		{"single.yml", []string{"aahed", "ached", "ashed", "aahes"}},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			words, err := dictionary.LoadFile(filepath.Join("testdata", tt.file))
			require.NoError(t, err)
			assert.Equal(t, tt.want, words)
		})
	}

	_, err := dictionary.LoadFile(filepath.Join("testdata", "sets.yaml"))
	require.ErrorIs(t, err, dictionary.ErrAmbiguousSet)

	_, err = dictionary.LoadFile(filepath.Join("testdata", "missing.txt"))
	require.Error(t, err)
}

func TestLoadSetsFile(t *testing.T) {
	sets, err := dictionary.LoadSetsFile(filepath.Join("testdata", "sets.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"big", "medium", "small"}, sets.Names())

	small, err := sets.Get("small")
	require.NoError(t, err)
	assert.Equal(t, smallWords, small)

	medium, err := sets.Get("medium")
	require.NoError(t, err)
	assert.Len(t, medium, 11)

	// Get hands out copies
	small[0] = "xxx"
	again, _ := sets.Get("small")
	assert.Equal(t, "hot", again[0])

	_, err = sets.Get("huge")
	require.ErrorIs(t, err, dictionary.ErrSetNotFound)
	require.ErrorContains(t, err, `"huge"`)
}

func TestLoadSets(t *testing.T) {
	sets, err := dictionary.LoadSets(strings.NewReader("dictionaries:\n  empty: []\n  two: [ab, ac]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"empty", "two"}, sets.Names())

	empty, err := sets.Get("empty")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	sets, err = dictionary.LoadSets(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, sets.Names())

	_, err = dictionary.LoadSets(strings.NewReader("dictionaries: [not, a, map]\n"))
	require.Error(t, err)
}
