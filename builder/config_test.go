// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConfigDefaults verifies the documented defaults.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	require.NotNil(t, cfg.logger)
	require.False(t, cfg.uniformLength)
}

// TestLoggerOption verifies WithLogger installs the logger and ignores nil.
func TestLoggerOption(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := newBuilderConfig(WithLogger(l))
	require.Same(t, l, cfg.logger)

	// nil keeps the previous value (last-wins does not apply to nil)
	cfg = newBuilderConfig(WithLogger(l), WithLogger(nil))
	require.Same(t, l, cfg.logger)

	// nil options are skipped
	require.NotPanics(t, func() { _ = newBuilderConfig(nil) })
}

// TestValidateDictionary covers every validation branch.
func TestValidateDictionary(t *testing.T) {
	t.Parallel()

	plain := newBuilderConfig()
	strict := newBuilderConfig(WithUniformLength())

	require.ErrorIs(t, validateDictionary("M", nil, plain), ErrInvalidDictionary)
	require.NoError(t, validateDictionary("M", []string{}, plain))
	require.ErrorIs(t, validateDictionary("M", []string{"hit", ""}, plain), ErrInvalidDictionary)
	require.NoError(t, validateDictionary("M", []string{"hit", "hits"}, plain))

	err := validateDictionary("M", []string{"hit", "hits"}, strict)
	require.ErrorIs(t, err, ErrInvalidDictionary)
	require.Contains(t, err.Error(), `"hits"`)
	require.Contains(t, err.Error(), "M: ")
	require.NoError(t, validateDictionary("M", []string{"hit", "hot"}, strict))
}

// TestDistinctWords keeps first occurrences in order.
func TestDistinctWords(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"b", "a", "c"}, distinctWords([]string{"b", "a", "b", "c", "a"}))
	require.Empty(t, distinctWords(nil))
}

// TestBucketIndex checks bucket keys, ordering and the position guard.
func TestBucketIndex(t *testing.T) {
	t.Parallel()

	idx := newBucketIndex([]string{"hit", "hot"})
	require.Equal(t, []bucketKey{
		{0, "*it"}, {1, "h*t"}, {2, "hi*"},
		{0, "*ot"}, {2, "ho*"},
	}, idx.order)
	require.Equal(t, []string{"hit", "hot"}, idx.members[bucketKey{1, "h*t"}])

	// "x*" blanked at 1 and "*y" blanked at 0 both render as "**" but must not share a bucket.
	idx = newBucketIndex([]string{"x*", "*y"})
	for _, members := range idx.members {
		require.Len(t, members, 1)
	}
}
