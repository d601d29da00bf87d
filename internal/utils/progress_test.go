package utils

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgressBar(t *testing.T) {
	t.Run("known total", func(t *testing.T) {
		bar := NewProgressBar(3, DescCopying, io.Discard)
		require.NotNil(t, bar)

		require.NoError(t, bar.Add(3))
		assert.True(t, bar.IsFinished())
	})

	t.Run("unknown total", func(t *testing.T) {
		bar := NewProgressBar(-1, DescCopying, io.Discard)
		require.NotNil(t, bar)
		require.NoError(t, bar.Add(1))
	})

	t.Run("writes to given writer", func(t *testing.T) {
		var buf bytes.Buffer
		bar := NewProgressBar(2, DescCopying, &buf)
		require.NoError(t, bar.Add(1))
		assert.Contains(t, buf.String(), DescCopying)
	})
}
