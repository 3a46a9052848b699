package draw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkWriterFlushesEverything(t *testing.T) {
	var out strings.Builder
	cw := NewChunkWriter(&out)

	cw.MoveCursor(1, 2)
	cw.WriteString("hello")
	cw.WriteAt(3, 4, "world")
	require.NoError(t, cw.Flush())

	assert.Equal(t, "\033[2;1Hhello\033[4;3Hworld", out.String())
}

func TestChunkWriterSplitsLargeFrames(t *testing.T) {
	var out strings.Builder
	cw := NewChunkWriter(&out)

	frame := strings.Repeat("x", maxChunkSize*3+17)
	cw.WriteString(frame)
	require.NoError(t, cw.Flush())

	// Chunking changes write boundaries, never content.
	assert.Equal(t, frame, out.String())
}

func TestChunkWriterResetsAfterFlush(t *testing.T) {
	var out strings.Builder
	cw := NewChunkWriter(&out)

	cw.WriteString("first")
	require.NoError(t, cw.Flush())
	cw.WriteString("second")
	require.NoError(t, cw.Flush())

	assert.Equal(t, "firstsecond", out.String())
}
