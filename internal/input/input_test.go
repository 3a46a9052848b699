package input

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streamOf(s string) *Stream {
	return StartStream(bufio.NewReader(strings.NewReader(s)))
}

func TestDecodeCommandKeys(t *testing.T) {
	cases := []struct {
		in   string
		want Event
	}{
		{"q", Event{Key: KeyQuit}},
		{"\x03", Event{Key: KeyQuit}},
		{"n", Event{Key: KeyNewGame}},
		{"c", Event{Key: KeyScan}},
		{"r", Event{Key: KeyRefuel}},
		{"m", Event{Key: KeyRepair}},
		{"f", Event{Key: KeyFight}},
		{"b", Event{Key: KeyBribe}},
		{"e", Event{Key: KeyEvade}},
		{"g", Event{Key: KeyOffer, Index: 0}},
		{"h", Event{Key: KeyOffer, Index: 1}},
		{"1", Event{Key: KeySalvage, Index: 0}},
		{"9", Event{Key: KeySalvage, Index: 8}},
		{"w", Event{Key: KeyUp}},
		{"a", Event{Key: KeyLeft}},
		{"s", Event{Key: KeyDown}},
		{"d", Event{Key: KeyRight}},
		{"z", Event{Key: KeyNone}},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			ev, ok := streamOf(tc.in).ReadEvent()
			require.True(t, ok)
			assert.Equal(t, tc.want, ev)
		})
	}
}

func TestDecodeArrowSequences(t *testing.T) {
	cases := []struct {
		in   string
		want Key
	}{
		{"\x1b[A", KeyUp},
		{"\x1b[B", KeyDown},
		{"\x1b[C", KeyRight},
		{"\x1b[D", KeyLeft},
	}

	for _, tc := range cases {
		ev, ok := streamOf(tc.in).ReadEvent()
		require.True(t, ok)
		assert.Equal(t, tc.want, ev.Key)
	}
}

func TestLoneEscape(t *testing.T) {
	ev, ok := streamOf("\x1b").ReadEvent()
	require.True(t, ok)
	assert.Equal(t, KeyEscape, ev.Key)
}

func TestTruncatedSequenceDoesNotBlock(t *testing.T) {
	// A stream that goes quiet right after ESC [ must still produce an
	// event instead of wedging the session on the final CSI byte.
	pr, pw := io.Pipe()
	defer pw.Close()

	s := StartStream(bufio.NewReader(pr))
	_, err := pw.Write([]byte("\x1b["))
	require.NoError(t, err)

	done := make(chan Event, 1)
	go func() {
		ev, _ := s.ReadEvent()
		done <- ev
	}()

	select {
	case ev := <-done:
		assert.Equal(t, KeyEscape, ev.Key)
	case <-time.After(10 * escSequenceWait):
		t.Fatal("ReadEvent blocked on a truncated escape sequence")
	}
}

func TestClosedStream(t *testing.T) {
	s := streamOf("q")
	_, ok := s.ReadEvent()
	require.True(t, ok)

	_, ok = s.ReadEvent()
	assert.False(t, ok)
}
