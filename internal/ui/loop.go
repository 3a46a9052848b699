// Package ui renders Starline Salvage snapshots in a terminal and wires
// key presses back into API calls. It holds no game logic: every frame
// is a projection of the last server snapshot plus the transient scan
// results.
package ui

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/starline-salvage/starline/internal/api"
	"github.com/starline-salvage/starline/internal/draw"
	"github.com/starline-salvage/starline/internal/input"
)

// Run drives one client session: render, block on a key, dispatch,
// repeat. Each dispatched action suspends at its network call, so at
// most one request is ever in flight. Run returns when the user quits
// or the input stream closes.
func Run(ctx context.Context, client *api.Client, r *bufio.Reader, w io.Writer) error {
	controller := NewController(client)
	stream := input.StartStream(r)
	cw := draw.NewChunkWriter(w)

	draw.HideCursor(cw)
	defer func() {
		showCursorAndClear(w)
	}()

	paint := func() {
		paintFrame(cw, controller.Frame())
		_ = cw.Flush()
	}
	// Repaint as soon as the busy flag is asserted so controls show as
	// disabled for the whole round trip.
	controller.SetPainter(paint)

	for {
		paint()

		ev, ok := stream.ReadEvent()
		if !ok {
			return nil
		}
		if controller.Dispatch(ctx, ev) {
			return nil
		}
	}
}

// paintFrame clears the screen and writes the rendered frame line by
// line. Explicit cursor moves keep the output correct in raw mode,
// where a bare newline does not return the carriage.
func paintFrame(cw *draw.ChunkWriter, f Frame) {
	draw.ClearScreen(cw)
	for i, line := range strings.Split(Render(f), "\n") {
		cw.WriteAt(1, i+1, line)
	}
}

func showCursorAndClear(w io.Writer) {
	cw := draw.NewChunkWriter(w)
	draw.ClearScreen(cw)
	draw.ShowCursor(cw)
	_ = cw.Flush()
}
