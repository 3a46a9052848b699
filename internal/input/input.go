// Package input decodes terminal key presses into client commands.
package input

import (
	"bufio"
	"time"
)

// escSequenceWait is how long to wait for the rest of a CSI sequence
// before treating a lone ESC byte as the escape key.
const escSequenceWait = 25 * time.Millisecond

// Key identifies one client command.
type Key int

const (
	KeyNone Key = iota
	KeyQuit
	KeyEscape
	KeyNewGame
	KeyScan
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyRefuel
	KeyRepair
	KeyFight
	KeyBribe
	KeyEvade
	KeySalvage // Index selects the salvage row
	KeyOffer   // Index selects the station offer row
)

// Event is one decoded key press.
type Event struct {
	Key   Key
	Index int // row selector for KeySalvage and KeyOffer
}

// Stream delivers input bytes via a channel so escape sequences can be
// assembled with a timeout.
type Stream struct {
	ch chan byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to
// the stream. The channel closes when the reader is exhausted (e.g.
// the SSH session ended).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadEvent blocks until a complete key press is decoded. The second
// return value is false once the underlying reader is closed.
func (s *Stream) ReadEvent() (Event, bool) {
	b, ok := <-s.ch
	if !ok {
		return Event{}, false
	}
	if b != '\x1b' {
		return decodeByte(b), true
	}

	// CSI sequence: ESC [ <code>. A lone ESC is the escape key.
	select {
	case b2, ok := <-s.ch:
		if !ok {
			return Event{Key: KeyEscape}, true
		}
		if b2 != '[' {
			return Event{Key: KeyEscape}, true
		}
	case <-time.After(escSequenceWait):
		return Event{Key: KeyEscape}, true
	}

	select {
	case b3, ok := <-s.ch:
		if !ok {
			return Event{Key: KeyEscape}, true
		}
		switch b3 {
		case 'A':
			return Event{Key: KeyUp}, true
		case 'B':
			return Event{Key: KeyDown}, true
		case 'C':
			return Event{Key: KeyRight}, true
		case 'D':
			return Event{Key: KeyLeft}, true
		}
		return Event{Key: KeyNone}, true
	case <-time.After(escSequenceWait):
		return Event{Key: KeyEscape}, true
	}
}

// decodeByte maps a single byte to a client command.
func decodeByte(b byte) Event {
	switch b {
	case 'q', 'Q', '\x03': // ctrl-c counts as quit in raw mode
		return Event{Key: KeyQuit}
	case 'n', 'N':
		return Event{Key: KeyNewGame}
	case 'c', 'C':
		return Event{Key: KeyScan}
	case 'w', 'W':
		return Event{Key: KeyUp}
	case 's', 'S':
		return Event{Key: KeyDown}
	case 'a', 'A':
		return Event{Key: KeyLeft}
	case 'd', 'D':
		return Event{Key: KeyRight}
	case 'r', 'R':
		return Event{Key: KeyRefuel}
	case 'm', 'M':
		return Event{Key: KeyRepair}
	case 'f', 'F':
		return Event{Key: KeyFight}
	case 'b', 'B':
		return Event{Key: KeyBribe}
	case 'e', 'E':
		return Event{Key: KeyEvade}
	case 'g', 'G':
		return Event{Key: KeyOffer, Index: 0}
	case 'h', 'H':
		return Event{Key: KeyOffer, Index: 1}
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return Event{Key: KeySalvage, Index: int(b - '1')}
	}
	return Event{Key: KeyNone}
}
