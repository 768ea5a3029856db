// Package input turns raw terminal bytes into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a movement key is considered "held" after its
// last byte. Terminals only report auto-repeat, so holding is approximated.
const keyHoldDuration = 50 * time.Millisecond

// Input represents the current frame's input state.
// Left and Right are level-triggered (held); Fire and Start are set only in
// the frame a key press arrives.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Fire    bool
	Start   bool
	Pressed []byte // Raw bytes received this frame
	Closed  bool   // The reader reached EOF or failed
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	state   keyState
	closed  bool
	pending []byte // unfinished escape sequence held for the next read
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
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

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	return readAt(s, time.Now())
}

func readAt(s *Stream, now time.Time) Input {
	buf := s.pending
	s.pending = nil

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	if !s.closed {
		buf, s.pending = splitIncomplete(buf)
	}
	in := parse(&s.state, buf, now)
	in.Closed = s.closed
	return in
}

// ResetKeyInput forgets held keys and discards unread bytes, so a key pressed
// on one screen does not leak into the next.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
	s.pending = nil
	for !s.closed {
		select {
		case _, ok := <-s.ch:
			if !ok {
				s.closed = true
			}
		default:
			return
		}
	}
}

// splitIncomplete cuts a trailing ESC or ESC [ off buf, since the rest of
// the sequence may arrive with the next read.
func splitIncomplete(buf []byte) ([]byte, []byte) {
	n := len(buf)
	switch {
	case n >= 2 && buf[n-2] == '\x1b' && buf[n-1] == '[':
		return buf[:n-2], buf[n-2:]
	case n >= 1 && buf[n-1] == '\x1b':
		return buf[:n-1], buf[n-1:]
	}
	return buf, nil
}

// parse updates held-key timestamps from buf and builds the frame's input.
func parse(state *keyState, buf []byte, now time.Time) Input {
	in := Input{Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				in.Fire = true
				i += 2
				continue
			case 'C': // Right arrow
				state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				state.left = now
				i += 2
				continue
			case 'B': // Down arrow, unused
				i += 2
				continue
			}
		}

		applyByte(state, &in, b, now)
	}

	in.Left = now.Sub(state.left) < keyHoldDuration
	in.Right = now.Sub(state.right) < keyHoldDuration
	return in
}

// applyByte handles a single key byte.
func applyByte(state *keyState, in *Input, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		in.Fire = true
	case ' ':
		in.Fire = true
		in.Start = true
	case '\n', '\r':
		in.Start = true
	}
}
