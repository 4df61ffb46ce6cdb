// Package input reads raw terminal bytes into per-frame key events.
package input

import "bufio"

// Input holds the keys pressed since the previous frame. Snake control is
// edge-triggered: a key either fired this frame or it did not.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	Enter     bool
	Escape    bool
	Backspace bool
	Space     bool

	// Runes are the printable characters typed this frame, in order.
	// Used for menu shortcuts and name entry.
	Runes []rune
}

// Stream delivers input bytes from a reader via a buffered channel so the
// frame loop can drain them without blocking.
type Stream struct {
	ch chan byte
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
// The channel closes when the reader fails (e.g. the session ends).
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

// ReadInput drains all bytes available on the stream without blocking and
// parses them into the frame's input. Arrow keys arrive as CSI escape
// sequences; everything else is single bytes. The second return value is
// false once the underlying reader has gone away.
func ReadInput(s *Stream) (Input, bool) {
	var buf []byte
	open := true
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				open = false
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}
	return Parse(buf), open
}

// Parse converts a byte sequence into an Input. Split out from ReadInput
// so tests can feed sequences directly.
func Parse(buf []byte) Input {
	var in Input
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == 0x1b && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				in.Up = true
			case 'B':
				in.Down = true
			case 'C':
				in.Right = true
			case 'D':
				in.Left = true
			}
			i += 2
			continue
		}

		switch b {
		case 'w', 'W':
			in.Up = true
		case 's', 'S':
			in.Down = true
		case 'a', 'A':
			in.Left = true
		case 'd', 'D':
			in.Right = true
		case '\r', '\n':
			in.Enter = true
		case 0x1b:
			in.Escape = true
		case '\b', 0x7f:
			in.Backspace = true
		case ' ':
			in.Space = true
		}

		// Printable ASCII also lands in Runes so name entry and menu
		// shortcuts see the literal character (WASD included).
		if b > 0x20 && b < 0x7f {
			in.Runes = append(in.Runes, rune(b))
		}
	}
	return in
}

// Has reports whether the frame contains the given printable character.
func (in Input) Has(r rune) bool {
	for _, c := range in.Runes {
		if c == r {
			return true
		}
	}
	return false
}
