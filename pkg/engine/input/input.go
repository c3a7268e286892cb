package input

import (
	"context"
	"io"
	"strings"
)

// ParseTerminalInput splits a chunk of raw-mode terminal bytes into key codes.
// Arrow keys arrive as CSI (ESC [) or SS3 (ESC O) sequences; a lone ESC is
// "escape"; unknown escape sequences are discarded.
func ParseTerminalInput(buf []byte) []string {
	var codes []string
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b == 0x1b:
			code, n := parseEscape(buf[i:])
			if code != "" {
				codes = append(codes, code)
			}
			i += n - 1
		case b == 3:
			codes = append(codes, "ctrl_c")
		case b == '\r' || b == '\n':
			codes = append(codes, "enter")
		case b == ' ':
			codes = append(codes, "space")
		case b >= 33 && b < 127:
			codes = append(codes, strings.ToLower(string(b)))
		}
	}
	return codes
}

// parseEscape decodes an escape sequence at the start of buf. Returns the key
// code (empty if unknown) and the number of bytes consumed.
func parseEscape(buf []byte) (string, int) {
	if len(buf) < 2 || (buf[1] != '[' && buf[1] != 'O') {
		return "escape", 1
	}
	if len(buf) < 3 {
		return "", 2
	}

	switch buf[2] {
	case 'A':
		return "arrow_up", 3
	case 'B':
		return "arrow_down", 3
	case 'C':
		return "arrow_right", 3
	case 'D':
		return "arrow_left", 3
	}

	// ESC [ <params> <final>, e.g. F5 = ESC [ 1 5 ~
	n := 2
	for n < len(buf) && (buf[n] >= '0' && buf[n] <= '9' || buf[n] == ';') {
		n++
	}
	if n < len(buf) {
		params := string(buf[2:n])
		n++ // final byte
		if params == "15" && buf[n-1] == '~' {
			return "f5", n
		}
	}
	return "", n
}

// ReadTerminal reads raw-mode bytes from r and emits key codes until r fails or
// ctx is cancelled. The channel is closed when reading stops. A blocked Read is
// not interrupted by cancellation; the goroutine exits on the next chunk.
func ReadTerminal(ctx context.Context, r io.Reader) <-chan string {
	out := make(chan string, 16)
	go func() {
		defer close(out)
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for _, code := range ParseTerminalInput(buf[:n]) {
				select {
				case out <- code:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				return
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
	return out
}
