package term

import (
	"bufio"
)

// Pre-allocated escape sequence fragments; the per-frame writer never
// formats strings.
var (
	csiSyncBegin = []byte("\x1b[?2026h")
	csiSyncEnd   = []byte("\x1b[?2026l")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")

	// DECAWM off: never rely on line wrap, cursor is positioned per row.
	csiAutoWrapOff = []byte("\x1b[?7l")
	csiAutoWrapOn  = []byte("\x1b[?7h")

	csiClear = []byte("\x1b[2J\x1b[H")
	csiReset = []byte("\x1b[0m")

	csiFgRGB = []byte("\x1b[38;2;") // followed by r;g;b m
	csiBgRGB = []byte("\x1b[48;2;") // followed by r;g;b m

	csi = []byte("\x1b[")

	// U+2580 upper half block, UTF-8 encoded.
	halfBlock = []byte("\xe2\x96\x80")
)

// writeInt writes a non-negative integer without allocation. Terminal
// values are 0-255 for colors and rarely above 999 for rows.
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [6]byte
	i := 5
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeRowStart positions the cursor at column 1 of a 0-indexed row:
// ESC[{row+1};1H.
func writeRowStart(w *bufio.Writer, row int) {
	w.Write(csi)
	writeInt(w, row+1)
	w.Write([]byte(";1H"))
}

// writeCursorForward advances the cursor n cells without repainting them.
func writeCursorForward(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	w.Write(csi)
	writeInt(w, n)
	w.WriteByte('C')
}

func writeFgRGB(w *bufio.Writer, c rgb) {
	w.Write(csiFgRGB)
	writeInt(w, int(c.r))
	w.WriteByte(';')
	writeInt(w, int(c.g))
	w.WriteByte(';')
	writeInt(w, int(c.b))
	w.WriteByte('m')
}

func writeBgRGB(w *bufio.Writer, c rgb) {
	w.Write(csiBgRGB)
	writeInt(w, int(c.r))
	w.WriteByte(';')
	writeInt(w, int(c.g))
	w.WriteByte(';')
	writeInt(w, int(c.b))
	w.WriteByte('m')
}
