package term

import (
	"bufio"
	"errors"
	"io"

	"voxel-tty/internal/graphics"
)

type rgb struct {
	r, g, b uint8
}

// cell is the retained per-cell state used for cross-frame diffing. The
// first frame finds every cell unknown, forcing a full paint.
type cell struct {
	fg    rgb
	bg    rgb
	known bool
}

// Compositor converts rendered RGBA frames into a minimal escape-sequence
// stream of upper-half-block glyphs: foreground carries the top sampled
// pixel, background the bottom one.
//
// Sampling is 2x supersampled, the sole supported mode: the renderer buffer
// is expected at twice the terminal's column and row counts, and each cell
// box-filters the two horizontally adjacent pixels of its two pixel rows.
//
// Diffing: cells whose resolved color pair matches the previous frame are
// hopped over with cursor-forward moves; only changed cells are repainted,
// and SGR codes are emitted only when the terminal's current colors differ.
// Every frame positions the cursor explicitly at each row start, never
// relying on line wrap, and is wrapped in a synchronized-update bracket so
// a partially written frame is never visible.
type Compositor struct {
	cols int
	rows int

	cells []cell

	out io.Writer
	w   *bufio.Writer

	// Terminal SGR state carried across frames for coalescing.
	lastFg   rgb
	lastBg   rgb
	sgrKnown bool
}

// NewCompositor creates a compositor for a fixed terminal grid writing to
// out (normally the raw-mode tty).
func NewCompositor(out io.Writer, cols, rows int) *Compositor {
	return &Compositor{
		cols:  cols,
		rows:  rows,
		cells: make([]cell, cols*rows),
		out:   out,
		w:     bufio.NewWriterSize(out, 128*1024),
	}
}

// avg2 box-filters two color channels.
func avg2(a, b uint8) uint8 {
	return uint8((uint16(a) + uint16(b)) / 2)
}

// samplePair reads the box-filtered color of one pixel row of a cell.
// ok is false when the row lies outside the buffer.
func samplePair(f *graphics.Frame, px, py int) (rgb, bool) {
	if py < 0 || py >= f.Height || px >= f.Width {
		return rgb{}, false
	}
	r0, g0, b0 := f.RGB(px, py)
	if px+1 >= f.Width {
		return rgb{r0, g0, b0}, true
	}
	r1, g1, b1 := f.RGB(px+1, py)
	return rgb{avg2(r0, r1), avg2(g0, g1), avg2(b0, b1)}, true
}

// sample resolves the (foreground, background) pair of a terminal cell.
// An out-of-range bottom row (odd buffer height) reuses the top color
// rather than reading past the buffer.
func (c *Compositor) sample(f *graphics.Frame, col, row int) (rgb, rgb) {
	px := col * 2
	py := row * 2

	top, ok := samplePair(f, px, py)
	if !ok {
		top = rgb{}
	}
	bottom, ok := samplePair(f, px, py+1)
	if !ok {
		bottom = top
	}
	return top, bottom
}

// Present diffs the frame against the retained cell state and writes the
// resulting escape stream. The synchronized-update bracket is released via
// a deferred path even when a mid-frame write fails; on a sticky buffered
// write error the end sequence is pushed directly at the sink.
func (c *Compositor) Present(f *graphics.Frame) (err error) {
	c.w.Write(csiSyncBegin)
	defer func() {
		c.w.Write(csiSyncEnd)
		if ferr := c.w.Flush(); ferr != nil {
			c.out.Write(csiSyncEnd)
			err = errors.Join(err, ferr)
		}
	}()

	for row := 0; row < c.rows; row++ {
		writeRowStart(c.w, row)
		skip := 0
		for col := 0; col < c.cols; col++ {
			fg, bg := c.sample(f, col, row)

			idx := row*c.cols + col
			prev := c.cells[idx]
			if prev.known && prev.fg == fg && prev.bg == bg {
				skip++
				continue
			}
			writeCursorForward(c.w, skip)
			skip = 0

			if !c.sgrKnown || fg != c.lastFg {
				writeFgRGB(c.w, fg)
				c.lastFg = fg
			}
			if !c.sgrKnown || bg != c.lastBg {
				writeBgRGB(c.w, bg)
				c.lastBg = bg
			}
			c.sgrKnown = true

			c.w.Write(halfBlock)
			c.cells[idx] = cell{fg: fg, bg: bg, known: true}
		}
	}
	return nil
}

// Invalidate drops the retained state, forcing the next Present to repaint
// every cell. Used after the screen is disturbed outside the compositor.
func (c *Compositor) Invalidate() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
	c.sgrKnown = false
}
