package display

import (
	"bufio"
	"image/color"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\033[H\033[2J"
)

// Terminal is a headless Display that prints frames as text. It samples the
// top-left pixel of every cell and prints a block when that pixel differs
// from the background.
type Terminal struct {
	Out         io.Writer
	CellSize    int
	Margin      int
	Background  color.RGBA
	ClearScreen bool

	status string
	closed bool
}

// NewTerminal creates a terminal display writing to out
func NewTerminal(out io.Writer, cellSize, margin int, background color.RGBA) *Terminal {
	return &Terminal{
		Out:         out,
		CellSize:    cellSize,
		Margin:      margin,
		Background:  background,
		ClearScreen: true,
	}
}

// Present renders the grid to the terminal
func (t *Terminal) Present(pix []byte, width, height int) error {
	if t.closed {
		return errors.New("[Terminal.Present] display is closed")
	}
	if len(pix) < width*height*4 {
		return errors.Errorf("[Terminal.Present] frame has %d bytes, want %d", len(pix), width*height*4)
	}
	if t.CellSize <= 0 {
		return errors.Errorf("[Terminal.Present] invalid cell size %d", t.CellSize)
	}

	w := bufio.NewWriter(t.Out)
	if t.ClearScreen {
		w.WriteString(ansiClear)
	}
	if t.status != "" {
		w.WriteString(t.status)
		w.WriteString("\n")
	}

	for py := t.Margin; py < height; py += t.CellSize {
		for px := t.Margin; px < width; px += t.CellSize {
			if t.isBackground(pix, (py*width+px)*4) {
				w.WriteString(gridPosEmpty)
			} else {
				w.WriteString(gridPosBlock)
			}
		}
		w.WriteString("\n")
	}
	return errors.Wrap(w.Flush(), "[Terminal.Present] failed to write frame")
}

func (t *Terminal) isBackground(pix []byte, i int) bool {
	return pix[i] == t.Background.R && pix[i+1] == t.Background.G && pix[i+2] == t.Background.B
}

// SetStatus sets the line printed above the next frames
func (t *Terminal) SetStatus(status string) {
	t.status = status
}

func (t *Terminal) IsOpen() bool {
	return !t.closed
}

// IsKeyPressed always reports false; the terminal is stopped with a signal
func (t *Terminal) IsKeyPressed(Key) bool {
	return false
}

func (t *Terminal) Close() {
	t.closed = true
}
