// Package window presents frames in a desktop window using Ebitengine.
package window

import (
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/display"
)

var keys = map[display.Key]ebiten.Key{
	display.KeyEscape: ebiten.KeyEscape,
}

// Window is an ebiten.Game that shows the most recently presented frame.
// Run must be called from the main goroutine; the simulation loop presents
// frames from another goroutine.
type Window struct {
	title  string
	width  int
	height int

	mu    sync.Mutex
	frame []byte

	pressed map[display.Key]*atomic.Bool
	closed  atomic.Bool
	done    chan struct{}
	once    sync.Once
}

// New creates a window of the given size in pixels
func New(title string, width, height int) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("[window.New] invalid window size %dx%d", width, height)
	}

	pressed := make(map[display.Key]*atomic.Bool, len(keys))
	for k := range keys {
		pressed[k] = new(atomic.Bool)
	}
	return &Window{
		title:   title,
		width:   width,
		height:  height,
		pressed: pressed,
		done:    make(chan struct{}),
	}, nil
}

// Run opens the window and blocks until it is closed by the user or Close
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(w)
	w.closed.Store(true)
	if err != nil {
		return errors.Wrap(err, "[Window.Run] failed to open display")
	}
	return nil
}

// Update is called each tick by Ebitengine
func (w *Window) Update() error {
	select {
	case <-w.done:
		return ebiten.Termination
	default:
	}

	for k, ek := range keys {
		w.pressed[k].Store(ebiten.IsKeyPressed(ek))
	}
	return nil
}

// Draw is called each frame by Ebitengine
func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.frame != nil {
		screen.WritePixels(w.frame)
	}
}

// Layout returns the screen size
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Present copies the frame; it is drawn on the next ebiten frame
func (w *Window) Present(pix []byte, width, height int) error {
	if width != w.width || height != w.height {
		return errors.Errorf("[Window.Present] frame is %dx%d, window is %dx%d", width, height, w.width, w.height)
	}
	if len(pix) != width*height*4 {
		return errors.Errorf("[Window.Present] frame has %d bytes, want %d", len(pix), width*height*4)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.frame == nil {
		w.frame = make([]byte, len(pix))
	}
	copy(w.frame, pix)
	return nil
}

func (w *Window) IsOpen() bool {
	return !w.closed.Load()
}

func (w *Window) IsKeyPressed(key display.Key) bool {
	b, ok := w.pressed[key]
	return ok && b.Load()
}

// Close asks the ebiten loop to terminate
func (w *Window) Close() {
	w.once.Do(func() { close(w.done) })
}
