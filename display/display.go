// Package display defines the surface frames are presented on.
package display

// Key identifies a keyboard key polled by the simulation loop
type Key int

const (
	KeyEscape Key = iota
)

// Display presents full RGBA frames and reports input and lifetime
type Display interface {
	// Present pushes a full frame of width*height RGBA pixels
	Present(pix []byte, width, height int) error
	IsOpen() bool
	IsKeyPressed(key Key) bool
	Close()
}

// StatusDisplay is implemented by displays that can show a status line
type StatusDisplay interface {
	SetStatus(status string)
}
