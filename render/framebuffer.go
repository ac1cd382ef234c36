package render

import (
	"image"
	"image/color"
)

// Framebuffer is the pixel surface the renderer paints into
type Framebuffer interface {
	SetBackgroundColor(c color.RGBA)
	Clear()
	SetDrawColor(c color.RGBA)
	// DrawPoint blends the draw color over the background by intensity in [0, 1]
	DrawPoint(x, y int, intensity float64)
}

// ColorFromHex converts 0xRRGGBB into an opaque color
func ColorFromHex(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xff,
	}
}

// PixelBuffer is an in-memory RGBA Framebuffer
type PixelBuffer struct {
	img        *image.RGBA
	background color.RGBA
	current    color.RGBA
}

// NewPixelBuffer creates a buffer filled with the background color
func NewPixelBuffer(width, height int, background color.RGBA) *PixelBuffer {
	b := &PixelBuffer{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: background,
		current:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
	b.Clear()
	return b
}

// Width returns the buffer width in pixels
func (b *PixelBuffer) Width() int {
	return b.img.Rect.Dx()
}

// Height returns the buffer height in pixels
func (b *PixelBuffer) Height() int {
	return b.img.Rect.Dy()
}

// Pix exposes the raw RGBA bytes, row-major with 4 bytes per pixel
func (b *PixelBuffer) Pix() []byte {
	return b.img.Pix
}

// At returns the color of one pixel
func (b *PixelBuffer) At(x, y int) color.RGBA {
	return b.img.RGBAAt(x, y)
}

func (b *PixelBuffer) SetBackgroundColor(c color.RGBA) {
	b.background = c
}

// Clear fills the whole buffer with the background color
func (b *PixelBuffer) Clear() {
	pix := b.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = b.background.R
		pix[i+1] = b.background.G
		pix[i+2] = b.background.B
		pix[i+3] = b.background.A
	}
}

func (b *PixelBuffer) SetDrawColor(c color.RGBA) {
	b.current = c
}

// DrawPoint ignores points outside the buffer
func (b *PixelBuffer) DrawPoint(x, y int, intensity float64) {
	if !(image.Point{X: x, Y: y}.In(b.img.Rect)) {
		return
	}
	intensity = min(max(intensity, 0), 1)
	b.img.SetRGBA(x, y, color.RGBA{
		R: blend(b.background.R, b.current.R, intensity),
		G: blend(b.background.G, b.current.G, intensity),
		B: blend(b.background.B, b.current.B, intensity),
		A: 0xff,
	})
}

func blend(bg, fg uint8, t float64) uint8 {
	return uint8(float64(bg)*(1-t) + float64(fg)*t + 0.5)
}
