package render

import "github.com/sheikhrachel/go-life/model"

// Renderer translates live cells into filled squares on a Framebuffer
type Renderer struct {
	CellSize int
	Margin   int
}

// Render paints one CellSize x CellSize square per live cell with the
// framebuffer's current draw color
func (r Renderer) Render(fb Framebuffer, s *model.State) {
	for c := range s.Living {
		x, y := r.Corner(c)
		r.drawCell(fb, x, y)
	}
}

// Corner returns the pixel-space top-left corner of a cell
func (r Renderer) Corner(c model.Cell) (x, y int) {
	return c.X*r.CellSize + r.Margin, c.Y*r.CellSize + r.Margin
}

func (r Renderer) drawCell(fb Framebuffer, x, y int) {
	for px := x; px < x+r.CellSize; px++ {
		for py := y; py < y+r.CellSize; py++ {
			fb.DrawPoint(px, py, 1.0)
		}
	}
}
