package pattern

import (
	"strings"

	"github.com/sheikhrachel/go-life/model"
)

const gridGlyphName = "grid"

// GridGlyph parses one row per line, 'O' alive and '.' dead. Height is the
// number of lines and width the longest line.
type GridGlyph struct{}

func (GridGlyph) Name() string { return gridGlyphName }

// Parse ignores a single trailing newline and '\r' line endings
func (GridGlyph) Parse(text string) (*model.State, error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return model.NewState(0, 0), nil
	}

	var (
		lines  = strings.Split(text, "\n")
		living = model.NewCellSet()
		width  int
	)
	for row, line := range lines {
		line = strings.TrimSuffix(line, "\r")

		col := 0
		for _, ch := range line {
			switch ch {
			case 'O':
				living.Add(model.Cell{X: col, Y: row})
			case '.':
			default:
				return nil, &ParseError{
					Format: gridGlyphName,
					Line:   row + 1,
					Column: col + 1,
					Char:   ch,
				}
			}
			col++
		}
		width = max(width, col)
	}

	return &model.State{
		Width:  width,
		Height: len(lines),
		Living: living,
	}, nil
}
