package pattern

import (
	"strconv"
	"strings"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

const (
	DefaultRunLengthWidth  = 70
	DefaultRunLengthHeight = 70

	// MaxRunLengthExtent bounds run counts, coordinates and header sizes
	MaxRunLengthExtent = 1 << 20

	runLengthName = "rle"
)

// RunLength parses run-length encoded patterns. The board is Width x Height
// (70x70 when zero), or the header's x/y when present, grown to fit the
// pattern if it is larger.
type RunLength struct {
	Width  int
	Height int
}

func (RunLength) Name() string { return runLengthName }

// Parse reads optional '#' comment lines and an "x = W, y = H" header, then
// the body up to '!' or the end of input.
func (f RunLength) Parse(text string) (*model.State, error) {
	var (
		width  = f.Width
		height = f.Height
		lines  = strings.Split(text, "\n")
		body   = 0
	)
	if width <= 0 {
		width = DefaultRunLengthWidth
	}
	if height <= 0 {
		height = DefaultRunLengthHeight
	}

framing:
	for body < len(lines) {
		line := strings.TrimSpace(lines[body])
		switch {
		case line == "", strings.HasPrefix(line, "#"):
			body++
		case strings.HasPrefix(line, "x"):
			w, h, err := parseHeader(line, body+1)
			if err != nil {
				return nil, err
			}
			width, height = w, h
			body++
			break framing
		default:
			break framing
		}
	}

	var (
		living     = model.NewCellSet()
		x, y       int
		count      int
		countCol   int
		maxX, maxY = -1, -1
	)

	for i, line := range lines[body:] {
		lineNo := body + i + 1
		extentErr := func(col int) error {
			return &ParseError{Format: runLengthName, Line: lineNo, Column: col + 1,
				Msg: "pattern exceeds maximum extent " + strconv.Itoa(MaxRunLengthExtent)}
		}

		for col, ch := range []rune(line) {
			run := max(count, 1)
			switch {
			case ch >= '0' && ch <= '9':
				if count == 0 {
					countCol = col
				}
				count = count*10 + int(ch-'0')
				if count > MaxRunLengthExtent {
					return nil, &ParseError{Format: runLengthName, Line: lineNo, Column: countCol + 1,
						Msg: "run count too large"}
				}
				continue
			case ch == 'b':
				if x+run > MaxRunLengthExtent {
					return nil, extentErr(col)
				}
				x += run
			case ch == 'o':
				if x+run > MaxRunLengthExtent || y >= MaxRunLengthExtent {
					return nil, extentErr(col)
				}
				for range run {
					living.Add(model.Cell{X: x, Y: y})
					x++
				}
				maxX = max(maxX, x-1)
				maxY = max(maxY, y)
			case ch == '$':
				if y+run > MaxRunLengthExtent {
					return nil, extentErr(col)
				}
				x = 0
				y += run
			case ch == '!':
				return finishRunLength(living, width, height, maxX, maxY), nil
			case ch == '\r':
				continue
			default:
				return nil, &ParseError{
					Format: runLengthName,
					Line:   lineNo,
					Column: col + 1,
					Char:   ch,
				}
			}
			count = 0
		}
	}
	return finishRunLength(living, width, height, maxX, maxY), nil
}

func finishRunLength(living model.CellSet, width, height, maxX, maxY int) *model.State {
	return &model.State{
		Width:  max(width, maxX+1),
		Height: max(height, maxY+1),
		Living: living,
	}
}

// parseHeader reads "x = 3, y = 3, rule = B3/S23"
func parseHeader(line string, lineNo int) (width, height int, err error) {
	headerErr := func(msg string) error {
		return &ParseError{Format: runLengthName, Line: lineNo, Msg: msg}
	}

	for _, field := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return 0, 0, headerErr("malformed header field " + strconv.Quote(strings.TrimSpace(field)))
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		switch key {
		case "x", "y":
			n, convErr := strconv.Atoi(value)
			if convErr != nil || n < 0 || n > MaxRunLengthExtent {
				return 0, 0, headerErr("invalid header size " + key + " = " + strconv.Quote(value))
			}
			if key == "x" {
				width = n
			} else {
				height = n
			}
		case "rule":
			rule, ruleErr := rules.ParseRule(value)
			if ruleErr != nil || rule != rules.Conway {
				return 0, 0, headerErr("unsupported rule " + strconv.Quote(value))
			}
		default:
			return 0, 0, headerErr("unknown header key " + strconv.Quote(key))
		}
	}
	return width, height, nil
}
