// Package pattern turns textual seed descriptions into simulation states.
//
// Two text formats are supported, both behind the Format interface:
// RunLength (the RLE body alphabet b/o/$/!) and GridGlyph (rows of 'O' and
// '.'). Malformed input is reported as a *ParseError, never a panic.
package pattern

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Format parses seed text into a fully formed state
type Format interface {
	Name() string
	Parse(text string) (*model.State, error)
}

// ParseError describes malformed seed text. Line and Column are 1-based;
// zero means the position is unknown.
type ParseError struct {
	Format string
	Line   int
	Column int
	Char   rune
	Msg    string
}

func (e *ParseError) Error() string {
	var where string
	switch {
	case e.Line > 0 && e.Column > 0:
		where = fmt.Sprintf(" at line %d, column %d", e.Line, e.Column)
	case e.Line > 0:
		where = fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s%s", e.Format, e.Msg, where)
	}
	return fmt.Sprintf("%s: invalid character %q%s", e.Format, e.Char, where)
}

// ForName selects a format by name
func ForName(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rle", "runlength", "run-length":
		return RunLength{}, nil
	case "grid", "glyph", "cells", "plaintext":
		return GridGlyph{}, nil
	}
	return nil, errors.Errorf("[ForName] unknown pattern format: %q", name)
}

// ForPath selects a format from a file extension
func ForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".rle":
		return RunLength{}, nil
	case ".cells", ".txt":
		return GridGlyph{}, nil
	}
	return nil, errors.Errorf("[ForPath] cannot infer pattern format from file: %+v", path)
}

// LoadFile reads and parses a seed file. A nil format is inferred from the
// file extension.
func LoadFile(path string, format Format) (*model.State, error) {
	if format == nil {
		var err error
		if format, err = ForPath(path); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}

	state, err := format.Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to parse file: %+v", path)
	}
	return state, nil
}
