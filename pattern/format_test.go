package pattern

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

func TestForName(t *testing.T) {
	tests := map[string]string{
		"rle":       "rle",
		"RLE":       "rle",
		"runlength": "rle",
		"grid":      "grid",
		"cells":     "grid",
		" glyph ":   "grid",
	}
	for in, want := range tests {
		f, err := ForName(in)
		if err != nil {
			t.Errorf("ForName(%q): %v", in, err)
			continue
		}
		if f.Name() != want {
			t.Errorf("ForName(%q) = %s, want %s", in, f.Name(), want)
		}
	}

	if _, err := ForName("mc"); err == nil {
		t.Error("ForName(mc) succeeded, want error")
	}
}

func TestForPath(t *testing.T) {
	tests := map[string]string{
		"glider.rle":        "rle",
		"dir/GLIDER.RLE":    "rle",
		"glider.cells":      "grid",
		"patterns/pond.txt": "grid",
	}
	for in, want := range tests {
		f, err := ForPath(in)
		if err != nil {
			t.Errorf("ForPath(%q): %v", in, err)
			continue
		}
		if f.Name() != want {
			t.Errorf("ForPath(%q) = %s, want %s", in, f.Name(), want)
		}
	}

	if _, err := ForPath("glider"); err == nil {
		t.Error("ForPath without extension succeeded, want error")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	want := model.NewCellSet(model.Cell{X: 0, Y: 0}, model.Cell{X: 1, Y: 0}, model.Cell{X: 2, Y: 0})

	t.Run("rle by extension", func(t *testing.T) {
		s, err := LoadFile(write("blinker.rle", "x = 3, y = 1\n3o!\n"), nil)
		if err != nil {
			t.Fatal(err)
		}
		if !s.Living.Equal(want) || s.Width != 3 || s.Height != 1 {
			t.Fatalf("got %v %dx%d", s.Living.Cells(), s.Width, s.Height)
		}
	})

	t.Run("explicit format wins", func(t *testing.T) {
		s, err := LoadFile(write("blinker.seed", "OOO\n"), GridGlyph{})
		if err != nil {
			t.Fatal(err)
		}
		if !s.Living.Equal(want) {
			t.Fatalf("got %v", s.Living.Cells())
		}
	})

	t.Run("parse errors stay inspectable", func(t *testing.T) {
		_, err := LoadFile(write("bad.cells", "O?O\n"), nil)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("error = %v, want wrapped *ParseError", err)
		}
		if perr.Char != '?' {
			t.Fatalf("Char = %q, want '?'", perr.Char)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.rle"), nil)
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("error = %v, want os.ErrNotExist", err)
		}
	})
}

func TestLibrary(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) || len(names) != len(Library) {
		t.Fatalf("Names() = %v", names)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			s, err := Builtin(name, 0, 0)
			if err != nil {
				t.Fatalf("Builtin(%q): %v", name, err)
			}
			if s.CountLivingCells() == 0 {
				t.Fatalf("Builtin(%q) has no living cells", name)
			}
		})
	}

	if _, err := Builtin("nope", 0, 0); err == nil {
		t.Error("Builtin(nope) succeeded, want error")
	}
}

func TestBuiltinStillLifeAndOscillators(t *testing.T) {
	tests := []struct {
		name   string
		period int
	}{
		{name: "block", period: 1},
		{name: "beacon", period: 2},
		{name: "pulsar", period: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed, err := Builtin(tt.name, 0, 0)
			if err != nil {
				t.Fatal(err)
			}
			// move away from the board edge so every phase fits
			s := model.NewState(40, 40)
			for c := range seed.Living {
				s.Living.Add(model.Cell{X: c.X + 10, Y: c.Y + 10})
			}
			start := s.Living.Clone()
			for range tt.period {
				s.Step(false, nil)
			}
			if !s.Living.Equal(start) {
				t.Fatalf("%s after %d steps = %v, want %v", tt.name, tt.period, s.Living.Cells(), start.Cells())
			}
		})
	}
}

func TestPulsarShape(t *testing.T) {
	s, err := Builtin("pulsar", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.CountLivingCells(); got != 48 {
		t.Fatalf("pulsar has %d cells, want 48", got)
	}
	if minX, minY, maxX, maxY, _ := s.BoundingBox(); minX != 0 || minY != 0 || maxX != 12 || maxY != 12 {
		t.Fatalf("pulsar spans (%d,%d)-(%d,%d), want (0,0)-(12,12)", minX, minY, maxX, maxY)
	}
}
