package pattern

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Library holds the built-in seeds as run-length bodies
var Library = map[string]string{
	"glider":  "bo$2bo$3o!",
	"blinker": "3o!",
	"block":   "2o$2o!",
	"toad":    "b3o$3o!",
	"beacon":  "2o$2o$2b2o$2b2o!",
	"pulsar": "2b3o3b3o2$o4bobo4bo$o4bobo4bo$o4bobo4bo$2b3o3b3o2$2b3o3b3o$" +
		"o4bobo4bo$o4bobo4bo$o4bobo4bo2$2b3o3b3o!",
	"demo": `18bo6bo$16b3o4b3o$15bo6bo$15b2o5b2o$3bo28b2o$4b2o28bo$2b2o27bo$4bo27b
2o2$2bo9bo3bo$2bo9bobobobo11b3o$2bo9bo3bo2$bo28bo$2o26bobo$2o27bobo$o
28bo$10b2o5b2o$11bo6bo$8b3o4b3o$8bo6bo!`,
}

// DefaultPattern is used when no seed is configured
const DefaultPattern = "demo"

// Names returns the built-in pattern names in sorted order
func Names() []string {
	names := make([]string, 0, len(Library))
	for name := range Library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin parses a named pattern from the library onto a board of the given
// size; zero dimensions use the run-length defaults.
func Builtin(name string, width, height int) (*model.State, error) {
	body, ok := Library[name]
	if !ok {
		return nil, errors.Errorf("[Builtin] unknown pattern: %q", name)
	}
	return RunLength{Width: width, Height: height}.Parse(body)
}
