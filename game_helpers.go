package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/pattern"
	"github.com/sheikhrachel/go-life/utils"
)

// flagValues mirrors the config fields that can be set on the command line
type flagValues struct {
	configFile  string
	list        bool
	display     string
	pattern     string
	patternFile string
	format      string
	soup        bool
	soupSeed    int64
	generations int
	parallel    bool
}

func parseFlags(fs *flag.FlagSet, args []string) (flagValues, map[string]bool, error) {
	var v flagValues
	fs.StringVar(&v.configFile, "config", "config.json", "JSON configuration file")
	fs.BoolVar(&v.list, "list", false, "list built-in patterns and exit")
	fs.StringVar(&v.display, "display", "", "display: window or terminal")
	fs.StringVar(&v.pattern, "pattern", "", "built-in pattern name")
	fs.StringVar(&v.patternFile, "pattern-file", "", "seed file (.rle, .cells, .txt)")
	fs.StringVar(&v.format, "format", "", "seed file format: rle or grid (default: from extension)")
	fs.BoolVar(&v.soup, "soup", false, "seed with a random noise soup")
	fs.Int64Var(&v.soupSeed, "seed", 0, "soup random seed (0 = random)")
	fs.IntVar(&v.generations, "generations", 0, "stop after this many generations (0 = run until closed)")
	fs.BoolVar(&v.parallel, "parallel", false, "evaluate candidates on all CPUs")

	if err := fs.Parse(args); err != nil {
		return v, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return v, set, nil
}

// loadConfig layers defaults, the JSON file, GOL_* environment variables and
// explicitly set flags, in that order
func loadConfig(v flagValues, set map[string]bool, logf func(string, ...any)) (utils.Config, error) {
	config, err := utils.LoadConfig(v.configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) || set["config"] {
			return config, err
		}
		logf("using default configuration (%s not found)", v.configFile)
		config = utils.DefaultConfig()
	}

	if err = utils.ApplyEnv(&config); err != nil {
		return config, err
	}

	if set["display"] {
		config.Display = v.display
	}
	if set["pattern"] {
		config.Pattern = v.pattern
		config.PatternFile = ""
		config.Soup = false
	}
	if set["pattern-file"] {
		config.PatternFile = v.patternFile
	}
	if set["format"] {
		config.Format = v.format
	}
	if set["soup"] {
		config.Soup = v.soup
	}
	if set["seed"] {
		config.SoupSeed = v.soupSeed
	}
	if set["generations"] {
		config.MaxGenerations = v.generations
	}
	if set["parallel"] {
		config.UseParallel = v.parallel
	}

	return config, config.Validate()
}

// listPatterns prints the built-in pattern names
func listPatterns(w io.Writer) {
	fmt.Fprintln(w, "Built-in patterns:")
	fmt.Fprintf(w, "  %s\n", strings.Join(pattern.Names(), "\n  "))
}
