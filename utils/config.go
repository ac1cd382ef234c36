package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const (
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"
)

// Config holds the configuration for the game. It is fixed at startup.
type Config struct {
	WindowWidth  int           `json:"window_width" env:"GOL_WINDOW_WIDTH"`
	WindowHeight int           `json:"window_height" env:"GOL_WINDOW_HEIGHT"`
	CellSize     int           `json:"cell_size" env:"GOL_CELL_SIZE"`
	Margin       int           `json:"margin" env:"GOL_MARGIN"`
	FrameDelay   time.Duration `json:"frame_delay" env:"GOL_FRAME_DELAY"`
	Display      string        `json:"display" env:"GOL_DISPLAY"`

	BackgroundColor string `json:"background_color" env:"GOL_BACKGROUND_COLOR"`
	CellColor       string `json:"cell_color" env:"GOL_CELL_COLOR"`

	// Seed selection: PatternFile wins over Soup, Soup over Pattern
	Pattern     string  `json:"pattern" env:"GOL_PATTERN"`
	PatternFile string  `json:"pattern_file" env:"GOL_PATTERN_FILE"`
	Format      string  `json:"format" env:"GOL_FORMAT"`
	Soup        bool    `json:"soup" env:"GOL_SOUP"`
	SoupDensity float64 `json:"soup_density" env:"GOL_SOUP_DENSITY"`
	SoupSeed    int64   `json:"soup_seed" env:"GOL_SOUP_SEED"`

	UseParallel         bool `json:"use_parallel" env:"GOL_USE_PARALLEL"`
	UseMemoryPool       bool `json:"use_memory_pool" env:"GOL_USE_MEMORY_POOL"`
	MaxGenerations      int  `json:"max_generations" env:"GOL_MAX_GENERATIONS"`
	StagnationThreshold int  `json:"stagnation_threshold" env:"GOL_STAGNATION_THRESHOLD"`
	AutoRestart         bool `json:"auto_restart" env:"GOL_AUTO_RESTART"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		WindowWidth:         800,
		WindowHeight:        600,
		CellSize:            10,
		Margin:              32,
		FrameDelay:          150 * time.Millisecond,
		Display:             DisplayWindow,
		BackgroundColor:     "#1e1478",
		CellColor:           "#ffffff",
		Pattern:             "demo",
		SoupDensity:         0.15,
		UseParallel:         false,
		UseMemoryPool:       true,
		MaxGenerations:      0, // run until closed
		StagnationThreshold: 5,
		AutoRestart:         false,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyEnv overrides fields whose GOL_* environment variable is set
func ApplyEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse environment")
	}
	return nil
}

// Validate rejects configurations the game cannot start with
func (c Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return errors.Errorf("[Validate] invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	case c.CellSize <= 0:
		return errors.Errorf("[Validate] invalid cell size %d", c.CellSize)
	case c.Margin < 0:
		return errors.Errorf("[Validate] invalid margin %d", c.Margin)
	case c.FrameDelay < 0:
		return errors.Errorf("[Validate] invalid frame delay %v", c.FrameDelay)
	case c.Display != DisplayWindow && c.Display != DisplayTerminal:
		return errors.Errorf("[Validate] unknown display %q", c.Display)
	case c.SoupDensity < 0 || c.SoupDensity > 1:
		return errors.Errorf("[Validate] soup density %v outside [0, 1]", c.SoupDensity)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] invalid max generations %d", c.MaxGenerations)
	}
	if _, err := ParseHexColor(c.BackgroundColor); err != nil {
		return errors.Wrap(err, "[Validate] background color")
	}
	if _, err := ParseHexColor(c.CellColor); err != nil {
		return errors.Wrap(err, "[Validate] cell color")
	}
	return nil
}

// BoardSize returns how many cells fit in the window inside the margins
func (c Config) BoardSize() (width, height int) {
	width = max((c.WindowWidth-2*c.Margin)/c.CellSize, 0)
	height = max((c.WindowHeight-2*c.Margin)/c.CellSize, 0)
	return
}
