package game

import (
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/pattern"
	"github.com/sheikhrachel/go-life/utils"
)

// LoadSeed builds the initial state from the configured seed source:
// PatternFile, then Soup, then the built-in Pattern. Built-ins and soups
// get a board that fills the window.
func LoadSeed(config utils.Config) (*model.State, error) {
	width, height := config.BoardSize()

	switch {
	case config.PatternFile != "":
		var format pattern.Format
		if config.Format != "" {
			var err error
			if format, err = pattern.ForName(config.Format); err != nil {
				return nil, err
			}
		}
		return pattern.LoadFile(config.PatternFile, format)
	case config.Soup:
		return pattern.Soup{
			Width:   width,
			Height:  height,
			Density: config.SoupDensity,
			Seed:    config.SoupSeed,
		}.Generate()
	default:
		name := config.Pattern
		if name == "" {
			name = pattern.DefaultPattern
		}
		return pattern.Builtin(name, width, height)
	}
}
