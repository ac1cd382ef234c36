// Package game drives the simulation: render, present, step, sleep, repeat.
package game

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/display"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
)

// Loop owns the state while running; nothing else touches it concurrently
type Loop struct {
	Config   utils.Config
	Display  display.Display
	Renderer render.Renderer
	Buffer   *render.PixelBuffer
	Pool     *model.SetPool
	Logger   *log.Logger
	Stats    *utils.Stats

	cellColor color.RGBA
}

// New sets up the frame buffer, renderer and pool for a validated config
func New(config utils.Config, d display.Display, logger *log.Logger) (*Loop, error) {
	background, err := utils.ParseHexColor(config.BackgroundColor)
	if err != nil {
		return nil, errors.Wrap(err, "[game.New] background color")
	}
	cell, err := utils.ParseHexColor(config.CellColor)
	if err != nil {
		return nil, errors.Wrap(err, "[game.New] cell color")
	}
	if logger == nil {
		logger = log.Default()
	}

	var pool *model.SetPool
	if config.UseMemoryPool {
		pool = model.NewSetPool()
	}

	buffer := render.NewPixelBuffer(config.WindowWidth, config.WindowHeight, render.ColorFromHex(background))

	return &Loop{
		Config:    config,
		Display:   d,
		Renderer:  render.Renderer{CellSize: config.CellSize, Margin: config.Margin},
		Buffer:    buffer,
		Pool:      pool,
		Logger:    logger,
		Stats:     utils.NewStats(),
		cellColor: render.ColorFromHex(cell),
	}, nil
}

// Run ticks until the display closes, Escape is pressed, ctx is cancelled or
// MaxGenerations is reached, and returns the last state. The seed itself is
// never modified.
func (l *Loop) Run(ctx context.Context, seed *model.State) (*model.State, error) {
	var (
		state          = seed.Clone()
		history        History
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)
	l.Logger.Printf("starting: board %dx%d, %d living cells", state.Width, state.Height, state.CountLivingCells())

	for l.shouldContinue(ctx) {
		frameStart := time.Now()
		l.renderFrame(state)

		livingCells := state.CountLivingCells()
		l.Stats.Update(generation, livingCells, state.GetBoundingBoxSize(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		// Update stagnation counter
		if history.Observe(state.Hash()) {
			stagnantCount++
			if stagnantCount == 1 {
				l.Logger.Printf("generation %d: population is stagnant", generation)
			}
		} else {
			stagnantCount = 0
		}

		if sd, ok := l.Display.(display.StatusDisplay); ok {
			sd.SetStatus(statusLine(state, generation, stagnantCount, lastRestartGen))
		}

		if err := l.Display.Present(l.Buffer.Pix(), l.Buffer.Width(), l.Buffer.Height()); err != nil {
			return state, errors.Wrapf(err, "[Loop.Run] failed to present generation %d", generation)
		}

		// Check for max generations limit
		if l.Config.MaxGenerations > 0 && generation >= l.Config.MaxGenerations {
			l.Logger.Printf("reached maximum generations limit (%d)", l.Config.MaxGenerations)
			break
		}

		// A reseeded board is shown as-is on the next tick
		if restart, reason := checkRestartConditions(livingCells, stagnantCount, l.Config); restart {
			l.Logger.Printf("generation %d: restarting due to %s", generation, reason)
			l.Pool.Put(state.Living)
			state = seed.Clone()
			history.Reset()
			stagnantCount = 0
			lastRestartGen = generation + 1
			l.Stats.Restarts++
		} else {
			// Calculate next generation
			state.Step(l.Config.UseParallel, l.Pool)
		}
		generation++

		if !sleep(ctx, l.Config.FrameDelay) {
			break
		}
	}

	l.Logger.Printf("final stats: %s", l.Stats.Summary())
	return state, nil
}

func (l *Loop) shouldContinue(ctx context.Context) bool {
	return ctx.Err() == nil && l.Display.IsOpen() && !l.Display.IsKeyPressed(display.KeyEscape)
}

func (l *Loop) renderFrame(state *model.State) {
	l.Buffer.Clear()
	l.Buffer.SetDrawColor(l.cellColor)
	l.Renderer.Render(l.Buffer, state)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if !config.AutoRestart {
		return false, ""
	}
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

func statusLine(state *model.State, generation, stagnantCount, lastRestartGen int) string {
	livingCells := state.CountLivingCells()

	var density float64
	if area := state.Width * state.Height; area > 0 {
		density = float64(livingCells) / float64(area) * 100
	}

	status := "Active"
	switch {
	case livingCells == 0:
		status = "Extinct"
	case stagnantCount > 0:
		status = fmt.Sprintf("Stagnant (%d)", stagnantCount)
	}

	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Bounding box: %d cells | Since restart: %d",
		generation, livingCells, density, status, state.GetBoundingBoxSize(), generation-lastRestartGen)
}

// sleep waits for d or until ctx is done; it reports whether to keep going
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
