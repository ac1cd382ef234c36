package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/go-life/display"
	"github.com/sheikhrachel/go-life/display/window"
	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
)

const windowTitle = "Game of Life"

func main() {
	logger := log.New(os.Stderr, "go-life: ", log.LstdFlags)

	flags, set, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Fatalf("invalid flags: %v", err)
	}
	if flags.list {
		listPatterns(os.Stdout)
		return
	}

	config, err := loadConfig(flags, set, logger.Printf)
	if err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}

	seed, err := game.LoadSeed(config)
	if err != nil {
		logger.Fatalf("cannot load seed pattern: %v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Println("shutting down gracefully...")
		cancel()
	}()

	if config.Display == utils.DisplayTerminal {
		runTerminal(ctx, config, logger, seed)
		return
	}
	runWindow(ctx, cancel, config, logger, seed)
}

func runTerminal(ctx context.Context, config utils.Config, logger *log.Logger, seed *model.State) {
	background, _ := utils.ParseHexColor(config.BackgroundColor)
	term := display.NewTerminal(os.Stdout, config.CellSize, config.Margin, render.ColorFromHex(background))
	defer term.Close()

	loop, err := game.New(config, term, logger)
	if err != nil {
		logger.Fatalf("cannot start game: %v", err)
	}
	if _, err = loop.Run(ctx, seed); err != nil {
		logger.Fatalf("simulation stopped: %v", err)
	}
}

// runWindow keeps ebiten on the main goroutine and the simulation loop on
// another one
func runWindow(ctx context.Context, cancel context.CancelFunc, config utils.Config, logger *log.Logger, seed *model.State) {
	win, err := window.New(windowTitle, config.WindowWidth, config.WindowHeight)
	if err != nil {
		logger.Fatalf("cannot create display: %v", err)
	}

	loop, err := game.New(config, win, logger)
	if err != nil {
		logger.Fatalf("cannot start game: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := loop.Run(ctx, seed)
		win.Close()
		done <- err
	}()

	if err = win.Run(); err != nil {
		logger.Fatalf("cannot open display: %v", err)
	}
	cancel()

	if err = <-done; err != nil {
		logger.Fatalf("simulation stopped: %v", err)
	}
}
