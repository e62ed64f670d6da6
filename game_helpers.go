package main

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/termgol/model"
	"github.com/sheikhrachel/termgol/sim"
	"github.com/sheikhrachel/termgol/terminal"
	"github.com/sheikhrachel/termgol/utils"
)

// initializeGame sizes and seeds the grid from the terminal and wires the loop around it
func initializeGame(settings utils.Settings, session *terminal.Session, logger *log.Logger) (*sim.Loop, error) {
	termHeight, termWidth := session.Size()
	grid, err := model.NewGrid(termHeight*settings.Density, termWidth*settings.Density)
	if err != nil {
		return nil, errors.Wrapf(err, "[initializeGame] unable to size grid from %dx%d terminal",
			termHeight, termWidth)
	}
	grid.SeedRandom(model.NewRandomSource(settings.Seed), settings.SpawnProbability)

	engine := model.NewEngine(settings.Edge, settings.Workers, model.NewBufferPool())
	loop, err := sim.New(grid, engine, session.Renderer(), session.Input(), settings, utils.NewStats())
	if err != nil {
		return nil, err
	}

	displayGameInfo(logger, settings, grid, engine)
	return loop, nil
}

// displayGameInfo logs the initial game information
func displayGameInfo(logger *log.Logger, settings utils.Settings, grid *model.Grid, engine *model.Engine) {
	logger.Printf("grid %dx%d (density %d) | edges %s | workers %d | tick %v",
		grid.GetHeight(), grid.GetWidth(), settings.Density, engine.Edge(), settings.Workers,
		settings.TickInterval)
	logger.Printf("initial living cells: %d (spawn rate %.2f)",
		grid.CountLivingCells(), settings.SpawnProbability)
}

// openRunLog returns the logger used while the terminal is in the alternate screen. Without a
// log file it discards everything so nothing paints over the frame.
func openRunLog(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[openRunLog] failed to open log file: %+v", path)
	}
	return log.New(f, "termgol: ", log.LstdFlags), f.Close, nil
}
