package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/termgol/rules"
	"github.com/sheikhrachel/termgol/terminal"
	"github.com/sheikhrachel/termgol/utils"
)

func TestParseArgsDefaults(t *testing.T) {
	opts, err := parseArgs(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if opts.config != utils.DefaultConfig() {
		t.Fatalf("config = %+v, want defaults", opts.config)
	}
}

func TestParseArgsShortAndLongFlags(t *testing.T) {
	opts, err := parseArgs([]string{"-s", "120", "-d", "3", "-r", "0.4", "-edge", "toroidal", "-cell-color", "green"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	c := opts.config
	if c.Speed != 120 || c.Density != 3 || c.SpawnRate != 0.4 || c.Edge != "toroidal" || c.CellColor != "green" {
		t.Fatalf("flags not applied: %+v", c)
	}

	opts, err = parseArgs([]string{"-speed=7", "-density=9", "-rate=1"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if opts.config.Speed != 7 || opts.config.Density != 9 || opts.config.SpawnRate != 1 {
		t.Fatalf("long flags not applied: %+v", opts.config)
	}
}

func TestParseArgsFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gol.json")
	if err := os.WriteFile(path, []byte(`{"density": 5, "speed_ms": 300, "cell_color": "red"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	opts, err := parseArgs([]string{"-config", path, "-s", "10"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	c := opts.config
	if c.Speed != 10 {
		t.Fatalf("explicit flag lost: speed = %d", c.Speed)
	}
	if c.Density != 5 || c.CellColor != "red" {
		t.Fatalf("file values lost: %+v", c)
	}
	if c.SpawnRate != utils.DefaultConfig().SpawnRate {
		t.Fatalf("default lost: %+v", c)
	}
}

func TestParseArgsRejectsStrayArguments(t *testing.T) {
	if _, err := parseArgs([]string{"-d", "2", "extra"}, io.Discard); err == nil {
		t.Fatal("expected error for positional arguments")
	}
	if _, err := parseArgs([]string{"-bogus"}, io.Discard); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestRunRejectsInvalidConfigBeforeTerminal(t *testing.T) {
	for _, args := range [][]string{
		{"-d", "0"},
		{"-d", "11"},
		{"-r", "-0.1"},
		{"-r", "1.1"},
		{"-s", "0"},
		{"-s", "1001"},
	} {
		err := run(context.Background(), args, io.Discard, io.Discard)
		var rangeErr *utils.RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("run(%v) = %v, want a range error", args, err)
		}
	}
}

func TestRunVersionAndHelp(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-version"}, &out, io.Discard); err != nil {
		t.Fatalf("run -version: %v", err)
	}
	if !strings.Contains(out.String(), version) {
		t.Fatalf("version output = %q", out.String())
	}

	var help bytes.Buffer
	if err := run(context.Background(), []string{"-h"}, io.Discard, &help); err != nil {
		t.Fatalf("run -h: %v", err)
	}
	if !strings.Contains(help.String(), "-density") {
		t.Fatalf("usage output missing flags: %q", help.String())
	}
}

func simSession(t *testing.T, width, height int) (*terminal.Session, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	session, err := terminal.Acquire(screen)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	t.Cleanup(session.Release)
	screen.SetSize(width, height)
	return session, screen
}

func TestInitializeGameRunsUntilQuit(t *testing.T) {
	session, screen := simSession(t, 20, 6)

	c := utils.DefaultConfig()
	c.Speed = 1000
	c.SpawnRate = 1
	c.Seed = 3
	settings, err := utils.Resolve(c)
	if err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	loop, err := initializeGame(settings, session, log.New(&logs, "", 0))
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	if !strings.Contains(logs.String(), "grid 12x40 (density 2) | edges clipped") {
		t.Fatalf("startup log = %q, want a 12x40 grid", logs.String())
	}
	if !strings.Contains(logs.String(), "initial living cells: 480") {
		t.Fatalf("startup log = %q, want a full grid", logs.String())
	}

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	done := make(chan struct{})
	go func() {
		loop.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop on q")
	}

	cells, _, _ := screen.GetContents()
	if cells[0].Runes[0] == ' ' {
		t.Fatal("first frame should show the seeded grid")
	}
}

func TestInitializeGameRejectsTinyTorus(t *testing.T) {
	session, _ := simSession(t, 1, 1)
	c := utils.DefaultConfig()
	c.Density = 1
	c.Edge = rules.Toroidal.String()
	settings, err := utils.Resolve(c)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := initializeGame(settings, session, log.New(io.Discard, "", 0)); err == nil {
		t.Fatal("expected error for a 1x1 toroidal grid")
	}
}

func TestOpenRunLog(t *testing.T) {
	logger, closeLog, err := openRunLog("")
	if err != nil {
		t.Fatal(err)
	}
	logger.Println("discarded")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "run.log")
	logger, closeLog, err = openRunLog(path)
	if err != nil {
		t.Fatal(err)
	}
	logger.Println("hello")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil || !strings.Contains(string(data), "hello") {
		t.Fatalf("log file = %q, %v", data, err)
	}

	if _, _, err := openRunLog(filepath.Join(t.TempDir(), "missing", "run.log")); err == nil {
		t.Fatal("expected error for an unwritable path")
	}
}
