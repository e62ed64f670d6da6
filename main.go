package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/termgol/terminal"
	"github.com/sheikhrachel/termgol/utils"
)

const version = "0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("termgol: ")

	// Handle SIGINT/SIGTERM sent from outside the terminal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintln(stdout, "termgol", version)
		return nil
	}

	// Reject bad configuration before touching the terminal
	settings, err := utils.Resolve(opts.config)
	if err != nil {
		return err
	}

	runLog, closeLog, err := openRunLog(opts.config.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	session, err := terminal.Acquire(nil)
	if err != nil {
		return err
	}
	defer session.Release()

	loop, err := initializeGame(settings, session, runLog)
	if err != nil {
		return err
	}

	loop.Run(ctx)
	session.Release()

	summary := loop.Stats().Summary()
	runLog.Println("stopped:", summary)
	fmt.Fprintln(stderr, "termgol:", summary)
	return nil
}
