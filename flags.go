package main

import (
	"flag"
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/termgol/utils"
)

// options is everything the command line can ask for
type options struct {
	config     utils.Config
	configFile string
	version    bool
}

// parseArgs layers explicit flags over the JSON config file over the defaults
func parseArgs(args []string, output io.Writer) (options, error) {
	var (
		opts  options
		flags = utils.DefaultConfig()
		fs    = flag.NewFlagSet("termgol", flag.ContinueOnError)
	)
	fs.SetOutput(output)

	fs.IntVar(&flags.Speed, "speed", flags.Speed, "milliseconds between generations (1-1000)")
	fs.IntVar(&flags.Speed, "s", flags.Speed, "shorthand for -speed")
	fs.IntVar(&flags.Density, "density", flags.Density, "grid cells per terminal cell along each axis (1-10)")
	fs.IntVar(&flags.Density, "d", flags.Density, "shorthand for -density")
	fs.Float64Var(&flags.SpawnRate, "rate", flags.SpawnRate, "initial probability that a cell is alive (0.0-1.0)")
	fs.Float64Var(&flags.SpawnRate, "r", flags.SpawnRate, "shorthand for -rate")
	fs.StringVar(&flags.CellColor, "cell-color", flags.CellColor, "live cell color: name, #rrggbb or default")
	fs.StringVar(&flags.BackgroundColor, "background", flags.BackgroundColor, "background color: name, #rrggbb or default")
	fs.StringVar(&flags.Edge, "edge", flags.Edge, "edge policy: clipped or toroidal")
	fs.IntVar(&flags.Workers, "workers", flags.Workers, "row bands computed concurrently per generation")
	fs.Int64Var(&flags.Seed, "seed", flags.Seed, "random seed, 0 seeds from the clock")
	fs.StringVar(&flags.LogFile, "log", flags.LogFile, "append logs to this file while the simulation runs")
	fs.StringVar(&opts.configFile, "config", "", "JSON config file; explicit flags override it")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, errors.Errorf("[parseArgs] unexpected arguments: %v", fs.Args())
	}

	opts.config = flags
	if opts.configFile == "" {
		return opts, nil
	}

	fileConfig, err := utils.LoadConfig(opts.configFile)
	if err != nil {
		return opts, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "speed", "s":
			fileConfig.Speed = flags.Speed
		case "density", "d":
			fileConfig.Density = flags.Density
		case "rate", "r":
			fileConfig.SpawnRate = flags.SpawnRate
		case "cell-color":
			fileConfig.CellColor = flags.CellColor
		case "background":
			fileConfig.BackgroundColor = flags.BackgroundColor
		case "edge":
			fileConfig.Edge = flags.Edge
		case "workers":
			fileConfig.Workers = flags.Workers
		case "seed":
			fileConfig.Seed = flags.Seed
		case "log":
			fileConfig.LogFile = flags.LogFile
		}
	})
	opts.config = fileConfig
	return opts, nil
}
