package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	Run struct {
		Config string `help:"YAML configuration file." type:"existingfile" short:"c"`
	} `cmd:"" default:"withargs" help:"Open a window and fly the camera with WASD and the mouse (Tab toggles mouse look)."`

	Simulate struct {
		Scripts []string `arg:"" name:"scripts" help:"YAML input scripts to replay." type:"path"`
		Workers int      `help:"Number of scripts replayed concurrently (0 = CPU count - 1)." default:"0"`
		Frames  bool     `help:"Write every frame to standard output as YAML instead of only the final state."`
	} `cmd:"" help:"Replay scripted look and movement input without a window."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("freelook"),
		kong.Description("free-look camera sandbox"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	var err error
	switch ctx.Command() {
	case "run":
		err = runCommand(CLI.Run.Config)
	case "simulate <scripts>":
		err = simulateCommand(os.Stdout, CLI.Simulate.Scripts, CLI.Simulate.Workers, CLI.Simulate.Frames)
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}
	if err != nil {
		writeError(err)
	}
}
