package main

import (
	"context"
	cryptorand "crypto/rand"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/sheikhrachel/go-gol-torus/utils"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "go-gol-torus"
	app.Usage = "Conway's Game of Life on a torus the size of your terminal"
	app.Version = version
	app.ArgsUsage = "[seed]"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "max-steps, s",
			Usage: "stop after a number of steps",
		},
		cli.DurationFlag{
			Name:  "frame-rate",
			Usage: "time between generations",
			Value: utils.DefaultConfig().FrameRate,
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "JSON configuration file",
			Value: "config.json",
		},
		cli.StringFlag{
			Name:  "log-file",
			Usage: "append logs to this file, including while the board is on screen",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "log every generation",
		},
	}
	app.Action = runGame
	return app
}

func runGame(c *cli.Context) error {
	config, usedDefaults, err := configFromContext(c)
	if err != nil {
		return err
	}

	// Nothing may write to the terminal while tcell owns it, so without a log
	// file the session logger is a no-op and only the stderr logger is used.
	var (
		logger        = utils.NewLogger(os.Stderr, config.Debug)
		sessionLogger = log.NewNopLogger()
	)
	if config.LogFile != "" {
		f, err := utils.OpenLogFile(config.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = utils.NewLogger(f, config.Debug)
		sessionLogger = logger
	}

	if usedDefaults {
		level.Info(logger).Log("msg", "using default configuration", "config", c.String("config"))
	}

	seed, err := generateSeed(c.Args().First(), cryptorand.Reader, logger)
	if err != nil {
		return err
	}
	printRecreate(seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runGame] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[runGame] failed to initialize screen")
	}

	g, err := newGame(config, screen, rand.New(rand.NewSource(int64(seed))), sessionLogger)
	if err != nil {
		screen.Fini()
		return err
	}
	level.Debug(sessionLogger).Log("msg", "starting", "seed", seed, "width", g.board.Width(), "height", g.board.Height())

	// Handle SIGTERM and a Ctrl+C that reaches us as a signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = g.play(ctx, screen)
	screen.Fini()

	printRecreate(seed)
	logSummary(logger, g.stats)
	return err
}

func printRecreate(seed uint64) {
	fmt.Println("To recreate run:")
	fmt.Printf("%s %d\n", os.Args[0], seed)
}
