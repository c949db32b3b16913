package main

import (
	"context"
	"encoding/binary"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

const seedAttempts = 50

var seedRetryDelay = 100 * time.Millisecond

// game owns everything one animation needs
type game struct {
	config   utils.Config
	board    *model.Board
	pool     *model.BoardPool
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	logger   log.Logger
}

// configFromContext loads the config file named by --config and applies the
// command line overrides. A missing file falls back to the defaults.
func configFromContext(c *cli.Context) (config utils.Config, usedDefaults bool, err error) {
	config, err = utils.LoadConfig(c.String("config"))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, false, err
		}
		config, usedDefaults = utils.DefaultConfig(), true
	}

	if c.IsSet("max-steps") {
		config.MaxSteps = c.Int("max-steps")
	}
	if c.IsSet("frame-rate") {
		config.FrameRate = c.Duration("frame-rate")
	}
	if c.IsSet("log-file") {
		config.LogFile = c.String("log-file")
	}
	if c.Bool("debug") {
		config.Debug = true
	}

	return config, usedDefaults, config.Validate()
}

// generateSeed parses the seed argument, or draws a fresh one from source
// when the argument is absent or not an unsigned integer
func generateSeed(arg string, source io.Reader, logger log.Logger) (uint64, error) {
	if arg != "" {
		seed, err := strconv.ParseUint(arg, 10, 64)
		if err == nil {
			return seed, nil
		}
		level.Warn(logger).Log("msg", "ignoring seed argument", "seed", arg, "err", err)
	}

	var (
		buf [8]byte
		err error
	)
	for attempt := 0; attempt < seedAttempts; attempt++ {
		if _, err = io.ReadFull(source, buf[:]); err == nil {
			return binary.LittleEndian.Uint64(buf[:]), nil
		}
		level.Debug(logger).Log("msg", "seed generation failed", "attempt", attempt+1, "err", err)
		time.Sleep(seedRetryDelay)
	}

	return 0, errors.Wrapf(err, "[generateSeed] no seed after %d attempts", seedAttempts)
}

// newGame sizes a random board to the screen
func newGame(config utils.Config, screen tcell.Screen, rng *rand.Rand, logger log.Logger) (*game, error) {
	width, height := screen.Size()
	board, err := model.NewRandomBoard(width, height, rng)
	if err != nil {
		return nil, errors.Wrapf(err, "[newGame] terminal is %dx%d", width, height)
	}

	var pool *model.BoardPool
	if config.UsePool {
		pool = model.NewBoardPool()
	}

	return &game{
		config:   config,
		board:    board,
		pool:     pool,
		renderer: model.NewTerminalRenderer(screen, model.NewRandomPalette(rng)),
		stats:    utils.NewStats(),
		logger:   logger,
	}, nil
}

// run draws one generation per frame until MaxSteps generations have been
// drawn or ctx is done. MaxSteps of zero runs until ctx is done.
func (g *game) run(ctx context.Context) error {
	lastFrameTime := time.Now()

	for generation := 0; g.config.MaxSteps == 0 || generation < g.config.MaxSteps; generation++ {
		if ctx.Err() != nil {
			return nil
		}

		frameStart := time.Now()
		g.renderer.Display(g.board)

		livingCells := g.board.CountLivingCells()
		g.stats.Update(generation+1, livingCells, time.Since(lastFrameTime))
		lastFrameTime = frameStart
		level.Debug(g.logger).Log("msg", "drew generation", "generation", generation, "living", livingCells)

		next := g.board.NextGeneration(g.pool)
		model.BoardToPool(g.board, g.pool)
		g.board = next

		if !waitForNextFrame(ctx, g.config.FrameRate) {
			return nil
		}
	}

	return nil
}

// waitForNextFrame sleeps for one frame and reports whether the game should go on
func waitForNextFrame(ctx context.Context, frameRate time.Duration) bool {
	if frameRate <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(frameRate)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// handleEvents quits on Esc, q or Ctrl+C and redraws after a resize
func (g *game) handleEvents(ctx context.Context, events <-chan tcell.Event, quit context.CancelFunc) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					level.Debug(g.logger).Log("msg", "quit requested", "key", ev.Name())
					quit()
					return nil
				}
			case *tcell.EventResize:
				g.renderer.Sync()
			}
		}
	}
}

// play runs the draw loop and the screen event listener until either stops
func (g *game) play(ctx context.Context, screen tcell.Screen) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		events    = make(chan tcell.Event)
	)

	eg.Go(func() error {
		screen.ChannelEvents(events, egCtx.Done())
		return nil
	})
	eg.Go(func() error {
		return g.handleEvents(egCtx, events, cancel)
	})
	eg.Go(func() error {
		defer cancel()
		return g.run(egCtx)
	})

	return eg.Wait()
}

// logSummary reports the final stats
func logSummary(logger log.Logger, stats *utils.Stats) {
	level.Info(logger).Log(
		"msg", "finished",
		"generations", stats.TotalGenerations,
		"runtime", stats.Runtime().Round(time.Millisecond),
		"gen_per_sec", strconv.FormatFloat(stats.GenerationsPerSecond, 'f', 1, 64),
		"avg_population", strconv.FormatFloat(stats.AveragePopulation, 'f', 1, 64),
		"peak_population", stats.PeakPopulation,
		"final_population", stats.LastPopulation,
	)
}
