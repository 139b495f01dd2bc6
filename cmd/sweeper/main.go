package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v3"
	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/mines"
)

func newLogger(w io.Writer) *slog.Logger {
	if config.Development() {
		return slog.New(tint.NewHandler(w, &tint.Options{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}

// boardOptions merges env config with the flags that were set explicitly.
func boardOptions(cmd *cli.Command) (mines.Options, error) {
	options, err := config.NewBoard()
	if err != nil {
		return options, fmt.Errorf("failed to read board config: %w", err)
	}
	if cmd.IsSet("width") {
		if options.Width, err = uint16Flag(cmd, "width"); err != nil {
			return options, err
		}
	}
	if cmd.IsSet("height") {
		if options.Height, err = uint16Flag(cmd, "height"); err != nil {
			return options, err
		}
	}
	if cmd.IsSet("bombs") {
		options.BombCount = int(cmd.Int("bombs"))
	}
	if cmd.IsSet("safe-start") {
		options.SafeStart = cmd.Bool("safe-start")
	}
	return options, options.Validate()
}

func uint16Flag(cmd *cli.Command, name string) (uint16, error) {
	v := cmd.Int(name)
	if v < 0 || v > math.MaxUint16 {
		return 0, fmt.Errorf("%w: --%s %d out of range [0, %d]",
			mines.ErrInvalidParameters, name, v, math.MaxUint16)
	}
	return uint16(v), nil
}

func newRand(cmd *cli.Command) (*rand.Rand, [2]uint64, error) {
	var (
		seed [2]uint64
		err  error
	)
	if cmd.IsSet("seed") {
		seed, err = config.ParseSeed(cmd.String("seed"))
	} else {
		seed, err = config.Seed()
	}
	if err != nil {
		return nil, seed, err
	}
	return rand.New(rand.NewPCG(seed[0], seed[1])), seed, nil
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "sweeper",
		Usage: "minesweeper in the terminal",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Usage: "board width in tiles (BOARD_WIDTH)"},
			&cli.IntFlag{Name: "height", Usage: "board height in tiles (BOARD_HEIGHT)"},
			&cli.IntFlag{Name: "bombs", Usage: "number of bombs (BOARD_BOMBS)"},
			&cli.BoolFlag{Name: "safe-start", Usage: "uncover the first empty tile (BOARD_SAFE_START)"},
			&cli.StringFlag{Name: "seed", Usage: "random seed as SEED1:SEED2 (BOARD_SEED)"},
		},
		Commands: []*cli.Command{
			playCommand(),
			dumpCommand(),
		},
		DefaultCommand: "play",
	}
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		newLogger(os.Stderr).Error("sweeper failed", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}
