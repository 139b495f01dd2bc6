package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/vancomm/minesweeper-board/internal/mines"
)

func dumpCommand() *cli.Command {
	return &cli.Command{
		Name:   "dump",
		Usage:  "print a generated tile map",
		Action: dump,
	}
}

func dump(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(os.Stderr)
	mines.Log = logger

	options, err := boardOptions(cmd)
	if err != nil {
		return err
	}
	rnd, seed, err := newRand(cmd)
	if err != nil {
		return err
	}

	tm, err := mines.Generate(options.Width, options.Height, options.BombCount, rnd)
	if err != nil {
		return err
	}
	logger.Debug("dumping tile map", slog.String("seed", fmt.Sprintf("%d:%d", seed[0], seed[1])))

	_, err = fmt.Fprintln(cmd.Root().Writer, tm)
	return err
}
