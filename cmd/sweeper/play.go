package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v3"
	"github.com/vancomm/minesweeper-board/internal/game"
	"github.com/vancomm/minesweeper-board/internal/mines"
	"github.com/vancomm/minesweeper-board/internal/tui"
)

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play a game in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-file", Usage: "write logs to this file instead of discarding them"},
		},
		Action: play,
	}
}

func play(ctx context.Context, cmd *cli.Command) error {
	var logOut io.Writer = io.Discard
	if path := cmd.String("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("unable to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)
	mines.Log = logger

	options, err := boardOptions(cmd)
	if err != nil {
		return err
	}
	rnd, seed, err := newRand(cmd)
	if err != nil {
		return err
	}
	logger.Info("starting game",
		slog.String("options", options.String()),
		slog.String("seed", fmt.Sprintf("%d:%d", seed[0], seed[1])),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("unable to init screen: %w", err)
	}

	session := game.NewSession(tui.Options(options), mines.Point{}, rnd, logger)
	ui := tui.New(screen, session, logger)
	if err := ui.Start(); err != nil {
		screen.Fini()
		return err
	}
	return ui.Run(ctx)
}
