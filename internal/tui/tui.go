// Package tui is a terminal front end for a game session. It draws the
// board and turns mouse and keyboard input into session calls.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/minesweeper-board/internal/game"
	"github.com/vancomm/minesweeper-board/internal/mines"
	"golang.org/x/sync/errgroup"
)

// Each tile is drawn cellWidth terminal columns wide and one row high.
const cellWidth = 2

// statusLines are reserved at the bottom of the screen.
const statusLines = 2

// Options fits board options to the terminal: one unit per tile, no
// padding, top-left corner one tile in from the screen corner.
func Options(options mines.Options) mines.Options {
	options.TileSize = mines.FixedTileSize(1)
	options.TilePadding = 0
	options.Position = mines.CustomPosition{X: 1, Y: 1}
	return options
}

type UI struct {
	screen  tcell.Screen
	session *game.Session
	logger  *slog.Logger

	cursor  mines.Coordinates
	buttons tcell.ButtonMask
	status  string
}

// New takes ownership of an initialized screen; [UI.Run] finalizes it.
func New(screen tcell.Screen, session *game.Session, logger *slog.Logger) *UI {
	if logger == nil {
		logger = slog.Default()
	}
	screen.EnableMouse()
	screen.HideCursor()
	u := &UI{
		screen:  screen,
		session: session,
		logger:  logger,
	}
	session.SetWindow(u.Window())
	return u
}

// Start loads the first board.
func (u *UI) Start() error {
	err := u.session.Load()
	u.report(err)
	u.drainEvents()
	return err
}

// Window is the screen area available to the board, in tiles.
func (u *UI) Window() mines.Point {
	w, h := u.screen.Size()
	return mines.Point{X: float64(w / cellWidth), Y: float64(max(h-statusLines, 0))}
}

// Run draws the board and processes input until the player quits or ctx
// is done.
func (u *UI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	g, gCtx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event)

	g.Go(func() error {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gCtx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer u.screen.Fini()
		defer cancel()
		u.Draw()
		for {
			select {
			case <-gCtx.Done():
				return nil
			case ev := <-events:
				if u.Handle(ev) {
					return nil
				}
				u.Draw()
			}
		}
	})

	return g.Wait()
}

// Handle applies a single terminal event and reports whether the player
// asked to quit.
func (u *UI) Handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
		u.session.SetWindow(u.Window())
	case *tcell.EventMouse:
		u.handleMouse(ev)
	case *tcell.EventKey:
		return u.handleKey(ev)
	}
	u.drainEvents()
	return false
}

// point converts a screen cell into board space.
func point(col, row int) mines.Point {
	return mines.Point{X: float64(col) / cellWidth, Y: float64(row)}
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ u.buttons
	u.buttons = buttons

	board := u.session.Board()
	if board == nil {
		return
	}
	p := point(ev.Position())
	c, ok := board.PointToCoordinates(p)
	if !ok {
		return
	}
	u.cursor = c

	switch {
	case pressed&tcell.Button1 != 0:
		u.session.TriggerAt(c)
	case pressed&tcell.Button2 != 0:
		u.session.ToggleMarkAt(c)
	}
}

func (u *UI) handleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		u.report(u.session.TogglePause())
	case tcell.KeyUp:
		u.moveCursor(0, -1)
	case tcell.KeyDown:
		u.moveCursor(0, 1)
	case tcell.KeyLeft:
		u.moveCursor(-1, 0)
	case tcell.KeyRight:
		u.moveCursor(1, 0)
	case tcell.KeyEnter:
		u.session.TriggerAt(u.cursor)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			u.session.TriggerAt(u.cursor)
		case 'f':
			u.session.ToggleMarkAt(u.cursor)
		case 'g':
			if s := u.session.State(); s == game.Load || s == game.Out {
				u.report(u.session.Load())
			} else {
				u.report(u.session.Reload())
			}
		case 'c':
			u.report(u.session.Clear())
		}
	}
	u.drainEvents()
	return false
}

func (u *UI) moveCursor(dx, dy int) {
	board := u.session.Board()
	if board == nil {
		return
	}
	tm := board.TileMap()
	x := min(max(int(u.cursor.X)+dx, 0), int(tm.Width())-1)
	y := min(max(int(u.cursor.Y)+dy, 0), int(tm.Height())-1)
	u.cursor = mines.Coordinates{X: uint16(x), Y: uint16(y)}
}

func (u *UI) report(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, game.ErrWrongState) {
		u.logger.Debug("ignored input", slog.Any("error", err))
		return
	}
	u.logger.Error("session error", slog.Any("error", err))
	u.status = err.Error()
}

func (u *UI) drainEvents() {
	for _, e := range u.session.Events() {
		switch e := e.(type) {
		case game.BoardLoaded:
			u.cursor = mines.Coordinates{}
			u.status = fmt.Sprintf("new board: %s", u.session.Options())
		case game.BoardCleared:
			u.status = "board cleared, press g to load"
		case game.TilesRevealed:
			u.logger.Debug("tiles revealed", slog.Int("count", len(e.Tiles)))
		case game.BombTriggered:
			u.status = fmt.Sprintf("boom at %s! press g to play again", e.At)
		case game.TileMarked, game.TileUnmarked:
		case game.BoardCompleted:
			u.status = "board completed! press g to play again"
		}
	}
}
