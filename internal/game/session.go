package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

var ErrWrongState = errors.New("operation not allowed in current state")

// Session is the game loop state around a single board. It is not safe
// for concurrent use: every call runs to completion before the next one.
type Session struct {
	options mines.Options
	window  mines.Point
	rnd     *rand.Rand
	logger  *slog.Logger

	board  *mines.Board
	state  State
	events []Event
}

func NewSession(options mines.Options, window mines.Point, rnd *rand.Rand, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		options: options,
		window:  window,
		rnd:     rnd,
		logger:  logger,
		state:   Load,
	}
}

func (s *Session) State() State {
	return s.state
}

// Board returns the installed board, or nil when there is none.
func (s *Session) Board() *mines.Board {
	return s.board
}

func (s *Session) Options() mines.Options {
	return s.options
}

// SetWindow changes the window size used to lay out the next board.
func (s *Session) SetWindow(window mines.Point) {
	s.window = window
}

// Events drains the queued events in the order they happened.
func (s *Session) Events() []Event {
	events := s.events
	s.events = nil
	return events
}

func (s *Session) emit(e Event) {
	s.logger.Debug("event", slog.String("type", fmt.Sprintf("%T", e)))
	s.events = append(s.events, e)
}

func (s *Session) setState(state State) {
	if s.state == state {
		return
	}
	s.logger.Info("state changed",
		slog.String("from", s.state.String()),
		slog.String("to", state.String()),
	)
	s.state = state
}

// Load generates the first board, or a new one after [Session.Clear].
func (s *Session) Load() error {
	if s.state != Load && s.state != Out {
		return fmt.Errorf("%w: cannot load while %s", ErrWrongState, s.state)
	}
	return s.install()
}

// Reload discards the current board and generates a new one. If
// generation fails the session ends up with no board.
func (s *Session) Reload() error {
	switch s.state {
	case InGame, Pause, Lost, Won:
	default:
		return fmt.Errorf("%w: cannot reload while %s", ErrWrongState, s.state)
	}
	s.setState(Reload)
	s.discard()
	return s.install()
}

// Clear discards the current board.
func (s *Session) Clear() error {
	switch s.state {
	case InGame, Pause, Lost, Won:
	default:
		return fmt.Errorf("%w: cannot clear while %s", ErrWrongState, s.state)
	}
	s.discard()
	s.setState(Out)
	return nil
}

// TogglePause switches between playing and paused.
func (s *Session) TogglePause() error {
	switch s.state {
	case InGame:
		s.setState(Pause)
	case Pause:
		s.setState(InGame)
	default:
		return fmt.Errorf("%w: cannot pause while %s", ErrWrongState, s.state)
	}
	return nil
}

func (s *Session) discard() {
	if s.board == nil {
		return
	}
	s.board = nil
	s.emit(BoardCleared{})
}

func (s *Session) install() error {
	board, start, ok, err := s.options.NewBoard(s.window, s.rnd)
	if err != nil {
		s.logger.Error("failed to generate board",
			slog.String("options", s.options.String()),
			slog.Any("error", err),
		)
		if s.state == Reload {
			s.setState(Out)
		}
		return fmt.Errorf("failed to generate board: %w", err)
	}

	s.board = board
	s.emit(BoardLoaded{Board: board})
	s.setState(InGame)
	s.logger.Info("board installed",
		slog.String("options", s.options.String()),
		slog.Any("bounds", board.Layout().Bounds),
	)

	if s.options.SafeStart && ok {
		s.uncover(start)
	}
	return nil
}

// TriggerAt uncovers the tile at c. It does nothing unless a game is in
// progress.
func (s *Session) TriggerAt(c mines.Coordinates) mines.UncoverOutcome {
	if s.state != InGame {
		return mines.UncoverOutcome{Result: mines.NoOp}
	}
	return s.uncover(c)
}

func (s *Session) TriggerAtPoint(p mines.Point) mines.UncoverOutcome {
	if s.state != InGame {
		return mines.UncoverOutcome{Result: mines.NoOp}
	}
	c, ok := s.board.PointToCoordinates(p)
	if !ok {
		return mines.UncoverOutcome{Result: mines.NoOp}
	}
	return s.uncover(c)
}

func (s *Session) uncover(c mines.Coordinates) mines.UncoverOutcome {
	outcome := s.board.Uncover(c)
	switch outcome.Result {
	case mines.NoOp:
	case mines.BombHit:
		s.emit(TilesRevealed{Tiles: outcome.Tiles})
		s.emit(BombTriggered{At: c})
		s.logger.Info("bomb triggered", slog.String("at", c.String()))
		s.setState(Lost)
	case mines.Revealed:
		s.emit(TilesRevealed{Tiles: outcome.Tiles})
		if s.board.IsComplete() {
			s.emit(BoardCompleted{})
			s.setState(Won)
		}
	}
	return outcome
}

// ToggleMarkAt flags or unflags the tile at c. It does nothing unless a
// game is in progress.
func (s *Session) ToggleMarkAt(c mines.Coordinates) mines.MarkOutcome {
	if s.state != InGame {
		return mines.MarkNoOp
	}
	outcome := s.board.ToggleMark(c)
	switch outcome {
	case mines.Marked:
		s.emit(TileMarked{At: c})
	case mines.Unmarked:
		s.emit(TileUnmarked{At: c})
	}
	return outcome
}

func (s *Session) ToggleMarkAtPoint(p mines.Point) mines.MarkOutcome {
	if s.state != InGame {
		return mines.MarkNoOp
	}
	c, ok := s.board.PointToCoordinates(p)
	if !ok {
		return mines.MarkNoOp
	}
	return s.ToggleMarkAt(c)
}
