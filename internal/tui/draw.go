package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/minesweeper-board/internal/game"
	"github.com/vancomm/minesweeper-board/internal/mines"
)

// counterColors are used for bomb counts 1, 2, 3...; higher counts reuse
// the last one.
var counterColors = []tcell.Color{
	tcell.ColorWhite,
	tcell.ColorGreen,
	tcell.ColorYellow,
	tcell.ColorOrange,
	tcell.ColorPurple,
}

func counterColor(count int) tcell.Color {
	i := min(max(count-1, 0), len(counterColors)-1)
	return counterColors[i]
}

var (
	coveredStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	flagStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	bombStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// glyph is what a tile looks like given what the player knows.
func glyph(board *mines.Board, c mines.Coordinates, lost bool) (rune, tcell.Style) {
	tile, _ := board.TileMap().At(c)
	switch {
	case board.IsMarked(c):
		return 'F', flagStyle
	case board.IsCovered(c) && lost && tile.IsBomb():
		return '*', bombStyle
	case board.IsCovered(c):
		return '#', coveredStyle
	case tile.IsBomb():
		return '*', bombStyle.Reverse(true)
	}
	if n, ok := tile.BombCount(); ok {
		return rune('0' + n), tcell.StyleDefault.Foreground(counterColor(n))
	}
	return '.', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
}

func (u *UI) Draw() {
	u.screen.Clear()
	defer u.screen.Show()

	_, h := u.screen.Size()
	u.drawText(0, h-2, statusStyle, u.statusLine())
	u.drawText(0, h-1, statusStyle, "click/space: uncover  right click/f: flag  g: new  c: clear  esc: pause  q: quit")

	board := u.session.Board()
	if board == nil {
		return
	}
	state := u.session.State()
	layout := board.Layout()
	tm := board.TileMap()
	for y := range tm.Height() {
		for x := range tm.Width() {
			c := mines.Coordinates{X: x, Y: y}
			r, style := glyph(board, c, state == game.Lost)
			if c == u.cursor && state == game.InGame {
				style = style.Reverse(true)
			}
			pos := layout.TileRect(c).Position
			u.screen.SetContent(int(pos.X*cellWidth), int(pos.Y), r, nil, style)
		}
	}
}

func (u *UI) statusLine() string {
	board := u.session.Board()
	if board == nil {
		return fmt.Sprintf("[%s] %s", u.session.State(), u.status)
	}
	return fmt.Sprintf("[%s] bombs: %d  flags: %d  %s",
		u.session.State(), board.TileMap().BombCount(), len(board.Marked()), u.status)
}

func (u *UI) drawText(col, row int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		u.screen.SetContent(col+i, row, r, nil, style)
	}
}
