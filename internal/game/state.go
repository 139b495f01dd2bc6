package game

type State int

const (
	// Load is the state of a session that has never had a board.
	Load State = iota
	Reload
	InGame
	Pause
	// Out means the board has been cleared.
	Out
	Lost
	Won
)

func (s State) String() string {
	switch s {
	case Load:
		return "load"
	case Reload:
		return "reload"
	case InGame:
		return "in game"
	case Pause:
		return "pause"
	case Out:
		return "out"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}
