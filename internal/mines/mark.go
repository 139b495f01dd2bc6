package mines

type MarkOutcome int

const (
	MarkNoOp MarkOutcome = iota
	Marked
	Unmarked
)

func (o MarkOutcome) String() string {
	switch o {
	case Marked:
		return "marked"
	case Unmarked:
		return "unmarked"
	default:
		return "no-op"
	}
}

// ToggleMark flags or unflags a covered tile. Uncovered and off-grid tiles
// are left alone. Marking never changes whether a tile is covered.
func (b *Board) ToggleMark(c Coordinates) MarkOutcome {
	if !b.IsCovered(c) {
		return MarkNoOp
	}
	if b.unmark(c) {
		return Unmarked
	}
	b.marked = append(b.marked, c)
	return Marked
}
