package ui

// Highlight is the color class of a single day cell.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightTask
	HighlightCurrent
	HighlightToday
)

func (h Highlight) String() string {
	switch h {
	case HighlightTask:
		return "task"
	case HighlightCurrent:
		return "current"
	case HighlightToday:
		return "today"
	default:
		return "none"
	}
}

// DayState is what the grid knows about one day.
type DayState struct {
	Current bool
	HasTask bool
	Today   bool
}

// base is indexed by [current][hasTask]. Current wins over task presence.
var base = [2][2]Highlight{
	{HighlightNone, HighlightTask},
	{HighlightCurrent, HighlightCurrent},
}

// HighlightFor picks the cell color. Today overlays whatever base chose.
func HighlightFor(s DayState) Highlight {
	if s.Today {
		return HighlightToday
	}
	return base[b2i(s.Current)][b2i(s.HasTask)]
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
