package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/taskcal/internal/model"
)

const (
	cellWidth = 3
	gridWidth = 7 * cellWidth
)

var weekdayLabels = [...]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Calendar draws month grids to a writer.
type Calendar struct {
	out     io.Writer
	palette Palette
	today   model.Task
}

// NewCalendar draws on w using styles from r. today gets its own highlight.
func NewCalendar(w io.Writer, r *lipgloss.Renderer, today model.Task) *Calendar {
	return &Calendar{out: w, palette: NewPalette(r), today: today}
}

// Render writes the grid for m and returns the number of lines written:
// header, weekday row, one row per week and a trailing blank line.
// current, when non-nil, marks the day drawn with the current-task color.
func (c *Calendar) Render(m model.Month, tasks model.Tasks, current *model.Task) (int, error) {
	var b strings.Builder

	name := m.Month.String()
	b.WriteString(strings.Repeat(" ", max((gridWidth-len(name)-5)/2, 0)))
	b.WriteString(c.palette.Header.Render(fmt.Sprintf("%s %d", name, m.Year)))
	b.WriteByte('\n')
	for _, label := range weekdayLabels {
		fmt.Fprintf(&b, "%-*s", cellWidth, label)
	}
	b.WriteByte('\n')

	monthTasks := tasks.InMonth(m.Year, m.Month)
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	b.WriteString(strings.Repeat(" ", model.Weekday(first)*cellWidth))

	wd := 0
	for day := first; day.Month() == m.Month; day = day.AddDate(0, 0, 1) {
		date := model.Task{Year: m.Year, Month: m.Month, Day: day.Day()}
		h := HighlightFor(DayState{
			Current: current != nil && current.SameDate(date),
			HasTask: monthTasks.Contains(date),
			Today:   c.today.SameDate(date),
		})
		b.WriteString(c.palette.Style(h).Render(fmt.Sprintf("%2d", day.Day())))
		b.WriteByte(' ')
		if wd = model.Weekday(day); wd == 6 {
			b.WriteByte('\n')
		}
	}
	if wd != 6 {
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	out := b.String()
	if _, err := io.WriteString(c.out, out); err != nil {
		return 0, fmt.Errorf("write calendar: %w", err)
	}
	return strings.Count(out, "\n"), nil
}

// WriteTasks prints one line per task. Only the first task of a day carries
// the "DD.MM =>" prefix; the rest are indented under it.
func WriteTasks(w io.Writer, tasks model.Tasks) error {
	indent := strings.Repeat(" ", len("DD.MM => "))
	for i, t := range tasks {
		line := t.String()
		if i > 0 && tasks[i-1].SameDate(t) {
			line = indent + t.Description
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write tasks: %w", err)
		}
	}
	return nil
}
