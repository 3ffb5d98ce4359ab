package model

import (
	"cmp"
	"fmt"
	"time"
)

// Task is the domain model for a dated calendar entry.
// Day and Month are taken as given; they are not normalized against Year.
type Task struct {
	Year        int
	Month       time.Month
	Day         int
	Description string
}

// Today returns the task-shaped date of now. Description is empty.
func Today(now time.Time) Task {
	y, m, d := now.Date()
	return Task{Year: y, Month: m, Day: d}
}

// Compare orders tasks by year, month, day, then description.
func Compare(a, b Task) int {
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Month, b.Month); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Day, b.Day); c != 0 {
		return c
	}
	return cmp.Compare(a.Description, b.Description)
}

// SameDay reports whether t and o fall on the same month and day, ignoring year.
func (t Task) SameDay(o Task) bool { return t.Month == o.Month && t.Day == o.Day }

// SameDate reports whether t and o fall on the same calendar date.
func (t Task) SameDate(o Task) bool { return t.Year == o.Year && t.SameDay(o) }

// Stamp is the "DD.MM" prefix used when printing a task.
func (t Task) Stamp() string { return fmt.Sprintf("%02d.%02d", t.Day, int(t.Month)) }

func (t Task) String() string { return t.Stamp() + " => " + t.Description }

// Weekday returns the Monday-first index of date: 0 = Monday ... 6 = Sunday.
func Weekday(date time.Time) int {
	switch wd := date.Weekday(); wd {
	case time.Sunday:
		return 6
	default:
		return int(wd) - 1
	}
}
