package model

import (
	"errors"
	"slices"
	"time"
)

var (
	// ErrNoTasks is returned when the input carried no tasks at all.
	ErrNoTasks = errors.New("no tasks")
	// ErrAllPast is returned when every task lies before today.
	ErrAllPast = errors.New("all tasks are in the past")
)

// Tasks is an ordered collection of Task.
type Tasks []Task

// Sort orders the collection ascending by Compare.
func (ts Tasks) Sort() { slices.SortStableFunc(ts, Compare) }

// Upcoming returns the suffix of a sorted collection starting at the first task
// on or after today.
func (ts Tasks) Upcoming(today Task) (Tasks, error) {
	if len(ts) == 0 {
		return nil, ErrNoTasks
	}
	i, _ := slices.BinarySearchFunc(ts, today, Compare)
	if i == len(ts) {
		return nil, ErrAllPast
	}
	return ts[i:], nil
}

// InMonth returns the contiguous run of a sorted collection that falls in year/month.
func (ts Tasks) InMonth(year int, month time.Month) Tasks {
	key := func(t Task) int { return t.Year*12 + int(t.Month) - 1 }
	want := year*12 + int(month) - 1
	lo, _ := slices.BinarySearchFunc(ts, want, func(t Task, k int) int { return key(t) - k })
	hi := lo
	for hi < len(ts) && key(ts[hi]) == want {
		hi++
	}
	return ts[lo:hi]
}

// Contains reports whether some task shares the month and day of date. The
// collection must be sorted by (month, day), which holds for any InMonth run.
func (ts Tasks) Contains(date Task) bool {
	_, found := slices.BinarySearchFunc(ts, date, func(t, d Task) int {
		if t.Month != d.Month {
			return int(t.Month) - int(d.Month)
		}
		return t.Day - d.Day
	})
	return found
}

// Month is a calendar month of a given year.
type Month struct {
	Year  int
	Month time.Month
}

// Next returns the month that follows m.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

func (m Month) after(o Month) bool {
	return m.Year > o.Year || (m.Year == o.Year && m.Month > o.Month)
}

// Months walks every month from the first to the last task of a sorted,
// non-empty collection, inclusive.
func (ts Tasks) Months() []Month {
	if len(ts) == 0 {
		return nil
	}
	first, last := ts[0], ts[len(ts)-1]
	end := Month{Year: last.Year, Month: last.Month}
	var out []Month
	for m := (Month{Year: first.Year, Month: first.Month}); !m.after(end); m = m.Next() {
		out = append(out, m)
	}
	return out
}
