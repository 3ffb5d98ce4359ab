package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func task(y int, m time.Month, d int, desc string) Task {
	return Task{Year: y, Month: m, Day: d, Description: desc}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Task
		want int
	}{
		{"year first", task(2023, time.December, 31, "z"), task(2024, time.January, 1, "a"), -1},
		{"month before day", task(2024, time.February, 1, ""), task(2024, time.January, 31, ""), 1},
		{"day", task(2024, time.March, 2, "b"), task(2024, time.March, 3, "a"), -1},
		{"description breaks ties", task(2024, time.March, 3, "b"), task(2024, time.March, 3, "a"), 1},
		{"equal", task(2024, time.March, 3, "a"), task(2024, time.March, 3, "a"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a))
		})
	}
}

func TestTasks_Sort(t *testing.T) {
	ts := Tasks{
		task(2024, time.May, 2, "b"),
		task(2024, time.January, 9, "x"),
		task(2024, time.May, 2, "a"),
		task(2023, time.December, 1, "y"),
	}
	ts.Sort()

	assert.Equal(t, Tasks{
		task(2023, time.December, 1, "y"),
		task(2024, time.January, 9, "x"),
		task(2024, time.May, 2, "a"),
		task(2024, time.May, 2, "b"),
	}, ts)
}

func TestToday(t *testing.T) {
	now := time.Date(2024, time.July, 14, 23, 59, 0, 0, time.Local)
	assert.Equal(t, task(2024, time.July, 14, ""), Today(now))
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "05.12 => Pay rent", task(2024, time.December, 5, "Pay rent").String())
}

func TestWeekday(t *testing.T) {
	// 2024-01-01 is a Monday.
	tests := map[int]int{1: 0, 2: 1, 5: 4, 6: 5, 7: 6}
	for day, want := range tests {
		got := Weekday(time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, want, got, "2024-01-%02d", day)
	}
}

func TestTasks_Upcoming(t *testing.T) {
	today := task(2024, time.June, 10, "")

	_, err := Tasks(nil).Upcoming(today)
	assert.ErrorIs(t, err, ErrNoTasks)

	past := Tasks{task(2024, time.June, 1, "a"), task(2024, time.June, 9, "b")}
	_, err = past.Upcoming(today)
	assert.ErrorIs(t, err, ErrAllPast)

	ts := Tasks{
		task(2024, time.June, 9, "gone"),
		task(2024, time.June, 10, "today"),
		task(2024, time.July, 1, "later"),
	}
	got, err := ts.Upcoming(today)
	require.NoError(t, err)
	assert.Equal(t, ts[1:], got)
}

func TestTasks_InMonth(t *testing.T) {
	ts := Tasks{
		task(2024, time.November, 30, "a"),
		task(2024, time.December, 1, "b"),
		task(2024, time.December, 24, "c"),
		task(2025, time.December, 1, "d"),
	}
	assert.Equal(t, ts[1:3], ts.InMonth(2024, time.December))
	assert.Equal(t, ts[3:], ts.InMonth(2025, time.December))
	assert.Empty(t, ts.InMonth(2025, time.January))
}

func TestTasks_Contains(t *testing.T) {
	ts := Tasks{
		task(2024, time.March, 1, "a"),
		task(2024, time.March, 15, "b"),
		task(2024, time.April, 2, "c"),
	}
	assert.True(t, ts.Contains(task(2024, time.March, 15, "")))
	assert.True(t, ts.Contains(task(1999, time.April, 2, "")), "year is ignored")
	assert.False(t, ts.Contains(task(2024, time.March, 2, "")))
	assert.False(t, ts.Contains(task(2024, time.April, 1, "")))
	assert.False(t, Tasks(nil).Contains(task(2024, time.March, 1, "")))
}

func TestTasks_Months(t *testing.T) {
	ts := Tasks{
		task(2024, time.November, 3, "a"),
		task(2025, time.February, 1, "b"),
	}
	assert.Equal(t, []Month{
		{2024, time.November},
		{2024, time.December},
		{2025, time.January},
		{2025, time.February},
	}, ts.Months())

	single := Tasks{task(2024, time.May, 1, "a"), task(2024, time.May, 30, "b")}
	assert.Equal(t, []Month{{2024, time.May}}, single.Months())
	assert.Nil(t, Tasks(nil).Months())
}
