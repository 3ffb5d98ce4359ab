package linestore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/idilsaglam/taskcal/internal/model"
)

// Line-oriented task input. One task per line, "DD.MM<sep>description".
// Reading stops at end-of-input or at the first line that does not parse.

var dateToken = regexp.MustCompile(`^\s*(\d{1,2}\.\d{1,2})`)

// ParseError reports a line whose date token is missing or invalid.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var errNoDate = errors.New("missing DD.MM date")

// ParseLine turns one input line into a task dated in the year of now.
func ParseLine(line string, now time.Time) (model.Task, error) {
	m := dateToken.FindStringSubmatchIndex(line)
	if m == nil {
		return model.Task{}, errNoDate
	}
	d, err := time.Parse("2.1", line[m[2]:m[3]])
	if err != nil {
		return model.Task{}, fmt.Errorf("parse date: %w", err)
	}
	rest := line[m[1]:]
	if rest != "" {
		_, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]
	}
	return model.Task{
		Year:        now.Year(),
		Month:       d.Month(),
		Day:         d.Day(),
		Description: rest,
	}, nil
}

// Reader yields tasks lazily, one per input line.
type Reader struct {
	br   *bufio.Reader
	now  func() time.Time
	eof  bool
	line int
	task model.Task
	err  error
}

// NewReader reads tasks from r. now seeds the year of every task.
func NewReader(r io.Reader, now func() time.Time) *Reader {
	if now == nil {
		now = time.Now
	}
	return &Reader{br: bufio.NewReader(r), now: now}
}

// Next advances to the next task. It returns false at end-of-input or after
// the first error; Err tells the two apart.
func (r *Reader) Next() bool {
	if r.err != nil || r.eof {
		return false
	}
	text, err := r.br.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF):
		// A last line without a newline still counts.
		r.eof = true
		if text == "" {
			return false
		}
	case err != nil:
		r.err = fmt.Errorf("read input: %w", err)
		return false
	}
	r.line++
	text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
	t, err := ParseLine(text, r.now())
	if err != nil {
		r.err = &ParseError{Line: r.line, Text: text, Err: err}
		return false
	}
	r.task = t
	return true
}

// Task returns the task produced by the last successful Next.
func (r *Reader) Task() model.Task { return r.task }

// Err returns the error that stopped the reader, or nil at a clean end-of-input.
func (r *Reader) Err() error { return r.err }

// Load drains r. Tasks read before an error are returned together with it.
func Load(r io.Reader, now func() time.Time) (model.Tasks, error) {
	rd := NewReader(r, now)
	var tasks model.Tasks
	for rd.Next() {
		tasks = append(tasks, rd.Task())
	}
	return tasks, rd.Err()
}
