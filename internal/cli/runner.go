package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/taskcal/internal/model"
	"github.com/idilsaglam/taskcal/internal/store/linestore"
	"github.com/idilsaglam/taskcal/internal/ui"
)

// Options wire the run to its environment. Zero-valued streams and clock
// fall back to the process defaults.
type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	Now func() time.Time

	// Interactive marks the nearest upcoming task with the current-task color.
	Interactive bool
	// Profile is the color profile of Out; main fills it from ui.DetectProfile.
	Profile  termenv.Profile
	LogLevel log.Level
}

func (o Options) withDefaults() Options {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "taskcal",
	})
}

// Run reads tasks, then prints one calendar per month from the nearest
// upcoming task to the last one. It returns the process exit code
// (0 ok, 1 nothing to show or output failed).
func Run(opt Options) int {
	opt = opt.withDefaults()
	logger := newLogger(opt.Err, opt.LogLevel)
	today := model.Today(opt.Now())

	tasks, err := linestore.Load(opt.In, opt.Now)
	var perr *linestore.ParseError
	switch {
	case errors.As(err, &perr):
		logger.Error("bad task line, ignoring the rest of the input",
			"line", perr.Line, "text", perr.Text, "err", perr.Err)
	case err != nil:
		logger.Error("reading tasks", "err", err)
	}
	logger.Debug("tasks read", "count", len(tasks))

	tasks.Sort()
	upcoming, err := tasks.Upcoming(today)
	if err != nil {
		logger.Debug("nothing to show", "err", err)
		return 1
	}

	var current *model.Task
	if opt.Interactive {
		current = &upcoming[0]
	}

	out := bufio.NewWriter(opt.Out)
	if err := render(out, ui.NewRenderer(opt.Out, opt.Profile), today, upcoming, current, logger); err != nil {
		logger.Error("writing calendar", "err", err)
		return 1
	}
	if err := out.Flush(); err != nil {
		logger.Error("writing calendar", "err", err)
		return 1
	}
	return 0
}

func render(w io.Writer, r *lipgloss.Renderer, today model.Task, tasks model.Tasks, current *model.Task, logger *log.Logger) error {
	cal := ui.NewCalendar(w, r, today)
	months := tasks.Months()
	for i, m := range months {
		lines, err := cal.Render(m, tasks, current)
		if err != nil {
			return err
		}
		logger.Debug("month rendered", "year", m.Year, "month", m.Month, "lines", lines)
		if err := ui.WriteTasks(w, tasks.InMonth(m.Year, m.Month)); err != nil {
			return err
		}
		if i < len(months)-1 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
