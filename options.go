package streampager

import (
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
)

type options struct {
	prompt        string
	lineNumbers   LineNumberMode
	runNoOverflow bool
	static        bool
	pollInterval  time.Duration
	screen        tcell.Screen
	out           io.Writer
	matcher       func(query string, lines []string) []int
}

func defaultOptions() options {
	return options{
		prompt:      "streampager",
		lineNumbers: LineNumbersNo,
	}
}

// Option configures a Pager created by New.
type Option func(*options)

// WithPrompt sets the persistent status line shown at the bottom of the
// screen.
func WithPrompt(text string) Option {
	return func(o *options) {
		o.prompt = text
	}
}

// WithLineNumberMode sets the initial line-number gutter mode. Enabled
// and Disabled pin the gutter against the user toggle.
func WithLineNumberMode(mode LineNumberMode) Option {
	return func(o *options) {
		o.lineNumbers = mode
	}
}

// WithRunNoOverflow lets a static session print everything and exit when
// the content fits on a single screen instead of going interactive.
func WithRunNoOverflow() Option {
	return func(o *options) {
		o.runNoOverflow = true
	}
}

// WithStaticOutput selects the one-shot render mode: the content known at
// Run time is displayed, user navigation works, but events streamed after
// startup are ignored.
func WithStaticOutput() Option {
	return func(o *options) {
		o.static = true
	}
}

// WithPollInterval overrides the input poll interval. The default of 10ms
// bounds how quickly suspension and shutdown are observed.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		o.pollInterval = d
	}
}

// WithScreen hands the session an already initialized tcell screen and
// skips the one-shot short-circuit checks. Intended for tests using
// tcell's SimulationScreen.
func WithScreen(screen tcell.Screen) Option {
	return func(o *options) {
		o.screen = screen
	}
}

// WithOutput sets the writer that receives the one-shot dump when the
// session never goes interactive. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithMatcher replaces the search matcher. The function receives the
// typed query and the formatted lines and returns the indices of matching
// lines, ascending. The default is case-sensitive substring search.
func WithMatcher(matcher func(query string, lines []string) []int) Option {
	return func(o *options) {
		o.matcher = matcher
	}
}
