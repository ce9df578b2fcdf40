package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/kk-code-lab/streampager/internal/draw"
	"github.com/kk-code-lab/streampager/internal/event"
	"github.com/kk-code-lab/streampager/internal/state"
)

// ErrTerminalSetup marks failures to bring the terminal up before any loop
// starts. Errors during the session itself are plain I/O errors.
var ErrTerminalSetup = errors.New("terminal setup")

// Mode selects between a long-lived interactive session and a one-shot
// render. It is threaded into the session at construction and never
// changes afterwards.
type Mode int

const (
	Dynamic Mode = iota
	Static
)

const defaultPollInterval = 10 * time.Millisecond

// Matcher locates search matches: it returns the indices of lines matching
// query, ascending.
type Matcher func(query string, lines []string) []int

// Config carries everything a session needs. Queue and State are required;
// the zero values of the rest have working defaults.
type Config struct {
	Queue *event.Queue
	State *state.PagerState

	// Screen, when set, is an initialized tcell screen the session takes
	// ownership of. Its presence also skips the one-shot short-circuit
	// checks: a host that hands over a screen wants the interactive
	// path. Tests inject a SimulationScreen here.
	Screen tcell.Screen

	// Out receives the one-shot dump when the session never goes
	// interactive. Defaults to stdout.
	Out io.Writer

	Mode         Mode
	PollInterval time.Duration
	Matcher      Matcher

	// InputSuspended is the reader's suspension flag, shared with the
	// host so it can pause terminal input consumption externally.
	InputSuspended *atomic.Bool
}

type session struct {
	queue    *event.Queue
	mu       sync.Mutex
	ps       *state.PagerState
	screen   tcell.Screen
	renderer *draw.Renderer
	raw      chan tcell.Event

	mode      Mode
	poll      time.Duration
	matcher   Matcher
	stop      atomic.Bool
	suspended *atomic.Bool
}

// Run owns a whole pager session: it builds the initial state from queued
// events, applies the one-shot short-circuits, then starts the input
// reader and the reactor and blocks until exit or the first fatal error.
// The terminal is restored on every return path.
func Run(cfg Config) error {
	ps := cfg.State
	if ps == nil {
		ps = state.NewPagerState()
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}
	matcher := cfg.Matcher
	if matcher == nil {
		matcher = SubstringMatcher
	}

	buildInitialState(cfg.Queue, ps)

	if cfg.Mode == Static && cfg.Screen == nil {
		if done, err := staticShortCircuit(out, ps); done {
			return err
		}
	}

	screen := cfg.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrTerminalSetup, err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("%w: %v", ErrTerminalSetup, err)
		}
	}
	defer screen.Fini()
	screen.EnableMouse()

	w, h := screen.Size()
	ps.SetTermArea(w, h)

	suspended := cfg.InputSuspended
	if suspended == nil {
		suspended = new(atomic.Bool)
	}

	s := &session{
		queue:     cfg.Queue,
		ps:        ps,
		screen:    screen,
		renderer:  draw.NewRenderer(screen),
		raw:       make(chan tcell.Event, 16),
		mode:      cfg.Mode,
		poll:      poll,
		matcher:   matcher,
		suspended: suspended,
	}

	// Pump raw terminal events into the session. PollEvent returns nil
	// once the screen is finalized; the stop flag covers the case where
	// the pump is blocked on a full channel at that point.
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(s.raw)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case s.raw <- ev:
			case <-done:
				return
			}
		}
	}()

	var g errgroup.Group
	g.Go(s.readLoop)
	g.Go(s.reactorLoop)
	return g.Wait()
}

// buildInitialState synchronously drains every event already queued by the
// host, applying each exactly as the reactor would but without touching
// the terminal. Start-up heuristics then see a consistent state.
func buildInitialState(q *event.Queue, ps *state.PagerState) {
	for {
		ev, ok := q.TryRecv()
		if !ok {
			return
		}
		applyToState(ps, ev)
	}
}

// staticShortCircuit handles the one-shot render targets that never need a
// screen: non-terminal output, and content that fits on one screen when
// no-overflow behavior was requested.
func staticShortCircuit(out io.Writer, ps *state.PagerState) (bool, error) {
	f, isFile := out.(*os.File)
	if !isFile || !term.IsTerminal(int(f.Fd())) {
		return true, draw.WriteLines(out, ps)
	}

	if w, h, err := term.GetSize(int(f.Fd())); err == nil {
		ps.SetTermArea(w, h)
	}
	if ps.RunNoOverflow && len(ps.FormattedLines) <= ps.Rows {
		return true, draw.WriteLines(out, ps)
	}
	return false, nil
}

// SubstringMatcher is the default search matcher: case-sensitive substring
// containment per formatted line.
func SubstringMatcher(query string, lines []string) []int {
	if query == "" {
		return nil
	}
	var matches []int
	for i, line := range lines {
		if strings.Contains(line, query) {
			matches = append(matches, i)
		}
	}
	return matches
}
