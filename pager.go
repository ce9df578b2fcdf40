package streampager

import (
	"sync/atomic"

	"github.com/kk-code-lab/streampager/internal/core"
	"github.com/kk-code-lab/streampager/internal/event"
	"github.com/kk-code-lab/streampager/internal/state"
)

// ErrDisconnected reports that the pager session is gone. Producers treat
// it as a clean stop signal: the user quit, the host should too.
var ErrDisconnected = event.ErrDisconnected

// ErrTerminalSetup marks failures to bring the terminal up before the
// session starts, as opposed to I/O failures during it.
var ErrTerminalSetup = core.ErrTerminalSetup

// LineNumberMode controls the line-number gutter. Enabled and Disabled
// are fixed host overrides; Yes and No respond to the Ctrl-L toggle.
type LineNumberMode int

const (
	LineNumbersEnabled LineNumberMode = iota
	LineNumbersYes
	LineNumbersNo
	LineNumbersDisabled
)

// Pager is the host's handle on a pager session. Its feed methods may be
// called before Run to pre-populate content and from any goroutine while
// Run is blocked; they fail with ErrDisconnected once the session ends.
type Pager struct {
	queue     *event.Queue
	suspended *atomic.Bool
	opts      options
}

// New creates a pager. Nothing touches the terminal until Run.
func New(opts ...Option) *Pager {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pager{
		queue:     event.NewQueue(),
		suspended: new(atomic.Bool),
		opts:      o,
	}
}

// AppendText streams more text to the pager. Line breaks split it into
// display lines; text without a trailing break still forms a full line.
func (p *Pager) AppendText(text string) error {
	return p.queue.Send(event.AppendData{Text: text})
}

// SetPrompt replaces the persistent status line.
func (p *Pager) SetPrompt(text string) error {
	return p.queue.Send(event.SetPrompt{Text: text})
}

// SendMessage shows a transient message in the prompt's slot. The user
// dismisses it with Enter.
func (p *Pager) SendMessage(text string) error {
	return p.queue.Send(event.SendMessage{Text: text})
}

// SetLineNumberMode switches the line-number gutter at runtime.
func (p *Pager) SetLineNumberMode(mode LineNumberMode) error {
	return p.queue.Send(event.SetLineNumberMode{Mode: state.LineNumberMode(mode)})
}

// Quit asks the session to shut down as if the user had pressed q.
func (p *Pager) Quit() error {
	return p.queue.Send(event.Quit{})
}

// SuspendInput pauses the session's consumption of terminal input, for
// hosts that need the input device to themselves for a moment. Pending
// events are retained, not dropped.
func (p *Pager) SuspendInput() { p.suspended.Store(true) }

// ResumeInput undoes SuspendInput.
func (p *Pager) ResumeInput() { p.suspended.Store(false) }

// Run takes ownership of the terminal and blocks until the user exits,
// the host calls Quit, or a fatal error occurs. The terminal is restored
// on every return path. Run must be called at most once per Pager.
func (p *Pager) Run() error {
	ps := state.NewPagerState()
	ps.Prompt = p.opts.prompt
	ps.LineNumbers = state.LineNumberMode(p.opts.lineNumbers)
	ps.RunNoOverflow = p.opts.runNoOverflow

	mode := core.Dynamic
	if p.opts.static {
		mode = core.Static
	}

	return core.Run(core.Config{
		Queue:          p.queue,
		State:          ps,
		Screen:         p.opts.screen,
		Out:            p.opts.out,
		Mode:           mode,
		PollInterval:   p.opts.pollInterval,
		Matcher:        p.opts.matcher,
		InputSuspended: p.suspended,
	})
}
