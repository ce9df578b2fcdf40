package event

import (
	"github.com/kk-code-lab/streampager/internal/input"
	"github.com/kk-code-lab/streampager/internal/state"
)

// Event is a control-plane message. Host-originated events carry data or
// configuration; UserInput wraps a classified terminal event. An event is
// moved into the queue by its producer and consumed exactly once by the
// reactor.
type Event interface{}

// AppendData streams more text into the pager.
type AppendData struct {
	Text string
}

// SetPrompt replaces the persistent status line.
type SetPrompt struct {
	Text string
}

// SendMessage shows a transient message in the prompt's screen row.
type SendMessage struct {
	Text string
}

// SetLineNumberMode switches the line-number gutter mode.
type SetLineNumberMode struct {
	Mode state.LineNumberMode
}

// Quit asks the session to shut down cleanly.
type Quit struct{}

// UserInput wraps a classified terminal event from the input reader.
type UserInput struct {
	Input input.Event
}

// RequiresRedraw reports whether handling ev must be followed by a full
// repaint. Appends and prompt updates have cheaper targeted paths; every
// other state-affecting event repaints the screen.
func RequiresRedraw(ev Event) bool {
	switch ev.(type) {
	case AppendData, SetPrompt, SendMessage, Quit:
		return false
	default:
		return true
	}
}
