package input

import "github.com/kk-code-lab/streampager/internal/state"

// Event is the semantic result of classifying one raw terminal event.
// Events are ephemeral: the reactor realizes one as a state mutation and
// drops it.
type Event interface{}

// UpdateUpperMark scrolls the window so Mark becomes the first visible
// line. The mark is a request; the state clamps it on apply.
type UpdateUpperMark struct {
	Mark int
}

// UpdateTermArea records new raw terminal dimensions.
type UpdateTermArea struct {
	Cols int
	Rows int
}

// UpdateLineNumber switches the line-number gutter mode.
type UpdateLineNumber struct {
	Mode state.LineNumberMode
}

// Exit requests session shutdown.
type Exit struct{}

// Search opens a search in the given direction.
type Search struct {
	Mode state.SearchMode
}

// MoveToNextMatch jumps Count matches forward in the formatted lines.
type MoveToNextMatch struct {
	Count int
}

// MoveToPrevMatch jumps Count matches backward in the formatted lines.
type MoveToPrevMatch struct {
	Count int
}

// RestorePrompt clears a transient message so the persistent prompt shows
// again.
type RestorePrompt struct{}

// Number is a digit of a pending repeat count. The reader accumulates
// these into PagerState.PrefixNum instead of forwarding them.
type Number struct {
	Digit int
}
