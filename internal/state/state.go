package state

import (
	"math"
	"strings"

	"github.com/kk-code-lab/streampager/internal/textutil"
)

// MaxMark is the largest scroll target a navigation key may request. Jumps
// to the end of content use it and rely on SetUpperMark clamping.
const MaxMark = math.MaxInt - 1

// LineNumberMode controls the line-number gutter. Enabled and Disabled are
// host-fixed overrides; only Yes and No respond to the user toggle.
type LineNumberMode int

const (
	// LineNumbersEnabled shows line numbers and ignores the user toggle.
	LineNumbersEnabled LineNumberMode = iota
	// LineNumbersYes shows line numbers; the user may turn them off.
	LineNumbersYes
	// LineNumbersNo hides line numbers; the user may turn them on.
	LineNumbersNo
	// LineNumbersDisabled hides line numbers and ignores the user toggle.
	LineNumbersDisabled
)

// Toggle flips Yes to No and back. Enabled and Disabled are returned
// unchanged.
func (m LineNumberMode) Toggle() LineNumberMode {
	switch m {
	case LineNumbersYes:
		return LineNumbersNo
	case LineNumbersNo:
		return LineNumbersYes
	default:
		return m
	}
}

// Visible reports whether the gutter is currently drawn.
func (m LineNumberMode) Visible() bool {
	return m == LineNumbersEnabled || m == LineNumbersYes
}

// SearchMode is the direction the current search runs in. It governs which
// way the next-match and previous-match keys resolve.
type SearchMode int

const (
	SearchForward SearchMode = iota
	SearchReverse
)

// PagerState is the single source of truth for what should be visible.
// It carries no lock of its own; the session guards all access with one
// mutex because several fields change together relative to a redraw
// decision.
type PagerState struct {
	// Lines is the cleaned, unwrapped line record. FormattedLines is
	// rebuilt from it when the terminal width changes.
	Lines []string
	// FormattedLines is the display-ready, wrapped line record. It only
	// grows during a session and every line ever shown is derivable from
	// it plus UpperMark.
	FormattedLines []string
	// UpperMark is the index into FormattedLines of the first visible
	// line.
	UpperMark int
	// Rows is the number of content rows; the prompt line sits on the
	// screen row just below them. Cols is the terminal width.
	Rows int
	Cols int

	LineNumbers LineNumberMode

	// Prompt is the persistent status line. Message, when non-empty,
	// temporarily takes over the prompt's screen row.
	Prompt  string
	Message string

	// RunNoOverflow allows the one-shot render path to exit early when
	// the content fits on a single screen.
	RunNoOverflow bool

	// PrefixNum accumulates digits typed before a motion command.
	PrefixNum int

	SearchMode SearchMode
	// SearchQuery and SearchMatches describe the active search:
	// the matches are indices into FormattedLines, ascending.
	SearchQuery   string
	SearchMatches []int
}

// NewPagerState returns a state with pre-session defaults. The real
// terminal dimensions replace Rows and Cols once the screen is up.
func NewPagerState() *PagerState {
	return &PagerState{
		Rows:        24,
		Cols:        80,
		LineNumbers: LineNumbersNo,
		Prompt:      "streampager",
	}
}

// SetUpperMark moves the window. When the content overflows the screen the
// mark is clamped to [0, lines-rows]; otherwise it is forced to 0 so a
// short buffer is always shown from the top.
func (ps *PagerState) SetUpperMark(mark int) {
	total := len(ps.FormattedLines)
	if total <= ps.Rows {
		ps.UpperMark = 0
		return
	}
	max := total - ps.Rows
	if mark > max {
		mark = max
	}
	if mark < 0 {
		mark = 0
	}
	ps.UpperMark = mark
}

// SetTermArea records a new terminal size, re-wraps the whole line record
// to the new width and re-clamps the window. The bottom row stays reserved
// for the prompt.
func (ps *PagerState) SetTermArea(cols, rows int) {
	ps.Cols = cols
	ps.Rows = rows - 1
	if ps.Rows < 1 {
		ps.Rows = 1
	}

	ps.FormattedLines = ps.FormattedLines[:0]
	for _, line := range ps.Lines {
		ps.FormattedLines = append(ps.FormattedLines, textutil.Wrap(line, ps.Cols)...)
	}
	ps.SetUpperMark(ps.UpperMark)
}

// AppendText cleans and wraps a chunk of streamed text, appends every
// resulting line to the state and returns the newly formatted display
// lines. A single trailing line break terminates the last line rather
// than opening an empty one. The state always records all of them,
// regardless of how many the caller manages to write to the terminal.
func (ps *PagerState) AppendText(text string) []string {
	text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
	logical := textutil.LogicalLines(text)
	ps.Lines = append(ps.Lines, logical...)

	var formatted []string
	for _, line := range logical {
		formatted = append(formatted, textutil.Wrap(line, ps.Cols)...)
	}
	ps.FormattedLines = append(ps.FormattedLines, formatted...)
	return formatted
}

// VisibleLineCount reports how many content lines are on screen right now.
func (ps *PagerState) VisibleLineCount() int {
	remaining := len(ps.FormattedLines) - ps.UpperMark
	if remaining < 0 {
		remaining = 0
	}
	if remaining > ps.Rows {
		remaining = ps.Rows
	}
	return remaining
}

// PrefixCount consumes the accumulated numeric prefix, defaulting to 1
// when none was typed.
func (ps *PagerState) PrefixCount() int {
	if ps.PrefixNum <= 0 {
		return 1
	}
	return ps.PrefixNum
}

// AccumulatePrefix folds another typed digit into the pending repeat
// count. The count saturates instead of overflowing on absurd input.
func (ps *PagerState) AccumulatePrefix(digit int) {
	if ps.PrefixNum > (math.MaxInt-digit)/10 {
		ps.PrefixNum = math.MaxInt
		return
	}
	ps.PrefixNum = ps.PrefixNum*10 + digit
}

// SetSearchMatches installs a fresh match list for the given query.
// Indices must be ascending positions in FormattedLines.
func (ps *PagerState) SetSearchMatches(query string, matches []int) {
	ps.SearchQuery = query
	ps.SearchMatches = matches
}

// NextMatch scrolls to the count-th match strictly below the current
// window top. It reports whether any movement happened.
func (ps *PagerState) NextMatch(count int) bool {
	if count < 1 {
		count = 1
	}
	seen := 0
	for _, m := range ps.SearchMatches {
		if m > ps.UpperMark {
			seen++
			if seen == count {
				ps.SetUpperMark(m)
				return true
			}
		}
	}
	return false
}

// PrevMatch scrolls to the count-th match strictly above the current
// window top. It reports whether any movement happened.
func (ps *PagerState) PrevMatch(count int) bool {
	if count < 1 {
		count = 1
	}
	seen := 0
	for i := len(ps.SearchMatches) - 1; i >= 0; i-- {
		if ps.SearchMatches[i] < ps.UpperMark {
			seen++
			if seen == count {
				ps.SetUpperMark(ps.SearchMatches[i])
				return true
			}
		}
	}
	return false
}
