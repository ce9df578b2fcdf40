package input

import (
	"math"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/streampager/internal/state"
)

// wheelStep is how many lines one mouse-wheel notch scrolls.
const wheelStep = 5

// Classify maps a raw terminal event and the current pager state to a
// semantic input event. It is a pure function: no state is mutated here.
// A nil result means the event is not bound and must not be forwarded.
func Classify(ev tcell.Event, ps *state.PagerState) Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return classifyKey(ev, ps)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return UpdateTermArea{Cols: cols, Rows: rows}
	case *tcell.EventMouse:
		return classifyMouse(ev, ps)
	default:
		return nil
	}
}

func classifyKey(ev *tcell.EventKey, ps *state.PagerState) Event {
	switch ev.Key() {
	case tcell.KeyDown:
		return UpdateUpperMark{Mark: satAdd(ps.UpperMark, 1)}
	case tcell.KeyUp:
		return UpdateUpperMark{Mark: satSub(ps.UpperMark, 1)}
	case tcell.KeyPgUp:
		return UpdateUpperMark{Mark: satSub(ps.UpperMark, ps.Rows-1)}
	case tcell.KeyPgDn:
		return UpdateUpperMark{Mark: satAdd(ps.UpperMark, ps.Rows-1)}
	case tcell.KeyCtrlD:
		return UpdateUpperMark{Mark: satAdd(ps.UpperMark, ps.Rows/2)}
	case tcell.KeyCtrlU:
		return UpdateUpperMark{Mark: satSub(ps.UpperMark, ps.Rows/2)}
	case tcell.KeyEnter:
		// Enter acknowledges a transient message when one is up;
		// otherwise it scrolls one line like Down.
		if ps.Message != "" {
			return RestorePrompt{}
		}
		return UpdateUpperMark{Mark: satAdd(ps.UpperMark, 1)}
	case tcell.KeyCtrlL:
		return UpdateLineNumber{Mode: ps.LineNumbers.Toggle()}
	case tcell.KeyCtrlC:
		return Exit{}
	case tcell.KeyRune:
		return classifyRune(ev, ps)
	default:
		return nil
	}
}

func classifyRune(ev *tcell.EventKey, ps *state.PagerState) Event {
	r := ev.Rune()
	if ev.Modifiers()&tcell.ModShift != 0 {
		r = unicode.ToUpper(r)
	}

	switch r {
	case 'j':
		return UpdateUpperMark{Mark: satAdd(ps.UpperMark, 1)}
	case 'k':
		return UpdateUpperMark{Mark: satSub(ps.UpperMark, 1)}
	case ' ':
		return UpdateUpperMark{Mark: satAdd(ps.UpperMark, ps.Rows-1)}
	case 'g':
		return UpdateUpperMark{Mark: 0}
	case 'G':
		return UpdateUpperMark{Mark: state.MaxMark}
	case 'q':
		return Exit{}
	case '/':
		return Search{Mode: state.SearchForward}
	case '?':
		return Search{Mode: state.SearchReverse}
	case 'n':
		if ps.SearchMode == state.SearchReverse {
			return MoveToPrevMatch{Count: ps.PrefixCount()}
		}
		return MoveToNextMatch{Count: ps.PrefixCount()}
	case 'p':
		if ps.SearchMode == state.SearchReverse {
			return MoveToNextMatch{Count: ps.PrefixCount()}
		}
		return MoveToPrevMatch{Count: ps.PrefixCount()}
	}

	if r >= '0' && r <= '9' {
		return Number{Digit: int(r - '0')}
	}
	return nil
}

func classifyMouse(ev *tcell.EventMouse, ps *state.PagerState) Event {
	switch {
	case ev.Buttons()&tcell.WheelDown != 0:
		return UpdateUpperMark{Mark: satAdd(ps.UpperMark, wheelStep)}
	case ev.Buttons()&tcell.WheelUp != 0:
		return UpdateUpperMark{Mark: satSub(ps.UpperMark, wheelStep)}
	default:
		return nil
	}
}

func satAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func satSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
