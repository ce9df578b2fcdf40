package core

import (
	"fmt"

	"github.com/kk-code-lab/streampager/internal/event"
	"github.com/kk-code-lab/streampager/internal/input"
	"github.com/kk-code-lab/streampager/internal/state"
)

// applyToState realizes a control-plane event as pager-state mutations.
// It touches no terminal state, which lets the initial-state builder reuse
// it verbatim. The return value reports an exit request.
func applyToState(ps *state.PagerState, ev event.Event) bool {
	switch ev := ev.(type) {
	case event.AppendData:
		ps.AppendText(ev.Text)
	case event.SetPrompt:
		ps.Prompt = ev.Text
	case event.SendMessage:
		ps.Message = ev.Text
	case event.SetLineNumberMode:
		ps.LineNumbers = ev.Mode
	case event.Quit:
		return true
	case event.UserInput:
		return applyInput(ps, ev.Input)
	}
	return false
}

// applyInput realizes a classified terminal event. Search is handled here
// only as a direction change; the session intercepts it earlier to run the
// interactive query prompt.
func applyInput(ps *state.PagerState, iev input.Event) bool {
	switch iev := iev.(type) {
	case input.UpdateUpperMark:
		ps.SetUpperMark(iev.Mark)
	case input.UpdateTermArea:
		ps.SetTermArea(iev.Cols, iev.Rows)
	case input.UpdateLineNumber:
		ps.LineNumbers = iev.Mode
	case input.RestorePrompt:
		ps.Message = ""
	case input.Search:
		ps.SearchMode = iev.Mode
	case input.MoveToNextMatch:
		moveMatch(ps, ps.NextMatch(iev.Count))
	case input.MoveToPrevMatch:
		moveMatch(ps, ps.PrevMatch(iev.Count))
	case input.Exit:
		return true
	}
	return false
}

func moveMatch(ps *state.PagerState, moved bool) {
	if len(ps.SearchMatches) == 0 {
		ps.Message = "no active search"
		return
	}
	if !moved {
		ps.Message = fmt.Sprintf("no more matches for %q", ps.SearchQuery)
	}
}
