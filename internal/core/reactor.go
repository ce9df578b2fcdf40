package core

import (
	"github.com/kk-code-lab/streampager/internal/event"
	"github.com/kk-code-lab/streampager/internal/input"
	"github.com/kk-code-lab/streampager/internal/state"
	"github.com/kk-code-lab/streampager/internal/textutil"
)

// reactorLoop is the sole consumer of the control-plane queue and the
// only place pager state turns into terminal writes. On return it marks
// the session stopped and disconnects the queue so every producer winds
// down cleanly.
func (s *session) reactorLoop() error {
	defer func() {
		s.stop.Store(true)
		s.queue.Close()
	}()

	s.mu.Lock()
	s.renderer.Draw(s.ps)
	s.mu.Unlock()

	if s.mode == Static {
		return s.staticLoop()
	}
	return s.dynamicLoop()
}

func (s *session) dynamicLoop() error {
	for !s.stop.Load() {
		ev, ok := s.queue.RecvTimeout(s.poll)
		if !ok {
			continue
		}

		switch ev := ev.(type) {
		case event.AppendData:
			s.handleAppend(ev.Text)
		case event.SetPrompt:
			s.handlePromptText(ev.Text, false)
		case event.SendMessage:
			s.handlePromptText(ev.Text, true)
		default:
			s.handleGeneral(ev)
		}
	}
	return nil
}

// staticLoop is a terminal render of a single bounded view: only user
// input is honored, and every handled event triggers a full repaint.
func (s *session) staticLoop() error {
	for !s.stop.Load() {
		ev, ok := s.queue.RecvTimeout(s.poll)
		if !ok {
			continue
		}
		if ui, isInput := ev.(event.UserInput); isInput {
			s.handleGeneral(ui)
		}
	}
	return nil
}

// handleGeneral applies a state-affecting event under the lock and
// repaints when the event calls for it.
func (s *session) handleGeneral(ev event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ui, ok := ev.(event.UserInput); ok {
		if search, ok := ui.Input.(input.Search); ok {
			s.runSearch(search.Mode)
			s.renderer.Draw(s.ps)
			return
		}
	}

	if applyToState(s.ps, ev) {
		s.stop.Store(true)
		return
	}
	if event.RequiresRedraw(ev) {
		s.renderer.Draw(s.ps)
	}
}

// handlePromptText updates the status line and repaints only the prompt
// row, never the whole screen.
func (s *session) handlePromptText(text string, transient bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	formatted := textutil.Truncate(textutil.SanitizeLine(text), s.ps.Cols)
	if transient {
		s.ps.Message = formatted
	} else {
		s.ps.Prompt = formatted
	}
	s.renderer.WritePrompt(s.ps)
}

// handleAppend records all newly formatted lines and, while the viewport
// is not yet full, writes the portion that fits directly at the next
// unwritten rows. Once the screen is full an append cannot change the
// visible region, so no write happens until a scroll event forces a full
// redraw — which then shows the correct tail from the complete record.
func (s *session) handleAppend(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	linesBefore := len(s.ps.FormattedLines)
	formatted := s.ps.AppendText(text)

	if linesBefore < s.ps.Rows {
		available := s.ps.Rows - (linesBefore + 1)
		if available < 0 {
			available = 0
		}
		n := len(formatted)
		if n > available {
			n = available
		}
		s.renderer.AppendRows(s.ps, formatted[:n], linesBefore)
	}
}

// runSearch drives the interactive query prompt. The reader suspended
// itself before forwarding the Search event, so this is the only consumer
// of the raw event channel until it returns.
func (s *session) runSearch(mode state.SearchMode) {
	s.ps.SearchMode = mode
	query, accepted := s.promptQuery(mode)
	s.suspended.Store(false)

	if !accepted || query == "" {
		s.ps.Message = ""
		return
	}

	matches := s.matcher(query, s.ps.FormattedLines)
	s.ps.SetSearchMatches(query, matches)
	if len(matches) == 0 {
		s.ps.Message = "no matches for " + query
		return
	}

	if mode == state.SearchReverse {
		if !s.ps.PrevMatch(1) {
			s.ps.SetUpperMark(matches[len(matches)-1])
		}
	} else {
		if !s.ps.NextMatch(1) {
			s.ps.SetUpperMark(matches[0])
		}
	}
	s.ps.Message = pluralMatches(len(matches), query)
}
