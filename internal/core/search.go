package core

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/streampager/internal/state"
)

// promptQuery reads a search query inline at the prompt row, consuming
// raw terminal events directly while the reader loop is suspended. Enter
// accepts, Escape and Ctrl-C cancel. The caller still holds the state
// lock; that keeps the echoed query consistent with the row it overwrites.
func (s *session) promptQuery(mode state.SearchMode) (string, bool) {
	prefix := "/"
	if mode == state.SearchReverse {
		prefix = "?"
	}

	var query []rune
	for {
		s.ps.Message = prefix + string(query)
		s.renderer.WritePrompt(s.ps)

		ev := s.nextRawEvent()
		if ev == nil {
			return "", false
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return string(query), true
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", false
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(query) > 0 {
					query = query[:len(query)-1]
				}
			case tcell.KeyRune:
				query = append(query, ev.Rune())
			}
		case *tcell.EventResize:
			cols, rows := ev.Size()
			s.ps.SetTermArea(cols, rows)
			s.renderer.Draw(s.ps)
		}
	}
}

// nextRawEvent blocks for the next raw terminal event, giving up when the
// session stops or the raw channel closes.
func (s *session) nextRawEvent() tcell.Event {
	for {
		if s.stop.Load() {
			return nil
		}
		select {
		case ev, ok := <-s.raw:
			if !ok {
				return nil
			}
			return ev
		case <-time.After(s.poll):
		}
	}
}

func pluralMatches(n int, query string) string {
	if n == 1 {
		return fmt.Sprintf("1 match for %q", query)
	}
	return fmt.Sprintf("%d matches for %q", n, query)
}
