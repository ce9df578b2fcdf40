package core

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/streampager/internal/event"
	"github.com/kk-code-lab/streampager/internal/input"
)

// readLoop consumes raw terminal events, classifies them against the
// shared state and forwards the results on the control-plane queue. It
// never blocks longer than the poll interval, so the stop flag and the
// suspension flag are both observed at bounded latency. While suspended
// it idles without consuming or dropping anything: pending events stay
// queued in the raw channel.
func (s *session) readLoop() error {
	timer := time.NewTimer(s.poll)
	defer timer.Stop()

	for {
		if s.stop.Load() {
			return nil
		}
		if s.suspended.Load() {
			time.Sleep(s.poll)
			continue
		}

		resetTimer(timer, s.poll)
		select {
		case ev, ok := <-s.raw:
			if !ok {
				return nil
			}
			if err := s.classifyAndForward(ev); err != nil {
				if errors.Is(err, event.ErrDisconnected) {
					return nil
				}
				return err
			}
		case <-timer.C:
		}
	}
}

func (s *session) classifyAndForward(ev tcell.Event) error {
	s.mu.Lock()
	iev := input.Classify(ev, s.ps)

	if n, ok := iev.(input.Number); ok {
		// Digits accumulate into the pending repeat count and are
		// not forwarded.
		s.ps.AccumulatePrefix(n.Digit)
		s.mu.Unlock()
		return nil
	}

	s.ps.PrefixNum = 0
	if iev == nil {
		s.mu.Unlock()
		return nil
	}
	if _, ok := iev.(input.Search); ok {
		// Suspend before forwarding so the query prompt and this
		// loop never race over the same input device.
		s.suspended.Store(true)
	}
	s.mu.Unlock()

	return s.queue.Send(event.UserInput{Input: iev})
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
