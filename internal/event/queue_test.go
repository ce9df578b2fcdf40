package event

import (
	"errors"
	"testing"
	"time"
)

func TestQueuePreservesSendOrder(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 5; i++ {
		if err := q.Send(AppendData{Text: string(rune('a' + i))}); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}

	for i := 0; i < 5; i++ {
		ev, ok := q.TryRecv()
		if !ok {
			t.Fatalf("expected event %d", i)
		}
		ad, ok := ev.(AppendData)
		if !ok || ad.Text != string(rune('a'+i)) {
			t.Fatalf("event %d out of order: %#v", i, ev)
		}
	}

	if _, ok := q.TryRecv(); ok {
		t.Fatal("expected empty queue")
	}
}

func TestQueueSendAfterCloseReportsDisconnected(t *testing.T) {
	q := NewQueue()
	q.Close()
	q.Close() // idempotent

	if err := q.Send(Quit{}); !errors.Is(err, ErrDisconnected) {
		t.Fatalf("expected ErrDisconnected, got %v", err)
	}
}

func TestQueuePendingEventsReadableAfterClose(t *testing.T) {
	q := NewQueue()
	if err := q.Send(SetPrompt{Text: "p"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	q.Close()

	ev, ok := q.TryRecv()
	if !ok {
		t.Fatal("expected queued event to survive Close")
	}
	if _, ok := ev.(SetPrompt); !ok {
		t.Fatalf("unexpected event %#v", ev)
	}
}

func TestRecvTimeoutBounded(t *testing.T) {
	q := NewQueue()

	start := time.Now()
	if _, ok := q.RecvTimeout(10 * time.Millisecond); ok {
		t.Fatal("expected timeout on empty queue")
	}
	if time.Since(start) > time.Second {
		t.Fatal("RecvTimeout waited far longer than its bound")
	}

	if err := q.Send(Quit{}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, ok := q.RecvTimeout(10 * time.Millisecond); !ok {
		t.Fatal("expected queued event before the timeout")
	}
}

func TestRequiresRedraw(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"append has a targeted path", AppendData{Text: "x"}, false},
		{"prompt has a targeted path", SetPrompt{Text: "p"}, false},
		{"message has a targeted path", SendMessage{Text: "m"}, false},
		{"quit needs no paint", Quit{}, false},
		{"line numbers repaint", SetLineNumberMode{}, true},
		{"user input repaints", UserInput{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RequiresRedraw(tt.ev); got != tt.want {
				t.Fatalf("RequiresRedraw(%#v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}
