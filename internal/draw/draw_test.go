package draw

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/streampager/internal/state"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(scr.Fini)
	scr.SetSize(w, h)
	return scr
}

func rowText(t *testing.T, scr tcell.SimulationScreen, y int) string {
	t.Helper()
	cells, w, _ := scr.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		cell := cells[y*w+x]
		if len(cell.Runes) > 0 {
			b.WriteRune(cell.Runes[0])
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func pagerStateFor(scr tcell.SimulationScreen) *state.PagerState {
	ps := state.NewPagerState()
	w, h := scr.Size()
	ps.Cols = w
	ps.Rows = h - 1
	return ps
}

func TestDrawPaintsVisibleRegionAndPrompt(t *testing.T) {
	scr := newSimScreen(t, 20, 6)
	ps := pagerStateFor(scr)
	ps.LineNumbers = state.LineNumbersDisabled
	ps.Prompt = "demo"
	ps.AppendText("alpha\nbeta\ngamma")

	NewRenderer(scr).Draw(ps)

	if got := rowText(t, scr, 0); got != "alpha" {
		t.Fatalf("row 0 = %q, want alpha", got)
	}
	if got := rowText(t, scr, 2); got != "gamma" {
		t.Fatalf("row 2 = %q, want gamma", got)
	}
	// Prompt row carries the prompt text and the position indicator.
	prompt := rowText(t, scr, 5)
	if !strings.HasPrefix(prompt, "demo") {
		t.Fatalf("prompt row = %q, want demo prefix", prompt)
	}
	if !strings.HasSuffix(prompt, "1-3/3") {
		t.Fatalf("prompt row = %q, want 1-3/3 suffix", prompt)
	}
}

func TestDrawRespectsUpperMark(t *testing.T) {
	scr := newSimScreen(t, 20, 4)
	ps := pagerStateFor(scr)
	ps.LineNumbers = state.LineNumbersDisabled
	ps.AppendText("l0\nl1\nl2\nl3\nl4\nl5")
	ps.SetUpperMark(2)

	NewRenderer(scr).Draw(ps)

	if got := rowText(t, scr, 0); got != "l2" {
		t.Fatalf("row 0 = %q, want l2", got)
	}
	if got := rowText(t, scr, 2); got != "l4" {
		t.Fatalf("row 2 = %q, want l4", got)
	}
}

func TestDrawLineNumberGutter(t *testing.T) {
	scr := newSimScreen(t, 20, 5)
	ps := pagerStateFor(scr)
	ps.LineNumbers = state.LineNumbersEnabled
	ps.AppendText("first\nsecond")

	NewRenderer(scr).Draw(ps)

	if got := rowText(t, scr, 0); got != "1. first" {
		t.Fatalf("row 0 = %q, want \"1. first\"", got)
	}
	if got := rowText(t, scr, 1); got != "2. second" {
		t.Fatalf("row 1 = %q, want \"2. second\"", got)
	}
}

func TestWritePromptShowsMessageOverPrompt(t *testing.T) {
	scr := newSimScreen(t, 20, 5)
	ps := pagerStateFor(scr)
	ps.Prompt = "persistent"
	ps.Message = "transient note"

	r := NewRenderer(scr)
	r.Draw(ps)

	if got := rowText(t, scr, 4); got != "transient note" {
		t.Fatalf("prompt row = %q, want message text", got)
	}

	ps.Message = ""
	r.WritePrompt(ps)
	if got := rowText(t, scr, 4); !strings.HasPrefix(got, "persistent") {
		t.Fatalf("prompt row = %q, want persistent prompt back", got)
	}
}

func TestAppendRowsWritesAtGivenRows(t *testing.T) {
	scr := newSimScreen(t, 20, 6)
	ps := pagerStateFor(scr)
	ps.LineNumbers = state.LineNumbersDisabled
	ps.AppendText("one\ntwo")

	r := NewRenderer(scr)
	r.Draw(ps)

	extra := ps.AppendText("three")
	r.AppendRows(ps, extra, 2)

	if got := rowText(t, scr, 2); got != "three" {
		t.Fatalf("row 2 = %q, want three", got)
	}
	// Earlier rows untouched by the incremental path.
	if got := rowText(t, scr, 0); got != "one" {
		t.Fatalf("row 0 = %q, want one", got)
	}
}

func TestWriteLinesStaticDump(t *testing.T) {
	ps := state.NewPagerState()
	ps.LineNumbers = state.LineNumbersEnabled
	ps.AppendText("aa\nbb")

	var b strings.Builder
	if err := WriteLines(&b, ps); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	want := "1. aa\n2. bb\n"
	if b.String() != want {
		t.Fatalf("static dump = %q, want %q", b.String(), want)
	}

	ps.LineNumbers = state.LineNumbersNo
	b.Reset()
	if err := WriteLines(&b, ps); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	if b.String() != "aa\nbb\n" {
		t.Fatalf("static dump = %q, want plain lines", b.String())
	}
}
