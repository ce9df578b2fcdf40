package draw

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kk-code-lab/streampager/internal/state"
	"github.com/kk-code-lab/streampager/internal/textutil"
)

// Renderer paints pager state onto a tcell screen. The full redraw and the
// two targeted paths (prompt row, incremental append) are the only ways
// pixels change during a session.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw clears and repaints the visible region plus the prompt row.
func (r *Renderer) Draw(ps *state.PagerState) {
	r.screen.Clear()

	visible := ps.VisibleLineCount()
	for i := 0; i < visible; i++ {
		r.contentRow(ps, ps.UpperMark+i, i)
	}
	r.promptRow(ps)

	r.screen.Show()
}

// WritePrompt repaints only the prompt row. Used for SetPrompt and
// SendMessage so a status update does not force a full repaint.
func (r *Renderer) WritePrompt(ps *state.PagerState) {
	r.promptRow(ps)
	r.screen.Show()
}

// AppendRows writes freshly appended display lines at the next unwritten
// screen rows. Valid only while the viewport is not yet full, so the line
// index equals the screen row.
func (r *Renderer) AppendRows(ps *state.PagerState, lines []string, startRow int) {
	for i, line := range lines {
		r.lineAt(ps, startRow+i, startRow+i, line)
	}
	r.screen.Show()
}

func (r *Renderer) contentRow(ps *state.PagerState, lineIdx, row int) {
	r.lineAt(ps, lineIdx, row, ps.FormattedLines[lineIdx])
}

func (r *Renderer) lineAt(ps *state.PagerState, lineIdx, row int, text string) {
	x := 0
	if ps.LineNumbers.Visible() {
		gutter := gutterWidth(ps)
		number := fmt.Sprintf("%*d. ", gutter-2, lineIdx+1)
		x = r.text(0, row, ps.Cols, number, tcell.StyleDefault.Dim(true))
	}
	r.text(x, row, ps.Cols-x, text, tcell.StyleDefault)
}

// promptRow draws the persistent prompt, or the transient message when one
// is up, reversed across the bottom row. A position indicator goes on the
// right edge when it fits.
func (r *Renderer) promptRow(ps *state.PagerState) {
	style := tcell.StyleDefault.Reverse(true)
	y := ps.Rows

	for x := 0; x < ps.Cols; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	text := ps.Prompt
	if ps.Message != "" {
		text = ps.Message
	}
	endX := r.text(0, y, ps.Cols, textutil.Truncate(text, ps.Cols), style)

	if ps.Message == "" {
		pos := position(ps)
		posWidth := textutil.DisplayWidth(pos)
		if startX := ps.Cols - posWidth; startX > endX {
			r.text(startX, y, posWidth, pos, style)
		}
	}
}

func position(ps *state.PagerState) string {
	total := len(ps.FormattedLines)
	if total == 0 {
		return ""
	}
	start := ps.UpperMark + 1
	end := ps.UpperMark + ps.VisibleLineCount()
	return fmt.Sprintf("%d-%d/%d", start, end, total)
}

// text draws a single line of text at (startX, y), truncating at maxWidth
// columns, and returns the column after the last cell written. Zero-width
// runes attach to the preceding cell as combining characters.
func (r *Renderer) text(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		if x-startX >= maxWidth {
			break
		}

		mainc := runes[i]
		i++

		var combc []rune
		for i < len(runes) && runewidth.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		r.screen.SetContent(x, y, mainc, combc, style)

		w := runewidth.RuneWidth(mainc)
		if w < 1 {
			w = 1
		}
		x += w
	}

	return x
}

func gutterWidth(ps *state.PagerState) int {
	maxNumber := ps.UpperMark + ps.Rows
	if total := len(ps.FormattedLines); maxNumber > total {
		maxNumber = total
	}
	if maxNumber < 1 {
		maxNumber = 1
	}
	return len(strconv.Itoa(maxNumber)) + 2
}
