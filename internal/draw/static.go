package draw

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kk-code-lab/streampager/internal/state"
)

// WriteLines dumps the entire formatted content to out in one pass. Used
// by the one-shot render path when the output is not an interactive
// terminal or the content fits on a single screen.
func WriteLines(out io.Writer, ps *state.PagerState) error {
	if !ps.LineNumbers.Visible() {
		for _, line := range ps.FormattedLines {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
		return nil
	}

	width := len(strconv.Itoa(len(ps.FormattedLines)))
	for i, line := range ps.FormattedLines {
		if _, err := fmt.Fprintf(out, "%*d. %s\n", width, i+1, line); err != nil {
			return err
		}
	}
	return nil
}
