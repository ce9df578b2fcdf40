package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

const tabWidth = 4

// LogicalLines splits a chunk of streamed text into cleaned logical lines:
// NFC-normalized, control characters sanitized and tabs expanded. Both "\n"
// and "\r\n" separators are accepted. No wrapping is applied.
func LogicalLines(text string) []string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ExpandTabs(SanitizeLine(line), tabWidth)
	}
	return out
}

// FormatLines turns a chunk of streamed text into display-ready lines: the
// logical lines of the chunk, each hard-wrapped to width columns. Appending
// the result to an existing line record never drops content.
func FormatLines(text string, width int) []string {
	var out []string
	for _, line := range LogicalLines(text) {
		out = append(out, Wrap(line, width)...)
	}
	return out
}

// Wrap hard-wraps a single line to the given display width. A non-positive
// width disables wrapping. The empty line wraps to itself so blank lines
// survive formatting.
func Wrap(line string, width int) []string {
	if width <= 0 || DisplayWidth(line) <= width {
		return []string{line}
	}

	var out []string
	var b strings.Builder
	current := 0
	for _, ru := range line {
		w := runeDisplayWidth(ru)
		if current+w > width && b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
			current = 0
		}
		b.WriteRune(ru)
		current += w
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}

// ExpandTabs replaces tabs with spaces up to the next tab stop, counting
// display columns rather than runes.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var b strings.Builder
	column := 0
	for _, ru := range text {
		if ru == '\t' {
			spaces := tabWidth - (column % tabWidth)
			for i := 0; i < spaces; i++ {
				b.WriteByte(' ')
			}
			column += spaces
			continue
		}
		b.WriteRune(ru)
		column += runeDisplayWidth(ru)
	}
	return b.String()
}

// DisplayWidth reports the number of terminal columns text occupies.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += runeDisplayWidth(ru)
	}
	return width
}

// Truncate shortens text to at most width columns, appending an ellipsis
// when anything was cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}

	const ellipsis = "…"
	ellipsisWidth := runeDisplayWidth([]rune(ellipsis)[0])
	if width <= ellipsisWidth {
		return ellipsis
	}

	target := width - ellipsisWidth
	var b strings.Builder
	current := 0
	for _, ru := range text {
		w := runeDisplayWidth(ru)
		if current+w > target {
			break
		}
		b.WriteRune(ru)
		current += w
	}
	b.WriteString(ellipsis)
	return b.String()
}

func runeDisplayWidth(ru rune) int {
	w := runewidth.RuneWidth(ru)
	if w < 1 {
		w = 1
	}
	return w
}
