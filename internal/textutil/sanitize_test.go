package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeLineLeavesSafeInput(t *testing.T) {
	input := "plain streamed line"
	if got := SanitizeLine(input); got != input {
		t.Fatalf("expected %q to remain untouched, got %q", input, got)
	}
}

func TestSanitizeLineReplacesControlSequences(t *testing.T) {
	input := "bad\x1b[31mline"
	got := SanitizeLine(input)
	if got != "bad?[31mline" {
		t.Fatalf("expected sanitized string \"bad?[31mline\", got %q", got)
	}
	if containsControl(got) {
		t.Fatalf("sanitized text should not contain control characters: %q", got)
	}
}

func TestSanitizeLinePreservesTabs(t *testing.T) {
	input := "col1\tcol2"
	if got := SanitizeLine(input); got != input {
		t.Fatalf("tabs should survive sanitization, got %q", got)
	}
}

func TestSanitizeLineReplacesFormattingRunes(t *testing.T) {
	input := "a" + string(rune(0x202E)) + "b" + string(rune(0x200B)) + "c"
	got := SanitizeLine(input)
	if containsRune(got, 0x202E) || containsRune(got, 0x200B) {
		t.Fatalf("sanitize left formatting runes in output: %q", got)
	}
	if !strings.Contains(got, "⟪RLO⟫") || !strings.Contains(got, "⟪ZWSP⟫") {
		t.Fatalf("expected formatting runes to be labeled, got %q", got)
	}
}

func containsControl(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}

func containsRune(s string, target rune) bool {
	for _, r := range s {
		if r == target {
			return true
		}
	}
	return false
}
