package format

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ansiRegex matches ANSI SGR escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripAnsi removes ANSI escape sequences from a string.
func StripAnsi(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// DisplayWidth returns the visible width of a string in terminal columns,
// accounting for wide characters and ignoring ANSI escape sequences.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(StripAnsi(s))
}

// TruncateToWidth truncates a string to fit within maxWidth display
// columns, appending "..." when truncation occurs. Styled input is
// stripped of escape sequences before cutting so the result never ends
// mid-sequence. Returns the truncated string and its visible width.
func TruncateToWidth(s string, maxWidth int) (string, int) {
	width := DisplayWidth(s)
	if width <= maxWidth {
		return s, width
	}

	target := maxWidth - 3
	if target < 0 {
		target = 0
	}

	plain := StripAnsi(s)
	var b strings.Builder
	cut := 0
	for _, r := range plain {
		rw := runewidth.RuneWidth(r)
		if cut+rw > target {
			break
		}
		b.WriteRune(r)
		cut += rw
	}
	b.WriteString("...")
	return b.String(), cut + 3
}

// PadRight pads a string with spaces to the target visible width. The
// caller supplies the current visible width because the string may carry
// escape sequences.
func PadRight(s string, visibleWidth, targetWidth int) string {
	if visibleWidth >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-visibleWidth)
}
