// Package textutil provides unicode-aware text utilities for TUI rendering:
// column padding for chart labels and cards, truncation, and bar drawing.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// barBlocks are the eighth-width block characters, index = eighths filled.
var barBlocks = []string{"", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates a string to fit within maxWidth visual columns.
// If truncation is needed, it appends the unicode ellipsis character (…).
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available < 0 {
		return TruncateEllipsis
	}

	var b strings.Builder
	width := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if width+rw > available {
			break
		}
		b.WriteRune(r)
		width += rw
	}
	return b.String() + TruncateEllipsis
}

// PadRightVisual pads s with spaces to targetWidth columns, truncating when
// it is wider.
func PadRightVisual(s string, targetWidth int) string {
	w := VisualWidth(s)
	if w >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + strings.Repeat(" ", targetWidth-w)
}

// PadLeftVisual is PadRightVisual with the padding on the left.
func PadLeftVisual(s string, targetWidth int) string {
	w := VisualWidth(s)
	if w >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return strings.Repeat(" ", targetWidth-w) + s
}

// Bar draws a horizontal bar ratio*width columns long using full and
// partial blocks. ratio is clamped to [0, 1]. A positive ratio always
// yields at least a sliver.
func Bar(ratio float64, width int) string {
	if width <= 0 || ratio <= 0 {
		return ""
	}
	if ratio > 1 {
		ratio = 1
	}
	eighths := int(ratio*float64(width)*8 + 0.5)
	if eighths == 0 {
		eighths = 1
	}
	return strings.Repeat("█", eighths/8) + barBlocks[eighths%8]
}
