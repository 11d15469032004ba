package text

import "strings"

// Line is one wrapped line segment and its measured width.
type Line struct {
	Text  string
	Width float64
}

// Wrap breaks s into lines no wider than maxWidth using greedy word wrap.
//
// Tokens are whitespace-delimited and re-joined with single spaces. A token
// wider than maxWidth on its own is emitted alone and left to overrun; it is
// never split. An empty or all-whitespace s yields no lines.
func Wrap(s string, face Face, size, maxWidth float64) []Line {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []Line
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if face.Width(size, candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, Line{Text: current, Width: face.Width(size, current)})
		current = word
	}
	lines = append(lines, Line{Text: current, Width: face.Width(size, current)})

	return lines
}
