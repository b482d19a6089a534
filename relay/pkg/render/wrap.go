package render

import "strings"

// measureFunc returns the rendered width of s at the current font size.
type measureFunc func(s string) float64

// wrapTitle packs words while the line stays strictly narrower than width.
func wrapTitle(title string, width float64, measure measureFunc) []string {
	return packWords(strings.Fields(title), width, measure, func(w, max float64) bool { return w < max })
}

// wrapParagraphs splits text on newlines and wraps each paragraph
// independently, allowing a line to reach exactly width.
func wrapParagraphs(text string, width float64, measure measureFunc) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, packWords(strings.Fields(para), width, measure, func(w, max float64) bool { return w <= max })...)
	}
	return lines
}

// packWords greedily fills lines. A word wider than the whole line gets a
// line to itself rather than being split.
func packWords(words []string, width float64, measure measureFunc, fits func(w, max float64) bool) []string {
	var (
		lines []string
		line  string
	)
	for _, word := range words {
		// Trailing space is measured too, so a line never ends flush
		// against the margin.
		if line == "" || fits(measure(line+word+" "), width) {
			line += word + " "
			continue
		}
		lines = append(lines, strings.TrimSpace(line))
		line = word + " "
	}
	if line != "" {
		lines = append(lines, strings.TrimSpace(line))
	}
	return lines
}
