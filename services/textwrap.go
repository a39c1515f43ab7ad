package services

import "strings"

// Deterministic text metrics shared by the layout engine and both renderers.
// Widths are estimated from an average glyph width rather than measured from
// font tables, so the screen preview and the PDF agree on wrap points and row
// heights by construction.

const (
	ptToMM = 25.4 / 72.0

	// avgGlyphEm approximates the average advance width of Helvetica glyphs
	// as a fraction of the font size.
	avgGlyphEm = 0.52

	// lineSpacing is the baseline-to-baseline distance as a multiple of the
	// font size.
	lineSpacing = 1.45
)

// charWidthMM returns the estimated width of one character at the given
// font size in points.
func charWidthMM(fontPt float64) float64 {
	return fontPt * avgGlyphEm * ptToMM
}

// LineHeightMM returns the height of one text line at the given font size.
func LineHeightMM(fontPt float64) float64 {
	return fontPt * lineSpacing * ptToMM
}

// WrapText greedily wraps text into lines that fit widthMM at the given font
// size. Words longer than a full line are hard-split. The result always has
// at least one entry so empty cells still occupy a line of height.
func WrapText(text string, widthMM, fontPt float64) []string {
	maxChars := int(widthMM / charWidthMM(fontPt))
	if maxChars < 1 {
		maxChars = 1
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			for len(word) > maxChars {
				if current != "" {
					lines = append(lines, current)
					current = ""
				}
				lines = append(lines, word[:maxChars])
				word = word[maxChars:]
			}
			switch {
			case current == "":
				current = word
			case len(current)+1+len(word) <= maxChars:
				current += " " + word
			default:
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		}
	}

	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// TextHeightMM returns the rendered height of text wrapped to widthMM.
func TextHeightMM(text string, widthMM, fontPt float64) float64 {
	return float64(len(WrapText(text, widthMM, fontPt))) * LineHeightMM(fontPt)
}
