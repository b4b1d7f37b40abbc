package console

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks text into lines of at most width display columns.
//
// Lines break at whitespace only. A word wider than width is placed on its
// own line unbroken. Newlines in the input are kept as paragraph breaks and
// runs of other whitespace collapse to a single space.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string

	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, width)...)
	}

	return lines
}

func wrapParagraph(paragraph string, width int) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		line  strings.Builder
		used  int
	)

	for _, word := range words {
		w := runewidth.StringWidth(word)

		if used > 0 && used+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			used = 0
		}

		if used > 0 {
			line.WriteByte(' ')
			used++
		}

		line.WriteString(word)
		used += w
	}

	return append(lines, line.String())
}
