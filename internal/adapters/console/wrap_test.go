package console

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "fits on one line",
			text:  "short text",
			width: 20,
			want:  []string{"short text"},
		},
		{
			name:  "greedy break",
			text:  "Hello world this is a test",
			width: 19,
			want:  []string{"Hello world this is", "a test"},
		},
		{
			name:  "narrower width",
			text:  "Hello world this is a test",
			width: 18,
			want:  []string{"Hello world this", "is a test"},
		},
		{
			name:  "exact fit",
			text:  "abc def",
			width: 7,
			want:  []string{"abc def"},
		},
		{
			name:  "long word unbroken",
			text:  "a supercalifragilistic word",
			width: 8,
			want:  []string{"a", "supercalifragilistic", "word"},
		},
		{
			name:  "collapses whitespace",
			text:  "a   b\tc",
			width: 10,
			want:  []string{"a b c"},
		},
		{
			name:  "keeps paragraph breaks",
			text:  "first line\nsecond",
			width: 40,
			want:  []string{"first line", "second"},
		},
		{
			name:  "wide runes count double",
			text:  "日本語 テキスト",
			width: 7,
			want:  []string{"日本語", "テキスト"},
		},
		{
			name:  "hyphen is not a break point",
			text:  "well-known fact",
			width: 6,
			want:  []string{"well-known", "fact"},
		},
		{
			name:  "empty",
			text:  "",
			width: 10,
			want:  []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width))
		})
	}
}

func TestWrap_LineBound(t *testing.T) {
	text := "The only way to do great work is to love what you do. If you haven't found it yet, keep looking. Don't settle. Antidisestablishmentarianism aside."

	for width := 1; width <= 60; width++ {
		for _, line := range Wrap(text, width) {
			if runewidth.StringWidth(line) <= width {
				continue
			}

			assert.NotContains(t, line, " ", "width %d: over-long line %q must be a single word", width, line)
		}
	}
}

func TestWrap_PreservesWords(t *testing.T) {
	text := "one two three four five six seven"
	got := strings.Join(Wrap(text, 9), " ")
	assert.Equal(t, text, got)
}
