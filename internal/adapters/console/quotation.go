package console

import (
	"strings"

	"github.com/jsamuelsen/randquote/internal/domain"
)

// Marks is a pair of enclosing quotation marks.
type Marks struct {
	Left  string
	Right string
}

var (
	// StraightQuotes are plain ASCII double quotes.
	StraightQuotes = Marks{Left: `"`, Right: `"`}
	// CurlyQuotes are English typographic quotes.
	CurlyQuotes = Marks{Left: "“", Right: "”"}
	// Guillemets are Russian angle quotes.
	Guillemets = Marks{Left: "«", Right: "»"}
	// GermanQuotes replace guillemets nested inside Russian text.
	GermanQuotes = Marks{Left: "„", Right: "“"}
)

// QuotationMarks selects the enclosing marks for a language.
func QuotationMarks(lang domain.Language, ascii bool) Marks {
	switch {
	case ascii:
		return StraightQuotes
	case lang == domain.LanguageRussian:
		return Guillemets
	default:
		return CurlyQuotes
	}
}

var (
	englishEmbedded = strings.NewReplacer(`"`, `'`)
	russianEmbedded = strings.NewReplacer(
		Guillemets.Left, GermanQuotes.Left,
		Guillemets.Right, GermanQuotes.Right,
	)
)

// LocalizeEmbedded rewrites quotation marks inside the quote body so they
// stay distinct from the enclosing pair.
func LocalizeEmbedded(text string, lang domain.Language) string {
	if lang == domain.LanguageRussian {
		return russianEmbedded.Replace(text)
	}

	return englishEmbedded.Replace(text)
}
