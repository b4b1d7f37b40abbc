// Package domain contains core business entities and rules.
package domain

import "strings"

// Quote represents a quotation with its author.
// This is a domain entity - it has no knowledge of external systems.
//
// Adapters fill Quote straight from the provider payload: text and author are
// neither trimmed nor localized here, that happens once at presentation time.
type Quote struct {
	// Text is the text of the quote.
	Text string

	// Author is who said or wrote the quote. Empty means unknown.
	Author string
}

// HasAuthor reports whether the quote carries a non-blank author.
func (q *Quote) HasAuthor() bool {
	return strings.TrimSpace(q.Author) != ""
}

// Language is a quote language supported by the providers.
type Language string

const (
	// LanguageEnglish selects English quotes.
	LanguageEnglish Language = "en"

	// LanguageRussian selects Russian quotes.
	LanguageRussian Language = "ru"
)

// ParseLanguage normalizes user input to a Language.
// Anything starting with "en" (case-insensitive) is English, everything else Russian.
func ParseLanguage(s string) Language {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "en") {
		return LanguageEnglish
	}

	return LanguageRussian
}

// String implements fmt.Stringer.
func (l Language) String() string {
	return string(l)
}
