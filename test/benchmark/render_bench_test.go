package benchmark

import (
	"strings"
	"testing"

	"github.com/jsamuelsen/randquote/internal/adapters/clients/acl"
	"github.com/jsamuelsen/randquote/internal/adapters/console"
	"github.com/jsamuelsen/randquote/internal/domain"
)

var longQuote = &domain.Quote{
	Text:   strings.Repeat("The best way out is always through. ", 20),
	Author: "Robert Frost",
}

// BenchmarkRender measures the full non-JSON presentation path.
func BenchmarkRender(b *testing.B) {
	p := console.NewPresenter()
	opts := console.Options{Language: domain.LanguageEnglish, WrapWidth: 80}

	b.ReportAllocs()

	for b.Loop() {
		if _, err := p.Render(longQuote, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRenderJSON measures JSON serialization.
func BenchmarkRenderJSON(b *testing.B) {
	p := console.NewPresenter()
	opts := console.Options{JSON: true}

	b.ReportAllocs()

	for b.Loop() {
		if _, err := p.Render(longQuote, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkWrap measures word wrapping of mixed-width text.
func BenchmarkWrap(b *testing.B) {
	text := strings.Repeat("Тише едешь дальше будешь 七転び八起き ", 30)

	b.ReportAllocs()

	for b.Loop() {
		_ = console.Wrap(text, 60)
	}
}

// BenchmarkRepair measures escape repair on a typical Forismatic body.
func BenchmarkRepair(b *testing.B) {
	raw := `{"quoteText":"Don\'t watch the clock; do what it does. Keep going. ","quoteAuthor":"Sam Levenson","senderName":"","senderLink":"","quoteLink":"http://forismatic.com/en/abc/"}`

	b.ReportAllocs()

	for b.Loop() {
		_ = acl.Repair(raw)
	}
}
