package console

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/randquote/internal/domain"
)

func plain(lang domain.Language, width int) Options {
	return Options{Language: lang, NoColors: true, WrapWidth: width}
}

func TestRender_EndToEndEnglish(t *testing.T) {
	p := NewPresenter()
	q := &domain.Quote{Text: "Hello world this is a test", Author: "Alice"}

	got, err := p.Render(q, plain(domain.LanguageEnglish, 21))
	require.NoError(t, err)

	assert.Equal(t, []string{"“Hello world this is\na test”", "Alice"}, got.Lines)
	assert.False(t, got.IsJSON())
}

func TestRender_EndToEndJSON(t *testing.T) {
	p := NewPresenter()
	q := &domain.Quote{Text: "Hello world this is a test", Author: "Alice"}

	got, err := p.Render(q, Options{Language: domain.LanguageEnglish, JSON: true, WrapWidth: 20})
	require.NoError(t, err)

	assert.True(t, got.IsJSON())
	assert.Nil(t, got.Lines)
	assert.JSONEq(t, `{"text":"Hello world this is a test","author":"Alice"}`, got.JSON)
}

func TestRender_EndToEndRussian(t *testing.T) {
	p := NewPresenter()
	q := &domain.Quote{Text: "Он сказал «inner» и ушёл", Author: ""}

	got, err := p.Render(q, plain(domain.LanguageRussian, 80))
	require.NoError(t, err)

	require.Len(t, got.Lines, 1)
	assert.Equal(t, "«Он сказал „inner“ и ушёл»", got.Lines[0])
}

func TestRender_AuthorLine(t *testing.T) {
	tests := []struct {
		name   string
		author string
		lines  int
	}{
		{name: "absent", author: "", lines: 1},
		{name: "whitespace only", author: "  \t ", lines: 1},
		{name: "present", author: "Seneca", lines: 2},
		{name: "padded", author: "  Seneca ", lines: 2},
	}

	p := NewPresenter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Render(&domain.Quote{Text: "x", Author: tt.author}, plain(domain.LanguageEnglish, 80))
			require.NoError(t, err)
			require.Len(t, got.Lines, tt.lines)

			if tt.lines == 2 {
				assert.Equal(t, "Seneca", got.Lines[1])
			}
		})
	}
}

func TestRender_TrimsAndMarks(t *testing.T) {
	tests := []struct {
		name  string
		lang  domain.Language
		ascii bool
		text  string
		want  string
	}{
		{name: "en typographic", lang: domain.LanguageEnglish, text: "  hi  ", want: "“hi”"},
		{name: "en ascii", lang: domain.LanguageEnglish, ascii: true, text: "hi", want: `"hi"`},
		{name: "ru guillemets", lang: domain.LanguageRussian, text: "привет\n", want: "«привет»"},
		{name: "ru ascii", lang: domain.LanguageRussian, ascii: true, text: "привет", want: `"привет"`},
		{name: "en embedded localized under ascii", lang: domain.LanguageEnglish, ascii: true, text: `say "hi"`, want: `"say 'hi'"`},
		{name: "en embedded localized", lang: domain.LanguageEnglish, text: `say "hi"`, want: "“say 'hi'”"},
	}

	p := NewPresenter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := plain(tt.lang, 80)
			opts.ASCIIQuotation = tt.ascii

			got, err := p.Render(&domain.Quote{Text: tt.text}, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Lines[0])
		})
	}
}

func TestRender_Colors(t *testing.T) {
	p := NewPresenter()
	q := &domain.Quote{Text: "styled", Author: "Someone"}

	got, err := p.Render(q, Options{Language: domain.LanguageEnglish, WrapWidth: 80})
	require.NoError(t, err)
	require.Len(t, got.Lines, 2)

	assert.True(t, strings.HasPrefix(got.Lines[0], "“\x1b[94;1m"), "quote line: %q", got.Lines[0])
	assert.True(t, strings.HasSuffix(got.Lines[0], "”"))
	assert.Contains(t, got.Lines[0], "styled")
	assert.True(t, strings.HasPrefix(got.Lines[1], "\x1b[93m"), "author line: %q", got.Lines[1])
	assert.Contains(t, got.Lines[1], "Someone")

	uncolored, err := p.Render(q, plain(domain.LanguageEnglish, 80))
	require.NoError(t, err)
	assert.NotContains(t, uncolored.Lines[0], "\x1b[")
	assert.NotContains(t, uncolored.Lines[1], "\x1b[")
}

func TestRender_JSONNullAuthor(t *testing.T) {
	p := NewPresenter()

	got, err := p.Render(&domain.Quote{Text: " x ", Author: "  "}, Options{JSON: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"x","author":null}`, got.JSON)
}

func TestRender_JSONRoundTrip(t *testing.T) {
	quotes := []*domain.Quote{
		{Text: "plain", Author: "A"},
		{Text: `with "quotes" and \ backslash`, Author: ""},
		{Text: "<tag> & «guillemets»", Author: "Б. Автор"},
		{Text: "line one\nline two", Author: "x"},
	}

	p := NewPresenter()

	for _, q := range quotes {
		got, err := p.Render(q, Options{JSON: true, WrapWidth: 3})
		require.NoError(t, err)
		assert.NotContains(t, got.JSON, "\n")

		var decoded struct {
			Text   string  `json:"text"`
			Author *string `json:"author"`
		}
		require.NoError(t, json.Unmarshal([]byte(got.JSON), &decoded))

		assert.Equal(t, q.Text, decoded.Text)

		if q.Author == "" {
			assert.Nil(t, decoded.Author)
		} else {
			require.NotNil(t, decoded.Author)
			assert.Equal(t, q.Author, *decoded.Author)
		}
	}
}

func TestRender_WrapBound(t *testing.T) {
	p := NewPresenter()
	q := &domain.Quote{Text: "Whatever you are, be a good one. Be sure you put your feet in the right place, then stand firm."}

	for width := MinWrapWidth; width <= 40; width++ {
		got, err := p.Render(q, Options{Language: domain.LanguageEnglish, ASCIIQuotation: true, NoColors: true, WrapWidth: width})
		require.NoError(t, err)

		body := strings.TrimSuffix(strings.TrimPrefix(got.Lines[0], `"`), `"`)
		for _, line := range strings.Split(body, "\n") {
			if len(line) > width-2 {
				assert.NotContains(t, line, " ", "width %d line %q", width, line)
			}
		}
	}
}

func TestRender_Errors(t *testing.T) {
	p := NewPresenter()

	_, err := p.Render(nil, plain(domain.LanguageEnglish, 80))
	assert.True(t, domain.IsValidation(err))

	_, err = p.Render(&domain.Quote{Text: "x"}, plain(domain.LanguageEnglish, 2))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "wrap_width")

	_, err = p.Render(&domain.Quote{Text: "x"}, Options{JSON: true, WrapWidth: 0})
	assert.NoError(t, err, "wrap width is ignored for JSON output")
}

func TestWrite(t *testing.T) {
	p := NewPresenter()

	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf, &Rendered{Lines: []string{"“a\nb”", "Author"}}))
	assert.Equal(t, "“a\nb”\nAuthor\n", buf.String())

	buf.Reset()
	require.NoError(t, p.Write(&buf, &Rendered{JSON: `{"text":"a","author":null}`}))
	assert.Equal(t, "{\"text\":\"a\",\"author\":null}\n", buf.String())
}
