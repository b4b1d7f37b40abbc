package console

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jsamuelsen/randquote/internal/domain"
)

// reservedColumns are taken by the enclosing quotation marks.
const reservedColumns = 2

// MinWrapWidth is the smallest usable wrap width.
const MinWrapWidth = reservedColumns + 1

// Options controls how a quote is rendered.
type Options struct {
	Language       domain.Language
	ASCIIQuotation bool
	NoColors       bool
	JSON           bool
	WrapWidth      int
}

// Rendered is the output of a render: either a JSON document or display lines.
type Rendered struct {
	// JSON holds the serialized quote when Options.JSON was set.
	JSON string

	// Lines holds the quote line (possibly spanning several terminal rows)
	// followed by an optional author line.
	Lines []string
}

// IsJSON reports whether the output is a JSON document.
func (r *Rendered) IsJSON() bool {
	return r.JSON != ""
}

// jsonQuote is the serialized form of a quote.
type jsonQuote struct {
	Text   string  `json:"text"`
	Author *string `json:"author"`
}

// Presenter turns quotes into console output.
type Presenter struct {
	quoteStyle  *color.Color
	authorStyle *color.Color
}

// NewPresenter creates a presenter with the default styles.
// Whether styles apply is decided by Options.NoColors alone, not by the
// global color.NoColor detection.
func NewPresenter() *Presenter {
	quoteStyle := color.New(color.FgHiBlue, color.Bold)
	quoteStyle.EnableColor()

	authorStyle := color.New(color.FgHiYellow)
	authorStyle.EnableColor()

	return &Presenter{
		quoteStyle:  quoteStyle,
		authorStyle: authorStyle,
	}
}

// Render formats quote according to opts.
func (p *Presenter) Render(quote *domain.Quote, opts Options) (*Rendered, error) {
	if quote == nil {
		return nil, domain.NewValidationError("quote", "is required")
	}

	text := strings.TrimSpace(quote.Text)
	author := strings.TrimSpace(quote.Author)

	if opts.JSON {
		out, err := marshalQuote(text, author)
		if err != nil {
			return nil, domain.NewSerializeError(err)
		}

		return &Rendered{JSON: out}, nil
	}

	if opts.WrapWidth < MinWrapWidth {
		return nil, domain.NewValidationErrorWithValue("wrap_width",
			fmt.Sprintf("must be at least %d", MinWrapWidth), opts.WrapWidth)
	}

	body := strings.Join(Wrap(text, opts.WrapWidth-reservedColumns), "\n")
	body = LocalizeEmbedded(body, opts.Language)
	marks := QuotationMarks(opts.Language, opts.ASCIIQuotation)

	lines := []string{marks.Left + p.style(p.quoteStyle, body, opts.NoColors) + marks.Right}
	if author != "" {
		lines = append(lines, p.style(p.authorStyle, author, opts.NoColors))
	}

	return &Rendered{Lines: lines}, nil
}

// Write prints rendered output, one newline after each line.
func (p *Presenter) Write(w io.Writer, r *Rendered) error {
	if r.IsJSON() {
		_, err := fmt.Fprintln(w, r.JSON)
		return err
	}

	for _, line := range r.Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func (p *Presenter) style(c *color.Color, s string, noColors bool) string {
	if noColors {
		return s
	}

	return c.Sprint(s)
}

func marshalQuote(text, author string) (string, error) {
	q := jsonQuote{Text: text}
	if author != "" {
		q.Author = &author
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(q); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
