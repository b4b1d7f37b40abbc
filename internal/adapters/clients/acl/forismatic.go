package acl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"unicode"

	"github.com/jsamuelsen/randquote/internal/adapters/clients"
	"github.com/jsamuelsen/randquote/internal/domain"
	"github.com/jsamuelsen/randquote/internal/platform/logging"
)

// ForismaticName is the provider name used for selection and errors.
const ForismaticName = "forismatic"

// ForismaticClient fetches quotes from the Forismatic API.
// It implements ports.QuoteProvider and ports.HealthChecker.
type ForismaticClient struct {
	BaseAdapter
}

// NewForismaticClient creates a Forismatic adapter. The client's BaseURL is
// the API root; query parameters are added per request.
func NewForismaticClient(client *clients.Client, logger *slog.Logger) *ForismaticClient {
	return &ForismaticClient{
		BaseAdapter: NewBaseAdapter(client, ForismaticName, logger),
	}
}

// forismaticResponse is the external DTO from the Forismatic API.
type forismaticResponse struct {
	QuoteText   *string `json:"quoteText"`
	QuoteAuthor *string `json:"quoteAuthor"`
}

// FetchQuote requests one random quote in the given language.
func (c *ForismaticClient) FetchQuote(ctx context.Context, lang domain.Language) (*domain.Quote, error) {
	query := url.Values{
		"method": {"getQuote"},
		"format": {"json"},
		"lang":   {lang.String()},
	}

	body, err := c.FetchBody(ctx, "", query)
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponse[forismaticResponse](c.Name(), Repair(body))
	if err != nil {
		return nil, err
	}

	text, err := requireText(c.Name(), ext.QuoteText)
	if err != nil {
		return nil, err
	}

	quote := &domain.Quote{
		Text:   text,
		Author: optionalAuthor(ext.QuoteAuthor),
	}

	c.loggerFor(ctx).Log(ctx, logging.LevelTrace, "translated external DTO to domain",
		slog.String("provider", c.Name()),
		slog.Bool("has_author", quote.HasAuthor()),
	)

	return quote, nil
}

// Check verifies the provider answers with a decodable quote.
// Implements ports.HealthChecker.
func (c *ForismaticClient) Check(ctx context.Context) error {
	_, err := c.FetchQuote(ctx, domain.LanguageEnglish)
	return err
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
