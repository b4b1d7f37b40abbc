package acl

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen/randquote/internal/adapters/clients"
	"github.com/jsamuelsen/randquote/internal/domain"
	"github.com/jsamuelsen/randquote/internal/platform/logging"
)

// HapesireName is the provider name used for selection and errors.
const HapesireName = "hapesire"

// HapesireClient fetches quotes from the Hapesire API.
// It implements ports.QuoteProvider and ports.HealthChecker.
type HapesireClient struct {
	BaseAdapter
}

// NewHapesireClient creates a Hapesire adapter. The language is appended to
// the client's BaseURL as a path segment.
func NewHapesireClient(client *clients.Client, logger *slog.Logger) *HapesireClient {
	return &HapesireClient{
		BaseAdapter: NewBaseAdapter(client, HapesireName, logger),
	}
}

type hapesireResponse struct {
	Data *hapesireData `json:"data"`
}

type hapesireData struct {
	Attributes *hapesireAttributes `json:"attributes"`
}

type hapesireAttributes struct {
	Text   *string `json:"text"`
	Author *string `json:"author"`
}

// FetchQuote requests one random quote in the given language.
func (c *HapesireClient) FetchQuote(ctx context.Context, lang domain.Language) (*domain.Quote, error) {
	body, err := c.FetchBody(ctx, lang.String(), nil)
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponse[hapesireResponse](c.Name(), body)
	if err != nil {
		return nil, err
	}

	if ext.Data == nil || ext.Data.Attributes == nil {
		return nil, domain.NewParseError(c.Name(), errors.New("missing data.attributes envelope"))
	}

	attrs := ext.Data.Attributes

	text, err := requireText(c.Name(), attrs.Text)
	if err != nil {
		return nil, err
	}

	quote := &domain.Quote{
		Text:   text,
		Author: optionalAuthor(attrs.Author),
	}

	c.loggerFor(ctx).Log(ctx, logging.LevelTrace, "translated external DTO to domain",
		slog.String("provider", c.Name()),
		slog.Bool("has_author", quote.HasAuthor()),
	)

	return quote, nil
}

// Check verifies the provider answers with a decodable quote.
func (c *HapesireClient) Check(ctx context.Context) error {
	_, err := c.FetchQuote(ctx, domain.LanguageEnglish)
	return err
}
