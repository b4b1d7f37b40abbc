package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/jsamuelsen/randquote/internal/adapters/clients"
	"github.com/jsamuelsen/randquote/internal/domain"
	"github.com/jsamuelsen/randquote/internal/platform/logging"
)

// maxBodyBytes caps how much of a provider response is read.
const maxBodyBytes = 1 << 20

// errBodyTooLarge is wrapped into a Request error when a body exceeds maxBodyBytes.
var errBodyTooLarge = errors.New("response body too large")

// BaseAdapter provides the request and decoding steps shared by providers.
// Embed this in provider-specific adapters.
type BaseAdapter struct {
	client *clients.Client
	name   string
	logger *slog.Logger
}

// NewBaseAdapter creates a base adapter for the named provider.
// A nil logger falls back to the context logger on each call.
func NewBaseAdapter(client *clients.Client, name string, logger *slog.Logger) BaseAdapter {
	return BaseAdapter{
		client: client,
		name:   name,
		logger: logger,
	}
}

// Name returns the provider name.
func (a *BaseAdapter) Name() string {
	return a.name
}

// Client returns the underlying HTTP client.
func (a *BaseAdapter) Client() *clients.Client {
	return a.client
}

// FetchBody performs one GET and returns the body as a string.
// Failures are already translated to domain errors.
func (a *BaseAdapter) FetchBody(ctx context.Context, path string, query url.Values) (string, error) {
	logger := a.loggerFor(ctx)

	resp, err := a.client.Get(ctx, path, query)
	if err != nil {
		return "", domain.NewRequestError(a.name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp); err != nil {
		logger.WarnContext(ctx, "provider returned error status",
			slog.String("provider", a.name),
			slog.Int("status_code", resp.StatusCode),
		)

		return "", domain.NewRequestError(a.name, err)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return "", domain.NewRequestError(a.name, fmt.Errorf("reading body: %w", err))
	}

	if len(raw) > maxBodyBytes {
		return "", domain.NewRequestError(a.name, errBodyTooLarge)
	}

	if !utf8.Valid(raw) {
		return "", domain.NewDecodeError(a.name, nil)
	}

	logger.Log(ctx, logging.LevelTrace, "received body",
		slog.String("provider", a.name),
		slog.Int("bytes", len(raw)),
	)

	return string(raw), nil
}

func (a *BaseAdapter) loggerFor(ctx context.Context) *slog.Logger {
	if a.logger != nil {
		return a.logger
	}

	return logging.FromContext(ctx)
}

// checkStatus rejects anything outside 2xx.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}

// DecodeResponse decodes a JSON body into the target DTO type.
// Decoding failures become Parse errors for the named provider.
func DecodeResponse[T any](provider, body string) (*T, error) {
	var result T
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		return nil, domain.NewParseError(provider, err)
	}

	return &result, nil
}

// requireText validates the decoded quote text.
func requireText(provider string, text *string) (string, error) {
	if text == nil {
		return "", domain.NewParseError(provider, errors.New("missing quote text"))
	}

	if isBlank(*text) {
		return "", domain.NewParseError(provider, errors.New("empty quote text"))
	}

	return *text, nil
}

// optionalAuthor maps a null or missing author to the empty string.
func optionalAuthor(author *string) string {
	if author == nil {
		return ""
	}

	return *author
}
