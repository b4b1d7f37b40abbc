// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (FetchError, SerializeError)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/randquote/internal/domain"
)

// QuoteProvider fetches a random quote from one remote quote service.
// Each provider speaks its own wire schema and translates it to domain.Quote.
type QuoteProvider interface {
	// Name returns the lowercase identifier the provider is selected by.
	Name() string

	// FetchQuote issues one request and decodes the response.
	// The returned quote is decoded but not trimmed or localized.
	// Errors are *domain.FetchError of kind Request, Decode or Parse.
	FetchQuote(ctx context.Context, lang domain.Language) (*domain.Quote, error)
}
