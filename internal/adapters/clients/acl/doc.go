// Package acl provides Anti-Corruption Layer adapters for the remote quote
// providers.
//
// Each provider has its own wire schema. The adapters in this package keep
// those DTOs unexported and translate them into [domain.Quote], so nothing
// outside the package depends on a provider's field names.
//
// # Providers
//
//   - [ForismaticClient]: flat {"quoteText", "quoteAuthor"} object. The
//     service emits invalid \' escapes, so bodies pass through [Repair]
//     before decoding.
//   - [HapesireClient]: {"data":{"attributes":{"text","author"}}} envelope
//     with a nullable author.
//
// # Error Handling Strategy
//
// Every failure is reported as a [domain.FetchError]:
//   - Transport failure, timeout or non-2xx status → Request
//   - Body that is not valid UTF-8 → Decode
//   - Malformed JSON, missing envelope or empty text → Parse
//
// Adapters decode only. Trimming and quotation handling belong to the
// presenter.
package acl
