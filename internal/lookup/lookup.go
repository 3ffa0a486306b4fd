// internal/lookup/lookup.go
//
// External lookup capabilities consumed by the game engine.
// Defines:
//   - Translator: best-effort text translation into the target language.
//   - SummaryProvider: best-effort reference info (image + description)
//     for a word.
//
// Both capabilities degrade to empty results instead of returning errors:
// a slow or broken upstream must never fail a game command. Production
// implementations (MyMemoryClient, WikipediaClient) call public REST APIs
// with bounded timeouts; tests use deterministic stubs.

package lookup

import "context"

// userAgent identifies this server to the upstream APIs.
const userAgent = "AnimalHangman/1.0"

// Summary is the reference info fetched for a word.
// Any field may be empty when the upstream has nothing for it.
type Summary struct {
	Image       string // thumbnail URL
	Description string // one-line description
	Extract     string // short paragraph
}

// Translator converts English text into the configured target language.
// Returns "" on any failure or empty upstream result.
type Translator interface {
	Translate(ctx context.Context, text string) string
}

// SummaryProvider fetches reference info for a word.
// Returns an all-empty Summary on any failure.
type SummaryProvider interface {
	Summarize(ctx context.Context, word string) Summary
}
