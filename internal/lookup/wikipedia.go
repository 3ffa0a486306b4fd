// internal/lookup/wikipedia.go
//
// SummaryProvider implementation backed by the Wikipedia REST summary API
// (https://en.wikipedia.org/api/rest_v1/page/summary/<title>). One GET per
// lookup, bounded timeout, no retries. Any failure surfaces as an all-empty
// Summary; the caching layer decides whether to remember it.

package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const wikipediaBaseURL = "https://en.wikipedia.org/api/rest_v1/page/summary/"

// WikipediaClient fetches page summaries for words.
type WikipediaClient struct {
	base   string
	client *http.Client
}

// NewWikipediaClient constructs a summary client with an 8s timeout.
func NewWikipediaClient() *WikipediaClient {
	return &WikipediaClient{
		base:   wikipediaBaseURL,
		client: &http.Client{Timeout: 8 * time.Second},
	}
}

// Summarize performs a single best-effort summary call.
func (c *WikipediaClient) Summarize(ctx context.Context, word string) Summary {
	word = strings.TrimSpace(word)
	if word == "" {
		return Summary{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+url.PathEscape(word), nil)
	if err != nil {
		return Summary{}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("word", word).Msg("summary request failed")
		return Summary{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("word", word).Msg("summary request rejected")
		return Summary{}
	}

	var parsed struct {
		Thumbnail struct {
			Source string `json:"source"`
		} `json:"thumbnail"`
		Description string `json:"description"`
		Extract     string `json:"extract"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Warn().Err(err).Str("word", word).Msg("summary response decode failed")
		return Summary{}
	}
	return Summary{
		Image:       strings.TrimSpace(parsed.Thumbnail.Source),
		Description: strings.TrimSpace(parsed.Description),
		Extract:     strings.TrimSpace(parsed.Extract),
	}
}
