// internal/lookup/mymemory.go
//
// Translator implementation backed by the MyMemory public translation API
// (https://api.mymemory.translated.net). One GET per lookup, bounded
// timeout, no retries. Failures are logged at warn level and surface as "".

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

const mymemoryBaseURL = "https://api.mymemory.translated.net/get"

// MyMemoryClient translates English text via the MyMemory API.
type MyMemoryClient struct {
	base   string
	lang   string // target language code, e.g. "th"
	client *http.Client
}

// NewMyMemoryClient constructs a client translating en → lang.
func NewMyMemoryClient(lang string) *MyMemoryClient {
	return &MyMemoryClient{
		base:   mymemoryBaseURL,
		lang:   lang,
		client: &http.Client{Timeout: 7 * time.Second},
	}
}

// Translate performs a single best-effort translation call.
func (c *MyMemoryClient) Translate(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", "en|"+c.lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"?"+q.Encode(), nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("text", text).Msg("translate request failed")
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("text", text).Msg("translate request rejected")
		return ""
	}

	var parsed struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Warn().Err(err).Msg("translate response decode failed")
		return ""
	}
	return strings.TrimSpace(parsed.ResponseData.TranslatedText)
}
