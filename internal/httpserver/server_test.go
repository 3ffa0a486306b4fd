package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animalhangman/go-server/internal/game"
	"github.com/animalhangman/go-server/internal/lookup"
	"github.com/animalhangman/go-server/internal/store"
)

// seqPicker hands out words in order, cycling at the end.
type seqPicker struct {
	words []string
	i     int
}

func (p *seqPicker) Pick() string {
	w := p.words[p.i%len(p.words)]
	p.i++
	return w
}

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ context.Context, text string) string {
	return t[strings.ToLower(text)]
}

type stubSummaries map[string]lookup.Summary

func (s stubSummaries) Summarize(_ context.Context, word string) lookup.Summary {
	return s[strings.ToLower(word)]
}

func newTestServer(wordSeq ...string) *Server {
	eng := game.NewEngine(&seqPicker{words: wordSeq}, stubSummaries{
		"cat": {Image: "http://img/cat.jpg", Description: "Small domesticated felid"},
	}, stubTranslator{"cat": "แมว"})
	return New(store.NewMemoryStore(), eng)
}

// sessionClient replays cookies across requests, like a browser would.
type sessionClient struct {
	h       http.Handler
	cookies map[string]*http.Cookie
}

func newSessionClient(_ *testing.T, s *Server) *sessionClient {
	return &sessionClient{h: s.Router(), cookies: map[string]*http.Cookie{}}
}

func (c *sessionClient) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		c.cookies[ck.Name] = ck
	}
	return rec
}

func decodeProjection(t *testing.T, rec *httptest.ResponseRecorder) game.Projection {
	t.Helper()
	var p game.Projection
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	return p
}

func TestHealthAndBanner(t *testing.T) {
	c := newSessionClient(t, newTestServer("cat"))

	rec := c.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	rec = c.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hangman-go")
}

func TestStateWithoutGame(t *testing.T) {
	c := newSessionClient(t, newTestServer("cat"))

	rec := c.do(http.MethodGet, "/api/state", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"no_game"}`, rec.Body.String())

	// A session cookie was minted on first contact.
	assert.NotNil(t, c.cookies[sessionCookieName])
}

func TestGuessWithoutGame(t *testing.T) {
	c := newSessionClient(t, newTestServer("cat"))

	rec := c.do(http.MethodPost, "/api/guess", `{"guess":"c"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no_game")

	rec = c.do(http.MethodPost, "/api/hint", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no_game")
}

func TestFullGameFlow(t *testing.T) {
	c := newSessionClient(t, newTestServer("cat", "owl"))

	p := decodeProjection(t, c.do(http.MethodPost, "/api/start", ""))
	assert.Equal(t, 1, p.Stage)
	assert.Equal(t, game.StartLife, p.Life)
	assert.Equal(t, 3, p.Length)
	assert.Equal(t, "___", p.Masked)
	assert.Equal(t, "http://img/cat.jpg", p.Image)
	assert.Equal(t, game.StatusPlaying, p.Status)

	p = decodeProjection(t, c.do(http.MethodPost, "/api/guess", `{"guess":"c"}`))
	assert.Equal(t, 10, p.Life)
	assert.Equal(t, "c__", p.Masked)

	p = decodeProjection(t, c.do(http.MethodPost, "/api/guess", `{"guess":"z"}`))
	assert.Equal(t, 9, p.Life)
	assert.Equal(t, []string{"z"}, p.Wrong)

	// State echoes the saved round.
	p = decodeProjection(t, c.do(http.MethodGet, "/api/state", ""))
	assert.Equal(t, 9, p.Life)
	assert.Equal(t, "c__", p.Masked)

	// Clear the word: projection flips to the next stage's fresh round.
	decodeProjection(t, c.do(http.MethodPost, "/api/guess", `{"guess":"a"}`))
	p = decodeProjection(t, c.do(http.MethodPost, "/api/guess", `{"guess":"t"}`))
	assert.Equal(t, 2, p.Stage)
	assert.Equal(t, 13, p.Life)
	assert.Equal(t, "___", p.Masked)
	assert.Equal(t, "cat", p.LastWord)
	assert.Equal(t, "แมว", p.LastTranslatedWord)
	assert.Contains(t, p.Message, "CLEAR")
}

func TestHintEndpoint(t *testing.T) {
	c := newSessionClient(t, newTestServer("owl"))

	decodeProjection(t, c.do(http.MethodPost, "/api/start", ""))
	p := decodeProjection(t, c.do(http.MethodPost, "/api/hint", ""))
	assert.Equal(t, game.StartLife-2, p.Life)
	assert.Equal(t, 1, p.HintLettersUsed)
	assert.Equal(t, game.HintMax, p.HintLettersMax)
	assert.Equal(t, 1, strings.Count(p.Masked, "o")+strings.Count(p.Masked, "w")+strings.Count(p.Masked, "l"))
}

func TestResetEndpoint(t *testing.T) {
	c := newSessionClient(t, newTestServer("cat"))

	decodeProjection(t, c.do(http.MethodPost, "/api/start", ""))
	rec := c.do(http.MethodPost, "/api/reset", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	rec = c.do(http.MethodGet, "/api/state", "")
	assert.JSONEq(t, `{"status":"no_game"}`, rec.Body.String())
}

func TestSessionsAreIndependent(t *testing.T) {
	srv := newTestServer("cat", "owl")
	alice := newSessionClient(t, srv)
	bob := newSessionClient(t, srv)

	decodeProjection(t, alice.do(http.MethodPost, "/api/start", ""))
	decodeProjection(t, alice.do(http.MethodPost, "/api/guess", `{"guess":"z"}`))

	// Bob has no game even though Alice is mid-round.
	rec := bob.do(http.MethodGet, "/api/state", "")
	assert.JSONEq(t, `{"status":"no_game"}`, rec.Body.String())

	p := decodeProjection(t, alice.do(http.MethodGet, "/api/state", ""))
	assert.Equal(t, game.StartLife-1, p.Life)
}

func TestGuessBadJSON(t *testing.T) {
	c := newSessionClient(t, newTestServer("cat"))

	decodeProjection(t, c.do(http.MethodPost, "/api/start", ""))
	rec := c.do(http.MethodPost, "/api/guess", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad_json")
}
