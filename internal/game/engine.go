// internal/game/engine.go
//
// Round engine for a single hangman session.
// Responsibilities:
//   - Start rounds: pick a word, fetch its reference info, reset counters.
//   - Validate and apply letter guesses (+2 life correct, -1 wrong).
//   - Apply hint letters (reveal one uncovered letter for -2 life, max 2).
//   - Settle end-of-round: failure at life <= 0, or instant advance to the
//     next stage when the word is fully guessed, carrying life and reveal
//     info forward.
//
// Notes:
//   - Invalid input, repeated guesses, and exhausted hints are advisory
//     conditions reported through Round.Message, not errors.
//   - The word source and both lookup services are injected, so the engine
//     itself is deterministic under test stubs.

package game

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/animalhangman/go-server/internal/lookup"
)

// Picker supplies the next hidden word.
type Picker interface {
	Pick() string
}

// PickerFunc adapts a plain function to the Picker interface.
type PickerFunc func() string

// Pick calls f.
func (f PickerFunc) Pick() string { return f() }

// Engine applies game commands to rounds. It is stateless between calls;
// all mutable state lives in the Round handed in and out.
type Engine struct {
	picker     Picker
	summaries  lookup.SummaryProvider
	translator lookup.Translator
}

// NewEngine constructs an engine over a word source and the two lookup
// capabilities (normally the cached clients from internal/lookup).
func NewEngine(p Picker, s lookup.SummaryProvider, t lookup.Translator) *Engine {
	return &Engine{picker: p, summaries: s, translator: t}
}

// StartRound picks a fresh word and builds the round state for it.
// The summary fetch is best-effort; empty fields never block the round.
func (e *Engine) StartRound(ctx context.Context, stage, life int) *Round {
	word := e.picker.Pick()
	info := e.summaries.Summarize(ctx, word)

	return &Round{
		Stage:       stage,
		Life:        life,
		Word:        word,
		Image:       info.Image,
		Description: info.Description,
		Extract:     info.Extract,
		Guessed:     map[string]bool{},
		Wrong:       map[string]bool{},
		Status:      StatusPlaying,
		Message:     fmt.Sprintf("🧩 STAGE %d started", stage),
	}
}

// ApplyGuess validates and applies a single-letter guess.
// Returns the round to present to the caller: the same round mutated in
// place, or a fresh one when the guess cleared the word.
func (e *Engine) ApplyGuess(ctx context.Context, rd *Round, input string) *Round {
	if rd.Status != StatusPlaying {
		return rd
	}

	g := strings.ToLower(strings.TrimSpace(input))
	if len(g) != 1 || !isLetter(g) {
		rd.Message = "Enter ONE letter only (a-z)"
		return rd
	}
	if rd.Guessed[g] || rd.Wrong[g] {
		rd.Message = "Already guessed: " + g
		return rd
	}

	if strings.Contains(rd.Word, g) {
		rd.Guessed[g] = true
		rd.Life += correctBonus
		rd.Message = fmt.Sprintf("✅ Correct! +%d life -> %d", correctBonus, rd.Life)
	} else {
		rd.Wrong[g] = true
		rd.Life -= wrongPenalty
		rd.Message = fmt.Sprintf("❌ Wrong! -%d life -> %d", wrongPenalty, rd.Life)
	}

	return e.settle(ctx, rd)
}

// ApplyHint reveals one uncovered letter for a fixed life cost.
// Limit and no-letters conditions are advisory messages, not errors.
// The life cost applies even when it drives the round into failure.
func (e *Engine) ApplyHint(ctx context.Context, rd *Round) *Round {
	if rd.Status != StatusPlaying {
		return rd
	}
	if rd.HintLettersUsed >= HintMax {
		rd.Message = fmt.Sprintf("Hint letter limit reached (%d per word).", HintMax)
		return rd
	}

	remaining := uncoveredLetters(rd)
	if len(remaining) == 0 {
		rd.Message = "No letters left to reveal."
		return rd
	}

	reveal := remaining[randIndex(len(remaining))]
	rd.Guessed[reveal] = true
	rd.HintLettersUsed++
	rd.Life -= hintCost
	rd.Message = fmt.Sprintf("💡 Hint: '%s' (-%d life) | %d/%d", reveal, hintCost, rd.HintLettersUsed, HintMax)

	return e.settle(ctx, rd)
}

// settle runs the shared end-of-round check after a guess or hint.
// Priority: failure first, then clear, else keep playing.
func (e *Engine) settle(ctx context.Context, rd *Round) *Round {
	if rd.Life <= 0 {
		rd.Status = StatusFailed
		rd.Last = e.capture(ctx, rd)
		rd.Message = fmt.Sprintf("💀 GAME OVER! Word: %s (%s)", rd.Last.Word, rd.Last.TranslatedWord)
		return rd
	}

	if cleared(rd) {
		last := e.capture(ctx, rd)
		next := e.StartRound(ctx, rd.Stage+1, rd.Life)
		next.Last = last
		next.Message = fmt.Sprintf("🎉 CLEAR! %s (%s) → Next word!", last.Word, last.TranslatedWord)
		return next
	}

	return rd
}

// capture snapshots the ending word with its translations.
// About-text prefers the short description, then the extract, then "-".
func (e *Engine) capture(ctx context.Context, rd *Round) Reveal {
	about := strings.TrimSpace(rd.Description)
	if about == "" {
		about = strings.TrimSpace(rd.Extract)
	}

	rev := Reveal{Word: rd.Word}
	rev.TranslatedWord = orDash(e.translator.Translate(ctx, rd.Word))
	if about == "" {
		rev.About = "-"
		rev.TranslatedAbout = "-"
	} else {
		rev.About = about
		rev.TranslatedAbout = e.translator.Translate(ctx, about)
	}
	return rev
}

// Masked returns the word with unguessed letters replaced by underscores.
// The result always has exactly len(Word) runes.
func (rd *Round) Masked() string {
	var b strings.Builder
	for _, r := range rd.Word {
		if rd.Guessed[string(r)] {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Public builds the client-visible projection of the round.
func (rd *Round) Public() Projection {
	wrong := make([]string, 0, len(rd.Wrong))
	for l := range rd.Wrong {
		wrong = append(wrong, l)
	}
	sort.Strings(wrong)

	return Projection{
		Stage:               rd.Stage,
		Life:                rd.Life,
		Length:              len(rd.Word),
		Masked:              rd.Masked(),
		Wrong:               wrong,
		Status:              rd.Status,
		Message:             rd.Message,
		Image:               rd.Image,
		HintLettersUsed:     rd.HintLettersUsed,
		HintLettersMax:      HintMax,
		LastWord:            rd.Last.Word,
		LastTranslatedWord:  rd.Last.TranslatedWord,
		LastAbout:           rd.Last.About,
		LastTranslatedAbout: rd.Last.TranslatedAbout,
	}
}

// cleared reports whether every letter of the word has been guessed.
func cleared(rd *Round) bool {
	for _, r := range rd.Word {
		if !rd.Guessed[string(r)] {
			return false
		}
	}
	return true
}

// uncoveredLetters returns the distinct unguessed letters of the word, sorted.
func uncoveredLetters(rd *Round) []string {
	seen := map[string]bool{}
	for _, r := range rd.Word {
		l := string(r)
		if !rd.Guessed[l] && !seen[l] {
			seen[l] = true
		}
	}
	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// isLetter checks that a string consists only of lowercase a-z.
func isLetter(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// orDash substitutes "-" for an empty translation.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// randIndex returns a cryptographically random index in [0, n).
func randIndex(n int) int {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(nBig.Int64())
}
