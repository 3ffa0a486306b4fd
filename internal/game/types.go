// internal/game/types.go
//
// Core type definitions for the hangman round engine.
// Defines:
//   - Status: lifecycle of a round (playing/failed; clearing a word
//     immediately produces the next round, so there is no "cleared" state).
//   - Round: full server-side state for one session's current round.
//   - Reveal: snapshot of the previous word, captured when a round ends.
//   - Projection: the client-visible view of a Round.

package game

// Status represents the lifecycle state of a round.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusFailed  Status = "failed"
)

// Gameplay constants.
const (
	StartLife = 8 // life a brand new game begins with
	HintMax   = 2 // hint letters per word

	correctBonus = 2 // life gained on a correct guess
	wrongPenalty = 1 // life lost on a wrong guess
	hintCost     = 2 // life lost per hint letter
)

// Reveal captures the word that just ended a round, so the client can show
// "what was it" after a clear or a failure. Translated fields fall back to
// "-" when the translation service had nothing.
type Reveal struct {
	Word            string `json:"word"`
	TranslatedWord  string `json:"translatedWord"`
	About           string `json:"about"`
	TranslatedAbout string `json:"translatedAbout"`
}

// Round holds the state of a single hangman round for one session.
// The hidden word and its fetched reference info are backend-only; clients
// see a Round exclusively through Public().
type Round struct {
	Stage int    `json:"stage"`
	Life  int    `json:"life"`
	Word  string `json:"word"` // never exposed through Public()

	// Reference info fetched at round start (each may be empty).
	Image       string `json:"image"`
	Description string `json:"description"`
	Extract     string `json:"extract"`

	Guessed         map[string]bool `json:"guessed"` // letters confirmed present
	Wrong           map[string]bool `json:"wrong"`   // letters confirmed absent
	HintLettersUsed int             `json:"hintLettersUsed"`

	Status  Status `json:"status"`
	Message string `json:"message"`

	// Last round's reveal, carried into the next round on a clear.
	Last Reveal `json:"last"`
}

// Projection is the public view of a Round returned to clients.
type Projection struct {
	Stage               int      `json:"stage"`
	Life                int      `json:"life"`
	Length              int      `json:"length"`
	Masked              string   `json:"masked"`
	Wrong               []string `json:"wrong"`
	Status              Status   `json:"status"`
	Message             string   `json:"message"`
	Image               string   `json:"image"`
	HintLettersUsed     int      `json:"hintLettersUsed"`
	HintLettersMax      int      `json:"hintLettersMax"`
	LastWord            string   `json:"lastWord"`
	LastTranslatedWord  string   `json:"lastTranslatedWord"`
	LastAbout           string   `json:"lastAbout"`
	LastTranslatedAbout string   `json:"lastTranslatedAbout"`
}
