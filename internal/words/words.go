// internal/words/words.go
//
// Word bank for the hangman game engine.
//
// Responsibilities:
//   - Load the animal word list from an environment-provided file or fall
//     back to the embedded default list.
//   - Normalize entries (trim, lowercase) and keep only alphabetic words.
//   - Supply utility functions like Pick, Contains, and Count.
//
// Initialization behavior (Init):
//   1. If WORDS_FILE is set, load words from that file.
//   2. Otherwise fall back to the embedded `default_animals.txt`.
//
// Environment variables:
//   WORDS_FILE=/path/to/animals.txt
//
// Constraints:
//   • Words must be non-empty and purely alphabetic (a–z); any length.
//   • Lists are normalized to lowercase.
//   • Initialization is run once (sync.Once); an empty bank is an error
//     and the caller is expected to abort startup.

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"math/big"
	"os"
	"strings"
	"sync"
)

// --- embedded default list (ensures the server runs with no files configured) ---

//go:embed default_animals.txt
var embeddedAnimals string

var (
	initOnce   sync.Once
	animals    []string            // the loaded word bank
	animalsSet map[string]struct{} // membership lookups
	initialErr error
)

// Init loads the word bank exactly once.
// Returns an error if the word list ends up empty.
func Init() error {
	initOnce.Do(func() {
		var list []string
		if path := os.Getenv("WORDS_FILE"); path != "" {
			var err error
			list, err = readWordFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			list = normalizeLines(embeddedAnimals)
		}

		animals = list
		animalsSet = toSet(list)

		if len(animals) == 0 {
			initialErr = errors.New("words: animal list is empty")
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w != "" && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string
// into a slice of valid lowercase alphabetic words.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if w != "" && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Pick returns a cryptographically random word from the bank.
// Returns "" if the bank was never loaded (Init guards against this).
func Pick() string {
	if len(animals) == 0 {
		return ""
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(animals))))
	return animals[nBig.Int64()]
}

// Contains reports whether w is in the bank.
func Contains(w string) bool {
	_, ok := animalsSet[strings.ToLower(w)]
	return ok
}

// Count returns the number of loaded words.
func Count() int {
	return len(animals)
}

// All returns a copy of the loaded word bank.
func All() []string {
	out := make([]string, len(animals))
	copy(out, animals)
	return out
}
