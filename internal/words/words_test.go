package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLines(t *testing.T) {
	in := "Cat\n\n  DOG  \nowl1\n42\nzebra\n\tFox\n"
	got := normalizeLines(in)
	assert.Equal(t, []string{"cat", "dog", "zebra", "fox"}, got)
}

func TestReadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animals.txt")
	require.NoError(t, os.WriteFile(path, []byte("Lion\n tiger \n\nbear99\nwolf\n"), 0o644))

	got, err := readWordFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"lion", "tiger", "wolf"}, got)
}

func TestReadWordFileMissing(t *testing.T) {
	_, err := readWordFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestInitAndPick(t *testing.T) {
	os.Unsetenv("WORDS_FILE")
	require.NoError(t, Init())
	require.Positive(t, Count())

	for _, w := range All() {
		assert.NotEmpty(t, w)
		assert.True(t, isAlpha(w), "word %q must be lowercase alphabetic", w)
	}

	for i := 0; i < 20; i++ {
		w := Pick()
		assert.True(t, Contains(w), "picked word %q must come from the bank", w)
	}
}
