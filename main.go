package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/animalhangman/go-server/internal/game"
	"github.com/animalhangman/go-server/internal/httpserver"
	"github.com/animalhangman/go-server/internal/lookup"
	"github.com/animalhangman/go-server/internal/store"
	"github.com/animalhangman/go-server/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	// Process-wide lookup caches; both survive for the life of the server.
	translator := lookup.NewCachedTranslator(lookup.NewMyMemoryClient(getEnv("TRANSLATE_LANG", "th")))
	summaries := lookup.NewCachedSummaries(lookup.NewWikipediaClient())

	eng := game.NewEngine(game.PickerFunc(words.Pick), summaries, translator)
	srv := httpserver.New(store.NewMemoryStore(), eng)

	port := getEnv("PORT", "8080")
	log.Info().Str("port", port).Int("words", words.Count()).Msg("starting hangman server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
