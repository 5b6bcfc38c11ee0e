package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()
	// stdout belongs to the game; logs go to stderr
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	s := console.NewSession(console.NewLineReader(os.Stdin), os.Stdout, envInt("HANGMAN_ATTEMPTS", game.DefaultAttempts))
	sum, err := s.Play()
	if err != nil {
		// input is gone; there is nothing left to play
		log.Error().Err(err).Msg("session aborted")
		return
	}
	log.Info().Str("game", sum.GameID).Str("theme", sum.Theme.String()).Bool("won", sum.Won).Msg("session finished")
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil && n > 0 {
		return n
	}
	return def
}
