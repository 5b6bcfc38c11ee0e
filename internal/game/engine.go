// internal/game/engine.go
//
// Core game engine for a single Hangman session.
// Responsibilities:
//   - Create sessions from a secret word and a starting attempt count.
//   - Evaluate single-letter guesses (correct / wrong / invalid).
//   - Offer the one-time whole-word guess once attempts run out.
//   - Track state transitions: in_progress → won | lost_pending_recovery → won | lost.
//
// Notes:
//   - Win is recomputed from the guessed letters on every call, never cached.
//   - Re-guessing a correct letter is free; re-guessing a wrong one costs again.

package game

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/words"
)

// DefaultAttempts is the starting attempt count used when none is configured.
const DefaultAttempts = 4

// New constructs a session for secret (lowercased) with the given attempts.
// If secret is empty, a random word from the Random bank is used instead.
// attempts < 1 falls back to DefaultAttempts.
func New(secret string, attempts int) *Game {
	if secret == "" {
		secret = words.PickSecret(words.Bank(words.Random))
	}
	if attempts < 1 {
		attempts = DefaultAttempts
	}
	return &Game{
		ID:            uuid.NewString(),
		Secret:        strings.ToLower(secret),
		StartAttempts: attempts,
		AttemptsLeft:  attempts,
		Guessed:       make(map[rune]struct{}),
	}
}

// Progress returns one Slot per character of the secret word.
func (g *Game) Progress() []Slot {
	out := make([]Slot, 0, len(g.Secret))
	for _, r := range g.Secret {
		_, ok := g.Guessed[r]
		out = append(out, Slot{Letter: r, Revealed: ok})
	}
	return out
}

// HasWon reports whether every slot of Progress is revealed.
func (g *Game) HasWon() bool {
	for _, s := range g.Progress() {
		if !s.Revealed {
			return false
		}
	}
	return true
}

// GuessLetter applies one guess and returns its outcome.
//
// Rules:
//   - Exactly one character: the letter is recorded; attempts drop by one
//     unless it occurs in the secret word.
//   - Any other length (including empty): attempts drop by one, nothing is recorded.
func (g *Game) GuessLetter(input string) Result {
	input = strings.ToLower(input)
	if utf8.RuneCountInString(input) != 1 {
		g.AttemptsLeft--
		log.Debug().Str("game", g.ID).Int("attemptsLeft", g.AttemptsLeft).Msg("invalid guess")
		return Result{Outcome: OutcomeInvalid}
	}

	r, _ := utf8.DecodeRuneInString(input)
	g.Guessed[r] = struct{}{}

	res := Result{Outcome: OutcomeCorrect, Letter: r}
	if !strings.ContainsRune(g.Secret, r) {
		res.Outcome = OutcomeWrong
		g.AttemptsLeft--
	}
	log.Debug().Str("game", g.ID).Str("letter", string(r)).
		Str("outcome", string(res.Outcome)).Int("attemptsLeft", g.AttemptsLeft).Msg("guess")
	return res
}

// LastChance resolves the whole-word guess offered when attempts run out.
// Returns true only if the player tried and word matches the secret (case-insensitive);
// in that case every letter is revealed. Any other call while eligible ends the game
// as lost. Outside StateLostPendingRecovery it returns false and changes nothing.
func (g *Game) LastChance(wantsToTry bool, word string) bool {
	if g.State() != StateLostPendingRecovery {
		return false
	}
	if wantsToTry && strings.ToLower(word) == g.Secret {
		for _, r := range g.Secret {
			g.Guessed[r] = struct{}{}
		}
		g.WonViaLastChance = true
		log.Debug().Str("game", g.ID).Msg("won via last chance")
		return true
	}
	g.lost = true
	log.Debug().Str("game", g.ID).Bool("tried", wantsToTry).Msg("last chance lost")
	return false
}

// Rearm grants one attempt after a successful last chance so the driver's
// loop reaches its win check again.
func (g *Game) Rearm() {
	g.AttemptsLeft++
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	switch {
	case g.HasWon():
		return StateWon
	case g.lost:
		return StateLost
	case g.AttemptsLeft <= 0:
		return StateLostPendingRecovery
	default:
		return StateInProgress
	}
}

// Finished reports whether the session reached a terminal state.
func (g *Game) Finished() bool {
	s := g.State()
	return s == StateWon || s == StateLost
}
