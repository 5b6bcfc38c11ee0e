// internal/game/types.go
//
// Core type definitions for the Hangman game engine.
// Defines:
//   - State: coarse lifecycle of a session.
//   - Outcome/Result: what a single-letter guess did.
//   - Slot: one position of the revealed-word display.
//   - Game: state for a single session.

package game

// State is the lifecycle of a session.
type State string

const (
	StateInProgress          State = "in_progress"
	StateWon                 State = "won"
	StateLostPendingRecovery State = "lost_pending_recovery" // out of attempts, whole-word guess still allowed
	StateLost                State = "lost"
)

// Outcome classifies a single-letter guess.
type Outcome string

const (
	OutcomeCorrect Outcome = "correct"
	OutcomeWrong   Outcome = "wrong"
	OutcomeInvalid Outcome = "invalid" // input was not exactly one character
)

// Result is returned by GuessLetter. Letter is zero for OutcomeInvalid.
type Result struct {
	Outcome Outcome
	Letter  rune
}

// Slot is one position of the secret word as the player currently sees it.
type Slot struct {
	Letter   rune
	Revealed bool
}

// String renders the slot, "_" when hidden.
func (s Slot) String() string {
	if !s.Revealed {
		return "_"
	}
	return string(s.Letter)
}

// Game holds the state of a single Hangman session.
type Game struct {
	ID               string            // Unique session identifier (uuid), used in logs.
	Secret           string            // The secret word (always lowercase).
	StartAttempts    int               // Attempts the session started with.
	AttemptsLeft     int               // Remaining attempts; only Rearm increases it.
	Guessed          map[rune]struct{} // Letters guessed so far; only ever grows.
	WonViaLastChance bool              // True if the word was solved by the whole-word guess.
	lost             bool              // Set once the last chance was declined or failed.
}
