// internal/console/session.go
//
// Text console driver for one Hangman session.
// Responsibilities:
//   - Welcome banner + theme menu, then pick the secret word.
//   - Per-turn loop: show progress and attempts, read a guess, print feedback.
//   - Offer the whole-word last chance once attempts hit zero.
//   - Print the victory or loss banner.
//
// Notes:
//   - All input comes through Input so sessions can be scripted in tests.
//   - io.EOF is read as an empty line; an exhausted input ends the game as a loss.

package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/words"
)

// Session wires the game engine to a line-based console.
type Session struct {
	in       Input
	out      io.Writer
	attempts int

	// Pick chooses the secret word from a bank. Defaults to words.PickSecret.
	Pick func(bank []string) string
}

// Summary describes how a finished session ended.
type Summary struct {
	GameID           string
	Theme            words.Theme
	Secret           string
	Won              bool
	WonViaLastChance bool
	AttemptsLeft     int
}

// NewSession constructs a Session reading from in and writing to out.
// attempts is the starting attempt count for each game.
func NewSession(in Input, out io.Writer, attempts int) *Session {
	return &Session{in: in, out: out, attempts: attempts, Pick: words.PickSecret}
}

// Play runs the full flow: theme menu, secret selection, and the game loop.
func (s *Session) Play() (Summary, error) {
	s.printf("\nWelcome to my Hangman Game!\n\n")
	s.printf("Would you like to guess:\n" +
		"1. Animals\n" +
		"2. Nature\n" +
		"3. Objects\n" +
		"4. Random\n" +
		"Select one theme (1-4): ")

	raw, err := s.readLine()
	if err != nil {
		return Summary{}, err
	}
	theme := words.ResolveTheme(raw)
	s.printf("You've chosen %s to guess. Good luck!\n", theme)

	g := game.New(s.Pick(words.Bank(theme)), s.attempts)
	log.Debug().Str("game", g.ID).Str("theme", theme.String()).Msg("session started")

	sum, err := s.Run(g)
	sum.Theme = theme
	return sum, err
}

// Run drives g until it is won or lost.
func (s *Session) Run(g *game.Game) (Summary, error) {
	for g.AttemptsLeft > 0 {
		if g.HasWon() {
			s.printVictory(g)
			return s.summary(g), nil
		}

		s.printf("\nGuess the Secret word: %s\n", Render(g.Progress()))
		s.printf("\nAttempts left: %d\n", g.AttemptsLeft)
		s.printf("%s", Prompt(g))

		guess, err := s.readLine()
		if err != nil {
			return s.summary(g), err
		}
		s.printf("\n***- %s -***\n", Feedback(g.GuessLetter(guess)))

		if g.AttemptsLeft == 0 && !g.HasWon() {
			ok, err := s.lastChance(g)
			if err != nil {
				return s.summary(g), err
			}
			if ok {
				g.Rearm()
				continue
			}
		}
	}

	if g.HasWon() {
		s.printVictory(g)
		return s.summary(g), nil
	}

	s.printf("Game over!\n")
	s.printf("Sorry, the secret word was: %s\n", g.Secret)
	s.printf("Better luck next time, see you!\n")
	log.Debug().Str("game", g.ID).Msg("session lost")
	return s.summary(g), nil
}

// lastChance asks whether the player wants to guess the whole word and resolves it.
func (s *Session) lastChance(g *game.Game) (bool, error) {
	s.printf("There are no guesses left.\n")
	s.printf("Do you want to try to guess the whole word? (Y/N): ")

	answer, err := s.readLine()
	if err != nil {
		return false, err
	}
	if !strings.Contains(strings.ToLower(answer), "y") {
		return g.LastChance(false, ""), nil
	}

	s.printf("What is the secret word? ")
	word, err := s.readLine()
	if err != nil {
		return false, err
	}
	return g.LastChance(true, word), nil
}

func (s *Session) printVictory(g *game.Game) {
	s.printf("\nCongratulations! You guessed the word: %s\n", g.Secret)
	if !g.WonViaLastChance {
		plural := "s"
		if g.AttemptsLeft == 1 {
			plural = ""
		}
		s.printf("And you even have %d attempt%s left\n", g.AttemptsLeft, plural)
	}
	s.printf("Let's play again soon!\n")
	log.Debug().Str("game", g.ID).Bool("lastChance", g.WonViaLastChance).Msg("session won")
}

func (s *Session) summary(g *game.Game) Summary {
	return Summary{
		GameID:           g.ID,
		Secret:           g.Secret,
		Won:              g.HasWon(),
		WonViaLastChance: g.WonViaLastChance,
		AttemptsLeft:     g.AttemptsLeft,
	}
}

// readLine returns the next input line; io.EOF yields an empty line.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadLine()
	if errors.Is(err, io.EOF) {
		log.Debug().Msg("input exhausted, reading empty line")
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
