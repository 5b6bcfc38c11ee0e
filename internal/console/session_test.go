package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/words"
)

// script builds an Input from lines.
func script(lines ...string) Input {
	return NewLineReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func newTestSession(in Input, out *bytes.Buffer, secret string) *Session {
	s := NewSession(in, out, 4)
	s.Pick = func(bank []string) string { return secret }
	return s
}

func TestPlayWinByLetters(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(script("1", "f", "x", "r", "o", "g"), &out, "frog")

	sum, err := s.Play()
	require.NoError(t, err)

	assert.True(t, sum.Won)
	assert.False(t, sum.WonViaLastChance)
	assert.Equal(t, words.Animals, sum.Theme)
	assert.Equal(t, 3, sum.AttemptsLeft)

	text := out.String()
	assert.Contains(t, text, "Welcome to my Hangman Game!")
	assert.Contains(t, text, "You've chosen Animals to guess. Good luck!")
	assert.Contains(t, text, "Guess the Secret word: _ _ _ _")
	assert.Contains(t, text, "Guess the Secret word: f _ _ _")
	assert.Contains(t, text, "What is your first guess? ")
	assert.Contains(t, text, "What is your next guess? ")
	assert.Contains(t, text, "***- Good guess! 'f' is in the word -***")
	assert.Contains(t, text, "***- Wrong guess! 'x' is not in the word, try another -***")
	assert.Contains(t, text, "Congratulations! You guessed the word: frog")
	assert.Contains(t, text, "And you even have 3 attempts left")
	assert.Contains(t, text, "Let's play again soon!")
	assert.NotContains(t, text, "Game over!")
}

func TestPlayUnknownThemeFallsBackToRandom(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(script("5", "", "", "", "", "n"), &out, 4)
	var bankSize int
	s.Pick = func(bank []string) string {
		bankSize = len(bank)
		return "duck"
	}

	sum, err := s.Play()
	require.NoError(t, err)
	assert.Equal(t, words.Random, sum.Theme)
	assert.Equal(t, 20, bankSize)
	assert.Contains(t, out.String(), "You've chosen Random to guess. Good luck!")
}

func TestRunLossDeclined(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(script("a", "b", "c", "e", "no"), &out, 4)
	g := game.New("frog", 4)

	sum, err := s.Run(g)
	require.NoError(t, err)
	assert.False(t, sum.Won)
	assert.Equal(t, 0, sum.AttemptsLeft)
	assert.Equal(t, game.StateLost, g.State())

	text := out.String()
	assert.Contains(t, text, "What is your last guess? ")
	assert.Contains(t, text, "There are no guesses left.")
	assert.Contains(t, text, "Do you want to try to guess the whole word? (Y/N): ")
	assert.NotContains(t, text, "What is the secret word? ")
	assert.Contains(t, text, "Game over!\nSorry, the secret word was: frog\nBetter luck next time, see you!\n")
}

func TestRunLastChanceWin(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(script("", "Yes", "LION"), &out, 1)
	g := game.New("lion", 1)

	sum, err := s.Run(g)
	require.NoError(t, err)
	assert.True(t, sum.Won)
	assert.True(t, sum.WonViaLastChance)
	assert.Equal(t, 1, sum.AttemptsLeft)

	text := out.String()
	assert.Contains(t, text, "***- Please, enter a single letter -***")
	assert.Contains(t, text, "What is your first guess? ")
	assert.NotContains(t, text, "What is your last guess? ")
	assert.Contains(t, text, "What is the secret word? ")
	assert.Contains(t, text, "Congratulations! You guessed the word: lion")
	assert.NotContains(t, text, "And you even have")
}

func TestRunLastChanceWrongWord(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(script("z", "y", "loin"), &out, 1)
	g := game.New("lion", 1)

	sum, err := s.Run(g)
	require.NoError(t, err)
	assert.False(t, sum.Won)
	assert.Equal(t, game.StateLost, g.State())
	assert.Contains(t, out.String(), "Sorry, the secret word was: lion")
}

func TestRunSingleAttemptLeftWording(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(script("x", "x", "x", "d", "u", "c", "k"), &out, 4)
	g := game.New("duck", 4)

	sum, err := s.Run(g)
	require.NoError(t, err)
	assert.True(t, sum.Won)
	assert.Contains(t, out.String(), "And you even have 1 attempt left\n")
}

func TestRunExhaustedInputIsLoss(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(NewLineReader(strings.NewReader("")), &out, 4)
	g := game.New("mask", 4)

	sum, err := s.Run(g)
	require.NoError(t, err)
	assert.False(t, sum.Won)
	assert.Equal(t, 4, strings.Count(out.String(), "Please, enter a single letter"))
	assert.Contains(t, out.String(), "Game over!")
}

type failingInput struct{}

func (failingInput) ReadLine() (string, error) { return "", errors.New("boom") }

func TestRunReadError(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(failingInput{}, &out, 4)

	_, err := s.Run(game.New("ring", 4))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input")
}

func TestPrompt(t *testing.T) {
	g := game.New("bell", 4)
	assert.Equal(t, "What is your first guess? ", Prompt(g))
	g.AttemptsLeft = 3
	assert.Equal(t, "What is your next guess? ", Prompt(g))
	g.AttemptsLeft = 1
	assert.Equal(t, "What is your last guess? ", Prompt(g))
}

func TestRender(t *testing.T) {
	g := game.New("bell", 4)
	g.GuessLetter("l")
	assert.Equal(t, "_ _ l l", Render(g.Progress()))
}

func TestLineReaderStripsCarriageReturn(t *testing.T) {
	in := NewLineReader(strings.NewReader("a\r\nb\n"))
	l, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "a", l)
	l, err = in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "b", l)
	_, err = in.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestRunOversizedGuessIsInvalid(t *testing.T) {
	var out bytes.Buffer
	long := strings.Repeat("a", 70000)
	s := NewSession(script(long, "f", "r", "o", "g"), &out, 4)
	g := game.New("frog", 4)

	sum, err := s.Run(g)
	require.NoError(t, err)
	assert.True(t, sum.Won)
	assert.Equal(t, 3, sum.AttemptsLeft)
	assert.NotContains(t, g.Guessed, 'a')
	assert.Contains(t, out.String(), "***- Please, enter a single letter -***")
}

func TestLineReaderLongLineAndUnterminatedLast(t *testing.T) {
	long := strings.Repeat("b", 100000)
	in := NewLineReader(strings.NewReader(long + "\nz"))
	l, err := in.ReadLine()
	require.NoError(t, err)
	assert.Len(t, l, 100000)
	l, err = in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "z", l)
	_, err = in.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestRunAlreadyWonWithoutRearm(t *testing.T) {
	g := game.New("lion", 1)
	g.GuessLetter("z")
	require.True(t, g.LastChance(true, "lion"))
	require.Equal(t, 0, g.AttemptsLeft)

	var out bytes.Buffer
	sum, err := NewSession(script(), &out, 1).Run(g)
	require.NoError(t, err)
	assert.True(t, sum.Won)
	assert.Contains(t, out.String(), "Congratulations! You guessed the word: lion")
	assert.NotContains(t, out.String(), "Game over!")
}
