package console

import (
	"fmt"
	"strings"

	"github.com/robalobadob/hangman/internal/game"
)

// Render joins the slots with single spaces, e.g. "f _ o _".
func Render(slots []game.Slot) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// Prompt picks the guess prompt for the current attempt count.
func Prompt(g *game.Game) string {
	switch g.AttemptsLeft {
	case g.StartAttempts:
		return "What is your first guess? "
	case 1:
		return "What is your last guess? "
	default:
		return "What is your next guess? "
	}
}

// Feedback turns a guess result into the message shown to the player.
func Feedback(res game.Result) string {
	switch res.Outcome {
	case game.OutcomeCorrect:
		return fmt.Sprintf("Good guess! '%c' is in the word", res.Letter)
	case game.OutcomeWrong:
		return fmt.Sprintf("Wrong guess! '%c' is not in the word, try another", res.Letter)
	default:
		return "Please, enter a single letter"
	}
}
