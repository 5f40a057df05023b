package session

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-engine/domain"
)

// Rules holds the session tunables. The defaults match the game design:
// five lives, ten points for a perfect answer, five for a correct one.
type Rules struct {
	Lives        int
	PerfectScore int
	CorrectScore int
}

// DefaultRules returns the standard session rules.
func DefaultRules() Rules {
	return Rules{
		Lives:        5,
		PerfectScore: 10,
		CorrectScore: 5,
	}
}

// Context carries the mutable state of a classic-mode session. It is a
// value type: transitions return updated copies and never mutate their
// input.
type Context struct {
	SessionID        uuid.UUID     `json:"session_id"`
	Cards            []domain.Card `json:"-"`
	CurrentIndex     int           `json:"current_index"`
	Lives            int           `json:"lives"`
	Score            int           `json:"score"`
	CorrectAnswers   int           `json:"correct_answers"`
	IncorrectAnswers int           `json:"incorrect_answers"`
	Status           Status        `json:"status"`
}

// NewContext creates the initial context for a session over the given
// ordered card sequence.
func NewContext(cards []domain.Card, rules Rules) Context {
	return Context{
		SessionID: uuid.New(),
		Cards:     cards,
		Lives:     rules.Lives,
		Status:    StatusPlaying,
	}
}

// CurrentCard returns the card the session is positioned on, or nil when
// the index is out of range (e.g. an empty session).
func (c Context) CurrentCard() *domain.Card {
	if c.CurrentIndex < 0 || c.CurrentIndex >= len(c.Cards) {
		return nil
	}
	return &c.Cards[c.CurrentIndex]
}

// Accuracy returns the fraction of answered cards that were correct, in
// [0, 1]. A session with no answers yet has accuracy 0.
func (c Context) Accuracy() float64 {
	total := c.CorrectAnswers + c.IncorrectAnswers
	if total == 0 {
		return 0
	}
	return float64(c.CorrectAnswers) / float64(total)
}

// FormatElapsed renders a second count as MM:SS for session timers.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
