package session

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-engine/domain"
)

// endlessMissPenalty is the score docked for a wrong answer in endless
// mode. Endless sessions have no lives; losing points is the stake.
const endlessMissPenalty = 3

// EndlessContext carries the running state of an endless practice
// session: the adaptive card queue plus score, counters and elapsed time.
// Queue maintenance itself lives in the ordering package.
type EndlessContext struct {
	SessionID        uuid.UUID     `json:"session_id"`
	Queue            []domain.Card `json:"-"`
	Score            int           `json:"score"`
	CorrectAnswers   int           `json:"correct_answers"`
	IncorrectAnswers int           `json:"incorrect_answers"`
	TotalCardsSeen   int           `json:"total_cards_seen"`
	ElapsedSeconds   int           `json:"elapsed_seconds"`
}

// NewEndlessContext creates the context for a new endless session over a
// seeded queue.
func NewEndlessContext(queue []domain.Card) EndlessContext {
	return EndlessContext{
		SessionID: uuid.New(),
		Queue:     queue,
	}
}

// CurrentCard returns the card at the front of the queue, or nil when the
// queue is empty.
func (c EndlessContext) CurrentCard() *domain.Card {
	if len(c.Queue) == 0 {
		return nil
	}
	return &c.Queue[0]
}

// RecordAnswer folds a graded answer into the running totals and returns
// the updated context. Correct answers score like classic mode; wrong
// answers cost points instead of lives, floored at zero.
func (c EndlessContext) RecordAnswer(correct, perfect bool, rules Rules) EndlessContext {
	c.TotalCardsSeen++

	if correct {
		if perfect {
			c.Score += rules.PerfectScore
		} else {
			c.Score += rules.CorrectScore
		}
		c.CorrectAnswers++
		return c
	}

	c.Score -= endlessMissPenalty
	if c.Score < 0 {
		c.Score = 0
	}
	c.IncorrectAnswers++
	return c
}

// Accuracy returns the fraction of answered cards that were correct.
func (c EndlessContext) Accuracy() float64 {
	total := c.CorrectAnswers + c.IncorrectAnswers
	if total == 0 {
		return 0
	}
	return float64(c.CorrectAnswers) / float64(total)
}

// endlessSnapshot is the serialized form of an endless session, with the
// queue reduced to card IDs.
type endlessSnapshot struct {
	SessionID        uuid.UUID   `json:"session_id"`
	QueueIDs         []uuid.UUID `json:"queue_ids"`
	Score            int         `json:"score"`
	CorrectAnswers   int         `json:"correct_answers"`
	IncorrectAnswers int         `json:"incorrect_answers"`
	TotalCardsSeen   int         `json:"total_cards_seen"`
	ElapsedSeconds   int         `json:"elapsed_seconds"`
}

// SaveEndless serializes an endless session for later resumption.
func SaveEndless(ctx EndlessContext) ([]byte, error) {
	snap := endlessSnapshot{
		SessionID:        ctx.SessionID,
		QueueIDs:         make([]uuid.UUID, 0, len(ctx.Queue)),
		Score:            ctx.Score,
		CorrectAnswers:   ctx.CorrectAnswers,
		IncorrectAnswers: ctx.IncorrectAnswers,
		TotalCardsSeen:   ctx.TotalCardsSeen,
		ElapsedSeconds:   ctx.ElapsedSeconds,
	}
	for _, card := range ctx.Queue {
		snap.QueueIDs = append(snap.QueueIDs, card.ID)
	}

	return json.Marshal(snap)
}

// RestoreEndless reconstructs an endless session from a snapshot against
// the deck's current card set. Queue entries whose cards no longer exist
// are dropped; if none survive, ErrSnapshotEmpty is returned and the
// caller reseeds a fresh queue.
func RestoreEndless(data []byte, cards []domain.Card) (EndlessContext, error) {
	var snap endlessSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return EndlessContext{}, fmt.Errorf("failed to decode endless snapshot: %w", err)
	}

	byID := make(map[uuid.UUID]domain.Card, len(cards))
	for _, card := range cards {
		byID[card.ID] = card
	}

	queue := make([]domain.Card, 0, len(snap.QueueIDs))
	for _, id := range snap.QueueIDs {
		if card, ok := byID[id]; ok {
			queue = append(queue, card)
		}
	}

	if len(queue) == 0 {
		return EndlessContext{}, ErrSnapshotEmpty
	}

	return EndlessContext{
		SessionID:        snap.SessionID,
		Queue:            queue,
		Score:            snap.Score,
		CorrectAnswers:   snap.CorrectAnswers,
		IncorrectAnswers: snap.IncorrectAnswers,
		TotalCardsSeen:   snap.TotalCardsSeen,
		ElapsedSeconds:   snap.ElapsedSeconds,
	}, nil
}
