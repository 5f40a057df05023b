package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-engine/domain"
)

// Snapshot errors
var (
	// ErrSnapshotMismatch is returned when a saved session no longer
	// matches the current card set. The caller should abandon the
	// snapshot and start a fresh session.
	ErrSnapshotMismatch = errors.New("saved session does not match current card set")

	// ErrSnapshotEmpty is returned when an endless snapshot restores to
	// an empty queue because none of its cards still exist.
	ErrSnapshotEmpty = errors.New("saved session contains no known cards")
)

// Snapshot is the serialized form of an interrupted classic session:
// the machine's state tag plus the context, with cards reduced to their
// IDs. The hosting application decides where snapshots live.
type Snapshot struct {
	State            State       `json:"state"`
	SessionID        uuid.UUID   `json:"session_id"`
	CurrentIndex     int         `json:"current_index"`
	Lives            int         `json:"lives"`
	Score            int         `json:"score"`
	CorrectAnswers   int         `json:"correct_answers"`
	IncorrectAnswers int         `json:"incorrect_answers"`
	Status           Status      `json:"status"`
	CardIDs          []uuid.UUID `json:"card_ids"`
}

// Save serializes a session for later resumption.
func Save(state State, ctx Context) ([]byte, error) {
	if !state.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidState, state)
	}

	snap := Snapshot{
		State:            state,
		SessionID:        ctx.SessionID,
		CurrentIndex:     ctx.CurrentIndex,
		Lives:            ctx.Lives,
		Score:            ctx.Score,
		CorrectAnswers:   ctx.CorrectAnswers,
		IncorrectAnswers: ctx.IncorrectAnswers,
		Status:           ctx.Status,
		CardIDs:          make([]uuid.UUID, 0, len(ctx.Cards)),
	}
	for _, card := range ctx.Cards {
		snap.CardIDs = append(snap.CardIDs, card.ID)
	}

	return json.Marshal(snap)
}

// Restore reconstructs a session from a snapshot, restoring it to exactly
// the state it was saved in. The snapshot is only accepted when the card
// set is unchanged in cardinality; otherwise ErrSnapshotMismatch is
// returned and the caller starts fresh.
func Restore(data []byte, cards []domain.Card) (State, Context, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return "", Context{}, fmt.Errorf("failed to decode session snapshot: %w", err)
	}

	if !snap.State.valid() {
		return "", Context{}, fmt.Errorf("%w: %q", ErrInvalidState, snap.State)
	}

	if len(snap.CardIDs) != len(cards) {
		return "", Context{}, ErrSnapshotMismatch
	}

	ctx := Context{
		SessionID:        snap.SessionID,
		Cards:            cards,
		CurrentIndex:     snap.CurrentIndex,
		Lives:            snap.Lives,
		Score:            snap.Score,
		CorrectAnswers:   snap.CorrectAnswers,
		IncorrectAnswers: snap.IncorrectAnswers,
		Status:           snap.Status,
	}

	return snap.State, ctx, nil
}
