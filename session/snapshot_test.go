package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewDefaultMachine()
	cards := makeCards(t, 4)
	state, ctx := m.Start(cards)

	// Play partway into the session.
	state, ctx, err := m.Transition(state, ctx, SubmitAnswer{Correct: true, Perfect: true})
	require.NoError(t, err)
	state, ctx, err = m.Transition(state, ctx, NextCard{})
	require.NoError(t, err)
	state, ctx, err = m.Transition(state, ctx, SubmitAnswer{Correct: false})
	require.NoError(t, err)

	data, err := Save(state, ctx)
	require.NoError(t, err)

	restoredState, restored, err := Restore(data, cards)
	require.NoError(t, err)

	assert.Equal(t, state, restoredState)
	assert.Equal(t, ctx.SessionID, restored.SessionID)
	assert.Equal(t, ctx.CurrentIndex, restored.CurrentIndex)
	assert.Equal(t, ctx.Lives, restored.Lives)
	assert.Equal(t, ctx.Score, restored.Score)
	assert.Equal(t, ctx.CorrectAnswers, restored.CorrectAnswers)
	assert.Equal(t, ctx.IncorrectAnswers, restored.IncorrectAnswers)
	assert.Equal(t, ctx.Status, restored.Status)
	require.Len(t, restored.Cards, len(cards))

	// The restored session keeps playing from where it left off.
	restoredState, restored, err = m.Transition(restoredState, restored, NextCard{})
	require.NoError(t, err)
	assert.Equal(t, StateQuestion, restoredState)
	assert.Equal(t, 2, restored.CurrentIndex)
}

func TestRestoreRejectsChangedCardSet(t *testing.T) {
	t.Parallel()

	m := NewDefaultMachine()
	cards := makeCards(t, 4)
	state, ctx := m.Start(cards)

	data, err := Save(state, ctx)
	require.NoError(t, err)

	// The deck gained a card since the snapshot was taken.
	_, _, err = Restore(data, makeCards(t, 5))
	assert.ErrorIs(t, err, ErrSnapshotMismatch)
}

func TestRestoreRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, _, err := Restore([]byte("{not json"), makeCards(t, 1))
	assert.Error(t, err)

	_, _, err = Restore([]byte(`{"state":"limbo","card_ids":[]}`), nil)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSaveRejectsInvalidState(t *testing.T) {
	t.Parallel()

	_, err := Save(State("limbo"), Context{})
	assert.ErrorIs(t, err, ErrInvalidState)
}
