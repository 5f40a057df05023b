package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndlessRecordAnswer(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	ctx := NewEndlessContext(makeCards(t, 5))

	ctx = ctx.RecordAnswer(true, true, rules)
	assert.Equal(t, 10, ctx.Score)
	assert.Equal(t, 1, ctx.CorrectAnswers)
	assert.Equal(t, 1, ctx.TotalCardsSeen)

	ctx = ctx.RecordAnswer(true, false, rules)
	assert.Equal(t, 15, ctx.Score)

	// Wrong answers dock three points instead of costing a life.
	ctx = ctx.RecordAnswer(false, false, rules)
	assert.Equal(t, 12, ctx.Score)
	assert.Equal(t, 1, ctx.IncorrectAnswers)
	assert.Equal(t, 3, ctx.TotalCardsSeen)
}

func TestEndlessScoreFlooredAtZero(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	ctx := NewEndlessContext(makeCards(t, 3))

	ctx = ctx.RecordAnswer(false, false, rules)
	ctx = ctx.RecordAnswer(false, false, rules)
	assert.Equal(t, 0, ctx.Score)
}

func TestEndlessCurrentCard(t *testing.T) {
	t.Parallel()

	cards := makeCards(t, 3)
	ctx := NewEndlessContext(cards)

	current := ctx.CurrentCard()
	require.NotNil(t, current)
	assert.Equal(t, cards[0].ID, current.ID)

	empty := NewEndlessContext(nil)
	assert.Nil(t, empty.CurrentCard())
}

func TestEndlessSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	cards := makeCards(t, 6)
	rules := DefaultRules()

	ctx := NewEndlessContext(cards)
	ctx = ctx.RecordAnswer(true, true, rules)
	ctx = ctx.RecordAnswer(false, false, rules)
	ctx.ElapsedSeconds = 95

	data, err := SaveEndless(ctx)
	require.NoError(t, err)

	restored, err := RestoreEndless(data, cards)
	require.NoError(t, err)

	assert.Equal(t, ctx.SessionID, restored.SessionID)
	assert.Equal(t, ctx.Score, restored.Score)
	assert.Equal(t, ctx.CorrectAnswers, restored.CorrectAnswers)
	assert.Equal(t, ctx.IncorrectAnswers, restored.IncorrectAnswers)
	assert.Equal(t, ctx.TotalCardsSeen, restored.TotalCardsSeen)
	assert.Equal(t, ctx.ElapsedSeconds, restored.ElapsedSeconds)
	require.Len(t, restored.Queue, len(ctx.Queue))
	for i := range ctx.Queue {
		assert.Equal(t, ctx.Queue[i].ID, restored.Queue[i].ID)
	}
}

func TestEndlessRestoreDropsDeletedCards(t *testing.T) {
	t.Parallel()

	cards := makeCards(t, 5)
	ctx := NewEndlessContext(cards)

	data, err := SaveEndless(ctx)
	require.NoError(t, err)

	// Two cards were deleted from the deck since the snapshot.
	restored, err := RestoreEndless(data, cards[:3])
	require.NoError(t, err)

	assert.Len(t, restored.Queue, 3)
	for _, card := range restored.Queue {
		assert.Contains(t, []string{cards[0].ID.String(), cards[1].ID.String(), cards[2].ID.String()}, card.ID.String())
	}
}

func TestEndlessRestoreAbandonsWhenNoCardsSurvive(t *testing.T) {
	t.Parallel()

	ctx := NewEndlessContext(makeCards(t, 4))

	data, err := SaveEndless(ctx)
	require.NoError(t, err)

	// An entirely different deck: nothing survives, start fresh.
	_, err = RestoreEndless(data, makeCards(t, 4))
	assert.ErrorIs(t, err, ErrSnapshotEmpty)
}
