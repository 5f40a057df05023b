package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	t.Parallel()

	deckID := uuid.New()
	card, err := NewCard(deckID, "Mitochondria", "The powerhouse of the cell")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, card.ID)
	assert.Equal(t, deckID, card.DeckID)
	assert.Equal(t, "Mitochondria", card.Front)
	assert.Equal(t, "The powerhouse of the cell", card.Back)
	assert.False(t, card.CreatedAt.IsZero())
	assert.False(t, card.UpdatedAt.IsZero())
}

func TestCardValidate(t *testing.T) {
	t.Parallel()

	valid := Card{
		ID:     uuid.New(),
		DeckID: uuid.New(),
		Front:  "front",
		Back:   "back",
	}

	testCases := []struct {
		name     string
		mutate   func(c *Card)
		expected error
	}{
		{
			name:     "valid card",
			mutate:   func(c *Card) {},
			expected: nil,
		},
		{
			name:     "missing ID",
			mutate:   func(c *Card) { c.ID = uuid.Nil },
			expected: ErrCardIDEmpty,
		},
		{
			name:     "missing deck ID",
			mutate:   func(c *Card) { c.DeckID = uuid.Nil },
			expected: ErrCardDeckIDEmpty,
		},
		{
			name:     "empty front",
			mutate:   func(c *Card) { c.Front = "" },
			expected: ErrCardFrontEmpty,
		},
		{
			name:     "empty back",
			mutate:   func(c *Card) { c.Back = "" },
			expected: ErrCardBackEmpty,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			card := valid
			tc.mutate(&card)

			err := card.Validate()
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}

func TestNewCardRejectsEmptyContent(t *testing.T) {
	t.Parallel()

	_, err := NewCard(uuid.New(), "", "back")
	assert.ErrorIs(t, err, ErrCardFrontEmpty)

	_, err = NewCard(uuid.New(), "front", "")
	assert.ErrorIs(t, err, ErrCardBackEmpty)
}
