package ordering

import (
	"math/rand"
	"testing"

	"github.com/mnemoapp/mnemo-engine/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedEndless(t *testing.T) {
	t.Parallel()

	fullSet := makeCards(t, 8)
	queue := SeedEndless(fullSet, rand.New(rand.NewSource(3)))

	require.Len(t, queue, len(fullSet))

	seen := map[string]bool{}
	for _, card := range queue {
		seen[card.ID.String()] = true
	}
	assert.Len(t, seen, len(fullSet), "seeded queue must contain every card exactly once")
}

func TestAdvanceEndlessPopsFrontOnCorrect(t *testing.T) {
	t.Parallel()

	fullSet := makeCards(t, 10)
	queue := SeedEndless(fullSet, rand.New(rand.NewSource(3)))
	front := queue[0]

	next := AdvanceEndless(queue, false, nil, fullSet, rand.New(rand.NewSource(4)))

	assert.Len(t, next, len(queue)-1)
	assert.NotEqual(t, front.ID, next[0].ID)
}

func TestAdvanceEndlessReinsertsFailedCardSoon(t *testing.T) {
	t.Parallel()

	fullSet := makeCards(t, 10)

	for seed := int64(0); seed < 20; seed++ {
		queue := SeedEndless(fullSet, rand.New(rand.NewSource(seed)))
		failed := queue[0]

		next := AdvanceEndless(queue, true, &failed, fullSet, rand.New(rand.NewSource(seed)))

		require.Len(t, next, len(queue), "pop plus reinsert keeps the length")

		pos := -1
		for i, card := range next {
			if card.ID == failed.ID {
				pos = i
				break
			}
		}
		require.NotEqual(t, -1, pos, "failed card must be back in the queue")
		assert.GreaterOrEqual(t, pos, 3, "seed %d: failed card must not resurface immediately", seed)
		assert.LessOrEqual(t, pos, 5, "seed %d: failed card must resurface soon", seed)
	}
}

func TestAdvanceEndlessClampsReinsertToQueueLength(t *testing.T) {
	t.Parallel()

	fullSet := makeCards(t, 10)
	// A three-card queue: after the pop only two cards remain, so every
	// legal insert position exceeds the length and clamps to the tail.
	queue := fullSet[:3]
	failed := queue[0]

	next := AdvanceEndless(queue, true, &failed, fullSet, rand.New(rand.NewSource(9)))

	require.Len(t, next, 3)
	assert.Equal(t, failed.ID, next[2].ID, "clamped reinsert lands at the tail")
}

func TestAdvanceEndlessRefillsBeforeStarving(t *testing.T) {
	t.Parallel()

	fullSet := makeCards(t, 6)
	rng := rand.New(rand.NewSource(11))

	queue := SeedEndless(fullSet, rng)
	for i := 0; i < 100; i++ {
		wasIncorrect := i%3 == 0
		var failed *domain.Card
		if wasIncorrect {
			failed = &queue[0]
		}

		queue = AdvanceEndless(queue, wasIncorrect, failed, fullSet, rng)
		assert.GreaterOrEqual(t, len(queue), 3, "queue starved after %d advances", i+1)
	}
}

func TestAdvanceEndlessReseedsEmptyQueue(t *testing.T) {
	t.Parallel()

	fullSet := makeCards(t, 5)
	next := AdvanceEndless(nil, false, nil, fullSet, rand.New(rand.NewSource(2)))

	assert.Len(t, next, len(fullSet))
}
