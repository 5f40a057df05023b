package ordering

import (
	"math/rand"

	"github.com/mnemoapp/mnemo-engine/domain"
)

// shuffled returns a new slice with the cards in uniformly random order.
// The input slice is never mutated.
func shuffled(cards []domain.Card, rng *rand.Rand) []domain.Card {
	out := make([]domain.Card, len(cards))
	copy(out, cards)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
