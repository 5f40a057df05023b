package ordering

import (
	"math/rand"

	"github.com/mnemoapp/mnemo-engine/domain"
)

// refillThreshold is the queue length below which a fresh shuffle of the
// full card set is appended, so the endless queue never starves.
const refillThreshold = 3

// SeedEndless builds the initial endless-mode queue: a shuffle of the
// full card set.
func SeedEndless(fullSet []domain.Card, rng *rand.Rand) []domain.Card {
	return shuffled(fullSet, rng)
}

// AdvanceEndless pops the front card off an endless-mode queue after it
// has been answered and returns the new queue.
//
// If the answer was incorrect, the failed card is reinserted between 3
// and 5 positions from the new front (clamped to the queue length) so it
// resurfaces soon but not immediately, and not at a predictable spot.
// Whenever the queue drops below 3 cards, a fresh shuffle of the full set
// is appended. The input queue is never mutated.
func AdvanceEndless(
	queue []domain.Card,
	wasIncorrect bool,
	failed *domain.Card,
	fullSet []domain.Card,
	rng *rand.Rand,
) []domain.Card {
	if len(queue) == 0 {
		return SeedEndless(fullSet, rng)
	}

	next := make([]domain.Card, len(queue)-1)
	copy(next, queue[1:])

	if wasIncorrect && failed != nil {
		pos := refillThreshold + rng.Intn(3)
		if pos > len(next) {
			pos = len(next)
		}
		next = append(next, domain.Card{})
		copy(next[pos+1:], next[pos:])
		next[pos] = *failed
	}

	if len(next) < refillThreshold {
		next = append(next, shuffled(fullSet, rng)...)
	}

	return next
}
