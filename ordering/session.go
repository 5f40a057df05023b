package ordering

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-engine/domain"
)

// BuildSession produces the ordered card sequence presented to a classic
// or review-mode study session.
//
// When dueOnly is true (review mode), only due cards are kept: a card is
// due if it has schedule state and its next review instant has passed.
// Cards are then grouped into ease bands at 0.1 resolution, bands are
// ordered ascending so the hardest cards come first, and each band is
// shuffled so similar-difficulty cards never appear in a predictable
// order. Cards with no schedule state band at the default ease of 2.5.
//
// The result may be empty; in review mode that means the learner is all
// caught up.
func BuildSession(
	cards []domain.Card,
	states map[uuid.UUID]*domain.ScheduleState,
	dueOnly bool,
	now time.Time,
	rng *rand.Rand,
) []domain.Card {
	bands := make(map[int][]domain.Card)

	for _, card := range cards {
		state := states[card.ID]
		if dueOnly && !state.IsDue(now) {
			continue
		}

		ease := domain.DefaultEaseFactor
		if state != nil {
			ease = state.EaseFactor
		}

		key := int(math.Round(ease * 10))
		bands[key] = append(bands[key], card)
	}

	keys := make([]int, 0, len(bands))
	for key := range bands {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	ordered := make([]domain.Card, 0, len(cards))
	for _, key := range keys {
		ordered = append(ordered, shuffled(bands[key], rng)...)
	}

	return ordered
}
