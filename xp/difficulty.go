package xp

// DifficultyLabel maps a card's ease factor to a human-readable
// difficulty bucket for display. Lower ease means the learner has been
// struggling with the card.
func DifficultyLabel(easeFactor float64) string {
	switch {
	case easeFactor <= 1.5:
		return "Very Hard"
	case easeFactor <= 1.8:
		return "Hard"
	case easeFactor <= 2.2:
		return "Medium"
	case easeFactor <= 2.5:
		return "Easy"
	default:
		return "Mastered"
	}
}
