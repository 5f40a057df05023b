package xp

import (
	"math"

	"github.com/mnemoapp/mnemo-engine/domain"
)

// XP awarded per review by outcome.
const (
	perfectReviewXP = 15
	correctReviewXP = 10
)

// ForGrade returns the XP awarded for a single graded review. Perfect
// recall earns 15, any other correct answer earns 10, and incorrect
// answers earn nothing.
func ForGrade(grade domain.QualityGrade) int {
	switch {
	case grade.IsPerfect():
		return perfectReviewXP
	case grade.IsCorrect():
		return correctReviewXP
	default:
		return 0
	}
}

// LevelInfo describes a learner's position on the level curve.
type LevelInfo struct {
	Level          int `json:"level"`
	CurrentXP      int `json:"current_xp"`        // XP earned within the current level
	XPForNextLevel int `json:"xp_for_next_level"` // XP needed to finish the current level
}

// CumulativeForLevel returns the total XP required to reach the given
// level. The curve is quadratic: advancing from level L to L+1 costs
// 100*L XP, so the cumulative cost of level L is 50*(L-1)*L.
func CumulativeForLevel(level int) int {
	return 50 * (level - 1) * level
}

// LevelFromXP derives level info from a total XP count by inverting the
// cumulative curve with the quadratic formula:
//
//	level = floor((1 + sqrt(1 + totalXP/12.5)) / 2)
//
// For every totalXP >= 0 the returned level is the largest L with
// CumulativeForLevel(L) <= totalXP, and CurrentXP is always within
// [0, XPForNextLevel).
func LevelFromXP(totalXP int) LevelInfo {
	level := int(math.Floor((1 + math.Sqrt(1+float64(totalXP)/12.5)) / 2))
	return LevelInfo{
		Level:          level,
		CurrentXP:      totalXP - CumulativeForLevel(level),
		XPForNextLevel: 100 * level,
	}
}

// levelTitles maps level thresholds to rank titles, highest first.
var levelTitles = []struct {
	threshold int
	title     string
}{
	{50, "Grandmaster"},
	{40, "Master"},
	{30, "Expert"},
	{20, "Scholar"},
	{10, "Apprentice"},
	{5, "Learner"},
	{1, "Novice"},
}

// TitleForLevel returns the rank title for a level. The first matching
// threshold wins; levels below 1 fall through to "Novice".
func TitleForLevel(level int) string {
	for _, t := range levelTitles {
		if level >= t.threshold {
			return t.title
		}
	}
	return "Novice"
}
