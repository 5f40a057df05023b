package srs

import (
	"math"
	"time"

	"github.com/mnemoapp/mnemo-engine/domain"
)

// calculateNewEaseFactor determines the new ease factor after a review.
//
// This is the unmodified SM-2 ease update:
//
//	EF' = EF + (0.1 - (5 - q) * (0.08 + (5 - q) * 0.02))
//
// applied regardless of whether the review passed or failed. A grade of 5
// raises the ease by 0.1; lower grades pull it down progressively harder.
// The result is floored at params.MinEaseFactor and rounded to three
// decimals; there is no upper bound.
func calculateNewEaseFactor(currentEF float64, grade domain.QualityGrade, params *Params) float64 {
	q := float64(grade)
	newEF := currentEF + (0.1 - (5-q)*(0.08+(5-q)*0.02))

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	// Round to 0.001 resolution so persisted ease factors stay stable
	// across repeated read/update cycles.
	return math.Round(newEF*1000) / 1000
}

// calculateNewRepetitions determines the repetition count after a review.
// A failing grade (below 3) resets the count to zero; a passing grade
// increments it.
func calculateNewRepetitions(priorRepetitions int, grade domain.QualityGrade) int {
	if grade < domain.GradeHard {
		return 0
	}
	return priorRepetitions + 1
}

// calculateNewInterval determines the next interval in days.
//
// A failing grade resets the interval to params.FailureInterval. A passing
// grade indexes the fixed step schedule by the new repetition count,
// capping at the final step. This deliberately replaces SM-2's exponential
// growth with a capped step schedule: retention intervals never exceed the
// last step (28 days by default).
func calculateNewInterval(newRepetitions int, grade domain.QualityGrade, params *Params) int {
	if grade < domain.GradeHard {
		return params.FailureInterval
	}

	stepIndex := newRepetitions - 1
	if last := len(params.IntervalSteps) - 1; stepIndex > last {
		stepIndex = last
	}
	return params.IntervalSteps[stepIndex]
}

// calculateNextState creates a new ScheduleState with updated values based
// on the review grade. It follows the immutable update pattern: the prior
// state is never modified.
//
// The next review instant is now plus the new interval. Timezone
// normalization to local midnight is layered on top by the service, not
// here, so the core algorithm stays a pure function of its inputs.
func calculateNextState(
	prior *domain.ScheduleState,
	grade domain.QualityGrade,
	now time.Time,
	params *Params,
) *domain.ScheduleState {
	next := prior.Clone()

	next.EaseFactor = calculateNewEaseFactor(prior.EaseFactor, grade, params)
	next.Repetitions = calculateNewRepetitions(prior.Repetitions, grade)
	next.Interval = calculateNewInterval(next.Repetitions, grade, params)
	next.NextReviewAt = now.AddDate(0, 0, next.Interval)
	next.UpdatedAt = now

	return next
}
