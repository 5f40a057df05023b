package srs

import "github.com/mnemoapp/mnemo-engine/domain"

// GradeScore derives a quality grade (0 to 5) from a fuzzy match score.
//
// Score map, evaluated highest-first:
//   - 5: perfect response (score >= 0.95)
//   - 4: correct after hesitation (score >= 0.80)
//   - 3: correct with significant difficulty (score >= 0.60)
//   - 2: incorrect, but close (score >= 0.40)
//   - 1: incorrect, faint resemblance (score >= 0.20)
//   - 0: complete blackout
func GradeScore(score float64) domain.QualityGrade {
	switch {
	case score >= 0.95:
		return domain.GradePerfect
	case score >= 0.80:
		return domain.GradeHesitant
	case score >= 0.60:
		return domain.GradeHard
	case score >= 0.40:
		return domain.GradeAlmost
	case score >= 0.20:
		return domain.GradeWrong
	default:
		return domain.GradeBlackout
	}
}
