package domain

// QualityGrade is a discrete 0-5 measure of recall strength, derived
// automatically from the similarity between a typed answer and the
// expected answer rather than from user self-report.
type QualityGrade int

// The full grade scale, from complete blackout to perfect recall.
const (
	GradeBlackout QualityGrade = 0 // no meaningful overlap with the answer
	GradeWrong    QualityGrade = 1 // incorrect, faint resemblance
	GradeAlmost   QualityGrade = 2 // incorrect, but close
	GradeHard     QualityGrade = 3 // correct in substance, with difficulty
	GradeHesitant QualityGrade = 4 // correct after hesitation
	GradePerfect  QualityGrade = 5 // perfect response
)

// Validate checks that the grade is within the 0-5 scale.
func (g QualityGrade) Validate() error {
	if g < GradeBlackout || g > GradePerfect {
		return ErrInvalidQualityGrade
	}
	return nil
}

// IsCorrect reports whether the grade counts as a correct answer.
// Grades 4 and 5 are correct; everything below is a failure.
func (g QualityGrade) IsCorrect() bool {
	return g >= GradeHesitant
}

// IsPerfect reports whether the grade is a perfect response.
func (g QualityGrade) IsPerfect() bool {
	return g == GradePerfect
}
