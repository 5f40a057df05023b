package domain

import "errors"

// Common domain errors used across the engine.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidQualityGrade is returned when a quality grade is outside
	// the 0-5 range. Callers must not rely on clamping; every policy
	// table downstream is indexed by the 0-5 set.
	ErrInvalidQualityGrade = errors.New("quality grade must be between 0 and 5")

	// ErrEmptyContent is returned when required card content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")
)
