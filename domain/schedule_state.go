package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for ScheduleState
var (
	ErrEmptyStateUserID  = errors.New("schedule state user ID cannot be empty")
	ErrEmptyStateCardID  = errors.New("schedule state card ID cannot be empty")
	ErrInvalidInterval   = errors.New("interval must be greater than or equal to 0")
	ErrInvalidEaseFactor = errors.New("ease factor must be at least 1.3")
	ErrInvalidRepetition = errors.New("repetition count must be greater than or equal to 0")
)

// DefaultEaseFactor is the ease assigned to a card that has never been
// reviewed. Cards without a ScheduleState are treated as having this ease
// for prioritization purposes.
const DefaultEaseFactor = 2.5

// MinEaseFactor is the absolute floor for the ease factor.
const MinEaseFactor = 1.3

// ScheduleState tracks a learner's spaced repetition schedule for a single
// card. One state exists per (card, learner) pair; it is created on the
// first review and updated on every subsequent one. The engine never
// persists it itself - updated copies are handed back to the caller.
type ScheduleState struct {
	UserID       uuid.UUID `json:"user_id"`
	CardID       uuid.UUID `json:"card_id"`
	EaseFactor   float64   `json:"ease_factor"` // Lower-bounded at 1.3
	Interval     int       `json:"interval"`    // Current interval in days
	Repetitions  int       `json:"repetitions"` // Consecutive passes, reset on failure
	NextReviewAt time.Time `json:"next_review_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewScheduleState creates schedule state for a learner and card with
// default values. New cards are available for review immediately.
func NewScheduleState(userID, cardID uuid.UUID) (*ScheduleState, error) {
	now := time.Now().UTC()
	state := &ScheduleState{
		UserID:       userID,
		CardID:       cardID,
		EaseFactor:   DefaultEaseFactor,
		Interval:     0,
		Repetitions:  0,
		NextReviewAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := state.Validate(); err != nil {
		return nil, err
	}

	return state, nil
}

// Validate checks if the ScheduleState has valid data.
// Returns an error if any field fails validation.
func (s *ScheduleState) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrEmptyStateUserID
	}

	if s.CardID == uuid.Nil {
		return ErrEmptyStateCardID
	}

	if s.Interval < 0 {
		return ErrInvalidInterval
	}

	if s.Repetitions < 0 {
		return ErrInvalidRepetition
	}

	if s.EaseFactor < MinEaseFactor {
		return ErrInvalidEaseFactor
	}

	return nil
}

// IsDue reports whether the card is due for review at the given time.
// A card is due only if it has been reviewed before and its scheduled
// review instant has passed.
func (s *ScheduleState) IsDue(now time.Time) bool {
	if s == nil {
		return false
	}
	return !s.NextReviewAt.After(now)
}

// Clone returns a copy of the state. Schedule updates follow the
// immutable update pattern: the scheduler returns a new instance rather
// than mutating the one it was given.
func (s *ScheduleState) Clone() *ScheduleState {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}
