package srs

import (
	"errors"
	"log/slog"
	"time"

	"github.com/mnemoapp/mnemo-engine/domain"
)

// Common errors
var (
	ErrNilState = errors.New("schedule state cannot be nil")
)

// Service defines the scheduler operations consumed by a hosting
// application. For a card a learner has never seen, callers construct a
// fresh state with domain.NewScheduleState before submitting the first
// review; absence of persisted state is not an error here.
type Service interface {
	// CalculateNextReview computes new schedule state based on a review
	// grade. When tzName names a resolvable IANA zone, the next review
	// instant is renormalized to local midnight of its calendar day in
	// that zone; an unresolvable zone degrades gracefully to the
	// un-normalized instant. An empty tzName skips normalization.
	//
	// Returns ErrNilState for a nil prior state and
	// domain.ErrInvalidQualityGrade for grades outside 0-5.
	CalculateNextReview(
		prior *domain.ScheduleState,
		grade domain.QualityGrade,
		tzName string,
		now time.Time,
	) (*domain.ScheduleState, error)

	// Review computes the state that should actually be persisted for a
	// review, applying the practice write policy: when the review happens
	// outside review mode and the card is not yet due, only the ease
	// factor is updated - interval, repetitions and the next review
	// instant keep their prior values, so casual practice never disturbs
	// the standing schedule.
	Review(
		prior *domain.ScheduleState,
		grade domain.QualityGrade,
		reviewMode bool,
		tzName string,
		now time.Time,
	) (*domain.ScheduleState, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params   *Params
	midnight MidnightNormalizer
	logger   *slog.Logger
}

// NewDefaultService creates a scheduler service with default parameters,
// the standard timezone database and the default logger.
func NewDefaultService() Service {
	return NewService(NewDefaultParams(), nil, nil)
}

// NewServiceWithParams creates a scheduler service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return NewService(params, nil, nil)
}

// NewService creates a scheduler service with custom parameters, timezone
// normalizer and logger. Nil arguments fall back to defaults.
func NewService(params *Params, midnight MidnightNormalizer, logger *slog.Logger) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	if midnight == nil {
		midnight = NewLocationNormalizer()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &defaultService{
		params:   params,
		midnight: midnight,
		logger:   logger,
	}
}

// CalculateNextReview implements the Service interface.
func (s *defaultService) CalculateNextReview(
	prior *domain.ScheduleState,
	grade domain.QualityGrade,
	tzName string,
	now time.Time,
) (*domain.ScheduleState, error) {
	if prior == nil {
		return nil, ErrNilState
	}
	if err := grade.Validate(); err != nil {
		return nil, err
	}

	next := calculateNextState(prior, grade, now, s.params)

	if tzName != "" {
		normalized, err := s.midnight.NormalizeToLocalMidnight(next.NextReviewAt, tzName)
		if err != nil {
			// Non-fatal: keep the un-normalized instant.
			s.logger.Warn("failed to normalize next review to local midnight",
				"timezone", tzName,
				"card_id", prior.CardID,
				"error", err)
		} else {
			next.NextReviewAt = normalized
		}
	}

	return next, nil
}

// Review implements the Service interface.
func (s *defaultService) Review(
	prior *domain.ScheduleState,
	grade domain.QualityGrade,
	reviewMode bool,
	tzName string,
	now time.Time,
) (*domain.ScheduleState, error) {
	next, err := s.CalculateNextReview(prior, grade, tzName, now)
	if err != nil {
		return nil, err
	}

	// Scheduled reviews and reviews of already-due cards advance the full
	// schedule. Practicing a card ahead of schedule only refreshes the
	// ease factor.
	if reviewMode || prior.IsDue(now) {
		return next, nil
	}

	practiced := prior.Clone()
	practiced.EaseFactor = next.EaseFactor
	practiced.UpdatedAt = now
	return practiced, nil
}
