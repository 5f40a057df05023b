package srs

import "github.com/mnemoapp/mnemo-engine/domain"

// Params defines all configurable parameters for the scheduler.
type Params struct {
	// MinEaseFactor is the absolute floor for the ease factor. There is
	// no ceiling.
	MinEaseFactor float64

	// IntervalSteps is the fixed interval progression in days, indexed by
	// repetition count and capped at the final step.
	IntervalSteps []int

	// FailureInterval is the interval in days assigned when a review
	// fails (grade below 3).
	FailureInterval int
}

// ParamsConfig allows overriding the default parameters when creating a
// new Params instance.
type ParamsConfig struct {
	MinEaseFactor   float64
	IntervalSteps   []int
	FailureInterval int
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor: domain.MinEaseFactor,

		// Fixed interval schedule, capped at 28 days.
		IntervalSteps: []int{1, 2, 5, 7, 14, 28},

		// Failed cards come back the next day.
		FailureInterval: 1,
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero-valued fields keep their defaults.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if len(config.IntervalSteps) > 0 {
		params.IntervalSteps = config.IntervalSteps
	}
	if config.FailureInterval > 0 {
		params.FailureInterval = config.FailureInterval
	}

	return params
}
