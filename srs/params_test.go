package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultParams(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams()

	assert.Equal(t, 1.3, params.MinEaseFactor)
	assert.Equal(t, []int{1, 2, 5, 7, 14, 28}, params.IntervalSteps)
	assert.Equal(t, 1, params.FailureInterval)
}

func TestNewParams(t *testing.T) {
	t.Parallel()

	t.Run("zero config keeps defaults", func(t *testing.T) {
		params := NewParams(ParamsConfig{})
		assert.Equal(t, NewDefaultParams(), params)
	})

	t.Run("overrides apply", func(t *testing.T) {
		params := NewParams(ParamsConfig{
			MinEaseFactor:   1.5,
			IntervalSteps:   []int{1, 3, 9},
			FailureInterval: 2,
		})

		assert.Equal(t, 1.5, params.MinEaseFactor)
		assert.Equal(t, []int{1, 3, 9}, params.IntervalSteps)
		assert.Equal(t, 2, params.FailureInterval)
	})
}
