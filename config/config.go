package config

import (
	"github.com/mnemoapp/mnemo-engine/session"
	"github.com/mnemoapp/mnemo-engine/srs"
)

// Config holds all engine configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
	SRS     SRSConfig     `mapstructure:"srs" validate:"required"`
	Session SessionConfig `mapstructure:"session" validate:"required"`
}

// LoggingConfig contains logging-related settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// SRSConfig contains the scheduler tunables. The defaults reproduce the
// standard algorithm; hosts only override these for experimentation.
type SRSConfig struct {
	MinEaseFactor   float64 `mapstructure:"min_ease_factor" validate:"required,gt=1,lte=2.5"`
	IntervalSteps   []int   `mapstructure:"interval_steps" validate:"required,min=1,dive,gt=0"`
	FailureInterval int     `mapstructure:"failure_interval" validate:"required,gt=0"`
}

// SessionConfig contains the classic-mode session tunables.
type SessionConfig struct {
	Lives        int `mapstructure:"lives" validate:"required,gt=0,lte=10"`
	PerfectScore int `mapstructure:"perfect_score" validate:"required,gt=0"`
	CorrectScore int `mapstructure:"correct_score" validate:"required,gt=0"`
}

// SRSParams converts the SRS settings into scheduler parameters.
func (c *Config) SRSParams() *srs.Params {
	return srs.NewParams(srs.ParamsConfig{
		MinEaseFactor:   c.SRS.MinEaseFactor,
		IntervalSteps:   c.SRS.IntervalSteps,
		FailureInterval: c.SRS.FailureInterval,
	})
}

// SessionRules converts the session settings into machine rules.
func (c *Config) SessionRules() session.Rules {
	return session.Rules{
		Lives:        c.Session.Lives,
		PerfectScore: c.Session.PerfectScore,
		CorrectScore: c.Session.CorrectScore,
	}
}
