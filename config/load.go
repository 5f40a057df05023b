package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional config file and environment
// variables, layered over built-in defaults. Environment variables use
// the MNEMO_ prefix with underscores for nesting (e.g.
// MNEMO_SESSION_LIVES=3) and take precedence over file values.
//
// configFile may be empty, in which case only defaults and environment
// variables apply. Returns a populated Config or an error if loading or
// validation fails.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configFile, err)
		}
	}

	v.SetEnvPrefix("MNEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults installs the defaults that reproduce the standard engine
// behavior: the capped SM-2 step schedule and the 5-lives scoring rules.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("srs.min_ease_factor", 1.3)
	v.SetDefault("srs.interval_steps", []int{1, 2, 5, 7, 14, 28})
	v.SetDefault("srs.failure_interval", 1)

	v.SetDefault("session.lives", 5)
	v.SetDefault("session.perfect_score", 10)
	v.SetDefault("session.correct_score", 5)
}

// validate checks the loaded configuration against the struct's
// validation tags and reports all failing fields.
func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return fmt.Errorf("configuration validation failed: %w", err)
		}

		var fields []string
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields = append(fields, fe.Namespace())
			}
		}
		return fmt.Errorf("invalid configuration values: %s", strings.Join(fields, ", "))
	}
	return nil
}
