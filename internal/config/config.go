package config

import (
	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for logging, terminal output and metrics.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Verbose enables debug logging of every grading step
	Verbose bool `env:"VERBOSE" env-default:"false" yaml:"verbose"`

	// NoColor disables styled terminal output
	NoColor Presence `env:"NO_COLOR" yaml:"noColor"`

	// FeedbackURL overrides the feedback form link printed after each grade
	FeedbackURL string `env:"FEEDBACK_URL" yaml:"feedbackUrl"`

	// Metrics contains grading metrics related configurations
	Metrics struct {
		// TextfilePath is the file grading metrics are written to; empty disables metrics
		TextfilePath string `env:"METRICS_TEXTFILE_PATH" yaml:"textfilePath"`
		// Namespace prefixes every metric name
		Namespace string `env:"METRICS_NAMESPACE" env-default:"unitgrader" yaml:"namespace"`
	} `yaml:"metrics"`
}

// Presence is a flag that is set by any non-empty environment value, following
// the NO_COLOR convention.
type Presence bool

// SetValue implements cleanenv.Setter.
func (p *Presence) SetValue(s string) error {
	*p = s != ""

	return nil
}

// Load receives the path for yaml config file and returns a filled Config struct.
// An empty path reads the configuration from environment variables only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, errors.Wrap(err, "could not read config from environment")
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, errors.Wrap(err, "could not read config")
	}

	return &cfg, nil
}
