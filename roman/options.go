package roman

import (
	"fmt"

	"github.com/erraggy/convkit/convkiterrors"
)

// Option is a function that configures a parse operation.
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (must be set, but may be empty)
	input *string

	policy Policy
	logger Logger
}

// ParseWithOptions parses a numeral using functional options.
//
// Example:
//
//	result, err := roman.ParseWithOptions(
//	    roman.WithInput("MCMXCIV"),
//	    roman.WithPolicy(roman.PolicyStrict),
//	)
func ParseWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("roman: invalid options: %w", err)
	}

	p := &Parser{
		Policy: cfg.policy,
		Logger: cfg.logger,
	}
	return p.ParseResult(*cfg.input)
}

// WithInput specifies the numeral to parse. An empty string is accepted
// here and reported by the parse itself.
func WithInput(s string) Option {
	return func(cfg *parseConfig) error {
		cfg.input = &s
		return nil
	}
}

// WithPolicy selects the grammar policy.
func WithPolicy(p Policy) Option {
	return func(cfg *parseConfig) error {
		if !p.valid() {
			return &convkiterrors.ConfigError{Option: "policy", Value: int(p), Message: "unknown grammar policy"}
		}
		cfg.policy = p
		return nil
	}
}

// WithStrict is shorthand for WithPolicy(PolicyStrict) when strict is true
// and WithPolicy(PolicyPermissive) otherwise.
func WithStrict(strict bool) Option {
	if strict {
		return WithPolicy(PolicyStrict)
	}
	return WithPolicy(PolicyPermissive)
}

// WithLogger sets the logger for debug diagnostics.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		policy: PolicyPermissive,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.input == nil {
		return nil, &convkiterrors.ConfigError{Option: "input", Message: "must specify an input numeral via WithInput"}
	}

	return cfg, nil
}
