package ecm

import (
	"fmt"

	"github.com/Caqil/lenstra-ecm/internal/validation"
)

// Strategy selects how a trial multiplies the base point
type Strategy int

const (
	// StrategyRepeatedAddition adds the base point to the working point
	// 0 + 1 + ... + (Bound-1) times, checking every addition
	StrategyRepeatedAddition Strategy = iota

	// StrategyScalarMult multiplies the working point by every prime power
	// <= Bound using double-and-add
	StrategyScalarMult
)

func (s Strategy) String() string {
	switch s {
	case StrategyRepeatedAddition:
		return "repeated-addition"
	case StrategyScalarMult:
		return "scalar-mult"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Config holds search configuration
type Config struct {
	// Bound is the smoothness bound B
	Bound int

	// Trials is the number of curves K to try
	Trials int

	// Strategy selects the point multiplication
	Strategy Strategy

	// Workers is the number of goroutines running trials
	Workers int

	// Seed makes the curve choices reproducible when set. With more than
	// one worker the factor found may still vary between runs.
	Seed []byte
}

// DefaultConfig returns a configuration suited to factors of a few digits
func DefaultConfig() *Config {
	return &Config{
		Bound:    100,
		Trials:   50,
		Strategy: StrategyScalarMult,
		Workers:  1,
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if err := validation.ValidatePositive(c.Bound); err != nil {
		return fmt.Errorf("%w: bound: %w", ErrInvalidConfig, err)
	}
	if err := validation.ValidatePositive(c.Trials); err != nil {
		return fmt.Errorf("%w: trials: %w", ErrInvalidConfig, err)
	}
	if err := validation.ValidatePositive(c.Workers); err != nil {
		return fmt.Errorf("%w: workers: %w", ErrInvalidConfig, err)
	}
	if c.Strategy != StrategyRepeatedAddition && c.Strategy != StrategyScalarMult {
		return fmt.Errorf("%w: unknown strategy %v", ErrInvalidConfig, c.Strategy)
	}
	return nil
}
