package config

import (
	"errors"
	"fmt"
	"math"
)

const weightSumTolerance = 1e-9

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateWeights(); err != nil {
		return err
	}
	if err := c.validateEngine(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.IdentityDB == "" {
		return errors.New("paths.identity_db must be set")
	}
	return nil
}

func (c *Config) validateMatching() error {
	thresholds := map[string]float64{
		"matching.match_threshold":   c.Matching.MatchThreshold,
		"matching.name_threshold":    c.Matching.NameThreshold,
		"matching.address_threshold": c.Matching.AddressThreshold,
		"matching.email_threshold":   c.Matching.EmailThreshold,
		"matching.phone_threshold":   c.Matching.PhoneThreshold,
	}
	for key, value := range thresholds {
		if value < 0 || value > 1 {
			return fmt.Errorf("%s must be between 0 and 1", key)
		}
	}
	return nil
}

func (c *Config) validateWeights() error {
	weights := map[string]float64{
		"weights.name":    c.Weights.Name,
		"weights.address": c.Weights.Address,
		"weights.email":   c.Weights.Email,
		"weights.phone":   c.Weights.Phone,
	}
	sum := 0.0
	for key, value := range weights {
		if value < 0 {
			return fmt.Errorf("%s must not be negative", key)
		}
		sum += value
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("field weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}

func (c *Config) validateEngine() error {
	if c.Engine.Workers < 0 {
		return errors.New("engine.workers must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
