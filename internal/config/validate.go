package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateSimulation(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

func (c *Config) validateSimulation() error {
	s := c.Simulation
	if year := time.Now().Year(); s.MinPlantingYear > year {
		return fmt.Errorf("simulation.min_planting_year %d is after the current year %d", s.MinPlantingYear, year)
	}
	if s.ReplantWindowYears < 0 {
		return errors.New("simulation.replant_window_years must not be negative")
	}
	if s.MinHeight < 0 {
		return errors.New("simulation.min_height must not be negative")
	}
	if s.MaxHeight <= s.MinHeight {
		return errors.New("simulation.max_height must be greater than simulation.min_height")
	}
	if s.MinGrowthRate < 0 {
		return errors.New("simulation.min_growth_rate must not be negative")
	}
	if s.MaxGrowthRate <= s.MinGrowthRate {
		return errors.New("simulation.max_growth_rate must be greater than simulation.min_growth_rate")
	}
	return nil
}
