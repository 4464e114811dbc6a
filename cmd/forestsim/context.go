package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"forestsim/internal/config"
	"forestsim/internal/forest"
)

type rootFlags struct {
	configPath string
	dataDir    string
	csvDir     string
	logLevel   string
}

type commandContext struct {
	flags *rootFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) configPath() string {
	if c.flags == nil {
		return ""
	}
	return strings.TrimSpace(c.flags.configPath)
}

// ensureConfig loads the configuration once and applies command-line
// overrides on top of file and environment values.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyFlags(cfg); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyFlags(cfg *config.Config) error {
	if c.flags == nil {
		return nil
	}
	if dir := strings.TrimSpace(c.flags.dataDir); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return fmt.Errorf("data dir: %w", err)
		}
		cfg.Paths.DataDir = expanded
	}
	if dir := strings.TrimSpace(c.flags.csvDir); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return fmt.Errorf("csv dir: %w", err)
		}
		cfg.Paths.CSVDir = expanded
	}
	if level := strings.TrimSpace(c.flags.logLevel); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func simulationRanges(cfg *config.Config) forest.Ranges {
	sim := cfg.Simulation
	return forest.Ranges{
		MinPlantingYear:    sim.MinPlantingYear,
		ReplantWindowYears: sim.ReplantWindowYears,
		MinHeight:          sim.MinHeight,
		MaxHeight:          sim.MaxHeight,
		MinGrowthRate:      sim.MinGrowthRate,
		MaxGrowthRate:      sim.MaxGrowthRate,
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
