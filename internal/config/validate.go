package config

import (
	"fmt"
	"regexp"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateHeuristics(); err != nil {
		return err
	}
	return c.validateEscalation()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}

func (c *Config) validateScan() error {
	if c.Scan.MinFilesizeMB < 0 {
		return fmt.Errorf("scan.min_filesize_mb must not be negative, got %d", c.Scan.MinFilesizeMB)
	}
	return nil
}

func (c *Config) validateHeuristics() error {
	for _, pattern := range c.Heuristics.EpisodeExceptions {
		if _, err := regexp.Compile("(?i)" + pattern); err != nil {
			return fmt.Errorf("heuristics.episode_exceptions: invalid pattern %q: %w", pattern, err)
		}
	}
	return nil
}

func (c *Config) validateEscalation() error {
	switch c.Escalation.Mode {
	case EscalationSkip, EscalationAuto, EscalationInteractive:
		return nil
	default:
		return fmt.Errorf("escalation.mode must be skip, auto, or interactive, got %q", c.Escalation.Mode)
	}
}
