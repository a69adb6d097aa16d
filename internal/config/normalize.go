package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeHeuristics()
	c.normalizeEscalation()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeHeuristics() {
	patterns := make([]string, 0, len(c.Heuristics.EpisodeExceptions))
	for _, pattern := range c.Heuristics.EpisodeExceptions {
		trimmed := strings.TrimSpace(pattern)
		if trimmed == "" {
			continue
		}
		patterns = append(patterns, trimmed)
	}
	c.Heuristics.EpisodeExceptions = patterns
}

func (c *Config) normalizeEscalation() {
	c.Escalation.Mode = strings.ToLower(strings.TrimSpace(c.Escalation.Mode))
	if c.Escalation.Mode == "" {
		c.Escalation.Mode = EscalationSkip
	}
}
