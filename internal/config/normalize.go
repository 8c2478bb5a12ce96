package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeEvaluate()
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeEvaluate() {
	c.Evaluate.IDMode = strings.ToLower(strings.TrimSpace(c.Evaluate.IDMode))
	if c.Evaluate.IDMode == "" {
		c.Evaluate.IDMode = defaultIDMode
	}
	if c.Evaluate.MinConfusionCount < 0 {
		c.Evaluate.MinConfusionCount = 0
	}
}

func (c *Config) normalizeHistory() error {
	if strings.TrimSpace(c.History.Dir) == "" {
		c.History.Dir = defaultHistoryDir
	}
	var err error
	if c.History.Dir, err = expandPath(c.History.Dir); err != nil {
		return fmt.Errorf("history.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
