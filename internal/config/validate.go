package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEvaluate(); err != nil {
		return err
	}
	return c.validateHistory()
}

func (c *Config) validateEvaluate() error {
	switch c.Evaluate.IDMode {
	case "none", "head", "tail":
	default:
		return fmt.Errorf("evaluate.id_mode must be one of none, head, tail; got %q", c.Evaluate.IDMode)
	}
	return nil
}

func (c *Config) validateHistory() error {
	if c.History.Enabled && strings.TrimSpace(c.History.Dir) == "" {
		return errors.New("history.dir must be set when history.enabled is true")
	}
	return nil
}
