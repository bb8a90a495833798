package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOrganize() error {
	if c.DirPerm()&0o700 != 0o700 {
		return fmt.Errorf("organize.dir_mode %s must grant the owner rwx", c.Organize.DirMode)
	}
	if c.DirPerm() > 0o777 {
		return fmt.Errorf("organize.dir_mode %s has bits outside 0777", c.Organize.DirMode)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("output.color must be one of auto, always, never (got %q)", c.Output.Color)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	return nil
}
