package config

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeOrganize(); err != nil {
		return err
	}
	c.normalizeOutput()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeOrganize() error {
	raw := strings.TrimSpace(c.Organize.DirMode)
	if raw == "" {
		raw = defaultDirMode
	}
	mode, err := strconv.ParseUint(strings.TrimPrefix(raw, "0o"), 8, 32)
	if err != nil {
		return fmt.Errorf("organize.dir_mode: invalid octal mode %q", c.Organize.DirMode)
	}
	c.Organize.DirMode = raw
	c.Organize.dirMode = fs.FileMode(mode)
	return nil
}

func (c *Config) normalizeOutput() {
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultColor
	}
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
