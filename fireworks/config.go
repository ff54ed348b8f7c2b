package fireworks

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/goccy/go-yaml"
)

// Config holds the settings a front end reads from data/config.yaml.
// The physics of rockets and fragments are not configurable.
type Config struct {
	AutoPlay           bool   `yaml:"AutoPlay"`
	AutoPlayIntervalMs int64  `yaml:"AutoPlayIntervalMs"`
	AutoPlayMinCount   int64  `yaml:"AutoPlayMinCount"`
	AutoPlayMaxCount   int64  `yaml:"AutoPlayMaxCount"`
	IgniteCount        int64  `yaml:"IgniteCount"`
	LaunchStaggerMs    int64  `yaml:"LaunchStaggerMs"`
	ShowHint           bool   `yaml:"ShowHint"`
	LogLevel           string `yaml:"LogLevel"`
	ScreenshotDir      string `yaml:"ScreenshotDir"`
}

func DefaultConfig() Config {
	return Config{
		AutoPlay:           false,
		AutoPlayIntervalMs: 800,
		AutoPlayMinCount:   1,
		AutoPlayMaxCount:   3,
		IgniteCount:        5,
		LaunchStaggerMs:    int64(DefaultStagger / time.Millisecond),
		ShowHint:           true,
		LogLevel:           "info",
		ScreenshotDir:      ".",
	}
}

// LoadYAML reads the file name from fsys and decodes it into v. Fields that
// are missing from the file keep the value they had in v.
func LoadYAML(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("can't parse %s: %w", name, err)
	}
	return nil
}

// LoadConfig returns the defaults overridden by whatever the file name in
// fsys sets.
func LoadConfig(fsys fs.FS, name string) (Config, error) {
	c := DefaultConfig()
	if err := LoadYAML(fsys, name, &c); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c *Config) Validate() error {
	if c.AutoPlayIntervalMs <= 0 {
		return fmt.Errorf("AutoPlayIntervalMs must be positive, got %d",
			c.AutoPlayIntervalMs)
	}
	if c.AutoPlayMinCount < 0 || c.AutoPlayMaxCount < c.AutoPlayMinCount {
		return fmt.Errorf("invalid auto play count range [%d, %d]",
			c.AutoPlayMinCount, c.AutoPlayMaxCount)
	}
	if c.IgniteCount < 0 {
		return fmt.Errorf("IgniteCount can't be negative, got %d", c.IgniteCount)
	}
	if c.LaunchStaggerMs < 0 {
		return fmt.Errorf("LaunchStaggerMs can't be negative, got %d",
			c.LaunchStaggerMs)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func (c *Config) LaunchStagger() time.Duration {
	return time.Duration(c.LaunchStaggerMs) * time.Millisecond
}
