// Package config loads table configuration from HCL files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/holdem-engine/internal/game"
)

const (
	defaultLogLevel      = "info"
	defaultMaxSeats      = 6
	defaultActionTimeout = "30s"
	defaultBuyInBBs      = 100
)

// Config is the complete configuration file
type Config struct {
	LogLevel string        `hcl:"log_level,optional"`
	Tables   []TableConfig `hcl:"table,block"`
}

// TableConfig defines one table
type TableConfig struct {
	Name                string `hcl:"name,label"`
	SmallBlind          int    `hcl:"small_blind"`
	BigBlind            int    `hcl:"big_blind"`
	MaxSeats            int    `hcl:"max_seats,optional"`
	ActionTimeout       string `hcl:"action_timeout,optional"`
	RotateStreetStarter *bool  `hcl:"rotate_street_starter,optional"`
	BuyIn               int    `hcl:"buy_in,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{
		Tables: []TableConfig{{Name: "main", SmallBlind: 1, BigBlind: 2}},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// Parse reads configuration from HCL source
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	for i := range c.Tables {
		t := &c.Tables[i]
		if t.MaxSeats == 0 {
			t.MaxSeats = defaultMaxSeats
		}
		if t.ActionTimeout == "" {
			t.ActionTimeout = defaultActionTimeout
		}
		if t.RotateStreetStarter == nil {
			rotate := true
			t.RotateStreetStarter = &rotate
		}
		if t.BuyIn == 0 {
			t.BuyIn = t.BigBlind * defaultBuyInBBs
		}
	}
}

// Validate checks the configuration can run
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if len(c.Tables) == 0 {
		return fmt.Errorf("at least one table must be configured")
	}

	seen := make(map[string]bool)
	for _, table := range c.Tables {
		if seen[table.Name] {
			return fmt.Errorf("table %s: defined more than once", table.Name)
		}
		seen[table.Name] = true

		gc, err := table.GameConfig()
		if err != nil {
			return err
		}
		if gc.ActionTimeout <= 0 {
			return fmt.Errorf("table %s: action timeout must be positive", table.Name)
		}
		if err := gc.Validate(); err != nil {
			return fmt.Errorf("table %s: %w", table.Name, err)
		}
		if table.BuyIn <= table.BigBlind {
			return fmt.Errorf("table %s: buy-in must cover more than the big blind", table.Name)
		}
	}
	return nil
}

// Level returns the configured log level, defaulting to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Table returns a table configuration by name
func (c *Config) Table(name string) *TableConfig {
	for i := range c.Tables {
		if c.Tables[i].Name == name {
			return &c.Tables[i]
		}
	}
	return nil
}

// GameConfig converts the table settings into engine settings
func (t TableConfig) GameConfig() (game.Config, error) {
	timeout, err := time.ParseDuration(t.ActionTimeout)
	if err != nil {
		return game.Config{}, fmt.Errorf("table %s: invalid action timeout %q: %w", t.Name, t.ActionTimeout, err)
	}
	rotate := true
	if t.RotateStreetStarter != nil {
		rotate = *t.RotateStreetStarter
	}
	return game.Config{
		SmallBlind:          t.SmallBlind,
		BigBlind:            t.BigBlind,
		MaxSeats:            t.MaxSeats,
		ActionTimeout:       timeout,
		RotateStreetStarter: rotate,
	}, nil
}
