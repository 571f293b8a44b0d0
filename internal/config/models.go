package config

import (
	"time"

	"github.com/muurk/lightmixer/internal/light"
)

// CurrentVersion is the config file schema version written by Save.
const CurrentVersion = 1

// DefaultTickMS is the dashboard redraw interval in milliseconds.
const DefaultTickMS = 250

// Config represents the entire user configuration file.
type Config struct {
	Version   int               `yaml:"version"`
	Roots     []string          `yaml:"roots,omitempty"`     // Directories scanned for controllers
	Dashboard *DashboardPrefs   `yaml:"dashboard,omitempty"` // Full-screen mode preferences
	Aliases   map[string]string `yaml:"aliases,omitempty"`   // Device path -> display alias
}

// DashboardPrefs holds preferences for the full-screen dashboard.
type DashboardPrefs struct {
	TickMS  int       `yaml:"tick_ms"`        // Redraw interval in milliseconds
	Refresh bool      `yaml:"refresh"`        // Re-read brightness files on every tick
	Keys    *KeyPrefs `yaml:"keys,omitempty"` // Key overrides; empty lists keep the defaults
}

// KeyPrefs maps dashboard actions to key names as reported by bubbletea
// ("q", "ctrl+c", "left", "h", ...).
type KeyPrefs struct {
	Quit     []string `yaml:"quit,omitempty"`
	Up       []string `yaml:"up,omitempty"`
	Down     []string `yaml:"down,omitempty"`
	Decrease []string `yaml:"decrease,omitempty"`
	Increase []string `yaml:"increase,omitempty"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Roots:   append([]string(nil), light.DefaultRoots...),
		Dashboard: &DashboardPrefs{
			TickMS: DefaultTickMS,
			Keys:   &KeyPrefs{},
		},
		Aliases: make(map[string]string),
	}
}

// applyDefaults fills in anything a partial config file left out.
func (c *Config) applyDefaults() {
	if len(c.Roots) == 0 {
		c.Roots = append([]string(nil), light.DefaultRoots...)
	}
	if c.Dashboard == nil {
		c.Dashboard = &DashboardPrefs{}
	}
	if c.Dashboard.TickMS <= 0 {
		c.Dashboard.TickMS = DefaultTickMS
	}
	if c.Dashboard.Keys == nil {
		c.Dashboard.Keys = &KeyPrefs{}
	}
	if c.Aliases == nil {
		c.Aliases = make(map[string]string)
	}
}

// TickRate returns the dashboard redraw interval.
func (c *Config) TickRate() time.Duration {
	if c.Dashboard == nil || c.Dashboard.TickMS <= 0 {
		return DefaultTickMS * time.Millisecond
	}
	return time.Duration(c.Dashboard.TickMS) * time.Millisecond
}

// Alias returns the display alias for a device path, or "" if none is set.
func (c *Config) Alias(path string) string {
	return c.Aliases[path]
}

// SetAlias sets or clears (empty alias) the display alias for a device path.
func (c *Config) SetAlias(path, alias string) {
	if c.Aliases == nil {
		c.Aliases = make(map[string]string)
	}
	if alias == "" {
		delete(c.Aliases, path)
		return
	}
	c.Aliases[path] = alias
}
