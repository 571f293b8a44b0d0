// Package config provides user configuration management for lightmixer.
//
// The configuration is a small YAML file stored in the platform's config
// directory:
//   - Linux: $XDG_CONFIG_HOME/lightmixer/config.yaml or $HOME/.config/lightmixer/config.yaml
//   - macOS: $HOME/.config/lightmixer/config.yaml
//   - Windows: %LOCALAPPDATA%\lightmixer\config.yaml
//
// A missing file is equivalent to the defaults, so lightmixer works without
// ever writing one. "lightmixer config init" writes the defaults out for
// editing.
//
// # File Format
//
//	version: 1
//	roots:
//	  - /sys/class/backlight
//	  - /sys/class/leds
//	dashboard:
//	  tick_ms: 250
//	  refresh: false
//	  keys:
//	    increase: ["l", "right", "+"]
//	    decrease: ["h", "left", "-"]
//	aliases:
//	  /sys/class/backlight/intel_backlight: screen
//
// Fields left out of the file keep their defaults.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	controllers := light.Discover(cfg.Roots)
//
// Save writes to a temporary file and renames it into place, so a crash never
// leaves a truncated config behind.
package config
