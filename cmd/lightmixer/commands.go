package main

import (
	"errors"
	"fmt"
	"io/fs"
	"math/bits"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/lightmixer/internal/config"
	"github.com/muurk/lightmixer/internal/console"
	"github.com/muurk/lightmixer/internal/dashboard"
	"github.com/muurk/lightmixer/internal/light"
	"github.com/muurk/lightmixer/internal/logging"
	"github.com/muurk/lightmixer/internal/ui"
)

// Command flags
var (
	forceInit bool
)

func init() {
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(dummyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(aliasCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
}

// tuiCmd launches the full-screen dashboard
var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"dashboard"},
	Short:   "Full-screen dashboard with one gauge per controller",
	Long: `Show every controller as a horizontal gauge.

Keys:
  up/k, down/j     select controller (wraps around)
  left/h, right/l  brightness -1 / +1
  q, ctrl+c        quit

Set dashboard.refresh in the config file to pick up changes made by other
tools while the dashboard is open.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMode(cmd, append(args, "tui"))
	},
}

func runDashboard(cmd *cobra.Command, args []string) error {
	c := modeConfig(cmd)
	controllers := discover()

	opts := dashboard.Options{
		TickRate: c.TickRate(),
		Aliases:  c.Aliases,
	}
	if c.Dashboard != nil {
		opts.Refresh = c.Dashboard.Refresh
		keys := dashboard.NewKeyMap(c.Dashboard.Keys)
		opts.Keys = &keys
	}

	logging.Info("Starting dashboard", zap.Int("controllers", len(controllers)))
	return dashboard.Run(controllers, opts)
}

// dummyCmd runs the line-oriented console prompt
var dummyCmd = &cobra.Command{
	Use:     "dummy",
	Aliases: []string{"console"},
	Short:   "Console prompt accepting <list number>:<value>",
	Long: `Print the numbered controller list and read commands from standard input.

Each line has the form <list number>:<value>. The value is capped at the
controller's max_brightness. Malformed lines print a short usage hint.
The session ends at end of input or when a brightness write fails.`,
	Example: `  # Interactive
  lightmixer dummy

  # Scripted
  echo "0:255" | lightmixer dummy`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMode(cmd, append(args, "dummy"))
	},
}

func runConsole(cmd *cobra.Command, args []string) error {
	c := modeConfig(cmd)
	session := console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), discover())
	session.Alias = c.Alias
	session.ShowPrompt = cmd.InOrStdin() == os.Stdin && ui.IsTerminal(os.Stdin)

	if err := session.Run(); err != nil {
		// Already printed by the session.
		logging.Warn("Console session ended on write failure", zap.Error(err))
	}
	return nil
}

// listCmd prints the discovered controllers
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List brightness controllers",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}
		controllers := discover()
		out := cmd.OutOrStdout()
		if len(controllers) == 0 {
			fmt.Fprintln(out, "No brightness controllers found.")
			fmt.Fprintf(out, "Scanned: %s\n", strings.Join(scanRoots(), ", "))
			return nil
		}

		ui.NewPrinter(out).PrintControllers(controllers, conf.Alias)
		return nil
	},
}

// setCmd writes a single brightness value and exits
var setCmd = &cobra.Command{
	Use:   "set <controller> <value>",
	Short: "Set one controller's brightness",
	Long: `Set a controller's brightness without an interactive session.

<controller> is a list number, a device name, a full path or an alias.
<value> is either a raw value (capped at max_brightness) or a percentage
of max_brightness such as 40%.`,
	Example: `  lightmixer set 0 255
  lightmixer set intel_backlight 40%
  lightmixer set caps 0`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		_, c, err := findController(loaded, discover(), args[0])
		if err != nil {
			return err
		}

		value, err := parseSetValue(args[1], c)
		if err != nil {
			return err
		}

		if err := c.SetBrightness(value); err != nil {
			return fmt.Errorf("failed to set brightness: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), c.String())
		return nil
	},
}

// parseSetValue parses a raw value or an "N%" percentage of the controller's
// maximum. The result is capped at the maximum.
func parseSetValue(s string, c *light.Controller) (uint64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		p, err := strconv.ParseUint(pct, 10, 64)
		if err != nil || p > 100 {
			return 0, fmt.Errorf("invalid percentage %q (use 0%%-100%%)", s)
		}
		// p <= 100 keeps the high word below the divisor.
		hi, lo := bits.Mul64(c.MaxBrightness, p)
		value, _ := bits.Div64(hi, lo, 100)
		return value, nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid brightness value %q", s)
	}
	return c.Clamp(v), nil
}

// findController resolves a selector, trying configured aliases first.
func findController(conf *config.Config, controllers []*light.Controller, selector string) (int, *light.Controller, error) {
	for path, alias := range conf.Aliases {
		if alias != selector {
			continue
		}
		for i, c := range controllers {
			if c.Path == path {
				return i, c, nil
			}
		}
	}
	return light.Find(controllers, selector)
}

// aliasCmd names a controller in the config file
var aliasCmd = &cobra.Command{
	Use:   "alias <controller> [name]",
	Short: "Set or clear a controller's display alias",
	Long: `Store a short name for a controller in the config file. The alias is
shown next to the device path in every mode and can be used as the
<controller> argument of "set". Omit the name to clear the alias.`,
	Example: `  lightmixer alias input3::capslock caps
  lightmixer alias caps`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}
		_, c, err := findController(conf, discover(), args[0])
		if err != nil {
			return err
		}

		name := ""
		if len(args) == 2 {
			name = strings.TrimSpace(args[1])
		}
		conf.SetAlias(c.Path, name)

		if err := conf.Save(configPath); err != nil {
			return err
		}

		if name == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared alias for %s\n", c.Path)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %q\n", c.Path, name)
		}
		return nil
	},
}

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the lightmixer config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}

		if err := config.NewConfig().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}
