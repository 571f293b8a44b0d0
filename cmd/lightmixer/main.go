// Lightmixer adjusts backlight and LED brightness through sysfs.
//
// It discovers every controller under /sys/class/backlight and
// /sys/class/leds and offers two interactive modes: a full-screen dashboard
// with one gauge per controller, and a line-oriented console prompt.
//
// Usage:
//
//	lightmixer tui      # full-screen dashboard
//	lightmixer dummy    # console prompt ("<list number>:<value>")
//	lightmixer list     # print controllers and exit
//
// Running without arguments prints help.
// See 'lightmixer --help' for all commands.
package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/lightmixer/internal/config"
	"github.com/muurk/lightmixer/internal/light"
	"github.com/muurk/lightmixer/internal/logging"
	"github.com/muurk/lightmixer/internal/version"
)

func main() {
	err := run(os.Args[1:])
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string
	rootDirs   []string
)

// Loaded on first use by loadConfig
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "lightmixer",
	Short: "Adjust backlight and LED brightness",
	Long: `Adjust display backlight and LED brightness exposed by the kernel
under /sys/class/backlight and /sys/class/leds.

Run "lightmixer tui" for the full-screen dashboard or "lightmixer dummy"
for the line-oriented console prompt. Writing brightness usually needs root
or a udev rule granting your user write access to the brightness files.`,
	Example: `  # Full-screen dashboard
  lightmixer tui

  # Console prompt
  lightmixer dummy

  # Scan a different tree (repeatable)
  lightmixer --root /sys/class/leds list`,
	Version:       version.Full(),
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
	RunE: runMode,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/lightmixer/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: silent, or $"+logging.LogLevelEnvVar+")")
	rootCmd.PersistentFlags().StringArrayVar(&rootDirs, "root", nil, "Directory to scan for controllers (repeatable, overrides config)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "lightmixer %s (commit: %s)\n", version.Version, version.Commit)
	},
}

// run executes the command line, first sending it to the tui or dummy
// command when either word appears anywhere in it.
func run(args []string) error {
	rootCmd.SetArgs(routeArgs(args))
	return rootCmd.Execute()
}

// Flags taking a separate value; the value is not a positional word.
var valueFlags = map[string]bool{
	"--config":    true,
	"--log-level": true,
	"--root":      true,
}

// positionalArgs drops flags and their values from args.
func positionalArgs(args []string) []string {
	var words []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(words, args[i+1:]...)
		case valueFlags[arg]:
			i++
		case strings.HasPrefix(arg, "-"):
		default:
			words = append(words, arg)
		}
	}
	return words
}

// routeArgs prefixes args with the mode command when a mode word appears
// after another command (e.g. "list tui"), so cobra does not reject it or
// hand it to that command.
func routeArgs(args []string) []string {
	words := positionalArgs(args)
	if len(words) > 0 && words[0] == "help" {
		return args
	}

	var name string
	switch modeFromArgs(words) {
	case modeDashboard:
		name = tuiCmd.Name()
	case modeConsole:
		name = dummyCmd.Name()
	default:
		return args
	}

	if words[0] == name {
		return args
	}
	return append([]string{name}, args...)
}

type mode int

const (
	modeHelp mode = iota
	modeConsole
	modeDashboard
)

// modeFromArgs picks the interactive mode from bare words anywhere on the
// command line: "tui" wins over "dummy"; neither means help.
func modeFromArgs(args []string) mode {
	switch {
	case slices.Contains(args, "tui"):
		return modeDashboard
	case slices.Contains(args, "dummy"):
		return modeConsole
	default:
		return modeHelp
	}
}

// runMode starts the mode named by args, or prints help when neither is.
func runMode(cmd *cobra.Command, args []string) error {
	switch modeFromArgs(args) {
	case modeDashboard:
		return runDashboard(cmd, args)
	case modeConsole:
		return runConsole(cmd, args)
	default:
		return cmd.Help()
	}
}

// loadConfig reads the config file once per run.
func loadConfig() (*config.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	loaded, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded
	return cfg, nil
}

// modeConfig is loadConfig for the interactive modes: an unusable config
// file is reported and replaced by defaults instead of ending the run.
func modeConfig(cmd *cobra.Command) *config.Config {
	loaded, err := loadConfig()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v (using defaults)\n", err)
		logging.Warn("Ignoring config file", zap.Error(err))
		cfg = config.NewConfig()
		return cfg
	}
	return loaded
}

// scanRoots returns the --root flags when given, otherwise the configured roots.
func scanRoots() []string {
	if len(rootDirs) > 0 {
		return rootDirs
	}
	if cfg != nil && len(cfg.Roots) > 0 {
		return cfg.Roots
	}
	return light.DefaultRoots
}

func discover() []*light.Controller {
	return light.Discover(scanRoots())
}
