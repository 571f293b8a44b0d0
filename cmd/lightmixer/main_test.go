package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/lightmixer/internal/config"
	"github.com/muurk/lightmixer/internal/light"
)

// fixture creates a one-device sysfs tree and a config file scanning it.
func fixture(t *testing.T) (cfgFile, device string) {
	t.Helper()
	root := t.TempDir()
	device = filepath.Join(root, "acpi_video0")
	require.NoError(t, os.MkdirAll(device, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(device, light.BrightnessFile), []byte("5\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(device, light.MaxBrightnessFile), []byte("10\n"), 0644))

	c := config.NewConfig()
	c.Roots = []string{root}
	cfgFile = filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, c.Save(cfgFile))
	return cfgFile, device
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	reset := func() {
		configPath = ""
		forceInit = false
		rootDirs = nil
		cfg = nil
	}
	reset()
	t.Cleanup(reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	err := run(args)
	return out.String(), err
}

func brightnessFile(t *testing.T, device string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(device, light.BrightnessFile))
	require.NoError(t, err)
	return string(data)
}

func TestModeFromArgs(t *testing.T) {
	tests := []struct {
		args []string
		want mode
	}{
		{nil, modeHelp},
		{[]string{"foo"}, modeHelp},
		{[]string{"dummy"}, modeConsole},
		{[]string{"tui"}, modeDashboard},
		{[]string{"dummy", "tui"}, modeDashboard},
		{[]string{"x", "tui", "dummy"}, modeDashboard},
		{[]string{"TUI"}, modeHelp},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, modeFromArgs(tt.args), "args %v", tt.args)
	}
}

func TestParseSetValue(t *testing.T) {
	c := &light.Controller{Path: "/x", Brightness: 1, MaxBrightness: 255}

	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{"0", 0, false},
		{"100", 100, false},
		{"9999", 255, false},
		{"50%", 127, false},
		{"100%", 255, false},
		{"0%", 0, false},
		{"101%", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"%", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSetValue(tt.in, c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSetValue_LargeMax(t *testing.T) {
	c := &light.Controller{Path: "/x", MaxBrightness: math.MaxUint64}

	got, err := parseSetValue("50%", c)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64/2), got)

	got, err = parseSetValue("100%", c)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got)
}

func TestRouteArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no args", nil, nil},
		{"plain command", []string{"list"}, []string{"list"}},
		{"mode first", []string{"tui"}, []string{"tui"}},
		{"mode after flags", []string{"--config", "c.yaml", "dummy"}, []string{"--config", "c.yaml", "dummy"}},
		{"mode after command", []string{"list", "tui"}, []string{"tui", "list", "tui"}},
		{"dummy after command", []string{"config", "dummy"}, []string{"dummy", "config", "dummy"}},
		{"tui wins", []string{"dummy", "tui"}, []string{"tui", "dummy", "tui"}},
		{"flag value is not a word", []string{"--config", "tui", "list"}, []string{"--config", "tui", "list"}},
		{"inline flag value", []string{"--root=/x", "set", "0", "1", "dummy"}, []string{"dummy", "--root=/x", "set", "0", "1", "dummy"}},
		{"help untouched", []string{"help", "tui"}, []string{"help", "tui"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, routeArgs(tt.args))
		})
	}
}

func TestScanRoots(t *testing.T) {
	t.Cleanup(func() { rootDirs = nil; cfg = nil })

	cfg = nil
	assert.Equal(t, light.DefaultRoots, scanRoots())

	cfg = &config.Config{Roots: []string{"/from/config"}}
	assert.Equal(t, []string{"/from/config"}, scanRoots())

	rootDirs = []string{"/from/flag"}
	assert.Equal(t, []string{"/from/flag"}, scanRoots())
}

func TestNoArgsPrintsHelp(t *testing.T) {
	cfgFile, _ := fixture(t)
	out, err := execute(t, "", "--config", cfgFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "lightmixer")
}

func TestNoArgsPrintsHelp_VersionlessConfig(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("roots: [/sys/class/leds]\n"), 0600))

	out, err := execute(t, "", "--config", cfgFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestNoArgsPrintsHelp_UnusableConfig(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("version: 7\n"), 0600))

	out, err := execute(t, "", "--config", cfgFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")

	_, err = execute(t, "", "--config", cfgFile, "list")
	assert.ErrorContains(t, err, "unsupported config version")
}

func TestConsoleMode_UnusableConfigFallsBack(t *testing.T) {
	_, device := fixture(t)
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("version: 7\n"), 0600))

	out, err := execute(t, "0:6\n", "--config", cfgFile, "--root", filepath.Dir(device), "dummy")
	require.NoError(t, err)
	assert.Contains(t, out, "Warning:")
	assert.Equal(t, "6", brightnessFile(t, device))
}

func TestModeWordAfterCommand(t *testing.T) {
	tests := [][]string{
		{"list", "dummy"},
		{"config", "dummy"},
		{"set", "0", "9", "dummy"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			cfgFile, device := fixture(t)
			out, err := execute(t, "0:4\n", append([]string{"--config", cfgFile}, args...)...)
			require.NoError(t, err)
			assert.Equal(t, "4", brightnessFile(t, device), "console mode ran instead of %q", args[0])
			assert.Contains(t, out, "update controller "+device+" with value 4")
		})
	}
}

func TestListCommand(t *testing.T) {
	cfgFile, device := fixture(t)
	out, err := execute(t, "", "--config", cfgFile, "list")
	require.NoError(t, err)
	assert.Equal(t, "[00] "+device+" -> 5 / 10\n", out)
}

func TestListCommand_Empty(t *testing.T) {
	c := config.NewConfig()
	c.Roots = []string{filepath.Join(t.TempDir(), "missing")}
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, c.Save(cfgFile))

	out, err := execute(t, "", "--config", cfgFile, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No brightness controllers found.")
}

func TestSetCommand(t *testing.T) {
	cfgFile, device := fixture(t)

	out, err := execute(t, "", "--config", cfgFile, "set", "0", "50%")
	require.NoError(t, err)
	assert.Equal(t, "5", brightnessFile(t, device))
	assert.Equal(t, device+" -> 5 / 10\n", out)

	_, err = execute(t, "", "--config", cfgFile, "set", "acpi_video0", "99")
	require.NoError(t, err)
	assert.Equal(t, "10", brightnessFile(t, device))

	_, err = execute(t, "", "--config", cfgFile, "set", "7", "1")
	assert.Error(t, err)
}

func TestAliasCommand(t *testing.T) {
	cfgFile, device := fixture(t)

	out, err := execute(t, "", "--config", cfgFile, "alias", "0", "screen")
	require.NoError(t, err)
	assert.Contains(t, out, `"screen"`)

	loaded, err := config.Load(cfgFile)
	require.NoError(t, err)
	assert.Equal(t, "screen", loaded.Alias(device))

	_, err = execute(t, "", "--config", cfgFile, "set", "screen", "3")
	require.NoError(t, err)
	assert.Equal(t, "3", brightnessFile(t, device))

	out, err = execute(t, "", "--config", cfgFile, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "(screen)")

	_, err = execute(t, "", "--config", cfgFile, "alias", "screen")
	require.NoError(t, err)
	loaded, err = config.Load(cfgFile)
	require.NoError(t, err)
	assert.Empty(t, loaded.Alias(device))
}

func TestConsoleMode(t *testing.T) {
	cfgFile, device := fixture(t)

	out, err := execute(t, "oops\n0:7\n", "--config", cfgFile, "dummy")
	require.NoError(t, err)
	assert.Equal(t, "7", brightnessFile(t, device))
	assert.Contains(t, out, "Use the following format: <list number>:<value>")
	assert.Contains(t, out, "update controller "+device+" with value 7")
	assert.Contains(t, out, "[00] "+device+" -> 7 / 10")
}

func TestConsoleMode_BareWordOnRoot(t *testing.T) {
	cfgFile, device := fixture(t)

	_, err := execute(t, "0:2", "--config", cfgFile, "extra", "dummy")
	require.NoError(t, err)
	assert.Equal(t, "2", brightnessFile(t, device))
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	out, err := execute(t, "", "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	out, err = execute(t, "", "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)
	assert.FileExists(t, path)

	_, err = execute(t, "", "--config", path, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "", "--config", path, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	cfgFile, _ := fixture(t)
	out, err := execute(t, "", "--config", cfgFile, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "lightmixer "))
}
