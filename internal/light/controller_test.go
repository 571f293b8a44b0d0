package light

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeDevice creates a fake sysfs device directory under root.
func makeDevice(t *testing.T, root, name, brightness, maxBrightness string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	if brightness != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, BrightnessFile), []byte(brightness), 0644))
	}
	if maxBrightness != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, MaxBrightnessFile), []byte(maxBrightness), 0644))
	}
	return dir
}

func TestStripTrailingNewline(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"0", "0"},
		{"0\n", "0"},
		{"0\r\n", "0"},
		{"0\n\n", "0\n"},
		{"0\r\n\r\n", "0\r\n"},
		{"\n", ""},
		{"12\r", "12\r"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StripTrailingNewline(tt.input), "input %q", tt.input)
	}
}

func TestNew(t *testing.T) {
	root := t.TempDir()

	t.Run("newline terminated values", func(t *testing.T) {
		dir := makeDevice(t, root, "intel_backlight", "4800\n", "96000\n")
		c, err := New(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, c.Path)
		assert.Equal(t, uint64(4800), c.Brightness)
		assert.Equal(t, uint64(96000), c.MaxBrightness)
	})

	t.Run("crlf and bare values", func(t *testing.T) {
		dir := makeDevice(t, root, "input3::capslock", "1\r\n", "1")
		c, err := New(dir)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), c.Brightness)
		assert.Equal(t, uint64(1), c.MaxBrightness)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := New(filepath.Join(root, "gone"))
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("missing max_brightness", func(t *testing.T) {
		dir := makeDevice(t, root, "half", "10\n", "")
		_, err := New(dir)
		require.Error(t, err)
		assert.True(t, IsIO(err))
	})

	t.Run("non integer content", func(t *testing.T) {
		dir := makeDevice(t, root, "garbage", "bright\n", "255\n")
		_, err := New(dir)
		require.Error(t, err)
		assert.True(t, IsParse(err))
	})

	t.Run("negative value", func(t *testing.T) {
		dir := makeDevice(t, root, "negative", "-1\n", "255\n")
		_, err := New(dir)
		assert.True(t, IsParse(err))
	})

	t.Run("two trailing newlines", func(t *testing.T) {
		dir := makeDevice(t, root, "doubled", "5\n\n", "255\n")
		_, err := New(dir)
		assert.True(t, IsParse(err))
	})
}

func TestController_SetBrightness(t *testing.T) {
	dir := makeDevice(t, t.TempDir(), "kbd_backlight", "3\n", "255\n")
	c, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, c.SetBrightness(128))
	assert.Equal(t, uint64(128), c.Brightness)

	data, err := os.ReadFile(filepath.Join(dir, BrightnessFile))
	require.NoError(t, err)
	assert.Equal(t, "128", string(data), "value must be written without a newline and overwrite prior contents")

	// No clamping happens at this layer.
	require.NoError(t, c.SetBrightness(1000))
	assert.Equal(t, uint64(1000), c.Brightness)
}

func TestController_SetBrightness_FailureKeepsState(t *testing.T) {
	dir := makeDevice(t, t.TempDir(), "unplugged", "42\n", "100\n")
	c, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(dir))

	err = c.SetBrightness(7)
	require.Error(t, err)
	assert.True(t, IsIO(err))
	assert.Equal(t, uint64(42), c.Brightness, "failed write must not update the in-memory value")
}

func TestController_Reload(t *testing.T) {
	dir := makeDevice(t, t.TempDir(), "acpi_video0", "10\n", "15\n")
	c, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, BrightnessFile), []byte("12\n"), 0644))
	require.NoError(t, c.Reload())
	assert.Equal(t, uint64(12), c.Brightness)
	assert.Equal(t, uint64(15), c.MaxBrightness)
}

func TestController_Clamp(t *testing.T) {
	c := &Controller{MaxBrightness: 100}
	assert.Equal(t, uint64(100), c.Clamp(255))
	assert.Equal(t, uint64(100), c.Clamp(100))
	assert.Equal(t, uint64(0), c.Clamp(0))
	assert.Equal(t, uint64(37), c.Clamp(37))
}

func TestController_Percent(t *testing.T) {
	tests := []struct {
		name       string
		brightness uint64
		max        uint64
		want       uint64
	}{
		{"quarter", 50, 200, 25},
		{"floor", 1, 3, 33},
		{"full", 255, 255, 100},
		{"off", 0, 255, 0},
		{"zero max", 0, 0, 0},
		{"zero max with stale value", 5, 0, 0},
		{"above max", 300, 255, 100},
		{"huge values", math.MaxUint64 / 2, math.MaxUint64, 49},
		{"huge max", 1 << 62, 1 << 63, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Controller{Brightness: tt.brightness, MaxBrightness: tt.max}
			assert.Equal(t, tt.want, c.Percent())
		})
	}
}

func TestController_String(t *testing.T) {
	c := &Controller{Path: "/sys/class/leds/input3::numlock", Brightness: 0, MaxBrightness: 1}
	assert.Equal(t, "/sys/class/leds/input3::numlock -> 0 / 1", c.String())
	assert.Equal(t, "input3::numlock", c.Name())
}

func TestControllerError(t *testing.T) {
	err := newError(ErrTypeParse, "/x/brightness", "invalid value in", os.ErrInvalid)
	assert.Contains(t, err.Error(), "Parse Error")
	assert.Contains(t, err.Error(), "/x/brightness")
	assert.ErrorIs(t, err, os.ErrInvalid)
	assert.False(t, IsIO(err))
	assert.False(t, IsNotFound(nil))
	assert.Equal(t, "ErrorType(9)", ErrorType(9).String())
}
