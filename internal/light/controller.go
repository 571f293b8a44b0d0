package light

import (
	"errors"
	"fmt"
	"io/fs"
	"math/bits"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/muurk/lightmixer/internal/logging"
)

// Value file names inside a device directory.
const (
	BrightnessFile    = "brightness"
	MaxBrightnessFile = "max_brightness"
)

// Controller is one brightness-capable device backed by a sysfs-style
// directory holding a brightness and a max_brightness file.
type Controller struct {
	// Path is the device directory (e.g. "/sys/class/backlight/intel_backlight")
	Path string

	// Brightness mirrors the brightness file as of the last read or
	// successful write. External changes are not picked up until Reload.
	Brightness uint64

	// MaxBrightness is read once at construction.
	MaxBrightness uint64
}

// New builds a Controller from a device directory.
func New(path string) (*Controller, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newError(ErrTypeNotFound, path, "device path does not exist", err)
		}
		return nil, newError(ErrTypeIO, path, "cannot stat device path", err)
	}

	brightness, err := ReadValue(filepath.Join(path, BrightnessFile))
	if err != nil {
		return nil, err
	}
	maxBrightness, err := ReadValue(filepath.Join(path, MaxBrightnessFile))
	if err != nil {
		return nil, err
	}

	return &Controller{
		Path:          path,
		Brightness:    brightness,
		MaxBrightness: maxBrightness,
	}, nil
}

// SetBrightness writes value to the brightness file and, only once the write
// has succeeded, records it in Brightness. The value is not clamped; use
// Clamp first.
func (c *Controller) SetBrightness(value uint64) error {
	path := filepath.Join(c.Path, BrightnessFile)
	data := []byte(strconv.FormatUint(value, 10))

	if err := os.WriteFile(path, data, 0644); err != nil {
		werr := newError(ErrTypeIO, path, "cannot write", err)
		logging.LogBrightnessWrite(c.Path, value, werr)
		return werr
	}

	c.Brightness = value
	logging.LogBrightnessWrite(c.Path, value, nil)
	return nil
}

// Reload re-reads the brightness file.
func (c *Controller) Reload() error {
	value, err := ReadValue(filepath.Join(c.Path, BrightnessFile))
	if err != nil {
		return err
	}
	c.Brightness = value
	return nil
}

// Clamp bounds value to MaxBrightness.
func (c *Controller) Clamp(value uint64) uint64 {
	return min(value, c.MaxBrightness)
}

// Percent returns floor(Brightness*100/MaxBrightness) capped at 100, or 0 for
// a device reporting a zero maximum.
func (c *Controller) Percent() uint64 {
	if c.MaxBrightness == 0 {
		return 0
	}
	if c.Brightness >= c.MaxBrightness {
		return 100
	}
	// Brightness < MaxBrightness keeps the high word below the divisor.
	hi, lo := bits.Mul64(c.Brightness, 100)
	pct, _ := bits.Div64(hi, lo, c.MaxBrightness)
	return pct
}

// Name returns the device directory's base name (e.g. "input3::capslock").
func (c *Controller) Name() string {
	return filepath.Base(c.Path)
}

// String returns "<path> -> <brightness> / <max>".
func (c *Controller) String() string {
	return fmt.Sprintf("%s -> %d / %d", c.Path, c.Brightness, c.MaxBrightness)
}

// ReadValue reads a value file holding a single unsigned decimal integer,
// optionally terminated by one newline.
func ReadValue(path string) (uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, newError(ErrTypeIO, path, "cannot read", err)
	}

	value, err := strconv.ParseUint(StripTrailingNewline(string(data)), 10, 64)
	if err != nil {
		return 0, newError(ErrTypeParse, path, "invalid value in", err)
	}
	return value, nil
}

// StripTrailingNewline removes exactly one trailing "\r\n" or "\n".
func StripTrailingNewline(s string) string {
	if trimmed, ok := strings.CutSuffix(s, "\r\n"); ok {
		return trimmed
	}
	return strings.TrimSuffix(s, "\n")
}
