package light

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/muurk/lightmixer/internal/logging"
)

// DefaultRoots are the sysfs classes holding backlight and LED devices.
var DefaultRoots = []string{
	"/sys/class/backlight",
	"/sys/class/leds",
}

// Discover builds one Controller per usable device directory under roots.
//
// Unreadable roots and entries that fail to construct are skipped. The result
// keeps per-root, per-entry enumeration order and may be empty; Discover never
// fails.
func Discover(roots []string) []*Controller {
	controllers := make([]*Controller, 0)

	for _, root := range roots {
		dir, err := os.Open(root)
		if err != nil {
			logging.LogSkippedRoot(root, err)
			continue
		}
		// Readdirnames keeps the directory's own order; os.ReadDir would sort.
		names, err := dir.Readdirnames(-1)
		dir.Close()
		if err != nil && len(names) == 0 {
			logging.LogSkippedRoot(root, err)
			continue
		}

		found, skipped := 0, 0
		for _, name := range names {
			c, err := New(filepath.Join(root, name))
			if err != nil {
				logging.LogSkippedEntry(filepath.Join(root, name), err)
				skipped++
				continue
			}
			controllers = append(controllers, c)
			found++
		}
		logging.LogDiscovery(root, found, skipped)
	}

	return controllers
}

// Find resolves selector against controllers, first as a 0-based list index
// and then as a device name or full path.
func Find(controllers []*Controller, selector string) (int, *Controller, error) {
	if idx, err := strconv.Atoi(selector); err == nil {
		if idx < 0 || idx >= len(controllers) {
			return -1, nil, fmt.Errorf("controller index %d out of range (have %d)", idx, len(controllers))
		}
		return idx, controllers[idx], nil
	}

	for i, c := range controllers {
		if c.Name() == selector || c.Path == selector {
			return i, c, nil
		}
	}
	return -1, nil, fmt.Errorf("no controller named %q", selector)
}
