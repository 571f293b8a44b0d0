// Package light discovers and drives brightness controllers exposed by the
// kernel through sysfs.
//
// A controller is any directory containing a "brightness" and a
// "max_brightness" file, the layout shared by /sys/class/backlight and
// /sys/class/leds:
//
//	/sys/class/backlight/intel_backlight/brightness       (rw)  "4800\n"
//	/sys/class/backlight/intel_backlight/max_brightness   (ro)  "96000\n"
//
// # Discovery
//
// Discover scans a list of root directories and builds one Controller per
// entry. Discovery is best effort: a root that cannot be opened, or an entry
// with a missing or malformed value file, is skipped (and logged at debug
// level) so one broken device never hides the others.
//
//	controllers := light.Discover(light.DefaultRoots)
//	for i, c := range controllers {
//	    fmt.Printf("[%02d] %s\n", i, c)
//	}
//
// # Writing
//
// SetBrightness writes the decimal value with no trailing newline and only
// updates the in-memory Brightness after the write succeeded, so a failed
// write never leaves the display out of step with the device. Callers bound
// the value with Clamp beforehand.
//
// # Errors
//
// Every failure is a *ControllerError carrying an ErrorType (NotFound, IO,
// Parse). Use IsNotFound, IsIO and IsParse to classify.
package light
