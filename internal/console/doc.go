// Package console implements lightmixer's line-oriented mode.
//
// The session prints the controller list, then reads lines of the form
// "<list number>:<value>":
//
//	[00] /sys/class/backlight/intel_backlight -> 4800 / 96000
//	[01] /sys/class/leds/input3::capslock -> 0 / 1
//	> 0:20000
//	update controller /sys/class/backlight/intel_backlight with value 20000
//	[00] /sys/class/backlight/intel_backlight -> 20000 / 96000
//	[01] /sys/class/leds/input3::capslock -> 0 / 1
//
// Values above the controller's maximum are clamped to it. Malformed lines
// and out-of-range list numbers print a usage hint and the session carries
// on. The session ends at end of input, or after printing the error from a
// failed write.
package console
