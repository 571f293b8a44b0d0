// Package ui renders line-oriented output for lightmixer.
//
// The console mode and the one-shot commands (list, set) share a Printer
// that writes the controller list, update confirmations, errors and usage
// hints. When the destination is a terminal the output is styled with
// lipgloss; otherwise it is plain text, byte-for-byte:
//
//	[00] /sys/class/backlight/intel_backlight -> 4800 / 96000
//	[01] /sys/class/leds/input3::capslock -> 0 / 1 (caps)
//
// The full-screen dashboard lives in package dashboard.
package ui
