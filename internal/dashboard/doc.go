// Package dashboard implements lightmixer's full-screen mode.
//
// Built on Bubble Tea, the dashboard draws a rounded frame titled
// "light mixer" with one horizontal gauge per controller:
//
//	╭───────────────────────────── light mixer ─────────────────────────────╮
//	│ ███████/sys/class/backlight/intel_backlight (48000 / 96000 = 50 %)    │
//	│ /sys/class/leds/input3::capslock (0 / 1 = 0 %)                        │
//	│                                                                       │
//	│ ↑/k up • ↓/j down • ←/h dimmer • →/l brighter • q quit                │
//	╰───────────────────────────────────────────────────────────────────────╯
//
// The filled part of a gauge is the controller's brightness as a percentage
// of its maximum. The selected row has its colors swapped; the others
// alternate between two shades.
//
// # Key Bindings
//
//   - ↑/k, ↓/j: move the cursor (wrapping at both ends)
//   - ←/h, →/l: brightness -1 / +1, bounded by 0 and max_brightness
//   - q, ctrl+c: quit
//
// Bindings can be overridden from the config file. A brightness step whose
// write fails is dropped without a message; the gauge keeps showing the
// device's last known value.
//
// # Redraw
//
// A tick (250ms by default) redraws the screen even when no key arrives.
// With refresh enabled each tick also re-reads every brightness file, so
// changes made by other tools (function keys, brightnessctl) show up.
//
// # Thread Safety
//
// The Bubble Tea framework ensures thread safety through message passing.
// All model updates occur in a single goroutine.
package dashboard
