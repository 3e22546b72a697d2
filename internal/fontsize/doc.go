// Package fontsize implements scoped font size adjustment.
//
// The package has two halves:
//   - EnsureDefaults seeds the three configuration keys
//     (default_font_size, min_font_size, max_font_size) into the global
//     preferences at activation, never overwriting existing values.
//   - Adjuster applies increase, decrease, and reset operations to one
//     scope's settings object, clamping results into the configured
//     bounds and resolving effective sizes through the scope fallback
//     chain (view, syntax, window, global, registered default).
package fontsize
