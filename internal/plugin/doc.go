// Package plugin wires fontscale into the host editor.
//
// The Host owns every collaborator the plugin needs: the scoped
// settings store backed by the user's preference files, the font
// adjuster, the command dispatcher with the font namespace registered,
// and a watcher that reloads the preferences after external edits.
//
// Activation seeds the three configuration keys (default_font_size,
// min_font_size, max_font_size) into the global preferences, never
// overwriting values the user already set. Menu items and key bindings
// enter through Host.Command; the Lua runtime enters through the
// bridge in the lua subpackage.
package plugin
