// Package font provides handlers for font size commands.
//
// Each command maps to one (scope, operation) pair from a static table:
// increase, decrease, and reset against the global preferences, the
// focused window, the focused view's syntax, or the focused view itself.
// Unscoped aliases (font.increase, font.decrease, font.reset) cover the
// host's built-in font commands and act on the global scope.
package font
