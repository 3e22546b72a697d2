package fontsize

import "github.com/dshills/fontscale/internal/settings"

// EnsureDefaults seeds the three configuration keys into the global
// preferences object at activation. Keys already present are never
// overwritten, so a second run changes nothing.
//
// default_font_size is seeded from the current global font_size (the
// host's standard size) when one exists, otherwise from the built-in
// fallback. The bounds are seeded with the documented defaults.
//
// Returns true if any key was seeded. Persistence failures are returned
// to the caller; an unwritable preferences store is fatal to activation.
func EnsureDefaults(store *settings.Store) (bool, error) {
	global := settings.GlobalTarget()

	current := FallbackFontSize
	if val, ok := store.Get(global, KeyFontSize); ok {
		if size, ok := intValue(val); ok {
			current = size
		}
	}

	defaults := []struct {
		key   string
		value int
	}{
		{KeyDefaultFontSize, current},
		{KeyMinFontSize, DefaultMinFontSize},
		{KeyMaxFontSize, DefaultMaxFontSize},
	}

	seeded := false
	for _, def := range defaults {
		if store.Has(global, def.key) {
			continue
		}
		if err := store.Set(global, def.key, def.value); err != nil {
			return seeded, err
		}
		seeded = true
	}

	return seeded, nil
}
