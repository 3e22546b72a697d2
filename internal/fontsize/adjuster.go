package fontsize

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dshills/fontscale/internal/settings"
)

// Adjuster applies font size operations to scoped settings objects.
// Each operation mutates exactly one scope's settings object; reads fall
// back through the scope chain for the effective value.
type Adjuster struct {
	store *settings.Store
	log   zerolog.Logger
}

// AdjusterOption configures an Adjuster.
type AdjusterOption func(*Adjuster)

// WithLogger sets the adjuster logger.
func WithLogger(log zerolog.Logger) AdjusterOption {
	return func(a *Adjuster) {
		a.log = log
	}
}

// NewAdjuster creates an Adjuster over a settings store.
func NewAdjuster(store *settings.Store, opts ...AdjusterOption) *Adjuster {
	a := &Adjuster{
		store: store,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Constraints reads the configured default and bounds from the global
// preferences, falling back to the registered defaults for missing or
// mistyped values.
func (a *Adjuster) Constraints() Constraints {
	global := settings.GlobalTarget()
	return Constraints{
		Default: a.resolveInt(global, KeyDefaultFontSize, FallbackFontSize),
		Min:     a.resolveInt(global, KeyMinFontSize, DefaultMinFontSize),
		Max:     a.resolveInt(global, KeyMaxFontSize, DefaultMaxFontSize),
	}
}

// Effective returns the font size in effect for the target, resolved
// through the scope fallback chain and bottoming out at the configured
// default.
func (a *Adjuster) Effective(target settings.Target) int {
	if val, ok := a.store.Resolve(target, KeyFontSize); ok {
		if size, ok := intValue(val); ok {
			return size
		}
	}
	return a.Constraints().Default
}

// Apply runs an operation against the target scope and returns the
// resulting effective font size.
func (a *Adjuster) Apply(op Op, target settings.Target) (int, error) {
	switch op {
	case OpIncrease:
		return a.Increase(target)
	case OpDecrease:
		return a.Decrease(target)
	case OpReset:
		return a.Reset(target)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownOp, op)
	}
}

// Increase steps the target's font size up and clamps it to the
// configured maximum. At the bound the write is a no-op clamp, not an
// error.
func (a *Adjuster) Increase(target settings.Target) (int, error) {
	current := a.Effective(target)
	next := a.Constraints().Clamp(current + increaseStep(current))
	return a.write(target, next)
}

// Decrease steps the target's font size down and clamps it to the
// configured minimum.
func (a *Adjuster) Decrease(target settings.Target) (int, error) {
	current := a.Effective(target)
	next := a.Constraints().Clamp(current - decreaseStep(current))
	return a.write(target, next)
}

// Reset restores the default font size for the target.
//
// For the global scope the default is written as a literal value; the
// global layer is the bottom of user-visible resolution, so unsetting
// it would expose only the built-in fallback. For every other scope the
// override is erased, so the effective size falls back through the less
// specific scopes instead of pinning the scope to the default forever.
func (a *Adjuster) Reset(target settings.Target) (int, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if target.Scope == settings.ScopeGlobal {
		return a.write(target, a.Constraints().Default)
	}

	if _, err := a.store.Erase(target, KeyFontSize); err != nil {
		return 0, err
	}

	a.log.Debug().
		Stringer("target", target).
		Msg("font size reset")

	return a.Effective(target), nil
}

// write stores a font size into exactly the target scope.
func (a *Adjuster) write(target settings.Target, size int) (int, error) {
	if err := a.store.Set(target, KeyFontSize, size); err != nil {
		return 0, err
	}

	a.log.Debug().
		Stringer("target", target).
		Int("size", size).
		Msg("font size set")

	return size, nil
}

// resolveInt resolves an integer setting for a target with a fallback.
func (a *Adjuster) resolveInt(target settings.Target, key string, fallback int) int {
	val, ok := a.store.Resolve(target, key)
	if !ok {
		return fallback
	}
	size, ok := intValue(val)
	if !ok {
		a.log.Warn().
			Str("setting", key).
			Interface("value", val).
			Msg("ignoring non-numeric setting value")
		return fallback
	}
	return size
}

// intValue coerces the numeric types a JSON-backed layer can hold.
func intValue(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
