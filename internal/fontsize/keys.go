package fontsize

import "github.com/dshills/fontscale/internal/settings/registry"

// Setting keys owned by this package.
const (
	// KeyFontSize is the per-scope font size entry.
	KeyFontSize = "font_size"

	// KeyDefaultFontSize is the size restored by reset.
	KeyDefaultFontSize = "default_font_size"

	// KeyMinFontSize is the lower clamp bound.
	KeyMinFontSize = "min_font_size"

	// KeyMaxFontSize is the upper clamp bound.
	KeyMaxFontSize = "max_font_size"
)

// Documented defaults, seeded at activation when absent.
const (
	// FallbackFontSize is the host's standard size, used when the
	// global preferences carry no font_size to seed the default from.
	FallbackFontSize = 10

	// DefaultMinFontSize is the seeded lower bound.
	DefaultMinFontSize = 8

	// DefaultMaxFontSize is the seeded upper bound.
	DefaultMaxFontSize = 128
)

// NewRegistry returns a registry with the font settings registered.
func NewRegistry() *registry.Registry {
	r := registry.New()
	RegisterSettings(r)
	return r
}

// RegisterSettings registers the font settings definitions.
func RegisterSettings(r *registry.Registry) {
	one := 1.0

	// font_size carries no registry default: an unset entry must fall
	// back to default_font_size, not to a fixed built-in.
	r.MustRegister(registry.Setting{
		Path:        KeyFontSize,
		Type:        registry.TypeInt,
		Description: "Font size for the scope this entry is set in.",
	})
	r.MustRegister(registry.Setting{
		Path:        KeyDefaultFontSize,
		Type:        registry.TypeInt,
		Default:     FallbackFontSize,
		Description: "Font size restored by the reset commands.",
		Minimum:     &one,
	})
	r.MustRegister(registry.Setting{
		Path:        KeyMinFontSize,
		Type:        registry.TypeInt,
		Default:     DefaultMinFontSize,
		Description: "Smallest font size the adjust commands will set.",
		Minimum:     &one,
	})
	r.MustRegister(registry.Setting{
		Path:        KeyMaxFontSize,
		Type:        registry.TypeInt,
		Default:     DefaultMaxFontSize,
		Description: "Largest font size the adjust commands will set.",
		Minimum:     &one,
	})
}
