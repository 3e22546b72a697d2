package plugin

import (
	"github.com/dshills/fontscale/internal/dispatcher/handlers/font"
	"github.com/dshills/fontscale/internal/fontsize"
)

// DefaultManifest returns the manifest for the fontscale plugin: the
// full command surface plus the schema of the three configuration keys.
func DefaultManifest() *Manifest {
	one := 1.0

	return &Manifest{
		Name:        "fontscale",
		Version:     "1.0.0",
		DisplayName: "Font Scale",
		Description: "Adjust the editor font size globally, per window, per syntax, or per view.",
		License:     "MIT",
		Commands: []CommandContribution{
			{ID: font.ActionIncreaseGlobal, Title: "Increase Global Font Size", Category: "Font"},
			{ID: font.ActionDecreaseGlobal, Title: "Decrease Global Font Size", Category: "Font"},
			{ID: font.ActionResetGlobal, Title: "Reset Global Font Size", Category: "Font"},

			{ID: font.ActionIncreaseWindow, Title: "Increase Window Font Size", Category: "Font"},
			{ID: font.ActionDecreaseWindow, Title: "Decrease Window Font Size", Category: "Font"},
			{ID: font.ActionResetWindow, Title: "Reset Window Font Size", Category: "Font"},

			{ID: font.ActionIncreaseSyntax, Title: "Increase Syntax Font Size", Category: "Font"},
			{ID: font.ActionDecreaseSyntax, Title: "Decrease Syntax Font Size", Category: "Font"},
			{ID: font.ActionResetSyntax, Title: "Reset Syntax Font Size", Category: "Font"},

			{ID: font.ActionIncreaseView, Title: "Increase View Font Size", Category: "Font"},
			{ID: font.ActionDecreaseView, Title: "Decrease View Font Size", Category: "Font"},
			{ID: font.ActionResetView, Title: "Reset View Font Size", Category: "Font"},
		},
		ConfigSchema: map[string]ConfigProperty{
			fontsize.KeyDefaultFontSize: {
				Type:        "number",
				Default:     fontsize.FallbackFontSize,
				Description: "Font size restored by the reset commands.",
				Minimum:     &one,
			},
			fontsize.KeyMinFontSize: {
				Type:        "number",
				Default:     fontsize.DefaultMinFontSize,
				Description: "Smallest font size the adjust commands will set.",
				Minimum:     &one,
			},
			fontsize.KeyMaxFontSize: {
				Type:        "number",
				Default:     fontsize.DefaultMaxFontSize,
				Description: "Largest font size the adjust commands will set.",
				Minimum:     &one,
			},
		},
	}
}
