package keymap

import "encoding/json"

// ExampleBindings returns the opt-in binding templates. None of these
// are registered automatically; the user copies the ones they want into
// their personal keymap file.
func ExampleBindings() []Binding {
	return []Binding{
		NewBinding("C-=", "font.increaseView").
			WithDescription("Increase the font size of the current view"),
		NewBinding("C--", "font.decreaseView").
			WithDescription("Decrease the font size of the current view"),
		NewBinding("C-0", "font.resetView").
			WithDescription("Reset the current view to the default font size"),

		NewBinding("C-S-=", "font.increaseGlobal").
			WithDescription("Increase the global font size"),
		NewBinding("C-S--", "font.decreaseGlobal").
			WithDescription("Decrease the global font size"),
		NewBinding("C-S-0", "font.resetGlobal").
			WithDescription("Reset the global font size to the default"),

		NewBinding("g z i", "font.increaseWindow").
			WithDescription("Increase the font size for the current window"),
		NewBinding("g z d", "font.decreaseWindow").
			WithDescription("Decrease the font size for the current window"),
		NewBinding("g z r", "font.resetWindow").
			WithDescription("Reset the font size for the current window"),

		NewBinding("g z I", "font.increaseSyntax").
			WithDescription("Increase the font size for the current syntax"),
		NewBinding("g z D", "font.decreaseSyntax").
			WithDescription("Decrease the font size for the current syntax"),
		NewBinding("g z R", "font.resetSyntax").
			WithDescription("Reset the font size for the current syntax"),
	}
}

// ExampleKeymapJSON renders the example bindings as a keymap file the
// user can copy from.
func ExampleKeymapJSON() ([]byte, error) {
	km := Keymap{
		Name:     "fontscale examples",
		Bindings: ExampleBindings(),
	}
	return json.MarshalIndent(km, "", "  ")
}
