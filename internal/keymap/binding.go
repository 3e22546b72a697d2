// Package keymap provides key binding definitions and the opt-in
// example bindings for the font commands.
//
// No bindings ship enabled. ExampleBindings returns templates the user
// copies into their personal keymap file; the loader parses and
// validates such a file in the host's JSON keymap format.
package keymap

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key sequence that triggers this binding.
	// Formats: "C-=", "C-S-=", "g z"
	Keys string `json:"keys"`

	// Action is the command to execute, e.g. "font.increaseView".
	Action string `json:"action"`

	// Args are fixed arguments for the action.
	Args map[string]any `json:"args,omitempty"`

	// When is a condition expression that must be true for this binding.
	When string `json:"when,omitempty"`

	// Description provides documentation for the binding.
	Description string `json:"description,omitempty"`
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// WithWhen sets the condition for this binding.
func (b Binding) WithWhen(when string) Binding {
	b.When = when
	return b
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}
