package fontsize

import (
	"errors"
	"fmt"
)

// ErrUnknownOp indicates an action outside increase/decrease/reset.
// This is a wiring bug in the command definitions and fails loudly.
var ErrUnknownOp = errors.New("fontsize: unknown font action")

// Op is a font size operation.
type Op uint8

const (
	// OpIncrease steps the font size up.
	OpIncrease Op = iota
	// OpDecrease steps the font size down.
	OpDecrease
	// OpReset restores the configured default.
	OpReset
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpIncrease:
		return "increase"
	case OpDecrease:
		return "decrease"
	case OpReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ParseOp parses an operation name.
func ParseOp(name string) (Op, error) {
	switch name {
	case "increase":
		return OpIncrease, nil
	case "decrease":
		return OpDecrease, nil
	case "reset":
		return OpReset, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
}
