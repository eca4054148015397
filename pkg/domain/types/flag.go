package types

import "strings"

// Flag is a tri-state boolean read from a raw input string
type Flag int

const (
	FlagAbsent Flag = iota
	FlagFalse
	FlagTrue
)

// ParseFlag converts a raw input value into a Flag. Blank input is absent, the
// exact word "false" is false, and every other value is true ("0" and "no" included).
func ParseFlag(raw string) Flag {
	switch strings.TrimSpace(raw) {
	case "":
		return FlagAbsent
	case "false":
		return FlagFalse
	default:
		return FlagTrue
	}
}

// Enabled reports whether the flag is explicitly true
func (f Flag) Enabled() bool {
	return f == FlagTrue
}

// IsSet reports whether a value was given at all
func (f Flag) IsSet() bool {
	return f != FlagAbsent
}

func (f Flag) String() string {
	switch f {
	case FlagTrue:
		return "true"
	case FlagFalse:
		return "false"
	default:
		return "absent"
	}
}
