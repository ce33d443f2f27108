package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Mark bounds, inclusive.
const (
	MinMark = 0
	MaxMark = 100
)

// MarkErrorKind classifies why a raw mark was rejected.
type MarkErrorKind int

const (
	// MarkNotInteger means the input did not parse as a base-10 integer.
	MarkNotInteger MarkErrorKind = iota + 1

	// MarkOutOfRange means the integer was outside [MinMark, MaxMark].
	MarkOutOfRange
)

// String returns the string representation of the kind.
func (k MarkErrorKind) String() string {
	switch k {
	case MarkNotInteger:
		return "not_integer"
	case MarkOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// MarkError is returned by ParseMark.
type MarkError struct {
	Kind  MarkErrorKind
	Input string
}

// Error implements error.
func (e *MarkError) Error() string {
	switch e.Kind {
	case MarkOutOfRange:
		return fmt.Sprintf("mark %q out of range %d-%d", e.Input, MinMark, MaxMark)
	default:
		return fmt.Sprintf("mark %q is not an integer", e.Input)
	}
}

// Is reports ErrInvalidMark as a match so callers can test the class.
func (e *MarkError) Is(target error) bool {
	return target == ErrInvalidMark
}

// ParseMark validates raw user input as a mark.
func ParseMark(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &MarkError{Kind: MarkNotInteger, Input: raw}
	}
	if value < MinMark || value > MaxMark {
		return 0, &MarkError{Kind: MarkOutOfRange, Input: raw}
	}
	return value, nil
}
