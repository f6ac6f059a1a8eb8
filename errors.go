package hxhead

import "errors"

// Sentinel errors for element construction and head mutation.
var (
	// ErrInvalidAttributeCombination is returned when a meta tag names none,
	// or more than one, of name, http-equiv and property.
	ErrInvalidAttributeCombination = errors.New("hxhead: meta requires exactly one of name, http-equiv or property")

	// ErrMissingPrerequisite is returned when a convenience mutation needs
	// state that was never set, such as appending to a title that does not
	// exist.
	ErrMissingPrerequisite = errors.New("hxhead: missing prerequisite")
)

// IsInvalidAttributeCombination checks if err is an invalid meta attribute error.
func IsInvalidAttributeCombination(err error) bool {
	return errors.Is(err, ErrInvalidAttributeCombination)
}

// IsMissingPrerequisite checks if err is a missing prerequisite error.
func IsMissingPrerequisite(err error) bool {
	return errors.Is(err, ErrMissingPrerequisite)
}
