package glyph

import "fmt"

// ResourceError reports a missing or malformed font resource
type ResourceError struct {
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("glyph resource %s: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// UnsupportedCharError reports a character outside the supported alphabet
type UnsupportedCharError struct {
	Char rune
}

func (e *UnsupportedCharError) Error() string {
	return fmt.Sprintf("character %q is unavailable", e.Char)
}
