package identifier

import (
	"fmt"

	"github.com/google/uuid"
)

const textLen = 36

// parseCanonical accepts only the 8-4-4-4-12 textual form with the RFC 4122
// variant. Hex digits may be upper or lower case.
func parseCanonical(text string) (uuid.UUID, error) {
	if len(text) != textLen {
		return uuid.Nil, fmt.Errorf("%q: expected %d characters, got %d", text, textLen, len(text))
	}
	for _, i := range []int{8, 13, 18, 23} {
		if text[i] != '-' {
			return uuid.Nil, fmt.Errorf("%q: expected '-' at %d", text, i)
		}
	}
	parsed, err := uuid.Parse(text)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%q: %v", text, err)
	}
	if parsed.Variant() != uuid.RFC4122 {
		return uuid.Nil, fmt.Errorf("%q: unexpected variant %v", text, parsed.Variant())
	}
	return parsed, nil
}

// Validate checks that id is a version 5 RFC 4122 UUID in its canonical
// 8-4-4-4-12 textual form.
func Validate(id string) error {
	parsed, err := parseCanonical(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	if v := parsed.Version(); v != 5 {
		return fmt.Errorf("%w: %q: expected version 5, got %d", ErrInvalidID, id, v)
	}
	return nil
}
