// Package uid implements fixed-length record identifiers and their
// pseudorandom generation.
//
// A UID is exactly 7 bytes drawn from the full byte range [0, 255].
// Identifiers carry no structure: equality is byte equality and the
// only validated invariant is length.
package uid

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// Size is the exact length of every UID in bytes.
const Size = 7

// UID is a fixed-length record identifier.
//
// The zero value is a valid (all-zero) UID; use Parse or a Generator
// to obtain meaningful values.
type UID [Size]byte

// InvalidLengthError reports an attempt to construct a UID from input
// that is not exactly Size bytes long.
type InvalidLengthError struct {
	// Length is the rejected input length.
	Length int
}

// Error implements the error interface.
func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("uid must be exactly %d bytes, got %d", Size, e.Length)
}

// IsInvalidLength returns true if the error is a UID length violation.
// Uses errors.As to handle wrapped errors.
func IsInvalidLength(err error) bool {
	var le *InvalidLengthError
	return errors.As(err, &le)
}

// Parse constructs a UID from a byte slice.
// Returns InvalidLengthError unless len(b) == Size.
func Parse(b []byte) (UID, error) {
	if len(b) != Size {
		return UID{}, &InvalidLengthError{Length: len(b)}
	}
	var u UID
	copy(u[:], b)
	return u, nil
}

// ParseString constructs a UID from a string.
// Returns InvalidLengthError unless the string is Size bytes long.
// Length is measured in bytes, not runes.
func ParseString(s string) (UID, error) {
	return Parse([]byte(s))
}

// MustParse is like ParseString but panics on invalid input.
// Intended for literal identifiers in demos and tests.
func MustParse(s string) UID {
	u, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Bytes returns a copy of the identifier's bytes.
func (u UID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, u[:])
	return b
}

// String renders the UID for display.
// Printable ASCII identifiers (the demo literals) render verbatim;
// anything else renders as quoted bytes so random UIDs stay legible
// in logs and reports.
func (u UID) String() string {
	for _, b := range u {
		if b > unicode.MaxASCII || !strconv.IsPrint(rune(b)) {
			return strconv.Quote(string(u[:]))
		}
	}
	return string(u[:])
}
