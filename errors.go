package dptx

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat marks input that cannot be translated to a value of the
	// bound subtype. Out-of-range values and invalid tokens match it via
	// errors.Is.
	ErrFormat = errors.New("dptx: format error")

	// ErrNotFound is returned when a subtype id is not registered.
	ErrNotFound = errors.New("dptx: subtype not found")
)

// ErrOutOfRange indicates a numeric value or raw byte outside the value range
// of the bound subtype.
//
// Input holds the text item when the value was parsed from text. Value is
// saturated to 32 bits for literals or sequences that do not fit.
type ErrOutOfRange struct {
	Input string
	Value int
	Lower int
	Upper int
}

func (e *ErrOutOfRange) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("dptx: value %q is out of range [%d..%d]", e.Input, e.Lower, e.Upper)
	}
	return fmt.Sprintf("dptx: value %d is out of range [%d..%d]", e.Value, e.Lower, e.Upper)
}

// Is reports ErrFormat as a match.
func (e *ErrOutOfRange) Is(target error) bool { return target == ErrFormat }

// ErrUnknownFlag indicates a flag name, or a set bit, that has no element in
// the subtype's enumeration.
type ErrUnknownFlag struct {
	Subtype string
	Flag    string
	Bit     int
}

func (e *ErrUnknownFlag) Error() string {
	if e.Flag != "" {
		return fmt.Sprintf("dptx: %s has no element %q", e.Subtype, e.Flag)
	}
	return fmt.Sprintf("dptx: %s has no element for bit value %d", e.Subtype, e.Bit)
}

// ErrInvalidToken indicates a text item that is neither an integer literal
// nor a sequence of bit literals and flag names.
//
// The underlying error, if any, is available via errors.Unwrap.
type ErrInvalidToken struct {
	Subtype string
	Input   string
	Token   string
	cause   error
}

func (e *ErrInvalidToken) Error() string {
	return fmt.Sprintf("dptx: %q in %q is no element of %s", e.Token, e.Input, e.Subtype)
}

// Is reports ErrFormat as a match.
func (e *ErrInvalidToken) Is(target error) bool { return target == ErrFormat }

func (e *ErrInvalidToken) Unwrap() error { return e.cause }

// ErrBufferTooShort indicates a source or destination buffer that cannot hold
// the requested items at the given offset.
type ErrBufferTooShort struct {
	Offset int
	Need   int
	Have   int
}

func (e *ErrBufferTooShort) Error() string {
	return fmt.Sprintf("dptx: buffer too short: need %d bytes at offset %d, have %d", e.Need, e.Offset, e.Have)
}

// ErrUnsupportedSubtype indicates a descriptor that cannot describe an 8 bit
// set, or a subtype id unknown to the registry.
//
// The underlying error, if any, is available via errors.Unwrap.
type ErrUnsupportedSubtype struct {
	ID     string
	Reason string
	cause  error
}

func (e *ErrUnsupportedSubtype) Error() string {
	return fmt.Sprintf("dptx: unsupported subtype %q: %s", e.ID, e.Reason)
}

func (e *ErrUnsupportedSubtype) Unwrap() error { return e.cause }
