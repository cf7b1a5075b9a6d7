package dptx

import (
	"fmt"
	"math/bits"
	"regexp"
	"slices"
	"strings"
)

// MaxFlags is the number of bit positions of one item.
const MaxFlags = 8

// Subtype describes one datapoint type of the 8 bit set family.
//
// The position of a flag name in Flags is its bit position. A Subtype is
// immutable; it is safe to share between goroutines and translators.
type Subtype struct {
	id          string
	description string
	flags       []string
	upper       int
}

// NewSubtype validates and creates a subtype descriptor.
//
// Flags are ordered from bit 0 upwards. There must be between one and eight
// distinct, non-empty flag names.
func NewSubtype(id, description string, flags ...string) (*Subtype, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &ErrUnsupportedSubtype{ID: id, Reason: "empty id"}
	}
	if len(flags) == 0 {
		return nil, &ErrUnsupportedSubtype{ID: id, Reason: "no flags"}
	}
	if len(flags) > MaxFlags {
		return nil, &ErrUnsupportedSubtype{ID: id, Reason: fmt.Sprintf("%d flags exceed %d bits", len(flags), MaxFlags)}
	}
	for i, f := range flags {
		if f == "" {
			return nil, &ErrUnsupportedSubtype{ID: id, Reason: fmt.Sprintf("flag %d has no name", i)}
		}
		if slices.Index(flags[:i], f) >= 0 {
			return nil, &ErrUnsupportedSubtype{ID: id, Reason: fmt.Sprintf("duplicate flag %q", f)}
		}
	}

	return &Subtype{
		id:          id,
		description: description,
		flags:       slices.Clone(flags),
		upper:       MaxValue(len(flags)),
	}, nil
}

// MustSubtype is like NewSubtype but panics on error.
// It is meant for package level catalog declarations.
func MustSubtype(id, description string, flags ...string) *Subtype {
	st, err := NewSubtype(id, description, flags...)
	if err != nil {
		panic(err)
	}
	return st
}

// MaxValue returns the largest value of a bit set with n flags (2^n - 1).
func MaxValue(n int) int {
	return 1<<n - 1
}

// ID returns the datapoint type id, e.g. "21.001".
func (s *Subtype) ID() string { return s.id }

// Description returns the human readable name of the subtype.
func (s *Subtype) Description() string { return s.description }

// Unit returns the unit of measure. Bit sets have none.
func (s *Subtype) Unit() string { return "" }

// Flags returns a copy of the flag names, bit 0 first.
func (s *Subtype) Flags() []string { return slices.Clone(s.flags) }

// Len returns the number of flags.
func (s *Subtype) Len() int { return len(s.flags) }

// Lower returns the lower bound of the value range, always 0.
func (s *Subtype) Lower() int { return 0 }

// Upper returns the upper bound of the value range.
func (s *Subtype) Upper() int { return s.upper }

// FlagIndex returns the bit position of the flag with the given name.
// The match is exact and case-sensitive.
func (s *Subtype) FlagIndex(name string) (int, bool) {
	i := slices.Index(s.flags, name)
	return i, i >= 0
}

// FlagName returns the name of the flag for a single-bit value 1<<i.
func (s *Subtype) FlagName(bit int) (string, bool) {
	if bit <= 0 || bits.OnesCount(uint(bit)) != 1 {
		return "", false
	}
	i := bits.TrailingZeros(uint(bit))
	if i >= len(s.flags) {
		return "", false
	}
	return s.flags[i], true
}

func (s *Subtype) String() string {
	return fmt.Sprintf("%s: %s, values from %d to %d", s.id, s.description, s.Lower(), s.upper)
}

func (s *Subtype) validate(v int) error {
	if v < 0 || v > s.upper {
		return &ErrOutOfRange{Value: v, Lower: 0, Upper: s.upper}
	}
	return nil
}

var innerCapital = regexp.MustCompile(`\B([A-Z])`)

// DescriptionOf derives a description from a CamelCase type name by
// separating words at inner capitals: "GeneralStatus" becomes "General Status".
func DescriptionOf(typeName string) string {
	return innerCapital.ReplaceAllString(typeName, " $1")
}
