package dptx

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNotLiteral = errors.New("not an integer literal")

// decodeInt parses a signed integer literal whose radix is given by its
// prefix: "0x", "0X" or "#" for hex, a leading "0" followed by more digits
// for octal, decimal otherwise.
func decodeInt(s string) (int64, error) {
	if s == "" {
		return 0, errNotLiteral
	}
	neg := false
	i := 0
	switch s[0] {
	case '-':
		neg = true
		i++
	case '+':
		i++
	}

	base := 10
	switch {
	case strings.HasPrefix(s[i:], "0x"), strings.HasPrefix(s[i:], "0X"):
		base = 16
		i += 2
	case strings.HasPrefix(s[i:], "#"):
		base = 16
		i++
	case strings.HasPrefix(s[i:], "0") && len(s) > i+1:
		base = 8
		i++
	}

	digits := s[i:]
	if digits == "" || digits[0] == '-' || digits[0] == '+' {
		return 0, errNotLiteral
	}
	if neg {
		digits = "-" + digits
	}
	v, err := strconv.ParseInt(digits, base, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, err
		}
		return 0, errNotLiteral
	}
	return v, nil
}

// parseItem translates one text item into a validated item byte.
func parseItem(st *Subtype, s string) (uint8, error) {
	s = strings.TrimSpace(s)
	// Text renders 0 as the empty string.
	if s == "" {
		return 0, nil
	}

	v, err := decodeInt(s)
	switch {
	case err == nil:
		if err := st.validate(int(v)); err != nil {
			return 0, withInput(err, s)
		}
		return uint8(v), nil
	case errors.Is(err, strconv.ErrRange):
		return 0, &ErrOutOfRange{Input: s, Value: int(v), Lower: st.Lower(), Upper: st.Upper()}
	}

	// The last token is bit 0.
	tokens := strings.Split(s, " ")
	result := 0
	for i := range tokens {
		tok := tokens[len(tokens)-1-i]
		switch {
		case tok == "1" || strings.EqualFold(tok, "true"):
			if i >= 31 {
				result = math.MaxInt32
				continue
			}
			result |= 1 << i
		case tok == "0" || strings.EqualFold(tok, "false"):
		default:
			idx, ok := st.FlagIndex(tok)
			if !ok {
				return 0, &ErrInvalidToken{
					Subtype: st.id,
					Input:   s,
					Token:   tok,
					cause:   &ErrUnknownFlag{Subtype: st.id, Flag: tok},
				}
			}
			result |= 1 << idx
		}
	}
	if err := st.validate(result); err != nil {
		return 0, withInput(err, s)
	}
	return uint8(result), nil
}

// withInput attaches the offending text item to a range error.
func withInput(err error, s string) error {
	var oor *ErrOutOfRange
	if errors.As(err, &oor) {
		oor.Input = s
	}
	return err
}

// formatItem renders the set flags of v, highest bit first.
func formatItem(st *Subtype, v uint8) (string, error) {
	if err := st.validate(int(v)); err != nil {
		return "", err
	}
	var b strings.Builder
	for bit := 0x80; bit > 0; bit >>= 1 {
		if int(v)&bit == 0 {
			continue
		}
		name, ok := st.FlagName(bit)
		if !ok {
			return "", &ErrUnknownFlag{Subtype: st.id, Bit: bit}
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
	}
	return b.String(), nil
}

// flagsOf returns the set flags of v, lowest bit first.
func flagsOf(st *Subtype, v uint8) ([]string, error) {
	if err := st.validate(int(v)); err != nil {
		return nil, err
	}
	flags := make([]string, 0, st.Len())
	for i, name := range st.flags {
		if v&(1<<i) != 0 {
			flags = append(flags, name)
		}
	}
	return flags, nil
}
