// Package dptx translates KNX datapoint values of the "bit array of length 8"
// family (DPT main number 21) between their one byte wire encoding and
// human readable forms.
//
// Each subtype names up to eight flags; the flag at position i of the
// subtype owns bit i of the wire byte. A Translator bound to one subtype
// accepts and produces:
//
//   - raw bytes, one item per byte (SetData, Data, DataAt)
//   - the numeric bit mask (SetNumeric, Numeric)
//   - a set of flag names (SetFlags, Flags) or a bitset.BitSet
//   - text (SetText, SetTexts, Text, AllValues)
//
// # Text Forms
//
// A text item is either an integer literal or a sequence:
//
//	t, _ := dptx.New(dptx.DptGeneralStatus)
//	t.SetText("0x0d")            // hex, also "#d"; "015" is octal; "13" decimal
//	t.SetText("1 1 0 1")         // bits, last token is bit 0
//	t.SetText("true true false true")
//	t.SetText("InAlarm Overridden OutOfService")
//
//	s, _ := t.Text() // "InAlarm Overridden OutOfService"
//	v, _ := t.Numeric() // 13
//
// # Validation
//
// Numeric and text input is validated against the subtype's value range
// [0, 2^n-1] when it is set. Raw bytes are stored as given and validated
// when read, so a translator can hold a malformed telegram and report it at
// the point of interpretation.
//
// # Catalog
//
// The built-in DPT 21 subtypes are registered at package initialization.
// Additional subtypes can be registered with Register, or loaded from JSON,
// YAML or TOML files with package catalog.
package dptx
