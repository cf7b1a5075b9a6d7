package dptx

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bits-and-blooms/bitset"
)

// TypeSize is the wire size of one item in bytes.
const TypeSize = 1

// Translator converts between the raw bytes of an 8 bit set datapoint and
// its numeric, flag and text representations.
//
// A Translator holds one or more items; every setter replaces all items.
// Setters are atomic: on error the previous items are kept.
//
// Raw bytes passed to SetData are stored without range validation; an item
// above the subtype's upper bound is reported when it is read.
//
// A Translator is not safe for concurrent use.
type Translator struct {
	subtype *Subtype
	items   []uint8

	logger  *Logger
	metrics MetricsCollector
}

// New creates a translator for the given subtype holding one item of value 0.
func New(st *Subtype, opts ...Option) (*Translator, error) {
	if st == nil {
		return nil, &ErrUnsupportedSubtype{Reason: "nil subtype"}
	}
	// Descriptors built outside NewSubtype bypass its checks.
	if n := len(st.flags); n == 0 || n > MaxFlags || st.upper != MaxValue(n) {
		return nil, &ErrUnsupportedSubtype{ID: st.id, Reason: fmt.Sprintf("invalid flag count %d", n)}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Translator{
		subtype: st,
		items:   []uint8{0},
		logger:  o.logger.WithSubtype(st.id),
		metrics: o.metricsCollector,
	}, nil
}

// NewByID creates a translator for a registered subtype id.
func NewByID(id string, opts ...Option) (*Translator, error) {
	st, ok := Lookup(id)
	if !ok {
		return nil, &ErrUnsupportedSubtype{ID: id, Reason: "not registered", cause: ErrNotFound}
	}
	return New(st, opts...)
}

// Subtype returns the bound datapoint type.
func (t *Translator) Subtype() *Subtype { return t.subtype }

// TypeSize returns the wire size of one item in bytes.
func (t *Translator) TypeSize() int { return TypeSize }

// Len returns the number of items.
func (t *Translator) Len() int { return len(t.items) }

// SetNumeric sets one item from an unsigned value, replacing any old items.
func (t *Translator) SetNumeric(v int) error {
	start := time.Now()
	err := t.subtype.validate(v)
	if err == nil {
		t.items = []uint8{uint8(v)}
	}
	t.record(OpSetNumeric, 1, start, err)
	return err
}

// SetFlags sets one item from a set of flag names, replacing any old items.
func (t *Translator) SetFlags(names ...string) error {
	start := time.Now()
	v := 0
	var err error
	for _, name := range names {
		i, ok := t.subtype.FlagIndex(name)
		if !ok {
			err = &ErrUnknownFlag{Subtype: t.subtype.id, Flag: name}
			break
		}
		v |= 1 << i
	}
	if err == nil {
		t.items = []uint8{uint8(v)}
	}
	t.record(OpSetFlags, 1, start, err)
	return err
}

// SetText sets one item from its text form, replacing any old items.
//
// The text is either an integer literal ("13", "0x0d", "#d", "015") or a
// space separated sequence of "0", "1", "false", "true" and flag names,
// where the last token is bit 0. An empty text is 0, matching Text.
func (t *Translator) SetText(s string) error {
	return t.SetTexts(s)
}

// SetTexts sets one item per text value, replacing any old items.
func (t *Translator) SetTexts(values ...string) error {
	start := time.Now()
	var err error
	items := make([]uint8, len(values))
	if len(values) == 0 {
		err = fmt.Errorf("%w: no values for %s", ErrFormat, t.subtype.id)
	}
	for i, s := range values {
		if items[i], err = parseItem(t.subtype, s); err != nil {
			break
		}
	}
	if err == nil {
		t.items = items
	}
	t.record(OpSetText, len(values), start, err)
	return err
}

// SetData sets the items from raw bytes, starting at offset up to the end of
// data. The bytes are copied verbatim and validated only when read.
func (t *Translator) SetData(data []byte, offset int) error {
	start := time.Now()
	var err error
	n := 0
	if offset < 0 || offset >= len(data) {
		err = &ErrBufferTooShort{Offset: offset, Need: TypeSize, Have: max(len(data)-max(offset, 0), 0)}
	} else {
		n = (len(data) - offset) / TypeSize
		t.items = slices.Clone(data[offset : offset+n*TypeSize])
	}
	t.record(OpSetData, n, start, err)
	return err
}

// SetBitSet sets one item from a bit set where bit i asserts flag i.
func (t *Translator) SetBitSet(b *bitset.BitSet) error {
	start := time.Now()
	v := 0
	var err error
	if b != nil {
		for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
			if i >= uint(t.subtype.Len()) {
				err = &ErrOutOfRange{Value: v | 1<<min(i, 30), Lower: 0, Upper: t.subtype.upper}
				break
			}
			v |= 1 << i
		}
	}
	if err == nil {
		t.items = []uint8{uint8(v)}
	}
	t.record(OpSetBitSet, 1, start, err)
	return err
}

// Numeric returns the value of the first item.
func (t *Translator) Numeric() (int, error) {
	return t.NumericAt(0)
}

// NumericAt returns the value of item i.
func (t *Translator) NumericAt(i int) (int, error) {
	start := time.Now()
	err := t.checkIndex(i)
	v := 0
	if err == nil {
		v = int(t.items[i])
		err = t.subtype.validate(v)
	}
	t.record(OpNumeric, 1, start, err)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// Text returns the set flag names of the first item, highest bit first,
// separated by a single space. It returns "" if no flag is set.
func (t *Translator) Text() (string, error) {
	start := time.Now()
	s, err := formatItem(t.subtype, t.items[0])
	t.record(OpText, 1, start, err)
	return s, err
}

// Flags returns the set flag names of the first item, lowest bit first.
func (t *Translator) Flags() ([]string, error) {
	return t.FlagsAt(0)
}

// FlagsAt returns the set flag names of item i, lowest bit first.
func (t *Translator) FlagsAt(i int) ([]string, error) {
	start := time.Now()
	var flags []string
	err := t.checkIndex(i)
	if err == nil {
		flags, err = flagsOf(t.subtype, t.items[i])
	}
	t.record(OpFlags, 1, start, err)
	return flags, err
}

// AllValues returns the text form of every item.
func (t *Translator) AllValues() ([]string, error) {
	start := time.Now()
	values := make([]string, len(t.items))
	var err error
	for i, v := range t.items {
		if values[i], err = formatItem(t.subtype, v); err != nil {
			values = nil
			break
		}
	}
	t.record(OpText, len(t.items), start, err)
	return values, err
}

// BitSet returns the first item as a bit set where bit i asserts flag i.
func (t *Translator) BitSet() (*bitset.BitSet, error) {
	start := time.Now()
	v := t.items[0]
	err := t.subtype.validate(int(v))
	var b *bitset.BitSet
	if err == nil {
		b = bitset.New(uint(t.subtype.Len()))
		for i := range t.subtype.Len() {
			if v&(1<<i) != 0 {
				b.Set(uint(i))
			}
		}
	}
	t.record(OpBitSet, 1, start, err)
	return b, err
}

// Data returns a copy of all items.
func (t *Translator) Data() []byte {
	return slices.Clone(t.items)
}

// DataAt copies all items into dst starting at offset and returns dst.
// Bytes outside the copied span are left untouched.
func (t *Translator) DataAt(dst []byte, offset int) ([]byte, error) {
	start := time.Now()
	need := len(t.items) * TypeSize
	var err error
	if offset < 0 || offset > len(dst) || len(dst)-offset < need {
		err = &ErrBufferTooShort{Offset: offset, Need: need, Have: max(len(dst)-max(offset, 0), 0)}
	} else {
		copy(dst[offset:], t.items)
	}
	t.record(OpData, len(t.items), start, err)
	if err != nil {
		return nil, err
	}
	return dst, nil
}

func (t *Translator) String() string {
	values := make([]string, len(t.items))
	for i, v := range t.items {
		s, err := formatItem(t.subtype, v)
		if err != nil {
			s = "?"
		}
		values[i] = s
	}
	return t.subtype.id + " " + strings.Join(values, ", ")
}

func (t *Translator) checkIndex(i int) error {
	if i < 0 || i >= len(t.items) {
		return fmt.Errorf("dptx: item index %d out of range [0..%d)", i, len(t.items))
	}
	return nil
}

func (t *Translator) record(op Op, items int, start time.Time, err error) {
	t.metrics.RecordTranslate(t.subtype.id, op, items, time.Since(start), err)
	t.logger.LogTranslate(context.Background(), op, items, err)
}
