package testutil

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/hupe1980/dptx"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Subtype returns a valid subtype with a random number of flags.
func (r *RNG) Subtype(id string) *dptx.Subtype {
	n := 1 + r.Intn(dptx.MaxFlags)
	flags := make([]string, n)
	for i := range flags {
		flags[i] = fmt.Sprintf("Flag%d", i)
	}
	return dptx.MustSubtype(id, fmt.Sprintf("Random %d", n), flags...)
}

// Value returns a random value in the range of st.
func (r *RNG) Value(st *dptx.Subtype) int {
	return r.Intn(st.Upper() + 1)
}

// FlagSet returns a random subset of the flags of st together with its
// bit mask.
func (r *RNG) FlagSet(st *dptx.Subtype) ([]string, int) {
	mask := r.Value(st)
	var flags []string
	for i, f := range st.Flags() {
		if mask&(1<<i) != 0 {
			flags = append(flags, f)
		}
	}
	r.mu.Lock()
	r.rand.Shuffle(len(flags), func(i, j int) { flags[i], flags[j] = flags[j], flags[i] })
	r.mu.Unlock()
	return flags, mask
}

// Bytes returns n random item bytes within the range of st.
func (r *RNG) Bytes(st *dptx.Subtype, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.Value(st))
	}
	return b
}

// BitSequence renders v as width space separated bits, most significant
// first.
func BitSequence(v, width int) string {
	bits := make([]string, width)
	for i := range bits {
		if v&(1<<(width-1-i)) != 0 {
			bits[i] = "1"
		} else {
			bits[i] = "0"
		}
	}
	return strings.Join(bits, " ")
}
