// Package testutil provides testing utilities for dptx.
//
// This package is intended for use in tests only. It generates random
// subtypes, flag sets and wire bytes from a seeded, reproducible source.
//
// # Random Subtypes
//
//	rng := testutil.NewRNG(seed)
//	st := rng.Subtype("21.900")     // 1..8 flags named Flag0, Flag1, ...
//	flags := rng.FlagSet(st)        // random subset of st.Flags()
//	raw := rng.Bytes(st, 16)        // 16 in-range item bytes
//
// # Text Forms
//
//	s := testutil.BitSequence(13, 5) // "0 1 1 0 1"
package testutil
