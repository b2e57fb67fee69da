// Package testutil provides helpers for bitkit tests: a seeded RNG and a
// plain []bool model that mirrors BitSet semantics bit by bit.
package testutil
