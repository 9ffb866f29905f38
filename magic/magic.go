// Package magic holds the scrambling constants that drive the key
// fingerprint in package fhash.
//
// The constants are a versioned asset. Fingerprints are only comparable
// between two programs that use byte-identical tables, so Default must
// never be edited in place; add a new table and bump Version instead.
package magic

// Version identifies Default.
const Version = 1

// Seed is the splitmix64 seed Default was generated from.
const Seed uint64 = 0x26FA947ACCD562BB

// Table is a set of 256 scrambling constants indexed by a byte.
type Table [256]uint64

// Uniform returns a table with every slot set to c. It is only useful
// for tests that need predictable fingerprints.
func Uniform(c uint64) *Table {
	t := new(Table)
	for i := range t {
		t[i] = c
	}
	return t
}
