// Package fhash computes the 32-bit key fingerprint used to place and
// identify entries in a slowtable.Table.
//
// The fingerprint is a keyed scramble: every key byte, mixed with its
// position and a running status byte, selects one constant of a
// magic.Table whose low 32 bits are folded into the accumulator.
// Output is bit-exact for a given table on every platform.
package fhash

import "github.com/lemon-mint/lispy/magic"

const initialStatus = 0x5A

type Hasher struct {
	table *magic.Table
}

// New returns a Hasher driven by t. A nil t selects magic.Default.
func New(t *magic.Table) *Hasher {
	if t == nil {
		t = &magic.Default
	}
	return &Hasher{table: t}
}

// Table returns the constants h was built with.
func (h *Hasher) Table() *magic.Table {
	return h.table
}

// Sum32 fingerprints key. Keys are C strings, so the scan stops at the
// first zero byte.
func (h *Hasher) Sum32(key []byte) uint32 {
	return sum32(h.table, key)
}

func (h *Hasher) Sum32String(key string) uint32 {
	return sum32(h.table, key)
}

func sum32[K string | []byte](table *magic.Table, key K) uint32 {
	var (
		sum    uint32
		status uint8 = initialStatus
		pos    uint32
	)
	for i := 0; i < len(key); i++ {
		b := key[i]
		if b == 0 {
			break
		}
		pos++
		sum ^= uint32(table[(uint32(b)^pos^uint32(status))&0xFF])
		// status = byte 0 ^ byte 3 of the accumulator in little-endian order
		status = uint8(sum) ^ uint8(sum>>24)
	}
	return sum
}

var std = New(nil)

// Sum32 fingerprints key with magic.Default.
func Sum32(key []byte) uint32 {
	return std.Sum32(key)
}
