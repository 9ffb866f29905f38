// Package slowtable is a fixed-capacity chained hash table keyed by
// C-style byte strings.
//
// The table is sized once, at 2^n buckets, and never grows. Each bucket
// is a cons.Chain of entries; new keys are pushed at the head of their
// bucket and overwritten keys are replaced in place.
//
// Keys end at their first zero byte, exactly as the fingerprint sees
// them. A value is either borrowed (the table keeps the caller's slice)
// or owned (the table copies it into a buffer of its own), chosen per
// Put call.
//
// A Table is not safe for concurrent use. Guard the whole table with a
// single lock if it is shared between goroutines.
package slowtable

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/lemon-mint/lispy/cons"
	"github.com/lemon-mint/lispy/fhash"
	"github.com/lemon-mint/lispy/slowtable/nocopy"
)

// MaxBits is the largest n accepted by NewTable.
const MaxBits = 31

var (
	ErrTooLarge   = errors.New("slowtable: table too large")
	ErrCopyLength = errors.New("slowtable: invalid copy length")
)

type Table struct {
	entries []cons.Chain[*entry]
	hash    *fhash.Hasher
	size    uint32

	// length is kept for layout compatibility and is never maintained.
	length uint32

	fingerprintOnly bool
}

type Option func(*Table)

// WithFingerprintLookup makes Get and Put match entries on the
// fingerprint alone, without comparing keys. Two keys with the same
// fingerprint then share one entry. Delete always compares keys.
func WithFingerprintLookup() Option {
	return func(t *Table) {
		t.fingerprintOnly = true
	}
}

// NewTable allocates a table of 2^n empty buckets. A nil hasher selects
// the default magic table.
func NewTable(hasher *fhash.Hasher, n uint8, opts ...Option) (*Table, error) {
	if n > MaxBits {
		return nil, fmt.Errorf("%w: 2^%d buckets", ErrTooLarge, n)
	}
	if hasher == nil {
		hasher = fhash.New(nil)
	}
	t := &Table{
		hash: hasher,
		size: 1 << n,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.entries = make([]cons.Chain[*entry], t.size)
	return t, nil
}

// Size returns the number of buckets. It never changes.
func (t *Table) Size() uint32 {
	return t.size
}

// FingerprintOnly reports whether lookups skip the key comparison.
func (t *Table) FingerprintOnly() bool {
	return t.fingerprintOnly
}

func (t *Table) bucket(hash uint32) *cons.Chain[*entry] {
	return &t.entries[hash&(t.size-1)]
}

// cstr cuts key at its terminator.
func cstr(key []byte) []byte {
	if i := bytes.IndexByte(key, 0); i >= 0 {
		return key[:i]
	}
	return key
}

// slot returns the cell holding key, or nil.
func (t *Table) slot(key []byte, hash uint32) *cons.Cell[*entry] {
	return t.bucket(hash).Find(func(e *entry) bool {
		if e.hash != hash {
			return false
		}
		return t.fingerprintOnly || bytes.Equal(e.key, key)
	})
}

// Get returns the value stored under key. The slice is the table's own
// storage for owned values and is only valid until the key is
// overwritten or deleted.
func (t *Table) Get(key []byte) ([]byte, bool) {
	key = cstr(key)
	p := t.slot(key, t.hash.Sum32(key))
	if p == nil {
		return nil, false
	}
	return p.Car().value.bytes(), true
}

func (t *Table) GetS(key string) ([]byte, bool) {
	return t.Get(nocopy.StringToBytes(key))
}

// Put binds key to value. With copyLen zero the table keeps value
// itself and the caller must leave it untouched for as long as the
// binding lives. Otherwise the first copyLen bytes of value are copied
// and the copy belongs to the table.
//
// An existing binding for key is replaced in place: its key copy and,
// if owned, its value are released, and the bucket keeps its shape.
// An owned value that the new binding borrows (for instance a slice
// just returned by Get) is not released; it stays alive until the
// garbage collector drops it.
func (t *Table) Put(key, value []byte, copyLen int) error {
	if copyLen < 0 || copyLen > len(value) {
		return fmt.Errorf("%w: %d of %d bytes", ErrCopyLength, copyLen, len(value))
	}
	key = cstr(key)
	hash := t.hash.Sum32(key)

	e := &entry{
		key:  clone(key, len(key)),
		hash: hash,
	}
	if copyLen == 0 {
		e.value = borrowed(value)
	} else {
		e.value = owned(clone(value, copyLen))
	}

	if p := t.slot(key, hash); p != nil {
		p.Car().replaceWith(e)
		p.SetCar(e)
		return nil
	}
	t.bucket(hash).Push(e)
	return nil
}

func (t *Table) PutS(key string, value []byte, copyLen int) error {
	return t.Put(nocopy.StringToBytes(key), value, copyLen)
}

// Delete removes every binding in key's bucket whose fingerprint and
// key both match. Missing keys are ignored.
func (t *Table) Delete(key []byte) {
	key = cstr(key)
	hash := t.hash.Sum32(key)
	t.bucket(hash).RemoveIf(func(e *entry) bool {
		if e.hash != hash || !bytes.Equal(e.key, key) {
			return false
		}
		e.release()
		return true
	})
}

func (t *Table) DeleteS(key string) {
	t.Delete(nocopy.StringToBytes(key))
}
