package slowtable

import (
	"unsafe"

	"github.com/bytedance/gopkg/lang/mcache"
)

// value is what an entry stores: either a caller's buffer or a copy the
// table allocated and must give back.
type value interface {
	bytes() []byte
	release()
}

// borrowed aliases caller memory. The caller keeps it alive until the
// key is overwritten or deleted.
type borrowed []byte

func (v borrowed) bytes() []byte { return v }

func (borrowed) release() {}

// owned is a table-allocated copy.
type owned []byte

func (v owned) bytes() []byte { return v }

func (v owned) release() { free(v) }

func alloc(n int) []byte {
	if n == 0 {
		return nil
	}
	return mcache.Malloc(n)
}

// freeBuffer hands a buffer back to mcache.
var freeBuffer = mcache.Free

func free(b []byte) {
	if cap(b) == 0 {
		return
	}
	freeBuffer(b)
}

// overlaps reports whether a and b share any backing memory.
func overlaps(a, b []byte) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return false
	}
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	hi := lo + uintptr(cap(a))
	blo := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	bhi := blo + uintptr(cap(b))
	return lo < bhi && blo < hi
}

// clone copies the first n bytes of src into a fresh buffer.
func clone(src []byte, n int) []byte {
	dst := alloc(n)
	copy(dst, src[:n])
	return dst
}

type entry struct {
	key   []byte
	value value
	hash  uint32
}

// replaceWith releases e in favour of next. An owned buffer that next
// borrows is handed over instead of freed.
func (e *entry) replaceWith(next *entry) {
	if b, ok := next.value.(borrowed); ok {
		if o, ok := e.value.(owned); ok && overlaps(o, b) {
			e.value = borrowed(o)
		}
	}
	e.release()
}

func (e *entry) release() {
	free(e.key)
	e.key = nil
	e.value.release()
	e.value = nil
}
