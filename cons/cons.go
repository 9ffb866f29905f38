// Package cons implements singly linked chains of cons cells.
//
// A Chain owns every Cell reachable from its head. A Cell never owns
// its payload: dropping a cell leaves the payload alive, and the caller
// stays responsible for whatever the payload refers to.
//
// Chains are not safe for concurrent use.
package cons

import "errors"

var (
	// ErrEmptyChain is returned when popping a chain with no cells.
	ErrEmptyChain = errors.New("cons: empty chain")
	// ErrShortChain is returned when a cell has no successor to read.
	ErrShortChain = errors.New("cons: chain too short")
)

type Cell[T any] struct {
	data T
	next *Cell[T]
}

// Cons returns a new cell holding car in front of cdr.
func Cons[T any](car T, cdr *Cell[T]) *Cell[T] {
	return &Cell[T]{data: car, next: cdr}
}

func (c *Cell[T]) Car() T { return c.data }

func (c *Cell[T]) SetCar(data T) T {
	c.data = data
	return data
}

func (c *Cell[T]) Cdr() *Cell[T] { return c.next }

func (c *Cell[T]) SetCdr(next *Cell[T]) *Cell[T] {
	c.next = next
	return next
}

// Cadr returns the payload of the cell after c.
func (c *Cell[T]) Cadr() (T, error) {
	if c.next == nil {
		var zero T
		return zero, ErrShortChain
	}
	return c.next.data, nil
}

// SetCadr overwrites the payload of the cell after c.
func (c *Cell[T]) SetCadr(data T) error {
	if c.next == nil {
		return ErrShortChain
	}
	c.next.data = data
	return nil
}

// Chain is a possibly empty list of cells. The zero value is an empty
// chain ready to use.
type Chain[T any] struct {
	head *Cell[T]
}

// FromSlice builds a chain holding items in order.
func FromSlice[T any](items []T) *Chain[T] {
	c := new(Chain[T])
	for i := len(items) - 1; i >= 0; i-- {
		c.Push(items[i])
	}
	return c
}

func (c *Chain[T]) Head() *Cell[T] { return c.head }

func (c *Chain[T]) Empty() bool { return c.head == nil }

func (c *Chain[T]) Len() int {
	n := 0
	for p := c.head; p != nil; p = p.next {
		n++
	}
	return n
}

// Push prepends data to the chain.
func (c *Chain[T]) Push(data T) {
	c.head = Cons(data, c.head)
}

// Pop unlinks the head cell and returns its payload. Ownership of the
// payload passes to the caller.
func (c *Chain[T]) Pop() (T, error) {
	if c.head == nil {
		var zero T
		return zero, ErrEmptyChain
	}
	p := c.head
	c.head = p.next
	p.next = nil
	return p.data, nil
}

// Remove splices target out of the chain. Cells are matched by
// identity, never by payload. It reports whether target was found.
func (c *Chain[T]) Remove(target *Cell[T]) bool {
	for link := &c.head; *link != nil; link = &(*link).next {
		if *link == target {
			*link = target.next
			target.next = nil
			return true
		}
	}
	return false
}

// RemoveIf splices out every cell whose payload satisfies match and
// returns how many cells were removed. The whole chain is scanned.
func (c *Chain[T]) RemoveIf(match func(T) bool) int {
	n := 0
	link := &c.head
	for *link != nil {
		p := *link
		if match(p.data) {
			*link = p.next
			p.next = nil
			n++
			continue
		}
		link = &p.next
	}
	return n
}

// Free drops every cell. Payloads are left untouched.
func (c *Chain[T]) Free() {
	for c.head != nil {
		next := c.head.next
		c.head.next = nil
		c.head = next
	}
}

// Each walks the chain from the head and stops when fn returns false.
func (c *Chain[T]) Each(fn func(*Cell[T]) bool) {
	for p := c.head; p != nil; p = p.next {
		if !fn(p) {
			return
		}
	}
}

// Find returns the first cell whose payload satisfies match.
func (c *Chain[T]) Find(match func(T) bool) *Cell[T] {
	for p := c.head; p != nil; p = p.next {
		if match(p.data) {
			return p
		}
	}
	return nil
}

// Nth returns the payload at zero-based position i.
func (c *Chain[T]) Nth(i int) (T, bool) {
	if i >= 0 {
		for p := c.head; p != nil; p = p.next {
			if i == 0 {
				return p.data, true
			}
			i--
		}
	}
	var zero T
	return zero, false
}

// SetNth overwrites the payload at position i. Out of range positions
// are ignored.
func (c *Chain[T]) SetNth(i int, data T) {
	if i < 0 {
		return
	}
	for p := c.head; p != nil; p = p.next {
		if i == 0 {
			p.data = data
			return
		}
		i--
	}
}

// Map calls f on every payload in order.
func (c *Chain[T]) Map(f func(T)) {
	for p := c.head; p != nil; p = p.next {
		f(p.data)
	}
}

// Slice copies the payloads into a new slice.
func (c *Chain[T]) Slice() []T {
	var out []T
	for p := c.head; p != nil; p = p.next {
		out = append(out, p.data)
	}
	return out
}

// MapCar returns a new chain holding f of every payload of c, in the
// same order. c is not modified.
func MapCar[T, U any](c *Chain[T], f func(T) U) *Chain[U] {
	out := new(Chain[U])
	tail := &out.head
	for p := c.head; p != nil; p = p.next {
		*tail = Cons(f(p.data), nil)
		tail = &(*tail).next
	}
	return out
}
