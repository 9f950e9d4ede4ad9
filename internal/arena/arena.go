// Package arena stores values in a growable slice and refers to them by
// unsigned handles instead of pointers. Handle 0 is reserved as nil, freed
// handles are kept in a linked list threaded through the free slots and are
// reused before the slice grows.
package arena

import (
	"golang.org/x/exp/constraints"
)

type slot[T any, S constraints.Unsigned] struct {
	v    T
	next S // next free handle, only meaningful while the slot is free
}

// Arena of T addressed by handles of type S. S bounds the number of live plus
// free slots; Alloc panics when S can't address a new slot.
// The zero value is not usable, create it with New.
type Arena[T any, S constraints.Unsigned] struct {
	slots []slot[T, S] // slots[0] is the nil slot, never handed out
	free  S
	live  int
}

// New Arena with room for hint values before growing.
func New[T any, S constraints.Unsigned](hint int) *Arena[T, S] {
	return &Arena[T, S]{slots: make([]slot[T, S], 1, hint+1)}
}

// Alloc stores v and returns its handle, which is never 0.
// Time: amortized O(1)
func (u *Arena[T, S]) Alloc(v T) S {
	u.live++
	if i := u.free; i != 0 {
		u.free = u.slots[i].next
		u.slots[i] = slot[T, S]{v: v}
		return i
	}
	i := S(len(u.slots))
	if int(i) != len(u.slots) || i == 0 {
		panic("arena: handle type overflow")
	}
	u.slots = append(u.slots, slot[T, S]{v: v})
	return i
}

// Free the slot at i and return the value it held. The slot is zeroed so the
// arena keeps no reference to the value. i must be a live handle.
func (u *Arena[T, S]) Free(i S) T {
	v := u.slots[i].v
	u.slots[i] = slot[T, S]{next: u.free}
	u.free = i
	u.live--
	return v
}

// At returns a pointer to the value at i. The pointer is invalidated by the
// next Alloc, so don't hold it across one.
func (u *Arena[T, S]) At(i S) *T {
	return &u.slots[i].v
}

// Len is the number of live values.
func (u *Arena[T, S]) Len() int {
	return u.live
}

// Reset frees every handle at once and zeroes the backing slots. The
// allocated memory is kept.
func (u *Arena[T, S]) Reset() {
	clear(u.slots)
	u.slots = u.slots[:1]
	u.free, u.live = 0, 0
}
