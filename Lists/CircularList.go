package Lists

import (
	"strconv"

	"github.com/g-m-twostay/go-records/Records"
	"github.com/g-m-twostay/go-records/internal/arena"
	"go.uber.org/zap"
)

var _ Records.Container = (*CircularList)(nil)

// handle of a node in the arena, 0 is nil.
type handle = uint32

type node struct {
	r    Records.Record
	next handle
}

// CircularList is a capacity bounded circular singly linked list of records.
// Inserting into a full list evicts the oldest record (the head) first, so
// Insert never fails. Nodes are held in an arena and linked by handle; after
// every mutation either head == tail == 0 (empty) or tail.next == head.
// It is not safe for concurrent use without external locking.
type CircularList struct {
	head, tail handle
	size, cap  int
	nodes      *arena.Arena[node, handle]
	log        *zap.Logger
}

// MakeCircularList with Records.DefaultCapacity unless overridden by
// Records.WithCapacity. Panics with *Records.CapacityError on a capacity below 1.
func MakeCircularList(opts ...Records.Option) *CircularList {
	o := Records.MustApply(opts...)
	return &CircularList{
		cap:   o.Capacity,
		nodes: arena.New[node, handle](o.Capacity),
		log:   o.Logger,
	}
}

func (u *CircularList) next(h handle) handle {
	return u.nodes.At(h).next
}

func (u *CircularList) Len() int {
	return u.size
}

func (u *CircularList) Cap() int {
	return u.cap
}

// Insert r as the new tail, evicting the head first if the list is full.
// Always returns nil.
// Time: O(1)
func (u *CircularList) Insert(r Records.Record) error {
	if u.size >= u.cap {
		if old, ok := u.RemoveFront(); ok {
			u.log.Debug("circular list full, evicted oldest record",
				zap.Uint64("evicted", old.ID),
				zap.Uint64("id", r.ID),
				zap.Int("cap", u.cap),
			)
		}
	}
	n := u.nodes.Alloc(node{r, u.head})
	if u.head == 0 {
		u.head, u.tail = n, n
		u.nodes.At(n).next = n
	} else {
		u.nodes.At(u.tail).next = n
		u.tail = n
	}
	u.size++
	return nil
}

// RemoveFront removes and returns the head record. It's a no-op returning
// false on an empty list.
// Time: O(1)
func (u *CircularList) RemoveFront() (Records.Record, bool) {
	if u.head == 0 {
		return Records.Record{}, false
	}
	h := u.head
	if u.head == u.tail {
		u.head, u.tail = 0, 0
	} else {
		u.head = u.next(h)
		u.nodes.At(u.tail).next = u.head
	}
	u.size--
	return u.nodes.Free(h).r, true
}

// RemoveByID removes the first record, counting from the head, whose ID is
// id. Returns false, leaving the list untouched, if there's no such record.
// Time: O(n)
func (u *CircularList) RemoveByID(id uint64) bool {
	_, ok := u.take(id)
	return ok
}

// Take is RemoveByID that also returns the removed record, or a
// *Records.NotFoundError.
func (u *CircularList) Take(id uint64) (Records.Record, error) {
	r, ok := u.take(id)
	if !ok {
		return r, &Records.NotFoundError{Key: strconv.FormatUint(id, 10)}
	}
	return r, nil
}

func (u *CircularList) take(id uint64) (Records.Record, bool) {
	if u.head == 0 {
		return Records.Record{}, false
	}
	for prev, cur := u.tail, u.head; ; prev, cur = cur, u.next(cur) {
		if n := u.nodes.At(cur); n.r.ID == id {
			if cur == u.head {
				return u.RemoveFront()
			}
			u.nodes.At(prev).next = n.next
			if cur == u.tail {
				u.tail = prev
			}
			u.size--
			return u.nodes.Free(cur).r, true
		}
		if u.next(cur) == u.head {
			return Records.Record{}, false
		}
	}
}

// Find the first record, counting from the head, whose ID is id.
func (u *CircularList) Find(id uint64) (Records.Record, bool) {
	if u.head == 0 {
		return Records.Record{}, false
	}
	for cur := u.head; ; {
		if n := u.nodes.At(cur); n.r.ID == id {
			return n.r, true
		} else if cur = n.next; cur == u.head {
			return Records.Record{}, false
		}
	}
}

// List the records from head to tail, one full cycle.
// Time: O(n)
func (u *CircularList) List() []Records.Record {
	rs := make([]Records.Record, 0, u.size)
	if u.head == 0 {
		return rs
	}
	for cur := u.head; ; {
		n := u.nodes.At(cur)
		rs = append(rs, n.r)
		if cur = n.next; cur == u.head {
			return rs
		}
	}
}

// Clear drops every record.
func (u *CircularList) Clear() {
	u.head, u.tail, u.size = 0, 0, 0
	u.nodes.Reset()
}
