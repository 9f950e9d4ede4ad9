package Queues

import (
	"github.com/g-m-twostay/go-records/Records"
	"go.uber.org/zap"
)

// sentinel index of an empty CircularQueue.
const sentinel = -1

// CircularQueue is a FIFO over a preallocated ring of fixed capacity. front
// and rear both hold sentinel iff the queue is empty; otherwise the live slots
// are front..rear inclusive, wrapping around the ring. An Enqueue into a full
// queue is rejected, nothing is overwritten.
// It is not safe for concurrent use without external locking.
type CircularQueue struct {
	front, rear int
	content     []Records.Record
	log         *zap.Logger
}

// MakeCircularQueue with Records.DefaultCapacity unless overridden by
// Records.WithCapacity. Panics with *Records.CapacityError on a capacity below 1.
func MakeCircularQueue(opts ...Records.Option) *CircularQueue {
	o := Records.MustApply(opts...)
	return &CircularQueue{sentinel, sentinel, make([]Records.Record, o.Capacity), o.Logger}
}

func (this *CircularQueue) Cap() int {
	return len(this.content)
}

func (this *CircularQueue) Empty() bool {
	return this.front == sentinel
}

// Full reports whether the next Enqueue would be rejected.
func (this *CircularQueue) Full() bool {
	return this.front != sentinel && (this.rear+1)%len(this.content) == this.front
}

func (this *CircularQueue) Len() int {
	if this.front == sentinel {
		return 0
	}
	return (this.rear-this.front+len(this.content))%len(this.content) + 1
}

// Enqueue r at the rear. Returns *Records.FullError, leaving the queue
// unchanged, if the ring is full.
// Time: O(1)
func (this *CircularQueue) Enqueue(r Records.Record) error {
	next := (this.rear + 1) % len(this.content)
	if this.front != sentinel && next == this.front {
		this.log.Debug("circular queue full, record rejected",
			zap.Uint64("id", r.ID),
			zap.Int("cap", len(this.content)),
		)
		return &Records.FullError{Cap: len(this.content)}
	}
	if this.front == sentinel {
		this.front, this.rear = 0, 0
	} else {
		this.rear = next
	}
	this.content[this.rear] = r
	return nil
}

func (this *CircularQueue) Insert(r Records.Record) error {
	return this.Enqueue(r)
}

// Dequeue the front record. Removing the last record resets both indices to
// the sentinel.
// Time: O(1)
func (this *CircularQueue) Dequeue() (Records.Record, error) {
	if this.front == sentinel {
		return Records.Record{}, &Records.EmptyError{Op: "dequeue"}
	}
	r := this.content[this.front]
	this.content[this.front] = Records.Record{}
	if this.front == this.rear {
		this.front, this.rear = sentinel, sentinel
	} else {
		this.front = (this.front + 1) % len(this.content)
	}
	return r, nil
}

func (this *CircularQueue) Peek() (Records.Record, error) {
	if this.front == sentinel {
		return Records.Record{}, &Records.EmptyError{Op: "peek"}
	}
	return this.content[this.front], nil
}

// List the records from front to rear.
// Time: O(n)
func (this *CircularQueue) List() []Records.Record {
	rs := make([]Records.Record, 0, this.Len())
	if this.front == sentinel {
		return rs
	}
	for i := this.front; ; i = (i + 1) % len(this.content) {
		rs = append(rs, this.content[i])
		if i == this.rear {
			break
		}
	}
	return rs
}

// Clear resets the indices. The backing ring is kept and zeroed.
func (this *CircularQueue) Clear() {
	this.front, this.rear = sentinel, sentinel
	clear(this.content)
}
