package Queues

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/g-m-twostay/go-records/Records"
)

// LinearQueue is an unbounded FIFO of records. Dequeue order always equals
// enqueue order.
// It is not safe for concurrent use without external locking.
type LinearQueue struct {
	q *linkedlistqueue.Queue
}

func MakeLinearQueue() *LinearQueue {
	return &LinearQueue{linkedlistqueue.New()}
}

// Enqueue r at the back. Never fails.
// Time: O(1)
func (q *LinearQueue) Enqueue(r Records.Record) {
	q.q.Enqueue(r)
}

func (q *LinearQueue) Insert(r Records.Record) error {
	q.Enqueue(r)
	return nil
}

// Time: O(1)
func (q *LinearQueue) Dequeue() (Records.Record, error) {
	v, ok := q.q.Dequeue()
	if !ok {
		return Records.Record{}, &Records.EmptyError{Op: "dequeue"}
	}
	return v.(Records.Record), nil
}

func (q *LinearQueue) Peek() (Records.Record, error) {
	v, ok := q.q.Peek()
	if !ok {
		return Records.Record{}, &Records.EmptyError{Op: "peek"}
	}
	return v.(Records.Record), nil
}

// List the records front to back.
// Time: O(n)
func (q *LinearQueue) List() []Records.Record {
	vs := q.q.Values()
	rs := make([]Records.Record, len(vs))
	for i, v := range vs {
		rs[i] = v.(Records.Record)
	}
	return rs
}

func (q *LinearQueue) Len() int {
	return q.q.Size()
}

func (q *LinearQueue) Empty() bool {
	return q.q.Empty()
}

func (q *LinearQueue) Clear() {
	q.q.Clear()
}
