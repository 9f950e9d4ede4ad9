package Queues

import "github.com/g-m-twostay/go-records/Records"

// Queue is a FIFO Records.Container. Insert enqueues at the back.
type Queue interface {
	Records.Container
	//Dequeue removes and returns the front record, or a *Records.EmptyError.
	Dequeue() (Records.Record, error)
	//Peek returns the front record without removing it, or a *Records.EmptyError.
	Peek() (Records.Record, error)
	Empty() bool
}

var (
	_ Queue = (*LinearQueue)(nil)
	_ Queue = (*CircularQueue)(nil)
)
