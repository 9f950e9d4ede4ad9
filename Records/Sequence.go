package Records

import "sync/atomic"

// Sequence hands out record ids starting from 1. The zero value is ready to
// use. It is the one type here that is safe to share between goroutines, so a
// host can number records across several containers from one source.
type Sequence struct {
	v atomic.Uint64
}

// Next id. Ids are strictly increasing.
func (u *Sequence) Next() uint64 {
	return u.v.Add(1)
}

// Last id handed out, 0 if none.
func (u *Sequence) Last() uint64 {
	return u.v.Load()
}

// Stamp sets r.ID to the next id and returns r.
func (u *Sequence) Stamp(r Record) Record {
	r.ID = u.Next()
	return r
}
