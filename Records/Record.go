package Records

// Record is the unit stored by every container. Containers keep their own copy
// of a Record; mutating the caller's value after Insert has no effect on the
// stored one.
type Record struct {
	ID     uint64
	Name   string
	Phone  string
	Detail string
	Price  int // only meaningful to price ordered containers
}

// Container is the contract shared by all record backends. Removal is not part
// of it because each backend removes differently: queues dequeue from the
// front, the circular list removes by id and the price tree removes by price.
type Container interface {
	//Insert r. The error is nil unless the container is bounded and rejects r.
	Insert(r Record) error
	//List returns the records in the container's natural order. The returned
	//slice is a fresh copy.
	List() []Record
	//Len is the number of live records.
	Len() int
	//Clear removes every record.
	Clear()
}
