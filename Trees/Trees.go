package Trees

import "github.com/g-m-twostay/go-records/Records"

// RecordTree represents a binary tree of records ordered by some key of the
// record. Receivers that has a bool as a second return value indicates whether
// the first return value is defined, for example calling Min on an empty tree
// returns (Records.Record{}, false).
// All receivers are implemented iteratively, so adversarial insertion orders
// that degrade the tree into a list can't exhaust the call stack.
type RecordTree interface {
	Records.Container
	//InOrder returns the records in the in-order traversal of the tree,
	//which is ascending key order.
	InOrder() []Records.Record
	//Ascend calls f on each record in in-order until f returns false.
	//The tree must not be modified from within f.
	Ascend(f func(Records.Record) bool)
	//Min record of the tree.
	Min() (Records.Record, bool)
	//Max record of the tree.
	Max() (Records.Record, bool)
	//Depth is the number of nodes on the longest root to leaf path, 0 for an
	//empty tree. There's no balancing, so it's between log2(Len()+1) and Len().
	Depth() int
}

var _ RecordTree = (*PriceTree)(nil)
