package Trees

import (
	"github.com/g-m-twostay/go-records/Records"
	"github.com/g-m-twostay/go-records/internal/arena"
)

// PriceTree is an unbalanced binary search tree keyed by Records.Record.Price.
// Every record in the left subtree of a node has a lower price than the node,
// every record in the right subtree has a price greater or equal to it, so
// equal prices are kept in insertion order. There's no rotation: the shape is
// decided by the insertion order alone.
// Nodes are kept in an arena and link to each other through handles.
// It is not safe for concurrent use without external locking.
type PriceTree struct {
	root  handle
	nodes *arena.Arena[pnode, handle]
}

func MakePriceTree() *PriceTree {
	return &PriceTree{nodes: arena.New[pnode, handle](0)}
}

func (u *PriceTree) at(i handle) *pnode {
	return u.nodes.At(i)
}

// Len of the tree.
// Time: O(1)
func (u *PriceTree) Len() int {
	return u.nodes.Len()
}

// Insert v as a leaf. Always returns nil.
// Time: O(D)
func (u *PriceTree) Insert(v Records.Record) error {
	n := u.nodes.Alloc(pnode{v: v})
	if u.root == 0 {
		u.root = n
		return nil
	}
	for curI := u.root; ; {
		cur := u.at(curI)
		if v.Price < cur.v.Price {
			if cur.l == 0 {
				cur.l = n
				return nil
			}
			curI = cur.l
		} else {
			if cur.r == 0 {
				cur.r = n
				return nil
			}
			curI = cur.r
		}
	}
}

// Remove the record with the given price that is closest to the root, which is
// the earliest inserted one among records of equal price. A node with two
// children is replaced by its in-order successor.
// Time: O(D)
func (u *PriceTree) Remove(price int) (Records.Record, bool) {
	link := &u.root
	for *link != 0 {
		if cur := u.at(*link); price < cur.v.Price {
			link = &cur.l
		} else if price > cur.v.Price {
			link = &cur.r
		} else {
			break
		}
	}
	if *link == 0 {
		return Records.Record{}, false
	}
	delI := *link
	del := u.at(delI)
	if del.l == 0 {
		*link = del.r
	} else if del.r == 0 {
		*link = del.l
	} else {
		succLink := &del.r
		for u.at(*succLink).l != 0 {
			succLink = &u.at(*succLink).l
		}
		succI := *succLink
		succ := u.at(succI)
		*succLink = succ.r
		succ.l, succ.r = del.l, del.r
		*link = succI
	}
	return u.nodes.Free(delI).v, true
}

// Ascend is the stack based iterative in-order traversal.
// Time: O(n); Space: O(D)
func (u *PriceTree) Ascend(f func(Records.Record) bool) {
	var st []handle
	for curI := u.root; curI != 0; curI = u.at(curI).l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(u.at(curI).v) {
			return
		}
		for curI = u.at(curI).r; curI != 0; curI = u.at(curI).l {
			st = append(st, curI)
		}
	}
}

func (u *PriceTree) InOrder() []Records.Record {
	rs := make([]Records.Record, 0, u.Len())
	u.Ascend(func(r Records.Record) bool {
		rs = append(rs, r)
		return true
	})
	return rs
}

// List is InOrder.
func (u *PriceTree) List() []Records.Record {
	return u.InOrder()
}

// Min is the leftmost record.
// Time: O(D)
func (u *PriceTree) Min() (Records.Record, bool) {
	if u.root == 0 {
		return Records.Record{}, false
	}
	curI := u.root
	for u.at(curI).l != 0 {
		curI = u.at(curI).l
	}
	return u.at(curI).v, true
}

// Max is the rightmost record, the latest inserted one among the highest price.
// Time: O(D)
func (u *PriceTree) Max() (Records.Record, bool) {
	if u.root == 0 {
		return Records.Record{}, false
	}
	curI := u.root
	for u.at(curI).r != 0 {
		curI = u.at(curI).r
	}
	return u.at(curI).v, true
}

// Depth by a breadth first walk.
// Time: O(n)
func (u *PriceTree) Depth() (d int) {
	if u.root == 0 {
		return 0
	}
	for level := []handle{u.root}; len(level) > 0; d++ {
		var next []handle
		for _, i := range level {
			n := u.at(i)
			if n.l != 0 {
				next = append(next, n.l)
			}
			if n.r != 0 {
				next = append(next, n.r)
			}
		}
		level = next
	}
	return
}

// Clear the tree. The arena's memory is kept for reuse.
func (u *PriceTree) Clear() {
	u.root = 0
	u.nodes.Reset()
}
