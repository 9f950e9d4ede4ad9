package Trees

import "github.com/g-m-twostay/go-records/Records"

// handle of a pnode in the PriceTree arena. 0 is nil.
type handle = uint32

// A node in the PriceTree.
// The zero value is the nil node.
type pnode struct {
	v    Records.Record
	l, r handle
}

// A node in the Hierarchy. A node exclusively owns its children, there are no
// parent links, and len(children) <= 2.
type hnode struct {
	p        Property
	children []*hnode
}
