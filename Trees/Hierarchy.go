package Trees

import (
	"github.com/g-m-twostay/go-records/Records"
)

// maxChildren a Hierarchy node can hold.
const maxChildren = 2

// Property is the payload of a Hierarchy node.
type Property struct {
	Name     string
	Category string
	Size     string
	Value    int
	Priority int // lower sorts first
}

// Level is one entry of Traverse: a property and its depth, 0 for the root.
type Level struct {
	Depth int
	Property
}

// Hierarchy is a tree of properties in which every node has at most two
// children. Where a node enters the tree is decided by comparing names; the
// order siblings are listed in is decided separately by SortByPriority. The two
// orders can disagree, and SortByPriority never moves a node to another parent.
// It is not safe for concurrent use without external locking.
type Hierarchy struct {
	root *hnode
	size int
}

func MakeHierarchy() *Hierarchy {
	return &Hierarchy{}
}

func (u *Hierarchy) Len() int {
	return u.size
}

// AddRoot sets the root to p. Returns false if the tree already has a root.
func (u *Hierarchy) AddRoot(p Property) bool {
	if u.root != nil {
		return false
	}
	u.root = &hnode{p: p}
	u.size++
	return true
}

// Add p by walking down from the root: a name lower than the current node's
// goes into the first child if there's any child, otherwise it becomes the
// first child; any other name goes into the second child if both children
// exist, otherwise it's appended. An empty tree gets p as root.
// Time: O(D)
func (u *Hierarchy) Add(p Property) {
	n := &hnode{p: p}
	u.size++
	if u.root == nil {
		u.root = n
		return
	}
	for cur := u.root; ; {
		if p.Name < cur.p.Name {
			if len(cur.children) > 0 {
				cur = cur.children[0]
				continue
			}
		} else if len(cur.children) == maxChildren {
			cur = cur.children[1]
			continue
		}
		cur.children = append(cur.children, n)
		return
	}
}

// find the first node named name in pre-order.
func (u *Hierarchy) find(name string) *hnode {
	if u.root == nil {
		return nil
	}
	st := []*hnode{u.root}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if cur.p.Name == name {
			return cur
		}
		for i := len(cur.children) - 1; i >= 0; i-- {
			st = append(st, cur.children[i])
		}
	}
	return nil
}

// Find the first property named name in pre-order.
func (u *Hierarchy) Find(name string) (Property, bool) {
	if n := u.find(name); n != nil {
		return n.p, true
	}
	return Property{}, false
}

// Children of the first node named name, in their current order. Nil if
// there's no such node.
func (u *Hierarchy) Children(name string) []Property {
	n := u.find(name)
	if n == nil {
		return nil
	}
	ps := make([]Property, len(n.children))
	for i, c := range n.children {
		ps[i] = c.p
	}
	return ps
}

// InsertUnder attaches p directly under the first node named parent, found by
// a pre-order search. Unlike Add, it never descends below that node: a name
// lower than the parent's takes the first child slot, shifting an existing
// child to the second, any other name is appended.
// Returns false if there's no such parent; the caller decides whether to
// create one. A parent that already has two children rejects p with a
// *Records.FullError.
func (u *Hierarchy) InsertUnder(parent string, p Property) (bool, error) {
	pn := u.find(parent)
	if pn == nil {
		return false, nil
	}
	if len(pn.children) >= maxChildren {
		return true, &Records.FullError{Cap: maxChildren}
	}
	n := &hnode{p: p}
	if p.Name < pn.p.Name {
		pn.children = append([]*hnode{n}, pn.children...)
	} else {
		pn.children = append(pn.children, n)
	}
	u.size++
	return true, nil
}

// placeholder returns the property used for a parent created on demand.
func placeholder(name string) Property {
	return Property{Name: name, Category: "N/A", Size: "N/A", Priority: SizePriority("")}
}

// InsertOrCreate is InsertUnder, except that a missing parent is created
// through Add as a placeholder property, with category and size "N/A" and the
// lowest priority. In that case p itself is not inserted and created is true,
// so the caller can confirm and retry.
func (u *Hierarchy) InsertOrCreate(parent string, p Property) (created bool, err error) {
	found, err := u.InsertUnder(parent, p)
	if found {
		return false, err
	}
	u.Add(placeholder(parent))
	return true, nil
}

// SortByPriority stably reorders the children of every node by ascending
// Priority, root first and then level by level. Parent/child links are not
// changed. Running it again without changes in between is a no-op.
// Time: O(n)
func (u *Hierarchy) SortByPriority() {
	if u.root == nil {
		return
	}
	for level := []*hnode{u.root}; len(level) > 0; {
		var next []*hnode
		for _, n := range level {
			insertionSort(n.children)
			next = append(next, n.children...)
		}
		level = next
	}
}

// insertionSort by Priority. Equal priorities keep their relative order.
func insertionSort(ns []*hnode) {
	for i := 1; i < len(ns); i++ {
		key, j := ns[i], i-1
		for ; j >= 0 && key.p.Priority < ns[j].p.Priority; j-- {
			ns[j+1] = ns[j]
		}
		ns[j+1] = key
	}
}

// Traverse walks the tree in pre-order, each node followed by its children in
// their current order, and returns every property with its depth.
func (u *Hierarchy) Traverse() []Level {
	ls := make([]Level, 0, u.size)
	if u.root == nil {
		return ls
	}
	type frame struct {
		n *hnode
		d int
	}
	st := []frame{{u.root, 0}}
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		ls = append(ls, Level{f.d, f.n.p})
		for i := len(f.n.children) - 1; i >= 0; i-- {
			st = append(st, frame{f.n.children[i], f.d + 1})
		}
	}
	return ls
}

// Clear drops every node.
func (u *Hierarchy) Clear() {
	u.root, u.size = nil, 0
}
