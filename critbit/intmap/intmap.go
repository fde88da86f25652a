// Package intmap implements a crit-bit (PATRICIA) trie keyed by fixed-width
// unsigned integers.
//
// Keys are stored in leaves only. Every inner node branches on a single
// critical bit (counted from the most significant bit, position 0): keys in
// its left subtree have that bit cleared, keys in its right subtree have it set.
// Nodes only exist at positions where stored keys actually differ, so a lookup
// tests at most as many bits as the key type has.
//
// A Map is not safe for concurrent mutation. Readers (Get, Has, Len) may run in
// parallel with each other but not with Set, Replace, Del, Merge or Clear.
package intmap

import "fmt"

type Item[K Key, V any] struct {
	Key K
	Val V
}

// Ref is an owned child slot. It holds either a leaf Item, an inner Node or nothing.
type Ref[K Key, V any] struct {
	leaf *Item[K, V]
	node *Node[K, V]
}

func (ref *Ref[K, V]) String() string {
	switch {
	case ref == nil:
		return "Ref(nil)"
	case ref.node != nil:
		return fmt.Sprintf("<Ref NODE crit=%v>", ref.node.crit)
	case ref.leaf != nil:
		return fmt.Sprintf("<Ref LEAF key=%v, val=%v>", ref.leaf.Key, ref.leaf.Val)
	}
	return "<Ref EMPTY>"
}

func (ref *Ref[K, V]) empty() bool {
	return ref.leaf == nil && ref.node == nil
}

// take moves the contents out of the slot leaving it empty.
func (ref *Ref[K, V]) take() (old Ref[K, V]) {
	old, *ref = *ref, Ref[K, V]{}
	return
}

type Node[K Key, V any] struct {
	child [2]Ref[K, V]
	// crit is the position of the critical bit, 0 being the MSB
	crit uint
}

// dir calculates the direction for the given key
func (n *Node[K, V]) dir(key K) byte {
	if bitAt(key, n.crit) {
		return 1
	}
	return 0
}

// Map is a sorted associative container of K -> V. The zero value is an empty map.
type Map[K Key, V any] struct {
	root Ref[K, V]
}

func Init[K Key, V any](m *Map[K, V], items ...Item[K, V]) *Map[K, V] {
	*m = Map[K, V]{}
	for _, item := range items {
		m.Set(item.Key, item.Val)
	}
	return m
}

func New[K Key, V any](items ...Item[K, V]) *Map[K, V] {
	return Init(&Map[K, V]{}, items...)
}

// Clear drops all the entries at once.
func (t *Map[K, V]) Clear() {
	t.root = Ref[K, V]{}
}

func (t *Map[K, V]) Empty() bool {
	return t.root.empty()
}

// Len returns the number of keys in the tree. It walks the whole tree.
func (t *Map[K, V]) Len() int {
	return t.root.count()
}

func (ref *Ref[K, V]) count() int {
	switch {
	case ref.node != nil:
		return ref.node.child[0].count() + ref.node.child[1].count()
	case ref.leaf != nil:
		return 1
	}
	return 0
}

// lookup walks for the leaf matching the key
func (t *Map[K, V]) lookup(key K) *Item[K, V] {
	p := &t.root
	for p.node != nil {
		// try next node
		p = &p.node.child[p.node.dir(key)]
	}
	if p.leaf == nil || p.leaf.Key != key {
		return nil
	}
	return p.leaf
}

// Get returns a value associated with the key
func (t *Map[K, V]) Get(key K) (val V, ok bool) {
	if item := t.lookup(key); item != nil {
		return item.Val, true
	}
	return
}

// GetPtr returns a pointer to the value stored under the key or nil.
// The pointer stays valid until the key is removed.
func (t *Map[K, V]) GetPtr(key K) *V {
	if item := t.lookup(key); item != nil {
		return &item.Val
	}
	return nil
}

// Has reports whether the key is present.
func (t *Map[K, V]) Has(key K) bool {
	return t.lookup(key) != nil
}

// Replace applies a func to a previous value of a key and replaces it with the result.
// The func gets ok == false when the key is new.
// Returns the previous value (if any).
func (t *Map[K, V]) Replace(key K, replace func(prev V, ok bool) V) (prev V, ok bool) {
	var zero V

	// test for empty tree
	if t.Empty() {
		t.root.leaf = &Item[K, V]{key, replace(zero, false)}
		return
	}
	// walk for best member
	p := &t.root
	for p.node != nil {
		p = &p.node.child[p.node.dir(key)]
	}
	best := p.leaf
	if best == nil {
		panic(fmt.Sprintf("intmap: inner node with an empty child slot on the path of %v", key))
	}
	if best.Key == key {
		// key exists - just replace its value
		prev = best.Val
		best.Val = replace(prev, true)
		return prev, true
	}
	// both keys agree above the critical bit so their order is decided by it alone
	item := &Item[K, V]{key, replace(zero, false)}
	t.root.split(item, critBit(best.Key, key), best.Key < key)
	return
}

// split walks down to the best insertion slot for a new critical bit and
// replaces the slot with a node holding the old subtree and the new leaf.
func (ref *Ref[K, V]) split(item *Item[K, V], crit uint, right bool) {
	if n := ref.node; n != nil && n.crit < crit {
		n.child[n.dir(item.Key)].split(item, crit, right)
		return
	}
	old := ref.take()
	nn := &Node[K, V]{crit: crit}
	if right {
		nn.child[0], nn.child[1] = old, Ref[K, V]{leaf: item}
	} else {
		nn.child[0], nn.child[1] = Ref[K, V]{leaf: item}, old
	}
	ref.node = nn
}

// Set associates a given value with a key. Returns previous value (if any).
func (t *Map[K, V]) Set(key K, val V) (prev V, ok bool) {
	return t.Replace(key, func(V, bool) V { return val })
}

// Del removes the key from the tree and returns its value (if any)
func (t *Map[K, V]) Del(key K) (val V, ok bool) {
	return t.root.del(key)
}

// del removes the key from the subtree held by the slot. A matching leaf
// leaves its slot empty; a node that lost a child collapses into the sibling.
func (ref *Ref[K, V]) del(key K) (val V, ok bool) {
	n := ref.node
	if n == nil {
		if ref.leaf == nil || ref.leaf.Key != key {
			return
		}
		old := ref.take()
		return old.leaf.Val, true
	}
	dir := n.dir(key)
	if val, ok = n.child[dir].del(key); ok && n.child[dir].empty() {
		sibling := n.child[1-dir].take()
		ref.take()
		*ref = sibling
	}
	return
}

// Merge sets all the entries of another Map into this one. Returns itself.
func (t *Map[K, V]) Merge(other *Map[K, V]) *Map[K, V] {
	if other != nil && other != t {
		other.root.each(func(item *Item[K, V]) {
			t.Set(item.Key, item.Val)
		})
	}
	return t
}

// each calls a handler for every leaf under the slot.
func (ref *Ref[K, V]) each(h func(*Item[K, V])) {
	switch {
	case ref.node != nil:
		ref.node.child[0].each(h)
		ref.node.child[1].each(h)
	case ref.leaf != nil:
		h(ref.leaf)
	}
}
