package rbtree

import (
	"cmp"
)

// Tree is an ordered set of keys, organized as a red-black tree.
//
// A tree created by New or NewWithConfig is empty. The zero value of Tree is
// not usable, as it lacks a key order.
//
// Keys are unique unless the tree has been configured with AllowDuplicates.
//
//	Operation     |  Time
//	--------------+-----------
//	Insert        |  O(log n)
//	Delete        |  O(log n)
//	Find/Exists   |  O(log n)
//	Check         |  O(n)
type Tree[K any] struct {
	arena[K]
	root ref
	cfg  Config[K]
}

// New creates an empty tree for keys with a natural order.
func New[K cmp.Ordered]() *Tree[K] {
	t, err := NewWithConfig(OrderedConfig[K]())
	assert(err == nil, "rbtree.New: ordered config rejected")
	return t
}

// NewWithConfig creates an empty tree with validated configuration.
func NewWithConfig[K any](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K]{
		arena: makeArena[K](cfg.Capacity),
		cfg:   cfg,
	}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config[K] {
	return t.cfg
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.count
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.root == none
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An empty tree has height 0.
func (t *Tree[K]) Height() int {
	return t.height(t.root)
}

func (t *Tree[K]) height(x ref) int {
	if x == none {
		return 0
	}
	return 1 + max(t.height(t.nodes[x].child[left]), t.height(t.nodes[x].child[right]))
}

// Clear removes all keys. Handles to former nodes become stale.
// An observer is notified with a Deleted event for every key, in no
// particular order.
func (t *Tree[K]) Clear() {
	T().Debugf("rbtree: clearing tree of %d nodes", t.count)
	for i := 1; i < len(t.nodes); i++ {
		if t.nodes[i].live {
			t.notify(Deleted, ref(i))
			t.release(ref(i))
		}
	}
	t.root = none
}

// --- Search ----------------------------------------------------------------

func (t *Tree[K]) search(key K) ref {
	x := t.root
	for x != none {
		c := t.cfg.Compare(key, t.nodes[x].key)
		switch {
		case c < 0:
			x = t.nodes[x].child[left]
		case c > 0:
			x = t.nodes[x].child[right]
		default:
			return x
		}
	}
	return none
}

// Find locates the node holding key. If key is not present, Find returns the
// zero Handle and false.
func (t *Tree[K]) Find(key K) (Handle, bool) {
	x := t.search(key)
	return t.handle(x), x != none
}

// Exists reports whether key is present in the tree.
func (t *Tree[K]) Exists(key K) bool {
	return t.search(key) != none
}

// Key returns the key of the node h refers to. h must be a live handle of
// this tree; Key panics on a zero or stale handle.
func (t *Tree[K]) Key(h Handle) K {
	x := t.resolve(h)
	assert(x != none, "rbtree: key of absent node")
	return t.nodes[x].key
}

// Color returns the color of the node h refers to. The zero handle denotes an
// absent node, which is black.
func (t *Tree[K]) Color(h Handle) Color {
	return t.colorOf(t.resolve(h))
}

// --- Structural helpers ----------------------------------------------------

// transplant puts subtree v in the position of u. u keeps its own links.
func (t *Tree[K]) transplant(u, v ref) {
	p, s := t.position(u)
	if p == none {
		t.root = v
	} else {
		t.nodes[p].child[s] = v
	}
	if v != none {
		t.nodes[v].parent = p
	}
}

// minimum returns the leftmost node of the subtree rooted at x.
func (t *Tree[K]) minimum(x ref) ref {
	for t.nodes[x].child[left] != none {
		x = t.nodes[x].child[left]
	}
	return x
}
