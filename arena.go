package rbtree

import (
	"fmt"
	"math"
)

// Color is the color tag of a tree node.
type Color bool

const (
	Black Color = false
	Red   Color = true
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// ref is an index into the node arena. The zero ref denotes an absent node.
type ref uint32

const none ref = 0

// maxNodes is the number of addressable arena slots, slot 0 excluded.
const maxNodes = math.MaxUint32 - 1

// side selects a child link. Code paths for left and right children are
// mirror images of each other and are written once, parameterized by side.
type side uint8

const (
	left  side = 0
	right side = 1
)

func (s side) flip() side {
	return s ^ 1
}

func (s side) String() string {
	if s == left {
		return "left"
	}
	return "right"
}

type node[K any] struct {
	key    K
	child  [2]ref
	parent ref // lookup only; ownership is expressed by child links
	color  Color
	gen    uint32 // incremented every time the slot is freed
	live   bool
}

// arena owns all nodes of a tree. Slot 0 is reserved and never written, so
// reading links of the absent node yields absent nodes again.
// Free slots are chained through their left child link.
type arena[K any] struct {
	nodes []node[K]
	free  ref
	count int
}

func makeArena[K any](capacity int) arena[K] {
	return arena[K]{nodes: make([]node[K], 1, capacity+1)}
}

// alloc returns a fresh, red, unlinked node carrying key.
//
// Slots in a.nodes may move, so callers must not hold *node pointers across
// a call to alloc.
func (a *arena[K]) alloc(key K) ref {
	var x ref
	if a.free != none {
		x = a.free
		a.free = a.nodes[x].child[left]
	} else {
		assert(uint64(len(a.nodes)) <= maxNodes, "rbtree: node arena exhausted")
		a.nodes = append(a.nodes, node[K]{})
		x = ref(len(a.nodes) - 1)
	}
	n := &a.nodes[x]
	n.key = key
	n.child = [2]ref{none, none}
	n.parent = none
	n.color = Red
	n.live = true
	a.count++
	return x
}

// release returns the slot of x to the free list. Handles to x become stale.
func (a *arena[K]) release(x ref) {
	assert(x != none, "rbtree: cannot release the absent node")
	n := &a.nodes[x]
	assert(n.live, "rbtree: double release of node")
	var zero K
	n.key = zero // do not keep the key reachable
	n.child = [2]ref{a.free, none}
	n.parent = none
	n.color = Black
	n.gen++
	n.live = false
	a.free = x
	a.count--
}

// colorOf implements the sentinel rule: absent nodes are black.
func (a *arena[K]) colorOf(x ref) Color {
	if x == none {
		return Black
	}
	return a.nodes[x].color
}

func (a *arena[K]) paint(x ref, c Color) {
	assert(x != none, "rbtree: cannot paint the absent node")
	a.nodes[x].color = c
}

// sideOf returns which child of its parent x is. x must not be the root.
func (a *arena[K]) sideOf(x ref) side {
	p := a.nodes[x].parent
	assert(p != none, "rbtree: root has no side")
	if a.nodes[p].child[left] == x {
		return left
	}
	assert(a.nodes[p].child[right] == x, "rbtree: parent link does not match child links")
	return right
}

// position returns the parent of x and the side x occupies below it.
// For the root the parent is absent and the side is meaningless.
func (a *arena[K]) position(x ref) (ref, side) {
	p := a.nodes[x].parent
	if p == none {
		return none, left
	}
	return p, a.sideOf(x)
}

// --- Handles ---------------------------------------------------------------

// Handle refers to a node of a tree. The zero Handle refers to no node.
//
// A handle stays valid until its node is deleted. Handles are bound to the
// tree which produced them.
type Handle struct {
	idx ref
	gen uint32
}

// IsZero reports whether h refers to no node.
func (h Handle) IsZero() bool {
	return h.idx == none
}

func (h Handle) String() string {
	if h.IsZero() {
		return "<none>"
	}
	return fmt.Sprintf("#%d.%d", h.idx, h.gen)
}

func (a *arena[K]) handle(x ref) Handle {
	if x == none {
		return Handle{}
	}
	return Handle{idx: x, gen: a.nodes[x].gen}
}

// resolve maps a handle back to its arena slot. Following a handle whose node
// has been deleted is a fatal consistency violation.
func (a *arena[K]) resolve(h Handle) ref {
	if h.IsZero() {
		return none
	}
	assert(int(h.idx) < len(a.nodes), "rbtree: node handle out of range")
	n := &a.nodes[h.idx]
	assert(n.live && n.gen == h.gen, "rbtree: stale node handle")
	return h.idx
}
