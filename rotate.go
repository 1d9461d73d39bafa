package rbtree

// rotate performs a single rotation around x towards side s.
//
// The child of x opposite to s (called y) takes the position of x, x becomes
// y's child on side s and y's former child on side s moves over to x:
//
//	rotate(x, left):                rotate(x, right):
//
//	    x                y              x              y
//	   / \              / \            / \            / \
//	  a   y     →      x   c          y   c    →     a   x
//	     / \          / \            / \                / \
//	    b   c        a   b          a   b              b   c
//
// y must exist. Rotating without a pivot child is a programming error.
func (t *Tree[K]) rotate(x ref, s side) {
	assert(x != none, "rbtree: rotation around absent node")
	y := t.nodes[x].child[s.flip()]
	assert(y != none, "rbtree: rotation without pivot child")
	b := t.nodes[y].child[s]
	t.nodes[x].child[s.flip()] = b
	if b != none {
		t.nodes[b].parent = x
	}
	t.transplant(x, y)
	t.nodes[y].child[s] = x
	t.nodes[x].parent = y
	if s == left {
		t.notify(RotatedLeft, x)
	} else {
		t.notify(RotatedRight, x)
	}
}

func (t *Tree[K]) leftRotate(x ref) {
	t.rotate(x, left)
}

func (t *Tree[K]) rightRotate(x ref) {
	t.rotate(x, right)
}
