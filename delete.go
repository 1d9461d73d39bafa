package rbtree

// Delete removes key from the tree and returns the tree, so calls may be
// chained. Deleting a key which is not present is a no-op. With duplicates
// allowed, a single occurrence of key is removed.
func (t *Tree[K]) Delete(key K) *Tree[K] {
	z := t.search(key)
	if z == none {
		T().Debugf("rbtree: delete of absent key %v", key)
		return t
	}
	t.deleteNode(z)
	return t
}

// DeleteNode removes the node h refers to and returns the tree. A zero
// handle is a no-op. h becomes stale; DeleteNode panics if h already is.
func (t *Tree[K]) DeleteNode(h Handle) *Tree[K] {
	if z := t.resolve(h); z != none {
		t.deleteNode(z)
	}
	return t
}

// deleteNode unlinks z and releases its slot.
//
// The node taking over the vacated position (x) may be absent and then cannot
// tell us its parent. Therefore x's parent and side are tracked along with x.
func (t *Tree[K]) deleteNode(z ref) {
	t.notify(Deleted, z)
	var x, xp ref
	var xs side
	removed := t.nodes[z].color
	zl, zr := t.nodes[z].child[left], t.nodes[z].child[right]
	switch {
	case zl == none:
		x = zr
		xp, xs = t.position(z)
		t.transplant(z, zr)
	case zr == none:
		x = zl
		xp, xs = t.position(z)
		t.transplant(z, zl)
	default:
		y := t.minimum(zr) // in-order successor, has no left child
		removed = t.nodes[y].color
		x = t.nodes[y].child[right]
		if y == zr {
			xp, xs = y, right
		} else {
			xp, xs = t.nodes[y].parent, left
			t.transplant(y, x)
			t.nodes[y].child[right] = zr
			t.nodes[zr].parent = y
		}
		t.transplant(z, y)
		t.nodes[y].child[left] = zl
		t.nodes[zl].parent = y
		t.nodes[y].color = t.nodes[z].color
	}
	if removed == Black {
		t.deleteFixup(x, xp, xs)
	}
	t.release(z)
}

// deleteFixup restores the black-height property after a black node has been
// removed from the paths through position (p, s), now occupied by x. x carries
// an "extra black" which is either absorbed by a rotation, by recoloring a red
// node, or pushed up to the root.
func (t *Tree[K]) deleteFixup(x, p ref, s side) {
	for x != t.root && t.colorOf(x) == Black {
		w := t.nodes[p].child[s.flip()] // sibling
		if t.colorOf(w) == Red {
			t.paint(w, Black)
			t.paint(p, Red)
			t.rotate(p, s)
			w = t.nodes[p].child[s.flip()]
		}
		// the sibling subtree has positive black-height, so w is a real node
		assert(w != none, "rbtree: delete fixup without sibling")
		near, far := t.nodes[w].child[s], t.nodes[w].child[s.flip()]
		if t.colorOf(near) == Black && t.colorOf(far) == Black {
			t.paint(w, Red)
			x = p
			p, s = t.position(x)
			continue
		}
		if t.colorOf(far) == Black {
			t.paint(near, Black)
			t.paint(w, Red)
			t.rotate(w, s.flip())
			w = t.nodes[p].child[s.flip()]
			far = t.nodes[w].child[s.flip()]
		}
		t.paint(w, t.nodes[p].color)
		t.paint(p, Black)
		t.paint(far, Black)
		t.rotate(p, s)
		x = t.root
	}
	if x != none {
		t.paint(x, Black)
	}
}
