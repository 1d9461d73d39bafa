package rbtree

// Insert adds key to the tree and returns the tree, so calls may be chained.
// Inserting a key which is already present is a no-op, unless the tree has
// been configured to allow duplicates.
func (t *Tree[K]) Insert(key K) *Tree[K] {
	p, c := none, 0
	for x := t.root; x != none; {
		p = x
		c = t.cfg.Compare(key, t.nodes[x].key)
		if c == 0 && !t.cfg.AllowDuplicates {
			T().Debugf("rbtree: key %v already present", key)
			return t
		}
		if c < 0 {
			x = t.nodes[x].child[left]
		} else {
			x = t.nodes[x].child[right]
		}
	}
	z := t.alloc(key) // red and childless
	t.nodes[z].parent = p
	switch {
	case p == none:
		t.root = z
	case c < 0:
		t.nodes[p].child[left] = z
	default:
		t.nodes[p].child[right] = z
	}
	t.notify(Inserted, z)
	t.insertFixup(z)
	return t
}

// insertFixup restores the red-black properties after z has been attached as
// a red leaf. The only possible violation is a red z below a red parent.
func (t *Tree[K]) insertFixup(z ref) {
	for t.colorOf(t.nodes[z].parent) == Red {
		p := t.nodes[z].parent
		g := t.nodes[p].parent // exists, as a red node is never the root
		s := t.sideOf(p)
		uncle := t.nodes[g].child[s.flip()]
		if t.colorOf(uncle) == Red {
			// push the red-red conflict up to the grandparent
			t.paint(p, Black)
			t.paint(uncle, Black)
			t.paint(g, Red)
			z = g
			continue
		}
		if t.sideOf(z) != s { // inner grandchild: make it an outer one
			z = p
			t.rotate(z, s)
			p = t.nodes[z].parent
		}
		t.paint(p, Black)
		t.paint(g, Red)
		t.rotate(g, s.flip()) // p is black now, loop terminates
	}
	t.paint(t.root, Black)
}
