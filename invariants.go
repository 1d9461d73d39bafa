package rbtree

import "fmt"

// IsValidRedBlackTree reports whether t satisfies all red-black tree
// properties. It is intended for tests and diagnostics.
func (t *Tree[K]) IsValidRedBlackTree() bool {
	return t.Check() == nil
}

// Check validates structural tree invariants:
//
//   - the root is black,
//   - every path from a node to an absent child contains the same number of
//     black nodes,
//   - no red node has a red child,
//   - parent links mirror child links,
//   - keys are in search tree order,
//   - the node count matches the number of reachable nodes.
//
// The first violation found is returned, wrapping ErrCorruptTree.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorruptTree)
	}
	err := t.check()
	if err != nil {
		T().Errorf("rbtree: %v", err)
	}
	return err
}

func (t *Tree[K]) check() error {
	if t.root == none {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree with node count %d", ErrCorruptTree, t.count)
		}
		return nil
	}
	if t.colorOf(t.root) != Black {
		return fmt.Errorf("%w: root %v is red", ErrCorruptTree, t.nodes[t.root].key)
	}
	c := checker[K]{t: t}
	if _, err := c.checkNode(t.root, none, none, none); err != nil {
		return err
	}
	if c.visited != t.count {
		return fmt.Errorf("%w: %d nodes reachable, %d allocated", ErrCorruptTree, c.visited, t.count)
	}
	return nil
}

type checker[K any] struct {
	t       *Tree[K]
	visited int
}

// checkNode validates the subtree at x, which has to be linked below parent.
// lo and hi are the nearest ancestors bounding the keys of the subtree, if any.
// It returns the number of black nodes on every path from x down to an absent
// child, counting x and the absent child.
func (c *checker[K]) checkNode(x, parent, lo, hi ref) (int, error) {
	t := c.t
	if x == none {
		return 1, nil // absent nodes are black
	}
	if int(x) >= len(t.nodes) || !t.nodes[x].live {
		return 0, fmt.Errorf("%w: link to released node #%d", ErrCorruptTree, x)
	}
	c.visited++
	if c.visited > t.count {
		return 0, fmt.Errorf("%w: more nodes reachable than allocated (cycle?)", ErrCorruptTree)
	}
	n := &t.nodes[x]
	if n.parent != parent {
		return 0, fmt.Errorf("%w: node %v has parent link #%d, is child of #%d",
			ErrCorruptTree, n.key, n.parent, parent)
	}
	if lo != none && !c.ordered(lo, x) {
		return 0, fmt.Errorf("%w: key %v out of order below %v", ErrCorruptTree, n.key, t.nodes[lo].key)
	}
	if hi != none && !c.ordered(x, hi) {
		return 0, fmt.Errorf("%w: key %v out of order below %v", ErrCorruptTree, n.key, t.nodes[hi].key)
	}
	if n.color == Red && parent != none && t.nodes[parent].color == Red {
		return 0, fmt.Errorf("%w: red node %v has red child %v", ErrCorruptTree, t.nodes[parent].key, n.key)
	}
	lh, err := c.checkNode(n.child[left], x, lo, x)
	if err != nil {
		return 0, err
	}
	rh, err := c.checkNode(n.child[right], x, x, hi)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black-height mismatch at %v (%d != %d)", ErrCorruptTree, n.key, lh, rh)
	}
	if n.color == Black {
		lh++
	}
	return lh, nil
}

// ordered reports whether the key at a may precede the key at b.
func (c *checker[K]) ordered(a, b ref) bool {
	d := c.t.cfg.Compare(c.t.nodes[a].key, c.t.nodes[b].key)
	if c.t.cfg.AllowDuplicates {
		return d <= 0
	}
	return d < 0
}
