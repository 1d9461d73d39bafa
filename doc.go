/*
Package rbtree implements an ordered set on top of a red-black tree.

Red-black trees are binary search trees with one bit of extra information per
node, its color. Coloring is constrained in a way that no root-to-leaf path is
more than twice as long as any other, so the tree stays approximately balanced
under arbitrary sequences of insertions and deletions.

The implementation follows the classical presentation of Cormen, Leiserson,
Rivest and Stein ("Introduction to Algorithms", chapter 13):

  - insertion is a plain BST insertion of a red node, followed by a fixup pass
    which recolors and rotates on the path to the root,
  - deletion splices out a node (or its in-order successor) and runs a fixup
    pass whenever a black node vanished from a path,
  - rotations are the only operations changing the shape of the tree.

Nodes are kept in an arena owned by the tree. Child and parent links are indices
into this arena, with index 0 standing for an absent node. Absent nodes count as
black. Clients refer to nodes through a Handle, which becomes stale as soon as
its node is deleted. Using a stale handle is a programming error and panics.

A Tree is not safe for concurrent use. Clients have to synchronize access
externally if a tree is shared between goroutines.

Debugging helpers render a tree to a terminal (Print), to Graphviz DOT (Tree2Dot)
or to HTML (RenderHTML). Check validates all structural invariants and is meant
for tests.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
