package rbtree

// EventKind classifies structural changes of a tree.
type EventKind int

const (
	// Inserted is reported after a new node has been linked into the tree,
	// before rebalancing.
	Inserted EventKind = iota
	// Deleted is reported before a node is unlinked from the tree.
	Deleted
	// RotatedLeft is reported after a left rotation around the node holding Key.
	RotatedLeft
	// RotatedRight is reported after a right rotation around the node holding Key.
	RotatedRight
)

func (k EventKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Deleted:
		return "deleted"
	case RotatedLeft:
		return "rotated-left"
	case RotatedRight:
		return "rotated-right"
	}
	return "unknown"
}

// Event describes a structural change of a tree.
type Event[K any] struct {
	Kind EventKind
	Key  K
}

func (t *Tree[K]) notify(kind EventKind, x ref) {
	if t.cfg.Observer == nil {
		return
	}
	t.cfg.Observer(Event[K]{Kind: kind, Key: t.nodes[x].key})
}
