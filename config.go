package rbtree

import (
	"cmp"
	"fmt"
)

// Config configures a red-black tree.
type Config[K any] struct {
	// Compare defines the total order of keys. It returns a negative number if
	// a < b, zero if a == b and a positive number if a > b.
	Compare func(a, b K) int
	// AllowDuplicates turns the tree into a multiset: every insert creates a new
	// node and Delete removes a single occurrence. Default is set semantics,
	// where inserting an existing key is a no-op.
	AllowDuplicates bool
	// Observer, if set, is called synchronously for every structural change.
	Observer func(Event[K])
	// Capacity is a hint for the initial number of nodes.
	Capacity int
}

// OrderedConfig returns a configuration using the natural order of K.
func OrderedConfig[K cmp.Ordered]() Config[K] {
	return Config[K]{Compare: cmp.Compare[K]}
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Capacity < 0 {
		cfg.Capacity = 0
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	if uint64(cfg.Capacity) >= maxNodes {
		return fmt.Errorf("%w: capacity %d exceeds node limit", ErrInvalidConfig, cfg.Capacity)
	}
	return nil
}
