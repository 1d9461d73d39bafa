package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrCorruptTree signals a violation of a structural tree invariant.
	ErrCorruptTree = errors.New("rbtree: corrupt tree")
)
