package tree

import (
	"errors"

	"github.com/czhou-dev/xalgo/lib/infra"
)

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

var (
	ErrKeyNotFound   = errors.New("[rbtree] key not found")
	ErrEmptyTree     = errors.New("[rbtree] empty tree")
	ErrNoSuccessor   = errors.New("[rbtree] no successor for key")
	ErrNoPredecessor = errors.New("[rbtree] no predecessor for key")
)

// RBNode is the read-only view of a tree node handed out to collaborators
// (renderers, drivers). Key identity is not stable across deletions: removing
// a key from an interior position copies the successor key into the surviving
// node, so a held RBNode may observe its Key change.
type RBNode[K infra.OrderedKey] interface {
	Key() K
	Color() RBColor
	Left() RBNode[K]
	Right() RBNode[K]
	Parent() RBNode[K]
}

// RBTree is an ordered multiset of keys backed by a red-black tree.
// Equal keys are kept (ties nest to the right). All operations are
// single-threaded; callers needing concurrent access must serialize
// externally.
type RBTree[K infra.OrderedKey] interface {
	Len() int64
	Root() RBNode[K]
	Insert(key K)
	// Delete removes one occurrence of key and reports whether a node was
	// removed. Deleting an absent key is a no-op, not an error.
	Delete(key K) bool
	// Remove is an alias of Delete.
	Remove(key K) bool
	Search(key K) (RBNode[K], error)
	Min() (K, error)
	Max() (K, error)
	Successor(key K) (K, error)
	Predecessor(key K) (K, error)
	// Height recomputes the max depth on every call: -1 for an empty tree,
	// 0 for a single node. O(n), no caching.
	Height() int
	// Foreach walks the tree in sorted key order, stopping early when the
	// action returns false. The walk is restartable and never mutates.
	Foreach(action func(idx int64, color RBColor, key K) bool)
}
