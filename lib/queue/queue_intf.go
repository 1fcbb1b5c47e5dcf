package queue

import (
	"errors"
	"io"

	"github.com/czhou-dev/xalgo/lib/infra"
)

var (
	ErrEmptyHeap        = errors.New("[binoheap] empty heap")
	ErrKeyOrderViolated = errors.New("[binoheap] new key greater than current key")
	ErrForeignItem      = errors.New("[binoheap] item does not belong to a heap")
)

// HeapItem is the handle returned by Push, accepted back by DecreaseKey and
// DeleteItem. Key identity is not stable: decrease-key bubbles by swapping
// keys between nodes, so a held handle may observe its Key change.
type HeapItem[K infra.OrderedKey] interface {
	Key() K
	Degree() int64
}

// MergeableHeap is a single-threaded min-priority queue supporting the
// binomial-heap extras: union of two heaps and handle-based decrease/delete.
type MergeableHeap[K infra.OrderedKey] interface {
	Len() int64
	Push(key K) HeapItem[K]
	Peek() (K, error)
	Pop() (K, error)
	// Union drains other into the receiver, leaving other empty.
	Union(other MergeableHeap[K])
	DecreaseKey(item HeapItem[K], newKey K) error
	DeleteItem(item HeapItem[K]) error
	// Foreach walks the forest in level order; level 0 holds the roots.
	Foreach(fn func(level int64, key K) bool)
	// WriteForest renders each binomial tree with branch art.
	WriteForest(w io.Writer)
}
