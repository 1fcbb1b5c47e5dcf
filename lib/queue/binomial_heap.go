package queue

import (
	"fmt"
	"io"

	"github.com/czhou-dev/xalgo/lib/infra"
)

// A binomial heap is a forest of heap-ordered binomial trees whose root list
// is kept strictly increasing in degree, so any two heaps merge in O(log n)
// like binary addition with carries.

type binomialNode[K infra.OrderedKey] struct {
	key     K
	degree  int64
	parent  *binomialNode[K]
	child   *binomialNode[K]
	sibling *binomialNode[K]
}

func (node *binomialNode[K]) Key() K {
	return node.key
}

func (node *binomialNode[K]) Degree() int64 {
	return node.degree
}

type binomialHeap[K infra.OrderedKey] struct {
	head  *binomialNode[K]
	count int64
}

// linkTrees grafts y under z; both must have equal degree and z.key <= y.key.
func linkTrees[K infra.OrderedKey](y, z *binomialNode[K]) {
	y.parent = z
	y.sibling = z.child
	z.child = y
	z.degree++
}

// mergeRootLists zips two root lists into one ordered by increasing degree.
func mergeRootLists[K infra.OrderedKey](h1, h2 *binomialNode[K]) *binomialNode[K] {
	if h1 == nil {
		return h2
	}
	if h2 == nil {
		return h1
	}

	var merged *binomialNode[K]
	if h1.degree <= h2.degree {
		merged = h1
		h1 = h1.sibling
	} else {
		merged = h2
		h2 = h2.sibling
	}

	curr := merged
	for h1 != nil && h2 != nil {
		if h1.degree <= h2.degree {
			curr.sibling = h1
			h1 = h1.sibling
		} else {
			curr.sibling = h2
			h2 = h2.sibling
		}
		curr = curr.sibling
	}
	if h1 != nil {
		curr.sibling = h1
	} else {
		curr.sibling = h2
	}
	return merged
}

// consolidate links equal-degree roots until every degree appears once.
func consolidate[K infra.OrderedKey](head *binomialNode[K]) *binomialNode[K] {
	if head == nil {
		return nil
	}

	var prev *binomialNode[K]
	curr := head
	next := curr.sibling

	for next != nil {
		if curr.degree != next.degree ||
			(next.sibling != nil && next.sibling.degree == curr.degree) {
			prev = curr
			curr = next
		} else if curr.key <= next.key {
			curr.sibling = next.sibling
			linkTrees(next, curr)
		} else {
			if prev == nil {
				head = next
			} else {
				prev.sibling = next
			}
			linkTrees(curr, next)
			curr = next
		}
		next = curr.sibling
	}
	return head
}

func (heap *binomialHeap[K]) Len() int64 {
	return heap.count
}

func (heap *binomialHeap[K]) Push(key K) HeapItem[K] {
	node := &binomialNode[K]{key: key}
	heap.head = consolidate(mergeRootLists(heap.head, node))
	heap.count++
	return node
}

// minRoot loads the minimum root and its predecessor in the root list.
func (heap *binomialHeap[K]) minRoot() (minimum, prev *binomialNode[K]) {
	minimum = heap.head
	for curr := heap.head; curr.sibling != nil; curr = curr.sibling {
		if curr.sibling.key < minimum.key {
			minimum = curr.sibling
			prev = curr
		}
	}
	return minimum, prev
}

func (heap *binomialHeap[K]) Peek() (K, error) {
	if heap.head == nil {
		var zero K
		return zero, ErrEmptyHeap
	}
	minimum, _ := heap.minRoot()
	return minimum.key, nil
}

func (heap *binomialHeap[K]) Pop() (K, error) {
	if heap.head == nil {
		var zero K
		return zero, ErrEmptyHeap
	}
	minimum, prev := heap.minRoot()
	heap.extractRoot(minimum, prev)
	return minimum.key, nil
}

// extractRoot unlinks a root, reverses its child list into a valid root list
// and folds it back into the heap.
func (heap *binomialHeap[K]) extractRoot(root, prev *binomialNode[K]) {
	if prev == nil {
		heap.head = root.sibling
	} else {
		prev.sibling = root.sibling
	}

	var reversed *binomialNode[K]
	for child := root.child; child != nil; {
		next := child.sibling
		child.sibling = reversed
		child.parent = nil
		reversed = child
		child = next
	}

	heap.head = consolidate(mergeRootLists(heap.head, reversed))
	heap.count--

	root.parent, root.child, root.sibling = nil, nil, nil
	root.degree = 0
}

func (heap *binomialHeap[K]) Union(other MergeableHeap[K]) {
	o, ok := other.(*binomialHeap[K])
	if !ok {
		// Foreign implementation: drain it the slow way.
		for {
			key, err := other.Pop()
			if err != nil {
				return
			}
			heap.Push(key)
		}
	}
	if o == heap || o.head == nil {
		return
	}
	heap.head = consolidate(mergeRootLists(heap.head, o.head))
	heap.count += o.count
	o.head = nil
	o.count = 0
}

func (heap *binomialHeap[K]) DecreaseKey(item HeapItem[K], newKey K) error {
	node, ok := item.(*binomialNode[K])
	if !ok || node == nil {
		return ErrForeignItem
	}
	if newKey > node.key {
		return ErrKeyOrderViolated
	}
	node.key = newKey
	bubbleUp(node, false)
	return nil
}

// DeleteItem removes the node behind the handle by bubbling its key to the
// root of its tree unconditionally, then extracting that root. Avoids the
// minus-infinity sentinel a generic key type cannot express.
func (heap *binomialHeap[K]) DeleteItem(item HeapItem[K]) error {
	node, ok := item.(*binomialNode[K])
	if !ok || node == nil {
		return ErrForeignItem
	}

	root := bubbleUp(node, true)

	var prev *binomialNode[K]
	curr := heap.head
	for curr != nil && curr != root {
		prev = curr
		curr = curr.sibling
	}
	if curr == nil {
		return ErrForeignItem
	}
	heap.extractRoot(root, prev)
	return nil
}

// bubbleUp swaps keys toward the root while the heap order is violated, or
// all the way when forced. Returns the last node reached.
func bubbleUp[K infra.OrderedKey](node *binomialNode[K], force bool) *binomialNode[K] {
	curr := node
	for curr.parent != nil && (force || curr.key < curr.parent.key) {
		curr.key, curr.parent.key = curr.parent.key, curr.key
		curr = curr.parent
	}
	return curr
}

func (heap *binomialHeap[K]) Foreach(fn func(level int64, key K) bool) {
	if heap.head == nil {
		return
	}

	type entry struct {
		node  *binomialNode[K]
		level int64
	}
	queue := []entry{{heap.head, 0}}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if !fn(e.level, e.node.key) {
			return
		}
		if e.node.child != nil {
			queue = append(queue, entry{e.node.child, e.level + 1})
		}
		if e.node.sibling != nil {
			queue = append(queue, entry{e.node.sibling, e.level})
		}
	}
}

func (heap *binomialHeap[K]) WriteForest(w io.Writer) {
	if heap.head == nil {
		_, _ = fmt.Fprintln(w, "(empty heap)")
		return
	}
	for root := heap.head; root != nil; root = root.sibling {
		_, _ = fmt.Fprintf(w, "Binomial Tree B%d (root: %v):\n", root.degree, root.key)
		writeSubtree(w, root, "", true)
	}
}

func writeSubtree[K infra.OrderedKey](w io.Writer, node *binomialNode[K], prefix string, isTail bool) {
	connector := "├── "
	extension := "│   "
	if isTail {
		connector = "└── "
		extension = "    "
	}
	_, _ = fmt.Fprintf(w, "%s%s%v\n", prefix, connector, node.key)

	children := make([]*binomialNode[K], 0, node.degree)
	for child := node.child; child != nil; child = child.sibling {
		children = append(children, child)
	}
	for i, child := range children {
		writeSubtree(w, child, prefix+extension, i == len(children)-1)
	}
}

func NewBinomialHeap[K infra.OrderedKey]() MergeableHeap[K] {
	return &binomialHeap[K]{}
}
