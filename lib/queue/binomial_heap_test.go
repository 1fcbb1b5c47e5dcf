package queue

import (
	randv2 "math/rand/v2"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// The root list must hold strictly increasing degrees and every tree must be
// heap ordered.
func requireForestValid(t *testing.T, h MergeableHeap[int64]) {
	t.Helper()
	heap, ok := h.(*binomialHeap[int64])
	require.True(t, ok)

	lastDegree := int64(-1)
	for root := heap.head; root != nil; root = root.sibling {
		require.Greater(t, root.degree, lastDegree)
		lastDegree = root.degree
		require.Nil(t, root.parent)

		stack := []*binomialNode[int64]{root}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for child := node.child; child != nil; child = child.sibling {
				require.GreaterOrEqual(t, child.key, node.key)
				require.Equal(t, node, child.parent)
				stack = append(stack, child)
			}
		}
	}
}

func TestBinomialHeapPushPopSorted(t *testing.T) {
	h := NewBinomialHeap[int64]()
	_, err := h.Peek()
	require.ErrorIs(t, err, ErrEmptyHeap)
	_, err = h.Pop()
	require.ErrorIs(t, err, ErrEmptyHeap)

	keys := make([]int64, 0, 256)
	for i := 0; i < 256; i++ {
		k := randv2.Int64N(1024)
		keys = append(keys, k)
		h.Push(k)
		requireForestValid(t, h)
	}
	require.Equal(t, int64(len(keys)), h.Len())

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, want := range keys {
		got, err := h.Pop()
		require.NoError(t, err)
		require.Equal(t, want, got)
		requireForestValid(t, h)
	}
	require.Equal(t, int64(0), h.Len())
}

func TestBinomialHeapPeekDoesNotExtract(t *testing.T) {
	h := NewBinomialHeap[int64]()
	h.Push(5)
	h.Push(3)
	h.Push(8)

	for i := 0; i < 3; i++ {
		minKey, err := h.Peek()
		require.NoError(t, err)
		require.Equal(t, int64(3), minKey)
	}
	require.Equal(t, int64(3), h.Len())
}

func TestBinomialHeapUnion(t *testing.T) {
	h1 := NewBinomialHeap[int64]()
	h2 := NewBinomialHeap[int64]()
	for _, k := range []int64{5, 10, 15} {
		h1.Push(k)
	}
	for _, k := range []int64{3, 8, 20} {
		h2.Push(k)
	}

	h1.Union(h2)
	require.Equal(t, int64(6), h1.Len())
	require.Equal(t, int64(0), h2.Len())
	requireForestValid(t, h1)

	var drained []int64
	for h1.Len() > 0 {
		k, err := h1.Pop()
		require.NoError(t, err)
		drained = append(drained, k)
	}
	require.Equal(t, []int64{3, 5, 8, 10, 15, 20}, drained)
}

func TestBinomialHeapDecreaseKey(t *testing.T) {
	h := NewBinomialHeap[int64]()
	items := make(map[int64]HeapItem[int64])
	for _, k := range []int64{50, 30, 20, 10} {
		items[k] = h.Push(k)
	}

	require.ErrorIs(t, h.DecreaseKey(items[30], 40), ErrKeyOrderViolated)

	require.NoError(t, h.DecreaseKey(items[50], 5))
	requireForestValid(t, h)
	minKey, err := h.Peek()
	require.NoError(t, err)
	require.Equal(t, int64(5), minKey)
}

func TestBinomialHeapDeleteItem(t *testing.T) {
	h := NewBinomialHeap[int64]()
	keys := []int64{9, 4, 7, 1, 6, 3}
	item := h.Push(keys[0])
	for _, k := range keys[1:] {
		h.Push(k)
	}

	require.NoError(t, h.DeleteItem(item))
	require.Equal(t, int64(len(keys)-1), h.Len())
	requireForestValid(t, h)

	var drained []int64
	for h.Len() > 0 {
		k, err := h.Pop()
		require.NoError(t, err)
		drained = append(drained, k)
	}
	require.Equal(t, []int64{1, 3, 4, 6, 7}, drained)
}

func TestBinomialHeapForeachLevels(t *testing.T) {
	h := NewBinomialHeap[int64]()
	for i := int64(0); i < 8; i++ {
		h.Push(i)
	}

	// 8 == 0b1000: a single B3 tree.
	maxLevel := int64(-1)
	count := 0
	h.Foreach(func(level int64, key int64) bool {
		if level > maxLevel {
			maxLevel = level
		}
		count++
		return true
	})
	require.Equal(t, 8, count)
	require.Equal(t, int64(3), maxLevel)
}

func TestBinomialHeapWriteForest(t *testing.T) {
	h := NewBinomialHeap[int64]()
	var sb strings.Builder
	h.WriteForest(&sb)
	require.Equal(t, "(empty heap)\n", sb.String())

	for _, k := range []int64{2, 1, 3} {
		h.Push(k)
	}
	sb.Reset()
	h.WriteForest(&sb)
	out := sb.String()
	require.Contains(t, out, "Binomial Tree B0")
	require.Contains(t, out, "Binomial Tree B1")
	require.Contains(t, out, "└── ")
}
