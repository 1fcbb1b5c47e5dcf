package tree

import (
	"math"
	randv2 "math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

type checkData struct {
	color RBColor
	key   int64
}

func requireInOrder(t *testing.T, tree RBTree[int64], expected []checkData) {
	t.Helper()
	visited := int64(0)
	tree.Foreach(func(idx int64, color RBColor, key int64) bool {
		require.Equal(t, expected[idx].color, color, "color at idx %d", idx)
		require.Equal(t, expected[idx].key, key, "key at idx %d", idx)
		visited++
		return true
	})
	require.Equal(t, int64(len(expected)), visited)
	require.Equal(t, int64(len(expected)), tree.Len())
}

func requireValid(t *testing.T, tree RBTree[int64]) {
	t.Helper()
	require.NoError(t, Validate[int64](tree))
}

func TestRbtreeInsertAndRemoveStepwise(t *testing.T) {
	tree := NewRBTree[int64]()

	tree.Insert(52)
	requireInOrder(t, tree, []checkData{{Black, 52}})
	requireValid(t, tree)

	tree.Insert(47)
	requireInOrder(t, tree, []checkData{{Red, 47}, {Black, 52}})
	requireValid(t, tree)

	tree.Insert(3)
	requireInOrder(t, tree, []checkData{{Red, 3}, {Black, 47}, {Red, 52}})
	requireValid(t, tree)

	tree.Insert(35)
	requireInOrder(t, tree, []checkData{
		{Black, 3}, {Red, 35}, {Black, 47}, {Black, 52},
	})
	requireValid(t, tree)

	tree.Insert(24)
	requireInOrder(t, tree, []checkData{
		{Red, 3}, {Black, 24}, {Red, 35}, {Black, 47}, {Black, 52},
	})
	requireValid(t, tree)

	// Interior removal copies the successor key into the removed position.
	require.True(t, tree.Remove(24))
	requireInOrder(t, tree, []checkData{
		{Red, 3}, {Black, 35}, {Black, 47}, {Black, 52},
	})
	requireValid(t, tree)

	// Root removal with a conceptual-nil replacement position.
	require.True(t, tree.Remove(47))
	requireInOrder(t, tree, []checkData{
		{Black, 3}, {Black, 35}, {Black, 52},
	})
	requireValid(t, tree)

	require.False(t, tree.Remove(47))
	require.Equal(t, int64(3), tree.Len())
}

func TestRbtreeAscendingInsertRotatesToAbsorb(t *testing.T) {
	tree := NewRBTree[int64]()
	tree.Insert(10)
	tree.Insert(20)
	tree.Insert(30)

	root := tree.Root()
	require.NotNil(t, root)
	require.Equal(t, int64(20), root.Key())
	require.Equal(t, Black, root.Color())
	require.Equal(t, int64(10), root.Left().Key())
	require.Equal(t, Red, root.Left().Color())
	require.Equal(t, int64(30), root.Right().Key())
	require.Equal(t, Red, root.Right().Color())
	requireValid(t, tree)
}

func TestRbtreeSearch(t *testing.T) {
	tree := NewRBTree[int64]()
	tree.Insert(10)
	tree.Insert(20)
	tree.Insert(30)

	node, err := tree.Search(30)
	require.NoError(t, err)
	require.Equal(t, int64(30), node.Key())

	_, err = tree.Search(99)
	require.ErrorIs(t, err, ErrKeyNotFound)

	// Queries never mutate; repeated calls agree.
	for i := 0; i < 3; i++ {
		node, err = tree.Search(30)
		require.NoError(t, err)
		require.Equal(t, int64(30), node.Key())
	}
	require.Equal(t, int64(3), tree.Len())
	requireValid(t, tree)
}

func TestRbtreeDeleteRoot(t *testing.T) {
	tree := NewRBTree[int64]()
	tree.Insert(10)
	tree.Insert(20)
	tree.Insert(30)

	require.True(t, tree.Delete(20))
	requireValid(t, tree)

	var keys []int64
	tree.Foreach(func(idx int64, color RBColor, key int64) bool {
		keys = append(keys, key)
		return true
	})
	require.Equal(t, []int64{10, 30}, keys)

	minKey, err := tree.Min()
	require.NoError(t, err)
	require.Equal(t, int64(10), minKey)
	maxKey, err := tree.Max()
	require.NoError(t, err)
	require.Equal(t, int64(30), maxKey)
}

func TestRbtreeHeightBoundAndSortedOrder(t *testing.T) {
	tree := NewRBTree[int64]()
	for _, k := range []int64{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(k)
		requireValid(t, tree)
	}

	bound := 2 * math.Log2(float64(tree.Len())+1)
	require.LessOrEqual(t, float64(tree.Height()), bound)

	var keys []int64
	tree.Foreach(func(idx int64, color RBColor, key int64) bool {
		keys = append(keys, key)
		return true
	})
	require.Equal(t, []int64{1, 3, 4, 5, 7, 8, 9}, keys)
}

func TestRbtreeSuccessorPredecessorAgainstSortedModel(t *testing.T) {
	keys := []int64{5, 3, 8, 1, 4, 7, 9}
	tree := NewRBTree[int64]()
	for _, k := range keys {
		tree.Insert(k)
	}

	model := make([]int64, len(keys))
	copy(model, keys)
	sort.Slice(model, func(i, j int) bool { return model[i] < model[j] })

	for i, k := range model {
		succ, err := tree.Successor(k)
		if i == len(model)-1 {
			require.ErrorIs(t, err, ErrNoSuccessor)
		} else {
			require.NoError(t, err)
			require.Equal(t, model[i+1], succ)
		}

		pred, err := tree.Predecessor(k)
		if i == 0 {
			require.ErrorIs(t, err, ErrNoPredecessor)
		} else {
			require.NoError(t, err)
			require.Equal(t, model[i-1], pred)
		}
	}

	_, err := tree.Successor(99)
	require.ErrorIs(t, err, ErrKeyNotFound)
	_, err = tree.Predecessor(99)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRbtreeEmptyAndSingleNodeQueries(t *testing.T) {
	tree := NewRBTree[int64]()
	require.Equal(t, -1, tree.Height())
	require.Nil(t, tree.Root())

	_, err := tree.Min()
	require.ErrorIs(t, err, ErrEmptyTree)
	_, err = tree.Max()
	require.ErrorIs(t, err, ErrEmptyTree)
	require.False(t, tree.Delete(1))

	tree.Insert(42)
	require.Equal(t, 0, tree.Height())
	minKey, err := tree.Min()
	require.NoError(t, err)
	require.Equal(t, int64(42), minKey)
	maxKey, err := tree.Max()
	require.NoError(t, err)
	require.Equal(t, int64(42), maxKey)
	requireValid(t, tree)
}

func TestRbtreeDuplicateKeysNestRight(t *testing.T) {
	tree := NewRBTree[int64]()
	for i := 0; i < 3; i++ {
		tree.Insert(7)
		requireValid(t, tree)
	}
	tree.Insert(1)
	tree.Insert(9)
	require.Equal(t, int64(5), tree.Len())

	var keys []int64
	tree.Foreach(func(idx int64, color RBColor, key int64) bool {
		keys = append(keys, key)
		return true
	})
	require.Equal(t, []int64{1, 7, 7, 7, 9}, keys)

	// One occurrence goes per delete.
	require.True(t, tree.Delete(7))
	require.True(t, tree.Delete(7))
	require.True(t, tree.Delete(7))
	require.False(t, tree.Delete(7))
	require.Equal(t, int64(2), tree.Len())
	requireValid(t, tree)
}

func TestRbtreeInsertDeleteRoundTripKeepsMultiset(t *testing.T) {
	tree := NewRBTree[int64]()
	for i := 0; i < 64; i++ {
		tree.Insert(randv2.Int64N(16)) // collisions on purpose
	}

	snapshot := func() []int64 {
		var keys []int64
		tree.Foreach(func(idx int64, color RBColor, key int64) bool {
			keys = append(keys, key)
			return true
		})
		return keys
	}

	before := snapshot()
	tree.Insert(11)
	require.True(t, tree.Delete(11))
	requireValid(t, tree)
	require.Equal(t, before, snapshot())
}

func TestRbtreeRandomInsertAndDrain(t *testing.T) {
	const size = 50
	tree := NewRBTree[int64]()

	keys := make([]int64, 0, size)
	for _, k := range randv2.Perm(size * 10)[:size] {
		keys = append(keys, int64(k))
	}
	for _, k := range keys {
		tree.Insert(k)
		requireValid(t, tree)
	}
	require.Equal(t, int64(size), tree.Len())

	order := randv2.Perm(size)
	for _, i := range order {
		require.True(t, tree.Delete(keys[i]))
		requireValid(t, tree)
	}

	require.Equal(t, int64(0), tree.Len())
	require.Nil(t, tree.Root())
	for _, k := range keys {
		_, err := tree.Search(k)
		require.ErrorIs(t, err, ErrKeyNotFound)
	}
}

func TestRbtreeRandomMonotonicAndReverse(t *testing.T) {
	tree := NewRBTree[int64]()
	for i := int64(0); i < 256; i++ {
		tree.Insert(i)
	}
	requireValid(t, tree)
	require.LessOrEqual(t, float64(tree.Height()), 2*math.Log2(257))

	for i := int64(255); i >= 0; i-- {
		require.True(t, tree.Delete(i))
	}
	require.Equal(t, int64(0), tree.Len())

	for i := int64(256); i > 0; i-- {
		tree.Insert(i)
	}
	requireValid(t, tree)
	require.LessOrEqual(t, float64(tree.Height()), 2*math.Log2(257))
}

func TestRbtreeRotationOnMissingPivotPanics(t *testing.T) {
	tree := &rbTree[int64]{}
	tree.Insert(1)
	require.Panics(t, func() {
		tree.leftRotate(tree.root)
	})
	require.Panics(t, func() {
		tree.rightRotate(tree.root)
	})
}
