package list

import (
	"errors"
	"fmt"
	"io"
	randv2 "math/rand/v2"
	"strings"

	"github.com/czhou-dev/xalgo/lib/infra"
)

// References:
// https://www.cl.cam.ac.uk/teaching/0506/Algorithms/skiplists.pdf

const (
	sklMaxLevel = 32 // 2^32 - 1 elements
	// Each element is promoted one level per won fair-coin flip.
	sklProbability = 0.5
)

var ErrBadLevel = errors.New("[skiplist] level out of range")

func randomLevel() int {
	level := 1
	for float64(randv2.Int64()&0xFFFF) < sklProbability*0xFFFF && level < sklMaxLevel {
		level++
	}
	return level
}

type sklNode[K infra.OrderedKey] struct {
	key     K
	forward []*sklNode[K]
}

// SkipList is a single-threaded probabilistic ordered set. Duplicate inserts
// are rejected.
type SkipList[K infra.OrderedKey] interface {
	Len() int64
	Levels() int
	Insert(key K) bool
	Remove(key K) bool
	Find(key K) bool
	// Foreach walks the bottom level in ascending key order.
	Foreach(fn func(idx int64, key K) bool)
	// ForeachLevel walks one express level, 0 being the bottom.
	ForeachLevel(level int, fn func(key K) bool) error
}

type xSkipList[K infra.OrderedKey] struct {
	head  *sklNode[K] // full-height header, holds no key
	level int
	len   int64
}

func (skl *xSkipList[K]) Len() int64 {
	return skl.len
}

func (skl *xSkipList[K]) Levels() int {
	return skl.level
}

// traverse loads, per level, the rightmost node with a key less than key.
func (skl *xSkipList[K]) traverse(key K, update []*sklNode[K]) *sklNode[K] {
	x := skl.head
	for i := skl.level - 1; i >= 0; i-- {
		for x.forward[i] != nil && x.forward[i].key < key {
			x = x.forward[i]
		}
		if update != nil {
			update[i] = x
		}
	}
	return x.forward[0]
}

func (skl *xSkipList[K]) Find(key K) bool {
	x := skl.traverse(key, nil)
	return x != nil && x.key == key
}

func (skl *xSkipList[K]) Insert(key K) bool {
	update := make([]*sklNode[K], sklMaxLevel)
	if x := skl.traverse(key, update); x != nil && x.key == key {
		return false
	}

	level := randomLevel()
	if level > skl.level {
		for i := skl.level; i < level; i++ {
			update[i] = skl.head
		}
		skl.level = level
	}

	node := &sklNode[K]{
		key:     key,
		forward: make([]*sklNode[K], level),
	}
	for i := 0; i < level; i++ {
		node.forward[i] = update[i].forward[i]
		update[i].forward[i] = node
	}
	skl.len++
	return true
}

func (skl *xSkipList[K]) Remove(key K) bool {
	update := make([]*sklNode[K], sklMaxLevel)
	x := skl.traverse(key, update)
	if x == nil || x.key != key {
		return false
	}

	for i := 0; i < skl.level; i++ {
		if update[i].forward[i] != x {
			break
		}
		update[i].forward[i] = x.forward[i]
	}
	// Drop express levels left empty by the unlink.
	for skl.level > 1 && skl.head.forward[skl.level-1] == nil {
		skl.level--
	}
	skl.len--
	return true
}

func (skl *xSkipList[K]) Foreach(fn func(idx int64, key K) bool) {
	idx := int64(0)
	for x := skl.head.forward[0]; x != nil; x = x.forward[0] {
		if !fn(idx, x.key) {
			return
		}
		idx++
	}
}

func (skl *xSkipList[K]) ForeachLevel(level int, fn func(key K) bool) error {
	if level < 0 || level >= skl.level {
		return ErrBadLevel
	}
	for x := skl.head.forward[level]; x != nil; x = x.forward[level] {
		if !fn(x.key) {
			return nil
		}
	}
	return nil
}

func NewSkipList[K infra.OrderedKey]() SkipList[K] {
	return &xSkipList[K]{
		head: &sklNode[K]{
			forward: make([]*sklNode[K], sklMaxLevel),
		},
		level: 1,
	}
}

// WriteLevels dumps every express level, top first, for the CLI print
// command:
//
//	Level 1 : 4 9
//	Level 0 : 1 4 7 9
func WriteLevels[K infra.OrderedKey](w io.Writer, skl SkipList[K]) {
	for level := skl.Levels() - 1; level >= 0; level-- {
		var sb strings.Builder
		_ = skl.ForeachLevel(level, func(key K) bool {
			sb.WriteString(fmt.Sprintf(" %v", key))
			return true
		})
		_, _ = fmt.Fprintf(w, "Level %d :%s\n", level, sb.String())
	}
}
