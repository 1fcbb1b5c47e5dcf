package kv

import (
	"fmt"
	"io"
)

// Word-frequency table with separate chaining on a deliberately transparent
// hash: the 31-polynomial rolling hash mod the bucket count. The collision
// distribution is the object of study here, so the hash must stay
// deterministic across runs. No per-process seed.

const (
	// DefaultBucketCount keeps the table small enough that collisions are
	// guaranteed on any real text, which is what the statistics report on.
	DefaultBucketCount = 30
	// LargeBucketCount is the alternate exercise size.
	LargeBucketCount = 2999
)

type wcNode struct {
	key   string
	count int64
	next  *wcNode
}

// BucketSize pairs a bucket index with its chain length.
type BucketSize struct {
	Index int
	Size  int64
}

// WordCounter is a single-threaded word-frequency store.
type WordCounter interface {
	// Insert adds delta to the word's count, creating it when absent.
	Insert(word string, delta int64)
	// Increase adds one to an existing word's count; absent words are
	// untouched.
	Increase(word string)
	Remove(word string)
	// Find returns the word's count, zero when absent.
	Find(word string) int64
	// Count returns the number of distinct words.
	Count() int64
	Foreach(fn func(word string, count int64) bool)
	// WriteAll dumps "word : count" lines in bucket order.
	WriteAll(w io.Writer)
	BucketSizes() []BucketSize
}

type chainedWordCount struct {
	buckets []*wcNode
	count   int64
}

func (table *chainedWordCount) hash(word string) int {
	h := uint64(0)
	for i := 0; i < len(word); i++ {
		h = h*31 + uint64(word[i])
	}
	return int(h % uint64(len(table.buckets)))
}

func (table *chainedWordCount) Insert(word string, delta int64) {
	idx := table.hash(word)
	for node := table.buckets[idx]; node != nil; node = node.next {
		if node.key == word {
			node.count += delta
			return
		}
	}
	table.buckets[idx] = &wcNode{key: word, count: delta, next: table.buckets[idx]}
	table.count++
}

func (table *chainedWordCount) Increase(word string) {
	for node := table.buckets[table.hash(word)]; node != nil; node = node.next {
		if node.key == word {
			node.count++
			return
		}
	}
}

func (table *chainedWordCount) Remove(word string) {
	idx := table.hash(word)
	var prev *wcNode
	for node := table.buckets[idx]; node != nil; node = node.next {
		if node.key == word {
			if prev == nil {
				table.buckets[idx] = node.next
			} else {
				prev.next = node.next
			}
			table.count--
			return
		}
		prev = node
	}
}

func (table *chainedWordCount) Find(word string) int64 {
	for node := table.buckets[table.hash(word)]; node != nil; node = node.next {
		if node.key == word {
			return node.count
		}
	}
	return 0
}

func (table *chainedWordCount) Count() int64 {
	return table.count
}

func (table *chainedWordCount) Foreach(fn func(word string, count int64) bool) {
	for _, head := range table.buckets {
		for node := head; node != nil; node = node.next {
			if !fn(node.key, node.count) {
				return
			}
		}
	}
}

func (table *chainedWordCount) WriteAll(w io.Writer) {
	table.Foreach(func(word string, count int64) bool {
		_, _ = fmt.Fprintf(w, "%s : %d\n", word, count)
		return true
	})
}

func (table *chainedWordCount) BucketSizes() []BucketSize {
	sizes := make([]BucketSize, len(table.buckets))
	for i, head := range table.buckets {
		size := int64(0)
		for node := head; node != nil; node = node.next {
			size++
		}
		sizes[i] = BucketSize{Index: i, Size: size}
	}
	return sizes
}

func NewWordCountTable(bucketCount int) WordCounter {
	if bucketCount <= 0 {
		bucketCount = DefaultBucketCount
	}
	return &chainedWordCount{
		buckets: make([]*wcNode, bucketCount),
	}
}
