package kv

import (
	"math"
	"sort"

	"github.com/samber/lo"
)

// BucketStats summarizes the collision distribution of a table, the payload
// of the hashing exercise's report.
type BucketStats struct {
	Buckets    int
	NonEmpty   int
	TotalWords int64
	Mean       float64
	Variance   float64
	StdDev     float64
}

func ComputeBucketStats(sizes []BucketSize) BucketStats {
	if len(sizes) == 0 {
		return BucketStats{}
	}

	total := lo.SumBy(sizes, func(b BucketSize) int64 { return b.Size })
	nonEmpty := lo.CountBy(sizes, func(b BucketSize) bool { return b.Size > 0 })

	n := float64(len(sizes))
	mean := float64(total) / n
	sqDiff := lo.SumBy(sizes, func(b BucketSize) float64 {
		d := float64(b.Size) - mean
		return d * d
	})
	variance := sqDiff / n

	return BucketStats{
		Buckets:    len(sizes),
		NonEmpty:   nonEmpty,
		TotalWords: total,
		Mean:       mean,
		Variance:   variance,
		StdDev:     math.Sqrt(variance),
	}
}

// TopBuckets returns the most collided fraction of buckets, at least one,
// ordered by descending chain length.
func TopBuckets(sizes []BucketSize, fraction float64) []BucketSize {
	if len(sizes) == 0 {
		return nil
	}
	if fraction <= 0 || fraction > 1 {
		fraction = 0.1
	}

	ranked := make([]BucketSize, len(sizes))
	copy(ranked, sizes)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Size > ranked[j].Size })

	top := int(float64(len(ranked)) * fraction)
	if top < 1 {
		top = 1
	}
	return ranked[:top]
}
