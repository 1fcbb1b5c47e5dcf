package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/czhou-dev/xalgo/lib/kv"
	"github.com/czhou-dev/xalgo/xlog"
)

// RunWordsReport tokenizes the file at path into whitespace-separated words,
// counts them in a chained hash table of bucketCount buckets, and writes the
// counts plus a bucket-distribution report.
func RunWordsReport(path string, bucketCount int, out io.Writer, logger *xlog.XLogger) error {
	log := logger.Named("words")

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Error("unable to read word file", zap.String("path", path), zap.Error(err))
		return err
	}

	table := kv.NewWordCountTable(bucketCount)
	words := strings.Fields(string(raw))
	for _, word := range words {
		table.Insert(word, 1)
	}
	log.Info("counted words",
		zap.String("path", path),
		zap.Int("tokens", len(words)),
		zap.Int64("distinct", table.Count()),
	)

	fmt.Fprintf(out, "Read %d words (%d distinct) from %s\n\n", len(words), table.Count(), path)
	table.WriteAll(out)

	sizes := table.BucketSizes()
	stats := kv.ComputeBucketStats(sizes)
	fmt.Fprintf(out, "\nBuckets: %d (%d non-empty)\n", stats.Buckets, stats.NonEmpty)
	fmt.Fprintf(out, "Mean bucket size: %.4f\n", stats.Mean)
	fmt.Fprintf(out, "Variance: %.4f\n", stats.Variance)
	fmt.Fprintf(out, "Std deviation: %.4f\n", stats.StdDev)

	fmt.Fprintln(out, "Largest buckets:")
	for _, b := range kv.TopBuckets(sizes, 0.1) {
		fmt.Fprintf(out, "  bucket %d : %d words\n", b.Index, b.Size)
	}
	return nil
}
