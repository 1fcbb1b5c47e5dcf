// Command xalgo is the interactive driver for the ordered-collection
// exercises. It reads commands from stdin and writes results to stdout;
// diagnostics go to stderr through the structured logger.
//
// Usage:
//
//	xalgo [flags] <tree|skiplist|heap|words>
//
// The tree, skiplist and heap modes optionally bulk-load integers from
// --input before entering the command loop. The words mode requires
// --input and prints a word-frequency report instead of looping.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/czhou-dev/xalgo/cli"
	"github.com/czhou-dev/xalgo/lib/kv"
	"github.com/czhou-dev/xalgo/lib/list"
	"github.com/czhou-dev/xalgo/lib/queue"
	"github.com/czhou-dev/xalgo/lib/tree"
	"github.com/czhou-dev/xalgo/xlog"
)

func main() {
	var (
		input    string
		logLevel string
		jsonLog  bool
		buckets  int
	)
	pflag.StringVarP(&input, "input", "i", "", "path to a whitespace-separated input file")
	pflag.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pflag.BoolVar(&jsonLog, "json-log", false, "emit JSON logs instead of console logs")
	pflag.IntVar(&buckets, "buckets", kv.DefaultBucketCount, "bucket count for the words mode")
	pflag.Parse()

	encoder := xlog.PlainText
	if jsonLog {
		encoder = xlog.JSON
	}
	logger := xlog.NewXLogger(xlog.ParseLevel(logLevel), encoder)
	defer func() { _ = logger.Sync() }()

	mode := "tree"
	if pflag.NArg() > 0 {
		mode = pflag.Arg(0)
	}

	var err error
	switch mode {
	case "tree":
		d := cli.NewTreeDriver(tree.NewRBTree[int64](), os.Stdin, os.Stdout, logger)
		if input != "" {
			d.Load(input)
		}
		err = d.Run()
	case "skiplist":
		d := cli.NewSkipListDriver(list.NewSkipList[int64](), os.Stdin, os.Stdout, logger)
		if input != "" {
			d.Load(input)
		}
		err = d.Run()
	case "heap":
		d := cli.NewHeapDriver(queue.NewBinomialHeap[int64](), os.Stdin, os.Stdout, logger)
		if input != "" {
			d.Load(input)
		}
		err = d.Run()
	case "words":
		if input == "" {
			fmt.Fprintln(os.Stderr, "words mode requires --input <file>")
			os.Exit(2)
		}
		err = cli.RunWordsReport(input, buckets, os.Stdout, logger)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q, expected tree, skiplist, heap or words\n", mode)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("driver exited with error", zap.Error(err))
		os.Exit(1)
	}
}
