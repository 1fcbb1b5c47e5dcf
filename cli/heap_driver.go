package cli

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/czhou-dev/xalgo/lib/queue"
	"github.com/czhou-dev/xalgo/xlog"
)

const heapUsage = "Commands: insert x, min, extract, print, exit"

// HeapDriver runs the binomial heap command loop.
type HeapDriver struct {
	heap   queue.MergeableHeap[int64]
	in     io.Reader
	out    io.Writer
	logger *xlog.XLogger
}

func NewHeapDriver(h queue.MergeableHeap[int64], in io.Reader, out io.Writer, logger *xlog.XLogger) *HeapDriver {
	return &HeapDriver{
		heap:   h,
		in:     in,
		out:    out,
		logger: logger.Named("heap-driver"),
	}
}

// Load bulk-pushes the integer list at path.
func (d *HeapDriver) Load(path string) {
	keys, err := LoadKeys(path)
	if keys == nil {
		if err != nil {
			fmt.Fprintf(d.out, "File not found: %s\nStarting with empty heap.\n", path)
		}
		return
	}
	if err != nil {
		d.logger.Warn("skipped malformed tokens", zap.String("path", path), zap.Error(err))
	}
	for _, key := range keys {
		d.heap.Push(key)
	}
	fmt.Fprintf(d.out, "Loaded %d values from %s\n", len(keys), path)
	d.heap.WriteForest(d.out)
}

func (d *HeapDriver) Run() error {
	fmt.Fprintln(d.out, heapUsage)

	scanner := bufio.NewScanner(d.in)
	for scanner.Scan() {
		cmd, arg, ok := splitCommand(scanner.Text())
		if !ok {
			continue
		}

		switch cmd {
		case "exit", "quit":
			fmt.Fprintln(d.out, "Goodbye!")
			return nil
		case "insert":
			key, err := parseKeyArg(d.out, cmd, arg)
			if err != nil {
				continue
			}
			d.heap.Push(key)
			fmt.Fprintf(d.out, "Inserted %d\n", key)
		case "min":
			if key, err := d.heap.Peek(); err == nil {
				fmt.Fprintf(d.out, "Minimum key in the heap is: %d\n", key)
			} else {
				fmt.Fprintln(d.out, "Heap empty")
			}
		case "extract":
			if key, err := d.heap.Pop(); err == nil {
				fmt.Fprintf(d.out, "Extracted minimum: %d\n", key)
			} else {
				fmt.Fprintln(d.out, "Heap empty")
			}
		case "print":
			d.heap.WriteForest(d.out)
		default:
			fmt.Fprintln(d.out, "Invalid command! "+heapUsage)
		}
	}
	return scanner.Err()
}
