package cli

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/czhou-dev/xalgo/lib/list"
	"github.com/czhou-dev/xalgo/xlog"
)

const skiplistUsage = "Commands: insert x, delete x, find x, print, quit"

// SkipListDriver runs the skip list command loop.
type SkipListDriver struct {
	skl    list.SkipList[int64]
	in     io.Reader
	out    io.Writer
	logger *xlog.XLogger
}

func NewSkipListDriver(skl list.SkipList[int64], in io.Reader, out io.Writer, logger *xlog.XLogger) *SkipListDriver {
	return &SkipListDriver{
		skl:    skl,
		in:     in,
		out:    out,
		logger: logger.Named("skl-driver"),
	}
}

// Load bulk-inserts the integer list at path, skipping duplicates.
func (d *SkipListDriver) Load(path string) {
	keys, err := LoadKeys(path)
	if keys == nil {
		if err != nil {
			fmt.Fprintf(d.out, "File not found: %s\nStarting with empty skip list.\n", path)
		}
		return
	}
	if err != nil {
		d.logger.Warn("skipped malformed tokens", zap.String("path", path), zap.Error(err))
	}
	inserted := 0
	for _, key := range keys {
		if d.skl.Insert(key) {
			inserted++
		}
	}
	fmt.Fprintf(d.out, "Loaded %d values from %s\n", inserted, path)
	list.WriteLevels[int64](d.out, d.skl)
}

func (d *SkipListDriver) Run() error {
	fmt.Fprintln(d.out, skiplistUsage)

	scanner := bufio.NewScanner(d.in)
	for scanner.Scan() {
		cmd, arg, ok := splitCommand(scanner.Text())
		if !ok {
			continue
		}

		switch cmd {
		case "quit", "exit":
			fmt.Fprintln(d.out, "Goodbye!")
			return nil
		case "insert":
			key, err := parseKeyArg(d.out, cmd, arg)
			if err != nil {
				continue
			}
			if d.skl.Insert(key) {
				fmt.Fprintf(d.out, "Inserted %d\n", key)
			} else {
				fmt.Fprintf(d.out, "Key %d already present\n", key)
			}
		case "delete":
			key, err := parseKeyArg(d.out, cmd, arg)
			if err != nil {
				continue
			}
			if d.skl.Remove(key) {
				fmt.Fprintf(d.out, "Deleted %d\n", key)
			} else {
				fmt.Fprintf(d.out, "Key %d not found\n", key)
			}
		case "find":
			key, err := parseKeyArg(d.out, cmd, arg)
			if err != nil {
				continue
			}
			if d.skl.Find(key) {
				fmt.Fprintf(d.out, "Key %d found\n", key)
			} else {
				fmt.Fprintf(d.out, "Key %d not found\n", key)
			}
		case "print":
			list.WriteLevels[int64](d.out, d.skl)
		default:
			fmt.Fprintln(d.out, "Invalid command! "+skiplistUsage)
		}
	}
	return scanner.Err()
}
