// Package cli holds the line-command drivers for the ordered-collection
// exercises. Drivers parse textual commands, call the container's public
// operations and print human-readable results; they own no container state
// and never touch container internals.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/czhou-dev/xalgo/lib/tree"
	"github.com/czhou-dev/xalgo/xlog"
)

const treeUsage = "Commands: insert x, delete x, sort, search x, min, max, successor x, predecessor x, height, tree, exit"

// TreeDriver runs the red-black tree command loop over any line source,
// interactive or file-backed.
type TreeDriver struct {
	tree   tree.RBTree[int64]
	in     io.Reader
	out    io.Writer
	logger *xlog.XLogger
}

func NewTreeDriver(t tree.RBTree[int64], in io.Reader, out io.Writer, logger *xlog.XLogger) *TreeDriver {
	return &TreeDriver{
		tree:   t,
		in:     in,
		out:    out,
		logger: logger.Named("tree-driver"),
	}
}

// Load bulk-inserts the integer list at path. Failures are reported and
// leave the driver running with whatever was inserted.
func (d *TreeDriver) Load(path string) {
	keys, err := LoadKeys(path)
	if keys == nil {
		if err != nil {
			d.logger.Warn("input file unavailable, starting with an empty tree",
				zap.String("path", path), zap.Error(err))
			fmt.Fprintf(d.out, "File not found: %s\nStarting with empty tree.\n", path)
		}
		return
	}
	if err != nil {
		d.logger.Warn("skipped malformed tokens", zap.String("path", path), zap.Error(err))
	}

	for _, key := range keys {
		d.tree.Insert(key)
	}
	fmt.Fprintf(d.out, "Loaded %d values from %s\n", len(keys), path)
	tree.WriteTree[int64](d.out, d.tree)
	d.printHeight()
}

// Run consumes commands until exit or the source drains.
func (d *TreeDriver) Run() error {
	fmt.Fprintln(d.out, treeUsage)

	scanner := bufio.NewScanner(d.in)
	for scanner.Scan() {
		cmd, arg, ok := splitCommand(scanner.Text())
		if !ok {
			continue
		}

		switch cmd {
		case "exit":
			fmt.Fprintln(d.out, "Goodbye!")
			return nil
		case "insert":
			key, err := parseKeyArg(d.out, cmd, arg)
			if err != nil {
				continue
			}
			d.tree.Insert(key)
			fmt.Fprintf(d.out, "Inserted %d\n", key)
			tree.WriteTree[int64](d.out, d.tree)
		case "delete":
			key, err := parseKeyArg(d.out, cmd, arg)
			if err != nil {
				continue
			}
			if d.tree.Delete(key) {
				fmt.Fprintf(d.out, "Deleted %d\n", key)
				tree.WriteTree[int64](d.out, d.tree)
			} else {
				fmt.Fprintf(d.out, "Key %d not found in tree\n", key)
			}
		case "search":
			key, err := parseKeyArg(d.out, cmd, arg)
			if err != nil {
				continue
			}
			if _, err := d.tree.Search(key); err == nil {
				fmt.Fprintf(d.out, "Node with key %d found\n", key)
			} else {
				fmt.Fprintf(d.out, "Node with key %d does not exist\n", key)
			}
		case "min":
			if key, err := d.tree.Min(); err == nil {
				fmt.Fprintf(d.out, "Minimum value in the tree is: %d\n", key)
			} else {
				fmt.Fprintln(d.out, "Tree empty")
			}
		case "max":
			if key, err := d.tree.Max(); err == nil {
				fmt.Fprintf(d.out, "Maximum value in the tree is: %d\n", key)
			} else {
				fmt.Fprintln(d.out, "Tree empty")
			}
		case "successor":
			key, err := parseKeyArg(d.out, cmd, arg)
			if err != nil {
				continue
			}
			d.printNeighbor(key, "Successor", d.tree.Successor)
		case "predecessor":
			key, err := parseKeyArg(d.out, cmd, arg)
			if err != nil {
				continue
			}
			d.printNeighbor(key, "Predecessor", d.tree.Predecessor)
		case "height":
			d.printHeight()
		case "sort":
			if d.tree.Len() == 0 {
				fmt.Fprintln(d.out, "Tree is empty")
				continue
			}
			fmt.Fprintln(d.out, "In-order traversal (sorted):")
			d.tree.Foreach(func(idx int64, color tree.RBColor, key int64) bool {
				name := "Black"
				if color == tree.Red {
					name = "Red"
				}
				fmt.Fprintf(d.out, "( %d , %s )\n", key, name)
				return true
			})
		case "tree":
			tree.WriteTree[int64](d.out, d.tree)
		default:
			fmt.Fprintln(d.out, "Invalid command! "+treeUsage)
		}
	}
	return scanner.Err()
}

func (d *TreeDriver) printHeight() {
	if h := d.tree.Height(); h >= 0 {
		fmt.Fprintf(d.out, "The height of the tree is: %d\n", h)
	} else {
		fmt.Fprintln(d.out, "Tree empty")
	}
}

func (d *TreeDriver) printNeighbor(key int64, kind string, query func(int64) (int64, error)) {
	neighbor, err := query(key)
	switch {
	case err == nil:
		fmt.Fprintf(d.out, "The %s of %d is : %d\n", kind, key, neighbor)
	case errors.Is(err, tree.ErrKeyNotFound):
		fmt.Fprintln(d.out, "The requested key does not exist")
	default:
		fmt.Fprintf(d.out, "No %s for requested key\n", strings.ToLower(kind))
	}
}

// splitCommand tokenizes one input line into a command word and an optional
// single argument. Blank lines are skipped.
func splitCommand(line string) (cmd, arg string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", "", false
	}
	cmd = strings.ToLower(fields[0])
	if len(fields) > 1 {
		arg = fields[1]
	}
	return cmd, arg, true
}

func parseKeyArg(out io.Writer, cmd, arg string) (int64, error) {
	if arg == "" {
		fmt.Fprintf(out, "Usage: %s <number>\n", cmd)
		return 0, errors.New("missing argument")
	}
	key, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintln(out, "Invalid input. Please enter valid numbers.")
		return 0, err
	}
	return key, nil
}
