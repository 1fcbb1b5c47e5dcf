package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/czhou-dev/xalgo/lib/infra"
)

// Presentation helpers for diagnostics and the line-command driver. Both
// walk the tree read-only and keep an explicit stack instead of recursing.

func colorTag(color RBColor) string {
	if color == Red {
		return "R"
	}
	return "B"
}

// WriteTree renders the branch-art diagram of the tree:
//
//	└── B 20
//	    ├── R 10
//	    └── R 30
func WriteTree[K infra.OrderedKey](w io.Writer, tree RBTree[K]) {
	root := tree.Root()
	if root == nil {
		_, _ = fmt.Fprintln(w, "Tree is empty")
		return
	}

	type frame struct {
		node   RBNode[K]
		prefix string
		isTail bool
	}
	stack := []frame{{root, "", true}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		connector := "├── "
		extension := "│   "
		if top.isTail {
			connector = "└── "
			extension = "    "
		}
		_, _ = fmt.Fprintf(w, "%s%s%s %v\n",
			top.prefix, connector, colorTag(top.node.Color()), top.node.Key())

		l, r := top.node.Left(), top.node.Right()
		childPrefix := top.prefix + extension
		// Push right first so the left child renders on top.
		if r != nil {
			stack = append(stack, frame{r, childPrefix, true})
		}
		if l != nil {
			stack = append(stack, frame{l, childPrefix, r == nil})
		}
	}
}

// WriteInOrder renders the compact sorted listing: (10R) (20B) (30R)
func WriteInOrder[K infra.OrderedKey](w io.Writer, tree RBTree[K]) {
	if tree.Root() == nil {
		_, _ = fmt.Fprintln(w, "Tree is empty")
		return
	}

	parts := make([]string, 0, tree.Len())
	tree.Foreach(func(idx int64, color RBColor, key K) bool {
		parts = append(parts, fmt.Sprintf("(%v%s)", key, colorTag(color)))
		return true
	})
	_, _ = fmt.Fprintln(w, strings.Join(parts, " "))
}
