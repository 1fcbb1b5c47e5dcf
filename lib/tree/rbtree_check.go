package tree

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/czhou-dev/xalgo/lib/infra"
)

// rbtree rule validation utilities, meant for tests and debug sweeps after
// every rotation/splice.

func isNilLeaf[K infra.OrderedKey](node RBNode[K]) bool {
	return node == nil
}

func nodeIsRed[K infra.OrderedKey](node RBNode[K]) bool {
	return !isNilLeaf[K](node) && node.Color() == Red
}

func nodeIsBlack[K infra.OrderedKey](node RBNode[K]) bool {
	return isNilLeaf[K](node) || node.Color() == Black
}

func nodeIsRoot[K infra.OrderedKey](node RBNode[K]) bool {
	return node != nil && node.Parent() == nil
}

func blackDepthTo[K infra.OrderedKey](target, to RBNode[K]) int {
	depth := 0
	for aux := target; aux != to; aux = aux.Parent() {
		if nodeIsBlack[K](aux) {
			depth++
		}
	}
	return depth
}

// RedViolationValidate reports an error if any red node has a red parent or
// a red child (p3). Inorder traversal with an explicit stack.
func RedViolationValidate[K infra.OrderedKey](tree RBTree[K]) error {
	aux := tree.Root()
	if aux == nil {
		return nil
	}

	stack := make([]RBNode[K], 0, tree.Len()>>1)
	defer func() {
		clear(stack)
	}()

	for ; !isNilLeaf[K](aux); aux = aux.Left() {
		stack = append(stack, aux)
	}

	for size := len(stack); size > 0; size = len(stack) {
		if aux = stack[size-1]; nodeIsRed[K](aux) {
			if (!nodeIsRoot[K](aux) && nodeIsRed[K](aux.Parent())) ||
				nodeIsRed[K](aux.Left()) || nodeIsRed[K](aux.Right()) {
				return errors.New("rbtree red violation")
			}
		}

		stack = stack[:size-1]
		if aux.Right() != nil {
			for aux = aux.Right(); aux != nil; aux = aux.Left() {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// BFS traversal to load the nodes owning at least one nil child; every
// root-to-nil path runs through one of them.
func bfsLeaves[K infra.OrderedKey](tree RBTree[K]) []RBNode[K] {
	aux := tree.Root()
	if isNilLeaf[K](aux) {
		return nil
	}

	leaves := make([]RBNode[K], 0, tree.Len()>>1+1)
	queue := make([]RBNode[K], 0, tree.Len()>>1)
	queue = append(queue, aux)

	for len(queue) > 0 {
		aux = queue[0]
		l, r := aux.Left(), aux.Right()
		if isNilLeaf[K](l) || isNilLeaf[K](r) {
			leaves = append(leaves, aux)
		}
		if !isNilLeaf[K](l) {
			queue = append(queue, l)
		}
		if !isNilLeaf[K](r) {
			queue = append(queue, r)
		}
		queue = queue[1:]
	}
	return leaves
}

// BlackViolationValidate reports an error if two root-to-nil paths run
// through different black node counts (p4).
func BlackViolationValidate[K infra.OrderedKey](tree RBTree[K]) error {
	leaves := bfsLeaves[K](tree)
	if leaves == nil {
		return nil
	}

	blackDepth := blackDepthTo[K](leaves[0], tree.Root())
	for i := 1; i < len(leaves); i++ {
		if blackDepthTo[K](leaves[i], tree.Root()) != blackDepth {
			return errors.New("rbtree black violation")
		}
	}
	return nil
}

// ParentLinkValidate reports an error if any parent back-reference diverges
// from the owning child link, or the root carries a stale parent.
func ParentLinkValidate[K infra.OrderedKey](tree RBTree[K]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}
	if root.Parent() != nil {
		return errors.New("rbtree root with a parent link")
	}

	stack := []RBNode[K]{root}
	for len(stack) > 0 {
		aux := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range []RBNode[K]{aux.Left(), aux.Right()} {
			if isNilLeaf[K](child) {
				continue
			}
			if child.Parent() != aux {
				return fmt.Errorf("rbtree parent link diverged at key %v", child.Key())
			}
			stack = append(stack, child)
		}
	}
	return nil
}

// Validate runs the full invariant sweep: p3, p4, p5 and the parent link
// consistency check, with all findings aggregated.
func Validate[K infra.OrderedKey](tree RBTree[K]) error {
	var rootErr error
	if root := tree.Root(); root != nil && root.Color() != Black {
		rootErr = errors.New("rbtree red root")
	}
	return multierr.Combine(
		rootErr,
		RedViolationValidate[K](tree),
		BlackViolationValidate[K](tree),
		ParentLinkValidate[K](tree),
	)
}
