package tree

import (
	"github.com/czhou-dev/xalgo/lib/infra"
)

// References:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All nil leaves are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant nil leaves
//   goes through the same number of black nodes. (black-violation)
// p5. The root is black.

type rbNode[K infra.OrderedKey] struct {
	parent *rbNode[K]
	left   *rbNode[K]
	right  *rbNode[K]
	key    K
	color  RBColor
}

func (node *rbNode[K]) Color() RBColor {
	return node.color
}

func (node *rbNode[K]) Key() K {
	return node.key
}

func (node *rbNode[K]) Left() RBNode[K] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[K]) Right() RBNode[K] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *rbNode[K]) Parent() RBNode[K] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *rbNode[K]) isRed() bool {
	return node != nil && node.color == Red
}

// A nil node counts as a black leaf (p2).
func (node *rbNode[K]) isBlack() bool {
	return node == nil || node.color == Black
}

func (node *rbNode[K]) isRoot() bool {
	return node != nil && node.parent == nil
}

func (node *rbNode[K]) Direction() RBDirection {
	if node == nil {
		// impossible run to here
		panic("[rbtree] nil leaf node without direction")
	}
	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *rbNode[K]) grandpa() *rbNode[K] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent.parent
}

func (node *rbNode[K]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *rbNode[K]) minimum() *rbNode[K] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *rbNode[K]) maximum() *rbNode[K] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The pred node of the current node is its previous node in sorted order.
func (node *rbNode[K]) pred() *rbNode[K] {
	x := node
	if x == nil {
		return nil
	}
	if x.left != nil {
		return x.left.maximum()
	}
	aux := x.parent
	// Backtrack to the first ancestor entered from its right subtree.
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (node *rbNode[K]) succ() *rbNode[K] {
	x := node
	if x == nil {
		return nil
	}
	if x.right != nil {
		return x.right.minimum()
	}
	aux := x.parent
	// Backtrack to the first ancestor entered from its left subtree.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

type rbTree[K infra.OrderedKey] struct {
	root  *rbNode[K]
	count int64
}

func (tree *rbTree[K]) Len() int64 {
	return tree.count
}

func (tree *rbTree[K]) Root() RBNode[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

/*
		 |                         |
		 X                         Y
		/ \     leftRotate(X)     / \
	   L   Y    ============>    X   R
		  / \                   / \
		 M   R                 L   M
*/
func (tree *rbTree[K]) leftRotate(x *rbNode[K]) {
	if x == nil || x.right == nil {
		// impossible run to here
		panic("[rbtree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.Direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic("[rbtree] unknown node direction to left-rotate")
	}
	y.parent = p
}

// Mirror of leftRotate, pivoting on x.left.
func (tree *rbTree[K]) rightRotate(x *rbNode[K]) {
	if x == nil || x.left == nil {
		// impossible run to here
		panic("[rbtree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.Direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic("[rbtree] unknown node direction to right-rotate")
	}
	y.parent = p
}

// Insert adds key as a new red node. Equal keys are kept and descend to the
// right, so the tree behaves as a multiset.
func (tree *rbTree[K]) Insert(key K) {
	z := &rbNode[K]{key: key, color: Red}

	var y *rbNode[K]
	for x := tree.root; x != nil; {
		y = x
		if key < x.key {
			x = x.left
		} else {
			x = x.right
		}
	}

	z.parent = y
	if y == nil {
		tree.root = z
	} else if key < y.key {
		y.left = z
	} else {
		y.right = z
	}

	tree.count++
	tree.insertRebalance(z)
}

/*
Insertion repair. The new node z is red, so only p3 can be broken, and only
on the edge to z's parent. Three cases per side:

  - uncle red: repaint parent and uncle black, grandpa red, climb to grandpa;
  - z on the inner side, uncle black: rotate at the parent to straighten;
  - z on the outer side, uncle black: repaint parent black, grandpa red,
    rotate at the grandpa. Absorbs the violation, loop ends.
*/
func (tree *rbTree[K]) insertRebalance(z *rbNode[K]) {
	for z.parent.isRed() {
		gp := z.grandpa()
		if gp == nil {
			break
		}
		if z.parent == gp.left {
			if uncle := gp.right; uncle.isRed() {
				z.parent.color = Black
				uncle.color = Black
				gp.color = Red
				z = gp
				continue
			}
			if z == z.parent.right {
				z = z.parent
				tree.leftRotate(z)
			}
			z.parent.color = Black
			gp.color = Red
			tree.rightRotate(gp)
		} else {
			if uncle := gp.left; uncle.isRed() {
				z.parent.color = Black
				uncle.color = Black
				gp.color = Red
				z = gp
				continue
			}
			if z == z.parent.left {
				z = z.parent
				tree.rightRotate(z)
			}
			z.parent.color = Black
			gp.color = Red
			tree.leftRotate(gp)
		}
	}
	tree.root.color = Black
}

// Delete removes one node holding key, if any, then repairs the black-height
// deficit left by splicing out a black node.
//
// A two-child target z is not physically removed: the in-order successor y is
// spliced out instead and its key copied into z. z keeps its structural
// position, so external RBNode handles may observe their key change. (The
// alternative of physically relinking y into z's slot would keep handles
// stable; key copy is the chosen strategy here.)
func (tree *rbTree[K]) Delete(key K) bool {
	z := tree.search(key)
	if z == nil {
		return false
	}
	tree.removeNode(z)
	tree.count--
	return true
}

// Remove is an alias of Delete.
func (tree *rbTree[K]) Remove(key K) bool {
	return tree.Delete(key)
}

func (tree *rbTree[K]) removeNode(z *rbNode[K]) {
	y := z
	if z.left != nil && z.right != nil {
		// The successor inside z's right subtree has no left child.
		y = z.right.minimum()
	}

	// x replaces y; it may be the conceptual nil position at y's old slot.
	x := y.left
	if x == nil {
		x = y.right
	}

	p, dir := y.parent, y.Direction()
	if x != nil {
		x.parent = p
	}
	switch dir {
	case Root:
		tree.root = x
	case Left:
		p.left = x
	case Right:
		p.right = x
	default:
		// impossible run to here
		panic("[rbtree] unknown node direction to splice")
	}

	if y != z {
		z.key = y.key
	}

	if y.color == Black {
		tree.removeRebalance(x, p, dir)
	}

	y.parent, y.left, y.right = nil, nil, nil
}

/*
Double-black repair. The position (parent, dir), occupied by x or possibly a
conceptual nil leaf, is one black short on every path through it. Keying the
loop on the parent and side lets the nil-position start share the case logic
of the real-node one. Per side, with w the sibling of the deficient position:

  - w red: repaint w black, parent red, rotate at the parent toward the
    deficit; the new sibling is black;
  - w black, both of w's children black: repaint w red, move the deficit up;
  - w black, far child black, near child red: rotate at w to push the red
    child outward, then
  - w black, far child red: w takes the parent's color, parent and far child
    go black, rotate at the parent. Deficit absorbed, loop ends.
*/
func (tree *rbTree[K]) removeRebalance(x, parent *rbNode[K], dir RBDirection) {
	for parent != nil && x != tree.root && x.isBlack() {
		var w *rbNode[K]
		if dir == Left {
			w = parent.right
		} else {
			w = parent.left
		}
		if w == nil {
			// impossible run to here: a black deficit implies the other
			// side of the parent carries at least one black node
			panic("[rbtree] double-black position without sibling")
		}

		if w.isRed() {
			w.color = Black
			parent.color = Red
			if dir == Left {
				tree.leftRotate(parent)
				w = parent.right
			} else {
				tree.rightRotate(parent)
				w = parent.left
			}
		}

		var near, far *rbNode[K]
		if dir == Left {
			near, far = w.left, w.right
		} else {
			near, far = w.right, w.left
		}

		if near.isBlack() && far.isBlack() {
			w.color = Red
			x = parent
			parent = x.parent
			if parent != nil {
				dir = x.Direction()
			}
			continue
		}

		if far.isBlack() {
			if near != nil {
				near.color = Black
			}
			w.color = Red
			if dir == Left {
				tree.rightRotate(w)
				w = parent.right
				far = w.right
			} else {
				tree.leftRotate(w)
				w = parent.left
				far = w.left
			}
		}

		w.color = parent.color
		parent.color = Black
		if far != nil {
			far.color = Black
		}
		if dir == Left {
			tree.leftRotate(parent)
		} else {
			tree.rightRotate(parent)
		}
		x = tree.root
		break
	}

	if x != nil {
		x.color = Black
	}
}

func (tree *rbTree[K]) search(key K) *rbNode[K] {
	for x := tree.root; x != nil; {
		if key == x.key {
			return x
		}
		if key < x.key {
			x = x.left
		} else {
			x = x.right
		}
	}
	return nil
}

func (tree *rbTree[K]) Search(key K) (RBNode[K], error) {
	if x := tree.search(key); x != nil {
		return x, nil
	}
	return nil, ErrKeyNotFound
}

func (tree *rbTree[K]) Min() (K, error) {
	if tree.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	return tree.root.minimum().key, nil
}

func (tree *rbTree[K]) Max() (K, error) {
	if tree.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	return tree.root.maximum().key, nil
}

func (tree *rbTree[K]) Successor(key K) (K, error) {
	var zero K
	x := tree.search(key)
	if x == nil {
		return zero, ErrKeyNotFound
	}
	s := x.succ()
	if s == nil {
		return zero, ErrNoSuccessor
	}
	return s.key, nil
}

func (tree *rbTree[K]) Predecessor(key K) (K, error) {
	var zero K
	x := tree.search(key)
	if x == nil {
		return zero, ErrKeyNotFound
	}
	p := x.pred()
	if p == nil {
		return zero, ErrNoPredecessor
	}
	return p.key, nil
}

// Height walks the whole tree with an explicit stack; recursion depth must
// not track tree depth on skewed inputs.
func (tree *rbTree[K]) Height() int {
	if tree.root == nil {
		return -1
	}

	type frame struct {
		node  *rbNode[K]
		depth int
	}
	height := 0
	stack := []frame{{tree.root, 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.depth > height {
			height = top.depth
		}
		if top.node.left != nil {
			stack = append(stack, frame{top.node.left, top.depth + 1})
		}
		if top.node.right != nil {
			stack = append(stack, frame{top.node.right, top.depth + 1})
		}
	}
	return height
}

// Inorder traversal to implement the DFS.
func (tree *rbTree[K]) Foreach(action func(idx int64, color RBColor, key K) bool) {
	aux := tree.root
	if aux == nil {
		return
	}

	stack := make([]*rbNode[K], 0, tree.count>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size := len(stack); size > 0; size = len(stack) {
		if aux = stack[size-1]; !action(idx, aux.color, aux.key) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

func NewRBTree[K infra.OrderedKey]() RBTree[K] {
	return &rbTree[K]{}
}
