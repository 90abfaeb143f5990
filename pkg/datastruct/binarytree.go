package datastruct

import (
	"cmp"
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// BinaryTree is an unbalanced binary search tree.
//
// Every value in a node's left subtree is less than the node's value,
// and every value in its right subtree is greater.
// Values are ordered by cmp.Compare, so a NaN sorts before every other float.
// The shape depends on the insertion order,
// so sorted input degrades the tree into a chain with O(n) depth.
type BinaryTree[T cmp.Ordered] struct {
	root  *btNode[T]
	count int
}

type btNode[T cmp.Ordered] struct {
	value T
	left  *btNode[T]
	right *btNode[T]
}

// Insert adds v to the tree and reports whether it was added.
// Values already present in the tree are rejected, and the size stays the same.
func (bt *BinaryTree[T]) Insert(v T) bool {
	var slot = &bt.root
	for *slot != nil {
		switch node := *slot; cmp.Compare(v, node.value) {
		case -1:
			slot = &node.left
		case 1:
			slot = &node.right
		default:
			return false
		}
	}
	*slot = &btNode[T]{value: v}
	bt.count++
	return true
}

// Includes reports whether v is stored in the tree.
func (bt *BinaryTree[T]) Includes(v T) bool {
	node := bt.root
	for node != nil {
		switch cmp.Compare(v, node.value) {
		case -1:
			node = node.left
		case 1:
			node = node.right
		default:
			return true
		}
	}
	return false
}

// Size returns the number of values stored in the tree.
func (bt *BinaryTree[T]) Size() int {
	return bt.count
}

// Height counts the nodes on the longest root-to-leaf path.
// An empty tree has a height of 0, a lone root has a height of 1.
//
// Height recurses once per level, so its stack depth equals the tree's height.
func (bt *BinaryTree[T]) Height() int {
	return bt.root.height()
}

func (n *btNode[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// Max returns the greatest value of the tree.
func (bt *BinaryTree[T]) Max() (T, bool) {
	if bt.root == nil {
		var zero T
		return zero, false
	}
	node := bt.root
	for node.right != nil {
		node = node.right
	}
	return node.value, true
}

// Min returns the smallest value of the tree.
func (bt *BinaryTree[T]) Min() (T, bool) {
	if bt.root == nil {
		var zero T
		return zero, false
	}
	node := bt.root
	for node.left != nil {
		node = node.left
	}
	return node.value, true
}

// Iter yields the values in ascending order.
func (bt *BinaryTree[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if bt == nil {
			return
		}
		var (
			stack   Stack[*btNode[T]]
			current = bt.root
		)
		for current != nil || !stack.IsEmpty() {
			for current != nil {
				stack.Push(current)
				current = current.left
			}
			node, _ := stack.Pop()
			if !yield(node.value) {
				return
			}
			current = node.right
		}
	}
}

func (bt *BinaryTree[T]) ToSlice() []T {
	return iterkit.Collect(bt.Iter())
}
