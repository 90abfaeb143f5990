package datastruct

import "cmp"

// LinkedListWalk reports the reachable element count,
// and whether the tail is the element at the end of the chain.
func LinkedListWalk[T comparable](ll *LinkedList[T]) (count int, tailIsLast bool) {
	var last *llElem[T]
	for current := ll.head; current != nil; current = current.next {
		last = current
		count++
	}
	return count, last == ll.tail
}

func LinkedListCount[T comparable](ll *LinkedList[T]) int {
	return ll.count()
}

func LinkedListSearch[T comparable](ll *LinkedList[T], v T) (T, bool) {
	elem := ll.search(v)
	if elem == nil {
		var zero T
		return zero, false
	}
	return elem.data, true
}

// BinaryTreeNodeAt walks path from the root, where 'L' steps left and 'R' steps right.
func BinaryTreeNodeAt[T cmp.Ordered](bt *BinaryTree[T], path string) (T, bool) {
	node := bt.root
	for _, step := range path {
		if node == nil {
			break
		}
		switch step {
		case 'L':
			node = node.left
		case 'R':
			node = node.right
		}
	}
	if node == nil {
		var zero T
		return zero, false
	}
	return node.value, true
}

// BinaryTreeIsOrdered checks the search tree property on every node.
func BinaryTreeIsOrdered[T cmp.Ordered](bt *BinaryTree[T]) bool {
	var check func(n *btNode[T], lower, upper *T) bool
	check = func(n *btNode[T], lower, upper *T) bool {
		if n == nil {
			return true
		}
		if lower != nil && !cmp.Less(*lower, n.value) {
			return false
		}
		if upper != nil && !cmp.Less(n.value, *upper) {
			return false
		}
		return check(n.left, lower, &n.value) && check(n.right, &n.value, upper)
	}
	return check(bt.root, nil, nil)
}

func HashTableHash[V any](ht *HashTable[V], key string) int {
	return ht.hash(key)
}

func HashTableBucketKeys[V any](ht *HashTable[V], index int) []string {
	var keys []string
	for _, pair := range ht.buckets[index] {
		keys = append(keys, pair.key)
	}
	return keys
}
