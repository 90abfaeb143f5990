package datastruct

import (
	"fmt"
	"iter"
	"strings"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/slicekit"
)

// LinkedList is a singly linked list that keeps track of both of its ends,
// which makes Prepend, Append, Last and Shift O(1).
//
// A nil *LinkedList reads as an empty list. Only Append and Prepend need a non-nil receiver.
type LinkedList[T comparable] struct {
	head   *llElem[T]
	tail   *llElem[T] // non-owning, always the last element reachable from head
	length int
}

var _ Appendable[int] = (*LinkedList[int])(nil)

type llElem[T comparable] struct {
	data T
	next *llElem[T]
}

func (ll *LinkedList[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if ll == nil {
			return
		}
		var (
			current = ll.head
			index   int
		)
		for current != nil {
			if !yield(index, current.data) {
				return
			}
			current = current.next
			index++
		}
	}
}

func (ll *LinkedList[T]) ToSlice() []T {
	return iterkit.Collect2(ll.Iter(), func(_ int, v T) T { return v })
}

// Append adds the values to the end of the list, in the order they were given.
func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) {
	newNode := &llElem[T]{data: v}
	if ll.tail != nil {
		ll.tail.next = newNode
	}
	ll.tail = newNode
	if ll.head == nil {
		ll.head = newNode
	}
	ll.length++
}

// Prepend adds the values to the beginning of the list, in the order they were given.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	for _, v := range slicekit.IterReverse(vs) {
		ll.prepend(v)
	}
}

func (ll *LinkedList[T]) prepend(v T) {
	ll.head = &llElem[T]{
		data: v,
		next: ll.head,
	}
	if ll.tail == nil {
		ll.tail = ll.head
	}
	ll.length++
}

// Length returns the number of elements in the list
func (ll *LinkedList[T]) Length() int {
	if ll == nil {
		return 0
	}
	return ll.length
}

// First returns the value at the head of the list.
func (ll *LinkedList[T]) First() (T, bool) {
	if ll == nil || ll.head == nil {
		var zero T
		return zero, false
	}
	return ll.head.data, true
}

// Last returns the value at the tail of the list.
func (ll *LinkedList[T]) Last() (T, bool) {
	if ll == nil || ll.tail == nil {
		var zero T
		return zero, false
	}
	return ll.tail.data, true
}

// Shift removes and returns the first element.
func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll == nil || ll.head == nil {
		var zero T
		return zero, false
	}
	first := ll.head
	ll.head = first.next
	if ll.head == nil {
		ll.tail = nil
	}
	ll.length--
	return first.data, true
}

// Remove unlinks the first element that equals v.
// It reports whether anything was removed.
func (ll *LinkedList[T]) Remove(v T) bool {
	if ll == nil {
		return false
	}
	var prev *llElem[T]
	for current := ll.head; current != nil; prev, current = current, current.next {
		if current.data != v {
			continue
		}
		if prev == nil {
			ll.head = current.next
		} else {
			prev.next = current.next
		}
		if ll.tail == current {
			ll.tail = prev
		}
		ll.length--
		return true
	}
	return false
}

// Includes reports whether v is an element of the list.
func (ll *LinkedList[T]) Includes(v T) bool {
	return ll.search(v) != nil
}

// InsertAfter places v right after the first element that equals target.
// When target is not part of the list, the list stays unchanged and ErrNotFound is returned.
func (ll *LinkedList[T]) InsertAfter(target, v T) error {
	elem := ll.search(target)
	if elem == nil {
		return ErrNotFound.F("%v is not in the linked list", target)
	}
	elem.next = &llElem[T]{data: v, next: elem.next}
	if elem == ll.tail {
		ll.tail = elem.next
	}
	ll.length++
	return nil
}

func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 || ll.Length() <= index {
		var zero T
		return zero, false
	}
	for i, v := range ll.Iter() {
		if i == index {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// String formats the list as LinkedList[v1, v2, v3].
func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("LinkedList[")
	for i, v := range ll.Iter() {
		if 0 < i {
			sb.WriteString(", ")
		}
		_, _ = fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString("]")
	return sb.String()
}

func (ll *LinkedList[T]) search(v T) *llElem[T] {
	if ll == nil {
		return nil
	}
	for current := ll.head; current != nil; current = current.next {
		if current.data == v {
			return current
		}
	}
	return nil
}

// count walks the list, unlike Length which reports the maintained counter.
func (ll *LinkedList[T]) count() int {
	var n int
	for range ll.Iter() {
		n++
	}
	return n
}
