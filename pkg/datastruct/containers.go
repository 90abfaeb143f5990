package datastruct

// Stack is a LIFO container backed by a slice.
type Stack[T any] []T

// IsEmpty check if stack is empty
func (s *Stack[T]) IsEmpty() bool {
	return len(*s) == 0
}

// Push a new value onto the stack
func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

// Pop remove and return top element of stack. Return false if stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.IsEmpty() {
		return *new(T), false
	}
	index := len(*s) - 1
	element := (*s)[index]
	(*s)[index] = *new(T) // release the reference held by the backing array
	*s = (*s)[:index]
	return element, true
}

// Last returns the last stack element
func (s *Stack[T]) Last() (T, bool) {
	if s.IsEmpty() {
		return *new(T), false
	}
	return (*s)[len(*s)-1], true
}

func (s *Stack[T]) Len() int {
	return len(*s)
}

// Queue is a FIFO container backed by a slice.
//
// Dequeue re-slices the front away instead of shifting the remaining elements,
// so both Enqueue and Dequeue are amortised O(1).
type Queue[T any] []T

func (q *Queue[T]) IsEmpty() bool {
	return len(*q) == 0
}

// Enqueue adds a value to the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	*q = append(*q, v)
}

// Dequeue removes and returns the earliest enqueued value. Return false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.IsEmpty() {
		return *new(T), false
	}
	element := (*q)[0]
	(*q)[0] = *new(T)
	*q = (*q)[1:]
	if len(*q) == 0 {
		*q = nil // let the drained backing array go
	}
	return element, true
}

// First returns the value that Dequeue would return next, without removing it.
func (q *Queue[T]) First() (T, bool) {
	if q.IsEmpty() {
		return *new(T), false
	}
	return (*q)[0], true
}

func (q *Queue[T]) Len() int {
	return len(*q)
}
