// Package datastruct holds small, single-threaded, in-memory containers.
//
// Every container is usable from its zero value,
// and none of them synchronise access internally.
// When a container is shared between goroutines, guard it with your own mutex.
package datastruct

import "iter"

// KVS stands for Key Value Store, and a common interface for map[K]V like types.
type KVS[K comparable, V any] interface {
	Lookup(key K) (V, bool)
	Get(key K) V
	Set(key K, val V)
	Delete(key K)
	Keys() []K
	ToMap() map[K]V
	Iter() iter.Seq2[K, V]
	Sizer
}

// Appendable is a container that takes values at its end and lists them back.
type Appendable[T any] interface {
	Append(vs ...T)
	ToSlice() []T
}

type Sizer interface {
	Len() int
}
