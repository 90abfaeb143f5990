package datastruct

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
)

// DefaultBucketCount is the bucket count of a zero value HashTable.
const DefaultBucketCount = 31

// HashTable is a string keyed hash table that resolves collisions by chaining.
//
// The bucket count is fixed for the table's lifetime, there is no rehashing.
// The default hash is the sum of the key's code points modulo the bucket count,
// which is cheap but makes keys that are anagrams of each other always share a bucket.
type HashTable[V any] struct {
	buckets  [][]htPair[V]
	length   int
	hashFunc HashFunc
}

type htPair[V any] struct {
	key   string
	value V
}

var _ KVS[string, any] = (*HashTable[any])(nil)

// HashFunc maps a key to a non-negative number.
// HashTable reduces the result modulo its bucket count.
type HashFunc func(key string) int

type HashTableOption interface {
	option.Option[HashTableConfig]
}

type HashTableConfig struct {
	// HashFunc replaces the code point sum hash.
	HashFunc HashFunc
}

var _ HashTableOption = HashTableConfig{}

func (c HashTableConfig) Configure(o *HashTableConfig) {
	o.HashFunc = zerokit.Coalesce(c.HashFunc, o.HashFunc)
}

// NewHashTable makes a HashTable with bucketCount buckets.
func NewHashTable[V any](bucketCount int, opts ...HashTableOption) (*HashTable[V], error) {
	if bucketCount <= 0 {
		return nil, ErrInvalidBucketCount.F("got %d", bucketCount)
	}
	c := option.ToConfig(opts)
	return &HashTable[V]{
		buckets:  make([][]htPair[V], bucketCount),
		hashFunc: c.HashFunc,
	}, nil
}

// SumHash adds up the code points of the key.
func SumHash(key string) int {
	var sum int
	for _, r := range key {
		sum += int(r)
	}
	return sum
}

func (ht *HashTable[V]) hash(key string) int {
	index := zerokit.Coalesce[HashFunc](ht.hashFunc, SumHash)(key) % ht.BucketCount()
	if index < 0 {
		index += ht.BucketCount()
	}
	return index
}

func (ht *HashTable[V]) init() {
	if ht.buckets == nil {
		ht.buckets = make([][]htPair[V], DefaultBucketCount)
	}
}

// BucketCount returns the fixed number of buckets.
func (ht *HashTable[V]) BucketCount() int {
	if ht.buckets == nil {
		return DefaultBucketCount
	}
	return len(ht.buckets)
}

// Set stores val under key, overwriting the previous value if key was already present.
func (ht *HashTable[V]) Set(key string, val V) {
	ht.init()
	index := ht.hash(key)
	for i, pair := range ht.buckets[index] {
		if pair.key == key {
			ht.buckets[index][i].value = val
			return
		}
	}
	ht.buckets[index] = append(ht.buckets[index], htPair[V]{key: key, value: val})
	ht.length++
}

// Lookup returns the value stored under key.
func (ht *HashTable[V]) Lookup(key string) (V, bool) {
	if ht.buckets == nil {
		var zero V
		return zero, false
	}
	for _, pair := range ht.buckets[ht.hash(key)] {
		if pair.key == key {
			return pair.value, true
		}
	}
	var zero V
	return zero, false
}

// Get returns the value stored under key, or the zero value when key is absent.
func (ht *HashTable[V]) Get(key string) V {
	val, _ := ht.Lookup(key)
	return val
}

// Delete removes key from the table. Deleting an absent key is a no-op.
func (ht *HashTable[V]) Delete(key string) {
	if ht.buckets == nil {
		return
	}
	index := ht.hash(key)
	bucket := ht.buckets[index]
	for i, pair := range bucket {
		if pair.key != key {
			continue
		}
		copy(bucket[i:], bucket[i+1:])
		bucket[len(bucket)-1] = htPair[V]{}
		ht.buckets[index] = bucket[:len(bucket)-1]
		ht.length--
		return
	}
}

func (ht *HashTable[V]) Len() int {
	return ht.length
}

// Keys returns the stored keys in bucket order.
func (ht *HashTable[V]) Keys() []string {
	return iterkit.Collect2(ht.Iter(), func(key string, _ V) string { return key })
}

func (ht *HashTable[V]) ToMap() map[string]V {
	return iterkit.Collect2Map(ht.Iter())
}

// Iter yields the key value pairs bucket by bucket, in insertion order within a bucket.
func (ht *HashTable[V]) Iter() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if ht == nil {
			return
		}
		for _, bucket := range ht.buckets {
			for _, pair := range bucket {
				if !yield(pair.key, pair.value) {
					return
				}
			}
		}
	}
}
