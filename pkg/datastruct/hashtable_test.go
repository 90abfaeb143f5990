package datastruct_test

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	"go.llib.dev/containers/pkg/datastruct"
	"go.llib.dev/containers/pkg/datastruct/datastructcontract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestHashTable(t *testing.T) {
	s := testcase.NewSpec(t)

	bucketCount := let.Var(s, func(t *testcase.T) int {
		return t.Random.IntBetween(1, 64)
	})
	ht := let.Var(s, func(t *testcase.T) *datastruct.HashTable[string] {
		table, err := datastruct.NewHashTable[string](bucketCount.Get(t))
		assert.NoError(t, err)
		return table
	})

	s.Describe("NewHashTable", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (*datastruct.HashTable[string], error) {
			return datastruct.NewHashTable[string](bucketCount.Get(t))
		})

		s.Then("the table has the requested bucket count", func(t *testcase.T) {
			table, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, bucketCount.Get(t), table.BucketCount())
			assert.Equal(t, 0, table.Len())
		})

		s.When("bucket count is zero", func(s *testcase.Spec) {
			bucketCount.LetValue(s, 0)

			s.Then("invalid bucket count error is returned", func(t *testcase.T) {
				table, err := act(t)
				assert.ErrorIs(t, datastruct.ErrInvalidBucketCount, err)
				assert.True(t, table == nil)
			})
		})

		s.When("bucket count is negative", func(s *testcase.Spec) {
			bucketCount.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(-100, -1)
			})

			s.Then("invalid bucket count error is returned", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, datastruct.ErrInvalidBucketCount, err)
			})
		})
	})

	s.Test("values can be found by their key after set", func(t *testcase.T) {
		pairs := map[string]string{}
		t.Random.Repeat(3, 12, func() {
			pairs[randomdata.SillyName()+t.Random.StringN(4)] = t.Random.String()
		})
		for k, v := range pairs {
			ht.Get(t).Set(k, v)
		}
		for k, v := range pairs {
			got, ok := ht.Get(t).Lookup(k)
			assert.True(t, ok, assert.MessageF("%q was expected to be found", k))
			assert.Equal(t, v, got)
		}
		assert.Equal(t, len(pairs), ht.Get(t).Len())
		assert.Equal(t, pairs, ht.Get(t).ToMap())
	})

	s.Test("absent key is reported as not found", func(t *testcase.T) {
		key := t.Random.String()
		ht.Get(t).Set(random.Unique(t.Random.String, key), t.Random.String())

		got, ok := ht.Get(t).Lookup(key)
		assert.False(t, ok)
		assert.Empty(t, got)
		assert.Empty(t, ht.Get(t).Get(key))
	})

	s.Test("deleted key is no longer found", func(t *testcase.T) {
		key := randomdata.SillyName()
		ht.Get(t).Set(key, "🌮")
		ht.Get(t).Delete(key)

		_, ok := ht.Get(t).Lookup(key)
		assert.False(t, ok)
		assert.Equal(t, 0, ht.Get(t).Len())
	})

	s.Test("setting a present key overwrites its value", func(t *testcase.T) {
		ht.Get(t).Set("🌮", "taco")
		ht.Get(t).Set("🌮", "burrito")

		assert.Equal(t, "burrito", ht.Get(t).Get("🌮"))
		assert.Equal(t, 1, ht.Get(t).Len())
	})

	s.When("keys collide", func(s *testcase.Spec) {
		bucketCount.LetValue(s, 7)

		s.Before(func(t *testcase.T) {
			ht.Get(t).Set("listen", "1")
			ht.Get(t).Set("silent", "2")
			ht.Get(t).Set("enlist", "3")
		})

		s.Then("anagrams share a bucket", func(t *testcase.T) {
			index := datastruct.HashTableHash(ht.Get(t), "listen")
			assert.Equal(t, index, datastruct.HashTableHash(ht.Get(t), "silent"))
			assert.Equal(t, index, datastruct.HashTableHash(ht.Get(t), "enlist"))
			assert.Equal(t, []string{"listen", "silent", "enlist"}, datastruct.HashTableBucketKeys(ht.Get(t), index))
		})

		s.Then("each key keeps its own value", func(t *testcase.T) {
			assert.Equal(t, "1", ht.Get(t).Get("listen"))
			assert.Equal(t, "2", ht.Get(t).Get("silent"))
			assert.Equal(t, "3", ht.Get(t).Get("enlist"))
		})

		s.Then("deleting one of them leaves the rest in place", func(t *testcase.T) {
			ht.Get(t).Delete("silent")

			index := datastruct.HashTableHash(ht.Get(t), "listen")
			assert.Equal(t, []string{"listen", "enlist"}, datastruct.HashTableBucketKeys(ht.Get(t), index))
			assert.Equal(t, "3", ht.Get(t).Get("enlist"))
			assert.Equal(t, 2, ht.Get(t).Len())
		})
	})

	s.Test("a custom hash function can replace the default one", func(t *testcase.T) {
		table, err := datastruct.NewHashTable[int](4, datastruct.HashTableConfig{
			HashFunc: func(key string) int { return len(key) },
		})
		assert.NoError(t, err)

		table.Set("a", 1)
		table.Set("abcde", 5)
		table.Set("bb", 2)

		assert.Equal(t, 1, datastruct.HashTableHash(table, "a"))
		assert.Equal(t, []string{"a", "abcde"}, datastruct.HashTableBucketKeys(table, 1))
		assert.Equal(t, []string{"bb"}, datastruct.HashTableBucketKeys(table, 2))
		assert.Equal(t, 5, table.Get("abcde"))
	})

	s.Test("negative hash results still land in a bucket", func(t *testcase.T) {
		table, err := datastruct.NewHashTable[int](5, datastruct.HashTableConfig{
			HashFunc: func(key string) int { return -len(key) },
		})
		assert.NoError(t, err)

		table.Set("abc", 3)
		assert.Equal(t, 2, datastruct.HashTableHash(table, "abc"))
		assert.Equal(t, 3, table.Get("abc"))
	})

	s.Test("zero value table is ready to use", func(t *testcase.T) {
		var table datastruct.HashTable[int]
		assert.Equal(t, datastruct.DefaultBucketCount, table.BucketCount())
		_, ok := table.Lookup("x")
		assert.False(t, ok)
		table.Delete("x")

		table.Set("x", 42)
		assert.Equal(t, 42, table.Get("x"))
		assert.Equal(t, datastruct.DefaultBucketCount, table.BucketCount())
	})

	s.Test("keys are listed in bucket order", func(t *testcase.T) {
		table, err := datastruct.NewHashTable[int](3)
		assert.NoError(t, err)
		table.Set("b", 1) // 98 % 3 == 2
		table.Set("a", 2) // 97 % 3 == 1
		table.Set("c", 3) // 99 % 3 == 0
		assert.Equal(t, []string{"c", "a", "b"}, table.Keys())
	})

	datastructcontract.KVS[string, int](func(tb testing.TB) datastruct.KVS[string, int] {
		table, err := datastruct.NewHashTable[int](random.New(random.CryptoSeed{}).IntBetween(1, 16))
		assert.NoError(tb, err)
		return table
	}, datastructcontract.KVSConfig[string, int]{
		MakeK: func(tb testing.TB) string {
			return randomdata.SillyName() + testcase.ToT(&tb).Random.StringN(3)
		},
	}).Test(t)

	datastructcontract.KVS[string, string](func(tb testing.TB) datastruct.KVS[string, string] {
		return &datastruct.HashTable[string]{}
	}).Test(t)
}
