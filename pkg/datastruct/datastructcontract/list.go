package datastructcontract

import (
	"fmt"
	"testing"

	"go.llib.dev/containers/pkg/datastruct"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/slicekit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

// OrderedAppendable checks that values come back from ToSlice in the order they were appended.
func OrderedAppendable[T any](mk func(tb testing.TB) datastruct.Appendable[T], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.Appendable[T] {
		return mk(t)
	})

	s.Describe("#Append", func(s *testcase.Spec) {
		var (
			vs = let.Var(s, func(t *testcase.T) []T {
				return random.Slice(t.Random.IntBetween(1, 7), func() T {
					return c.makeElem(t)
				})
			})
		)
		act := let.Act0(func(t *testcase.T) {
			subject.Get(t).Append(vs.Get(t)...)
		})

		s.Then("appended values are listed in order", func(t *testcase.T) {
			act(t)

			assert.Equal(t, vs.Get(t), subject.Get(t).ToSlice())
		})

		s.When("no value is given", func(s *testcase.Spec) {
			vs.LetValue(s, nil)

			s.Then("the container stays empty", func(t *testcase.T) {
				act(t)

				assert.Empty(t, subject.Get(t).ToSlice())
			})
		})

		s.When("values were appended before", func(s *testcase.Spec) {
			existing := let.Var(s, func(t *testcase.T) []T {
				return random.Slice(t.Random.IntBetween(1, 7), func() T {
					return c.makeElem(t)
				})
			})

			s.Before(func(t *testcase.T) {
				subject.Get(t).Append(existing.Get(t)...)
			})

			s.Then("the earlier values stay in front", func(t *testcase.T) {
				act(t)

				exp := slicekit.Merge(existing.Get(t), vs.Get(t))
				assert.Equal(t, exp, subject.Get(t).ToSlice())
			})
		})
	})

	s.Test("ToSlice returns a copy", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(1, 7), func() T { return c.makeElem(t) })
		subject.Get(t).Append(vs...)

		got := subject.Get(t).ToSlice()
		got[0] = c.makeElem(t)
		assert.Equal(t, vs, subject.Get(t).ToSlice())
	})

	return s.AsSuite(fmt.Sprintf("ordered Appendable[%s]", reflectkit.TypeOf[T]().String()))
}

type ListOption[T any] interface {
	option.Option[ListConfig[T]]
}

type ListConfig[T any] struct {
	MakeElem func(testing.TB) T
}

var _ ListOption[any] = ListConfig[any]{}

func (c ListConfig[T]) Configure(o *ListConfig[T]) {
	o.MakeElem = zerokit.Coalesce(c.MakeElem, o.MakeElem)
}

func (c ListConfig[T]) makeElem(tb testing.TB) T {
	return zerokit.Coalesce(c.MakeElem, makeValue[T])(tb)
}
