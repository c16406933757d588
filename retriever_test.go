package ffwd

import (
	"slices"
	"testing"

	"github.com/hupe1980/ffwd/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetriever(t *testing.T) {
	l, ids, byName := newCars(t)
	require.NoError(t, l.Extend([]car{{2, "BMW"}, {5, "Audi"}, {2, "VW"}, {99, "Porsche"}}))

	t.Run("Lookup", func(t *testing.T) {
		r := ids.Retriever()

		assert.True(t, r.Contains(5))
		assert.False(t, r.Contains(6))
		assert.Equal(t, index.Positions{0, 2}, r.Positions(2))
		assert.Empty(t, r.Positions(6))
		assert.Empty(t, slices.Collect(r.Get(6)))
		assert.Equal(t, []string{"BMW", "Audi", "VW"}, carNames(r.GetMany(5, 2, 42)))
	})

	t.Run("Filter", func(t *testing.T) {
		got := ids.Retriever().Filter(func(f index.Filter[uint]) index.Set {
			return f.Eq(2).Or(f.Eq(99))
		})
		assert.Equal(t, []string{"BMW", "VW", "Porsche"}, carNames(got))

		got = ids.Retriever().Filter(func(f index.Filter[uint]) index.Set {
			return f.In(2, 5).And(f.Eq(5))
		})
		assert.Equal(t, []string{"Audi"}, carNames(got))
	})

	t.Run("Find", func(t *testing.T) {
		// 99 OR (2 AND VW)
		got := l.Find(ids.Eq(99).Or(ids.Eq(2)).And(byName.Eq("VW")))
		assert.Equal(t, []string{"VW", "Porsche"}, carNames(got))

		assert.Empty(t, slices.Collect(l.Find(nil)))
	})

	t.Run("ResolveStopsEarly", func(t *testing.T) {
		var got []string
		for c := range ids.Retriever().Resolve(index.Positions{0, 1, 2, 3}) {
			if len(got) == 2 {
				break
			}
			got = append(got, c.Name)
		}
		assert.Equal(t, []string{"BMW", "Audi"}, got)
	})

	t.Run("View", func(t *testing.T) {
		v := ids.View(2, 42)

		assert.True(t, v.Contains(2))
		assert.False(t, v.Contains(5))
		assert.False(t, v.Contains(42))
		assert.Equal(t, []string{"BMW", "VW"}, carNames(v.Get(2)))
		assert.Empty(t, slices.Collect(v.Get(5)))

		// Views are not ranged
		_, ok := v.MinKey()
		assert.False(t, ok)

		// Nested views only narrow
		inner := v.View(5, 2)
		assert.False(t, inner.Contains(5))
		assert.Equal(t, index.Positions{0, 2}, inner.Positions(2))

		byNameView := byName.View("BMW", "Porsche")
		got := byNameView.Filter(func(f index.Filter[string]) index.Set {
			return f.In("BMW", "Audi", "Porsche")
		})
		assert.Equal(t, []string{"BMW", "Porsche"}, carNames(got))
	})

	t.Run("MinMax", func(t *testing.T) {
		minKey, ok := ids.Retriever().MinKey()
		require.True(t, ok)
		assert.Equal(t, uint(2), minKey)

		maxKey, ok := ids.Retriever().MaxKey()
		require.True(t, ok)
		assert.Equal(t, uint(99), maxKey)

		// Unordered map stores do not track extremes
		_, ok = byName.Retriever().MaxKey()
		assert.False(t, ok)
	})
}

func TestRetriever_ViewFollowsMutations(t *testing.T) {
	l, ids, _ := newCars(t)
	require.NoError(t, l.Extend([]car{{2, "BMW"}, {5, "Audi"}}))

	v := ids.View(2)

	_, err := l.Push(car{2, "VW"})
	require.NoError(t, err)
	assert.Equal(t, []string{"BMW", "VW"}, carNames(v.Get(2)))

	// The moved item is visible at its new position
	l.Remove(0)
	assert.Equal(t, index.Positions{0}, v.Positions(2))
	assert.Equal(t, []string{"VW"}, carNames(v.Get(2)))
}
