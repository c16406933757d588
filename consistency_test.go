package ffwd

import (
	"fmt"
	"testing"

	"github.com/hupe1980/ffwd/index"
	"github.com/hupe1980/ffwd/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	ID      uint
	Balance int
	Owner   string
}

type accounts struct {
	ids      *Field[account, uint]
	balances *Field[account, int]
	owners   *Field[account, string]
}

func attachAccounts(t *testing.T, l Indexed[account]) accounts {
	t.Helper()

	ids, err := Attach(l, "id", index.NewUintStore[uint](index.Unique), func(a *account) uint { return a.ID })
	require.NoError(t, err)
	balances, err := Attach(l, "balance", index.NewIntStore[int](index.Multi), func(a *account) int { return a.Balance })
	require.NoError(t, err)
	owners, err := Attach(l, "owner", index.NewOrderedMapStore[string](index.Multi), func(a *account) string { return a.Owner })
	require.NoError(t, err)

	return accounts{ids: ids, balances: balances, owners: owners}
}

// checkConsistency verifies that every live item is found under its keys
// exactly once and that no store holds a position without a live item.
func checkConsistency(t *testing.T, l Indexed[account], a accounts) {
	t.Helper()

	c := l.base()
	live := 0
	owners := make(map[string]int)
	balances := make(map[int]int)

	for pos, item := range c.All() {
		live++
		owners[item.Owner]++
		balances[item.Balance]++

		assert.Equal(t, 1, countOf(a.ids.Store().Get(item.ID), pos), "id %d at %d", item.ID, pos)
		assert.Equal(t, 1, countOf(a.balances.Store().Get(item.Balance), pos), "balance %d at %d", item.Balance, pos)
		assert.Equal(t, 1, countOf(a.owners.Store().Get(item.Owner), pos), "owner %q at %d", item.Owner, pos)
	}

	// No stale keys and no extra positions
	assert.Equal(t, live, a.ids.Store().Len())
	assert.Equal(t, len(owners), a.owners.Store().Len())
	assert.Equal(t, len(balances), a.balances.Store().Len())

	for owner, n := range owners {
		assert.Len(t, a.owners.Store().Get(owner), n, "owner %q", owner)
	}
	for balance, n := range balances {
		assert.Len(t, a.balances.Store().Get(balance), n, "balance %d", balance)
	}

	// Cached extremes match a full scan
	minKey, ok := a.balances.Retriever().MinKey()
	assert.Equal(t, live > 0, ok)
	if ok {
		for balance := range balances {
			assert.LessOrEqual(t, minKey, balance)
		}
		assert.Contains(t, balances, minKey)
	}
	maxKey, ok := a.owners.Retriever().MaxKey()
	assert.Equal(t, live > 0, ok)
	if ok {
		for owner := range owners {
			assert.LessOrEqual(t, owner, maxKey)
		}
		assert.Contains(t, owners, maxKey)
	}
}

func countOf(ps index.Positions, pos int) int {
	n := 0
	for _, p := range ps {
		if p == pos {
			n++
		}
	}
	return n
}

func TestConsistency_Randomized(t *testing.T) {
	for _, appendOnly := range []bool{false, true} {
		t.Run(fmt.Sprintf("appendOnly=%v", appendOnly), func(t *testing.T) {
			rng := testutil.NewRNG(4711)

			var (
				l      Indexed[account]
				remove func(pos int) (account, bool)
			)
			if appendOnly {
				al := NewAppendOnlyList[account]()
				l, remove = al, al.Delete
			} else {
				sl := NewList[account](WithParallelBuild())
				l, remove = sl, sl.Remove
			}

			a := attachAccounts(t, l)
			c := l.base()
			nextID := uint(0)

			// Balances are skewed so that a few Multi keys hold most
			// positions and their buckets get repaired over and over.
			balance := func() int { return rng.Zipf(21, 1.5) - 10 }
			newAccount := func(balance int) account {
				nextID++
				return account{
					ID:      nextID,
					Balance: balance,
					Owner:   rng.String(1, 5),
				}
			}

			for range 500 {
				switch rng.Choice(5, 2, 3, 2, 1, 1, 1) {
				case 0:
					_, err := c.Push(newAccount(balance()))
					require.NoError(t, err, "seed %d", rng.Seed())
				case 1:
					balances := rng.ZipfKeys(rng.Intn(4), 21, 1.5)
					batch := make([]account, len(balances))
					for i, b := range balances {
						batch[i] = newAccount(b - 10)
					}
					require.NoError(t, c.Extend(batch), "seed %d", rng.Seed())
				case 2:
					if c.Len() == 0 {
						continue
					}
					_, _ = c.Update(rng.Intn(c.Len()), func(acc *account) {
						acc.Balance = balance()
						if rng.Intn(2) == 0 {
							acc.Owner = rng.String(1, 5)
						}
					})
				case 3:
					if c.Len() == 0 {
						continue
					}
					remove(rng.Intn(c.Len()))
				case 4:
					// Steal an existing id, which must be rejected
					if c.Len() == 0 {
						continue
					}
					victim, ok := c.Get(rng.Intn(c.Len()))
					if !ok {
						continue
					}
					_, err := c.Push(account{ID: victim.ID, Owner: "x"})
					require.ErrorIs(t, err, index.ErrNotUniqueKey, "seed %d", rng.Seed())
				case 5:
					a.owners.RemoveByKey(rng.String(1, 5))
				case 6:
					// Remove a few positions in random order; on a List
					// later picks may already be out of range.
					for i, pos := range rng.Perm(c.Len()) {
						if i == 3 {
							break
						}
						remove(pos)
					}
				}

				checkConsistency(t, l, a)
			}
		})
	}
}
