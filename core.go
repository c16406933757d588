package ffwd

import (
	"fmt"
	"iter"
	"runtime"
	"slices"
	"time"

	"github.com/hupe1980/ffwd/index"
	"github.com/hupe1980/ffwd/internal/bitmap"
	"golang.org/x/sync/errgroup"
)

// binding is the list-side view of an attached field.
type binding[T any] interface {
	fieldName() string
	insert(item *T, pos int) error
	delete(item *T, pos int)
	// prepare captures the key of item before it is mutated.
	prepare(item *T)
	// commit moves pos to the key of the mutated item.
	commit(item *T, pos int) error
	// revert undoes a successful commit.
	revert(item *T, pos int)
	lookup(key any) (index.Positions, error)
}

// Indexed is implemented by List and AppendOnlyList.
type Indexed[T any] interface {
	Len() int
	base() *core[T]
}

// core holds the items and attached fields shared by List and
// AppendOnlyList.
type core[T any] struct {
	items   []T
	fields  []binding[T]
	byName  map[string]binding[T]
	deleted *bitmap.Bitmap // nil unless append-only

	parallel bool
	logger   *Logger
	metrics  MetricsCollector
}

func newCore[T any](appendOnly bool, optFns []Option) *core[T] {
	o := applyOptions(optFns)

	c := &core[T]{
		items:    make([]T, 0, o.capacity),
		byName:   make(map[string]binding[T]),
		parallel: o.parallelBuild,
		logger:   o.logger,
		metrics:  o.metricsCollector,
	}
	if appendOnly {
		c.deleted = bitmap.New()
	}
	return c
}

func (c *core[T]) base() *core[T] { return c }

func (c *core[T]) live(pos int) bool {
	if pos < 0 || pos >= len(c.items) {
		return false
	}
	return c.deleted == nil || !c.deleted.Contains(pos)
}

// Len returns the number of slots, including deleted ones of an
// AppendOnlyList.
func (c *core[T]) Len() int { return len(c.items) }

// Get returns the item at pos, if it is live.
func (c *core[T]) Get(pos int) (T, bool) {
	if !c.live(pos) {
		var zero T
		return zero, false
	}
	return c.items[pos], true
}

// At returns the item at pos. It panics if pos is out of range or deleted.
func (c *core[T]) At(pos int) T {
	if !c.live(pos) {
		panic(fmt.Sprintf("ffwd: %v: %d (len %d)", ErrInvalidPosition, pos, len(c.items)))
	}
	return c.items[pos]
}

// All returns an iterator over every live position and item.
func (c *core[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for pos := range c.items {
			if !c.live(pos) {
				continue
			}
			if !yield(pos, c.items[pos]) {
				return
			}
		}
	}
}

// Push appends item and indexes it in every attached field.
//
// If a field rejects the item, keys already inserted are rolled back and the
// item is not appended.
func (c *core[T]) Push(item T) (int, error) {
	start := time.Now()

	pos := len(c.items)
	if err := c.index(&item, pos); err != nil {
		c.logger.WithPosition(pos).Warn("push rejected", "error", err)
		c.metrics.RecordPush(time.Since(start), err)
		return -1, err
	}

	c.items = append(c.items, item)
	c.metrics.RecordPush(time.Since(start), nil)

	return pos, nil
}

func (c *core[T]) index(item *T, pos int) error {
	for i, b := range c.fields {
		if err := b.insert(item, pos); err != nil {
			for j := i - 1; j >= 0; j-- {
				c.fields[j].delete(item, pos)
			}
			return fieldError(b.fieldName(), err)
		}
	}
	return nil
}

func (c *core[T]) unindex(item *T, pos int) {
	for _, b := range c.fields {
		b.delete(item, pos)
	}
}

// Extend appends items and indexes them in every attached field.
//
// With WithParallelBuild every field is populated by its own goroutine. If
// any field rejects an item the whole batch is rolled back.
func (c *core[T]) Extend(items []T) error {
	if len(items) == 0 {
		return nil
	}

	start := time.Now()
	first := len(c.items)
	c.items = append(c.items, items...)

	err := c.build(first)
	if err != nil {
		for pos := first; pos < len(c.items); pos++ {
			c.unindex(&c.items[pos], pos)
		}
		clear(c.items[first:])
		c.items = c.items[:first]

		c.logger.WithCount(len(items)).Warn("extend rejected", "error", err)
	} else {
		c.logger.WithCount(len(items)).Debug("extend completed", "parallel", c.parallel && len(c.fields) > 1)
	}

	c.metrics.RecordExtend(len(items), time.Since(start), err)

	return err
}

func (c *core[T]) build(first int) error {
	populate := func(b binding[T]) error {
		for pos := first; pos < len(c.items); pos++ {
			if err := b.insert(&c.items[pos], pos); err != nil {
				return fieldError(b.fieldName(), err)
			}
		}
		return nil
	}

	if !c.parallel || len(c.fields) < 2 {
		for _, b := range c.fields {
			if err := populate(b); err != nil {
				return err
			}
		}
		return nil
	}

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, b := range c.fields {
		g.Go(func() error {
			return populate(b)
		})
	}

	return g.Wait()
}

// Update applies fn to the item at pos and moves its keys in every field
// whose key changed.
//
// If a field rejects the new key, every field and the item itself are
// restored and the error is returned.
func (c *core[T]) Update(pos int, fn func(*T)) (T, error) {
	start := time.Now()

	var zero T
	if !c.live(pos) {
		c.metrics.RecordUpdate(time.Since(start), ErrInvalidPosition)
		return zero, ErrInvalidPosition
	}

	item := &c.items[pos]
	before := *item

	for _, b := range c.fields {
		b.prepare(item)
	}

	fn(item)

	for i, b := range c.fields {
		if err := b.commit(item, pos); err != nil {
			for j := i - 1; j >= 0; j-- {
				c.fields[j].revert(item, pos)
			}
			*item = before

			err = fieldError(b.fieldName(), err)
			c.logger.WithPosition(pos).Warn("update rejected", "error", err)
			c.metrics.RecordUpdate(time.Since(start), err)
			return zero, err
		}
	}

	c.metrics.RecordUpdate(time.Since(start), nil)

	return *item, nil
}

// remove takes pos out of the collection: tombstoned on an append-only
// list, swap-removed otherwise.
func (c *core[T]) remove(pos int) (T, bool) {
	if c.deleted != nil {
		return c.tombstone(pos)
	}
	return c.swapRemove(pos)
}

func (c *core[T]) swapRemove(pos int) (T, bool) {
	var zero T
	if !c.live(pos) {
		return zero, false
	}

	start := time.Now()
	last := len(c.items) - 1
	removed := c.items[pos]

	c.unindex(&c.items[pos], pos)

	if pos != last {
		// The last item moves into the freed slot.
		c.unindex(&c.items[last], last)
		c.items[pos] = c.items[last]
		if err := c.index(&c.items[pos], pos); err != nil {
			panic(fmt.Sprintf("ffwd: reindexing moved item %d -> %d: %v", last, pos, err))
		}
	}

	c.items[last] = zero
	c.items = c.items[:last]

	c.metrics.RecordRemove(time.Since(start))

	return removed, true
}

func (c *core[T]) tombstone(pos int) (T, bool) {
	var zero T
	if !c.live(pos) {
		return zero, false
	}

	start := time.Now()
	removed := c.items[pos]

	c.unindex(&c.items[pos], pos)
	c.deleted.Add(pos)
	c.items[pos] = zero

	c.metrics.RecordRemove(time.Since(start))

	return removed, true
}

// Find returns the items selected by set, typically an expression combining
// several fields.
func (c *core[T]) Find(set index.Set) iter.Seq[T] {
	start := time.Now()
	var positions index.Positions
	if set != nil {
		positions = set.Positions()
	}
	c.metrics.RecordQuery(len(positions), time.Since(start))
	return c.resolve(positions)
}

// Query starts a name-based query over the attached fields.
func (c *core[T]) Query() Query[T] {
	return Query[T]{c: c}
}

func (c *core[T]) resolve(positions index.Positions) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, pos := range positions {
			if !c.live(pos) {
				continue
			}
			if !yield(c.items[pos]) {
				return
			}
		}
	}
}

func (c *core[T]) attach(b binding[T]) error {
	name := b.fieldName()
	if _, ok := c.byName[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}

	for pos := range c.items {
		if !c.live(pos) {
			continue
		}
		if err := b.insert(&c.items[pos], pos); err != nil {
			for p := range pos {
				if c.live(p) {
					b.delete(&c.items[p], p)
				}
			}
			return fieldError(name, err)
		}
	}

	c.fields = append(c.fields, b)
	c.byName[name] = b

	c.logger.WithField(name).WithCount(len(c.items)).Debug("field attached")

	return nil
}

func (c *core[T]) field(name string) (binding[T], error) {
	b, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return b, nil
}

// Fields returns the names of the attached fields in attach order.
func (c *core[T]) Fields() []string {
	names := make([]string, 0, len(c.fields))
	for _, b := range c.fields {
		names = append(names, b.fieldName())
	}
	return slices.Clip(names)
}
