package ffwd

import (
	"time"

	"github.com/hupe1980/ffwd/index"
)

// Query is a name-based query over the fields of a list.
//
//	l.Query().Where("id", uint(2)).Or("name", "BMW").Exec()
//
// And binds tighter than Or, as with index.Expr. The first failing lookup is
// kept and reported by Exec.
type Query[T any] struct {
	c    *core[T]
	expr index.Expr
	err  error
}

// Where starts the query with the positions of key in field.
func (q Query[T]) Where(field string, key any) Query[T] {
	ps, err := q.lookup(field, key)
	q.expr = index.Where(ps)
	q.err = err
	return q
}

// And intersects the current AND-chain with the positions of key in field.
func (q Query[T]) And(field string, key any) Query[T] {
	ps, err := q.lookup(field, key)
	q.expr = q.expr.And(ps)
	if q.err == nil {
		q.err = err
	}
	return q
}

// Or starts a new AND-chain with the positions of key in field.
func (q Query[T]) Or(field string, key any) Query[T] {
	ps, err := q.lookup(field, key)
	q.expr = q.expr.Or(ps)
	if q.err == nil {
		q.err = err
	}
	return q
}

func (q Query[T]) lookup(field string, key any) (index.Positions, error) {
	b, err := q.c.field(field)
	if err != nil {
		return nil, err
	}
	return b.lookup(key)
}

// Exec evaluates the query.
func (q Query[T]) Exec() (index.Positions, error) {
	if q.err != nil {
		return nil, q.err
	}
	start := time.Now()
	ps := q.expr.Positions()
	q.c.metrics.RecordQuery(len(ps), time.Since(start))
	return ps, nil
}

// Items evaluates the query and returns the matching items.
func (q Query[T]) Items() ([]T, error) {
	ps, err := q.Exec()
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(ps))
	for item := range q.c.resolve(ps) {
		items = append(items, item)
	}
	return items, nil
}
