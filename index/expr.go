package index

// Set is anything that resolves to Positions.
type Set interface {
	Positions() Positions
}

// Expr combines Sets with AND binding tighter than OR.
//
//	Where(a).Or(b).And(c) // a OR (b AND c)
//
// Operands are evaluated eagerly. An Expr passed as an operand acts as a
// parenthesized group:
//
//	Where(a).Or(b).And(Where(c).Or(d)) // a OR (b AND (c OR d))
type Expr struct {
	done Positions // OR of every completed AND-chain
	cur  Positions // current AND-chain
}

// Where starts an expression.
func Where(s Set) Expr {
	return Expr{cur: positionsOf(s)}
}

// Or closes the current AND-chain and starts a new one with s.
func (e Expr) Or(s Set) Expr {
	return Expr{
		done: Union(e.done, e.cur),
		cur:  positionsOf(s),
	}
}

// And intersects the current AND-chain with s.
func (e Expr) And(s Set) Expr {
	return Expr{
		done: e.done,
		cur:  Intersection(e.cur, positionsOf(s)),
	}
}

// Positions evaluates the expression.
func (e Expr) Positions() Positions {
	return Union(e.done, e.cur)
}

func positionsOf(s Set) Positions {
	if s == nil {
		return nil
	}
	return s.Positions()
}

// Filter builds expressions over one store.
type Filter[K any] struct {
	f Filterable[K]
}

// NewFilter creates a Filter over f.
func NewFilter[K any](f Filterable[K]) Filter[K] {
	return Filter[K]{f: f}
}

// Eq starts an expression with the positions of key.
func (f Filter[K]) Eq(key K) Expr {
	return Where(f.f.Get(key))
}

// In starts an expression with the union of the positions of keys.
func (f Filter[K]) In(keys ...K) Expr {
	return Where(GetMany(f.f, keys...))
}

// Contains reports whether key is present in the store.
func (f Filter[K]) Contains(key K) bool {
	return f.f.Contains(key)
}
