// Package index provides secondary-index stores and the set algebra used to
// combine their lookups.
//
// A Store maps a projected field value (the key) to the ascending set of
// positions that hold this value in the owning collection. Lookups return
// Positions, which can be combined with OR (union) and AND (intersection).
//
// # Store Types
//
// Choose based on the key domain:
//
//   - UintStore: small unsigned integers (IDs, enums). The key is the slot
//     in a growable array, so lookups are O(1).
//   - IntStore: small signed integers. Negative keys are stored by magnitude
//     in a second UintStore.
//   - MapStore: any comparable key (strings, structs) backed by a hash map.
//
// The dense stores allocate a slot for every key up to the largest one in
// use. They accept keys up to DefaultMaxKey; WithMaxKey raises or lowers the
// limit. Sparse or large keys belong in a MapStore.
//
// # Cardinality
//
// Every store is created with a Cardinality:
//
//   - Unique: a key maps to at most one position. A second insert for the
//     same key fails with ErrNotUniqueKey.
//   - Multi: a key maps to any number of positions.
//
// # Query Precedence
//
// Expr composes lookups eagerly. AND binds tighter than OR:
//
//	f.Eq(3).Or(f.Eq(4)).And(f.Eq(2)) // 3 OR (4 AND 2)
//
// Pass a nested Expr to group terms explicitly:
//
//	f.Eq(3).Or(f.Eq(4)).And(f.Eq(2).Or(f.Eq(8)))
//
// # Views
//
// NewView restricts a store to an allowlist of keys. Keys outside the list
// behave as absent even if the store holds positions for them.
//
// # Thread Safety
//
// Stores are not synchronized. A single writer must own a store while it is
// mutated; concurrent readers are safe only while no writer is active.
package index
