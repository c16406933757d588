// Package ffwd provides in-memory secondary indexes for Go collections.
//
// A List owns a slice of items and any number of attached fields. Each field
// projects an item onto a key and keeps a store mapping that key to the
// positions holding it, so equality lookups and AND/OR combinations of
// lookups never scan the items.
//
// # Quick Start
//
//	type Car struct {
//	    ID   uint
//	    Name string
//	}
//
//	cars := ffwd.NewList[Car]()
//	ids, _ := ffwd.Attach(cars, "id", index.NewUintStore[uint](index.Unique),
//	    func(c *Car) uint { return c.ID })
//	names, _ := ffwd.Attach(cars, "name", index.NewMapStore[string](index.Multi),
//	    func(c *Car) string { return c.Name })
//
//	cars.Push(Car{ID: 1, Name: "BMW"})
//	cars.Push(Car{ID: 2, Name: "Audi"})
//
//	for c := range names.Get("BMW") {
//	    fmt.Println(c.ID)
//	}
//
// # Combining Fields
//
// Expressions from different fields combine with And and Or; And binds
// tighter than Or:
//
//	cars.Find(ids.Eq(1).Or(ids.Eq(2)).And(names.Eq("Audi"))) // 1 OR (2 AND Audi)
//
// Fields can also be addressed by name:
//
//	items, err := cars.Query().Where("name", "BMW").Or("id", uint(2)).Items()
//
// # Mutations
//
// Push, Extend and Update keep every field consistent; a uniqueness
// violation rolls the whole mutation back. List.Remove swap-removes, so the
// last item takes the freed position. AppendOnlyList tombstones instead and
// never reuses a position.
//
// # Thread Safety
//
// Lists are not safe for concurrent mutation. Concurrent reads are safe as
// long as no writer is active.
package ffwd
