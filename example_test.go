package ffwd_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/ffwd"
	"github.com/hupe1980/ffwd/index"
)

type Car struct {
	ID   uint
	Name string
}

// Example demonstrates attaching fields and looking items up by key.
func Example() {
	cars := ffwd.NewList[Car]()

	ids, err := ffwd.Attach(cars, "id", index.NewUintStore[uint](index.Multi), func(c *Car) uint { return c.ID })
	if err != nil {
		log.Fatal(err)
	}
	names, err := ffwd.Attach(cars, "name", index.NewMapStore[string](index.Unique), func(c *Car) string { return c.Name })
	if err != nil {
		log.Fatal(err)
	}

	if err := cars.Extend([]Car{{2, "BMW"}, {5, "Audi"}, {2, "VW"}, {99, "Porsche"}}); err != nil {
		log.Fatal(err)
	}

	for c := range ids.Get(2) {
		fmt.Println(c.Name)
	}

	// Porsche takes the freed position
	cars.Remove(0)
	fmt.Println(names.Retriever().Positions("Porsche"))

	// Output:
	// BMW
	// VW
	// [0]
}

// Example_precedence demonstrates that And binds tighter than Or.
func Example_precedence() {
	cars := ffwd.NewList[Car]()
	ids, _ := ffwd.Attach(cars, "id", index.NewUintStore[uint](index.Multi), func(c *Car) uint { return c.ID })
	names, _ := ffwd.Attach(cars, "name", index.NewMapStore[string](index.Multi), func(c *Car) string { return c.Name })

	_ = cars.Extend([]Car{{1, "BMW"}, {2, "Audi"}, {2, "BMW"}, {3, "VW"}})

	// 3 OR (2 AND BMW)
	for c := range cars.Find(ids.Eq(3).Or(ids.Eq(2)).And(names.Eq("BMW"))) {
		fmt.Println(c.ID, c.Name)
	}

	// Output:
	// 2 BMW
	// 3 VW
}

// Example_query demonstrates addressing fields by name.
func Example_query() {
	cars := ffwd.NewAppendOnlyList[Car]()
	_, _ = ffwd.Attach(cars, "id", index.NewUintStore[uint](index.Unique), func(c *Car) uint { return c.ID })
	_, _ = ffwd.Attach(cars, "name", index.NewOrderedMapStore[string](index.Multi), func(c *Car) string { return c.Name })

	_ = cars.Extend([]Car{{1, "BMW"}, {2, "Audi"}, {3, "BMW"}})
	cars.Delete(0)

	items, err := cars.Query().Where("name", "BMW").Or("id", uint(2)).Items()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(items)

	_, err = cars.Query().Where("id", 2).Exec()
	fmt.Println(err)

	// Output:
	// [{2 Audi} {3 BMW}]
	// field "id": invalid key type: expected uint, got int
}

// Example_view demonstrates restricting a field to an allowlist of keys.
func Example_view() {
	cars := ffwd.NewList[Car]()
	names, _ := ffwd.Attach(cars, "name", index.NewMapStore[string](index.Multi), func(c *Car) string { return c.Name })

	_ = cars.Extend([]Car{{1, "BMW"}, {2, "Audi"}, {3, "VW"}})

	german := names.View("BMW", "VW")
	fmt.Println(german.Contains("Audi"))

	for c := range german.GetMany("BMW", "Audi", "VW") {
		fmt.Println(c.Name)
	}

	// Output:
	// false
	// BMW
	// VW
}
