// Package dishes bundles a static lookup table of common dishes and their
// calorie estimates, used for manual food logging without the recognition
// service.
package dishes

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"
)

//go:embed dishes.json
var dishesJSON []byte

// Dish is one entry of the bundled table.
type Dish struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

var load = sync.OnceValue(func() []Dish {
	var table []Dish
	// The table ships inside the binary; a decode failure is a build defect.
	if err := json.Unmarshal(dishesJSON, &table); err != nil {
		panic("dishes: bundled table is malformed: " + err.Error())
	}
	return table
})

// All returns the full table in bundled order.
func All() []Dish {
	table := load()
	out := make([]Dish, len(table))
	copy(out, table)
	return out
}

// Lookup finds a dish by case-insensitive exact name.
func Lookup(name string) (Dish, bool) {
	for _, d := range load() {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Dish{}, false
}

// Search returns dishes whose names contain the query, case-insensitively.
// An empty query returns the full table.
func Search(query string) []Dish {
	if query == "" {
		return All()
	}
	query = strings.ToLower(query)
	var out []Dish
	for _, d := range load() {
		if strings.Contains(strings.ToLower(d.Name), query) {
			out = append(out, d)
		}
	}
	return out
}
