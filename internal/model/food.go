package model

import "time"

// FoodEntry is a single food intake record. Calories are expected to be
// non-negative but the model does not enforce it.
type FoodEntry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Food      string    `json:"food"`
	Calories  int       `json:"calories"`
}

// EntityID returns the unique identifier of the entry.
func (e FoodEntry) EntityID() string {
	return e.ID
}

// EntityTime returns the creation timestamp of the entry.
func (e FoodEntry) EntityTime() time.Time {
	return e.CreatedAt
}

// NewFoodEntry creates a food intake record.
func NewFoodEntry(food string, calories int, at time.Time) FoodEntry {
	return FoodEntry{
		ID:        NewID(),
		CreatedAt: at,
		Food:      food,
		Calories:  calories,
	}
}
