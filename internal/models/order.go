package models

import (
	"errors"
	"fmt"
)

// MinCount is the smallest quantity an order line may carry
const MinCount = 1

// ErrInvalidCount is returned when a line food carries a count below MinCount
var ErrInvalidCount = errors.New("count must be at least 1")

// LineFoodRequest is the body of both the create and the replace order calls
type LineFoodRequest struct {
	FoodID int64 `json:"food_id"`
	Count  int   `json:"count"`
}

// Validate checks the request before it is sent
func (r LineFoodRequest) Validate() error {
	if r.FoodID <= 0 {
		return fmt.Errorf("food id must be positive, got %d", r.FoodID)
	}
	if r.Count < MinCount {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, r.Count)
	}
	return nil
}

// ConflictPayload is returned with a 406 when an open order already belongs
// to another restaurant
type ConflictPayload struct {
	ExistingRestaurant string `json:"existing_restaurant"`
	NewRestaurant      string `json:"new_restaurant"`
}
