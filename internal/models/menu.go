package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Food represents a purchasable item on a restaurant's menu
type Food struct {
	ID           int64           `json:"id"`
	RestaurantID int64           `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url,omitempty"`
}

// FoodList is the body returned by the foods index endpoint
type FoodList struct {
	Foods []Food `json:"foods"`
}

// ValidateFood validates a food decoded from the API
func ValidateFood(food *Food) error {
	if food.ID <= 0 {
		return fmt.Errorf("food id must be positive, got %d", food.ID)
	}
	if food.Name == "" {
		return fmt.Errorf("food %d: name is required", food.ID)
	}
	if food.Price.IsNegative() {
		return fmt.Errorf("food %d: price must not be negative", food.ID)
	}
	return nil
}

// DisplayPrice formats the price the way the cards show it
func (f Food) DisplayPrice() string {
	return "¥" + f.Price.StringFixed(0)
}
