package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFood(t *testing.T) {
	tests := []struct {
		name    string
		food    Food
		wantErr bool
	}{
		{"valid", Food{ID: 1, Name: "Ramen", Price: decimal.NewFromInt(900)}, false},
		{"free is fine", Food{ID: 2, Name: "Water"}, false},
		{"missing id", Food{Name: "Ramen"}, true},
		{"missing name", Food{ID: 1}, true},
		{"negative price", Food{ID: 1, Name: "Ramen", Price: decimal.NewFromInt(-1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFood(&tt.food)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFoodList_DecodesNumericPrice(t *testing.T) {
	var list FoodList
	require.NoError(t, json.Unmarshal([]byte(`{"foods":[{"id":1,"restaurant_id":2,"name":"Udon","price":650}]}`), &list))

	require.Len(t, list.Foods, 1)
	assert.Equal(t, "¥650", list.Foods[0].DisplayPrice())
	assert.Equal(t, int64(2), list.Foods[0].RestaurantID)
}

func TestLineFoodRequest_Validate(t *testing.T) {
	assert.NoError(t, LineFoodRequest{FoodID: 1, Count: 1}.Validate())
	assert.ErrorIs(t, LineFoodRequest{FoodID: 1, Count: 0}.Validate(), ErrInvalidCount)
	assert.Error(t, LineFoodRequest{FoodID: 0, Count: 1}.Validate())
}

func TestLineFoodRequest_WireFormat(t *testing.T) {
	data, err := json.Marshal(LineFoodRequest{FoodID: 3, Count: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"food_id":3,"count":2}`, string(data))
}
