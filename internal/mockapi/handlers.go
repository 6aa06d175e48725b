package mockapi

import (
	"net/http"
	"strconv"

	"storefront/internal/models"

	"github.com/gin-gonic/gin"
)

// handleListFoods returns the menu of one restaurant
func (s *Server) handleListFoods(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	s.mu.Lock()
	restaurant, ok := s.restaurants[id]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}

	foods := restaurant.Foods
	if foods == nil {
		foods = []models.Food{}
	}
	c.JSON(http.StatusOK, models.FoodList{Foods: foods})
}

// handleCreateLineFood adds a line to the open order. A line from a different
// restaurant than the open order is refused with 406.
func (s *Server) handleCreateLineFood(c *gin.Context) {
	req, restaurantID, ok := s.bindLineFood(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open != nil && s.open.restaurantID != restaurantID {
		c.JSON(http.StatusNotAcceptable, models.ConflictPayload{
			ExistingRestaurant: s.restaurants[s.open.restaurantID].Name,
			NewRestaurant:      s.restaurants[restaurantID].Name,
		})
		return
	}

	if s.open == nil {
		s.open = &openOrder{restaurantID: restaurantID}
	}
	s.open.lines = append(s.open.lines, req)
	c.JSON(http.StatusCreated, gin.H{"line_food": req})
}

// handleReplaceLineFoods drops the open order and starts a new one
func (s *Server) handleReplaceLineFoods(c *gin.Context) {
	req, restaurantID, ok := s.bindLineFood(c)
	if !ok {
		return
	}

	s.mu.Lock()
	s.open = &openOrder{
		restaurantID: restaurantID,
		lines:        []models.LineFoodRequest{req},
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"line_food": req})
}

func (s *Server) bindLineFood(c *gin.Context) (models.LineFoodRequest, int64, bool) {
	var req models.LineFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, 0, false
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return req, 0, false
	}

	s.mu.Lock()
	restaurantID, ok := s.foods[req.FoodID]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return req, 0, false
	}
	return req, restaurantID, true
}
