// Package mockapi serves fixture data for the three storefront endpoints so
// the client can run without the real API.
package mockapi

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"storefront/internal/logger"
	"storefront/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Restaurant is a fixture restaurant with its menu
type Restaurant struct {
	ID    int64
	Name  string
	Foods []models.Food
}

// openOrder is the single order a customer may have open at a time
type openOrder struct {
	restaurantID int64
	lines        []models.LineFoodRequest
}

// Server answers storefront API calls from memory
type Server struct {
	router      *gin.Engine
	logger      *slog.Logger
	mu          sync.Mutex
	restaurants map[int64]Restaurant
	foods       map[int64]int64 // food id -> restaurant id
	open        *openOrder
}

// NewServer creates a mock API over the given restaurants
func NewServer(restaurants []Restaurant, log *slog.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}

	s := &Server{
		router:      gin.New(),
		logger:      log,
		restaurants: make(map[int64]Restaurant, len(restaurants)),
		foods:       make(map[int64]int64),
	}
	for _, r := range restaurants {
		s.restaurants[r.ID] = r
		for _, f := range r.Foods {
			s.foods[f.ID] = r.ID
		}
	}

	s.router.Use(gin.Recovery(), s.requestLogger())
	s.setupRoutes()
	return s
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/restaurants/:id/foods", s.handleListFoods)
		v1.POST("/line_foods", s.handleCreateLineFood)
		v1.PUT("/line_foods/replace", s.handleReplaceLineFoods)
	}
}

// Router returns the Gin router
func (s *Server) Router() *gin.Engine {
	return s.router
}

// OpenOrder returns the restaurant and lines of the open order, if any
func (s *Server) OpenOrder() (int64, []models.LineFoodRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open == nil {
		return 0, nil, false
	}
	lines := make([]models.LineFoodRequest, len(s.open.lines))
	copy(lines, s.open.lines)
	return s.open.restaurantID, lines, true
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("mock api request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetHeader("X-Request-ID"),
		)
	}
}

// DefaultRestaurants returns the fixtures used by the -mock flag
func DefaultRestaurants() []Restaurant {
	return []Restaurant{
		{
			ID:   1,
			Name: "Sushi Ichiban",
			Foods: []models.Food{
				food(1, 1, "Salmon Nigiri", "Two pieces of fresh salmon", 480),
				food(2, 1, "Tuna Roll", "Six pieces", 620),
				food(3, 1, "Miso Soup", "", 250),
				food(4, 1, "Chef's Omakase", "Twelve seasonal pieces", 3200),
			},
		},
		{
			ID:   2,
			Name: "Burger Barn",
			Foods: []models.Food{
				food(11, 2, "Cheeseburger", "Double patty", 980),
				food(12, 2, "Fries", "Hand cut", 350),
				food(13, 2, "Milkshake", "Vanilla", 500),
			},
		},
		{
			ID:   3,
			Name: "Curry House",
			Foods: []models.Food{
				food(21, 3, "Katsu Curry", "Pork cutlet, medium spice", 1100),
				food(22, 3, "Vegetable Curry", "", 850),
			},
		},
	}
}

func food(id, restaurantID int64, name, description string, price int64) models.Food {
	return models.Food{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         name,
		Description:  description,
		Price:        decimal.NewFromInt(price),
	}
}
