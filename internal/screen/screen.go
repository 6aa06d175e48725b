// Package screen coordinates the foods screen: it loads a restaurant's
// foods once, tracks the order and conflict dialogs, and turns the create
// and replace order calls into navigation or dialog transitions.
//
// Screen is not safe for concurrent use. Callers that run requests in the
// background (the TUI does) use the split forms: BeginMount/FinishMount,
// OrderRequest/ResolveSubmit and OrderRequest/ResolveReplace, applying the
// results on the goroutine that owns the Screen.
package screen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"storefront/internal/api"
	"storefront/internal/logger"
	"storefront/internal/models"
)

var (
	// ErrNoSelection is returned when an order is requested with no food selected
	ErrNoSelection = errors.New("no food selected")
	// ErrUnknownFood is returned when selecting a food that is not in the fetched list
	ErrUnknownFood = errors.New("food is not on this menu")
	// ErrDialogOpen is returned when selecting a food while a dialog is showing
	ErrDialogOpen = errors.New("a dialog is already open")
)

// OrderAPI is the part of the storefront API the screen calls
type OrderAPI interface {
	FetchFoods(ctx context.Context, restaurantID string) ([]models.Food, error)
	PostLineFoods(ctx context.Context, req models.LineFoodRequest) error
	ReplaceLineFoods(ctx context.Context, req models.LineFoodRequest) error
}

// Screen is the foods screen controller for one restaurant
type Screen struct {
	restaurantID string
	api          OrderAPI
	nav          Navigator
	logger       *slog.Logger

	view    ViewState
	foods   FoodsState
	mounted bool
}

// New creates the screen for restaurantID
func New(restaurantID string, client OrderAPI, nav Navigator, log *slog.Logger) *Screen {
	if log == nil {
		log = logger.Discard()
	}
	return &Screen{
		restaurantID: restaurantID,
		api:          client,
		nav:          nav,
		logger:       log.With("restaurant_id", restaurantID),
		view:         InitialViewState(),
	}
}

// RestaurantID returns the route parameter the screen was built for
func (s *Screen) RestaurantID() string { return s.restaurantID }

// View returns a copy of the dialog state
func (s *Screen) View() ViewState { return s.view }

// Foods returns the fetch state and list
func (s *Screen) Foods() FoodsState { return s.foods }

// Mount fetches the foods. Only the first call does anything.
func (s *Screen) Mount(ctx context.Context) error {
	if !s.BeginMount() {
		return nil
	}
	foods, err := s.api.FetchFoods(ctx, s.restaurantID)
	if err != nil {
		return s.FailMount(err)
	}
	s.FinishMount(foods)
	return nil
}

// BeginMount marks the screen mounted and reports whether the caller should
// issue the fetch.
func (s *Screen) BeginMount() bool {
	if s.mounted {
		return false
	}
	s.mounted = true
	s.foods = FoodsState{FetchState: FetchLoading}
	return true
}

// FinishMount stores the fetched foods
func (s *Screen) FinishMount(foods []models.Food) {
	s.foods.fetchSucceeded(foods)
	s.logger.Info("foods loaded", "count", len(foods))
}

// FailMount records a failed fetch. The list stays in loading; there is no
// retry.
func (s *Screen) FailMount(err error) error {
	s.logger.Error("failed to load foods", "error", err)
	return fmt.Errorf("load foods of restaurant %s: %w", s.restaurantID, err)
}

// SelectFood opens the order dialog for a fetched food
func (s *Screen) SelectFood(id int64) error {
	if s.view.DialogOpen() {
		return ErrDialogOpen
	}
	food, ok := s.foods.Find(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownFood, id)
	}
	s.view.OrderDialogOpen = true
	s.view.SelectedFood = food
	s.view.SelectedCount = models.MinCount
	return nil
}

// CountUp increments the count in the order dialog
func (s *Screen) CountUp() {
	if !s.view.OrderDialogOpen {
		return
	}
	s.view.SelectedCount++
}

// CountDown decrements the count in the order dialog, never below MinCount
func (s *Screen) CountDown() {
	if !s.view.OrderDialogOpen || s.view.SelectedCount <= models.MinCount {
		return
	}
	s.view.SelectedCount--
}

// CloseOrderDialog closes the order dialog and clears the selection
func (s *Screen) CloseOrderDialog() {
	s.view = InitialViewState()
}

// CloseConflictDialog closes the replace confirmation and clears the selection
func (s *Screen) CloseConflictDialog() {
	s.view = InitialViewState()
}

// FollowLink navigates to one of the header links
func (s *Screen) FollowLink(path string) {
	s.view = InitialViewState()
	s.nav.Navigate(path)
}

// OrderRequest builds the create/replace body from the current selection
func (s *Screen) OrderRequest() (models.LineFoodRequest, error) {
	if s.view.SelectedFood == nil {
		return models.LineFoodRequest{}, ErrNoSelection
	}
	req := models.LineFoodRequest{
		FoodID: s.view.SelectedFood.ID,
		Count:  s.view.SelectedCount,
	}
	if err := req.Validate(); err != nil {
		return models.LineFoodRequest{}, err
	}
	return req, nil
}

// SubmitOrder creates an order line for the selection
func (s *Screen) SubmitOrder(ctx context.Context) error {
	req, err := s.OrderRequest()
	if err != nil {
		return err
	}
	return s.ResolveSubmit(s.api.PostLineFoods(ctx, req))
}

// ResolveSubmit applies the outcome of a create-order call. Success navigates
// to the order list; a conflict switches to the replace confirmation and
// returns nil; any other error is returned wrapped.
func (s *Screen) ResolveSubmit(err error) error {
	switch api.Classify(err) {
	case api.KindNone:
		s.logger.Info("order submitted")
		s.leave(PathOrders)
		return nil
	case api.KindExpected:
		conflict, _ := api.AsConflict(err)
		s.logger.Info("order conflicts with open order",
			"existing_restaurant", conflict.ExistingRestaurant,
			"new_restaurant", conflict.NewRestaurant)
		s.view.OrderDialogOpen = false
		s.view.ConflictDialogOpen = true
		s.view.ExistingRestaurant = conflict.ExistingRestaurant
		s.view.NewRestaurant = conflict.NewRestaurant
		return nil
	default:
		s.logger.Error("failed to submit order", "error", err)
		return fmt.Errorf("submit order: %w", err)
	}
}

// ReplaceOrder replaces the open order with the selection
func (s *Screen) ReplaceOrder(ctx context.Context) error {
	req, err := s.OrderRequest()
	if err != nil {
		return err
	}
	return s.ResolveReplace(s.api.ReplaceLineFoods(ctx, req))
}

// ResolveReplace applies the outcome of a replace-order call
func (s *Screen) ResolveReplace(err error) error {
	if err != nil {
		s.logger.Error("failed to replace order", "error", err)
		return fmt.Errorf("replace order: %w", err)
	}
	s.logger.Info("order replaced")
	s.leave(PathOrders)
	return nil
}

func (s *Screen) leave(path string) {
	s.view = InitialViewState()
	s.nav.Navigate(path)
}
