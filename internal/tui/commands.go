package tui

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/screen"

	tea "github.com/charmbracelet/bubbletea"
)

// Custom message types for the tea.Model
type foodsLoadedMsg struct {
	foods []models.Food
}

type foodsFailedMsg struct {
	err error
}

type submitResultMsg struct {
	err error
}

type replaceResultMsg struct {
	err error
}

// fetchFoods retrieves the menu of the restaurant
func fetchFoods(ctx context.Context, client screen.OrderAPI, restaurantID string) tea.Cmd {
	return func() tea.Msg {
		foods, err := client.FetchFoods(ctx, restaurantID)
		if err != nil {
			return foodsFailedMsg{err: err}
		}
		return foodsLoadedMsg{foods: foods}
	}
}

// submitOrder sends the create-order request
func submitOrder(ctx context.Context, client screen.OrderAPI, req models.LineFoodRequest) tea.Cmd {
	return func() tea.Msg {
		return submitResultMsg{err: client.PostLineFoods(ctx, req)}
	}
}

// replaceOrder sends the replace-order request
func replaceOrder(ctx context.Context, client screen.OrderAPI, req models.LineFoodRequest) tea.Cmd {
	return func() tea.Msg {
		return replaceResultMsg{err: client.ReplaceLineFoods(ctx, req)}
	}
}
