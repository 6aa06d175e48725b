package tui

import (
	"fmt"
	"strings"

	"storefront/internal/models"
	"storefront/internal/screen"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const (
	skeletonBar  = "▓▓▓▓▓▓▓▓▓▓▓▓"
	skeletonFill = "░░░░░░░░░░░░░░░░░░░░░░░░"
)

// View renders the UI
func (m Model) View() string {
	sections := []string{m.viewHeader()}

	if !m.onFoodsScreen() {
		sections = append(sections, m.viewElsewhere())
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	}

	view := m.screen.View()
	switch {
	case view.ConflictDialogOpen:
		sections = append(sections, m.viewConflictDialog(view))
	case view.OrderDialogOpen:
		sections = append(sections, m.viewOrderDialog(view))
	default:
		sections = append(sections, m.viewFoods())
	}

	if status := m.viewStatus(); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, m.viewFooter(view))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewHeader() string {
	logo := titleStyle.Render("STOREFRONT")
	links := linkStyle.Render("[r] restaurants") + "  " + linkStyle.Render("[o] orders")
	return lipgloss.JoinHorizontal(lipgloss.Center, logo, "   ", links) + "\n"
}

func (m Model) viewFoods() string {
	foods := m.screen.Foods()
	if foods.FetchState == screen.FetchLoading {
		cards := make([]string, screen.SkeletonCount)
		for i := range cards {
			cards[i] = renderSkeleton()
		}
		return m.spinner.View() + " Loading menu...\n\n" + m.grid(cards)
	}

	if len(foods.Foods) == 0 {
		return infoStyle.Render("This restaurant has no foods yet.")
	}

	cards := make([]string, len(foods.Foods))
	for i, food := range foods.Foods {
		cards[i] = renderFoodCard(food, i == m.cursor)
	}
	return m.grid(cards)
}

func (m Model) grid(cards []string) string {
	cols := m.columns()
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := start + cols
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderSkeleton() string {
	return skeletonStyle.Render(skeletonBar + "\n" + skeletonFill + "\n" + skeletonFill)
}

func renderFoodCard(food models.Food, focused bool) string {
	style := cardStyle
	if focused {
		style = focusedCardStyle
	}
	body := food.Name + "\n" + priceStyle.Render(food.DisplayPrice())
	if food.Description != "" {
		body += "\n" + helpStyle.Render(food.Description)
	}
	return style.Render(body)
}

func (m Model) viewOrderDialog(view screen.ViewState) string {
	food := view.SelectedFood
	if food == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(food.Name) + "\n\n")
	if food.Description != "" {
		b.WriteString(food.Description + "\n\n")
	}
	if food.ImageURL != "" {
		b.WriteString(helpStyle.Render("Image: "+food.ImageURL) + "\n\n")
	}
	b.WriteString(fmt.Sprintf("Price:    %s\n", food.DisplayPrice()))
	b.WriteString(fmt.Sprintf("Count:    [-] %d [+]\n", view.SelectedCount))
	total := food.Price.Mul(decimal.NewFromInt(int64(view.SelectedCount)))
	b.WriteString(fmt.Sprintf("Subtotal: %s\n\n", priceStyle.Render("¥"+total.StringFixed(0))))
	b.WriteString(infoStyle.Render(fmt.Sprintf("enter: add %d to order", view.SelectedCount)))

	return dialogStyle.Render(b.String())
}

func (m Model) viewConflictDialog(view screen.ViewState) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Start a new order?") + "\n\n")
	existing, incoming := view.ExistingRestaurant, view.NewRestaurant
	if existing == "" {
		existing = "another restaurant"
	}
	if incoming == "" {
		incoming = "this restaurant"
	}
	b.WriteString(fmt.Sprintf("Your open order has items from %s.\n", existing))
	b.WriteString(fmt.Sprintf("Discard it and start a new order at %s?\n\n", incoming))
	b.WriteString(infoStyle.Render("enter: start new order"))
	return dialogStyle.Render(b.String())
}

func (m Model) viewStatus() string {
	if m.error != "" {
		return errorStyle.Render(m.error)
	}
	if m.inFlight {
		return infoStyle.Render("Sending order...")
	}
	return ""
}

func (m Model) viewFooter(view screen.ViewState) string {
	var help string
	switch {
	case view.ConflictDialogOpen:
		help = "enter/y: replace order • esc/n: cancel"
	case view.OrderDialogOpen:
		help = "+/-: change count • enter: order • esc: close"
	default:
		help = "←↑↓→: move • enter: select • r: restaurants • o: orders • q: quit"
	}
	return helpStyle.Render(help)
}

func (m Model) viewElsewhere() string {
	switch m.router.path {
	case screen.PathOrders:
		return titleStyle.Render("Orders") + "\n\n" +
			"Your order list is waiting at " + screen.PathOrders + ".\n\n" +
			helpStyle.Render("q: quit")
	default:
		return titleStyle.Render("Leaving") + "\n\n" +
			"Navigated to " + m.router.path + ".\n\n" +
			helpStyle.Render("q: quit")
	}
}
