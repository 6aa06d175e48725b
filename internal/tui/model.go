// Package tui renders the foods screen in the terminal with Bubble Tea.
package tui

import (
	"context"
	"log/slog"

	"storefront/internal/logger"
	"storefront/internal/monitoring"
	"storefront/internal/screen"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options carries the optional collaborators of the model
type Options struct {
	Logger  *slog.Logger
	Monitor *monitoring.Monitor
}

// router tracks the current path. The model is copied on every update, so
// the screen's navigator writes through this shared pointer.
type router struct {
	path    string
	monitor *monitoring.Monitor
	logger  *slog.Logger
}

func (r *router) Navigate(path string) {
	r.logger.Info("navigate", "from", r.path, "to", path)
	r.path = path
	r.monitor.RecordNavigation(path)
}

// Model defines the application state
type Model struct {
	ctx      context.Context
	client   screen.OrderAPI
	screen   *screen.Screen
	router   *router
	spinner  spinner.Model
	logger   *slog.Logger
	cursor   int
	width    int
	inFlight bool
	error    string
}

// New builds the foods screen model for restaurantID. ctx bounds every
// request the model issues.
func New(ctx context.Context, restaurantID string, client screen.OrderAPI, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	r := &router{
		path:    screen.FoodsPath(restaurantID),
		monitor: opts.Monitor,
		logger:  log,
	}

	return Model{
		ctx:     ctx,
		client:  client,
		screen:  screen.New(restaurantID, client, r, log),
		router:  r,
		spinner: s,
		logger:  log,
	}
}

// Path returns the route the user is currently on
func (m Model) Path() string {
	return m.router.path
}

// Screen exposes the underlying controller
func (m Model) Screen() *screen.Screen {
	return m.screen
}

func (m Model) onFoodsScreen() bool {
	return m.router.path == screen.FoodsPath(m.screen.RestaurantID())
}

// Init starts the spinner and the one fetch of this mount
func (m Model) Init() tea.Cmd {
	if !m.screen.BeginMount() {
		return m.spinner.Tick
	}
	return tea.Batch(m.spinner.Tick, fetchFoods(m.ctx, m.client, m.screen.RestaurantID()))
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case spinner.TickMsg:
		if m.screen.Foods().FetchState != screen.FetchLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case foodsLoadedMsg:
		m.screen.FinishMount(msg.foods)
		m.cursor = 0
		return m, nil
	case foodsFailedMsg:
		m.error = m.screen.FailMount(msg.err).Error()
		return m, nil
	case submitResultMsg:
		m.inFlight = false
		if err := m.screen.ResolveSubmit(msg.err); err != nil {
			m.error = err.Error()
		}
		return m, nil
	case replaceResultMsg:
		m.inFlight = false
		if err := m.screen.ResolveReplace(msg.err); err != nil {
			m.error = err.Error()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if !m.onFoodsScreen() {
		if key == "q" || key == "esc" {
			return m, tea.Quit
		}
		return m, nil
	}

	view := m.screen.View()
	switch {
	case view.ConflictDialogOpen:
		return m.handleConflictKey(key)
	case view.OrderDialogOpen:
		return m.handleOrderKey(key)
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "r":
		m.screen.FollowLink(screen.PathRestaurants)
	case "o":
		m.screen.FollowLink(screen.PathOrders)
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-m.columns())
	case "down", "j":
		m.moveCursor(m.columns())
	case "enter":
		foods := m.screen.Foods()
		if foods.FetchState != screen.FetchSuccess || len(foods.Foods) == 0 {
			return m, nil
		}
		m.error = ""
		if err := m.screen.SelectFood(foods.Foods[m.cursor].ID); err != nil {
			m.error = err.Error()
		}
	}
	return m, nil
}

func (m Model) handleOrderKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "+", "up", "k":
		if !m.inFlight {
			m.screen.CountUp()
		}
	case "-", "down", "j":
		if !m.inFlight {
			m.screen.CountDown()
		}
	case "esc":
		if !m.inFlight {
			m.screen.CloseOrderDialog()
		}
	case "enter":
		if m.inFlight {
			return m, nil
		}
		req, err := m.screen.OrderRequest()
		if err != nil {
			m.error = err.Error()
			return m, nil
		}
		m.inFlight = true
		m.error = ""
		return m, submitOrder(m.ctx, m.client, req)
	}
	return m, nil
}

func (m Model) handleConflictKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "n":
		if !m.inFlight {
			m.screen.CloseConflictDialog()
		}
	case "enter", "y":
		if m.inFlight {
			return m, nil
		}
		req, err := m.screen.OrderRequest()
		if err != nil {
			m.error = err.Error()
			return m, nil
		}
		m.inFlight = true
		m.error = ""
		return m, replaceOrder(m.ctx, m.client, req)
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	n := len(m.screen.Foods().Foods)
	if n == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= n {
		return
	}
	m.cursor = next
}

// columns is how many cards fit side by side
func (m Model) columns() int {
	if m.width == 0 {
		return 3
	}
	cols := (m.width - 4) / (cardWidth + 2 + 2*cardMargin)
	if cols < 1 {
		return 1
	}
	return cols
}
