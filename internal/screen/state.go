package screen

import "storefront/internal/models"

// SkeletonCount is the number of placeholders shown while foods load
const SkeletonCount = 12

// FetchState is the progress of the foods request
type FetchState int

const (
	// FetchLoading is the initial state; the list has not arrived yet
	FetchLoading FetchState = iota
	// FetchSuccess is terminal for a mount
	FetchSuccess
)

func (s FetchState) String() string {
	if s == FetchSuccess {
		return "success"
	}
	return "loading"
}

// FoodsState holds the fetched list. It only ever moves from loading to
// success.
type FoodsState struct {
	FetchState FetchState
	Foods      []models.Food
}

func (s *FoodsState) fetchSucceeded(foods []models.Food) {
	if s.FetchState == FetchSuccess {
		return
	}
	s.FetchState = FetchSuccess
	s.Foods = foods
}

// Find returns the fetched food with id
func (s *FoodsState) Find(id int64) (*models.Food, bool) {
	for i := range s.Foods {
		if s.Foods[i].ID == id {
			return &s.Foods[i], true
		}
	}
	return nil, false
}

// ViewState holds the transient dialog state of the screen
type ViewState struct {
	OrderDialogOpen    bool
	ConflictDialogOpen bool
	SelectedFood       *models.Food
	SelectedCount      int
	ExistingRestaurant string
	NewRestaurant      string
}

// InitialViewState is the state on entry and after any dialog closes
func InitialViewState() ViewState {
	return ViewState{SelectedCount: models.MinCount}
}

// DialogOpen reports whether either dialog is showing
func (v ViewState) DialogOpen() bool {
	return v.OrderDialogOpen || v.ConflictDialogOpen
}
