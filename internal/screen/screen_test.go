package screen

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/api"
	"storefront/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	foods      []models.Food
	fetchErr   error
	postErr    error
	replaceErr error

	fetchCalls   []string
	postCalls    []models.LineFoodRequest
	replaceCalls []models.LineFoodRequest
}

func (f *fakeAPI) FetchFoods(_ context.Context, restaurantID string) ([]models.Food, error) {
	f.fetchCalls = append(f.fetchCalls, restaurantID)
	return f.foods, f.fetchErr
}

func (f *fakeAPI) PostLineFoods(_ context.Context, req models.LineFoodRequest) error {
	f.postCalls = append(f.postCalls, req)
	return f.postErr
}

func (f *fakeAPI) ReplaceLineFoods(_ context.Context, req models.LineFoodRequest) error {
	f.replaceCalls = append(f.replaceCalls, req)
	return f.replaceErr
}

type recordingNavigator struct {
	paths []string
}

func (r *recordingNavigator) navigator() Navigator {
	return NavigatorFunc(func(path string) { r.paths = append(r.paths, path) })
}

func testFoods() []models.Food {
	return []models.Food{
		{ID: 1, RestaurantID: 3, Name: "Ramen", Price: decimal.NewFromInt(900)},
		{ID: 2, RestaurantID: 3, Name: "Gyoza", Price: decimal.NewFromInt(400)},
		{ID: 3, RestaurantID: 3, Name: "Edamame", Price: decimal.NewFromInt(300)},
	}
}

func newMounted(t *testing.T, fake *fakeAPI) (*Screen, *recordingNavigator) {
	t.Helper()
	nav := &recordingNavigator{}
	s := New("3", fake, nav.navigator(), nil)
	require.NoError(t, s.Mount(context.Background()))
	return s, nav
}

func TestMount_FetchesOnceWithRestaurantID(t *testing.T) {
	fake := &fakeAPI{foods: testFoods()}
	s, _ := newMounted(t, fake)

	require.NoError(t, s.Mount(context.Background()))

	assert.Equal(t, []string{"3"}, fake.fetchCalls)
	assert.Equal(t, FetchSuccess, s.Foods().FetchState)
	assert.Len(t, s.Foods().Foods, 3)
}

func TestMount_StartsLoading(t *testing.T) {
	s := New("3", &fakeAPI{}, (&recordingNavigator{}).navigator(), nil)

	assert.Equal(t, FetchLoading, s.Foods().FetchState)
	assert.True(t, s.BeginMount())
	assert.False(t, s.BeginMount())
	assert.Equal(t, FetchLoading, s.Foods().FetchState)
}

func TestMount_FailureStaysLoading(t *testing.T) {
	fake := &fakeAPI{fetchErr: errors.New("connection refused")}
	s := New("3", fake, (&recordingNavigator{}).navigator(), nil)

	err := s.Mount(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "restaurant 3")
	assert.Equal(t, FetchLoading, s.Foods().FetchState)

	// no retry on a second mount
	require.NoError(t, s.Mount(context.Background()))
	assert.Len(t, fake.fetchCalls, 1)
}

func TestFinishMount_OnlyOnce(t *testing.T) {
	s, _ := newMounted(t, &fakeAPI{foods: testFoods()})

	s.FinishMount(nil)
	assert.Len(t, s.Foods().Foods, 3)
}

func TestSelectFood_OpensOrderDialog(t *testing.T) {
	s, _ := newMounted(t, &fakeAPI{foods: testFoods()})

	require.NoError(t, s.SelectFood(2))

	view := s.View()
	assert.True(t, view.OrderDialogOpen)
	require.NotNil(t, view.SelectedFood)
	assert.Equal(t, "Gyoza", view.SelectedFood.Name)
	assert.Equal(t, 1, view.SelectedCount)
}

func TestSelectFood_Rejections(t *testing.T) {
	s, _ := newMounted(t, &fakeAPI{foods: testFoods()})

	assert.ErrorIs(t, s.SelectFood(42), ErrUnknownFood)
	require.NoError(t, s.SelectFood(1))
	assert.ErrorIs(t, s.SelectFood(2), ErrDialogOpen)
	assert.Equal(t, int64(1), s.View().SelectedFood.ID)
}

func TestCountUpDown(t *testing.T) {
	s, _ := newMounted(t, &fakeAPI{foods: testFoods()})

	s.CountUp()
	assert.Equal(t, 1, s.View().SelectedCount, "count only moves inside the dialog")

	require.NoError(t, s.SelectFood(1))
	s.CountUp()
	s.CountUp()
	assert.Equal(t, 3, s.View().SelectedCount)

	s.CountDown()
	s.CountDown()
	s.CountDown()
	assert.Equal(t, 1, s.View().SelectedCount)
}

func TestCloseOrderDialog_Resets(t *testing.T) {
	s, _ := newMounted(t, &fakeAPI{foods: testFoods()})
	require.NoError(t, s.SelectFood(1))
	s.CountUp()

	s.CloseOrderDialog()

	assert.Equal(t, InitialViewState(), s.View())
	assert.Nil(t, s.View().SelectedFood)
	assert.Equal(t, 1, s.View().SelectedCount)
}

func TestSubmitOrder_SuccessNavigates(t *testing.T) {
	fake := &fakeAPI{foods: testFoods()}
	s, nav := newMounted(t, fake)
	require.NoError(t, s.SelectFood(3))
	s.CountUp()

	require.NoError(t, s.SubmitOrder(context.Background()))

	assert.Equal(t, []models.LineFoodRequest{{FoodID: 3, Count: 2}}, fake.postCalls)
	assert.Equal(t, []string{PathOrders}, nav.paths)
	assert.False(t, s.View().DialogOpen())
}

func TestSubmitOrder_ConflictOpensReplaceDialog(t *testing.T) {
	fake := &fakeAPI{
		foods: testFoods(),
		postErr: &api.ConflictError{ConflictPayload: models.ConflictPayload{
			ExistingRestaurant: "A",
			NewRestaurant:      "B",
		}},
	}
	s, nav := newMounted(t, fake)
	require.NoError(t, s.SelectFood(1))

	require.NoError(t, s.SubmitOrder(context.Background()))

	view := s.View()
	assert.False(t, view.OrderDialogOpen)
	assert.True(t, view.ConflictDialogOpen)
	assert.Equal(t, "A", view.ExistingRestaurant)
	assert.Equal(t, "B", view.NewRestaurant)
	assert.NotNil(t, view.SelectedFood, "selection is kept for the replace call")
	assert.Empty(t, nav.paths)
}

func TestSubmitOrder_UnexpectedErrorPropagates(t *testing.T) {
	cause := &api.StatusError{Method: "POST", Path: "/line_foods", StatusCode: 500}
	fake := &fakeAPI{foods: testFoods(), postErr: cause}
	s, nav := newMounted(t, fake)
	require.NoError(t, s.SelectFood(1))

	err := s.SubmitOrder(context.Background())

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, api.KindUnexpected, api.Classify(err))
	assert.Empty(t, nav.paths)
	assert.True(t, s.View().OrderDialogOpen)
}

func TestSubmitOrder_NoSelection(t *testing.T) {
	fake := &fakeAPI{foods: testFoods()}
	s, _ := newMounted(t, fake)

	assert.ErrorIs(t, s.SubmitOrder(context.Background()), ErrNoSelection)
	assert.Empty(t, fake.postCalls)
}

func TestReplaceOrder_ConfirmNavigates(t *testing.T) {
	fake := &fakeAPI{
		foods:   testFoods(),
		postErr: &api.ConflictError{ConflictPayload: models.ConflictPayload{ExistingRestaurant: "A", NewRestaurant: "B"}},
	}
	s, nav := newMounted(t, fake)
	require.NoError(t, s.SelectFood(2))
	s.CountUp()
	require.NoError(t, s.SubmitOrder(context.Background()))

	require.NoError(t, s.ReplaceOrder(context.Background()))

	assert.Equal(t, []models.LineFoodRequest{{FoodID: 2, Count: 2}}, fake.replaceCalls)
	assert.Equal(t, []string{PathOrders}, nav.paths)
	assert.Equal(t, InitialViewState(), s.View())
}

func TestReplaceOrder_FailurePropagates(t *testing.T) {
	cause := errors.New("timeout")
	fake := &fakeAPI{foods: testFoods(), replaceErr: cause}
	s, nav := newMounted(t, fake)
	require.NoError(t, s.SelectFood(2))

	err := s.ReplaceOrder(context.Background())
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, nav.paths)
}

func TestCloseConflictDialog_Resets(t *testing.T) {
	s, _ := newMounted(t, &fakeAPI{foods: testFoods()})
	require.NoError(t, s.SelectFood(1))
	require.NoError(t, s.ResolveSubmit(&api.ConflictError{}))

	s.CloseConflictDialog()
	assert.Equal(t, InitialViewState(), s.View())
}

func TestFollowLink(t *testing.T) {
	s, nav := newMounted(t, &fakeAPI{foods: testFoods()})

	s.FollowLink(PathRestaurants)
	assert.Equal(t, []string{PathRestaurants}, nav.paths)
}

func TestFoodsPath(t *testing.T) {
	assert.Equal(t, "/restaurants/3/foods", FoodsPath("3"))
}
