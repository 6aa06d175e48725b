package screen

import "net/url"

// Navigation targets
const (
	PathRestaurants = "/restaurants"
	PathOrders      = "/orders"
)

// FoodsPath is the route of the foods screen of a restaurant
func FoodsPath(restaurantID string) string {
	return PathRestaurants + "/" + url.PathEscape(restaurantID) + "/foods"
}

// Navigator moves the user to another screen
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(path string)

// Navigate calls f(path)
func (f NavigatorFunc) Navigate(path string) { f(path) }
