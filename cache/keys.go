package cache

// Fixed cache keys. These literals are part of the cache protocol: the
// invalidation coordinator and every read-through accessor must agree on
// them exactly.
const (
	KeyLatestProducts  = "latest-products"
	KeyCategories      = "categories"
	KeyAllProducts     = "all-products"
	KeyAllOrders       = "all-orders"
	KeyAdminStats      = "admin-stats"
	KeyAdminPieCharts  = "admin-pie-charts"
	KeyAdminBarCharts  = "admin-bar-charts"
	KeyAdminLineCharts = "admin-line-charts"
)

// ProductKey returns the cache key of a single product.
func ProductKey(id string) string {
	return "product-" + id
}

// UserOrdersKey returns the cache key of a user's order list. An empty
// userID still yields the literal "my-orders-" key; order invalidation
// passes whatever user reference it has and relies on this shape.
func UserOrdersKey(userID string) string {
	return "my-orders-" + userID
}

// OrderKey returns the cache key of a single order.
func OrderKey(id string) string {
	return "order-" + id
}
