package cache

// Invalidation describes what a write changed. The three flags are
// independent; a single mutation commonly sets more than one (placing an
// order touches products, orders and every admin aggregate at once).
type Invalidation struct {
	Product bool
	Order   bool
	Admin   bool

	UserID     string
	OrderID    string
	ProductIDs []string
}

// Invalidate drops every cache key affected by the described change. It
// runs synchronously so the caller's response is only sent once stale
// entries are gone, and it is idempotent: deleting absent keys is a no-op.
func (c *Cache) Invalidate(inv Invalidation) {
	var keys []string

	if inv.Product {
		keys = append(keys, KeyLatestProducts, KeyCategories, KeyAllProducts)
		for _, id := range inv.ProductIDs {
			keys = append(keys, ProductKey(id))
		}
	}

	if inv.Order {
		keys = append(keys, KeyAllOrders, UserOrdersKey(inv.UserID), OrderKey(inv.OrderID))
	}

	if inv.Admin {
		keys = append(keys, KeyAdminStats, KeyAdminPieCharts, KeyAdminBarCharts, KeyAdminLineCharts)
	}

	c.DeleteMany(keys...)
}
