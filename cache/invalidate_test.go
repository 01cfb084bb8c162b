package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seededCache() *Cache {
	c := New()
	keys := []string{
		KeyLatestProducts, KeyCategories, KeyAllProducts,
		ProductKey("p1"), ProductKey("p2"), ProductKey("p3"),
		KeyAllOrders, UserOrdersKey("u1"), UserOrdersKey(""), OrderKey("o1"),
		KeyAdminStats, KeyAdminPieCharts, KeyAdminBarCharts, KeyAdminLineCharts,
	}
	for _, k := range keys {
		c.Set(k, []byte("cached"))
	}
	return c
}

func TestInvalidateProduct(t *testing.T) {
	c := seededCache()

	c.Invalidate(Invalidation{Product: true, ProductIDs: []string{"p1", "p2"}})

	assert.False(t, c.Has(KeyLatestProducts))
	assert.False(t, c.Has(KeyCategories))
	assert.False(t, c.Has(KeyAllProducts))
	assert.False(t, c.Has(ProductKey("p1")))
	assert.False(t, c.Has(ProductKey("p2")))

	// Untouched domains stay cached.
	assert.True(t, c.Has(ProductKey("p3")))
	assert.True(t, c.Has(KeyAllOrders))
	assert.True(t, c.Has(KeyAdminStats))
}

func TestInvalidateOrder(t *testing.T) {
	c := seededCache()

	c.Invalidate(Invalidation{Order: true, UserID: "u1", OrderID: "o1"})

	assert.False(t, c.Has(KeyAllOrders))
	assert.False(t, c.Has(UserOrdersKey("u1")))
	assert.False(t, c.Has(OrderKey("o1")))
	assert.True(t, c.Has(KeyLatestProducts))
	assert.True(t, c.Has(KeyAdminStats))
}

func TestInvalidateOrderWithoutUser(t *testing.T) {
	c := seededCache()

	// An order change with no user reference still drops the literal
	// "my-orders-" key.
	c.Invalidate(Invalidation{Order: true})

	assert.False(t, c.Has(KeyAllOrders))
	assert.False(t, c.Has(UserOrdersKey("")))
	assert.True(t, c.Has(UserOrdersKey("u1")))
}

func TestInvalidateAdmin(t *testing.T) {
	c := seededCache()

	c.Invalidate(Invalidation{Admin: true})

	assert.False(t, c.Has(KeyAdminStats))
	assert.False(t, c.Has(KeyAdminPieCharts))
	assert.False(t, c.Has(KeyAdminBarCharts))
	assert.False(t, c.Has(KeyAdminLineCharts))
	assert.True(t, c.Has(KeyLatestProducts))
	assert.True(t, c.Has(KeyAllOrders))
}

func TestInvalidateAllFlags(t *testing.T) {
	c := seededCache()

	inv := Invalidation{
		Product:    true,
		Order:      true,
		Admin:      true,
		UserID:     "u1",
		OrderID:    "o1",
		ProductIDs: []string{"p1", "p2", "p3"},
	}
	c.Invalidate(inv)
	assert.Equal(t, 1, c.Len()) // only my-orders-"" survives

	// A second identical call on already-absent keys is a no-op.
	c.Invalidate(inv)
	assert.Equal(t, 1, c.Len())
}
