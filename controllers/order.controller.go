package controllers

import (
	"context"
	"net/http"
	"time"

	"swiftcart-backend/cache"
	"swiftcart-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewOrder places an order and deducts stock for every item.
func (ctrl *Controller) NewOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.NewOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "Please Enter All Fields", http.StatusBadRequest)
		return
	}

	order := models.Order{
		ShippingInfo:    req.ShippingInfo,
		User:            req.User,
		Subtotal:        req.Subtotal,
		Tax:             req.Tax,
		ShippingCharges: req.ShippingCharges,
		Discount:        req.Discount,
		Total:           req.Total,
		Status:          models.StatusProcessing,
		OrderItems:      req.OrderItems,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	result, err := ctrl.DB.Collection("orders").InsertOne(ctx, order)
	if err != nil {
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}
	order.ID = result.InsertedID.(primitive.ObjectID)

	if err := ctrl.reduceStock(ctx, order.OrderItems); err != nil {
		fail(c, "Product Not Found", http.StatusNotFound)
		return
	}

	productIDs := make([]string, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		productIDs = append(productIDs, item.ProductID.Hex())
	}
	ctrl.Cache.Invalidate(cache.Invalidation{
		Product:    true,
		Order:      true,
		Admin:      true,
		UserID:     order.User,
		ProductIDs: productIDs,
	})

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order Placed Successfully",
		"order":   order,
	})
}

// reduceStock deducts each item's quantity from its product, one item at
// a time. A missing product aborts the remaining deductions, but the ones
// already persisted are not rolled back. Known limitation: making this
// transactional needs a multi-document session, which would change the
// observable failure behavior.
func (ctrl *Controller) reduceStock(ctx context.Context, items []models.OrderItem) error {
	collection := ctrl.DB.Collection("products")
	for _, item := range items {
		var product models.Product
		if err := collection.FindOne(ctx, bson.M{"_id": item.ProductID}).Decode(&product); err != nil {
			return err
		}
		product.Stock -= item.Quantity
		if _, err := collection.UpdateOne(ctx, bson.M{"_id": item.ProductID}, bson.M{"$set": bson.M{"stock": product.Stock}}); err != nil {
			return err
		}
	}
	return nil
}

// MyOrders returns the orders of the user given by the ?id= query, read
// through the user's my-orders cache entry.
func (ctrl *Controller) MyOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID := c.Query("id")
	key := cache.UserOrdersKey(userID)

	orders, ok := cache.GetJSON[[]models.Order](ctrl.Cache, key)
	if !ok {
		cursor, err := ctrl.DB.Collection("orders").Find(ctx, bson.M{"user": userID})
		if err != nil {
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}
		if err = cursor.All(ctx, &orders); err != nil {
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}
		cache.SetJSON(ctrl.Cache, key, orders)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  orders,
	})
}

// AllOrders returns every order, read through the all-orders cache entry.
func (ctrl *Controller) AllOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orders, ok := cache.GetJSON[[]models.Order](ctrl.Cache, cache.KeyAllOrders)
	if !ok {
		cursor, err := ctrl.DB.Collection("orders").Find(ctx, bson.M{})
		if err != nil {
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}
		if err = cursor.All(ctx, &orders); err != nil {
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}
		cache.SetJSON(ctrl.Cache, cache.KeyAllOrders, orders)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All Orders Fetched Successfully!",
		"orders":  orders,
	})
}

// GetOrder returns a single order by id, read through its per-order cache
// entry. Item pictures are refreshed from the product collection before
// the order is cached, since the snapshot taken at purchase time may
// predate a picture change.
func (ctrl *Controller) GetOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		fail(c, "Invalid order ID", http.StatusBadRequest)
		return
	}

	key := cache.OrderKey(id)
	order, ok := cache.GetJSON[models.Order](ctrl.Cache, key)
	if !ok {
		err = ctrl.DB.Collection("orders").FindOne(ctx, bson.M{"_id": objectID}).Decode(&order)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				fail(c, "Order Not Found", http.StatusNotFound)
				return
			}
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}

		products := ctrl.DB.Collection("products")
		for i := range order.OrderItems {
			var product models.Product
			if err := products.FindOne(ctx, bson.M{"_id": order.OrderItems[i].ProductID}).Decode(&product); err == nil {
				order.OrderItems[i].Picture = product.PictureURL
			}
		}

		cache.SetJSON(ctrl.Cache, key, order)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"order":   order,
	})
}

// ProcessOrder advances an order's status one step:
// Processing -> Shipped -> Delivered.
func (ctrl *Controller) ProcessOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		fail(c, "Invalid order ID", http.StatusBadRequest)
		return
	}

	collection := ctrl.DB.Collection("orders")
	var order models.Order
	if err := collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			fail(c, "Order Not Found", http.StatusNotFound)
			return
		}
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}

	order.Status = models.NextStatus(order.Status)
	order.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{"status": order.Status, "updatedAt": order.UpdatedAt}}
	if _, err := collection.UpdateOne(ctx, bson.M{"_id": objectID}, update); err != nil {
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}

	ctrl.Cache.Invalidate(cache.Invalidation{
		Order:   true,
		Admin:   true,
		UserID:  order.User,
		OrderID: id,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order Processed Successfully",
		"order":   order,
	})
}

// DeleteOrder removes an order by id.
func (ctrl *Controller) DeleteOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		fail(c, "Invalid order ID", http.StatusBadRequest)
		return
	}

	collection := ctrl.DB.Collection("orders")
	var order models.Order
	if err := collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			fail(c, "Order Not Found", http.StatusNotFound)
			return
		}
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}

	if _, err := collection.DeleteOne(ctx, bson.M{"_id": objectID}); err != nil {
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}

	ctrl.Cache.Invalidate(cache.Invalidation{
		Order:   true,
		Admin:   true,
		UserID:  order.User,
		OrderID: id,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order Deleted Successfully",
		"order":   order,
	})
}
