package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values. Transitions are forward-only:
// Processing -> Shipped -> Delivered, and Delivered is terminal.
const (
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
)

// ShippingInfo holds the delivery address of an order.
type ShippingInfo struct {
	Address string `json:"address" bson:"address" binding:"required"`
	City    string `json:"city" bson:"city" binding:"required"`
	State   string `json:"state" bson:"state" binding:"required"`
	Country string `json:"country" bson:"country" binding:"required"`
	PinCode int    `json:"pinCode" bson:"pinCode" binding:"required"`
}

// OrderItem is one line of an order, snapshotting the product at
// purchase time plus a reference back to the product document.
type OrderItem struct {
	Title     string             `json:"title" bson:"title"`
	Picture   string             `json:"picture" bson:"picture"`
	Price     float64            `json:"price" bson:"price"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
}

// Order defines the structure of a placed order.
type Order struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ShippingInfo    ShippingInfo       `json:"shippingInfo" bson:"shippingInfo"`
	User            string             `json:"user" bson:"user"`
	Subtotal        float64            `json:"subtotal" bson:"subtotal"`
	Tax             float64            `json:"tax" bson:"tax"`
	ShippingCharges float64            `json:"shippingCharges" bson:"shippingCharges"`
	Discount        float64            `json:"discount" bson:"discount"`
	Total           float64            `json:"total" bson:"total"`
	Status          string             `json:"status" bson:"status"`
	OrderItems      []OrderItem        `json:"orderItems" bson:"orderItems"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// NextStatus returns the status an order moves to when processed.
// Delivered orders stay Delivered.
func NextStatus(status string) string {
	switch status {
	case StatusProcessing:
		return StatusShipped
	case StatusShipped:
		return StatusDelivered
	default:
		return StatusDelivered
	}
}

// NewOrderRequest defines the body for placing an order.
type NewOrderRequest struct {
	ShippingInfo    ShippingInfo `json:"shippingInfo" binding:"required"`
	User            string       `json:"user" binding:"required"`
	Subtotal        float64      `json:"subtotal" binding:"required"`
	Tax             float64      `json:"tax" binding:"required"`
	ShippingCharges float64      `json:"shippingCharges"`
	Discount        float64      `json:"discount"`
	Total           float64      `json:"total" binding:"required"`
	OrderItems      []OrderItem  `json:"orderItems" binding:"required,min=1"`
}
