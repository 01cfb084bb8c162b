package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Coupon defines a discount coupon looked up by its code.
type Coupon struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CouponCode string             `json:"couponCode" bson:"couponCode"`
	Amount     float64            `json:"amount" bson:"amount"`
}

// NewCouponRequest defines the body for creating a coupon.
type NewCouponRequest struct {
	CouponCode string  `json:"couponCode" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
}
