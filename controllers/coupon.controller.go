package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"swiftcart-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewCoupon creates a discount coupon.
func (ctrl *Controller) NewCoupon(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.NewCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "Please enter couponCode and amount", http.StatusBadRequest)
		return
	}

	coupon := models.Coupon{CouponCode: req.CouponCode, Amount: req.Amount}
	result, err := ctrl.DB.Collection("coupons").InsertOne(ctx, coupon)
	if err != nil {
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}
	coupon.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Coupon Created Successfully!",
		"coupon":  coupon,
	})
}

// ApplyDiscount looks a coupon up by code and returns its discount amount.
func (ctrl *Controller) ApplyDiscount(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	couponCode := c.Query("couponCode")
	if couponCode == "" {
		fail(c, "Please enter a coupon to apply discount", http.StatusBadRequest)
		return
	}

	var coupon models.Coupon
	err := ctrl.DB.Collection("coupons").FindOne(ctx, bson.M{"couponCode": couponCode}).Decode(&coupon)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			fail(c, "Invalid Coupon Code", http.StatusBadRequest)
			return
		}
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  fmt.Sprintf("Discount of $%v applied successfully!", coupon.Amount),
		"discount": coupon.Amount,
	})
}

// AllCoupons returns every coupon.
func (ctrl *Controller) AllCoupons(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := ctrl.DB.Collection("coupons").Find(ctx, bson.M{})
	if err != nil {
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}

	var coupons []models.Coupon
	if err = cursor.All(ctx, &coupons); err != nil {
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All Coupons Fetched Successfully!",
		"coupons": coupons,
	})
}

// DeleteCoupon removes a coupon by id.
func (ctrl *Controller) DeleteCoupon(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		fail(c, "Invalid coupon ID", http.StatusBadRequest)
		return
	}

	var coupon models.Coupon
	err = ctrl.DB.Collection("coupons").FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&coupon)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			fail(c, "Coupon not found", http.StatusNotFound)
			return
		}
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Coupon %s deleted successfully!", coupon.CouponCode),
	})
}
