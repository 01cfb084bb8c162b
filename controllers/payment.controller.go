package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// CreatePaymentIntentRequest defines the body for starting a payment.
type CreatePaymentIntentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// CreatePaymentIntent creates a Stripe payment intent for the given
// amount and returns its client secret.
func (ctrl *Controller) CreatePaymentIntent(c *gin.Context) {
	var req CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "Enter an amount to proceed", http.StatusBadRequest)
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency: stripe.String("pkr"),
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		fail(c, "Failed to create payment intent", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"clientSecret": intent.ClientSecret,
	})
}
