package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product defines the structure of a catalog product.
type Product struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title      string             `json:"title" bson:"title"`
	Picture    string             `json:"picture" bson:"picture"`
	PictureURL string             `json:"pictureUrl,omitempty" bson:"pictureUrl,omitempty"`
	Price      float64            `json:"price" bson:"price"`
	Stock      int                `json:"stock" bson:"stock"`
	Category   string             `json:"category" bson:"category"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// NewProductRequest defines the body for creating a product.
type NewProductRequest struct {
	Title         string  `json:"title" binding:"required"`
	Price         float64 `json:"price" binding:"required"`
	Stock         int     `json:"stock" binding:"min=0"`
	Category      string  `json:"category" binding:"required"`
	PictureBase64 string  `json:"pictureBase64" binding:"required"`
}

// UpdateProductRequest defines the body for updating a product.
// Every field is optional; only provided fields are changed.
type UpdateProductRequest struct {
	Title         string   `json:"title"`
	Price         *float64 `json:"price"`
	Stock         *int     `json:"stock"`
	Category      string   `json:"category"`
	PictureBase64 string   `json:"pictureBase64"`
}
