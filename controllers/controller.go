package controllers

import (
	"swiftcart-backend/cache"
	"swiftcart-backend/middlewares"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// Controller holds the dependencies shared by every handler. All of them
// are constructed in main and injected here; nothing is package-global.
type Controller struct {
	DB              *mongo.Database
	Cache           *cache.Cache
	Cld             *cloudinary.Cloudinary
	PasetoSecretKey []byte
}

// fail attaches an AppError to the context and aborts the handler chain;
// the error middleware renders the envelope.
func fail(c *gin.Context, message string, code int) {
	c.Error(middlewares.NewAppError(message, code))
	c.Abort()
}
