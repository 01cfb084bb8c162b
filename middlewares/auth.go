package middlewares

import (
	"context"
	"net/http"
	"time"

	"swiftcart-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminOnly guards admin routes. The caller identifies itself with an
// ?id= query parameter; the referenced user must exist and carry the
// admin role. The aggregation core behind these routes never sees the
// caller identity.
func AdminOnly(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			c.Error(NewAppError("Admin ID is required to access this route", http.StatusUnauthorized))
			c.Abort()
			return
		}

		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			c.Error(NewAppError("User Not Found", http.StatusNotFound))
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var user models.User
		if err := db.Collection("users").FindOne(ctx, bson.M{"_id": objectID}).Decode(&user); err != nil {
			c.Error(NewAppError("User Not Found", http.StatusNotFound))
			c.Abort()
			return
		}

		if user.Role != models.RoleAdmin {
			c.Error(NewAppError("Only admin can access this route", http.StatusForbidden))
			c.Abort()
			return
		}

		c.Next()
	}
}
