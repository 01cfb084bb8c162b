package controllers

import (
	"context"
	"net/http"
	"time"

	"swiftcart-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const tokenFooter = "swiftcart-user"

// Register creates a new user account.
func (ctrl *Controller) Register(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err.Error(), http.StatusBadRequest)
		return
	}

	collection := ctrl.DB.Collection("users")
	var existing models.User
	if err := collection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&existing); err == nil {
		fail(c, "Email already registered", http.StatusConflict)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Photo:     req.Photo,
		Gender:    req.Gender,
		Role:      models.RoleUser,
		DOB:       req.DOB,
		CreatedAt: time.Now(),
	}

	result, err := collection.InsertOne(ctx, user)
	if err != nil {
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}
	user.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Welcome, " + user.Name + "!",
		"user":    user,
	})
}

// Login verifies credentials and issues a PASETO token.
func (ctrl *Controller) Login(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err.Error(), http.StatusBadRequest)
		return
	}

	var user models.User
	err := ctrl.DB.Collection("users").FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		fail(c, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		fail(c, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	jsonToken := paseto.JSONToken{
		Subject:    user.ID.Hex(),
		IssuedAt:   now,
		Expiration: now.Add(24 * time.Hour),
	}
	token, err := paseto.NewV2().Encrypt(ctrl.PasetoSecretKey, jsonToken, tokenFooter)
	if err != nil {
		fail(c, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// AllUsers returns every registered user.
func (ctrl *Controller) AllUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := ctrl.DB.Collection("users").Find(ctx, bson.M{})
	if err != nil {
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
	})
}

// GetUser returns a single user by id.
func (ctrl *Controller) GetUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, "Invalid user ID", http.StatusBadRequest)
		return
	}

	var user models.User
	err = ctrl.DB.Collection("users").FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			fail(c, "User Not Found", http.StatusNotFound)
			return
		}
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// DeleteUser removes a user by id.
func (ctrl *Controller) DeleteUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, "Invalid user ID", http.StatusBadRequest)
		return
	}

	result, err := ctrl.DB.Collection("users").DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if result.DeletedCount == 0 {
		fail(c, "User Not Found", http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User Deleted Successfully",
	})
}
