package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User defines the structure of a registered user.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Photo     string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Gender    string             `json:"gender" bson:"gender"`
	Role      string             `json:"role" bson:"role"`
	DOB       time.Time          `json:"dob" bson:"dob"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Age returns the user's age in whole years at the given reference time.
func (u User) Age(now time.Time) int {
	age := now.Year() - u.DOB.Year()
	if now.YearDay() < u.DOB.YearDay() {
		age--
	}
	return age
}

// RegisterRequest defines the body for user registration.
type RegisterRequest struct {
	Name     string    `json:"name" binding:"required"`
	Email    string    `json:"email" binding:"required,email"`
	Password string    `json:"password" binding:"required,min=6"`
	Photo    string    `json:"photo"`
	Gender   string    `json:"gender" binding:"required"`
	DOB      time.Time `json:"dob" binding:"required"`
}

// LoginRequest defines the body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
