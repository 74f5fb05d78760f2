package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model   `json:"-"`
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"` // file ID in object storage, empty when unset
	Password     string `json:"-"`             // Store hashed password, ignore for JSON serialization
	FirebaseUID  string `json:"firebase_uid,omitempty" gorm:"index"` // Link to Firebase User UID
}

// SignUpRequest defines the request body for local account creation
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SignInRequest defines the request body for local authentication
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest carries the partial profile fields a user may change.
// Pointers distinguish "leave unchanged" from "set to empty".
type UpdateUserRequest struct {
	Bio          *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
