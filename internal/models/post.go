package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post statuses. Listing endpoints only return active posts unless the
// inactive set is requested explicitly.
const (
	PostStatusActive   = "active"
	PostStatusInactive = "inactive"
)

// Post represents a blog post stored in MongoDB.
//
// UserLikes holds the IDs of every user that currently likes the post and
// Likes mirrors its size. Both fields are only ever written together by a
// single atomic pipeline update, so the count cannot drift from the set.
type Post struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Content       string             `json:"content" bson:"content"` // sanitized rich-text HTML
	FeaturedImage string             `json:"featured_image,omitempty" bson:"featured_image,omitempty"` // file ID in object storage
	Status        string             `json:"status" bson:"status"`
	UserID        uint               `json:"user_id" bson:"user_id"`
	UserName      string             `json:"user_name" bson:"user_name"` // denormalized author display name
	Likes         int                `json:"likes" bson:"likes"`
	UserLikes     []uint             `json:"user_likes" bson:"user_likes"`
	CommentsCount int                `json:"comments_count" bson:"comments_count"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title         string `json:"title" validate:"required,min=1,max=200"`
	Content       string `json:"content" validate:"required"`
	FeaturedImage string `json:"featured_image,omitempty"`
	Status        string `json:"status" validate:"required,oneof=active inactive"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title         string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content       string `json:"content,omitempty"`
	FeaturedImage string `json:"featured_image,omitempty"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}
