package models

import "time"

// Comment represents a comment on a post. Comments live in their own
// MongoDB collection keyed by post ID rather than being embedded in the
// post document, so appending or removing one never rewrites the post.
// Comments are append/remove only and never mutated in place.
type Comment struct {
	ID        string    `json:"id" bson:"_id"` // UUID assigned at append time
	PostID    string    `json:"post_id" bson:"post_id"`
	UserID    uint      `json:"user_id" bson:"user_id"`
	UserName  string    `json:"user_name" bson:"user_name"` // denormalized author display name
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
