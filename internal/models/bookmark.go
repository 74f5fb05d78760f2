package models

import "time"

// Bookmark is a link record: its existence is the entire state. The
// composite unique index keeps concurrent toggles for the same
// (user, post) pair from producing duplicate rows.
type Bookmark struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_post_bookmark"`
	PostID    string    `json:"post_id" gorm:"index;uniqueIndex:idx_user_post_bookmark"` // MongoDB ObjectID as string
	CreatedAt time.Time `json:"created_at"`
}
