package models

import (
	"time"
)

// PostLike records that a user liked a post. The (PostID, UserID) pair is
// unique, which is what makes the like operation idempotent per user.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_liker" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_liker" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentLike records that a user liked a comment.
type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_liker" json:"comment_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_liker" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
