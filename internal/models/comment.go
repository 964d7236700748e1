package models

import (
	"time"
)

// Comment is an append-only comment attached to a post. Order is insertion
// order; comments are never edited or deleted.
type Comment struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	PostID    uint          `gorm:"not null;index" json:"post_id"`
	UserID    uint          `gorm:"not null" json:"user_id"`
	User      User          `gorm:"foreignKey:UserID" json:"user"`
	Text      string        `gorm:"size:500;not null" json:"text"`
	LikeCount int           `gorm:"not null;default:0" json:"like_count"`
	LikedBy   []CommentLike `gorm:"foreignKey:CommentID" json:"liked_by,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
