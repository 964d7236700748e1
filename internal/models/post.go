package models

import (
	"time"
)

// MediaType is the closed set of media kinds a post can carry.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// Valid reports whether m is one of the known media types.
func (m MediaType) Valid() bool {
	return m == MediaTypeImage || m == MediaTypeVideo
}

// Post represents an uploaded piece of media. Posts are created once and
// mutated only by like and comment operations.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatorID uint      `gorm:"not null;index" json:"creator_id"`
	Creator   User      `gorm:"foreignKey:CreatorID" json:"creator"`
	MediaURL  string    `gorm:"not null" json:"media_url"`
	MediaType MediaType `gorm:"type:varchar(16);not null;index" json:"media_type"`
	Title     string    `gorm:"size:100" json:"title"`
	Caption   string    `gorm:"size:500;not null" json:"caption"`
	Location  string    `gorm:"size:100;index" json:"location"`
	People    []string  `gorm:"serializer:json;type:jsonb" json:"people"`
	Tags      []string  `gorm:"serializer:json;type:jsonb" json:"tags"`
	// LikeCount is a persisted counter kept equal to the number of
	// post_likes rows by the atomic like statement.
	LikeCount int        `gorm:"not null;default:0" json:"like_count"`
	LikedBy   []PostLike `gorm:"foreignKey:PostID" json:"liked_by,omitempty"`
	Comments  []Comment  `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
}
