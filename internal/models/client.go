package models

import (
	"time"
)

// ClientUser is the public projection of a user. It never carries the
// password hash. The field set is a fixed client contract; evolve it
// additively only.
type ClientUser struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
	Role      Role   `json:"role"`
}

// PostStats carries the engagement numbers for a post relative to a viewer.
type PostStats struct {
	Likes    int  `json:"likes"`
	HasLiked bool `json:"hasLiked"`
}

// ClientComment is the client projection of a comment. The author is
// flattened to a username string.
type ClientComment struct {
	ID        uint      `json:"id"`
	User      string    `json:"user"`
	Text      string    `json:"text"`
	Likes     int       `json:"likes"`
	HasLiked  bool      `json:"hasLiked"`
	Timestamp time.Time `json:"timestamp"`
}

// ClientPost is the client projection of a post. The field set is a fixed
// client contract; evolve it additively only.
type ClientPost struct {
	ID        uint            `json:"_id"`
	MediaType MediaType       `json:"mediaType"`
	URL       string          `json:"url"`
	Title     string          `json:"title,omitempty"`
	Caption   string          `json:"caption"`
	Location  string          `json:"location,omitempty"`
	People    []string        `json:"people,omitempty"`
	Tags      []string        `json:"tags"`
	Creator   ClientUser      `json:"creator"`
	Stats     PostStats       `json:"stats"`
	Comments  []ClientComment `json:"comments"`
	CreatedAt time.Time       `json:"createdAt"`
}
