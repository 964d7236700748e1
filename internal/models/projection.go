package models

// UnknownUser is substituted for a comment author whose user record could
// not be resolved. A dangling reference must not break an otherwise valid
// projection.
const UnknownUser = "Unknown User"

// ProjectUser converts a user record into its public client shape.
func ProjectUser(u *User) ClientUser {
	return ClientUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
	}
}

// ProjectComment converts a loaded comment into its client shape relative to
// the viewer. viewerID == 0 means anonymous.
func ProjectComment(c *Comment, viewerID uint) ClientComment {
	user := c.User.Username
	if user == "" {
		user = UnknownUser
	}
	return ClientComment{
		ID:        c.ID,
		User:      user,
		Text:      c.Text,
		Likes:     c.LikeCount,
		HasLiked:  commentLikedBy(c, viewerID),
		Timestamp: c.CreatedAt,
	}
}

// ProjectPost converts a fully loaded post (creator, comments, comment
// authors and liker sets resolved by the caller) into its client shape
// relative to the viewer. viewerID == 0 means anonymous. The function is
// pure; it performs no I/O.
func ProjectPost(p *Post, viewerID uint) ClientPost {
	creator := ProjectUser(&p.Creator)
	if creator.Username == "" {
		creator.Username = UnknownUser
	}

	comments := make([]ClientComment, 0, len(p.Comments))
	for i := range p.Comments {
		comments = append(comments, ProjectComment(&p.Comments[i], viewerID))
	}

	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return ClientPost{
		ID:        p.ID,
		MediaType: p.MediaType,
		URL:       p.MediaURL,
		Title:     p.Title,
		Caption:   p.Caption,
		Location:  p.Location,
		People:    p.People,
		Tags:      tags,
		Creator:   creator,
		Stats: PostStats{
			Likes:    p.LikeCount,
			HasLiked: postLikedBy(p, viewerID),
		},
		Comments:  comments,
		CreatedAt: p.CreatedAt,
	}
}

func postLikedBy(p *Post, viewerID uint) bool {
	if viewerID == 0 {
		return false
	}
	for i := range p.LikedBy {
		if p.LikedBy[i].UserID == viewerID {
			return true
		}
	}
	return false
}

func commentLikedBy(c *Comment, viewerID uint) bool {
	if viewerID == 0 {
		return false
	}
	for i := range c.LikedBy {
		if c.LikedBy[i].UserID == viewerID {
			return true
		}
	}
	return false
}
