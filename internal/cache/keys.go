package cache

import (
	"context"
	"fmt"
	"time"
)

// PostTTL bounds staleness of cached single-post reads; mutations
// invalidate the key eagerly anyway.
const PostTTL = 30 * time.Minute

const (
	PostKeyPrefix = "post:%d"

	// SuggestionsKey is the single logical key for the whole search
	// suggestions payload.
	SuggestionsKey = "search:suggestions"
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}
