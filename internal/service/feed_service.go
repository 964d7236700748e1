// Package service contains the application's business logic.
package service

import (
	"context"
	"regexp"

	"lightbox/internal/models"
	"lightbox/internal/repository"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

// FeedService builds the paginated, filterable feed.
type FeedService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewFeedService creates a new feed service.
func NewFeedService(postRepo repository.PostRepository, userRepo repository.UserRepository) *FeedService {
	return &FeedService{postRepo: postRepo, userRepo: userRepo}
}

// FeedInput holds the raw feed query parameters. ViewerID is zero for
// anonymous requests.
type FeedInput struct {
	Query    string
	Location string
	Tag      string
	Type     string
	Username string
	Page     int
	Limit    int
	ViewerID uint
}

// FeedResult is the feed response payload.
type FeedResult struct {
	Posts      []models.ClientPost `json:"posts"`
	Page       int                 `json:"page"`
	TotalPages int64               `json:"totalPages"`
	TotalPosts int64               `json:"totalPosts"`
}

// BuildFeed resolves the filters, runs the paginated query and projects the
// results for the viewer.
func (s *FeedService) BuildFeed(ctx context.Context, in FeedInput) (*FeedResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	var filter repository.FeedFilter

	if in.Username != "" {
		user, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if user == nil {
			// No such creator: the result is known to be empty, so the
			// post store is not consulted at all.
			return &FeedResult{
				Posts:      []models.ClientPost{},
				Page:       page,
				TotalPages: 0,
				TotalPosts: 0,
			}, nil
		}
		filter.CreatorID = user.ID
	}

	if in.Query != "" {
		// Escape every regex metacharacter so the search term matches
		// literally.
		filter.Pattern = regexp.QuoteMeta(in.Query)
		ids, err := s.userRepo.FindIDsByUsernamePattern(ctx, filter.Pattern)
		if err != nil {
			return nil, err
		}
		filter.MatchedCreatorIDs = ids
	}

	filter.Location = in.Location
	filter.Tag = in.Tag
	if mt := models.MediaType(in.Type); mt.Valid() {
		filter.MediaType = mt
	}

	posts, total, err := s.postRepo.Feed(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	projected := make([]models.ClientPost, 0, len(posts))
	for _, p := range posts {
		projected = append(projected, models.ProjectPost(p, in.ViewerID))
	}

	return &FeedResult{
		Posts:      projected,
		Page:       page,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
		TotalPosts: total,
	}, nil
}
