package service

import (
	"context"
	"time"

	"lightbox/internal/cache"
	"lightbox/internal/repository"

	"golang.org/x/sync/errgroup"
)

// suggestionLimit bounds each suggestion list.
const suggestionLimit = 100

// SuggestionService serves the cached tag/location search suggestions.
type SuggestionService struct {
	postRepo repository.PostRepository
	ttl      time.Duration
}

// NewSuggestionService creates a suggestion service with the given cache TTL.
func NewSuggestionService(postRepo repository.PostRepository, ttl time.Duration) *SuggestionService {
	return &SuggestionService{postRepo: postRepo, ttl: ttl}
}

// Suggestions is the search suggestions payload.
type Suggestions struct {
	Tags      []string `json:"tags"`
	Locations []string `json:"locations"`
}

// Get returns the suggestions payload, recomputing the distinct aggregates
// only on cache miss. Post mutations do not invalidate the entry; staleness
// is bounded by the TTL alone.
func (s *SuggestionService) Get(ctx context.Context) (*Suggestions, error) {
	var out Suggestions
	err := cache.Aside(ctx, cache.SuggestionsKey, &out, s.ttl, func() error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			tags, err := s.postRepo.DistinctTags(gctx, suggestionLimit)
			if err != nil {
				return err
			}
			out.Tags = tags
			return nil
		})
		g.Go(func() error {
			locations, err := s.postRepo.DistinctLocations(gctx, suggestionLimit)
			if err != nil {
				return err
			}
			out.Locations = locations
			return nil
		})
		return g.Wait()
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
