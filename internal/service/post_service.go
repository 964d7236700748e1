package service

import (
	"context"
	"errors"

	"lightbox/internal/models"
	"lightbox/internal/repository"
	"lightbox/internal/validation"

	"gorm.io/gorm"
)

// PostService handles single-post reads and the like/comment mutations.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// GetPost returns the client projection of one post relative to the viewer.
func (s *PostService) GetPost(ctx context.Context, postID, viewerID uint) (*models.ClientPost, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, err
	}
	projected := models.ProjectPost(post, viewerID)
	return &projected, nil
}

// LikeResult is the response payload of a like operation.
type LikeResult struct {
	Likes    int  `json:"likes"`
	HasLiked bool `json:"hasLiked"`
}

// LikePost records userID's like on a post. The operation is like-only and
// idempotent: repeated calls converge to hasLiked=true without double
// counting. The conditional update in the repository is the single atomic
// step; when it does not apply, the post is re-fetched to distinguish
// "already liked" (success) from "no such post" (not found).
func (s *PostService) LikePost(ctx context.Context, postID, userID uint) (*LikeResult, error) {
	likes, applied, err := s.postRepo.Like(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if applied {
		return &LikeResult{Likes: likes, HasLiked: true}, nil
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, err
	}
	return &LikeResult{Likes: post.LikeCount, HasLiked: true}, nil
}

// AddComment appends a comment to a post and returns its client projection.
// A brand-new comment has no likes and cannot have been liked by its author.
func (s *PostService) AddComment(ctx context.Context, postID, userID uint, text string) (*models.ClientComment, error) {
	if err := validation.ValidateComment(text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("User no longer exists")
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, err
	}

	return &models.ClientComment{
		ID:        comment.ID,
		User:      user.Username,
		Text:      comment.Text,
		Likes:     0,
		HasLiked:  false,
		Timestamp: comment.CreatedAt,
	}, nil
}
