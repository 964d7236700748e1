package service

import (
	"context"
	"errors"
	"testing"

	"lightbox/internal/models"
	"lightbox/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn            func(context.Context, *models.Post) error
	getByIDFn           func(context.Context, uint) (*models.Post, error)
	feedFn              func(context.Context, repository.FeedFilter, int, int) ([]*models.Post, int64, error)
	likeFn              func(context.Context, uint, uint) (int, bool, error)
	addCommentFn        func(context.Context, *models.Comment) error
	distinctTagsFn      func(context.Context, int) ([]string, error)
	distinctLocationsFn func(context.Context, int) ([]string, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Feed(ctx context.Context, f repository.FeedFilter, limit, offset int) ([]*models.Post, int64, error) {
	return s.feedFn(ctx, f, limit, offset)
}
func (s *postRepoStub) Like(ctx context.Context, postID, userID uint) (int, bool, error) {
	return s.likeFn(ctx, postID, userID)
}
func (s *postRepoStub) AddComment(ctx context.Context, comment *models.Comment) error {
	return s.addCommentFn(ctx, comment)
}
func (s *postRepoStub) DistinctTags(ctx context.Context, limit int) ([]string, error) {
	return s.distinctTagsFn(ctx, limit)
}
func (s *postRepoStub) DistinctLocations(ctx context.Context, limit int) ([]string, error) {
	return s.distinctLocationsFn(ctx, limit)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		feedFn: func(_ context.Context, _ repository.FeedFilter, _, _ int) ([]*models.Post, int64, error) {
			return nil, 0, nil
		},
		likeFn:              func(_ context.Context, _, _ uint) (int, bool, error) { return 1, true, nil },
		addCommentFn:        func(_ context.Context, _ *models.Comment) error { return nil },
		distinctTagsFn:      func(_ context.Context, _ int) ([]string, error) { return nil, nil },
		distinctLocationsFn: func(_ context.Context, _ int) ([]string, error) { return nil, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	findIDsFn       func(context.Context, string) ([]uint, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) FindIDsByUsernamePattern(ctx context.Context, pattern string) ([]uint, error) {
	return s.findIDsFn(ctx, pattern)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		findIDsFn:       func(_ context.Context, _ string) ([]uint, error) { return nil, nil },
	}
}

// assertAppError asserts that err is an AppError with the given code.
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
