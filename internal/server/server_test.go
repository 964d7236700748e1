package server

import (
	"context"
	"time"

	"lightbox/internal/config"
	"lightbox/internal/middleware"
	"lightbox/internal/models"
	"lightbox/internal/repository"
	"lightbox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Stubs and fixtures shared by the handler tests in this package.

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

func noopStubs() (*postRepoStub, *userRepoStub) {
	postRepo := &postRepoStub{
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
	userRepo := &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		findIDsFn:       func(_ context.Context, _ string) ([]uint, error) { return nil, nil },
	}
	return postRepo, userRepo
}

// newTestServer wires a Server around repository stubs with no database or
// Redis behind it, plus a Fiber app with the real routes.
func newTestServer(postRepo *postRepoStub, userRepo *userRepoStub) (*Server, *fiber.App) {
	cfg := &config.Config{
		JWTSecret:      "test-secret-for-handler-tests",
		AdminAPISecret: "test-admin-secret",
		SuggestionsTTL: 300,
	}
	middleware.InitMiddleware(cfg)

	s := &Server{
		config:   cfg,
		userRepo: userRepo,
		postRepo: postRepo,
	}
	s.feedService = service.NewFeedService(postRepo, userRepo)
	s.postService = service.NewPostService(postRepo, userRepo)
	s.suggestionService = service.NewSuggestionService(
		postRepo, time.Duration(cfg.SuggestionsTTL)*time.Second)
	s.mediaService = service.NewMediaService(postRepo, discardStorage{})

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

type discardStorage struct{}

func (discardStorage) Upload(_ context.Context, key, _ string, _ []byte) (string, error) {
	return "https://cdn.test/" + key, nil
}
func (discardStorage) Delete(_ context.Context, _ string) error { return nil }
