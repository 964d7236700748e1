package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"lightbox/internal/cache"
	"lightbox/internal/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// FeedFilter holds the resolved filter terms for a feed query. All supplied
// terms combine with logical AND; Pattern and MatchedCreatorIDs together
// form a single OR-group AND-term.
type FeedFilter struct {
	// Pattern is the escaped, case-insensitive regex built from the free
	// text search term. Empty means no text search.
	Pattern string
	// MatchedCreatorIDs are the users whose username matched Pattern,
	// resolved before the main query. Only meaningful with Pattern set.
	MatchedCreatorIDs []uint
	// CreatorID restricts the feed to a single creator. Zero means no
	// restriction.
	CreatorID uint
	// Location is a case-insensitive substring match, deliberately NOT
	// escaped (a looser filter than the text search).
	Location string
	// Tag is an exact match against the tag set.
	Tag string
	// MediaType is an exact match. Empty means no restriction.
	MediaType models.MediaType
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Feed(ctx context.Context, f FeedFilter, limit, offset int) ([]*models.Post, int64, error)
	// Like atomically adds userID to the post's liker set and increments
	// the counter. It returns the new count and applied=true when the
	// conditional update took effect, and applied=false when the liker was
	// already present or the post does not exist.
	Like(ctx context.Context, postID, userID uint) (likes int, applied bool, err error)
	AddComment(ctx context.Context, comment *models.Comment) error
	DistinctTags(ctx context.Context, limit int) ([]string, error)
	DistinctLocations(ctx context.Context, limit int) ([]string, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// withProjectionPreloads loads everything the projection needs in batched
// queries: creator, liker sets, and comments with their authors and liker
// sets. Comment order is insertion order.
func withProjectionPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Creator").
		Preload("LikedBy").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC, comments.id ASC")
		}).
		Preload("Comments.User").
		Preload("Comments.LikedBy")
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		return withProjectionPreloads(r.db.WithContext(ctx)).First(&post, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// feedClause is one independent AND-term of the feed predicate.
type feedClause struct {
	query string
	args  []interface{}
}

// buildFeedClauses translates a FeedFilter into predicate clauses. Pure;
// testable without a database.
func buildFeedClauses(f FeedFilter) []feedClause {
	var clauses []feedClause

	if f.CreatorID != 0 {
		clauses = append(clauses, feedClause{"posts.creator_id = ?", []interface{}{f.CreatorID}})
	}

	if f.Pattern != "" {
		expr := "(posts.title ~* ? OR posts.caption ~* ? OR posts.location ~* ? OR " +
			"EXISTS (SELECT 1 FROM jsonb_array_elements_text(posts.tags) AS t(tag) WHERE t.tag ~* ?)"
		args := []interface{}{f.Pattern, f.Pattern, f.Pattern, f.Pattern}
		if len(f.MatchedCreatorIDs) > 0 {
			expr += " OR posts.creator_id IN ?"
			args = append(args, f.MatchedCreatorIDs)
		}
		expr += ")"
		clauses = append(clauses, feedClause{expr, args})
	}

	if f.Location != "" {
		clauses = append(clauses, feedClause{"posts.location ~* ?", []interface{}{f.Location}})
	}

	if f.Tag != "" {
		member, _ := json.Marshal([]string{f.Tag})
		clauses = append(clauses, feedClause{"posts.tags @> ?::jsonb", []interface{}{string(member)}})
	}

	if f.MediaType != "" {
		clauses = append(clauses, feedClause{"posts.media_type = ?", []interface{}{f.MediaType}})
	}

	return clauses
}

func (r *postRepository) feedQuery(ctx context.Context, f FeedFilter) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&models.Post{})
	for _, c := range buildFeedClauses(f) {
		db = db.Where(c.query, c.args...)
	}
	return db
}

func (r *postRepository) Feed(ctx context.Context, f FeedFilter, limit, offset int) ([]*models.Post, int64, error) {
	var posts []*models.Post
	var total int64

	// Count and page fetch run concurrently; they may observe slightly
	// different snapshots under concurrent writes, which is acceptable.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.feedQuery(gctx, f).Count(&total).Error
	})
	g.Go(func() error {
		return withProjectionPreloads(r.feedQuery(gctx, f)).
			Order("posts.created_at DESC, posts.id DESC").
			Limit(limit).
			Offset(offset).
			Find(&posts).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// likeSQL adds the liker and increments the counter in one atomic
// statement. The insert is guarded by the post's existence and the
// (post_id, user_id) unique index; the counter moves only when the insert
// actually happened. No row comes back when the liker was already present
// or the post does not exist.
const likeSQL = `
WITH liker AS (
	INSERT INTO post_likes (post_id, user_id, created_at)
	SELECT p.id, ?, NOW() FROM posts p WHERE p.id = ?
	ON CONFLICT (post_id, user_id) DO NOTHING
	RETURNING post_id
)
UPDATE posts SET like_count = like_count + 1
WHERE id IN (SELECT post_id FROM liker)
RETURNING like_count`

func (r *postRepository) Like(ctx context.Context, postID, userID uint) (int, bool, error) {
	var likes int
	row := r.db.WithContext(ctx).Raw(likeSQL, userID, postID).Row()
	if err := row.Scan(&likes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	cache.InvalidatePost(ctx, postID)
	return likes, true, nil
}

func (r *postRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, comment.PostID)
	return nil
}

func (r *postRepository) DistinctTags(ctx context.Context, limit int) ([]string, error) {
	tags := []string{}
	err := r.db.WithContext(ctx).Raw(
		`SELECT DISTINCT t.tag
		 FROM posts, jsonb_array_elements_text(posts.tags) AS t(tag)
		 ORDER BY t.tag ASC LIMIT ?`, limit,
	).Scan(&tags).Error
	return tags, err
}

func (r *postRepository) DistinctLocations(ctx context.Context, limit int) ([]string, error) {
	locations := []string{}
	err := r.db.WithContext(ctx).Raw(
		`SELECT DISTINCT location FROM posts
		 WHERE location IS NOT NULL AND location <> ''
		 ORDER BY location ASC LIMIT ?`, limit,
	).Scan(&locations).Error
	return locations, err
}
