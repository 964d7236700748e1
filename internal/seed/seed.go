// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"lightbox/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much demo data is generated.
type Options struct {
	Creators        int
	Consumers       int
	PostsPerCreator int
	MaxDays         int // created_at spread, days back from now
}

// DefaultOptions returns a small but representative data set.
func DefaultOptions() Options {
	return Options{
		Creators:        5,
		Consumers:       20,
		PostsPerCreator: 8,
		MaxDays:         90,
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var seedLocations = []string{
	"Lisbon, Portugal", "Kyoto, Japan", "Reykjavik, Iceland",
	"Cape Town, South Africa", "Banff, Canada", "Oaxaca, Mexico",
}

var seedTags = []string{
	"travel", "food", "sunset", "streetphotography", "hiking",
	"coffee", "architecture", "wildlife", "surf", "citylights",
}

// CreateUser constructs and persists a sample user with the given role.
func (f *Factory) CreateUser(role models.Role, overrides ...func(*models.User)) (*models.User, error) {
	username := gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999))
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Username:  username,
		Email:     gofakeit.Email(),
		Password:  string(hashedPassword),
		Role:      role,
		AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample post for the given creator.
func (f *Factory) CreatePost(creator *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	tags := f.pickTags()
	caption := gofakeit.Sentence(8)
	for _, t := range tags {
		caption += " #" + t
	}

	post := &models.Post{
		CreatorID: creator.ID,
		MediaType: models.MediaTypeImage,
		MediaURL:  fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		Title:     strings.TrimSuffix(gofakeit.Sentence(4), "."),
		Caption:   caption,
		Location:  seedLocations[f.rng.Intn(len(seedLocations))],
		Tags:      tags,
	}
	if f.rng.Intn(5) == 0 {
		post.MediaType = models.MediaTypeVideo
		post.MediaURL = fmt.Sprintf("https://videos.example.com/%s.mp4", gofakeit.UUID())
	}
	if f.rng.Intn(3) == 0 {
		post.People = []string{gofakeit.Username(), gofakeit.Username()}
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	post.CreatedAt = time.Now().
		Add(-time.Duration(f.rng.Intn(maxDays)) * 24 * time.Hour).
		Add(-time.Duration(f.rng.Intn(24)) * time.Hour)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// LikePost records likes from a subset of users. The liker rows and the
// stored counter are written together so they stay consistent.
func (f *Factory) LikePost(post *models.Post, likers []*models.User) error {
	if len(likers) == 0 {
		return nil
	}
	rows := make([]models.PostLike, 0, len(likers))
	for _, u := range likers {
		rows = append(rows, models.PostLike{PostID: post.ID, UserID: u.ID})
	}
	return f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		return tx.Model(post).Update("like_count", len(rows)).Error
	})
}

// CreateComment persists a comment, optionally with likes from the given
// users.
func (f *Factory) CreateComment(post *models.Post, author *models.User, likers []*models.User) (*models.Comment, error) {
	comment := &models.Comment{
		PostID: post.ID,
		UserID: author.ID,
		Text:   gofakeit.Sentence(6),
	}
	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		if len(likers) == 0 {
			return nil
		}
		rows := make([]models.CommentLike, 0, len(likers))
		for _, u := range likers {
			rows = append(rows, models.CommentLike{CommentID: comment.ID, UserID: u.ID})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		return tx.Model(comment).Update("like_count", len(rows)).Error
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (f *Factory) pickTags() []string {
	n := 1 + f.rng.Intn(3)
	picked := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for len(picked) < n {
		t := seedTags[f.rng.Intn(len(seedTags))]
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		picked = append(picked, t)
	}
	return picked
}

// Run populates the database with a full demo data set: creators with
// posts, consumers, likes and comments.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db, opts)

	creators := make([]*models.User, 0, opts.Creators)
	for i := 0; i < opts.Creators; i++ {
		u, err := f.CreateUser(models.RoleCreator)
		if err != nil {
			return fmt.Errorf("seed creator: %w", err)
		}
		creators = append(creators, u)
	}

	consumers := make([]*models.User, 0, opts.Consumers)
	for i := 0; i < opts.Consumers; i++ {
		u, err := f.CreateUser(models.RoleConsumer)
		if err != nil {
			return fmt.Errorf("seed consumer: %w", err)
		}
		consumers = append(consumers, u)
	}

	everyone := append(append([]*models.User{}, creators...), consumers...)

	for _, creator := range creators {
		for i := 0; i < opts.PostsPerCreator; i++ {
			post, err := f.CreatePost(creator)
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}

			likers := f.pickUsers(everyone, f.rng.Intn(len(everyone)+1))
			if err := f.LikePost(post, likers); err != nil {
				return fmt.Errorf("seed likes: %w", err)
			}

			for j := 0; j < f.rng.Intn(4); j++ {
				author := everyone[f.rng.Intn(len(everyone))]
				commentLikers := f.pickUsers(everyone, f.rng.Intn(3))
				if _, err := f.CreateComment(post, author, commentLikers); err != nil {
					return fmt.Errorf("seed comment: %w", err)
				}
			}
		}
	}

	log.Printf("Seeded %d creators, %d consumers, %d posts",
		len(creators), len(consumers), len(creators)*opts.PostsPerCreator)
	return nil
}

// pickUsers returns up to n distinct users.
func (f *Factory) pickUsers(users []*models.User, n int) []*models.User {
	if n >= len(users) {
		n = len(users)
	}
	idx := f.rng.Perm(len(users))[:n]
	picked := make([]*models.User, 0, n)
	for _, i := range idx {
		picked = append(picked, users[i])
	}
	return picked
}
