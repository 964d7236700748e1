package service

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"lightbox/internal/models"
	"lightbox/internal/repository"
	"lightbox/internal/storage"
	"lightbox/internal/validation"

	"github.com/google/uuid"
)

// MaxUploadBytes caps media uploads at 10MB.
const MaxUploadBytes = 10 * 1024 * 1024

var hashtagPattern = regexp.MustCompile(`#([A-Za-z0-9_]+)`)

// MediaService handles media uploads and post creation.
type MediaService struct {
	postRepo repository.PostRepository
	store    storage.Storage
}

// NewMediaService creates a new media service.
func NewMediaService(postRepo repository.PostRepository, store storage.Storage) *MediaService {
	return &MediaService{postRepo: postRepo, store: store}
}

// UploadInput carries the media blob and its metadata.
type UploadInput struct {
	CreatorID   uint
	Filename    string
	ContentType string
	Content     []byte
	Title       string
	Caption     string
	Location    string
	People      []string
}

// Upload stores the blob, creates the post and returns its projection for
// the uploader.
func (s *MediaService) Upload(ctx context.Context, in UploadInput) (*models.ClientPost, error) {
	mediaType, ok := mediaTypeFor(in.ContentType)
	if !ok {
		return nil, models.NewValidationError("unsupported media type: only images and videos are allowed")
	}
	if len(in.Content) == 0 {
		return nil, models.NewValidationError("file is empty")
	}
	if len(in.Content) > MaxUploadBytes {
		return nil, models.NewValidationError("file exceeds the 10MB limit")
	}
	if err := validation.ValidateUploadMetadata(in.Title, in.Caption, in.Location, in.People); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	key := uuid.NewString()
	if ext := filepath.Ext(in.Filename); ext != "" {
		key += strings.ToLower(ext)
	}

	url, err := s.store.Upload(ctx, key, in.ContentType, in.Content)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		CreatorID: in.CreatorID,
		MediaType: mediaType,
		MediaURL:  url,
		Title:     in.Title,
		Caption:   in.Caption,
		Location:  in.Location,
		People:    in.People,
		Tags:      extractHashtags(in.Caption),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		// Best effort: do not leave an orphaned blob behind.
		_ = s.store.Delete(ctx, key)
		return nil, err
	}

	created, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	projected := models.ProjectPost(created, in.CreatorID)
	return &projected, nil
}

func mediaTypeFor(contentType string) (models.MediaType, bool) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return models.MediaTypeImage, true
	case strings.HasPrefix(contentType, "video/"):
		return models.MediaTypeVideo, true
	default:
		return "", false
	}
}

// extractHashtags harvests lowercased, deduplicated #tags from the caption.
func extractHashtags(caption string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(caption, -1)
	tags := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		tag := strings.ToLower(m[1])
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
