package services

import (
	"errors"

	"github.com/socialconnect/backend/internal/apperrors"
	"github.com/socialconnect/backend/internal/models"
	"github.com/socialconnect/backend/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PostService implements authoring: create, read, update. Creation
// propagates the author's posts_count; hard deletion is an admin action
// and lives in AdminService.
type PostService struct {
	db         *gorm.DB
	profiles   *ProfileService
	propagator *Propagator
	logger     *zap.Logger
}

// NewPostService creates a new PostService
func NewPostService(db *gorm.DB, profiles *ProfileService, propagator *Propagator, logger *zap.Logger) *PostService {
	return &PostService{db: db, profiles: profiles, propagator: propagator, logger: logger}
}

// CreatePost creates a new active post and recounts the author's posts_count
func (s *PostService) CreatePost(actorID uint, req *models.CreatePostRequest) (*models.Post, error) {
	if _, err := s.profiles.EnsureProfile(actorID); err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = models.CategoryGeneral
	}
	post := &models.Post{
		AuthorID: actorID,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Category: category,
		IsActive: true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewPostgresPostRepository(tx).CreatePost(post); err != nil {
			return err
		}
		return s.propagator.PostCreated(tx, actorID)
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost returns an active post
func (s *PostService) GetPost(postID uint) (*models.Post, error) {
	post, err := repositories.NewPostgresPostRepository(s.db).GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if !post.IsActive {
		return nil, apperrors.ErrNotFound
	}
	return post, nil
}

// ListPosts returns active posts newest-first
func (s *PostService) ListPosts(page, limit int) ([]models.Post, int64, error) {
	return repositories.NewPostgresPostRepository(s.db).GetActivePosts(page, limit)
}

// UpdatePost applies a partial update to the actor's own post
func (s *PostService) UpdatePost(actorID, postID uint, req *models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.GetPost(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actorID {
		return nil, apperrors.ErrForbidden
	}

	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.ImageURL != nil {
		post.ImageURL = *req.ImageURL
	}
	if req.Category != nil {
		post.Category = *req.Category
	}

	if err := repositories.NewPostgresPostRepository(s.db).UpdatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}
